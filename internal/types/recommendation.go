package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// Recommendation rows are produced exclusively by the external batch job.
// This service only reads them; the composite unique index keeps at most one
// row per (user, item) so a recompute replaces instead of appending.
type Recommendation struct {
  ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  UserID      uuid.UUID      `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_recommendations_user_item" json:"user_id"`
  ItemID      uuid.UUID      `gorm:"type:uuid;not null;column:item_id;uniqueIndex:idx_recommendations_user_item" json:"item_id"`
  Score       float64        `gorm:"not null;column:score" json:"score"`
  Rank        int            `gorm:"not null;column:rank" json:"rank"`
  AlgoVersion string         `gorm:"not null;column:algo_version" json:"algo_version"`
  // Reason is an optional explanatory document; reads may withhold it.
  Reason      datatypes.JSON `gorm:"column:reason" json:"reason,omitempty"`
  RunID       *uuid.UUID     `gorm:"type:uuid;column:run_id" json:"run_id,omitempty"`
  GeneratedAt time.Time      `gorm:"not null;column:generated_at" json:"generated_at"`
}

func (Recommendation) TableName() string {
  return "recommendations"
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
  if r.ID == uuid.Nil {
    r.ID = uuid.New()
  }
  return nil
}
