package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  MinGrade = 1
  MaxGrade = 5
)

// Rating records one user's grade for one item. The composite unique index is
// the final authority on the one-rating-per-(user,item) invariant; service
// level pre-checks are an optimization only.
type Rating struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_ratings_user_item" json:"user_id"`
  ItemID    uuid.UUID `gorm:"type:uuid;not null;column:item_id;uniqueIndex:idx_ratings_user_item" json:"item_id"`
  Grade     int       `gorm:"not null;column:grade" json:"grade"`
  CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

func (Rating) TableName() string {
  return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
  if r.ID == uuid.Nil {
    r.ID = uuid.New()
  }
  return nil
}
