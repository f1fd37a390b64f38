package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type ItemType string

const (
  ItemTypeMovie ItemType = "MOVIE"
  ItemTypeBook  ItemType = "BOOK"
  ItemTypeMusic ItemType = "MUSIC"
  ItemTypeGame  ItemType = "GAME"
  ItemTypeOther ItemType = "OTHER"
)

func (t ItemType) Valid() bool {
  switch t {
  case ItemTypeMovie, ItemTypeBook, ItemTypeMusic, ItemTypeGame, ItemTypeOther:
    return true
  }
  return false
}

type Item struct {
  ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  Title     string         `gorm:"not null;column:title" json:"title"`
  Type      ItemType       `gorm:"not null;column:type" json:"type"`
  // Metadata is an opaque document stored verbatim; the service never
  // interprets its contents.
  Metadata  datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
  CreatedAt time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

func (Item) TableName() string {
  return "items"
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
  if i.ID == uuid.Nil {
    i.ID = uuid.New()
  }
  return nil
}
