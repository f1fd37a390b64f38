package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/types"
)

type ItemRepo interface {
  Create(ctx context.Context, tx *gorm.DB, item *types.Item) (*types.Item, error)
  GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error)
  FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Item, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type itemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
  repoLog := baseLog.With("repo", "ItemRepo")
  return &itemRepo{db: db, log: repoLog}
}

func (ir *itemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.Item) (*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
    return nil, err
  }
  return item, nil
}

func (ir *itemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var result types.Item
  if err := transaction.WithContext(ctx).
    Where("id = ?", itemID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (ir *itemRepo) FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var results []*types.Item
  if err := transaction.WithContext(ctx).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ir *itemRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Item{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
