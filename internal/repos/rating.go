package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/types"
)

type RatingRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rating *types.Rating) (*types.Rating, error)
  Save(ctx context.Context, tx *gorm.DB, rating *types.Rating) (*types.Rating, error)
  GetByID(ctx context.Context, tx *gorm.DB, ratingID uuid.UUID) (*types.Rating, error)
  // FindByUserAndItem returns (nil, nil) when no rating exists for the pair.
  FindByUserAndItem(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) (*types.Rating, error)
  FindByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page paging.Page) ([]*types.Rating, error)
  FindByItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, page paging.Page) ([]*types.Rating, error)
  FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Rating, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type ratingRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRatingRepo(db *gorm.DB, baseLog *logger.Logger) RatingRepo {
  repoLog := baseLog.With("repo", "RatingRepo")
  return &ratingRepo{db: db, log: repoLog}
}

func (rr *ratingRepo) Create(ctx context.Context, tx *gorm.DB, rating *types.Rating) (*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(rating).Error; err != nil {
    return nil, err
  }
  return rating, nil
}

func (rr *ratingRepo) Save(ctx context.Context, tx *gorm.DB, rating *types.Rating) (*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Save(rating).Error; err != nil {
    return nil, err
  }
  return rating, nil
}

func (rr *ratingRepo) GetByID(ctx context.Context, tx *gorm.DB, ratingID uuid.UUID) (*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var result types.Rating
  if err := transaction.WithContext(ctx).
    Where("id = ?", ratingID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *ratingRepo) FindByUserAndItem(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) (*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Rating
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND item_id = ?", userID, itemID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (rr *ratingRepo) FindByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page paging.Page) ([]*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Rating
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *ratingRepo) FindByItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, page paging.Page) ([]*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Rating
  if err := transaction.WithContext(ctx).
    Where("item_id = ?", itemID).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *ratingRepo) FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Rating, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Rating
  if err := transaction.WithContext(ctx).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *ratingRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Rating{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
