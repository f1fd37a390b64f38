package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/types"
)

// RecommendationRepo is read-only on purpose: recommendation rows are written
// by the external batch job, never by this service.
type RecommendationRepo interface {
  FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Recommendation, error)
  FindByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page paging.Page) ([]*types.Recommendation, error)
  FindByUserAndAlgo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, algoVersion string, page paging.Page) ([]*types.Recommendation, error)
}

type recommendationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
  repoLog := baseLog.With("repo", "RecommendationRepo")
  return &recommendationRepo{db: db, log: repoLog}
}

func (rr *recommendationRepo) FindPage(ctx context.Context, tx *gorm.DB, page paging.Page) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Recommendation
  if err := transaction.WithContext(ctx).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *recommendationRepo) FindByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page paging.Page) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Recommendation
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *recommendationRepo) FindByUserAndAlgo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, algoVersion string, page paging.Page) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Recommendation
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND algo_version = ?", userID, algoVersion).
    Offset(page.Offset()).
    Limit(page.Size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
