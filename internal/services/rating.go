package services

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/repos"
  "github.com/recolab/reco-backend/internal/types"
)

type CreateRatingRequest struct {
  UserID uuid.UUID `json:"user_id" binding:"required"`
  Grade  int       `json:"grade" binding:"required"`
}

type RatingResponse struct {
  ID        uuid.UUID `json:"id"`
  UserID    uuid.UUID `json:"user_id"`
  ItemID    uuid.UUID `json:"item_id"`
  Grade     int       `json:"grade"`
  CreatedAt time.Time `json:"created_at"`
}

type RatingService interface {
  RateItem(ctx context.Context, itemID, userID uuid.UUID, grade int) (*RatingResponse, error)
  UpdateRating(ctx context.Context, ratingID uuid.UUID, newGrade int) (*RatingResponse, error)
  GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*RatingResponse, error)
  GetRatingsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RatingResponse, error)
  GetRatingsByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*RatingResponse, error)
  GetAllRatings(ctx context.Context, limit int) ([]*RatingResponse, error)
}

type ratingService struct {
  db         *gorm.DB
  log        *logger.Logger
  ratingRepo repos.RatingRepo
  itemRepo   repos.ItemRepo
  userRepo   repos.UserRepo
  policy     paging.Policy
}

func NewRatingService(db *gorm.DB, log *logger.Logger, ratingRepo repos.RatingRepo, itemRepo repos.ItemRepo, userRepo repos.UserRepo, policy paging.Policy) RatingService {
  return &ratingService{
    db:         db,
    log:        log.With("service", "RatingService"),
    ratingRepo: ratingRepo,
    itemRepo:   itemRepo,
    userRepo:   userRepo,
    policy:     policy,
  }
}

func validGrade(grade int) bool {
  return grade >= types.MinGrade && grade <= types.MaxGrade
}

// RateItem validates the grade before touching storage, checks item then user
// existence in that order, and enforces one rating per (user,item). The
// pre-check gives a friendly conflict; the unique index is the authority for
// the race window between check and write.
func (rs *ratingService) RateItem(ctx context.Context, itemID, userID uuid.UUID, grade int) (*RatingResponse, error) {
  if !validGrade(grade) {
    return nil, apierr.InvalidArgument(fmt.Errorf("invalid grade %d: must be between %d and %d", grade, types.MinGrade, types.MaxGrade))
  }

  if _, err := rs.itemRepo.GetByID(ctx, nil, itemID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("item with id %s not found", itemID))
    }
    return nil, err
  }
  if _, err := rs.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("user with id %s not found", userID))
    }
    return nil, err
  }

  existing, err := rs.ratingRepo.FindByUserAndItem(ctx, nil, userID, itemID)
  if err != nil {
    return nil, err
  }
  if existing != nil {
    return nil, apierr.Conflict(fmt.Errorf("user %s already rated item %s", userID, itemID))
  }

  rating := &types.Rating{UserID: userID, ItemID: itemID, Grade: grade}
  saved, err := rs.ratingRepo.Create(ctx, nil, rating)
  if err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return nil, apierr.Conflict(fmt.Errorf("user %s already rated item %s, use update instead", userID, itemID))
    }
    return nil, err
  }
  rs.log.Info("Created rating", "rating_id", saved.ID, "user_id", userID, "item_id", itemID, "grade", grade)
  return ratingToResponse(saved), nil
}

// UpdateRating overwrites the grade in place. Identity, (user,item) binding
// and creation time never change.
func (rs *ratingService) UpdateRating(ctx context.Context, ratingID uuid.UUID, newGrade int) (*RatingResponse, error) {
  if !validGrade(newGrade) {
    return nil, apierr.InvalidArgument(fmt.Errorf("invalid grade %d: must be between %d and %d", newGrade, types.MinGrade, types.MaxGrade))
  }

  rating, err := rs.ratingRepo.GetByID(ctx, nil, ratingID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("rating with id %s not found", ratingID))
    }
    return nil, err
  }

  rating.Grade = newGrade
  saved, err := rs.ratingRepo.Save(ctx, nil, rating)
  if err != nil {
    return nil, err
  }
  rs.log.Info("Updated rating", "rating_id", ratingID, "grade", newGrade)
  return ratingToResponse(saved), nil
}

func (rs *ratingService) GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*RatingResponse, error) {
  rating, err := rs.ratingRepo.GetByID(ctx, nil, ratingID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("rating with id %s not found", ratingID))
    }
    return nil, err
  }
  return ratingToResponse(rating), nil
}

func (rs *ratingService) GetRatingsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RatingResponse, error) {
  page := rs.policy.FirstPage(limit)
  ratings, err := rs.ratingRepo.FindByUser(ctx, nil, userID, page)
  if err != nil {
    return nil, err
  }
  return ratingsToResponses(ratings), nil
}

func (rs *ratingService) GetRatingsByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*RatingResponse, error) {
  page := rs.policy.FirstPage(limit)
  ratings, err := rs.ratingRepo.FindByItem(ctx, nil, itemID, page)
  if err != nil {
    return nil, err
  }
  return ratingsToResponses(ratings), nil
}

func (rs *ratingService) GetAllRatings(ctx context.Context, limit int) ([]*RatingResponse, error) {
  page := rs.policy.FirstPage(limit)
  ratings, err := rs.ratingRepo.FindPage(ctx, nil, page)
  if err != nil {
    return nil, err
  }
  return ratingsToResponses(ratings), nil
}

func ratingsToResponses(ratings []*types.Rating) []*RatingResponse {
  responses := make([]*RatingResponse, 0, len(ratings))
  for _, rating := range ratings {
    responses = append(responses, ratingToResponse(rating))
  }
  return responses
}

func ratingToResponse(rating *types.Rating) *RatingResponse {
  return &RatingResponse{
    ID:        rating.ID,
    UserID:    rating.UserID,
    ItemID:    rating.ItemID,
    Grade:     rating.Grade,
    CreatedAt: rating.CreatedAt,
  }
}
