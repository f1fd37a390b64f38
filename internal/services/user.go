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

type CreateUserRequest struct {
  Email string `json:"email" binding:"required,email"`
}

type UserResponse struct {
  ID        uuid.UUID `json:"id"`
  Email     string    `json:"email"`
  CreatedAt time.Time `json:"created_at"`
}

type UserService interface {
  CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
  GetUserByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
  GetAllUsers(ctx context.Context, limit int) ([]*UserResponse, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
  policy   paging.Policy
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, policy paging.Policy) UserService {
  return &userService{
    db:       db,
    log:      log.With("service", "UserService"),
    userRepo: userRepo,
    policy:   policy,
  }
}

func (us *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
  user := &types.User{Email: req.Email}
  saved, err := us.userRepo.Create(ctx, nil, user)
  if err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return nil, apierr.Conflict(fmt.Errorf("user with email %s already exists", req.Email))
    }
    return nil, err
  }
  us.log.Info("Created user", "user_id", saved.ID)
  return userToResponse(saved), nil
}

func (us *userService) GetUserByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
  user, err := us.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("user with id %s not found", userID))
    }
    return nil, err
  }
  return userToResponse(user), nil
}

func (us *userService) GetAllUsers(ctx context.Context, limit int) ([]*UserResponse, error) {
  page := us.policy.FirstPage(limit)
  users, err := us.userRepo.FindPage(ctx, nil, page)
  if err != nil {
    return nil, err
  }
  responses := make([]*UserResponse, 0, len(users))
  for _, user := range users {
    responses = append(responses, userToResponse(user))
  }
  return responses, nil
}

func userToResponse(user *types.User) *UserResponse {
  return &UserResponse{
    ID:        user.ID,
    Email:     user.Email,
    CreatedAt: user.CreatedAt,
  }
}
