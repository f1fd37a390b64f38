package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/services"
)

type UserHandler struct {
  log         *logger.Logger
  userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
  return &UserHandler{
    log:         log.With("handler", "UserHandler"),
    userService: userService,
  }
}

// GET /api/v1/users/:userId
func (uh *UserHandler) GetUserByID(c *gin.Context) {
  userID, err := pathUUID(c, "userId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  user, err := uh.userService.GetUserByID(c.Request.Context(), userID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, user)
}

// GET /api/v1/users?limit=
func (uh *UserHandler) GetAllUsers(c *gin.Context) {
  users, err := uh.userService.GetAllUsers(c.Request.Context(), queryLimit(c, 50))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, users)
}

// POST /api/v1/users
func (uh *UserHandler) CreateUser(c *gin.Context) {
  var req services.CreateUserRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  user, err := uh.userService.CreateUser(c.Request.Context(), req)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, user)
}
