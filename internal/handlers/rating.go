package handlers

import (
  "fmt"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/services"
)

type RatingHandler struct {
  log           *logger.Logger
  ratingService services.RatingService
}

func NewRatingHandler(log *logger.Logger, ratingService services.RatingService) *RatingHandler {
  return &RatingHandler{
    log:           log.With("handler", "RatingHandler"),
    ratingService: ratingService,
  }
}

// GET /api/v1/ratings?limit=
func (rh *RatingHandler) GetAllRatings(c *gin.Context) {
  ratings, err := rh.ratingService.GetAllRatings(c.Request.Context(), queryLimit(c, 50))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, ratings)
}

// GET /api/v1/ratings/:id
func (rh *RatingHandler) GetRatingByID(c *gin.Context) {
  ratingID, err := pathUUID(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  rating, err := rh.ratingService.GetRatingByID(c.Request.Context(), ratingID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, rating)
}

// GET /api/v1/users/:userId/ratings?limit=
func (rh *RatingHandler) GetRatingsByUser(c *gin.Context) {
  userID, err := pathUUID(c, "userId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  ratings, err := rh.ratingService.GetRatingsByUser(c.Request.Context(), userID, queryLimit(c, 50))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, ratings)
}

// GET /api/v1/items/:itemId/ratings?limit=
func (rh *RatingHandler) GetRatingsByItem(c *gin.Context) {
  itemID, err := pathUUID(c, "itemId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  ratings, err := rh.ratingService.GetRatingsByItem(c.Request.Context(), itemID, queryLimit(c, 50))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, ratings)
}

// POST /api/v1/ratings/:itemId
func (rh *RatingHandler) RateItem(c *gin.Context) {
  itemID, err := pathUUID(c, "itemId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  var req services.CreateRatingRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  rating, err := rh.ratingService.RateItem(c.Request.Context(), itemID, req.UserID, req.Grade)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, rating)
}

// PUT /api/v1/ratings/:id?newGrade=
func (rh *RatingHandler) UpdateRating(c *gin.Context) {
  ratingID, err := pathUUID(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  rawGrade := c.Query("newGrade")
  newGrade, err := strconv.Atoi(rawGrade)
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, fmt.Errorf("invalid newGrade %q", rawGrade))
    return
  }
  rating, err := rh.ratingService.UpdateRating(c.Request.Context(), ratingID, newGrade)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, rating)
}
