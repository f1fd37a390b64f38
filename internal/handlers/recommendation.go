package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/services"
)

type RecommendationHandler struct {
  log    *logger.Logger
  recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{
    log:    log.With("handler", "RecommendationHandler"),
    recSvc: recSvc,
  }
}

// The public bound is 1..100; the service still clamps to its own ceiling.
type userRecommendationsQuery struct {
  Limit         int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
  IncludeReason bool   `form:"includeReason,default=false"`
  Algo          string `form:"algo"`
}

// GET /api/v1/admin/recommendations?limit=
func (h *RecommendationHandler) GetAllRecommendations(c *gin.Context) {
  recs, err := h.recSvc.GetAllRecommendations(c.Request.Context(), queryLimit(c, 10))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, recs)
}

// GET /api/v1/users/:userId/recommendations?limit=&includeReason=&algo=
func (h *RecommendationHandler) GetUserRecommendations(c *gin.Context) {
  userID, err := pathUUID(c, "userId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  var query userRecommendationsQuery
  if err := c.ShouldBindQuery(&query); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  recs, err := h.recSvc.GetUserRecommendations(c.Request.Context(), userID, query.Limit, query.IncludeReason, query.Algo)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, recs)
}

// POST /api/v1/users/:userId/recommendations/recompute
func (h *RecommendationHandler) RecomputeUserRecommendations(c *gin.Context) {
  userID, err := pathUUID(c, "userId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  var query userRecommendationsQuery
  if err := c.ShouldBindQuery(&query); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  recs, err := h.recSvc.RecomputeRecommendationsForUser(c.Request.Context(), userID, query.Limit, query.IncludeReason, query.Algo)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  c.JSON(http.StatusAccepted, recs)
}

// POST /api/v1/admin/recommendations/recompute
func (h *RecommendationHandler) RecomputeAllRecommendations(c *gin.Context) {
  if err := h.recSvc.RecomputeAllRecommendations(c.Request.Context()); err != nil {
    RespondAppError(c, err)
    return
  }
  c.Status(http.StatusAccepted)
}

// POST /api/v1/users/:userId/recommendations/:itemId/dismiss
// Exposed at the boundary but there is no backing service operation yet.
func (h *RecommendationHandler) DismissRecommendation(c *gin.Context) {
  c.Status(http.StatusNotImplemented)
}
