package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/services"
)

type ItemHandler struct {
  log         *logger.Logger
  itemService services.ItemService
}

func NewItemHandler(log *logger.Logger, itemService services.ItemService) *ItemHandler {
  return &ItemHandler{
    log:         log.With("handler", "ItemHandler"),
    itemService: itemService,
  }
}

// GET /api/v1/items/:itemId
func (ih *ItemHandler) GetItemByID(c *gin.Context) {
  itemID, err := pathUUID(c, "itemId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  item, err := ih.itemService.GetItemByID(c.Request.Context(), itemID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, item)
}

// GET /api/v1/items?limit=
func (ih *ItemHandler) GetAllItems(c *gin.Context) {
  items, err := ih.itemService.GetAllItems(c.Request.Context(), queryLimit(c, 50))
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, items)
}

// POST /api/v1/items
func (ih *ItemHandler) CreateItem(c *gin.Context) {
  var req services.CreateItemRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
    return
  }
  item, err := ih.itemService.CreateItem(c.Request.Context(), req)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, item)
}
