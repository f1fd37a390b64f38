package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/repos"
  "github.com/recolab/reco-backend/internal/types"
)

type CreateItemRequest struct {
  Title    string          `json:"title" binding:"required"`
  Type     types.ItemType  `json:"type" binding:"required"`
  Metadata json.RawMessage `json:"metadata"`
}

type ItemResponse struct {
  ID        uuid.UUID       `json:"id"`
  Title     string          `json:"title"`
  Type      types.ItemType  `json:"type"`
  Metadata  json.RawMessage `json:"metadata,omitempty"`
  CreatedAt time.Time       `json:"created_at"`
}

type ItemService interface {
  CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
  GetItemByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error)
  GetAllItems(ctx context.Context, limit int) ([]*ItemResponse, error)
}

type itemService struct {
  db       *gorm.DB
  log      *logger.Logger
  itemRepo repos.ItemRepo
  policy   paging.Policy
}

func NewItemService(db *gorm.DB, log *logger.Logger, itemRepo repos.ItemRepo, policy paging.Policy) ItemService {
  return &itemService{
    db:       db,
    log:      log.With("service", "ItemService"),
    itemRepo: itemRepo,
    policy:   policy,
  }
}

func (is *itemService) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
  if !req.Type.Valid() {
    return nil, apierr.InvalidArgument(fmt.Errorf("unknown item type %q", req.Type))
  }
  item := &types.Item{
    Title:    req.Title,
    Type:     req.Type,
    // Stored verbatim, never interpreted.
    Metadata: datatypes.JSON(req.Metadata),
  }
  saved, err := is.itemRepo.Create(ctx, nil, item)
  if err != nil {
    return nil, err
  }
  is.log.Info("Created item", "item_id", saved.ID, "type", saved.Type)
  return itemToResponse(saved), nil
}

func (is *itemService) GetItemByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
  item, err := is.itemRepo.GetByID(ctx, nil, itemID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound(fmt.Errorf("item with id %s not found", itemID))
    }
    return nil, err
  }
  return itemToResponse(item), nil
}

func (is *itemService) GetAllItems(ctx context.Context, limit int) ([]*ItemResponse, error) {
  page := is.policy.FirstPage(limit)
  items, err := is.itemRepo.FindPage(ctx, nil, page)
  if err != nil {
    return nil, err
  }
  responses := make([]*ItemResponse, 0, len(items))
  for _, item := range items {
    responses = append(responses, itemToResponse(item))
  }
  return responses, nil
}

func itemToResponse(item *types.Item) *ItemResponse {
  return &ItemResponse{
    ID:        item.ID,
    Title:     item.Title,
    Type:      item.Type,
    Metadata:  json.RawMessage(item.Metadata),
    CreatedAt: item.CreatedAt,
  }
}
