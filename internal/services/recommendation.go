package services

import (
  "context"
  "encoding/json"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/recolab/reco-backend/internal/cache"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/repos"
  "github.com/recolab/reco-backend/internal/types"
)

type RecommendationResponse struct {
  ID          uuid.UUID       `json:"id"`
  UserID      uuid.UUID       `json:"user_id"`
  ItemID      uuid.UUID       `json:"item_id"`
  Score       float64         `json:"score"`
  Rank        int             `json:"rank"`
  AlgoVersion string          `json:"algo_version"`
  RunID       *uuid.UUID      `json:"run_id,omitempty"`
  Reason      json.RawMessage `json:"reason,omitempty"`
  GeneratedAt time.Time       `json:"generated_at"`
}

type RecommendationService interface {
  GetAllRecommendations(ctx context.Context, limit int) ([]*RecommendationResponse, error)
  GetUserRecommendations(ctx context.Context, userID uuid.UUID, limit int, includeReason bool, algoVersion string) ([]*RecommendationResponse, error)
  RecomputeAllRecommendations(ctx context.Context) error
  RecomputeRecommendationsForUser(ctx context.Context, userID uuid.UUID, limit int, includeReason bool, algoVersion string) ([]*RecommendationResponse, error)
}

type recommendationService struct {
  db       *gorm.DB
  log      *logger.Logger
  recRepo  repos.RecommendationRepo
  jobSvc   RecoJobService
  recCache *cache.RecommendationCache
  policy   paging.Policy
}

func NewRecommendationService(db *gorm.DB, log *logger.Logger, recRepo repos.RecommendationRepo, jobSvc RecoJobService, recCache *cache.RecommendationCache, policy paging.Policy) RecommendationService {
  return &recommendationService{
    db:       db,
    log:      log.With("service", "RecommendationService"),
    recRepo:  recRepo,
    jobSvc:   jobSvc,
    recCache: recCache,
    policy:   policy,
  }
}

// GetAllRecommendations lists across all users; the reason is always
// included on this admin-facing path.
func (rs *recommendationService) GetAllRecommendations(ctx context.Context, limit int) ([]*RecommendationResponse, error) {
  page := rs.policy.FirstPage(limit)
  recommendations, err := rs.recRepo.FindPage(ctx, nil, page)
  if err != nil {
    return nil, err
  }
  responses := make([]*RecommendationResponse, 0, len(recommendations))
  for _, rec := range recommendations {
    responses = append(responses, recommendationToResponse(rec, true))
  }
  return responses, nil
}

// GetUserRecommendations filters by user and, when algoVersion is non-blank,
// by that exact algorithm label. includeReason=false strips the reason from
// every record regardless of what is stored; this is response shaping, not a
// storage filter.
func (rs *recommendationService) GetUserRecommendations(ctx context.Context, userID uuid.UUID, limit int, includeReason bool, algoVersion string) ([]*RecommendationResponse, error) {
  page := rs.policy.FirstPage(limit)

  cacheKey := cache.UserListKey(userID, page.Size, includeReason, algoVersion)
  if raw, ok := rs.recCache.Get(ctx, cacheKey); ok {
    var cached []*RecommendationResponse
    if err := json.Unmarshal(raw, &cached); err == nil {
      return cached, nil
    }
    rs.log.Warn("Dropping undecodable cache entry", "key", cacheKey)
  }

  var (
    recommendations []*types.Recommendation
    err             error
  )
  if strings.TrimSpace(algoVersion) != "" {
    recommendations, err = rs.recRepo.FindByUserAndAlgo(ctx, nil, userID, algoVersion, page)
  } else {
    recommendations, err = rs.recRepo.FindByUser(ctx, nil, userID, page)
  }
  if err != nil {
    return nil, err
  }

  responses := make([]*RecommendationResponse, 0, len(recommendations))
  for _, rec := range recommendations {
    responses = append(responses, recommendationToResponse(rec, includeReason))
  }

  if payload, err := json.Marshal(responses); err == nil {
    rs.recCache.Set(ctx, cacheKey, payload)
  }
  return responses, nil
}

// RecomputeAllRecommendations triggers the external batch job and blocks for
// its outcome. It performs no storage access itself; callers re-query to see
// the replaced rows.
func (rs *recommendationService) RecomputeAllRecommendations(ctx context.Context) error {
  if err := rs.jobSvc.RunRecommendationJob(ctx, "all"); err != nil {
    return err
  }
  rs.recCache.InvalidateAll(ctx)
  return nil
}

// RecomputeRecommendationsForUser runs the full-catalog job (there is no
// per-user mode yet) and returns the refreshed listing for that user.
func (rs *recommendationService) RecomputeRecommendationsForUser(ctx context.Context, userID uuid.UUID, limit int, includeReason bool, algoVersion string) ([]*RecommendationResponse, error) {
  // TODO(v2): compute for a single user once the job grows a per-user mode.
  if err := rs.jobSvc.RunRecommendationJob(ctx, "all"); err != nil {
    return nil, err
  }
  rs.recCache.InvalidateAll(ctx)
  return rs.GetUserRecommendations(ctx, userID, limit, includeReason, algoVersion)
}

func recommendationToResponse(rec *types.Recommendation, includeReason bool) *RecommendationResponse {
  response := &RecommendationResponse{
    ID:          rec.ID,
    UserID:      rec.UserID,
    ItemID:      rec.ItemID,
    Score:       rec.Score,
    Rank:        rec.Rank,
    AlgoVersion: rec.AlgoVersion,
    RunID:       rec.RunID,
    GeneratedAt: rec.GeneratedAt,
  }
  if includeReason && len(rec.Reason) > 0 {
    response.Reason = json.RawMessage(rec.Reason)
  }
  return response
}
