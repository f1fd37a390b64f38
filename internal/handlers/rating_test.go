package handlers

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/recolab/reco-backend/internal/apierr"
  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/services"
)

type fakeRatingService struct {
  rateErr   error
  updateErr error
  rating    *services.RatingResponse
}

func (f *fakeRatingService) RateItem(ctx context.Context, itemID, userID uuid.UUID, grade int) (*services.RatingResponse, error) {
  if f.rateErr != nil {
    return nil, f.rateErr
  }
  if f.rating != nil {
    return f.rating, nil
  }
  return &services.RatingResponse{ID: uuid.New(), UserID: userID, ItemID: itemID, Grade: grade}, nil
}

func (f *fakeRatingService) UpdateRating(ctx context.Context, ratingID uuid.UUID, newGrade int) (*services.RatingResponse, error) {
  if f.updateErr != nil {
    return nil, f.updateErr
  }
  return &services.RatingResponse{ID: ratingID, Grade: newGrade}, nil
}

func (f *fakeRatingService) GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*services.RatingResponse, error) {
  return nil, apierr.NotFound(fmt.Errorf("rating %s not found", ratingID))
}

func (f *fakeRatingService) GetRatingsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*services.RatingResponse, error) {
  return []*services.RatingResponse{}, nil
}

func (f *fakeRatingService) GetRatingsByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*services.RatingResponse, error) {
  return []*services.RatingResponse{}, nil
}

func (f *fakeRatingService) GetAllRatings(ctx context.Context, limit int) ([]*services.RatingResponse, error) {
  return []*services.RatingResponse{}, nil
}

func newRatingTestRouter(t *testing.T, svc services.RatingService) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  t.Cleanup(func() { log.Sync() })

  rh := NewRatingHandler(log, svc)
  router := gin.New()
  router.POST("/api/v1/ratings/:itemId", rh.RateItem)
  router.PUT("/api/v1/ratings/:id", rh.UpdateRating)
  router.GET("/api/v1/ratings/:id", rh.GetRatingByID)
  return router
}

func postRating(router *gin.Engine, itemID string, body any) *httptest.ResponseRecorder {
  raw, _ := json.Marshal(body)
  req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings/"+itemID, bytes.NewReader(raw))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)
  return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
  t.Helper()
  var env ErrorEnvelope
  if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
    t.Fatalf("decode error envelope: %v (body %q)", err, rec.Body.String())
  }
  return env
}

func TestRateItemInvalidGradeMapsTo400(t *testing.T) {
  svc := &fakeRatingService{rateErr: apierr.InvalidArgument(errors.New("grade must be between 1 and 5"))}
  router := newRatingTestRouter(t, svc)

  rec := postRating(router, uuid.NewString(), map[string]any{"user_id": uuid.NewString(), "grade": 9})
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
  }
  if env := decodeEnvelope(t, rec); env.Error.Code != apierr.CodeInvalidArgument {
    t.Fatalf("code = %q, want %q", env.Error.Code, apierr.CodeInvalidArgument)
  }
}

func TestRateItemConflictMapsTo409(t *testing.T) {
  svc := &fakeRatingService{rateErr: apierr.Conflict(errors.New("rating already exists"))}
  router := newRatingTestRouter(t, svc)

  rec := postRating(router, uuid.NewString(), map[string]any{"user_id": uuid.NewString(), "grade": 4})
  if rec.Code != http.StatusConflict {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
  }
  if env := decodeEnvelope(t, rec); env.Error.Code != apierr.CodeConflict {
    t.Fatalf("code = %q, want %q", env.Error.Code, apierr.CodeConflict)
  }
}

func TestRateItemUnknownItemMapsTo404(t *testing.T) {
  svc := &fakeRatingService{rateErr: apierr.NotFound(errors.New("item not found"))}
  router := newRatingTestRouter(t, svc)

  rec := postRating(router, uuid.NewString(), map[string]any{"user_id": uuid.NewString(), "grade": 4})
  if rec.Code != http.StatusNotFound {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
  }
  if env := decodeEnvelope(t, rec); env.Error.Code != apierr.CodeNotFound {
    t.Fatalf("code = %q, want %q", env.Error.Code, apierr.CodeNotFound)
  }
}

func TestRateItemMalformedItemID(t *testing.T) {
  router := newRatingTestRouter(t, &fakeRatingService{})

  rec := postRating(router, "not-a-uuid", map[string]any{"user_id": uuid.NewString(), "grade": 4})
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
  }
  if env := decodeEnvelope(t, rec); env.Error.Code != apierr.CodeInvalidArgument {
    t.Fatalf("code = %q, want %q", env.Error.Code, apierr.CodeInvalidArgument)
  }
}

func TestRateItemHappyPathReturns201(t *testing.T) {
  router := newRatingTestRouter(t, &fakeRatingService{})
  userID := uuid.New()

  rec := postRating(router, uuid.NewString(), map[string]any{"user_id": userID, "grade": 5})
  if rec.Code != http.StatusCreated {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
  }
  var resp services.RatingResponse
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("decode response: %v", err)
  }
  if resp.UserID != userID || resp.Grade != 5 {
    t.Fatalf("response = %+v, want user %s grade 5", resp, userID)
  }
}

func TestUpdateRatingRejectsNonNumericGrade(t *testing.T) {
  router := newRatingTestRouter(t, &fakeRatingService{})

  req := httptest.NewRequest(http.MethodPut, "/api/v1/ratings/"+uuid.NewString()+"?newGrade=five", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
  }
}

func TestGetRatingByIDNotFoundEnvelope(t *testing.T) {
  router := newRatingTestRouter(t, &fakeRatingService{})

  req := httptest.NewRequest(http.MethodGet, "/api/v1/ratings/"+uuid.NewString(), nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)
  if rec.Code != http.StatusNotFound {
    t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
  }
  env := decodeEnvelope(t, rec)
  if env.Error.Code != apierr.CodeNotFound || env.Error.Message == "" {
    t.Fatalf("envelope = %+v, want not_found with message", env)
  }
}
