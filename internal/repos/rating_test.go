package repos

import (
  "context"
  "errors"
  "testing"

  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/recolab/reco-backend/internal/logger"
  "github.com/recolab/reco-backend/internal/paging"
  "github.com/recolab/reco-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    TranslateError: true,
  })
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  if err := db.AutoMigrate(&types.User{}, &types.Item{}, &types.Rating{}, &types.Recommendation{}); err != nil {
    t.Fatalf("automigrate: %v", err)
  }
  t.Cleanup(func() {
    sqlDB, err := db.DB()
    if err == nil {
      sqlDB.Close()
    }
  })
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("init logger: %v", err)
  }
  return log
}

func seedUserAndItem(t *testing.T, db *gorm.DB) (*types.User, *types.Item) {
  t.Helper()
  user := &types.User{Email: uuid.NewString() + "@test.com"}
  if err := db.Create(user).Error; err != nil {
    t.Fatalf("seed user: %v", err)
  }
  item := &types.Item{Title: "Dune", Type: types.ItemTypeMovie}
  if err := db.Create(item).Error; err != nil {
    t.Fatalf("seed item: %v", err)
  }
  return user, item
}

func TestRatingUniqueConstraintBackstop(t *testing.T) {
  db := newTestDB(t)
  repo := NewRatingRepo(db, newTestLogger(t))
  user, item := seedUserAndItem(t, db)
  ctx := context.Background()

  first := &types.Rating{UserID: user.ID, ItemID: item.ID, Grade: 4}
  if _, err := repo.Create(ctx, nil, first); err != nil {
    t.Fatalf("first create: %v", err)
  }

  second := &types.Rating{UserID: user.ID, ItemID: item.ID, Grade: 5}
  _, err := repo.Create(ctx, nil, second)
  if err == nil {
    t.Fatalf("second create for same (user,item) should fail")
  }
  if !errors.Is(err, gorm.ErrDuplicatedKey) {
    t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
  }
}

func TestFindByUserAndItemReturnsNilWhenAbsent(t *testing.T) {
  db := newTestDB(t)
  repo := NewRatingRepo(db, newTestLogger(t))
  ctx := context.Background()

  got, err := repo.FindByUserAndItem(ctx, nil, uuid.New(), uuid.New())
  if err != nil {
    t.Fatalf("FindByUserAndItem: %v", err)
  }
  if got != nil {
    t.Fatalf("expected nil rating, got %+v", got)
  }
}

func TestFindPageHonorsPageSize(t *testing.T) {
  db := newTestDB(t)
  repo := NewRatingRepo(db, newTestLogger(t))
  user, _ := seedUserAndItem(t, db)
  ctx := context.Background()

  for i := 0; i < 5; i++ {
    item := &types.Item{Title: "Item", Type: types.ItemTypeBook}
    if err := db.Create(item).Error; err != nil {
      t.Fatalf("seed item %d: %v", i, err)
    }
    if _, err := repo.Create(ctx, nil, &types.Rating{UserID: user.ID, ItemID: item.ID, Grade: 3}); err != nil {
      t.Fatalf("create rating %d: %v", i, err)
    }
  }

  page := paging.Policy{DefaultLimit: 50, MaxLimit: 50}.FirstPage(3)
  got, err := repo.FindPage(ctx, nil, page)
  if err != nil {
    t.Fatalf("FindPage: %v", err)
  }
  if len(got) != 3 {
    t.Fatalf("len(FindPage)=%d, want 3", len(got))
  }
}

func TestUpdateGradeKeepsIdentity(t *testing.T) {
  db := newTestDB(t)
  repo := NewRatingRepo(db, newTestLogger(t))
  user, item := seedUserAndItem(t, db)
  ctx := context.Background()

  created, err := repo.Create(ctx, nil, &types.Rating{UserID: user.ID, ItemID: item.ID, Grade: 2})
  if err != nil {
    t.Fatalf("create: %v", err)
  }

  created.Grade = 5
  if _, err := repo.Save(ctx, nil, created); err != nil {
    t.Fatalf("save: %v", err)
  }

  reloaded, err := repo.GetByID(ctx, nil, created.ID)
  if err != nil {
    t.Fatalf("get: %v", err)
  }
  if reloaded.Grade != 5 {
    t.Fatalf("grade=%d, want 5", reloaded.Grade)
  }
  if reloaded.UserID != user.ID || reloaded.ItemID != item.ID {
    t.Fatalf("identity changed: %+v", reloaded)
  }
}
