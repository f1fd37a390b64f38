package app

import (
	"context"
	"encoding/json"

	"github.com/recolab/reco-backend/internal/services"
	"github.com/recolab/reco-backend/internal/types"
)

const smokeSeedEmail = "user@test.com"

// seedSmokeData inserts one user, one item and one rating so a fresh
// deployment has something to exercise the read paths with. Re-runs are
// no-ops once the seed user exists.
func (a *App) seedSmokeData(ctx context.Context) error {
	exists, err := a.Repos.User.EmailExists(ctx, nil, smokeSeedEmail)
	if err != nil {
		return err
	}
	if exists {
		a.Log.Info("Smoke seed already present, skipping")
		return nil
	}

	user, err := a.Services.User.CreateUser(ctx, services.CreateUserRequest{Email: smokeSeedEmail})
	if err != nil {
		return err
	}
	item, err := a.Services.Item.CreateItem(ctx, services.CreateItemRequest{
		Title:    "Film random",
		Type:     types.ItemTypeMovie,
		Metadata: json.RawMessage(`{"genre":"Action"}`),
	})
	if err != nil {
		return err
	}
	if _, err := a.Services.Rating.RateItem(ctx, item.ID, user.ID, 5); err != nil {
		return err
	}

	users, _ := a.Repos.User.Count(ctx, nil)
	items, _ := a.Repos.Item.Count(ctx, nil)
	ratings, _ := a.Repos.Rating.Count(ctx, nil)
	a.Log.Info("Smoke seed complete", "users", users, "items", items, "ratings", ratings)
	return nil
}
