package app

import (
	"github.com/recolab/reco-backend/internal/handlers"
	"github.com/recolab/reco-backend/internal/logger"
)

type Handlers struct {
	User           *handlers.UserHandler
	Item           *handlers.ItemHandler
	Rating         *handlers.RatingHandler
	Recommendation *handlers.RecommendationHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:           handlers.NewUserHandler(log, serviceset.User),
		Item:           handlers.NewItemHandler(log, serviceset.Item),
		Rating:         handlers.NewRatingHandler(log, serviceset.Rating),
		Recommendation: handlers.NewRecommendationHandler(log, serviceset.Recommendation),
	}
}
