package app

import (
	"gorm.io/gorm"

	"github.com/recolab/reco-backend/internal/logger"
	"github.com/recolab/reco-backend/internal/repos"
)

type Repos struct {
	User           repos.UserRepo
	Item           repos.ItemRepo
	Rating         repos.RatingRepo
	Recommendation repos.RecommendationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		Item:           repos.NewItemRepo(db, log),
		Rating:         repos.NewRatingRepo(db, log),
		Recommendation: repos.NewRecommendationRepo(db, log),
	}
}
