package app

import (
	"gorm.io/gorm"

	"github.com/recolab/reco-backend/internal/cache"
	"github.com/recolab/reco-backend/internal/logger"
	"github.com/recolab/reco-backend/internal/services"
)

type Services struct {
	User           services.UserService
	Item           services.ItemService
	Rating         services.RatingService
	RecoJob        services.RecoJobService
	Recommendation services.RecommendationService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, recCache *cache.RecommendationCache) Services {
	log.Info("Wiring services...")
	launcher := services.NewExecJobLauncher(log, cfg.Job)
	jobService := services.NewRecoJobService(log, launcher, cfg.Job)
	return Services{
		User:           services.NewUserService(db, log, reposet.User, cfg.CatalogPaging),
		Item:           services.NewItemService(db, log, reposet.Item, cfg.CatalogPaging),
		Rating:         services.NewRatingService(db, log, reposet.Rating, reposet.Item, reposet.User, cfg.CatalogPaging),
		RecoJob:        jobService,
		Recommendation: services.NewRecommendationService(db, log, reposet.Recommendation, jobService, recCache, cfg.RecoPaging),
	}
}
