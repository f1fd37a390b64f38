package app

import (
	"github.com/gin-gonic/gin"

	"github.com/recolab/reco-backend/internal/server"
)

func wireRouter(serviceName string, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:           serviceName,
		UserHandler:           handlerset.User,
		ItemHandler:           handlerset.Item,
		RatingHandler:         handlerset.Rating,
		RecommendationHandler: handlerset.Recommendation,
	})
}
