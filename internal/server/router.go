package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/recolab/reco-backend/internal/handlers"
)

type RouterConfig struct {
  ServiceName           string
  UserHandler           *handlers.UserHandler
  ItemHandler           *handlers.ItemHandler
  RatingHandler         *handlers.RatingHandler
  RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))
  router.Use(otelgin.Middleware(cfg.ServiceName))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api/v1")
  {
    // Users
    api.GET("/users/:userId", cfg.UserHandler.GetUserByID)
    api.GET("/users", cfg.UserHandler.GetAllUsers)
    api.POST("/users", cfg.UserHandler.CreateUser)

    // Items
    api.GET("/items/:itemId", cfg.ItemHandler.GetItemByID)
    api.GET("/items", cfg.ItemHandler.GetAllItems)
    api.POST("/items", cfg.ItemHandler.CreateItem)

    // Ratings
    api.GET("/ratings", cfg.RatingHandler.GetAllRatings)
    api.GET("/ratings/:id", cfg.RatingHandler.GetRatingByID)
    api.GET("/users/:userId/ratings", cfg.RatingHandler.GetRatingsByUser)
    api.GET("/items/:itemId/ratings", cfg.RatingHandler.GetRatingsByItem)
    api.POST("/ratings/:itemId", cfg.RatingHandler.RateItem)
    api.PUT("/ratings/:id", cfg.RatingHandler.UpdateRating)

    // Recommendations
    api.GET("/admin/recommendations", cfg.RecommendationHandler.GetAllRecommendations)
    api.GET("/users/:userId/recommendations", cfg.RecommendationHandler.GetUserRecommendations)
    api.POST("/users/:userId/recommendations/recompute", cfg.RecommendationHandler.RecomputeUserRecommendations)
    api.POST("/users/:userId/recommendations/:itemId/dismiss", cfg.RecommendationHandler.DismissRecommendation)
    api.POST("/admin/recommendations/recompute", cfg.RecommendationHandler.RecomputeAllRecommendations)
  }

  return router
}
