package app

import (
	"time"

	"github.com/recolab/reco-backend/internal/logger"
	"github.com/recolab/reco-backend/internal/paging"
	"github.com/recolab/reco-backend/internal/services"
	"github.com/recolab/reco-backend/internal/utils"
)

type Config struct {
	ServiceName string
	Environment string
	HTTPPort    string

	// CatalogPaging covers users, items and ratings listings.
	CatalogPaging paging.Policy
	// RecoPaging covers recommendation listings. The public per-user bound is
	// 1..100 at the boundary; this ceiling is what the service actually
	// enforces, so keeping both in configuration lets an operator reconcile
	// them.
	RecoPaging paging.Policy

	Job       services.RecoJobConfig
	SmokeSeed bool
}

func LoadConfig(log *logger.Logger) Config {
	jobCfg := services.DefaultRecoJobConfig()
	jobCfg.ComposeBin = utils.GetEnv("RECO_JOB_COMPOSE_BIN", jobCfg.ComposeBin, log)
	jobCfg.ComposeService = utils.GetEnv("RECO_JOB_COMPOSE_SERVICE", jobCfg.ComposeService, log)
	jobCfg.PerUser = utils.GetEnvAsInt("RECO_JOB_PER_USER", jobCfg.PerUser, log)
	jobCfg.Neighbors = utils.GetEnvAsInt("RECO_JOB_NEIGHBORS", jobCfg.Neighbors, log)
	jobCfg.AlgoVersion = utils.GetEnv("RECO_JOB_ALGO", jobCfg.AlgoVersion, log)
	jobCfg.Timeout = time.Duration(utils.GetEnvAsInt("RECO_JOB_TIMEOUT_SECONDS", 0, log)) * time.Second
	jobCfg.SingleFlight = utils.GetEnvAsBool("RECO_JOB_SINGLEFLIGHT", false, log)

	return Config{
		ServiceName: "reco-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		HTTPPort:    utils.GetEnv("PORT", "8080", log),
		CatalogPaging: paging.Policy{
			DefaultLimit: utils.GetEnvAsInt("PAGE_DEFAULT_LIMIT", 50, log),
			MaxLimit:     utils.GetEnvAsInt("PAGE_MAX_LIMIT", 50, log),
		},
		RecoPaging: paging.Policy{
			DefaultLimit: utils.GetEnvAsInt("RECO_PAGE_DEFAULT_LIMIT", 50, log),
			MaxLimit:     utils.GetEnvAsInt("RECO_PAGE_MAX_LIMIT", 50, log),
		},
		Job:       jobCfg,
		SmokeSeed: utils.GetEnvAsBool("RECO_SMOKE_SEED", false, log),
	}
}
