package app

import (
	"context"
	"log"
	"os"
	"time"

	"career-engine/internal/config"
	"career-engine/internal/database"
	dbpostgres "career-engine/internal/database/postgres"
	"career-engine/internal/embedding"
	"career-engine/internal/infrastructure/cache"
	"career-engine/internal/pkg/jwt"
	"career-engine/internal/repository"
	"career-engine/internal/usecase"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

const serviceTokenTTL = 24 * time.Hour

// Container owns every long-lived dependency. Database and Redis are
// optional; a nil DB disables the catalog endpoint and a nil cache
// leaves embeddings uncached.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis

	Embedder embedding.Embedder
	JWT      jwt.Service

	client *embedding.Client

	MatchUC    usecase.MatchUsecase
	CatalogUC  usecase.CatalogMatchUsecase
	SkillGapUC usecase.SkillGapUsecase
	AnalysisUC usecase.AnalysisUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			return nil, err
		}
		c.DB = db
	} else {
		logger.Printf("[App] no database configured, catalog matching disabled")
	}

	client := embedding.NewClient(embedding.ClientConfig{
		BaseURL:           cfg.Embedding.URL,
		Model:             cfg.Embedding.Model,
		Dimension:         cfg.Embedding.Dimension,
		MaxSequenceLength: cfg.Embedding.MaxSequenceLength,
		BatchSize:         cfg.Embedding.BatchSize,
		MaxWorkers:        cfg.Embedding.MaxWorkers,
	}, logger)
	c.client = client
	c.Embedder = client

	if cfg.Redis.Enabled() {
		c.Cache = cache.NewRedis(cfg.Redis, logger)
		c.Embedder = embedding.NewCached(client, c.Cache, cfg.Embedding.Model, cfg.Embedding.CacheTTL, logger)
	}

	if cfg.Auth.Enabled() {
		c.JWT = jwt.NewHMACService(cfg.Auth.AccessSecret, serviceTokenTTL)
	}

	c.MatchUC = usecase.NewMatchUsecase(c.Embedder, logger)
	c.SkillGapUC = usecase.NewSkillGapUsecase()
	c.AnalysisUC = usecase.NewAnalysisUsecase(logger)

	var jobs repository.JobRepository
	if c.DB != nil {
		jobs = repository.NewPostgresJobRepository(c.DB)
	}
	c.CatalogUC = usecase.NewCatalogMatchUsecase(jobs, c.MatchUC, logger)

	return c, nil
}

// Warmup probes the inference server so the first request does not pay
// the connection cost. A failed warmup is logged, not fatal.
func (c *Container) Warmup(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Warmup(ctx); err != nil {
		c.Logger.Printf("[App] embedding warmup failed, serving degraded: %v", err)
		return
	}
	c.Logger.Printf("[App] embedding model %s ready (dim=%d)", c.Config.Embedding.Model, c.Config.Embedding.Dimension)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
