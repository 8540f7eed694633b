package di

import (
	"fmt"

	"StorePulse/internal/domain/repository"
	"StorePulse/internal/handler/api"
	internalrepo "StorePulse/internal/repository"
	"StorePulse/internal/service/ratelimit"
	"StorePulse/internal/usecase"
	"StorePulse/pkg/cache"
	"StorePulse/pkg/config"
	xhttp "StorePulse/pkg/http"
	"StorePulse/pkg/logger"
	"StorePulse/pkg/metrics"
	"StorePulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the memoization cache for the configured backend.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize)), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRuleCatalog creates the static association-rule catalog.
func ProvideRuleCatalog() repository.RuleCatalog {
	return internalrepo.NewStaticRuleCatalog()
}

// ProvideDatasetRepository creates the memoized dataset repository.
func ProvideDatasetRepository(cfg *config.Config, c cache.Service, m repository.Metrics, l *logger.Logger) repository.DatasetRepository {
	repo := internalrepo.NewCachedDatasetRepository(c, m)
	repo.SetLogger(l)
	if cfg.Dashboard.CustomersCSV != "" {
		repo.SetCustomersCSV(cfg.Dashboard.CustomersCSV)
	}
	return repo
}

// ProvidePanelService creates the panel orchestration use case.
func ProvidePanelService(datasets repository.DatasetRepository, rules repository.RuleCatalog, m repository.Metrics) *usecase.PanelService {
	return usecase.NewPanelService(datasets, rules, m)
}

// ProvideSession creates the dashboard session identity.
func ProvideSession() *usecase.Session {
	return usecase.NewSession()
}

// ProvideRateLimiter creates the per-client API limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvidePanelsHandler creates the Echo handler for the panel endpoints.
func ProvidePanelsHandler(l *logger.Logger, svc *usecase.PanelService, session *usecase.Session, rl *ratelimit.Limiter) *api.PanelsHandler {
	return api.NewPanelsHandler(l, svc, session, rl)
}

// ProvideHandler exposes the panels handler as the server route registrar.
func ProvideHandler(h *api.PanelsHandler) xhttp.Handler {
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
