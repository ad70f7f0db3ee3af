package di

import (
	"context"
	"time"

	domrepo "RegimeEye/internal/domain/repository"
	"RegimeEye/internal/handler/api"
	internalrepo "RegimeEye/internal/repository"
	"RegimeEye/internal/usecase"
	"RegimeEye/pkg/cache"
	pkgch "RegimeEye/pkg/clickhouse"
	"RegimeEye/pkg/config"
	xhttp "RegimeEye/pkg/http"
	applogger "RegimeEye/pkg/logger"
	"RegimeEye/pkg/metrics"
	"RegimeEye/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the audit
// schema. The store is optional: an unconfigured or unreachable database is
// logged and the service runs without one.
func ProvideClickHouseClient(cfg *config.Config, l *applogger.Logger) *pkgch.Client {
	if !cfg.DatabaseConfigured() {
		l.Info("no database configured, scenario audit disabled")
		return nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithURL(cfg.Database.URL),
		pkgch.WithHost(cfg.Database.Host),
		pkgch.WithPort(cfg.Database.Port),
		pkgch.WithDatabase(cfg.Database.Name),
		pkgch.WithCredentials(cfg.Database.User, cfg.Database.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.Database.DialTimeout, cfg.Database.ReadTimeout),
	)
	if err != nil {
		l.Warn("clickhouse unavailable, scenario audit disabled", applogger.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.Database.Name)); err != nil {
		l.Warn("clickhouse schema init failed, scenario audit disabled", applogger.Error(err))
		_ = client.Close()
		return nil
	}

	l.Info("clickhouse connected", applogger.String("database", cfg.Database.Name))
	return client
}

// ProvideDocumentStore creates the scenario audit store, or nil without a
// database.
func ProvideDocumentStore(client *pkgch.Client, cfg *config.Config) domrepo.DocumentStore {
	if client == nil {
		return nil
	}
	return internalrepo.NewClickHouseDocumentStore(client.DB(), cfg.Database.Name)
}

// ProvideCache creates the response cache: layered memory+Redis when Redis is
// configured and reachable, memory-only otherwise, nil when disabled.
func ProvideCache(cfg *config.Config, l *applogger.Logger) cache.Service {
	if !cfg.Cache.Enabled {
		return nil
	}

	if cfg.Cache.RedisAddr != "" {
		rc, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.RedisAddr),
			cache.WithRedisPassword(cfg.Cache.Password),
			cache.WithRedisDB(cfg.Cache.DB),
			cache.WithRedisPrefix(cfg.Cache.Prefix),
		)
		if err != nil {
			l.Warn("redis unavailable, falling back to memory cache", applogger.Error(err))
		} else {
			l.Info("redis cache connected", applogger.String("addr", cfg.Cache.RedisAddr))
			return cache.NewLayeredCache(rc)
		}
	}

	return cache.NewMemoryCache()
}

// ProvideRegimeService creates the regime snapshot use case.
func ProvideRegimeService() *usecase.RegimeService {
	return usecase.NewRegimeService()
}

// ProvideBacktestService creates the synthetic backtest use case.
func ProvideBacktestService(c cache.Service, m domrepo.Metrics, cfg *config.Config) *usecase.BacktestService {
	return usecase.NewBacktestService(c, m, cfg.Cache.BacktestTTL)
}

// ProvideScenarioService creates the stress-test use case.
func ProvideScenarioService(store domrepo.DocumentStore, m domrepo.Metrics, l *applogger.Logger, cfg *config.Config) *usecase.ScenarioService {
	return usecase.NewScenarioService(store, m, l, cfg.Database.WriteTimeout)
}

// ProvideDashboardHandler creates the HTTP handler.
func ProvideDashboardHandler(
	l *applogger.Logger,
	regime *usecase.RegimeService,
	backtest *usecase.BacktestService,
	scenarios *usecase.ScenarioService,
	store domrepo.DocumentStore,
) xhttp.Handler {
	return api.NewDashboardHandler(l, regime, backtest, scenarios, store)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	chClient *pkgch.Client,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, handler, chClient, c)
}
