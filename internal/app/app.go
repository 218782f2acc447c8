package app

import (
	"github.com/reelswipe/core/internal/config"
	http_genres "github.com/reelswipe/core/internal/delivery/http/genres"
	http_init "github.com/reelswipe/core/internal/delivery/http/init"
	http_access_middleware "github.com/reelswipe/core/internal/delivery/http/middleware/access"
	http_requestid_middleware "github.com/reelswipe/core/internal/delivery/http/middleware/requestid"
	http_pool "github.com/reelswipe/core/internal/delivery/http/pool"
	http_swagger "github.com/reelswipe/core/internal/delivery/http/swagger"
	infra_pg_init "github.com/reelswipe/core/internal/infra/postgres/init"
	infra_postgres_poolrecord "github.com/reelswipe/core/internal/infra/postgres/poolrecord"
	infra_room_exclusion "github.com/reelswipe/core/internal/infra/redis/exclusion"
	infra_filter_cache "github.com/reelswipe/core/internal/infra/redis/filtercache"
	infra_redis_init "github.com/reelswipe/core/internal/infra/redis/init"
	infra_tmdb "github.com/reelswipe/core/internal/infra/tmdb"
	"github.com/reelswipe/core/internal/service/breaker"
	usecase_genres "github.com/reelswipe/core/internal/usecase/genres"
	usecase_pool "github.com/reelswipe/core/internal/usecase/pool"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	catalogBreaker := breaker.New(breaker.Settings{
		Name:             "tmdb",
		FailureThreshold: cfg.Breaker.FailureThreshold,
		SuccessThreshold: cfg.Breaker.SuccessThreshold,
		ResetTimeout:     cfg.Breaker.ResetTimeout,
		MonitoringWindow: cfg.Breaker.MonitoringWindow,
	})
	catalog := infra_tmdb.NewBreakerClient(
		infra_tmdb.New(cfg.Catalog.BaseURL, cfg.Catalog.APIKey,
			infra_tmdb.WithRequestInterval(cfg.Catalog.RequestInterval),
		),
		catalogBreaker,
	)

	filterCache := infra_filter_cache.New(redisConn, "filter_cache",
		infra_filter_cache.WithTTL(cfg.Pool.CacheTTL),
	)
	exclusions := infra_room_exclusion.New(redisConn, "room_exclusions")
	records := infra_postgres_poolrecord.New(pgConn)

	poolUC := usecase_pool.New(catalog, filterCache, exclusions, records, usecase_pool.Config{
		PoolSize:         cfg.Pool.Size,
		StrictValidation: cfg.Pool.StrictValidation,
	})
	genresUC := usecase_genres.New(catalog)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Use(http_requestid_middleware.Middleware())
	controllerPool.Use(http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_pool.New(poolUC))
	controllerPool.Add(http_genres.New(genresUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
