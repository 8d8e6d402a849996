package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/emoorm/storefront/api/routes"
	cartsvc "github.com/emoorm/storefront/internal/cart"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	followsvc "github.com/emoorm/storefront/internal/follow"
	"github.com/emoorm/storefront/internal/remote"
	sellersvc "github.com/emoorm/storefront/internal/seller"
	wishlistsvc "github.com/emoorm/storefront/internal/wishlist"
	"github.com/emoorm/storefront/pkg/config"
	"github.com/emoorm/storefront/pkg/db"
	"github.com/emoorm/storefront/pkg/events"
	"github.com/emoorm/storefront/pkg/logger"
	"github.com/emoorm/storefront/pkg/metrics"
	"github.com/emoorm/storefront/pkg/migrate"
	"github.com/emoorm/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repo := remote.NewRepository(dbClient.DB())

	cache, err := catalog.NewCache(repo, logg, metrics.NewCatalogMetrics(registry), catalog.Options{
		LoadTimeout: cfg.Catalog.LoadTimeout,
		UseSeed:     cfg.Catalog.UseSeed,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog cache", err)
		os.Exit(1)
	}

	clientState, err := clientstate.NewStore(redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create client state store", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{State: clientState, Catalog: cache})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlistsvc.NewService(wishlistsvc.ServiceParams{State: clientState, Catalog: cache})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	followService, err := followsvc.NewService(followsvc.ServiceParams{Repo: repo, Logger: logg})
	if err != nil {
		logg.Error(context.Background(), "failed to create follow service", err)
		os.Exit(1)
	}

	sellerService, err := sellersvc.NewService(sellersvc.ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		logg.Error(context.Background(), "failed to create seller service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DBPinger:    dbClient,
			RedisPinger: redisClient,
			Registry:    registry,
			Catalog:     cache,
			Remote:      repo,
			ClientState: clientState,
			Cart:        cartService,
			Wishlist:    wishlistService,
			Follow:      followService,
			Seller:      sellerService,
			Broadcaster: events.NewBroadcaster(),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
