package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zyreejago/hidroponik/api/routes"
	"github.com/zyreejago/hidroponik/internal/admin"
	"github.com/zyreejago/hidroponik/internal/cart"
	"github.com/zyreejago/hidroponik/internal/checkout"
	"github.com/zyreejago/hidroponik/internal/inquiries"
	"github.com/zyreejago/hidroponik/internal/orders"
	"github.com/zyreejago/hidroponik/internal/shipping"
	"github.com/zyreejago/hidroponik/internal/wallets"
	"github.com/zyreejago/hidroponik/pkg/auth/session"
	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/db"
	"github.com/zyreejago/hidroponik/pkg/logger"
	"github.com/zyreejago/hidroponik/pkg/metrics"
	"github.com/zyreejago/hidroponik/pkg/migrate"
	"github.com/zyreejago/hidroponik/pkg/redis"
	"github.com/zyreejago/hidroponik/pkg/storage/gcs"
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

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := gcsClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing object storage", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMet := metrics.NewHTTPMetrics(registry)
	shipMet := metrics.NewShippingMetrics(registry)

	ordersRepo := orders.NewRepository(dbClient.DB())

	ordersService, err := orders.NewService(ordersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	walletsService, err := wallets.NewService(wallets.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create e-wallet service", err)
		os.Exit(1)
	}

	inquiriesService, err := inquiries.NewService(inquiries.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create inquiries service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(redisClient, cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	shippingService, err := shipping.NewService(shipping.NewRateClient(cfg.Shipping), cfg.Shipping, logg, shipMet)
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(
		ordersRepo,
		dbClient,
		cartService,
		shippingService,
		walletsService,
		gcsClient.BucketHandle(cfg.GCS.BucketName),
		logg,
		cfg.Checkout,
		cfg.GCS,
		cfg.Shipping,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(
		admin.NewRepository(dbClient.DB()),
		sessionManager,
		redisClient,
		logg,
		cfg.App,
		cfg.JWT,
		cfg.Password,
		cfg.AuthRateLimit,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
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
		Handler: routes.NewRouter(routes.Dependencies{
			Config:    cfg,
			Logger:    logg,
			Registry:  registry,
			HTTPMet:   httpMet,
			DB:        dbClient,
			Redis:     redisClient,
			GCS:       gcsClient,
			Sessions:  sessionManager,
			Admin:     adminService,
			Cart:      cartService,
			Shipping:  shippingService,
			Checkout:  checkoutService,
			Orders:    ordersService,
			Wallets:   walletsService,
			Inquiries: inquiriesService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
