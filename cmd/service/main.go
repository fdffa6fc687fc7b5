package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "freight/internal/app"
	"freight/internal/entities"
	"freight/internal/handlers/rest/bestfit_post"
	"freight/internal/handlers/rest/healthcheck_head"
	"freight/internal/handlers/rest/ping_get"
	"freight/internal/handlers/rest/shipment_bestfit_get"
	"freight/internal/handlers/rest/shipment_delete"
	"freight/internal/handlers/rest/shipment_get"
	"freight/internal/handlers/rest/shipment_post"
	"freight/internal/handlers/rest/shipment_put"
	"freight/internal/handlers/rest/shipments_get"
	"freight/internal/handlers/rest/truck_delete"
	"freight/internal/handlers/rest/truck_put"
	"freight/internal/handlers/rest/trucks_get"
	"freight/internal/handlers/rest/trucks_post"
	"freight/internal/handlers/rest/warehouse_post"
	"freight/internal/handlers/rest/warehouses_get"
	"freight/internal/pkg/config"
	"freight/internal/pkg/dotenv"
	"freight/internal/pkg/kafka"
	metrics_system "freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/auth"
	"freight/internal/pkg/middlewares/graceful_shutdown"
	"freight/internal/pkg/middlewares/metrics"
	"freight/internal/pkg/middlewares/rate_limiter"
	"freight/internal/pkg/middlewares/timeout"
	"freight/internal/pkg/postgres"
	"freight/pkg/logger"
	"freight/pkg/logger/zap_adapter"
	"freight/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting freight-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // graceful shutdown contexts intentionally derive from context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM: it is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	warehouseOp := func(next http.Handler) http.Handler {
		return auth.Require(log, entities.WarehouseOperator, next)
	}
	fleetOp := func(next http.Handler) http.Handler {
		return auth.Require(log, entities.FleetOperator, next)
	}

	router.Handle("/shipment", warehouseOp(shipment_post.New(log, app.ServiceShipment))).Methods("POST")
	router.Handle("/shipments", warehouseOp(shipments_get.New(log, app.ServiceShipment))).Methods("GET")
	router.Handle("/shipment/{id}", warehouseOp(shipment_get.New(log, app.ServiceShipment))).Methods("GET")
	router.Handle("/shipment/{id}", warehouseOp(shipment_put.New(log, app.ServiceShipment))).Methods("PUT")
	router.Handle("/shipment/{id}", warehouseOp(shipment_delete.New(log, app.ServiceShipment))).Methods("DELETE")

	router.Handle("/trucks/bestfit", warehouseOp(bestfit_post.New(log, app.ServiceMatcher))).Methods("POST")
	router.Handle("/shipment/{id}/bestfit", warehouseOp(shipment_bestfit_get.New(log, app.ServiceMatcher))).Methods("GET")

	router.Handle("/trucks", fleetOp(trucks_post.New(log, app.ServiceTruck))).Methods("POST")
	router.Handle("/trucks", fleetOp(trucks_get.New(log, app.ServiceTruck))).Methods("GET")
	router.Handle("/truck", fleetOp(truck_put.New(log, app.ServiceTruck))).Methods("PUT")
	router.Handle("/truck/{id}", fleetOp(truck_delete.New(log, app.ServiceTruck))).Methods("DELETE")

	router.Handle("/warehouse", warehouseOp(warehouse_post.New(log, app.ServiceWarehouse))).Methods("POST")
	router.Handle("/warehouses", warehouseOp(warehouses_get.New(log, app.ServiceWarehouse))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
