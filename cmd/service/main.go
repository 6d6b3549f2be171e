package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // exposto apenas em ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "entregas/internal/app"
	"entregas/internal/handlers/web/cliente_delete"
	"entregas/internal/handlers/web/cliente_novo"
	"entregas/internal/handlers/web/clientes_get"
	"entregas/internal/handlers/web/edit_profile"
	"entregas/internal/handlers/web/entregador_add"
	"entregas/internal/handlers/web/entregador_delete"
	"entregas/internal/handlers/web/entregador_edit"
	"entregas/internal/handlers/web/entregadores_get"
	"entregas/internal/handlers/web/healthcheck_head"
	"entregas/internal/handlers/web/index_get"
	"entregas/internal/handlers/web/login"
	"entregas/internal/handlers/web/logout"
	"entregas/internal/handlers/web/pedido_adicionar"
	"entregas/internal/handlers/web/pedido_editar"
	"entregas/internal/handlers/web/pedido_excluir"
	"entregas/internal/handlers/web/pedidos_get"
	"entregas/internal/handlers/web/ping_get"
	"entregas/internal/handlers/web/register"
	"entregas/internal/handlers/web/user_get"
	"entregas/internal/pkg/config"
	"entregas/internal/pkg/dotenv"
	"entregas/internal/pkg/kafka"
	metrics_system "entregas/internal/pkg/metrics"
	authmw "entregas/internal/pkg/middlewares/auth"
	"entregas/internal/pkg/middlewares/graceful_shutdown"
	"entregas/internal/pkg/middlewares/metrics"
	"entregas/internal/pkg/middlewares/rate_limiter"
	"entregas/internal/pkg/middlewares/timeout"
	"entregas/internal/pkg/postgres"
	pedidoService "entregas/internal/service/pedido"
	"entregas/pkg/logger"
	"entregas/pkg/logger/zap_adapter"
	"entregas/pkg/token_bucket"
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

	mainLog.Info("starting entregas application")

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

	// Sem brokers configurados os eventos de status viram no-op.
	var publisher pedidoService.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Brokers != "" {
		producer, err := kafka.NewProducer(log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
		publisher = producer
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx alimenta o BaseContext e não é cancelado no SIGTERM;
	// só depois do server.Shutdown(), para drenar requisições em voo.
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
	case err := <-pprofServerErr: // nil quando o pprof está desligado; o case nunca dispara
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx precisa ser independente do ctx, já cancelado aqui.
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

	// rotas que exigem sessão
	requireLogin := authmw.Middleware(app.ServiceAuth, app.Sessions, log)

	indexHandler := index_get.New(log, app.Sessions, app.Renderer)
	router.Handle("/", requireLogin(indexHandler)).Methods("GET")
	router.Handle("/index", requireLogin(indexHandler)).Methods("GET")
	router.Handle("/user/{username}", requireLogin(user_get.New(log, app.ServiceAuth, app.Sessions, app.Renderer))).Methods("GET")
	router.Handle("/edit_profile", requireLogin(edit_profile.New(log, app.ServiceAuth, app.Sessions, app.Renderer))).Methods("GET", "POST")

	router.Handle("/login", login.New(log, app.ServiceAuth, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/logout", logout.New(log, app.Sessions)).Methods("GET")
	router.Handle("/register", register.New(log, app.ServiceAuth, app.Sessions, app.Renderer)).Methods("GET", "POST")

	router.Handle("/clientes/", clientes_get.New(log, app.ServiceCliente, app.Sessions, app.Renderer)).Methods("GET")
	router.Handle("/cliente/novo/", cliente_novo.New(log, app.ServiceCliente, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/cliente/delete/{id}", cliente_delete.New(log, app.ServiceCliente, app.Sessions, app.Renderer)).Methods("GET", "POST")

	router.Handle("/pedidos/", pedidos_get.New(log, app.ServicePedido, app.Sessions, app.Renderer)).Methods("GET")
	router.Handle("/pedido/adicionar/", pedido_adicionar.New(log, app.ServicePedido, app.ServiceCliente, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/pedido/editar/", pedido_editar.New(log, app.ServicePedido, app.ServiceCliente, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/pedido/excluir/", pedido_excluir.New(log, app.ServicePedido, app.Sessions, app.Renderer)).Methods("GET", "POST")

	router.Handle("/entregadores/", entregadores_get.New(log, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET")
	router.Handle("/entregadores/add/", entregador_add.New(log, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/entregadores/edit/{id}/", entregador_edit.New(log, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET", "POST")
	router.Handle("/entregadores/delete/{id}/", entregador_delete.New(log, app.ServiceEntregador, app.Sessions, app.Renderer)).Methods("GET", "POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
