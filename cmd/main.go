package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myexplorer/adapters"
	"myexplorer/adapters/myredis"
	"myexplorer/api"
	"myexplorer/handlers"
	"myexplorer/interfaces"
	"myexplorer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyExplorer service")

	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		level.Error(logger).Log("msg", "Failed to parse flags", "err", err)
		os.Exit(2)
	}
	if err := run(flags, logger); err != nil {
		level.Error(logger).Log("msg", "Service failed", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Server stopped")
}

// run starts the explorer and blocks until SIGINT or SIGTERM. Start-up errors are returned after the deferred
// cleanups of what was already opened have run.
func run(flags cliFlags, logger log.Logger) error {
	if err := flags.apply(); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"region", config.Region,
		"source", config.Source.Type,
		"poll_interval", config.PollInterval,
		"refresh_interval", config.RefreshInterval,
	)

	scheduler := service.NewScheduler(func() time.Time { return time.Now().UTC() })

	var source interfaces.InstanceSource
	switch config.Source.Type {
	case sourceRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Source.RedisAddr, myredis.WithTimeout(config.Source.RequestTimeout))
		if err != nil {
			return fmt.Errorf("create redis client: %w", err)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		source = myredis.NewInstanceSource(redisClient, config.Source.KeyPrefix, config.Source.PageSize)
	default:
		client := &http.Client{Timeout: config.Source.RequestTimeout}
		source = adapters.InstanceSourceHTTP(config.Source.BaseURL, config.Region, config.Source.PageSize, client)
	}

	stale := service.NewStaleNodeQueue(scheduler, service.DefaultStaleQueueCapacity, logger)
	tree := service.NewInstancesParentNode(
		service.ParentNodeConfig{
			Region:       config.Region,
			Filter:       config.Filter,
			PollInterval: config.PollInterval,
		},
		source,
		stale,
		scheduler,
		logger,
	)
	defer tree.Close()

	healthServer := health.NewServer()
	refreshLoop := service.NewRefreshLoop(tree, config.RefreshInterval, scheduler, newHealthReporter(healthServer), logger)

	doc, err := handlers.LoadSpec(api.Spec)
	if err != nil {
		return fmt.Errorf("load OpenAPI document: %w", err)
	}
	validator, err := handlers.RequestValidator(doc)
	if err != nil {
		return fmt.Errorf("build request validator: %w", err)
	}
	e := echo.New()
	service.RegisterErrorHandler(e, logger)
	e.Use(validator)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(tree, stale, api.Spec, logger))

	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen on grpc port: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.HTTPPort),
		Handler:           handlers.AccessLog(e, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	refreshLoop.Start()

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	refreshLoop.Stop()
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
	}
	grpcServer.GracefulStop()
	return nil
}
