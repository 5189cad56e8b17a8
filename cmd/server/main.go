package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"nexus-asset-manager/internal/ai"
	"nexus-asset-manager/internal/api/grpc/interceptor"
	httpapi "nexus-asset-manager/internal/api/http"
	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/labels"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/repository/postgres"
	"nexus-asset-manager/internal/security"
	"nexus-asset-manager/internal/service"
	"nexus-asset-manager/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	if err := config.LoadDotEnv(""); err != nil {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("Invalid server configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Nexus Asset Manager API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "health_address", cfg.GetHealthAddress())
	logger.Info("Database configuration", "driver", cfg.Database.Driver, "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open(cfg.Database.Driver, cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Test database connection
	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth)

	// Initialize print output storage
	files, err := storage.NewLocalStorage(storage.Config{Dir: cfg.Labels.OutputDir, BaseURL: cfg.Labels.BaseURL})
	if err != nil {
		logger.Error("Failed to initialize label storage", "error", err)
		log.Fatalf("Failed to initialize label storage: %v", err)
	}
	logger.Info("Label output storage", "dir", cfg.Labels.OutputDir)

	// Initialize Assistant
	assistant, err := ai.New(ctx, cfg.AI)
	if err != nil {
		logger.Error("Failed to initialize assistant", "error", err)
		log.Fatalf("Failed to initialize assistant: %v", err)
	}

	// Initialize Services
	assetSvc := service.NewAssetService(store.Assets)
	labelSvc := service.NewLabelService(store.Assets, map[service.LabelFormat]*labels.Printer{
		service.LabelFormatHTML: labels.NewPrinter(labels.NewFileOpener(files, "labels")),
		service.LabelFormatPDF:  labels.NewPrinter(labels.NewPDFRenderer(files, "labels", cfg.Labels.ChromePath)),
	})
	documentSvc := service.NewDocumentService(store.Documents, assistant)
	assistantSvc := service.NewAssistantService(store.Assets, assistant)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Assets:         assetSvc,
		Labels:         labelSvc,
		Documents:      documentSvc,
		Assistant:      assistantSvc,
		Files:          files,
		TokenManager:   tokenManager,
		MaxUploadBytes: cfg.Server.MaxUploadSizeMB << 20,
		HealthCheck:    db.PingContext,
	})

	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Set up gRPC health server
	var grpcServer *grpc.Server
	healthServer := health.NewServer()
	if addr := cfg.GetHealthAddress(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", addr)
			log.Fatalf("Failed to listen: %v", err)
		}
		authInterceptor := interceptor.NewAuthInterceptor(tokenManager)
		grpcServer = grpc.NewServer(
			grpc.UnaryInterceptor(authInterceptor.Unary()),
			grpc.StreamInterceptor(authInterceptor.Stream()),
		)
		healthpb.RegisterHealthServer(grpcServer, healthServer)

		// Register reflection service for grpcurl
		reflection.Register(grpcServer)

		go func() {
			logger.Info("gRPC health server listening", "address", addr)
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("gRPC health server error", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	<-ctx.Done()

	// Graceful shutdown
	logger.Info("Shutting down server...")
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	logger.Info("Server stopped. Goodbye!")
}
