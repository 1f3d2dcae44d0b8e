package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/config"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/handler"
	infradb "github.com/pipeagudelo3/e-commerce-chat-ai/internal/infrastructure/database"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/infrastructure/gemini"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/router"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/usecase"
	dbpkg "github.com/pipeagudelo3/e-commerce-chat-ai/pkg/database"
	"github.com/pipeagudelo3/e-commerce-chat-ai/pkg/logger"
)

//	@title			E-commerce Chat AI
//	@version		1.0.0
//	@description	Shoe store backend with an AI shopping assistant backed by Gemini

//	@host		localhost:8000
//	@BasePath	/

var (
	cfgFile string
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "E-commerce Chat AI backend",
	Long: `HTTP backend of the shoe store: catalog management plus an
AI shopping assistant that answers in Spanish, primed with the catalog
and the recent conversation of each session.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Local development reads GOOGLE_API_KEY and DATABASE_URL from a
	// .env file; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("E-commerce Chat AI starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz's own logging through slog.
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelInfo)

	dbClient, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := dbClient.AutoMigrate(infradb.Models()...); err != nil {
		slog.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}
	if err := infradb.LoadInitialData(dbClient, slog.Default()); err != nil {
		slog.Error("failed to load seed catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("database ready", "driver", cfg.Database.Driver)

	productRepo := infradb.NewProductRepository(dbClient)
	chatRepo := infradb.NewChatRepository(dbClient)

	// The service starts without a Gemini credential; chat requests
	// then fail with a descriptive error instead of the whole API
	// being unavailable.
	var geminiClient *gemini.Client
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	geminiClient, err = gemini.NewClient(ctx, cfg.Gemini, slog.Default())
	cancel()
	if err != nil {
		slog.Warn("gemini client unavailable, chat is disabled", "error", err)
		geminiClient = nil
	}

	productUsecase := usecase.NewProductUsecase(productRepo, slog.Default())

	// Assign only when the client exists; a typed nil pointer inside
	// the interface would defeat the usecase's nil check.
	var llm domain.LLMClient
	if geminiClient != nil {
		llm = geminiClient
	}
	chatUsecase := usecase.NewChatUsecase(productRepo, chatRepo, llm, slog.Default())

	healthHandler := handler.NewHealthHandler()
	productHandler := handler.NewProductHandler(productUsecase, slog.Default())
	chatHandler := handler.NewChatHandler(chatUsecase, slog.Default())
	modelHandler := handler.NewModelHandler(geminiClient, slog.Default())

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, healthHandler, productHandler, chatHandler, modelHandler)

	slog.Info("server started successfully", "address", cfg.GetServerAddr())

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := dbpkg.Close(dbClient, slog.Default()); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server stopped gracefully")
}
