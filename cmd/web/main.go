package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/greatowlmarketing/site/internal/config"
	"github.com/greatowlmarketing/site/internal/infra/database"
	infrahttp "github.com/greatowlmarketing/site/internal/infra/http"
	"github.com/greatowlmarketing/site/internal/infra/http/handlers"
	"github.com/greatowlmarketing/site/internal/infra/integration/getresponse"
	"github.com/greatowlmarketing/site/internal/usecase"
	"github.com/greatowlmarketing/site/internal/web"
)

func main() {
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	renderer, err := web.NewRenderer(web.Branding{
		SiteName:      "Great Owl Marketing",
		LogoURL:       cfg.LogoURL,
		StaticVersion: cfg.StaticVersion,
	}, logger)
	if err != nil {
		logger.Fatal("template setup failed", zap.Error(err))
	}

	leadRepo := database.NewLeadRepository(db)
	subscriber := getresponse.NewClient(cfg.GetResponse, logger)
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, subscriber, logger)

	pagesHandler := handlers.NewPagesHandler(renderer, cfg)
	leadHandler := handlers.NewLeadHandler(captureUC, renderer, logger)
	healthHandler := handlers.NewHealthHandler(db, cfg.GetResponse)

	router := infrahttp.NewRouter(pagesHandler, leadHandler, healthHandler, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
