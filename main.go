package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"daily-report/api/router"
	"daily-report/bot"
	"daily-report/config"
	"daily-report/document"
	"daily-report/ingest"
	"daily-report/internal/logger"
	"daily-report/services"
	"daily-report/store"
	"daily-report/summarizer"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	dataDir := config.DataPath()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("failed to create data dir:", err)
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN environment variable is not set")
	}

	st := store.New()
	quota := summarizer.NewQuotaLimiterFromConfig(cfg)
	sum := summarizer.NewClient(cfg.GeminiModel, time.Duration(cfg.SummaryTimeoutSeconds)*time.Second, quota)
	reports := services.NewReportService(st, sum, document.NewAssembler(dataDir), dataDir)
	ing := ingest.New(st)

	tgBot, err := bot.New(token, ing, reports, dataDir)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:    cfg.API.Addr,
		Handler: cors.Default().Handler(router.New(st, reports)),
	}
	go func() {
		logger.Log.Infof("api listening on %s", cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tgBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Errorf("bot stopped: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
