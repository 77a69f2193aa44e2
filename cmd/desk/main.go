package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"BacktestDesk/internal/collector"
	"BacktestDesk/internal/config"
	"BacktestDesk/internal/logger"
	"BacktestDesk/internal/metrics"
	"BacktestDesk/internal/model"
	"BacktestDesk/internal/notifier"
	"BacktestDesk/internal/recorder"
	"BacktestDesk/internal/scheduler"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.Init(cfg.Log.Level, cfg.Log.Environment)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		lg.Fatal("config validation", zap.Error(err))
	}
	lg.Info("BacktestDesk starting",
		zap.String("symbol", cfg.Data.Symbol),
		zap.String("interval", cfg.Data.Interval),
		zap.Int("bars", cfg.Data.Bars),
		zap.Int64("seed", cfg.Data.Seed))

	interval := model.TimeInterval(cfg.Data.Interval)

	// Init fetcher and collector
	fetcher := collector.NewSeededFetcher(cfg.Data.Seed, cfg.Data.BasePrice, interval)
	col := collector.NewCollector(fetcher, cfg.Data.Symbol, interval, cfg.Data.Bars, cfg.Indicators, lg)
	col.StatsWindow = cfg.Data.StatsWindow

	m := metrics.New()
	col.Observer = m

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		if dir := filepath.Dir(cfg.Database.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				lg.Warn("create database directory", zap.Error(err))
			}
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, lg)
		if err != nil {
			lg.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Optional metrics endpoint
	var srv *http.Server
	if cfg.Metrics.ListenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		srv = &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Error("metrics server", zap.Error(err))
			}
		}()
		lg.Info("metrics listening", zap.String("addr", cfg.Metrics.ListenAddr))
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, notifier.NewWriterNotifier(os.Stdout), rec, m, lg)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		lg.Fatal("register cron tasks", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		lg.Info("RUN_ON_START enabled, executing refresh now")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				lg.Error("initial refresh", zap.Error(err))
			}
		}()
	}

	lg.Info("BacktestDesk is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	lg.Info("shutdown signal received, stopping...")
	cancel()
	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}
	lg.Info("BacktestDesk stopped")
}
