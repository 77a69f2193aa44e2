package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"BacktestDesk/internal/collector"
	"BacktestDesk/internal/metrics"
	"BacktestDesk/internal/model"
	"BacktestDesk/internal/notifier"
	"BacktestDesk/internal/recorder"
)

// Scheduler manages the periodic snapshot refresh.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Metrics   *metrics.Metrics
	Log       *zap.Logger
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Metrics may be nil.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, rec recorder.Recorder, m *metrics.Metrics, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Metrics:   m,
		Log:       log,
		Ctx:       ctx,
	}
}

// Register adds the refresh task on the given six-field cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunNow executes one refresh immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() (*model.Snapshot, error) {
	return s.refresh()
}

func (s *Scheduler) refreshTask() {
	if s.Ctx != nil && s.Ctx.Err() != nil {
		return
	}
	if _, err := s.refresh(); err != nil {
		s.Log.Error("refresh failed", zap.Error(err))
	}
}

func (s *Scheduler) refresh() (*model.Snapshot, error) {
	s.Log.Info("running refresh", zap.String("symbol", s.Collector.Symbol))
	snap, err := s.Collector.Collect()
	if err != nil {
		s.Metrics.ObserveRefresh(nil, err)
		s.trySend(fmt.Sprintf("❌ refresh failed: %v", err))
		return nil, fmt.Errorf("collect: %w", err)
	}

	if err := s.Recorder.RecordSnapshot(snap); err != nil {
		s.Log.Error("record snapshot", zap.String("snapshot_id", snap.ID), zap.Error(err))
	}
	s.trySend(notifier.FormatSnapshot(snap))
	s.Metrics.ObserveRefresh(snap, nil)
	return snap, nil
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(text); err != nil {
		s.Log.Error("send notification", zap.Error(err))
	}
}
