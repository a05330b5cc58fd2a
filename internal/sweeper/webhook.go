package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/webhook"
)

const (
	JOB_DISPATCH    = "webhook-dispatch"
	JOB_RETRY_SWEEP = "webhook-retry-sweep"
	JOB_CLEANUP     = "webhook-cleanup"
)

// WebhookSweeperConfig holds configuration for the webhook sweeper
type WebhookSweeperConfig struct {
	DispatchInterval time.Duration // Time between pending record dispatch runs
	RetryInterval    time.Duration // Time between retry sweeps
	CleanupInterval  time.Duration // Time between retention cleanups
}

// webhookSweeper runs webhook maintenance jobs on a scheduler
type webhookSweeper struct {
	config     *WebhookSweeperConfig
	dispatcher PendingDispatcher
	engine     webhook.Engine
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewWebhookSweeper creates a sweeper that dispatches pending records, requeues
// retryable records and deletes records past the retention window
func NewWebhookSweeper(config *WebhookSweeperConfig, dispatcher PendingDispatcher, engine webhook.Engine) Sweeper {
	return &webhookSweeper{
		config:     config,
		dispatcher: dispatcher,
		engine:     engine,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *webhookSweeper) Name() string {
	return "webhook-sweeper"
}

// Start registers the jobs and blocks until the context is canceled or Stop is called
func (s *webhookSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	jobs := []struct {
		name     string
		interval time.Duration
		run      func(ctx context.Context, info logger.JobInfo) error
	}{
		{JOB_DISPATCH, s.config.DispatchInterval, s.dispatch},
		{JOB_RETRY_SWEEP, s.config.RetryInterval, s.retrySweep},
		{JOB_CLEANUP, s.config.CleanupInterval, s.cleanup},
	}
	for _, job := range jobs {
		_, err := scheduler.NewJob(
			gocron.DurationJob(job.interval),
			gocron.NewTask(func() {
				s.runJob(ctx, job.name, job.run)
			}),
			gocron.WithName(job.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			_ = scheduler.Shutdown()
			return fmt.Errorf("failed to register job %s: %w", job.name, err)
		}
	}

	logger.InfoCtx(ctx, "Starting webhook sweeper",
		zap.Duration("dispatch_interval", s.config.DispatchInterval),
		zap.Duration("retry_interval", s.config.RetryInterval),
		zap.Duration("cleanup_interval", s.config.CleanupInterval),
	)
	scheduler.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Webhook sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Webhook sweeper stop requested")
	}

	// Shutdown waits for running jobs
	if err := scheduler.Shutdown(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to shut down scheduler: %w", err))
	}
	s.dispatcher.Stop()
	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *webhookSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping webhook sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Webhook sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Webhook sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runJob executes one job run with its own run id
func (s *webhookSweeper) runJob(ctx context.Context, name string, run func(context.Context, logger.JobInfo) error) {
	info := logger.JobInfo{Name: name, RunID: ulid.Make().String()}
	start := time.Now()

	if err := run(ctx, info); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.ErrorJob(ctx, info, err, zap.Duration("duration", time.Since(start)))
		}
		return
	}
	logger.FromJob(ctx, info).Debug("Job run completed", zap.Duration("duration", time.Since(start)))
}

func (s *webhookSweeper) dispatch(ctx context.Context, info logger.JobInfo) error {
	n, err := s.dispatcher.DispatchPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to dispatch pending webhooks: %w", err)
	}
	if n > 0 {
		logger.InfoJob(ctx, info, "Dispatched pending webhooks", zap.Int("count", n))
	}
	return nil
}

func (s *webhookSweeper) retrySweep(ctx context.Context, info logger.JobInfo) error {
	result, err := s.engine.RetrySweep(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to sweep retryable webhooks: %w", err)
	}
	if len(result.Requeued) > 0 {
		logger.InfoJob(ctx, info, "Requeued retryable webhooks",
			zap.Int("requeued", len(result.Requeued)),
			zap.Int("skipped", len(result.Skipped)))
	}
	return nil
}

func (s *webhookSweeper) cleanup(ctx context.Context, info logger.JobInfo) error {
	deleted, err := s.engine.Cleanup(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean up webhook records: %w", err)
	}
	logger.InfoJob(ctx, info, "Cleaned up webhook records", zap.Int64("deleted", deleted))
	return nil
}
