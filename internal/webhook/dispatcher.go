package webhook

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

var errDispatcherStopped = errors.New("dispatcher stopped")

// DispatcherConfig holds configuration for the pending record dispatcher
type DispatcherConfig struct {
	WorkerPoolSize  int // Concurrent deliveries
	WorkerQueueSize int // Queued deliveries before submission blocks
	BatchSize       int // Pending records loaded per run
}

// Dispatcher delivers pending records on a bounded worker pool.
// Each record id is in flight at most once.
type Dispatcher struct {
	config   DispatcherConfig
	store    store.Store
	engine   Engine
	pool     pond.Pool
	inFlight sync.Map
	stopped  atomic.Bool
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(config DispatcherConfig, st store.Store, engine Engine) *Dispatcher {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	return &Dispatcher{
		config: config,
		store:  st,
		engine: engine,
		pool: pond.NewPool(
			config.WorkerPoolSize,
			pond.WithQueueSize(config.WorkerQueueSize),
		),
	}
}

// DispatchPending delivers one batch of pending records and waits for it to finish.
// Returns the number of records submitted.
func (d *Dispatcher) DispatchPending(ctx context.Context) (int, error) {
	if d.stopped.Load() {
		return 0, errDispatcherStopped
	}

	recs, err := d.store.ListPendingWebhookRecords(ctx, d.config.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	submitted := 0
	for _, rec := range recs {
		id := rec.ID
		if _, loaded := d.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		submitted++
		d.pool.Submit(func() {
			defer wg.Done()
			defer d.inFlight.Delete(id)
			d.deliver(ctx, id)
		})
	}
	wg.Wait()

	logger.InfoCtx(ctx, "Dispatched pending webhooks",
		zap.Int("pending", len(recs)),
		zap.Int("submitted", submitted))
	return submitted, nil
}

// deliver reloads the record and attempts delivery if it is still pending
func (d *Dispatcher) deliver(ctx context.Context, id uint64) {
	rec, err := d.store.GetWebhookRecordByID(ctx, id)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("id", id))
		return
	}
	if rec == nil || rec.Status != schema.WebhookStatusPending {
		return
	}

	if _, err := d.engine.AttemptDelivery(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) || errors.Is(err, domain.ErrAlreadySent) {
			logger.DebugCtx(ctx, "Dropped webhook delivery superseded by another writer", zap.Uint64("id", id))
			return
		}
		logger.ErrorCtx(ctx, err, zap.Uint64("id", id))
	}
}

// Stop waits for running deliveries and releases the pool
func (d *Dispatcher) Stop() {
	if !d.stopped.CompareAndSwap(false, true) {
		return
	}
	d.pool.StopAndWait()
}
