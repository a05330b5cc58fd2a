package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

const (
	manualSentStatus = 200
	manualSentBody   = "Manually marked as sent"

	maxEventNameLength  = 255
	maxWebhookURLLength = 500
)

// Engine executes webhook deliveries and drives the record state machine
//
//go:generate mockgen -source=engine.go -destination=../mocks/webhook_engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Create validates and stores a new pending record
	Create(ctx context.Context, input CreateInput) (*schema.WebhookRecord, error)

	// AttemptDelivery posts the record and persists the outcome.
	// Delivery failures are recorded on the record; only store errors are returned.
	AttemptDelivery(ctx context.Context, rec *schema.WebhookRecord) (*DeliveryResult, error)

	// TestSend delivers a record synchronously and returns the raw outcome
	TestSend(ctx context.Context, id uint64) (*TestResult, error)

	// Retry requeues a single record that passes ShouldRetry
	Retry(ctx context.Context, id uint64) (*schema.WebhookRecord, error)

	// RetrySweep requeues every retryable record, or the retryable records among ids
	RetrySweep(ctx context.Context, ids []uint64) (*SweepResult, error)

	// MarkAsSent marks records as manually delivered
	MarkAsSent(ctx context.Context, ids []uint64) (*MarkSentResult, error)

	// Duplicate copies a record into a new pending record
	Duplicate(ctx context.Context, id uint64) (*schema.WebhookRecord, error)

	// Cleanup deletes records older than the retention window
	Cleanup(ctx context.Context) (int64, error)
}

type engine struct {
	cfg   Config
	store store.Store
	http  adapter.HTTPClient
	clock adapter.Clock
}

// NewEngine creates a new webhook delivery engine
func NewEngine(cfg Config, store store.Store, httpClient adapter.HTTPClient, clock adapter.Clock) Engine {
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DEFAULT_USER_AGENT
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = domain.DEFAULT_DELIVERY_TIMEOUT
	}
	return &engine{
		cfg:   cfg,
		store: store,
		http:  httpClient,
		clock: clock,
	}
}

// Create validates and stores a new pending record
func (e *engine) Create(ctx context.Context, input CreateInput) (*schema.WebhookRecord, error) {
	if input.AppID == "" {
		return nil, fmt.Errorf("%w: app_id is required", domain.ErrInvalidWebhook)
	}
	if input.EventName == "" || len(input.EventName) > maxEventNameLength {
		return nil, fmt.Errorf("%w: event_name must be 1-%d characters", domain.ErrInvalidWebhook, maxEventNameLength)
	}
	if len(input.WebhookURL) > maxWebhookURLLength || !domain.IsHTTPURL(input.WebhookURL) {
		return nil, fmt.Errorf("%w: webhook_url must be an absolute http(s) URL", domain.ErrInvalidWebhook)
	}

	payload := input.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", domain.ErrInvalidWebhook)
	}

	app, err := e.store.GetApplicationByAppID(ctx, input.AppID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	headers := input.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	rec := &schema.WebhookRecord{
		AppID:      input.AppID,
		EventName:  input.EventName,
		WebhookURL: input.WebhookURL,
		Payload:    datatypes.JSON(payload),
		Headers:    datatypes.NewJSONType(headers),
		Status:     schema.WebhookStatusPending,
	}
	if err := e.store.CreateWebhookRecord(ctx, rec); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Created webhook record", zap.Uint64("id", rec.ID), zap.String("appID", rec.AppID))
	return rec, nil
}

// AttemptDelivery posts the record and persists the outcome
func (e *engine) AttemptDelivery(ctx context.Context, rec *schema.WebhookRecord) (*DeliveryResult, error) {
	if rec.Status == schema.WebhookStatusSent {
		return nil, fmt.Errorf("%w: record %d", domain.ErrAlreadySent, rec.ID)
	}

	result, err := e.deliver(ctx, rec)
	if err != nil {
		return nil, err
	}

	e.record(rec, result)
	if err := e.persist(ctx, rec); err != nil {
		return result, err
	}

	logger.InfoCtx(ctx, "Webhook delivery attempted",
		zap.Uint64("id", rec.ID),
		zap.String("status", string(rec.Status)),
		zap.Int("responseStatus", result.StatusCode),
		zap.Int("attempts", rec.Attempts),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// deliver performs the HTTP call. Transport failures are part of the result.
func (e *engine) deliver(ctx context.Context, rec *schema.WebhookRecord) (*DeliveryResult, error) {
	payload := []byte(rec.Payload)
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}

	headers, err := e.headers(ctx, rec, payload)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.DeliveryTimeout)
	defer cancel()

	start := e.clock.Now()
	resp, err := e.http.PostRaw(ctx, rec.WebhookURL, headers, payload)
	result := &DeliveryResult{Duration: e.clock.Since(start)}
	if err != nil {
		result.Error = err.Error()
		result.Body = truncateBody([]byte(result.Error))
		return result, nil
	}

	result.Success = resp.Successful
	result.StatusCode = resp.StatusCode
	result.Body = truncateBody(resp.Body)
	return result, nil
}

// headers merges defaults, the owning application's signing headers and the record headers, in that order
func (e *engine) headers(ctx context.Context, rec *schema.WebhookRecord, payload []byte) (map[string]string, error) {
	app, err := e.store.GetApplicationByAppID(ctx, rec.AppID)
	if err != nil {
		return nil, err
	}

	var signing map[string]string
	if app != nil && app.AppSecret != "" {
		signing = SignatureHeaders(app.AppKey, app.AppSecret, payload)
	}

	return MergeHeaders(DefaultHeaders(e.cfg.UserAgent), signing, rec.Headers.Data()), nil
}

// record applies a delivery result to the record state
func (e *engine) record(rec *schema.WebhookRecord, result *DeliveryResult) {
	now := e.clock.Now()
	if result.Success {
		MarkSent(rec, result.StatusCode, result.Body, now)
		return
	}
	MarkFailed(rec, result.StatusCode, result.Body, now)
}

// persist saves the record state, retrying transient store errors.
// A version conflict is returned immediately.
func (e *engine) persist(ctx context.Context, rec *schema.WebhookRecord) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	operation := func() error {
		err := e.store.SaveWebhookRecordState(ctx, rec)
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Webhook record save failed, retrying",
			zap.Uint64("id", rec.ID),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, e.cfg.PersistRetries), ctx), notifyOnError)
}

func (e *engine) load(ctx context.Context, id uint64) (*schema.WebhookRecord, error) {
	rec, err := e.store.GetWebhookRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrWebhookNotFound
	}
	return rec, nil
}

// TestSend delivers a record synchronously. The outcome is recorded unless the record was already sent.
func (e *engine) TestSend(ctx context.Context, id uint64) (*TestResult, error) {
	rec, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := e.deliver(ctx, rec)
	if err != nil {
		return nil, err
	}

	tr := &TestResult{
		Status:         TestStatusError,
		ResponseStatus: result.StatusCode,
		ResponseBody:   result.Body,
		ResponseTimeMS: float64(result.Duration.Microseconds()) / 1000,
	}
	switch {
	case result.Error != "":
		tr.Message = "Error sending webhook: " + result.Error
	case result.Success:
		tr.Status = TestStatusSuccess
		tr.Message = "Webhook sent successfully!"
	default:
		tr.Message = fmt.Sprintf("Webhook failed with status: %d", result.StatusCode)
	}

	if rec.Status == schema.WebhookStatusSent {
		return tr, nil
	}

	e.record(rec, result)
	if err := e.persist(ctx, rec); err != nil {
		return nil, err
	}
	tr.Recorded = true
	return tr, nil
}

// Retry requeues a single record that passes ShouldRetry
func (e *engine) Retry(ctx context.Context, id uint64) (*schema.WebhookRecord, error) {
	rec, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ShouldRetry(rec, e.clock.Now()) {
		return nil, fmt.Errorf("%w: record %d is %s with %d attempts", domain.ErrNotRetryable, rec.ID, rec.Status, rec.Attempts)
	}

	Requeue(rec)
	if err := e.persist(ctx, rec); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Requeued webhook record", zap.Uint64("id", rec.ID), zap.Int("attempts", rec.Attempts))
	return rec, nil
}

// RetrySweep requeues retryable records without sending them
func (e *engine) RetrySweep(ctx context.Context, ids []uint64) (*SweepResult, error) {
	now := e.clock.Now()
	result := &SweepResult{Requeued: []uint64{}, Skipped: []uint64{}}

	var recs []schema.WebhookRecord
	var err error
	if len(ids) == 0 {
		recs, err = e.store.ListRetryableWebhookRecords(ctx, now, 0)
	} else {
		recs, err = e.store.GetWebhookRecordsByIDs(ctx, ids)
		result.Skipped = append(result.Skipped, missingIDs(ids, recs)...)
	}
	if err != nil {
		return nil, err
	}

	for i := range recs {
		rec := &recs[i]
		if !ShouldRetry(rec, now) {
			result.Skipped = append(result.Skipped, rec.ID)
			continue
		}

		Requeue(rec)
		if err := e.persist(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrConcurrentUpdate) {
				result.Skipped = append(result.Skipped, rec.ID)
				continue
			}
			return result, err
		}
		result.Requeued = append(result.Requeued, rec.ID)
	}

	logger.InfoCtx(ctx, "Retry sweep completed",
		zap.Int("requeued", len(result.Requeued)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

// MarkAsSent marks records as manually delivered
func (e *engine) MarkAsSent(ctx context.Context, ids []uint64) (*MarkSentResult, error) {
	recs, err := e.store.GetWebhookRecordsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := &MarkSentResult{
		Updated:     []*schema.WebhookRecord{},
		AlreadySent: []uint64{},
		NotFound:    missingIDs(ids, recs),
	}

	now := e.clock.Now()
	for i := range recs {
		rec := &recs[i]
		if rec.Status == schema.WebhookStatusSent {
			result.AlreadySent = append(result.AlreadySent, rec.ID)
			continue
		}

		MarkSent(rec, manualSentStatus, manualSentBody, now)
		if err := e.persist(ctx, rec); err != nil {
			return result, err
		}
		result.Updated = append(result.Updated, rec)
	}

	return result, nil
}

// Duplicate copies a record into a new pending record
func (e *engine) Duplicate(ctx context.Context, id uint64) (*schema.WebhookRecord, error) {
	rec, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := *rec
	ResetForDuplicate(&dup)
	dup.Headers = datatypes.NewJSONType(MergeHeaders(rec.Headers.Data()))
	if err := e.store.CreateWebhookRecord(ctx, &dup); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Duplicated webhook record", zap.Uint64("source", rec.ID), zap.Uint64("id", dup.ID))
	return &dup, nil
}

// Cleanup deletes records older than the retention window regardless of status
func (e *engine) Cleanup(ctx context.Context) (int64, error) {
	cutoff := e.clock.Now().Add(-domain.WEBHOOK_RETENTION_WINDOW)
	deleted, err := e.store.DeleteWebhookRecordsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Cleaned up webhook records", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	return deleted, nil
}

// missingIDs returns the ids that have no record in recs
func missingIDs(ids []uint64, recs []schema.WebhookRecord) []uint64 {
	found := make(map[uint64]bool, len(recs))
	for _, r := range recs {
		found[r.ID] = true
	}

	missing := []uint64{}
	seen := map[uint64]bool{}
	for _, id := range ids {
		if !found[id] && !seen[id] {
			missing = append(missing, id)
		}
		seen[id] = true
	}
	return missing
}
