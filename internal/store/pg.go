package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// pgUniqueViolation is the SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// applicationMutableColumns are the columns UpdateApplication is allowed to write.
// app_id, app_key and app_secret are immutable after creation.
var applicationMutableColumns = []string{
	"name",
	"description",
	"max_connections",
	"max_backend_events_per_sec",
	"max_client_events_per_sec",
	"max_read_requests_per_sec",
	"max_presence_members_per_channel",
	"max_presence_member_size_kb",
	"max_channel_name_length",
	"max_event_payload_kb",
	"max_event_batch_size",
	"enable_client_messages",
	"enable_statistics",
	"enable_user_authentication",
	"enable_webhooks",
	"webhook_urls",
	"webhook_headers",
	"webhook_events",
	"is_active",
	"updated_at",
}

// =============================================================================
// Applications
// =============================================================================

// CreateApplication inserts a new application
func (s *pgStore) CreateApplication(ctx context.Context, app *schema.Application) error {
	// Run inside a (nested) transaction so a unique violation only rolls back to
	// the savepoint when the caller already holds a transaction.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(app).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrDuplicateIdentifier, err)
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// UpdateApplication persists the mutable columns of an existing application
func (s *pgStore) UpdateApplication(ctx context.Context, app *schema.Application) error {
	app.UpdatedAt = time.Now()

	result := s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("app_id = ?", app.AppID).
		Select(applicationMutableColumns).
		Updates(app)
	if result.Error != nil {
		return fmt.Errorf("failed to update application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// GetApplicationByAppID retrieves a live application by its external id
func (s *pgStore) GetApplicationByAppID(ctx context.Context, appID string) (*schema.Application, error) {
	var app schema.Application
	err := s.db.WithContext(ctx).Where("app_id = ?", appID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// GetDeletedApplicationByAppID retrieves a soft-deleted application by its external id
func (s *pgStore) GetDeletedApplicationByAppID(ctx context.Context, appID string) (*schema.Application, error) {
	var app schema.Application
	err := s.db.WithContext(ctx).
		Unscoped().
		Where("app_id = ? AND deleted_at IS NOT NULL", appID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deleted application: %w", err)
	}
	return &app, nil
}

// ListApplications returns live applications ordered by app_id
func (s *pgStore) ListApplications(ctx context.Context, filter ApplicationFilter) ([]schema.Application, error) {
	var apps []schema.Application

	query := s.db.WithContext(ctx).Model(&schema.Application{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("app_id ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// IdentifierExists checks uniqueness of a credential across every row, soft-deleted included
func (s *pgStore) IdentifierExists(ctx context.Context, field schema.IdentifierField, value string) (bool, error) {
	switch field {
	case schema.IdentifierFieldAppID, schema.IdentifierFieldAppKey, schema.IdentifierFieldAppSecret:
	default:
		return false, fmt.Errorf("unsupported identifier field: %s", field)
	}

	var count int64
	err := s.db.WithContext(ctx).
		Unscoped().
		Model(&schema.Application{}).
		Where(fmt.Sprintf("%s = ?", field), value).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check identifier: %w", err)
	}
	return count > 0, nil
}

// DeleteApplication removes an application together with its dependent rows
func (s *pgStore) DeleteApplication(ctx context.Context, appID string, hard bool) (*DeleteApplicationResult, error) {
	result := &DeleteApplicationResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app schema.Application
		lookup := tx
		if hard {
			// A hard delete also purges an already soft-deleted application
			lookup = tx.Unscoped()
		}
		if err := lookup.Where("app_id = ?", appID).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		res := tx.Where("app_id = ?", appID).Delete(&schema.Connection{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete connections: %w", res.Error)
		}
		result.Connections = res.RowsAffected

		res = tx.Where("app_id = ?", appID).Delete(&schema.WebhookRecord{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete webhook records: %w", res.Error)
		}
		result.Webhooks = res.RowsAffected

		res = tx.Where("app_id = ?", appID).Delete(&schema.DebugEvent{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete debug events: %w", res.Error)
		}
		result.DebugEvents = res.RowsAffected

		appDelete := tx
		if hard {
			appDelete = tx.Unscoped()
		}
		if err := appDelete.Delete(&app).Error; err != nil {
			return fmt.Errorf("failed to delete application: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Deleted application",
		zap.String("appID", appID),
		zap.Bool("hard", hard),
		zap.Int64("connections", result.Connections),
		zap.Int64("webhooks", result.Webhooks),
		zap.Int64("debugEvents", result.DebugEvents))

	return result, nil
}

// RestoreApplication clears deleted_at on a soft-deleted application
func (s *pgStore) RestoreApplication(ctx context.Context, appID string) (*schema.Application, error) {
	res := s.db.WithContext(ctx).
		Unscoped().
		Model(&schema.Application{}).
		Where("app_id = ? AND deleted_at IS NOT NULL", appID).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to restore application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrApplicationNotFound
	}

	return s.GetApplicationByAppID(ctx, appID)
}

// GetApplicationCounts aggregates registry totals in a single query
func (s *pgStore) GetApplicationCounts(ctx context.Context) (*ApplicationCounts, error) {
	var counts ApplicationCounts
	err := s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active,
			COALESCE(SUM(max_connections) FILTER (WHERE is_active AND max_connections > 0), 0) AS active_capacity,
			COUNT(*) FILTER (WHERE is_active AND max_connections > 0) AS limited_active`).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	return &counts, nil
}

// =============================================================================
// Connections
// =============================================================================

// CountConnectedByAppID counts live connections of an application
func (s *pgStore) CountConnectedByAppID(ctx context.Context, appID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Connection{}).
		Where("app_id = ? AND is_connected = ?", appID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return count, nil
}

// CountConnected counts all live connections
func (s *pgStore) CountConnected(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Connection{}).
		Where("is_connected = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return count, nil
}

// UpsertConnection creates or reconnects a connection keyed by connection_id
func (s *pgStore) UpsertConnection(ctx context.Context, conn *schema.Connection) error {
	now := time.Now()
	conn.UpdatedAt = now

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "connection_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"channel_name":    conn.ChannelName,
				"user_data":       conn.UserData,
				"ip_address":      conn.IPAddress,
				"user_agent":      conn.UserAgent,
				"is_connected":    conn.IsConnected,
				"connected_at":    conn.ConnectedAt,
				"disconnected_at": conn.DisconnectedAt,
				"updated_at":      now,
			}),
		}).
		Create(conn).Error
	if err != nil {
		return fmt.Errorf("failed to upsert connection: %w", err)
	}
	return nil
}

// MarkConnectionDisconnected flips a connected row to disconnected
func (s *pgStore) MarkConnectionDisconnected(ctx context.Context, connectionID string, at time.Time) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&schema.Connection{}).
		Where("connection_id = ? AND is_connected = ?", connectionID, true).
		Updates(map[string]interface{}{
			"is_connected":    false,
			"disconnected_at": at,
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to mark connection disconnected: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListConnections returns connections newest first
func (s *pgStore) ListConnections(ctx context.Context, filter ConnectionFilter) ([]schema.Connection, error) {
	var conns []schema.Connection

	query := s.db.WithContext(ctx).Model(&schema.Connection{})
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if filter.ConnectedOnly {
		query = query.Where("is_connected = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Order("id DESC").Find(&conns).Error; err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return conns, nil
}

// =============================================================================
// Webhook records
// =============================================================================

// CreateWebhookRecord inserts a new webhook record
func (s *pgStore) CreateWebhookRecord(ctx context.Context, rec *schema.WebhookRecord) error {
	if rec.Status == "" {
		rec.Status = schema.WebhookStatusPending
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create webhook record: %w", err)
	}
	return nil
}

// GetWebhookRecordByID retrieves a webhook record by id
func (s *pgStore) GetWebhookRecordByID(ctx context.Context, id uint64) (*schema.WebhookRecord, error) {
	var rec schema.WebhookRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook record: %w", err)
	}
	return &rec, nil
}

// GetWebhookRecordsByIDs retrieves the existing records among ids
func (s *pgStore) GetWebhookRecordsByIDs(ctx context.Context, ids []uint64) ([]schema.WebhookRecord, error) {
	if len(ids) == 0 {
		return []schema.WebhookRecord{}, nil
	}

	var recs []schema.WebhookRecord
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook records: %w", err)
	}
	return recs, nil
}

// ListWebhookRecords returns records newest first with the total count
func (s *pgStore) ListWebhookRecords(ctx context.Context, filter WebhookRecordFilter) ([]schema.WebhookRecord, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.WebhookRecord{})
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ReadyForRetry {
		query = retryableScope(query, filter.RetryAt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count webhook records: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var recs []schema.WebhookRecord
	if err := query.Order("id DESC").Find(&recs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list webhook records: %w", err)
	}
	return recs, total, nil
}

// ListPendingWebhookRecords returns pending records oldest first
func (s *pgStore) ListPendingWebhookRecords(ctx context.Context, limit int) ([]schema.WebhookRecord, error) {
	query := s.db.WithContext(ctx).
		Where("status = ?", schema.WebhookStatusPending).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []schema.WebhookRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending webhook records: %w", err)
	}
	return recs, nil
}

// ListRetryableWebhookRecords returns failed records eligible for retry at now
func (s *pgStore) ListRetryableWebhookRecords(ctx context.Context, now time.Time, limit int) ([]schema.WebhookRecord, error) {
	query := retryableScope(s.db.WithContext(ctx), now).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []schema.WebhookRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list retryable webhook records: %w", err)
	}
	return recs, nil
}

// retryableScope matches failed records below the attempt limit whose next retry is due
func retryableScope(query *gorm.DB, now time.Time) *gorm.DB {
	return query.
		Where("status = ?", schema.WebhookStatusFailed).
		Where("attempts < ?", domain.MAX_DELIVERY_ATTEMPTS).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", now)
}

// SaveWebhookRecordState persists the delivery state guarded by the record version
func (s *pgStore) SaveWebhookRecordState(ctx context.Context, rec *schema.WebhookRecord) error {
	now := time.Now()
	res := s.db.WithContext(ctx).
		Model(&schema.WebhookRecord{}).
		Where("id = ? AND version = ?", rec.ID, rec.Version).
		Updates(map[string]interface{}{
			"status":          rec.Status,
			"attempts":        rec.Attempts,
			"response_status": rec.ResponseStatus,
			"response_body":   rec.ResponseBody,
			"sent_at":         rec.SentAt,
			"next_retry_at":   rec.NextRetryAt,
			"version":         gorm.Expr("version + 1"),
			"updated_at":      now,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to save webhook record state: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: webhook record %d version %d", domain.ErrConcurrentUpdate, rec.ID, rec.Version)
	}

	rec.Version++
	rec.UpdatedAt = now
	return nil
}

// DeleteWebhookRecordsCreatedBefore removes records created before cutoff
func (s *pgStore) DeleteWebhookRecordsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&schema.WebhookRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete webhook records: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CountWebhookRecordsByStatus returns per-status record counts
func (s *pgStore) CountWebhookRecordsByStatus(ctx context.Context) (map[schema.WebhookStatus]int64, error) {
	var rows []struct {
		Status schema.WebhookStatus
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&schema.WebhookRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count webhook records: %w", err)
	}

	counts := map[schema.WebhookStatus]int64{
		schema.WebhookStatusPending: 0,
		schema.WebhookStatusSent:    0,
		schema.WebhookStatusFailed:  0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// =============================================================================
// Debug events
// =============================================================================

// CreateDebugEvent appends a debug event
func (s *pgStore) CreateDebugEvent(ctx context.Context, event *schema.DebugEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create debug event: %w", err)
	}
	return nil
}

// ListDebugEvents returns events newest first
func (s *pgStore) ListDebugEvents(ctx context.Context, filter DebugEventFilter) ([]schema.DebugEvent, error) {
	query := s.db.WithContext(ctx).Model(&schema.DebugEvent{})
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var events []schema.DebugEvent
	if err := query.Order("timestamp DESC, id DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list debug events: %w", err)
	}
	return events, nil
}
