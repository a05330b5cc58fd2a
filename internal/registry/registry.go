package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// maxIdentifierDraws bounds the retry-until-unique loop for each generated identifier
const maxIdentifierDraws = 10

// Registry defines the application registry operations
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Create validates and persists a new application, generating missing identifiers
	Create(ctx context.Context, spec ApplicationSpec) (*CreateResult, error)
	// Update applies a patch to an existing application
	Update(ctx context.Context, appID string, patch ApplicationPatch) (*Mutation, error)
	// Delete removes an application and its dependent rows
	Delete(ctx context.Context, appID string, hard bool) (*Mutation, error)
	// Restore brings back a soft-deleted application
	Restore(ctx context.Context, appID string) (*Mutation, error)
	// Get returns the redacted application with its connection state
	Get(ctx context.Context, appID string) (*ApplicationDetails, error)
	// List returns redacted applications ordered by app_id
	List(ctx context.Context, activeOnly bool) ([]*schema.Application, error)
	// ConnectionCount counts the application's connected connections
	ConnectionCount(ctx context.Context, appID string) (int64, error)
	// HasReachedMaxConnections reports whether the connection limit is reached. Always false for 0 (unlimited).
	HasReachedMaxConnections(ctx context.Context, app *schema.Application) (bool, error)
	// Status derives the application status
	Status(ctx context.Context, app *schema.Application) (domain.ApplicationStatus, error)
}

type registry struct {
	store     store.Store
	generator IdentifierGenerator
}

// NewRegistry creates a new application registry
func NewRegistry(store store.Store, generator IdentifierGenerator) Registry {
	return &registry{
		store:     store,
		generator: generator,
	}
}

// Create validates and persists a new application
func (r *registry) Create(ctx context.Context, spec ApplicationSpec) (*CreateResult, error) {
	app := spec.toApplication()
	if err := validateApplication(app); err != nil {
		return nil, err
	}

	for draw := 1; draw <= maxIdentifierDraws; draw++ {
		if err := r.assignIdentifiers(ctx, app, spec); err != nil {
			return nil, err
		}

		err := r.store.CreateApplication(ctx, app)
		if err == nil {
			logger.InfoCtx(ctx, "Created application", zap.String("appID", app.AppID))
			return &CreateResult{
				Mutation: Mutation{
					Kind:        MutationCreated,
					AppID:       app.AppID,
					Application: app.Redacted(),
				},
				Secret: app.AppSecret,
			}, nil
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			return nil, err
		}

		// Lost a race with a concurrent creator; redraw the generated identifiers.
		// Operator-supplied identifiers are rechecked by assignIdentifiers.
		logger.WarnCtx(ctx, "Identifier collision on insert, redrawing",
			zap.String("appID", app.AppID), zap.Int("draw", draw))
	}

	return nil, fmt.Errorf("%w: no unique identifiers after %d draws", domain.ErrDuplicateIdentifier, maxIdentifierDraws)
}

// assignIdentifiers fills app_id, app_key and app_secret. Supplied values must be unused;
// missing values are drawn until unique.
func (r *registry) assignIdentifiers(ctx context.Context, app *schema.Application, spec ApplicationSpec) error {
	fields := []struct {
		field    schema.IdentifierField
		supplied string
		draw     func() (string, error)
		target   *string
	}{
		{schema.IdentifierFieldAppID, spec.AppID, r.generator.AppID, &app.AppID},
		{schema.IdentifierFieldAppKey, spec.AppKey, r.generator.AppKey, &app.AppKey},
		{schema.IdentifierFieldAppSecret, spec.AppSecret, r.generator.AppSecret, &app.AppSecret},
	}

	for _, f := range fields {
		if f.supplied != "" {
			exists, err := r.store.IdentifierExists(ctx, f.field, f.supplied)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: %s is already in use", domain.ErrDuplicateIdentifier, f.field)
			}
			*f.target = f.supplied
			continue
		}

		value, err := r.uniqueIdentifier(ctx, f.field, f.draw)
		if err != nil {
			return err
		}
		*f.target = value
	}

	return nil
}

// uniqueIdentifier draws values until one is unused in the store
func (r *registry) uniqueIdentifier(ctx context.Context, field schema.IdentifierField, draw func() (string, error)) (string, error) {
	for i := 0; i < maxIdentifierDraws; i++ {
		value, err := draw()
		if err != nil {
			return "", fmt.Errorf("failed to generate %s: %w", field, err)
		}

		exists, err := r.store.IdentifierExists(ctx, field, value)
		if err != nil {
			return "", err
		}
		if !exists {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: no unique %s after %d draws", domain.ErrDuplicateIdentifier, field, maxIdentifierDraws)
}

// Update applies a patch to an existing application
func (r *registry) Update(ctx context.Context, appID string, patch ApplicationPatch) (*Mutation, error) {
	app, err := r.store.GetApplicationByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	if changes(patch.AppID, app.AppID) {
		return nil, fmt.Errorf("%w: app_id", domain.ErrImmutableField)
	}
	if changes(patch.AppKey, app.AppKey) {
		return nil, fmt.Errorf("%w: app_key", domain.ErrImmutableField)
	}
	if changes(patch.AppSecret, app.AppSecret) {
		return nil, fmt.Errorf("%w: app_secret", domain.ErrImmutableField)
	}

	patch.applyTo(app)
	if err := validateApplication(app); err != nil {
		return nil, err
	}

	if err := r.store.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Updated application", zap.String("appID", appID))
	return &Mutation{
		Kind:        MutationUpdated,
		AppID:       appID,
		Application: app.Redacted(),
	}, nil
}

// Delete removes an application and its dependent rows
func (r *registry) Delete(ctx context.Context, appID string, hard bool) (*Mutation, error) {
	removed, err := r.store.DeleteApplication(ctx, appID, hard)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Deleted application", zap.String("appID", appID), zap.Bool("hard", hard))
	return &Mutation{
		Kind:    MutationDeleted,
		AppID:   appID,
		Removed: removed,
		Hard:    hard,
	}, nil
}

// Restore brings back a soft-deleted application
func (r *registry) Restore(ctx context.Context, appID string) (*Mutation, error) {
	app, err := r.store.RestoreApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	logger.InfoCtx(ctx, "Restored application", zap.String("appID", appID))
	return &Mutation{
		Kind:        MutationRestored,
		AppID:       appID,
		Application: app.Redacted(),
	}, nil
}

// Get returns the redacted application with its connection state
func (r *registry) Get(ctx context.Context, appID string) (*ApplicationDetails, error) {
	app, err := r.store.GetApplicationByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	count, err := r.store.CountConnectedByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}

	return &ApplicationDetails{
		Application:     app.Redacted(),
		ConnectionCount: count,
		Status:          deriveStatus(app, count),
	}, nil
}

// List returns redacted applications ordered by app_id
func (r *registry) List(ctx context.Context, activeOnly bool) ([]*schema.Application, error) {
	apps, err := r.store.ListApplications(ctx, store.ApplicationFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}

	result := make([]*schema.Application, 0, len(apps))
	for i := range apps {
		result = append(result, apps[i].Redacted())
	}
	return result, nil
}

// ConnectionCount counts the application's connected connections
func (r *registry) ConnectionCount(ctx context.Context, appID string) (int64, error) {
	return r.store.CountConnectedByAppID(ctx, appID)
}

// HasReachedMaxConnections reports whether the connection limit is reached
func (r *registry) HasReachedMaxConnections(ctx context.Context, app *schema.Application) (bool, error) {
	if app.MaxConnections <= 0 {
		return false, nil
	}

	count, err := r.store.CountConnectedByAppID(ctx, app.AppID)
	if err != nil {
		return false, err
	}
	return reachedLimit(app, count), nil
}

// Status derives the application status
func (r *registry) Status(ctx context.Context, app *schema.Application) (domain.ApplicationStatus, error) {
	if !app.IsActive {
		return domain.ApplicationStatusInactive, nil
	}

	reached, err := r.HasReachedMaxConnections(ctx, app)
	if err != nil {
		return "", err
	}
	if reached {
		return domain.ApplicationStatusAtLimit, nil
	}
	return domain.ApplicationStatusActive, nil
}

func reachedLimit(app *schema.Application, count int64) bool {
	return app.MaxConnections > 0 && count >= int64(app.MaxConnections)
}

func deriveStatus(app *schema.Application, count int64) domain.ApplicationStatus {
	switch {
	case !app.IsActive:
		return domain.ApplicationStatusInactive
	case reachedLimit(app, count):
		return domain.ApplicationStatusAtLimit
	default:
		return domain.ApplicationStatusActive
	}
}

// changes reports whether a patch value differs from the current value
func changes(patch *string, current string) bool {
	return patch != nil && *patch != current
}

// =============================================================================
// Mapping and validation
// =============================================================================

func (s ApplicationSpec) toApplication() *schema.Application {
	maxConnections := domain.DEFAULT_MAX_CONNECTIONS
	if s.MaxConnections != nil {
		maxConnections = *s.MaxConnections
	}
	enableStatistics := true
	if s.EnableStatistics != nil {
		enableStatistics = *s.EnableStatistics
	}
	isActive := true
	if s.IsActive != nil {
		isActive = *s.IsActive
	}

	app := &schema.Application{
		Name:                         strings.TrimSpace(s.Name),
		Description:                  s.Description,
		MaxConnections:               maxConnections,
		MaxBackendEventsPerSec:       s.Limits.MaxBackendEventsPerSec,
		MaxClientEventsPerSec:        s.Limits.MaxClientEventsPerSec,
		MaxReadRequestsPerSec:        s.Limits.MaxReadRequestsPerSec,
		MaxPresenceMembersPerChannel: s.Limits.MaxPresenceMembersPerChannel,
		MaxPresenceMemberSizeKB:      s.Limits.MaxPresenceMemberSizeKB,
		MaxChannelNameLength:         s.Limits.MaxChannelNameLength,
		MaxEventPayloadKB:            s.Limits.MaxEventPayloadKB,
		MaxEventBatchSize:            s.Limits.MaxEventBatchSize,
		EnableClientMessages:         s.EnableClientMessages,
		EnableStatistics:             enableStatistics,
		EnableUserAuthentication:     s.EnableUserAuthentication,
		EnableWebhooks:               s.Webhooks.Enabled,
		IsActive:                     isActive,
	}
	setWebhookURLs(app, s.Webhooks.URLs)
	setWebhookHeaders(app, s.Webhooks.Headers)
	setWebhookEvents(app, s.Webhooks.Events)
	return app
}

func (p ApplicationPatch) applyTo(app *schema.Application) {
	if p.Name != nil {
		app.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		app.Description = *p.Description
	}

	ints := []struct {
		value  *int
		target *int
	}{
		{p.MaxConnections, &app.MaxConnections},
		{p.MaxBackendEventsPerSec, &app.MaxBackendEventsPerSec},
		{p.MaxClientEventsPerSec, &app.MaxClientEventsPerSec},
		{p.MaxReadRequestsPerSec, &app.MaxReadRequestsPerSec},
		{p.MaxPresenceMembersPerChannel, &app.MaxPresenceMembersPerChannel},
		{p.MaxPresenceMemberSizeKB, &app.MaxPresenceMemberSizeKB},
		{p.MaxChannelNameLength, &app.MaxChannelNameLength},
		{p.MaxEventPayloadKB, &app.MaxEventPayloadKB},
		{p.MaxEventBatchSize, &app.MaxEventBatchSize},
	}
	for _, f := range ints {
		if f.value != nil {
			*f.target = *f.value
		}
	}

	bools := []struct {
		value  *bool
		target *bool
	}{
		{p.EnableClientMessages, &app.EnableClientMessages},
		{p.EnableStatistics, &app.EnableStatistics},
		{p.EnableUserAuthentication, &app.EnableUserAuthentication},
		{p.EnableWebhooks, &app.EnableWebhooks},
		{p.IsActive, &app.IsActive},
	}
	for _, f := range bools {
		if f.value != nil {
			*f.target = *f.value
		}
	}

	if p.WebhookURLs != nil {
		setWebhookURLs(app, *p.WebhookURLs)
	}
	if p.WebhookHeaders != nil {
		setWebhookHeaders(app, *p.WebhookHeaders)
	}
	if p.WebhookEvents != nil {
		setWebhookEvents(app, *p.WebhookEvents)
	}
}

func setWebhookURLs(app *schema.Application, urls []string) {
	targets := make([]schema.WebhookTarget, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, schema.WebhookTarget{URL: strings.TrimSpace(u)})
	}
	app.WebhookURLs = datatypes.NewJSONType(targets)
}

func setWebhookHeaders(app *schema.Application, headers map[string]string) {
	if headers == nil {
		headers = map[string]string{}
	}
	app.WebhookHeaders = datatypes.NewJSONType(headers)
}

func setWebhookEvents(app *schema.Application, events []string) {
	if events == nil {
		events = []string{}
	}
	app.WebhookEvents = datatypes.NewJSONType(events)
}

// validateApplication checks the fields an operator controls
func validateApplication(app *schema.Application) error {
	if app.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidApplication)
	}

	limits := map[string]int{
		"max_connections":                  app.MaxConnections,
		"max_backend_events_per_sec":       app.MaxBackendEventsPerSec,
		"max_client_events_per_sec":        app.MaxClientEventsPerSec,
		"max_read_requests_per_sec":        app.MaxReadRequestsPerSec,
		"max_presence_members_per_channel": app.MaxPresenceMembersPerChannel,
		"max_presence_member_size_kb":      app.MaxPresenceMemberSizeKB,
		"max_channel_name_length":          app.MaxChannelNameLength,
		"max_event_payload_kb":             app.MaxEventPayloadKB,
		"max_event_batch_size":             app.MaxEventBatchSize,
	}
	for name, value := range limits {
		if value < 0 {
			return fmt.Errorf("%w: %s must be >= 0", domain.ErrInvalidApplication, name)
		}
	}

	for _, target := range app.Targets() {
		if !domain.IsHTTPURL(target.URL) {
			return fmt.Errorf("%w: webhook url %q must be an absolute http(s) URL", domain.ErrInvalidApplication, target.URL)
		}
	}

	for _, event := range app.Events() {
		if !domain.IsValidWebhookEvent(event) {
			return fmt.Errorf("%w: unsupported webhook event %q", domain.ErrInvalidApplication, event)
		}
	}

	return nil
}
