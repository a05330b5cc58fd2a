package gatewayconfig

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

const (
	backupSuffix = ".backup"
	renderIndent = "    "
)

// Config configures the synchronizer
type Config struct {
	// Path is the gateway configuration file
	Path string
	Options
}

// ImportResult counts the rows touched by SyncFromConfig
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// Synchronizer keeps the gateway configuration file consistent with the registry
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/synchronizer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer
type Synchronizer interface {
	// SyncToGateway regenerates the configuration file from the active applications.
	// Failures are logged and reported as false.
	SyncToGateway(ctx context.Context) bool

	// SyncFromConfig upserts registry rows from the configuration file.
	// Rows applied before a failure are kept.
	SyncFromConfig(ctx context.Context) (*ImportResult, bool)

	// Path returns the configuration file path
	Path() string
}

type synchronizer struct {
	cfg    Config
	store  store.Store
	fs     adapter.FileSystem
	json   adapter.JSON
	writer *AtomicWriter
}

// NewSynchronizer creates a new config synchronizer
func NewSynchronizer(cfg Config, store store.Store, fs adapter.FileSystem, json adapter.JSON) Synchronizer {
	return &synchronizer{
		cfg:    cfg,
		store:  store,
		fs:     fs,
		json:   json,
		writer: NewAtomicWriter(fs),
	}
}

func (s *synchronizer) Path() string {
	return s.cfg.Path
}

// Render encodes a document with a stable layout
func Render(json adapter.JSON, doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, renderIndent)
}

// SyncToGateway regenerates the configuration file from the active applications
func (s *synchronizer) SyncToGateway(ctx context.Context) bool {
	if err := s.syncToGateway(ctx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to sync gateway config: %w", err), zap.String("path", s.cfg.Path))
		return false
	}
	return true
}

func (s *synchronizer) syncToGateway(ctx context.Context) error {
	apps, err := s.store.ListApplications(ctx, store.ApplicationFilter{ActiveOnly: true})
	if err != nil {
		return err
	}

	data, err := Render(s.json, Build(apps, s.cfg.Options))
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := s.backup(); err != nil {
		return err
	}

	if err := s.writer.WriteFile(s.cfg.Path, data); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Synced gateway config",
		zap.String("path", s.cfg.Path),
		zap.Int("apps", len(apps)))
	return nil
}

// backup copies the current file, if any, into the single backup slot
func (s *synchronizer) backup() error {
	current, err := s.fs.ReadFile(s.cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read current config: %w", err)
	}

	if err := s.writer.WriteFile(s.cfg.Path+backupSuffix, current); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// importDocument is the subset of the configuration file read back on import.
// Pointers distinguish missing fields from zero values.
type importDocument struct {
	AppManager struct {
		Array struct {
			Apps []importApp `json:"apps"`
		} `json:"array"`
	} `json:"appManager"`
}

type importApp struct {
	ID                   string             `json:"id"`
	Key                  string             `json:"key"`
	Secret               string             `json:"secret"`
	Name                 *string            `json:"name"`
	MaxConnections       *int               `json:"maxConnections"`
	EnableClientMessages *bool              `json:"enableClientMessages"`
	EnableStats          *bool              `json:"enableStats"`
	Webhooks             map[string]Webhook `json:"webhooks"`
}

// SyncFromConfig upserts registry rows from the configuration file
func (s *synchronizer) SyncFromConfig(ctx context.Context) (*ImportResult, bool) {
	result := &ImportResult{}

	data, err := s.fs.ReadFile(s.cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.InfoCtx(ctx, "Gateway config not found, nothing to import", zap.String("path", s.cfg.Path))
			return result, true
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to read gateway config: %w", err), zap.String("path", s.cfg.Path))
		return result, false
	}

	var doc importDocument
	if err := s.json.Unmarshal(data, &doc); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to parse gateway config: %w", err), zap.String("path", s.cfg.Path))
		return result, false
	}

	for _, entry := range doc.AppManager.Array.Apps {
		created, err := s.importApp(ctx, entry)
		if err != nil {
			result.Failed++
			logger.WarnCtx(ctx, "Failed to import application", zap.String("appID", entry.ID), zap.Error(err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	logger.InfoCtx(ctx, "Imported gateway config",
		zap.String("path", s.cfg.Path),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed))
	return result, true
}

// importApp upserts one application by app_id and reports whether it was created
func (s *synchronizer) importApp(ctx context.Context, entry importApp) (bool, error) {
	if entry.ID == "" {
		return false, fmt.Errorf("%w: missing id", domain.ErrInvalidApplication)
	}
	if entry.MaxConnections != nil && *entry.MaxConnections < 0 {
		return false, fmt.Errorf("%w: maxConnections must be >= 0", domain.ErrInvalidApplication)
	}

	existing, err := s.store.GetApplicationByAppID(ctx, entry.ID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if entry.Key != existing.AppKey || entry.Secret != existing.AppSecret {
			logger.WarnCtx(ctx, "Imported credentials differ from the registry, keeping registry values",
				zap.String("appID", entry.ID))
		}
		entry.applyTo(existing)
		if err := s.store.UpdateApplication(ctx, existing); err != nil {
			return false, err
		}
		return false, nil
	}

	if entry.Key == "" || entry.Secret == "" {
		return false, fmt.Errorf("%w: key and secret are required", domain.ErrInvalidApplication)
	}

	// Limits that do not appear in the file stay unlimited
	app := &schema.Application{
		AppID:          entry.ID,
		AppKey:         entry.Key,
		AppSecret:      entry.Secret,
		WebhookURLs:    datatypes.NewJSONType([]schema.WebhookTarget{}),
		WebhookHeaders: datatypes.NewJSONType(map[string]string{}),
		WebhookEvents:  datatypes.NewJSONType([]string{}),
	}
	entry.applyTo(app)
	if err := s.store.CreateApplication(ctx, app); err != nil {
		return false, err
	}
	return true, nil
}

// applyTo copies the mirrored fields, defaulting the missing ones
func (e importApp) applyTo(app *schema.Application) {
	app.Name = fmt.Sprintf("App %s", e.ID)
	if e.Name != nil && *e.Name != "" {
		app.Name = *e.Name
	}

	app.MaxConnections = domain.DEFAULT_IMPORT_MAX_CONNECTIONS
	if e.MaxConnections != nil {
		app.MaxConnections = *e.MaxConnections
	}

	app.EnableClientMessages = e.EnableClientMessages == nil || *e.EnableClientMessages
	app.EnableStatistics = e.EnableStats == nil || *e.EnableStats
	app.IsActive = true

	if len(e.Webhooks) == 0 {
		app.EnableWebhooks = false
		return
	}

	urls, headers, events := invertWebhooks(e.Webhooks)
	app.EnableWebhooks = true
	app.WebhookURLs = datatypes.NewJSONType(urls)
	app.WebhookHeaders = datatypes.NewJSONType(headers)
	app.WebhookEvents = datatypes.NewJSONType(events)
}

// invertWebhooks turns an event-keyed webhook map back into the registry's url list, header map and event set.
// Unsupported event names are dropped.
func invertWebhooks(webhooks map[string]Webhook) ([]schema.WebhookTarget, map[string]string, []string) {
	events := make([]string, 0, len(webhooks))
	for event := range webhooks {
		if domain.IsValidWebhookEvent(event) {
			events = append(events, event)
		}
	}
	sort.Strings(events)

	urls := []schema.WebhookTarget{}
	headers := map[string]string{}
	seen := map[string]bool{}
	for _, event := range events {
		hook := webhooks[event]
		if hook.URL != "" && !seen[hook.URL] {
			seen[hook.URL] = true
			urls = append(urls, schema.WebhookTarget{URL: hook.URL})
		}
		for k, v := range hook.Headers {
			if _, ok := headers[k]; !ok {
				headers[k] = v
			}
		}
	}

	return urls, headers, events
}
