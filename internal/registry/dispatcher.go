package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/logger"
)

// Dispatcher receives registry mutations after they have been persisted
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher,Syncer=MockSyncer
type Dispatcher interface {
	// Dispatch handles a mutation and reports whether its side effects succeeded.
	// It must not fail the mutation itself.
	Dispatch(ctx context.Context, mutation Mutation) bool
}

// DispatcherFunc adapts a function to the Dispatcher interface
type DispatcherFunc func(ctx context.Context, mutation Mutation) bool

// Dispatch calls f(ctx, mutation)
func (f DispatcherFunc) Dispatch(ctx context.Context, mutation Mutation) bool {
	return f(ctx, mutation)
}

// Syncer regenerates the gateway configuration from the registry
type Syncer interface {
	SyncToGateway(ctx context.Context) bool
}

type syncDispatcher struct {
	syncer Syncer
}

// NewSyncDispatcher returns a dispatcher that rewrites the gateway config on every mutation
func NewSyncDispatcher(syncer Syncer) Dispatcher {
	return &syncDispatcher{syncer: syncer}
}

// Dispatch triggers a full config sync
func (d *syncDispatcher) Dispatch(ctx context.Context, mutation Mutation) bool {
	ok := d.syncer.SyncToGateway(ctx)
	if !ok {
		logger.WarnCtx(ctx, "Gateway config sync failed after registry mutation",
			zap.String("kind", string(mutation.Kind)),
			zap.String("appID", mutation.AppID))
	}
	return ok
}
