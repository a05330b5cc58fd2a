package sweeper

import (
	"context"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper,PendingDispatcher=MockPendingDispatcher
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This waits for any in-progress job to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// PendingDispatcher delivers batches of pending webhook records
type PendingDispatcher interface {
	// DispatchPending delivers one batch and returns the number of records submitted
	DispatchPending(ctx context.Context) (int, error)

	// Stop waits for running deliveries and releases the worker pool
	Stop()
}
