package logger

import (
	"context"

	"go.uber.org/zap"
)

// JobInfo identifies one run of a scheduled background job
type JobInfo struct {
	// Name is the job name as registered with the scheduler
	Name string
	// RunID is unique per run
	RunID string
}

// Fields returns the zap fields describing the job run
func (j JobInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("job", j.Name),
		zap.String("runID", j.RunID),
	}
}

// FromJob returns a logger scoped to a job run.
// Usage:
//
//	log := logger.FromJob(ctx, logger.JobInfo{Name: "retry-sweep", RunID: id})
//	log.Info("Requeued webhook records", zap.Int("count", n))
func FromJob(ctx context.Context, info JobInfo) *zap.Logger {
	return FromContext(ctx).With(info.Fields()...)
}

// InfoJob logs an info message scoped to a job run
func InfoJob(ctx context.Context, info JobInfo, msg string, fields ...zap.Field) {
	FromJob(ctx, info).Info(msg, fields...)
}

// ErrorJob logs an error scoped to a job run
func ErrorJob(ctx context.Context, info JobInfo, err error, fields ...zap.Field) {
	if err != nil {
		FromJob(ctx, info).Error(err.Error(), fields...)
	} else {
		FromJob(ctx, info).Error("error occurred", fields...)
	}
}
