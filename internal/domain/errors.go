package domain

import "errors"

var (
	// ErrApplicationNotFound is returned when an application does not exist
	ErrApplicationNotFound = errors.New("application not found")

	// ErrDuplicateIdentifier is returned when an application id, key or secret is already in use
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrImmutableField is returned when a patch tries to change an application's id or key
	ErrImmutableField = errors.New("field is immutable")

	// ErrInvalidApplication is returned when an application fails validation
	ErrInvalidApplication = errors.New("invalid application")

	// ErrWebhookNotFound is returned when a webhook record does not exist
	ErrWebhookNotFound = errors.New("webhook record not found")

	// ErrInvalidWebhook is returned when a webhook record fails validation
	ErrInvalidWebhook = errors.New("invalid webhook record")

	// ErrNotRetryable is returned when a retry is requested for a record that is not eligible
	ErrNotRetryable = errors.New("webhook record is not eligible for retry")

	// ErrAlreadySent is returned when a delivery is attempted on a record that was already sent
	ErrAlreadySent = errors.New("webhook record already sent")

	// ErrConcurrentUpdate is returned when a versioned save loses to another writer
	ErrConcurrentUpdate = errors.New("record was modified concurrently")
)
