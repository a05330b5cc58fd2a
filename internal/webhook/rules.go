package webhook

import (
	"math"
	"strings"
	"time"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// maxResponseBodySize caps the response body stored on a record
const maxResponseBodySize = 4 * 1024

// ShouldRetry is the single retry eligibility gate for sweeps and manual retries
func ShouldRetry(rec *schema.WebhookRecord, now time.Time) bool {
	return rec.Status == schema.WebhookStatusFailed &&
		rec.Attempts < domain.MAX_DELIVERY_ATTEMPTS &&
		(rec.NextRetryAt == nil || !rec.NextRetryAt.After(now))
}

// Backoff returns the delay before the next retry after the given number of completed attempts: 2^attempts minutes
func Backoff(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	return time.Duration(math.Pow(2, float64(attempts))) * time.Minute
}

// MarkSent moves a record to the terminal sent state. Attempts are unchanged.
func MarkSent(rec *schema.WebhookRecord, status int, body string, now time.Time) {
	rec.Status = schema.WebhookStatusSent
	rec.ResponseStatus = &status
	rec.ResponseBody = &body
	rec.SentAt = &now
	rec.NextRetryAt = nil
}

// MarkFailed records a failed attempt. Attempts counts completed attempts, so it is
// incremented first and the backoff is computed from the new value.
func MarkFailed(rec *schema.WebhookRecord, status int, body string, now time.Time) {
	rec.Status = schema.WebhookStatusFailed
	rec.ResponseStatus = &status
	rec.ResponseBody = &body
	rec.Attempts++
	next := now.Add(Backoff(rec.Attempts))
	rec.NextRetryAt = &next
}

// Requeue moves a failed record back to pending for the dispatcher and counts the retry as an attempt
func Requeue(rec *schema.WebhookRecord) {
	rec.Status = schema.WebhookStatusPending
	rec.NextRetryAt = nil
	rec.Attempts++
}

// ResetForDuplicate clears the delivery state of a copied record
func ResetForDuplicate(rec *schema.WebhookRecord) {
	rec.ID = 0
	rec.Status = schema.WebhookStatusPending
	rec.Attempts = 0
	rec.ResponseStatus = nil
	rec.ResponseBody = nil
	rec.SentAt = nil
	rec.NextRetryAt = nil
	rec.Version = 0
	rec.CreatedAt = time.Time{}
	rec.UpdatedAt = time.Time{}
}

// DefaultHeaders returns the headers every delivery starts from
func DefaultHeaders(userAgent string) map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   userAgent,
	}
}

// MergeHeaders layers maps left to right; later maps win on key collision
func MergeHeaders(layers ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// truncateBody limits a response body to maxResponseBodySize bytes of valid UTF-8 without NUL bytes
func truncateBody(body []byte) string {
	if len(body) > maxResponseBodySize {
		body = body[:maxResponseBodySize]
	}
	s := strings.ToValidUTF8(string(body), "")
	return strings.ReplaceAll(s, "\x00", "")
}
