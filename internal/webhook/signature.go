package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const (
	HeaderPusherKey       = "X-Pusher-Key"
	HeaderPusherSignature = "X-Pusher-Signature"
)

// Sign returns the hex encoded HMAC-SHA256 of body keyed by the application secret,
// the same signature the gateway puts on its own webhooks
func Sign(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature matches body, in constant time
func Verify(secret string, body []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hmac.Equal(h.Sum(nil), expected)
}

// SignatureHeaders returns the signing headers for a delivery
func SignatureHeaders(key, secret string, body []byte) map[string]string {
	return map[string]string{
		HeaderPusherKey:       key,
		HeaderPusherSignature: Sign(secret, body),
	}
}
