package registry

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	appIDPrefix     = "app-"
	appIDLength     = 8
	appKeyLength    = 20
	appSecretLength = 40
)

// IdentifierGenerator draws candidate application credentials
//
//go:generate mockgen -source=identifier.go -destination=../mocks/identifier_generator.go -package=mocks -mock_names=IdentifierGenerator=MockIdentifierGenerator
type IdentifierGenerator interface {
	// AppID returns a candidate external application id
	AppID() (string, error)
	// AppKey returns a candidate public key
	AppKey() (string, error)
	// AppSecret returns a candidate secret
	AppSecret() (string, error)
}

type randomIdentifierGenerator struct{}

// NewIdentifierGenerator returns a generator backed by crypto/rand
func NewIdentifierGenerator() IdentifierGenerator {
	return &randomIdentifierGenerator{}
}

func (g *randomIdentifierGenerator) AppID() (string, error) {
	s, err := randomString(appIDLength)
	if err != nil {
		return "", err
	}
	return appIDPrefix + s, nil
}

func (g *randomIdentifierGenerator) AppKey() (string, error) {
	return randomString(appKeyLength)
}

func (g *randomIdentifierGenerator) AppSecret() (string, error) {
	return randomString(appSecretLength)
}

// randomString returns n characters drawn uniformly from the alphanumeric alphabet
func randomString(n int) (string, error) {
	alphabetSize := big.NewInt(int64(len(alphanumeric)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b[i] = alphanumeric[idx.Int64()]
	}
	return string(b), nil
}
