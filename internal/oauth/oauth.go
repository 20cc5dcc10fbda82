package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// Identity is what a provider tells us about the person signing in; the
// profile service turns it into a durable Profile on first sign-in.
type Identity struct {
	Email     string
	FullName  string
	AvatarURL string
	ID        string
	Provider  string
}

type Provider interface {
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Identity, error)
	Name() string
}

func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
