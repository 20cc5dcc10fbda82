package oauth

import (
	"testing"

	"github.com/battersup/battersup-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGitHubProvider_Name(t *testing.T) {
	provider := NewGitHubProvider(config.OAuthConfig{})
	assert.Equal(t, "github", provider.Name())
}

func TestGitHubProvider_GetConsentURL(t *testing.T) {
	provider := NewGitHubProvider(config.OAuthConfig{
		ClientID:    "test-client-id",
		RedirectURL: "http://localhost/callback",
	})

	url := provider.GetConsentURL("test-state")

	assert.Contains(t, url, "github.com")
	assert.Contains(t, url, "client_id=test-client-id")
	assert.Contains(t, url, "state=test-state")
}

func TestGitHubProvider_Scopes(t *testing.T) {
	provider := NewGitHubProvider(config.OAuthConfig{ClientID: "test-client-id"})

	assert.Contains(t, provider.config.Scopes, "user:email")
	assert.Contains(t, provider.config.Scopes, "read:user")
}
