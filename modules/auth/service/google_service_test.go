package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/core/errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// stubCache is an in-memory stand-in for the redis cache.
type stubCache struct {
	states    map[string]time.Duration
	blacklist map[string]bool
}

func newStubCache() *stubCache {
	return &stubCache{
		states:    make(map[string]time.Duration),
		blacklist: make(map[string]bool),
	}
}

func (c *stubCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	c.blacklist[token] = true
	return nil
}

func (c *stubCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return c.blacklist[token], nil
}

func (c *stubCache) StoreOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	c.states[state] = ttl
	return nil
}

func (c *stubCache) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	if _, ok := c.states[state]; !ok {
		return false, nil
	}
	delete(c.states, state)
	return true, nil
}

func (c *stubCache) PublishEventMessage(ctx context.Context, eventID string, payload []byte) error {
	return nil
}

func (c *stubCache) SubscribeEventMessages(ctx context.Context, eventID string) *redis.PubSub {
	return nil
}

func (c *stubCache) Client() *redis.Client { return nil }
func (c *stubCache) Close() error          { return nil }

func loadGoogleTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "test-client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "test-client-secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/v1/auth/google/callback")
	require.NoError(t, config.Load())
}

// failingTransport aborts any outbound request, so the code-exchange step
// can never reach the network from a test.
type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("no network in tests")
}

func noNetworkContext() context.Context {
	return context.WithValue(context.Background(),
		oauth2.HTTPClient, &http.Client{Transport: failingTransport{}})
}

func TestGoogleLoginURLStoresState(t *testing.T) {
	loadGoogleTestConfig(t)
	cache := newStubCache()
	svc := NewAuthService(nil, cache)

	loginURL, appErr := svc.GoogleLoginURL(context.Background())
	require.Nil(t, appErr)

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)
	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)

	ttl, ok := cache.states[state]
	assert.True(t, ok, "state embedded in the URL must be stored for the callback")
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGoogleCallbackRejectsUnknownState(t *testing.T) {
	loadGoogleTestConfig(t)
	svc := NewAuthService(nil, newStubCache())

	_, appErr := svc.GoogleCallback(context.Background(), "some-code", "never-issued")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Contains(t, appErr.Message, "state token")
}

func TestGoogleCallbackStateIsOneTimeUse(t *testing.T) {
	loadGoogleTestConfig(t)
	cache := newStubCache()
	svc := NewAuthService(nil, cache)
	cache.states["issued-state"] = time.Minute

	// First redemption passes the state check and proceeds to the code
	// exchange, which fails here because the test allows no network.
	_, appErr := svc.GoogleCallback(noNetworkContext(), "some-code", "issued-state")
	require.NotNil(t, appErr)
	assert.NotContains(t, appErr.Message, "state token")
	assert.Empty(t, cache.states, "state must be consumed on first use")

	// Replaying the same state is rejected before any exchange attempt.
	_, appErr = svc.GoogleCallback(context.Background(), "some-code", "issued-state")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Contains(t, appErr.Message, "state token")
}
