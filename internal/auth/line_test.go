package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet-booking/internal/config"
)

func lineTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			BaseURL: "https://api.example.com",
		},
		Line: config.LineConfig{
			LoginChannelID:     "1234567890",
			LoginChannelSecret: "channel-secret",
			Scopes:             []string{"profile", "openid"},
		},
	}
}

func TestAuthorizeURL(t *testing.T) {
	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, LineTokenEndpoint, LineVerifyEndpoint, http.DefaultClient)

	raw := provider.AuthorizeURL("signed-state")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "access.line.me", parsed.Host)
	assert.Equal(t, "/oauth2/v2.1/authorize", parsed.Path)
	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "1234567890", query.Get("client_id"))
	assert.Equal(t, "https://api.example.com/line/callback", query.Get("redirect_uri"))
	assert.Equal(t, "signed-state", query.Get("state"))
	assert.Equal(t, "profile openid", query.Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "good-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://api.example.com/line/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer","id_token":"fake-id-token"}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, server.URL, LineVerifyEndpoint, server.Client())

	idToken, err := provider.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "fake-id-token", idToken)
}

func TestExchangeCodeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"invalid authorization code"}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, server.URL, LineVerifyEndpoint, server.Client())

	_, err := provider.ExchangeCode(context.Background(), "bad-code")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExchangeFailed)

	var exchangeErr *ExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	assert.Equal(t, http.StatusBadRequest, exchangeErr.Status)
	assert.Contains(t, exchangeErr.Body, "invalid_grant")
}

func TestExchangeCodeMissingIDToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer"}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, server.URL, LineVerifyEndpoint, server.Client())

	_, err := provider.ExchangeCode(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrExchangeFailed)
}

func TestVerifyIDToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "fake-id-token", r.PostForm.Get("id_token"))
		assert.Equal(t, "1234567890", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"iss":"https://access.line.me","sub":"U4af4980629","name":"小夜","picture":"https://profile.line-scdn.net/abc"}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, LineTokenEndpoint, server.URL, server.Client())

	profile, err := provider.VerifyIDToken(context.Background(), "fake-id-token")
	require.NoError(t, err)
	assert.Equal(t, "U4af4980629", profile.Sub)
	assert.Equal(t, "小夜", profile.Name)
	assert.Equal(t, "https://profile.line-scdn.net/abc", profile.Picture)
}

func TestVerifyIDTokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_request","error_description":"Invalid IdToken."}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, LineTokenEndpoint, server.URL, server.Client())

	_, err := provider.VerifyIDToken(context.Background(), "tampered")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Contains(t, err.Error(), "Invalid IdToken.")
}

func TestVerifyIDTokenMissingSubject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"iss":"https://access.line.me"}`))
	}))
	defer server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, LineTokenEndpoint, server.URL, server.Client())

	_, err := provider.VerifyIDToken(context.Background(), "fake-id-token")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifyIDTokenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := newLineProvider(lineTestConfig(), LineAuthorizeEndpoint, LineTokenEndpoint, server.URL, http.DefaultClient)

	_, err := provider.VerifyIDToken(context.Background(), "fake-id-token")
	assert.True(t, errors.Is(err, ErrVerificationFailed))
}
