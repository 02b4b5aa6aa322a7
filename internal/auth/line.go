package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"sweet-booking/internal/config"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/models"
)

var (
	// ErrExchangeFailed indicates the provider rejected the authorization code
	// or returned a token response without an ID token.
	ErrExchangeFailed = errors.New("authorization code exchange failed")

	// ErrVerificationFailed indicates the provider rejected the ID token or
	// returned a profile without a subject.
	ErrVerificationFailed = errors.New("id token verification failed")
)

// ExchangeError carries the provider's response for a failed code exchange.
type ExchangeError struct {
	Status int
	Body   string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("token endpoint returned status %d: %s", e.Status, e.Body)
}

func (e *ExchangeError) Unwrap() error {
	return ErrExchangeFailed
}

// RealLineProvider talks to the LINE Login v2.1 endpoints.
type RealLineProvider struct {
	oauth          oauth2.Config
	verifyEndpoint string
	client         *http.Client
}

// NewLineProvider builds a provider from the configured login channel.
func NewLineProvider(config *config.Config) *RealLineProvider {
	return newLineProvider(config, LineAuthorizeEndpoint, LineTokenEndpoint, LineVerifyEndpoint, &http.Client{Timeout: lineRequestTimeout})
}

// newLineProvider allows tests to point the provider at local endpoints.
func newLineProvider(config *config.Config, authorizeEndpoint, tokenEndpoint, verifyEndpoint string, client *http.Client) *RealLineProvider {
	return &RealLineProvider{
		oauth: oauth2.Config{
			ClientID:     config.Line.LoginChannelID,
			ClientSecret: config.Line.LoginChannelSecret,
			RedirectURL:  config.CallbackURL(),
			Scopes:       config.Line.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authorizeEndpoint,
				TokenURL:  tokenEndpoint,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		verifyEndpoint: verifyEndpoint,
		client:         client,
	}
}

// AuthorizeURL returns the provider authorization URL carrying the signed
// state token.
func (p *RealLineProvider) AuthorizeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode redeems an authorization code and returns the ID token from
// the provider's token response.
func (p *RealLineProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.TokenExchangeDuration.Observe(time.Since(start).Seconds())
	}()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", &ExchangeError{
				Status: retrieveErr.Response.StatusCode,
				Body:   string(retrieveErr.Body),
			}
		}
		return "", fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("%w: token response missing id_token", ErrExchangeFailed)
	}
	return idToken, nil
}

type verifyResponse struct {
	Sub              string `json:"sub"`
	Name             string `json:"name"`
	Picture          string `json:"picture"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// VerifyIDToken submits an ID token to the provider's verify endpoint and
// returns the profile it attests to.
func (p *RealLineProvider) VerifyIDToken(ctx context.Context, idToken string) (*models.LineProfile, error) {
	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("client_id", p.oauth.ClientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.verifyEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading verify response: %w", ErrVerificationFailed, err)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding verify response: %w", ErrVerificationFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.ErrorDescription != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrVerificationFailed, parsed.ErrorCode, parsed.ErrorDescription)
		}
		return nil, fmt.Errorf("%w: verify endpoint returned status %d", ErrVerificationFailed, resp.StatusCode)
	}
	if parsed.Sub == "" {
		return nil, fmt.Errorf("%w: verify response missing sub", ErrVerificationFailed)
	}

	return &models.LineProfile{
		Sub:     parsed.Sub,
		Name:    parsed.Name,
		Picture: parsed.Picture,
	}, nil
}
