package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrExpired          = errors.New("token is expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
)

// token_use values. The same secret signs both token kinds, so every decode
// checks the discriminator before trusting the claim shape.
const (
	useLoginState = "login_state"
	useSession    = "session"
)

// LoginState is the transient payload carried across the identity-provider
// hop: where to send the user agent once login completes.
type LoginState struct {
	RedirectURL string
}

// Session identifies an authenticated user to later API calls.
type Session struct {
	UserID int64
}

type loginStateClaims struct {
	jwt.RegisteredClaims
	TokenUse    string `json:"token_use"`
	RedirectURL string `json:"redirect_url"`
}

type sessionClaims struct {
	jwt.RegisteredClaims
	TokenUse string `json:"token_use"`
	UserID   int64  `json:"user_id"`
}

// Codec signs and verifies the compact tokens used by the login flow. It is
// immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is required")
	}

	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// NewCodecAt returns a codec with a fixed clock, for tests.
func NewCodecAt(secret string, now func() time.Time) (*Codec, error) {
	c, err := NewCodec(secret)
	if err != nil {
		return nil, err
	}

	c.now = now
	return c, nil
}

func (c *Codec) EncodeLoginState(redirectURL string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("login state ttl must be positive, got %s", ttl)
	}

	claims := loginStateClaims{
		RegisteredClaims: c.registeredClaims(ttl),
		TokenUse:         useLoginState,
		RedirectURL:      redirectURL,
	}

	return c.sign(claims)
}

func (c *Codec) DecodeLoginState(raw string) (LoginState, error) {
	var claims loginStateClaims
	if err := c.parse(raw, &claims); err != nil {
		return LoginState{}, err
	}

	if claims.TokenUse != useLoginState {
		return LoginState{}, ErrMalformed
	}

	return LoginState{RedirectURL: claims.RedirectURL}, nil
}

func (c *Codec) EncodeSession(userID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	claims := sessionClaims{
		RegisteredClaims: c.registeredClaims(ttl),
		TokenUse:         useSession,
		UserID:           userID,
	}

	return c.sign(claims)
}

func (c *Codec) DecodeSession(raw string) (Session, error) {
	var claims sessionClaims
	if err := c.parse(raw, &claims); err != nil {
		return Session{}, err
	}

	if claims.TokenUse != useSession {
		return Session{}, ErrMalformed
	}

	return Session{UserID: claims.UserID}, nil
}

func (c *Codec) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := c.now()

	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (c *Codec) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (c *Codec) parse(raw string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrMalformed
	}
}
