package middlewares

import (
	"context"

	"sweet-booking/internal/models"
)

//go:generate mockgen -source=line_provider.go -destination=../mocks/line.go -package=mocks

// LineProvider covers the LINE Login operations the handlers depend on.
type LineProvider interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	VerifyIDToken(ctx context.Context, idToken string) (*models.LineProfile, error)
}
