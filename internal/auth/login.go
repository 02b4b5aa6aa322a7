package auth

import (
	"context"
	"fmt"
	"time"

	"sweet-booking/internal/models"
	"sweet-booking/internal/token"
)

// idTokenVerifier is the slice of the LINE provider needed to complete a
// login.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*models.LineProfile, error)
}

// userUpserter is the slice of the storage provider needed to complete a
// login.
type userUpserter interface {
	UpsertLineUser(ctx context.Context, lineUserID, displayName, avatar string) (*models.User, error)
}

// LoginWithIDToken verifies an ID token with the provider, upserts the local
// user it attests to and mints a session token for that user. Both the
// callback flow and the direct ID token login go through here.
func LoginWithIDToken(ctx context.Context, verifier idTokenVerifier, store userUpserter, codec *token.Codec, sessionTTL time.Duration, idToken string) (*models.User, string, error) {
	profile, err := verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	user, err := store.UpsertLineUser(ctx, profile.Sub, profile.Name, profile.Picture)
	if err != nil {
		return nil, "", fmt.Errorf("upserting line user: %w", err)
	}

	session, err := codec.EncodeSession(user.ID, sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("minting session token: %w", err)
	}
	return user, session, nil
}
