package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet-booking/internal/models"
	"sweet-booking/internal/token"
)

type fakeVerifier struct {
	profile *models.LineProfile
	err     error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*models.LineProfile, error) {
	return f.profile, f.err
}

type fakeUpserter struct {
	user      *models.User
	err       error
	gotLineID string
	gotName   string
	gotAvatar string
	callCount int
}

func (f *fakeUpserter) UpsertLineUser(ctx context.Context, lineUserID, displayName, avatar string) (*models.User, error) {
	f.callCount++
	f.gotLineID = lineUserID
	f.gotName = displayName
	f.gotAvatar = avatar
	return f.user, f.err
}

func TestLoginWithIDToken(t *testing.T) {
	codec, err := token.NewCodec("test-secret")
	require.NoError(t, err)

	verifier := &fakeVerifier{profile: &models.LineProfile{Sub: "U123", Name: "小夜", Picture: "https://cdn.example.com/p.jpg"}}
	store := &fakeUpserter{user: &models.User{ID: 42, LineUserID: "U123", DisplayName: "小夜"}}

	user, session, err := LoginWithIDToken(context.Background(), verifier, store, codec, time.Hour, "fake-id-token")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "U123", store.gotLineID)
	assert.Equal(t, "小夜", store.gotName)
	assert.Equal(t, "https://cdn.example.com/p.jpg", store.gotAvatar)

	decoded, err := codec.DecodeSession(session)
	require.NoError(t, err)
	assert.Equal(t, int64(42), decoded.UserID)
}

func TestLoginWithIDTokenVerificationFails(t *testing.T) {
	codec, err := token.NewCodec("test-secret")
	require.NoError(t, err)

	verifier := &fakeVerifier{err: ErrVerificationFailed}
	store := &fakeUpserter{}

	_, _, err = LoginWithIDToken(context.Background(), verifier, store, codec, time.Hour, "tampered")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Zero(t, store.callCount)
}

func TestLoginWithIDTokenUpsertFails(t *testing.T) {
	codec, err := token.NewCodec("test-secret")
	require.NoError(t, err)

	storeErr := errors.New("connection refused")
	verifier := &fakeVerifier{profile: &models.LineProfile{Sub: "U123"}}
	store := &fakeUpserter{err: storeErr}

	_, _, err = LoginWithIDToken(context.Background(), verifier, store, codec, time.Hour, "fake-id-token")
	assert.ErrorIs(t, err, storeErr)
}
