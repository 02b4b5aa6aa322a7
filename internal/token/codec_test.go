package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-please-rotate"

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec("")
	assert.Error(t, err)
}

func TestCodec_LoginStateRoundTrip(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	raw, err := codec.EncodeLoginState("https://app.example.com/booking?sweetId=3", 10*time.Minute)
	require.NoError(t, err)

	state, err := codec.DecodeLoginState(raw)
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/booking?sweetId=3", state.RedirectURL)
}

func TestCodec_SessionRoundTrip(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	raw, err := codec.EncodeSession(42, 7*24*time.Hour)
	require.NoError(t, err)

	session, err := codec.DecodeSession(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
}

func TestCodec_ExpiredLoginState(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	codec, err := NewCodecAt(testSecret, fixedClock(issued))
	require.NoError(t, err)

	raw, err := codec.EncodeLoginState("https://app.example.com/", 10*time.Minute)
	require.NoError(t, err)

	// Still valid one minute before the deadline.
	codec.now = fixedClock(issued.Add(9 * time.Minute))
	_, err = codec.DecodeLoginState(raw)
	assert.NoError(t, err)

	// Eleven minutes after issuance the token is dead even though it is
	// well formed and correctly signed.
	codec.now = fixedClock(issued.Add(11 * time.Minute))
	_, err = codec.DecodeLoginState(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestCodec_ExpiredSession(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	codec, err := NewCodecAt(testSecret, fixedClock(issued))
	require.NoError(t, err)

	raw, err := codec.EncodeSession(7, 7*24*time.Hour)
	require.NoError(t, err)

	codec.now = fixedClock(issued.Add(8 * 24 * time.Hour))
	_, err = codec.DecodeSession(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	raw, err := codec.EncodeSession(42, time.Hour)
	require.NoError(t, err)

	// Flip a single byte of the signature segment.
	last := raw[len(raw)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := raw[:len(raw)-1] + string(flipped)

	_, err = codec.DecodeSession(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodec_WrongSecret(t *testing.T) {
	signer, err := NewCodec("secret-one")
	require.NoError(t, err)

	verifier, err := NewCodec("secret-two")
	require.NoError(t, err)

	raw, err := signer.EncodeSession(42, time.Hour)
	require.NoError(t, err)

	_, err = verifier.DecodeSession(raw)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodec_Malformed(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", strings.Repeat("x", 512)} {
		_, err := codec.DecodeSession(raw)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestCodec_RejectsMismatchedTokenUse(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	stateToken, err := codec.EncodeLoginState("https://app.example.com/", 10*time.Minute)
	require.NoError(t, err)

	sessionToken, err := codec.EncodeSession(42, time.Hour)
	require.NoError(t, err)

	// A login-state token is not a session and vice versa, even though both
	// verify against the same secret.
	_, err = codec.DecodeSession(stateToken)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = codec.DecodeLoginState(sessionToken)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCodec_RejectsNonPositiveTTL(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	_, err = codec.EncodeLoginState("https://app.example.com/", 0)
	assert.Error(t, err)

	_, err = codec.EncodeSession(42, -time.Minute)
	assert.Error(t, err)
}
