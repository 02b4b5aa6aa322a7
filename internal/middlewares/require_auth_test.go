package middlewares_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sweet-booking/internal/middlewares"
	"sweet-booking/internal/models"
	"sweet-booking/internal/storage"
	"sweet-booking/internal/testutil"
	"sweet-booking/internal/token"
)

// callGate runs a request through the context middleware and the auth gate,
// reporting whether the inner handler was reached and with which principal.
func callGate(tc *testutil.TestContext) (reached bool, principal *models.User) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		principal = middlewares.GetAppContext(r).GetPrincipal()
		w.WriteHeader(http.StatusOK)
	})

	handler := middlewares.AppContextMiddleware(tc.AppContext)(middlewares.RequireAuth(inner))
	handler.ServeHTTP(tc.Response, tc.Request)
	return reached, principal
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")

	reached, _ := callGate(tc)

	assert.False(t, reached)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Invalid or expired token")
}

func TestRequireAuthWrongScheme(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")
	tc.WithHeader("Authorization", "Basic dXNlcjpwYXNz")

	reached, _ := callGate(tc)

	assert.False(t, reached)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Invalid or expired token")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	forgedCodec, err := token.NewCodec("some-other-secret")
	require.NoError(t, err)

	forged, err := forgedCodec.EncodeSession(42, time.Hour)
	require.NoError(t, err)

	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")
	tc.WithHeader("Authorization", "Bearer "+forged)

	reached, _ := callGate(tc)

	assert.False(t, reached)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Invalid or expired token")
}

func TestRequireAuthExpiredSession(t *testing.T) {
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	staleCodec, err := token.NewCodecAt(testutil.TestSigningSecret, func() time.Time { return issuedAt })
	require.NoError(t, err)

	expired, err := staleCodec.EncodeSession(42, 7*24*time.Hour)
	require.NoError(t, err)

	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")
	tc.WithHeader("Authorization", "Bearer "+expired)

	reached, _ := callGate(tc)

	assert.False(t, reached)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Invalid or expired token")
}

func TestRequireAuthUnknownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")

	session, err := tc.Codec.EncodeSession(42, time.Hour)
	require.NoError(t, err)
	tc.WithHeader("Authorization", "Bearer "+session)

	tc.MockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)

	reached, _ := callGate(tc)

	assert.False(t, reached)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Invalid or expired token")
}

func TestRequireAuthSuccess(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/login/me")

	session, err := tc.Codec.EncodeSession(42, time.Hour)
	require.NoError(t, err)
	tc.WithHeader("Authorization", "Bearer "+session)

	user := &models.User{ID: 42, DisplayName: "小夜"}
	tc.MockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(user, nil)

	reached, principal := callGate(tc)

	assert.True(t, reached)
	tc.AssertStatus(t, http.StatusOK)
	require.NotNil(t, principal)
	assert.Equal(t, int64(42), principal.ID)
}
