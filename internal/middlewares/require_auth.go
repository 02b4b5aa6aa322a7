package middlewares

import (
	"net/http"
	"strings"

	"sweet-booking/internal/metrics"
)

const invalidTokenMessage = "Invalid or expired token"

// RequireAuth gates a route on a valid session token. Every rejection uses
// the same status and message so callers cannot probe which check failed.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		raw, ok := extractBearerToken(r)
		if !ok {
			rejectUnauthorized(appCtx, "missing bearer token")
			return
		}

		session, err := appCtx.Tokens.DecodeSession(raw)
		if err != nil {
			rejectUnauthorized(appCtx, "session token rejected", "error", err)
			return
		}

		user, err := appCtx.Storage.GetUserByID(appCtx, session.UserID)
		if err != nil {
			rejectUnauthorized(appCtx, "session user not found", "user_id", session.UserID, "error", err)
			return
		}

		appCtx.SetPrincipal(user)
		next.ServeHTTP(w, r)
	})
}

func rejectUnauthorized(ctx *AppContext, reason string, args ...any) {
	metrics.AuthFailuresTotal.Inc()
	ctx.Logger.Debug(reason, args...)
	ctx.SetJSONError(http.StatusUnauthorized, invalidTokenMessage)
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}
	return token, true
}
