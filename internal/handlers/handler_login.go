package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sweet-booking/internal/auth"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/middlewares"
)

type loginRequest struct {
	IDToken string `json:"idToken"`
}

// POSTLoginHandler logs in with an ID token obtained by the LIFF client
// directly, skipping the authorize/callback hop.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	var body loginRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil || body.IDToken == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	user, session, err := auth.LoginWithIDToken(ctx, ctx.Line, ctx.Storage, ctx.Tokens, ctx.Config.Auth.SessionTTL, body.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrVerificationFailed) {
			ctx.Logger.Warn("ID token rejected", "error", err)
			metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeExchangeError).Inc()
			ctx.SetJSONError(http.StatusUnauthorized, "Invalid LINE id token")
			return
		}

		ctx.Logger.Error("Failed to resolve user from id token", "error", err)
		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeStorageError).Inc()
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Info("User logged in", "user_id", user.ID, "line_user_id", user.LineUserID)
	metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeSuccess).Inc()

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"token": session,
		"user":  user,
	})
}

// GETLoginMeHandler returns the authenticated user's own record.
func GETLoginMeHandler(ctx *middlewares.AppContext) {
	user := ctx.GetPrincipal()
	if user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"user": user,
	})
}
