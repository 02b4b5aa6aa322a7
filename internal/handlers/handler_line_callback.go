package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"sweet-booking/internal/auth"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/middlewares"
)

// User-facing login failure messages, surfaced as a query parameter on the
// post-login redirect.
const (
	msgMissingState = "缺少驗證資訊，請重新登入"
	msgInvalidState = "登入驗證逾時或來源不正確，請重新登入"
	msgMissingCode  = "缺少授權碼，登入失敗"
	msgLoginFailed  = "登入流程失敗，請稍後再試"
)

// GETLineCallbackHandler finishes a login attempt. Every outcome ends in a
// redirect carrying either a session token or an error message, never both.
// The redirect target is always the trusted fallback or a URL that was
// sanitized before it went into the state token.
func GETLineCallbackHandler(ctx *middlewares.AppContext) {
	fallback, err := ctx.Config.FrontendOriginURL()
	if err != nil {
		ctx.Logger.Error("Invalid frontend origin configured", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	query := ctx.Request.URL.Query()

	rawState := query.Get("state")
	if rawState == "" {
		ctx.Logger.Warn("Callback missing state parameter")
		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeInvalidState).Inc()
		redirectWithError(ctx, fallback, msgMissingState)
		return
	}

	loginState, err := ctx.Tokens.DecodeLoginState(rawState)
	if err != nil {
		ctx.Logger.Warn("Callback state rejected", "error", err)
		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeInvalidState).Inc()
		redirectWithError(ctx, fallback, msgInvalidState)
		return
	}

	returnURL, err := url.Parse(loginState.RedirectURL)
	if err != nil {
		returnURL = fallback
	}

	if providerErr := query.Get("error"); providerErr != "" {
		description := query.Get("error_description")
		if description == "" {
			description = providerErr
		}

		ctx.Logger.Warn("LINE reported a login error", "error", providerErr, "description", description)
		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeProviderError).Inc()
		redirectWithError(ctx, returnURL, description)
		return
	}

	code := query.Get("code")
	if code == "" {
		ctx.Logger.Warn("Callback missing authorization code")
		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeProviderError).Inc()
		redirectWithError(ctx, returnURL, msgMissingCode)
		return
	}

	idToken, err := ctx.Line.ExchangeCode(ctx, code)
	if err != nil {
		var exchangeErr *auth.ExchangeError
		if errors.As(err, &exchangeErr) {
			ctx.Logger.Error("Code exchange rejected", "status", exchangeErr.Status, "body", exchangeErr.Body)
		} else {
			ctx.Logger.Error("Code exchange failed", "error", err)
		}

		metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeExchangeError).Inc()
		redirectWithError(ctx, returnURL, msgLoginFailed)
		return
	}

	user, session, err := auth.LoginWithIDToken(ctx, ctx.Line, ctx.Storage, ctx.Tokens, ctx.Config.Auth.SessionTTL, idToken)
	if err != nil {
		outcome := metrics.LoginOutcomeStorageError
		if errors.Is(err, auth.ErrVerificationFailed) {
			outcome = metrics.LoginOutcomeExchangeError
		}

		ctx.Logger.Error("Failed to resolve user from id token", "error", err)
		metrics.LoginsTotal.WithLabelValues(outcome).Inc()
		redirectWithError(ctx, returnURL, msgLoginFailed)
		return
	}

	ctx.Logger.Info("User logged in", "user_id", user.ID, "line_user_id", user.LineUserID)
	metrics.LoginsTotal.WithLabelValues(metrics.LoginOutcomeSuccess).Inc()
	redirectWithParam(ctx, returnURL, "token", session)
}

func redirectWithError(ctx *middlewares.AppContext, base *url.URL, message string) {
	redirectWithParam(ctx, base, "error", message)
}

func redirectWithParam(ctx *middlewares.AppContext, base *url.URL, key, value string) {
	target := *base
	q := target.Query()
	q.Set(key, value)
	target.RawQuery = q.Encode()

	ctx.Redirect(target.String(), http.StatusFound)
}
