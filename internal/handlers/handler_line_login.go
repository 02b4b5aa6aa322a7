package handlers

import (
	"net/http"

	"sweet-booking/internal/auth"
	"sweet-booking/internal/middlewares"
)

// GETLineAuthorizeHandler starts a login attempt. The requested return URL is
// sanitized before it is sealed into the state token, so the callback can
// trust whatever it decodes.
func GETLineAuthorizeHandler(ctx *middlewares.AppContext) {
	fallback, err := ctx.Config.FrontendOriginURL()
	if err != nil {
		ctx.Logger.Error("Invalid frontend origin configured", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	returnURL := auth.SanitizeRedirect(ctx.Request.URL.Query().Get("redirect"), fallback)

	state, err := ctx.Tokens.EncodeLoginState(returnURL.String(), ctx.Config.Auth.LoginStateTTL)
	if err != nil {
		ctx.Logger.Error("Failed to encode login state", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	authURL := ctx.Line.AuthorizeURL(state)
	ctx.Logger.Debug("Redirecting to LINE authorize endpoint", "return_url", returnURL.String())

	ctx.Redirect(authURL, http.StatusFound)
}
