package handlers

import (
	"net/http"

	"sweet-booking/internal/middlewares"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(http.StatusOK, "OK")
}

// HandlerReady also checks the dependencies the API cannot serve without.
func HandlerReady(ctx *middlewares.AppContext) {
	if err := ctx.Storage.Ping(ctx); err != nil {
		ctx.Logger.Error("Storage ping failed", "error", err)
		ctx.SetJSONError(http.StatusServiceUnavailable, "storage unavailable")
		return
	}

	if err := ctx.Cache.Ping(ctx); err != nil {
		ctx.Logger.Error("Cache ping failed", "error", err)
		ctx.SetJSONError(http.StatusServiceUnavailable, "cache unavailable")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
