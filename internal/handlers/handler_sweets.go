package handlers

import (
	"net/http"

	"sweet-booking/internal/middlewares"
)

// GETSweetsHandler lists the sweet catalog, served from cache when warm.
func GETSweetsHandler(ctx *middlewares.AppContext) {
	if sweets, ok := ctx.Cache.GetSweets(ctx); ok {
		ctx.WriteJSON(http.StatusOK, map[string]any{"sweets": sweets})
		return
	}

	sweets, err := ctx.Storage.ListSweets(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to list sweets", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cache.SetSweets(ctx, sweets)

	ctx.WriteJSON(http.StatusOK, map[string]any{"sweets": sweets})
}
