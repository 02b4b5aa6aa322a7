package handlers

import (
	"net/http"

	"sweet-booking/internal/middlewares"
)

// GETWebhookHandler answers the LINE console's reachability probe.
func GETWebhookHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Use POST to deliver LINE events",
	})
}

// POSTWebhookHandler receives events from the LINE platform. The signature
// check happens inside ParseRequest; a bad signature is reported as 400 so
// the platform does not retry forged deliveries.
func POSTWebhookHandler(ctx *middlewares.AppContext) {
	if ctx.Bot == nil {
		ctx.SetJSONError(http.StatusServiceUnavailable, "messaging channel not configured")
		return
	}

	events, err := ctx.Bot.ParseRequest(ctx.Request)
	if err != nil {
		ctx.Logger.Warn("Rejected webhook delivery", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid webhook request")
		return
	}

	if len(events) == 0 {
		ctx.SetJSONStatus(http.StatusOK, "ignored")
		return
	}

	for _, event := range events {
		if err := ctx.Bot.HandleEvent(ctx, event); err != nil {
			ctx.Logger.Error("Failed to handle webhook event", "error", err)
		}
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"status": "processed",
		"events": len(events),
	})
}
