package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sweet-booking/internal/middlewares"
	"sweet-booking/internal/storage"
)

type updateRewardRequest struct {
	RewardPoints *int   `json:"rewardPoints"`
	Reason       string `json:"reason"`
}

const defaultRewardReason = "調整積分"

// GETRewardHandler returns a user's reward balance and history. Users may
// only read their own.
func GETRewardHandler(ctx *middlewares.AppContext) {
	user := ctx.GetPrincipal()
	if user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
		return
	}

	requestedID, err := pathUserID(ctx)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid userId")
		return
	}

	if requestedID != user.ID {
		ctx.SetJSONError(http.StatusForbidden, "Cannot view other users' rewards")
		return
	}

	reward, err := ctx.Storage.GetRewardSummary(ctx, requestedID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "User not found")
			return
		}

		ctx.Logger.Error("Failed to load reward summary", "error", err, "user_id", requestedID)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{"reward": reward})
}

// PUTRewardHandler sets a user's reward balance, logging the delta.
func PUTRewardHandler(ctx *middlewares.AppContext) {
	user := ctx.GetPrincipal()
	if user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
		return
	}

	requestedID, err := pathUserID(ctx)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid userId")
		return
	}

	if requestedID != user.ID {
		ctx.SetJSONError(http.StatusForbidden, "Cannot update other users' rewards")
		return
	}

	var body updateRewardRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil || body.RewardPoints == nil || *body.RewardPoints < 0 {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Reason == "" {
		body.Reason = defaultRewardReason
	}

	updated, delta, err := ctx.Storage.SetRewardPoints(ctx, requestedID, *body.RewardPoints, body.Reason)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "User not found")
			return
		}

		ctx.Logger.Error("Failed to set reward points", "error", err, "user_id", requestedID)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"user":  updated,
		"delta": delta,
	})
}
