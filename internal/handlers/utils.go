package handlers

import (
	"fmt"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sweet-booking/internal/middlewares"
)

func pathUserID(ctx *middlewares.AppContext) (int64, error) {
	raw := chi.URLParam(ctx.Request, "userId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing userId %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("userId must be positive, got %d", id)
	}
	return id, nil
}
