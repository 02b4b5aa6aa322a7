package middlewares

import "sweet-booking/internal/models"

// SetPrincipal records the authenticated user for the rest of the request.
func (ctx *AppContext) SetPrincipal(user *models.User) {
	ctx.principal = user
}

// GetPrincipal returns the authenticated user, or nil before RequireAuth has
// run.
func (ctx *AppContext) GetPrincipal() *models.User {
	return ctx.principal
}
