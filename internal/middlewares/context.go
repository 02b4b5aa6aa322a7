package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"sweet-booking/internal/config"
	"sweet-booking/internal/data"
	"sweet-booking/internal/linebot"
	"sweet-booking/internal/models"
	"sweet-booking/internal/storage"
	"sweet-booking/internal/token"
)

type AppContext struct {
	context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Storage storage.StorageProvider
	Cache   data.CacheProvider
	Line    LineProvider
	Tokens  *token.Codec
	Bot     *linebot.Bot

	Request  *http.Request
	Response http.ResponseWriter

	principal *models.User
}

type contextKey string

const appContextKey contextKey = "appContext"

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, store storage.StorageProvider, cache data.CacheProvider, line LineProvider, tokens *token.Codec, bot *linebot.Bot) *AppContext {
	return &AppContext{
		Context: ctx,
		Config:  cfg,
		Logger:  logger,
		Storage: store,
		Cache:   cache,
		Line:    line,
		Tokens:  tokens,
		Bot:     bot,
	}
}

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:  r.Context(),
				Config:   baseCtx.Config,
				Logger:   baseCtx.Logger,
				Storage:  baseCtx.Storage,
				Cache:    baseCtx.Cache,
				Line:     baseCtx.Line,
				Tokens:   baseCtx.Tokens,
				Bot:      baseCtx.Bot,
				Request:  r,
				Response: w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts an AppHandler to an http.HandlerFunc.
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
