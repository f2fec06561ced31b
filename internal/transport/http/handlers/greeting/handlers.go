package greetinghandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"labfixture/internal/domain/greeting"
	"labfixture/internal/requestctx"
	"labfixture/internal/transport/http/api"
	"labfixture/internal/transport/http/shared"
)

const (
	headerName       = "name-from-header"
	headerTitle      = "title"
	headerSecretCode = "secret-code"
)

type Handler struct {
	SecretCode int
	Logger     *slog.Logger
}

func NewHandler(secretCode int, logger *slog.Logger) *Handler {
	return &Handler{SecretCode: secretCode, Logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/message", h.handleMessage)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	msg := greeting.Welcome(r.Header.Get(headerName), r.Header.Get(headerTitle))
	api.Success(w, api.Message{Message: msg})
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	values := r.Header.Values(headerSecretCode)
	v.Present(headerSecretCode, len(values) > 0)

	var code int
	if len(values) > 0 {
		parsed, err := strconv.Atoi(strings.TrimSpace(values[0]))
		if err != nil {
			v.Add(headerSecretCode, "value is not a valid integer")
		}
		code = parsed
	}
	if v.Reject(w) {
		return
	}

	msg, err := greeting.Secret(code, h.SecretCode)
	if err != nil {
		requestctx.Logger(r.Context(), h.Logger).Info("secret code rejected", "status", api.StatusOf(err))
		api.FailErr(w, err)
		return
	}
	api.Success(w, api.Message{Message: msg})
}
