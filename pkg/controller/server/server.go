package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

var responseOK = []byte(`{"ok":true}`)

func safeWrite(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	safeWrite(w, http.StatusNotFound, contentTypeText, []byte("Not Found"))
}

type config struct {
	ghSecret types.WebhookSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(preProcess)
	r.Use(middleware.Recoverer)

	// A known path with the wrong method is treated like an unknown path
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, contentTypeJSON, responseOK)
	})
	r.Post("/webhooks/github", handleGitHubWebhook(uc, cfg.ghSecret))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
