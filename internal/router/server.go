package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/plaquexpress/internal/auth"
	"github.com/wellywell/plaquexpress/internal/config"
	"github.com/wellywell/plaquexpress/internal/handlers"
)

const (
	compressLevel = 5
	readTimeout   = 10 * time.Second
	writeTimeout  = 30 * time.Second
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	server *http.Server
	router *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger{}.Handle)
	r.Use(middleware.Recoverer)
	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Get("/health", h.HandleHealth)

	r.Post("/api/orders", h.HandleCreateOrder)
	r.Post("/api/quote", h.HandleQuote)
	r.Post("/api/admin/login", h.HandleLogin)

	authMiddleware := &auth.AuthenticateMiddleware{Secret: conf.Secret}

	r.Group(func(r chi.Router) {

		r.Use(authMiddleware.Handle)
		r.Get("/api/admin/orders", h.HandleListOrders)
		r.Patch("/api/admin/orders/{id}/status", h.HandleUpdateOrderStatus)
		r.Get("/api/admin/notifications/settings", h.HandleGetSettings)
		r.Post("/api/admin/notifications/settings", h.HandlePostSettings)
		r.Post("/api/admin/notifications/send", h.HandleSendNotification)
	})

	return &Router{
		router: r,
		server: &http.Server{
			Addr:         conf.RunAddress,
			Handler:      r,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

// ListenAndServe blocks until the server stops. A graceful Shutdown is not
// reported as an error.
func (r *Router) ListenAndServe() error {
	err := r.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// RequestLogger writes one structured line per request.
type RequestLogger struct{}

func (l RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		entry := logger.WithFields(logger.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
		})
		if ww.Status() >= http.StatusInternalServerError {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request served")
	})
}
