package web

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"chatcart/internal/domain/ports/adapter"
	"chatcart/internal/infra/logging"
	"chatcart/internal/infra/redis"
	"chatcart/internal/usecase"
)

// RateLimiter throttles lookups per client. Nil disables throttling, which is
// the standalone mode without redis.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type Server struct {
	checkoutUC usecase.CheckoutUseCase
	convUC     usecase.ConversationUseCase
	subUC      usecase.SubscriptionUseCase
	settingsUC usecase.SettingsUseCase
	lookup     adapter.ProductLookupAdapter

	renderer *Renderer
	hub      *Hub

	limiter         RateLimiter
	lookupPerMinute int

	log *zerolog.Logger
}

func NewServer(
	checkoutUC usecase.CheckoutUseCase,
	convUC usecase.ConversationUseCase,
	subUC usecase.SubscriptionUseCase,
	settingsUC usecase.SettingsUseCase,
	lookup adapter.ProductLookupAdapter,
	limiter RateLimiter,
	lookupPerMinute int,
	logger *zerolog.Logger,
) *Server {
	webLog := logger.With().Str("component", "WebServer").Logger()
	return &Server{
		checkoutUC:      checkoutUC,
		convUC:          convUC,
		subUC:           subUC,
		settingsUC:      settingsUC,
		lookup:          lookup,
		renderer:        NewRenderer(),
		hub:             NewHub(logger),
		limiter:         limiter,
		lookupPerMinute: lookupPerMinute,
		log:             &webLog,
	}
}

// Renderer exposes the view projection so callers can wire store change
// events into broadcasts.
func (s *Server) Renderer() *Renderer { return s.renderer }

// Hub exposes the SSE fan-out.
func (s *Server) Hub() *Hub { return s.hub }

// WatchStore registers a change listener that re-renders the whole
// subscription list and pushes the fragment to every connected client.
func (s *Server) WatchStore() {
	s.subUC.OnChange(func() {
		subs, err := s.subUC.List(context.Background())
		if err != nil {
			s.log.Error().Err(err).Msg("re-render list failed")
			return
		}
		fragment, err := s.renderer.RenderList(subs)
		if err != nil {
			s.log.Error().Err(err).Msg("re-render failed")
			return
		}
		s.hub.Broadcast(fragment)
	})
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/health", healthHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/chat", chatHistoryHandler(s.convUC))
		r.With(s.rateLimitMiddleware).Post("/chat/lookup", chatLookupHandler(s.checkoutUC))

		r.Post("/checkout/subscribe", checkoutSubscribeHandler(s.checkoutUC))
		r.Post("/checkout/buy", checkoutBuyHandler(s.checkoutUC))

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", subscriptionsListHandler(s.subUC))
			r.Get("/fragment", subscriptionsFragmentHandler(s.subUC, s.renderer))
			r.Get("/events", s.hub.ServeHTTP)
			r.Post("/{id}/toggle", subscriptionToggleHandler(s.subUC))
			r.Delete("/{id}", subscriptionCancelHandler(s.subUC))
			r.Put("/{id}/frequency", subscriptionFrequencyHandler(s.subUC))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/theme", themeGetHandler(s.settingsUC))
			r.Put("/theme", themeSetHandler(s.settingsUC))
		})
	})

	r.With(s.rateLimitMiddleware).Get("/api/products/lookup", relayLookupHandler(s.lookup))

	return r
}

// requestIDMiddleware tags every request with an id for log correlation.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Flush() {
	if f, ok := rec.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.With(r.Context(), s.log).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// rateLimitMiddleware throttles lookup traffic per client address using the
// redis fixed-window counter. Limiter errors fail open.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		allowed, err := s.limiter.Allow(r.Context(), redis.LookupKey(host), s.lookupPerMinute, time.Minute)
		if err != nil {
			s.log.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			http.Error(w, "Too many lookups, slow down", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
