package http

import (
	"time"

	_ "phishx/docs"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"phishx/internal/api/http/dashboard"
	"phishx/internal/api/http/logger"
	"phishx/internal/api/http/proxy"
	"phishx/internal/api/http/websocket"
	"phishx/internal/core/appliance"
	"phishx/internal/core/blockedsvc"
	coredashboard "phishx/internal/core/dashboard"
	"phishx/internal/core/gateway"
	"phishx/internal/env"
	"phishx/internal/metrics"
	"phishx/internal/store/session"
)

// @title PhishX API
// @version 1.0
// @description Dashboard backend and credential-injecting proxy for an AdGuard Home appliance
// @BasePath /
// @schemes http https

type RouterOptions struct {
	Config   *env.Config
	Metrics  *metrics.Registry
	AuditLog logger.Logger
	Node     string
}

func NewApiRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// == wiring ==
	gw := gateway.NewGatewayService(opts.Config, opts.Metrics)
	client := appliance.NewApplianceService(gw)
	aggregator := coredashboard.NewAggregator(client, opts.Metrics)
	sessions := session.NewSessionStore(sessionTTL(opts.Config), func() (coredashboard.ViewHandler, blockedsvc.EditorHandler) {
		return coredashboard.NewView(aggregator, client), blockedsvc.NewEditor(client)
	}, opts.Metrics)

	handler := NewRequestHandler(opts.Config)
	proxyHandler := proxy.NewRequestHandler(gw)
	dashboardHandler := dashboard.NewRequestHandler(sessions)
	streamHandler := websocket.NewRequestHandler(sessions)

	// middleware
	r.Use(middleware.RequestID)
	if opts.AuditLog != nil {
		r.Use(logger.LoggerMiddleware(opts.AuditLog, "phishx", opts.Node))
	}
	r.Use(middleware.Recoverer)

	// == ops ==
	r.Get("/healthz", handler.Healthz)
	r.Method("GET", "/metrics", opts.Metrics.Handler())

	// == swagger ==
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// == proxy ==
	r.Get("/api/adguard/*", proxyHandler.ForwardGet)   // relay read
	r.Post("/api/adguard/*", proxyHandler.ForwardPost) // relay write

	// == v1 ==
	// == sessions ==
	r.Post("/v1/sessions", dashboardHandler.CreateSession)               // open session
	r.Delete("/v1/sessions/{sessionId}", dashboardHandler.DeleteSession) // close session
	r.Get("/v1/sessions/{sessionId}/stream", streamHandler.ServeHTTP)    // websocket refresh stream

	// == dashboard ==
	r.Get("/v1/sessions/{sessionId}/dashboard", dashboardHandler.GetDashboard)              // snapshot
	r.Post("/v1/sessions/{sessionId}/dashboard/refresh", dashboardHandler.RefreshDashboard) // re-fetch
	r.Post("/v1/sessions/{sessionId}/protection", dashboardHandler.ToggleProtection)        // toggle protection
	r.Post("/v1/sessions/{sessionId}/blocklist", dashboardHandler.AddBlockedDomain)         // block domain

	// == blocked services ==
	r.Get("/v1/sessions/{sessionId}/blocked-services", dashboardHandler.GetBlockedServices)                       // catalog + working set
	r.Post("/v1/sessions/{sessionId}/blocked-services/{serviceId}/toggle", dashboardHandler.ToggleBlockedService) // toggle membership
	r.Post("/v1/sessions/{sessionId}/blocked-services/save", dashboardHandler.SaveBlockedServices)                // submit working set

	return r
}

func sessionTTL(cfg *env.Config) time.Duration {
	if cfg != nil && cfg.SessionTTL > 0 {
		return cfg.SessionTTL
	}
	return env.DefaultSessionTTL
}
