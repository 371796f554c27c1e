package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"aquaria-partner-portal/internal/adapter/middleware"
	"aquaria-partner-portal/internal/domain/auth"
	ucAuth "aquaria-partner-portal/internal/usecase/auth"
	ucPartner "aquaria-partner-portal/internal/usecase/partner"
	ucQuote "aquaria-partner-portal/internal/usecase/quote"
)

type Deps struct {
	Auth     *ucAuth.Usecase
	Partners *ucPartner.Usecase
	Quotes   *ucQuote.Usecase

	Redis    *redis.Client
	IdempTTL time.Duration
	Checks   map[string]Pinger
	// Metrics is served at /metrics when set.
	Metrics  prometheus.Gatherer
}

func Register(e *echo.Echo, d Deps) {
	h := NewHandler(d.Checks)
	ah := NewAuthHandler(d.Auth)
	ph := NewPartnerHandler(d.Partners, d.Quotes)
	qh := NewQuoteHandler(d.Quotes)

	authn := middleware.Authenticate(d.Auth)
	idemp := middleware.IdempotencyMiddleware(d.Redis, d.IdempTTL)

	e.GET("/health", h.Health)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	a := e.Group("/auth")
	a.POST("/login", ah.Login)
	a.POST("/logout", ah.Logout, authn)
	a.GET("/session", ah.Session, authn)
	a.GET("/me", ah.Me, authn)

	// public calculator
	e.POST("/calculator/price", qh.Price)
	e.GET("/calculator/:code", ph.Calculator)
	e.POST("/calculator/:code/price", qh.Price)

	adm := e.Group("/admin", authn, middleware.RequireRole(auth.RoleSuperAdmin))
	adm.GET("/partners", ph.List)
	adm.GET("/partners/stats", ph.Stats)
	adm.POST("/partners", ph.Create, idemp)
	adm.POST("/partners/code-suggestion", ph.SuggestCode)
	adm.GET("/partners/:code", ph.Get)
	adm.PATCH("/partners/:code", ph.UpdateSettings)
	adm.POST("/users", ah.CreateUser)

	p := e.Group("/portal/:code", authn, middleware.RequirePartnerScope("code"))
	p.GET("", ph.Portal)
	p.PATCH("/settings", ph.UpdateSettings)
	p.PUT("/features", ph.UpdateFeatures)
	p.PUT("/pricing", ph.UpdatePricing)
	p.DELETE("/pricing", ph.ResetPricing)
	p.GET("/quotes", ph.Quotes)
	p.GET("/quotes/stats", ph.QuoteStats)

	q := e.Group("/quotes", authn)
	q.POST("", qh.Create, idemp)
	q.GET("/:number", qh.Get)
	q.PATCH("/:number", qh.Update)
	q.POST("/:number/resend", qh.Resend)
	q.DELETE("/:number", qh.Delete)
}
