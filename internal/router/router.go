package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/lazlle/menu-builder/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that are independent of any tenant on the
// provided Echo instance.  Currently it exposes only a health check, which
// load balancers and monitoring systems use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAdmin registers the admin-form endpoints under the /admin prefix.
// The tenant rewrite middleware never touches this prefix, so these routes
// behave identically on every host.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/admin")
	// Create a café together with its whole menu in one atomic submission.
	g.POST("/cafes", a.CreateCafe)
	// Live availability check the form calls while the owner types the name.
	g.GET("/slug-check", a.CheckSlug)
}

// RegisterPublic registers the tenant-facing menu route.  Requests arriving
// on a tenant subdomain are rewritten to /{slug} before routing, so this
// single parameterized route serves every tenant.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/:slug", p.GetMenu)
}
