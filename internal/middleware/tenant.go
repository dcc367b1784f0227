// Package middleware contains reusable HTTP middleware functions.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lazlle/menu-builder/internal/resolver"
)

// bypassPrefixes lists the path prefixes that are never subject to tenant
// resolution: the admin surface, health checks and static assets are served
// as-is no matter which host the request arrived on.
var bypassPrefixes = []string{
	"/admin",
	"/healthz",
	"/assets",
	"/favicon.ico",
}

// TenantRewrite returns a middleware that maps a request's subdomain to its
// tenant route: "acme.lazlle.studio/" is dispatched as "/acme" and
// "acme.lazlle.studio/menu" as "/acme/menu". Requests to a root domain, and
// requests to the bypass prefixes, pass through untouched.
//
// Register it with e.Pre so the rewrite happens before the router matches.
func TenantRewrite(roots map[string]struct{}, previewSuffix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path

			for _, p := range bypassPrefixes {
				if strings.HasPrefix(path, p) {
					return next(c)
				}
			}

			d := resolver.Resolve(req.Host, path, roots, previewSuffix)
			if d.Rewrite {
				req.URL.Path = d.Path
				// A stale RawPath would override the rewrite during routing.
				req.URL.RawPath = ""
			}
			return next(c)
		}
	}
}
