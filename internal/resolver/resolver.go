// Package resolver maps an incoming Host header to a routing decision.  A
// request either targets the root site (admin/marketing pages, served as-is)
// or a tenant subdomain, in which case the request path is rewritten to
// "/{slug}{path}" so the router can dispatch it to the public menu handlers.
//
// Resolve is a pure function: no I/O, no error channel.  Any host it cannot
// confidently attribute to a tenant degrades to a passthrough decision rather
// than failing the request.
package resolver

import "strings"

// Decision is the outcome of resolving a Host header.  When Rewrite is true,
// Path carries the tenant-prefixed path the router should dispatch instead of
// the original one.
type Decision struct {
	Rewrite bool
	Path    string
}

// Passthrough is the zero decision: serve the requested path unchanged.
var Passthrough = Decision{}

// Resolve inspects the raw Host header and decides whether the request targets
// a tenant subdomain.
//
//	host          – raw Host header value, may include a port
//	path          – the request path ("/" for the menu landing page)
//	roots         – apex hostnames that serve the root site (lowercase, no port)
//	previewSuffix – optional preview-hosting suffix; hosts of the form
//	                "<slug>-<project>.<previewSuffix>" carry the slug before
//	                the first hyphen.  Empty disables the match.
func Resolve(host, path string, roots map[string]struct{}, previewSuffix string) Decision {
	if host == "" {
		return Passthrough
	}

	// Strip the port suffix, if any.
	hostname := strings.ToLower(host)
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}

	// Root domains and bare local-dev hosts serve the root site directly.
	if _, ok := roots[hostname]; ok {
		return Passthrough
	}
	if hostname == "localhost" || hostname == "127.0.0.1" {
		return Passthrough
	}

	parts := strings.Split(hostname, ".")

	var slug string
	switch {
	case previewSuffix != "" && strings.HasSuffix(hostname, "."+previewSuffix):
		// Preview hosting publishes tenants as <slug>-<project>.<suffix>;
		// the slug is everything before the first hyphen of the first label.
		if i := strings.IndexByte(parts[0], '-'); i > 0 {
			slug = parts[0][:i]
		}
	case len(parts) >= 3:
		// Production: <slug>.<apex>, where the apex has at least two labels.
		slug = parts[0]
	}

	// "www" is never a tenant, and no slug means nothing to rewrite.
	if slug == "" || slug == "www" {
		return Passthrough
	}

	// "/" must become "/{slug}" with no trailing slash.
	rewritten := "/" + slug
	if path != "/" {
		rewritten += path
	}
	return Decision{Rewrite: true, Path: rewritten}
}
