package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings splits the comma-separated root domain list
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in the
// application: strings for identifiers, a set for the root domain lookup the
// host resolver performs on every request.
type Config struct {
	Env           string              // application environment (e.g. "dev", "prod")
	Port          string              // HTTP port to listen on
	DBUser        string              // database username
	DBPass        string              // database password (optional)
	DBHost        string              // database host address
	DBPort        string              // database port number
	DBName        string              // database name
	RootDomains   map[string]struct{} // apex hostnames that serve the admin/marketing site
	PublicDomain  string              // domain under which tenant menus are published ({slug}.PublicDomain)
	PreviewSuffix string              // optional preview-hosting suffix (e.g. "vercel.app"); empty disables the match
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:           must("APP_ENV"),                  // environment (dev/test/prod)
		Port:          must("APP_PORT"),                 // port to bind the HTTP server
		DBUser:        must("DB_USER"),                  // database user
		DBPass:        os.Getenv("DB_PASS"),             // database password (empty allowed)
		DBHost:        must("DB_HOST"),                  // database host
		DBPort:        must("DB_PORT"),                  // database port
		DBName:        must("DB_NAME"),                  // database name
		PublicDomain:  must("PUBLIC_DOMAIN"),            // apex under which tenant subdomains live
		PreviewSuffix: os.Getenv("PREVIEW_HOST_SUFFIX"), // preview host suffix (empty allowed)
	}
	cfg.RootDomains = splitDomains(must("ROOT_DOMAINS"))
	// The public domain always counts as a root, with and without www:
	// requests to the apex itself must never be treated as a tenant.
	cfg.RootDomains[cfg.PublicDomain] = struct{}{}
	cfg.RootDomains["www."+cfg.PublicDomain] = struct{}{}
	return cfg
}

// splitDomains turns a comma-separated list of hostnames into a lookup set.
// Entries are trimmed and lowercased; empty entries are ignored.
func splitDomains(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, d := range strings.Split(raw, ",") {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			out[d] = struct{}{}
		}
	}
	return out
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
