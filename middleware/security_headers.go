package middleware

import (
	"maps"
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/handler"
)

// SecurityHeadersConfig configures the security headers middleware.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	ContentTypeOptions      string // X-Content-Type-Options
	FrameOptions            string // X-Frame-Options
	StrictTransportSecurity string // Strict-Transport-Security
	ReferrerPolicy          string // Referrer-Policy
	CacheControl            string // Cache-Control

	// CustomHeaders allows adding additional headers
	CustomHeaders map[string]string

	// IsDevelopment disables HSTS
	IsDevelopment bool
}

// SessionEndpointSecurity suits JSON endpoints that set or expose session state:
// responses must never be cached by browsers or shared proxies.
var SessionEndpointSecurity = SecurityHeadersConfig{
	ContentTypeOptions:      "nosniff",
	FrameOptions:            "DENY",
	StrictTransportSecurity: "max-age=31536000; includeSubDomains",
	ReferrerPolicy:          "no-referrer",
	CacheControl:            "no-store",
}

// SecurityHeaders applies SessionEndpointSecurity.
func SecurityHeaders() handler.Middleware {
	return SecurityHeadersWithConfig(SessionEndpointSecurity)
}

// SecurityHeadersWithConfig sets the configured headers before the handler runs,
// so they are present on error responses too.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) handler.Middleware {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	if cfg.ContentTypeOptions != "" {
		headers["X-Content-Type-Options"] = cfg.ContentTypeOptions
	}
	if cfg.FrameOptions != "" {
		headers["X-Frame-Options"] = cfg.FrameOptions
	}
	if cfg.StrictTransportSecurity != "" {
		headers["Strict-Transport-Security"] = cfg.StrictTransportSecurity
	}
	if cfg.ReferrerPolicy != "" {
		headers["Referrer-Policy"] = cfg.ReferrerPolicy
	}
	if cfg.CacheControl != "" {
		headers["Cache-Control"] = cfg.CacheControl
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.Func) handler.Func {
		return func(w http.ResponseWriter, r *http.Request) error {
			if cfg.Skip != nil && cfg.Skip(r) {
				return next(w, r)
			}

			for key, value := range headers {
				w.Header().Set(key, value)
			}
			return next(w, r)
		}
	}
}
