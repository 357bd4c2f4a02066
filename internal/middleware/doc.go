// Package middleware provides HTTP middleware for the catalog service.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: structured access log via slog
//   - Recovery: turns panics into a 500 problem response
//   - CORS: origin allow-list and preflight handling
//   - RateLimit: per-client token buckets (golang.org/x/time/rate)
//   - Compress: gzip responses for clients that accept it
//
// Compose them with Chain; the first middleware is outermost:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Rate Limiting
//
// Clients are keyed by the first X-Forwarded-For hop, falling back to the
// remote host. Denied requests get 429 problem details with Retry-After.
//
//	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RPS: 10, Burst: 20})
//	defer limiter.Stop()
package middleware
