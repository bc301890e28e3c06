// Package middleware holds the HTTP middleware shared by every route:
// per-request trace IDs with a context logger, and CORS.
package middleware
