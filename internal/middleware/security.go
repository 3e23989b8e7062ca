package middleware

import (
	"github.com/labstack/echo/v4"
)

// DashboardPath is the route of the HTML dashboard
const DashboardPath = "/"

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			// The dashboard loads Chart.js from jsDelivr and feeds it from an
			// inline script.
			if c.Path() == DashboardPath {
				h.Set("Content-Security-Policy",
					"default-src 'self'; "+
						"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; "+
						"style-src 'self' 'unsafe-inline'; "+
						"img-src 'self' data:; "+
						"form-action 'self'")
			} else {
				h.Set("Content-Security-Policy", "default-src 'self'")
			}

			// Balances must never be served from a cache.
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}
