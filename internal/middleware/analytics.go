package middleware

import (
	"net/http"
	"strings"

	"github.com/autohaus/dms_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are liveness endpoints that would only add noise.
var untrackedPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// AnalyticsMiddleware creates a Gin middleware handler that tracks
// successful authenticated API calls as PostHog events named after the
// matched route.
func AnalyticsMiddleware(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.IsEnabled() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Process the request first
		c.Next()

		// Failed requests are not tracked
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// No user ID (unauthenticated or unmatched route) means no event
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		analytics.Enqueue(userID, eventName, props)
	}
}

// routeEventName turns a matched route into an event name, e.g.
// "/api/v1/transactions/:id/payments" -> "api_v1_transactions_:id_payments".
func routeEventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/")
	return strings.ReplaceAll(name, "/", "_")
}
