package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var localOrigins = []string{
	"http://localhost:",
	"http://127.0.0.1:",
}

// OriginAllowed reports whether a browser origin may call the API: any
// origin for "*", an exact match against the configured list, or a local
// development origin when the list is empty.
func OriginAllowed(origins []string) func(origin string) bool {
	if len(origins) == 1 && origins[0] == "*" {
		return func(string) bool { return true }
	}
	if len(origins) > 0 {
		allowed := make(map[string]struct{}, len(origins))
		for _, o := range origins {
			allowed[strings.TrimSpace(o)] = struct{}{}
		}
		return func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		}
	}
	return func(origin string) bool {
		for _, prefix := range localOrigins {
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		}
		return false
	}
}

// CORSMiddleware allows the configured origins, or any local development
// origin when none are configured.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOriginFunc = OriginAllowed(origins)
	}

	return cors.New(config)
}
