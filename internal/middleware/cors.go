package middleware

import (
	"strings"
	"time"

	"github.com/yutsuc/fsnd-trivia-api/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS applies the configured cross-origin policy to requests under prefix.
func CORS(prefix string, cfg config.CORS) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return
		}
		handler(c)
	}
}
