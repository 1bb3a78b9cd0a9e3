package bridge

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
)

func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", headerRequestID},
		ExposeHeaders: []string{headerRequestID},
		MaxAge:        12 * time.Hour,
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		attrs := []any{
			slog.String("method", strings.ToUpper(c.Request.Method)),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String(keyRequestID, c.GetString(keyRequestID)),
		}
		if command := c.Param("command"); command != "" {
			attrs = append(attrs, slog.String("command", command))
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", attrs...)
		case status >= 400:
			log.Warn("HTTP request", attrs...)
		default:
			log.Info("HTTP request", attrs...)
		}
	}
}
