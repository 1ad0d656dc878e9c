package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helianthus/internal/core/ports/output"
)

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse serves successful GET responses from the cache, keyed by
// path and raw query. A nil cache disables the middleware.
func CacheResponse(cache ports.Cache, ttl time.Duration) gin.HandlerFunc {
	if cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		// Re-encoding sorts the parameters, so ?a=1&b=2 and ?b=2&a=1
		// share one entry.
		key := c.Request.URL.Path
		if query := c.Request.URL.Query().Encode(); query != "" {
			key += "?" + query
		}

		if body, ok := cache.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = cw

		c.Next()

		if cw.Status() == http.StatusOK {
			cache.Set(c.Request.Context(), key, cw.body.Bytes(), ttl)
		}
	}
}
