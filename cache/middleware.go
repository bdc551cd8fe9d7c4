package cache

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware serves public GET pages from the rendered-page cache and
// captures cache misses on the way out. Admin and operational routes
// are never cached; writes go around this entirely.
func Middleware(pages *PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || !cacheablePath(c.Request.URL.Path) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if cached, found := pages.Get(path); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, htmlContentType, []byte(cached))
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK &&
			c.Writer.Header().Get("Content-Type") == htmlContentType {
			pages.Set(path, writer.body.String())
		}
	}
}

func cacheablePath(path string) bool {
	if strings.HasPrefix(path, "/admin") ||
		strings.HasPrefix(path, "/metrics") ||
		strings.HasPrefix(path, "/login") ||
		strings.HasPrefix(path, "/public") {
		return false
	}
	return true
}
