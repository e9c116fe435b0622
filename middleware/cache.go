package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/services"
)

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (cw *captureWriter) Write(data []byte) (int, error) {
	cw.body.Write(data)
	return cw.ResponseWriter.Write(data)
}

func (cw *captureWriter) WriteString(data string) (int, error) {
	cw.body.WriteString(data)
	return cw.ResponseWriter.WriteString(data)
}

// CachePage serves GET responses from the page cache, keyed by the full
// request target. Only successful renders are stored; staleness up to the
// cache TTL is accepted.
func CachePage(cache *services.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if page, ok := cache.Get(key); ok {
			c.Data(http.StatusOK, page.ContentType, page.Body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			cache.Set(key, &services.CachedPage{
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
		}
	}
}
