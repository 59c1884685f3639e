package middleware

import (
	"io"
	"shiftwave/internal/core"
	"shiftwave/internal/telemetry"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

type Compress struct {
	trace *telemetry.Trace
}

func NewCompress(trace *telemetry.Trace) *Compress {
	return &Compress{trace: trace}
}

type compressWriter struct {
	gin.ResponseWriter
	compressor io.WriteCloser
}

func (w *compressWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.compressor.Write([]byte(s))
}

// CompressHandler 依 Accept-Encoding 壓縮回應，偏好 brotli，其次 gzip
func (m *Compress) CompressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if strings.HasPrefix(endpoint, "/swagger") ||
			strings.HasPrefix(endpoint, "/metrics") ||
			strings.HasPrefix(endpoint, "/version") ||
			strings.HasPrefix(endpoint, "/health-check") {
			c.Next()
			return
		}

		acceptEncoding := c.GetHeader("Accept-Encoding")
		var encoding string
		switch {
		case strings.Contains(acceptEncoding, "br"):
			encoding = "br"
		case strings.Contains(acceptEncoding, "gzip"):
			encoding = "gzip"
		default:
			c.Next()
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCompressMiddleware))
		defer end(nil)

		type compressMeta struct {
			Encoding string `trace:"http.response.encoding"`
		}
		m.trace.ApplyTraceAttributes(span, compressMeta{Encoding: encoding})

		var compressor io.WriteCloser
		switch encoding {
		case "br":
			compressor = brotli.NewWriter(c.Writer)
		default:
			compressor = gzip.NewWriter(c.Writer)
		}

		c.Header("Content-Encoding", encoding)
		c.Header("Vary", "Accept-Encoding")
		originalWriter := c.Writer
		c.Writer = &compressWriter{ResponseWriter: originalWriter, compressor: compressor}

		defer func() {
			_ = compressor.Close()
			c.Writer = originalWriter
		}()

		c.Next()
	}
}
