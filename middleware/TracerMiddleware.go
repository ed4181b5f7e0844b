package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nutanixdev/payments-api/kernel"
)

// TracerMiddleware opens the request's root span, records the basic
// request attributes and parks the RequestRuntime in the gin context
// for the handlers.
func TracerMiddleware(art *kernel.AppRuntime) gin.HandlerFunc {
	return func(c *gin.Context) {
		rt := kernel.InitRequest(art, c)

		rt.Span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.host", c.Request.Host),
		)

		if art.Diagnostic.RequestCounter != nil {
			art.Diagnostic.RequestCounter.Add(rt.SpanContext, 1,
				metric.WithAttributes(attribute.String("http.method", c.Request.Method)),
			)
		}

		c.Set("rt", rt)

		c.Next()

		rt.End()
	}
}
