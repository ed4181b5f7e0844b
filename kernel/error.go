package kernel

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
)

func (rt *RequestRuntime) MakeError(err error) error {
	s := rt.Span
	s.RecordError(err)
	s.SetStatus(codes.Error, err.Error())
	rt.Error = err

	if rt.AppRuntime.Diagnostic.ErrorCounter != nil {
		rt.AppRuntime.Diagnostic.ErrorCounter.Add(rt.SpanContext, 1)
	}

	return err
}

func (rt *RequestRuntime) MakeErrorf(format string, args ...interface{}) error {
	return rt.MakeError(fmt.Errorf(format, args...))
}

// E aborts the request with the given status and a JSON body carrying
// the error text and the trace id, so a failing client response can be
// matched to its trace.
func (rt *RequestRuntime) E(code int, err error) *RequestRuntime {
	rt.RequestContext.AbortWithStatusJSON(code, &gin.H{
		"error":   rt.MakeError(err).Error(),
		"traceId": rt.Span.SpanContext().TraceID().String(),
	})
	return rt
}

func (rt *RequestRuntime) Ef(code int, format string, args ...interface{}) *RequestRuntime {
	return rt.E(code, fmt.Errorf(format, args...))
}
