package kernel

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// RequestRuntime carries the per-request state handlers need: the app
// runtime, the database handle and the request's root span.
type RequestRuntime struct {
	AppRuntime *AppRuntime
	DB         *gorm.DB

	RequestContext *gin.Context
	Span           trace.Span
	SpanContext    context.Context

	Error error
}

func InitRequest(art *AppRuntime, rctx *gin.Context) *RequestRuntime {
	ctx := rctx.Request.Context()
	span, ctx := art.Diagnostic.BeginTracing(ctx, rctx.FullPath())

	log.Info().
		Str("method", rctx.Request.Method).
		Str("uri", rctx.Request.RequestURI).
		Msg("initializing request")

	return &RequestRuntime{
		AppRuntime: art,
		DB:         art.DatabaseClient,

		RequestContext: rctx,
		Span:           span,
		SpanContext:    ctx,
	}
}

func (rt *RequestRuntime) End() {
	if rt.Span.IsRecording() {
		rt.Span.End()
	}
}
