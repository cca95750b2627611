package usecase

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("propchart-api/internal/usecase")

// startUsecaseSpan opens a child span; without an active trace the context
// is returned as is with a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func sportAttr(sp sport.Sport) attribute.KeyValue {
	return attribute.String("sport", sp.Key)
}
