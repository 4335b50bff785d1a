// Package tracing wraps the OpenTelemetry tracer calls shared by services.
//
//	ctx, span := tracer.Start(ctx, "cases.Solve")
//	defer tracing.End(span, &err)
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns the named tracer from the global provider. Without a
// configured provider spans are no-ops.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// End records *errp on the span, if any, and ends it.
func End(span trace.Span, errp *error) {
	if errp != nil && *errp != nil {
		span.RecordError(*errp)
		span.SetStatus(codes.Error, (*errp).Error())
	}
	span.End()
}
