package otel

import (
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/hanifr/storefront/internal/common"
)

var Tracer = otel.Tracer(
	"storefront/product",
	trace.WithInstrumentationAttributes(semconv.ServiceName(common.AppStorefront)),
)
