package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/hanifr/storefront/internal/common"
)

var Tracer = otel.Tracer(common.AppStorefront)
