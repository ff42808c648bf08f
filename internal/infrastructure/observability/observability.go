package observability

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"capper-server/internal/config"
)

// Shutdown releases telemetry resources. It is safe to call on the no-op
// setup returned when tracing is disabled.
type Shutdown func(ctx context.Context) error

var noopShutdown Shutdown = func(context.Context) error { return nil }

// Setup installs the OTLP trace pipeline when tracing is enabled and an
// endpoint is configured. Metrics are served separately over /metrics;
// this only covers traces.
func Setup(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Shutdown, error) {
	if !cfg.EnableTracing || cfg.OTLPEndpoint == "" {
		log.Info().Msg("tracing disabled")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("tracing enabled")
	return provider.Shutdown, nil
}
