// Package telemetry traces battles with OpenTelemetry. Tracing is only turned on when an OTLP endpoint is configured
// through the standard OTEL_* environment variables.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"github.com/nathanieltooley/pallet/golurk"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "pallet"
	serviceVersion = "0.1.0"

	ENV_ENDPOINT = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Enabled reports whether an exporter endpoint is configured
func Enabled() bool {
	return os.Getenv(ENV_ENDPOINT) != ""
}

// Setup registers an OTLP HTTP tracer provider as the global provider.
// When no endpoint is configured nothing is registered and the returned shutdown does nothing.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("pallet/" + name)
}

func hostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

// BattleTracer records one span per battle input that changed the battle
type BattleTracer struct {
	tracer trace.Tracer
}

func NewBattleTracer(tracer trace.Tracer) BattleTracer {
	return BattleTracer{tracer: tracer}
}

// RecordInput records the input named action made against battle, and the error it returned if any.
// The span carries the turn the battle is on afterwards and the phase it ended up in.
func (t BattleTracer) RecordInput(ctx context.Context, battle *golurk.BattleState, action string, err error) {
	if t.tracer == nil {
		return
	}

	_, span := t.tracer.Start(ctx, "battle."+action,
		trace.WithAttributes(
			attribute.String("battle.id", battle.ID.String()),
			attribute.Bool("battle.wild", battle.Wild),
			attribute.Int("battle.turn", battle.Turn),
			attribute.String("battle.phase", battle.Phase()),
			attribute.Int("battle.outcome", battle.Outcome()),
			attribute.Int("battle.events", len(battle.LastTurn().Events)),
		),
	)
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
