package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

const (
	serviceName    = "maintenance-dashboard"
	serviceVersion = "1.0.0"
)

// Exporter exports report metrics to an OTEL Collector.
type Exporter struct {
	provider          *sdkmetric.MeterProvider
	meter             metric.Meter
	costTotal         metric.Float64Counter
	interventionsHist metric.Int64Histogram
	durationHist      metric.Float64Histogram
	alertsHist        metric.Int64Histogram
	forecastHist      metric.Float64Histogram
	costPerHourHist   metric.Float64Histogram
	reportsTotal      metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	costTotal, err := meter.Float64Counter(
		"maintenance_cost_total_eur",
		metric.WithDescription("Total completed maintenance cost"),
		metric.WithUnit("EUR"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cost counter: %w", err)
	}

	interventionsHist, err := meter.Int64Histogram(
		"maintenance_interventions",
		metric.WithDescription("Number of recorded interventions per report"),
		metric.WithUnit("{intervention}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating intervention histogram: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"maintenance_intervention_duration_minutes",
		metric.WithDescription("Average intervention duration per report"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	alertsHist, err := meter.Int64Histogram(
		"maintenance_active_alerts",
		metric.WithDescription("Active alerts by severity"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating alerts histogram: %w", err)
	}

	forecastHist, err := meter.Float64Histogram(
		"maintenance_budget_forecast_eur",
		metric.WithDescription("Projected maintenance spend for the next six months"),
		metric.WithUnit("EUR"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating forecast histogram: %w", err)
	}

	costPerHourHist, err := meter.Float64Histogram(
		"maintenance_cost_per_usage_hour_eur",
		metric.WithDescription("Completed cost per fleet usage hour"),
		metric.WithUnit("EUR"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cost per hour histogram: %w", err)
	}

	reportsTotal, err := meter.Int64Counter(
		"maintenance_reports_total",
		metric.WithDescription("Total number of generated reports"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reports counter: %w", err)
	}

	return &Exporter{
		provider:          provider,
		meter:             meter,
		costTotal:         costTotal,
		interventionsHist: interventionsHist,
		durationHist:      durationHist,
		alertsHist:        alertsHist,
		forecastHist:      forecastHist,
		costPerHourHist:   costPerHourHist,
		reportsTotal:      reportsTotal,
	}, nil
}

// ExportReportMetrics exports fleet totals after a report run.
func (e *Exporter) ExportReportMetrics(ctx context.Context, m *ports.ReportMetrics) error {
	e.costTotal.Add(ctx, m.TotalCost)
	e.interventionsHist.Record(ctx, m.InterventionCount)
	e.durationHist.Record(ctx, m.AverageDuration)

	e.alertsHist.Record(ctx, m.CriticalAlerts, metric.WithAttributes(attribute.String("severity", "critical")))
	e.alertsHist.Record(ctx, m.WarningAlerts, metric.WithAttributes(attribute.String("severity", "warning")))
	e.alertsHist.Record(ctx, m.InfoAlerts, metric.WithAttributes(attribute.String("severity", "info")))

	e.forecastHist.Record(ctx, m.BudgetForecast)
	e.costPerHourHist.Record(ctx, m.CostPerUsageHour)
	e.reportsTotal.Add(ctx, 1)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
