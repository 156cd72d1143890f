package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter      metric.Int64Counter
	RequestDuration     metric.Float64Histogram
	TokensUsed          metric.Int64Counter
	CircuitBreakerState metric.Int64Counter
	PostsGenerated      metric.Int64Counter
	TopicsGenerated     metric.Int64Counter
	ImageBytes          metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("social-marketing-platform")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	tokensUsed, err := meter.Int64Counter(
		"gemini.tokens.used",
		metric.WithDescription("Total Gemini tokens used"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Counter(
		"circuit_breaker.state.changes",
		metric.WithDescription("Circuit breaker state changes"),
	)
	if err != nil {
		return nil, err
	}

	postsGenerated, err := meter.Int64Counter(
		"generation.posts.total",
		metric.WithDescription("Total posts generated"),
	)
	if err != nil {
		return nil, err
	}

	topicsGenerated, err := meter.Int64Counter(
		"generation.topics.total",
		metric.WithDescription("Total topic lists generated"),
	)
	if err != nil {
		return nil, err
	}

	imageBytes, err := meter.Int64Counter(
		"generation.image.bytes",
		metric.WithDescription("Total generated image bytes"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:      requestCounter,
		RequestDuration:     requestDuration,
		TokensUsed:          tokensUsed,
		CircuitBreakerState: circuitBreakerState,
		PostsGenerated:      postsGenerated,
		TopicsGenerated:     topicsGenerated,
		ImageBytes:          imageBytes,
	}, nil
}

// RecordTokensUsed records Gemini token usage
func (m *Metrics) RecordTokensUsed(tokens int64, model string) {
	attrs := []attribute.KeyValue{
		attribute.String("gemini.model", model),
		attribute.String("service", "gemini"),
	}

	m.TokensUsed.Add(context.Background(), tokens, metric.WithAttributes(attrs...))
}

// RecordCircuitBreakerState records circuit breaker state changes
func (m *Metrics) RecordCircuitBreakerState(service, state string) {
	attrs := []attribute.KeyValue{
		attribute.String("service", service),
		attribute.String("state", state),
	}

	m.CircuitBreakerState.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordRequest records HTTP request metrics
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordPostGenerated records one successful post generation
func (m *Metrics) RecordPostGenerated(platform, language string, imageBytes int64) {
	attrs := []attribute.KeyValue{
		attribute.String("generation.platform", platform),
		attribute.String("generation.language", language),
	}

	m.PostsGenerated.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.ImageBytes.Add(context.Background(), imageBytes, metric.WithAttributes(attrs...))
}

// RecordTopicsGenerated records one successful topics generation
func (m *Metrics) RecordTopicsGenerated(platform, language string, count int64) {
	attrs := []attribute.KeyValue{
		attribute.String("generation.platform", platform),
		attribute.String("generation.language", language),
		attribute.Int64("generation.topic_count", count),
	}

	m.TopicsGenerated.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
