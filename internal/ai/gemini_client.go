package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"social-marketing-platform/internal/telemetry"
	"social-marketing-platform/models"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	genai "github.com/google/generative-ai-go/genai"
)

// GeminiClient wraps the Gemini API with a circuit breaker, an RPM
// rate limiter and local token accounting. One instance is shared by
// all requests; it is safe for concurrent use.
type GeminiClient struct {
	apiKey       string
	breaker      *gobreaker.CircuitBreaker
	rateLimiter  *rate.Limiter
	tokenCounter *TokenCounter
	client       *genai.Client
	metrics      *telemetry.Metrics
	tier         string
	textModel    string
	imageModel   string
}

type TokenCounter struct {
	mu              sync.Mutex
	limits          RateLimits
	minuteTokens    int
	dailyTokens     int
	minuteRequests  int
	dailyRequests   int
	lastMinuteReset time.Time
	lastDayReset    time.Time
}

type RateLimits struct {
	RPM int // Requests per minute
	TPM int // Tokens per minute
	RPD int // Requests per day
}

// NewGeminiClient builds the shared client. metrics may be nil; token
// usage and breaker state changes are then only tracked locally.
func NewGeminiClient(apiKey, tier, textModel, imageModel string, metrics *telemetry.Metrics) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	limits := getRateLimits(tier)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GeminiAPI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("Circuit breaker %s: %s -> %s", name, from, to)
			if metrics != nil {
				metrics.RecordCircuitBreakerState("gemini", to.String())
			}
			if to == gobreaker.StateOpen {
				alertOps("Gemini API circuit breaker opened - service degraded")
			}
		},
	})

	// RPM limit with some buffer
	burst := limits.RPM / 10
	if burst < 1 {
		burst = 1
	}
	rateLimiter := rate.NewLimiter(rate.Limit(float64(limits.RPM)*0.9/60.0), burst)

	return &GeminiClient{
		apiKey:       apiKey,
		breaker:      breaker,
		rateLimiter:  rateLimiter,
		tokenCounter: &TokenCounter{limits: limits},
		client:       client,
		metrics:      metrics,
		tier:         tier,
		textModel:    textModel,
		imageModel:   imageModel,
	}, nil
}

func getRateLimits(tier string) RateLimits {
	switch tier {
	case "free":
		return RateLimits{RPM: 10, TPM: 250000, RPD: 250}
	case "tier1":
		return RateLimits{RPM: 1000, TPM: 1000000, RPD: 10000}
	case "tier2":
		return RateLimits{RPM: 2000, TPM: 4000000, RPD: 50000}
	default:
		return RateLimits{RPM: 10, TPM: 250000, RPD: 250}
	}
}

// GenerateText runs a free-text generation call.
func (gc *GeminiClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	tracer := otel.Tracer("gemini-client")
	ctx, span := tracer.Start(ctx, "gemini.generate_text")
	defer span.End()

	resp, err := gc.generate(ctx, userPrompt, func() *genai.GenerativeModel {
		return gc.newTextModel(systemPrompt)
	})
	if err != nil {
		span.SetAttributes(attribute.Bool("gemini.error", true))
		return "", err
	}

	text := collectText(resp)
	if text == "" {
		span.SetAttributes(attribute.Bool("gemini.empty_response", true))
		return "", errors.New("gemini returned no text content")
	}

	span.SetAttributes(attribute.Bool("gemini.success", true))
	return text, nil
}

// GeneratePostContent runs a structured generation call constrained to
// the post content schema and decodes the result.
func (gc *GeminiClient) GeneratePostContent(ctx context.Context, systemPrompt, userPrompt string) (*models.PostContent, error) {
	var content models.PostContent
	if err := gc.generateStructured(ctx, systemPrompt, userPrompt, postContentSchema, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// GenerateTopics runs a structured generation call constrained to the
// topic list schema and decodes the result.
func (gc *GeminiClient) GenerateTopics(ctx context.Context, systemPrompt, userPrompt string) ([]models.Topic, error) {
	var list models.TopicList
	if err := gc.generateStructured(ctx, systemPrompt, userPrompt, topicListSchema, &list); err != nil {
		return nil, err
	}
	return list.Topics, nil
}

func (gc *GeminiClient) generateStructured(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema, out interface{}) error {
	tracer := otel.Tracer("gemini-client")
	ctx, span := tracer.Start(ctx, "gemini.generate_structured")
	defer span.End()

	resp, err := gc.generate(ctx, userPrompt, func() *genai.GenerativeModel {
		model := gc.newTextModel(systemPrompt)
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = schema
		return model
	})
	if err != nil {
		span.SetAttributes(attribute.Bool("gemini.error", true))
		return err
	}

	raw := collectText(resp)
	if raw == "" {
		span.SetAttributes(attribute.Bool("gemini.empty_response", true))
		return errors.New("gemini returned no structured content")
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		span.SetAttributes(attribute.Bool("gemini.decode_error", true))
		return fmt.Errorf("structured response does not match schema: %w", err)
	}

	span.SetAttributes(attribute.Bool("gemini.success", true))
	return nil
}

// GenerateImage requests a single cover image and returns the raw
// image bytes. The aspect ratio is expressed as part of the prompt;
// the image model has no separate size parameter.
func (gc *GeminiClient) GenerateImage(ctx context.Context, prompt string, size models.ImageSize) ([]byte, error) {
	tracer := otel.Tracer("gemini-client")
	ctx, span := tracer.Start(ctx, "gemini.generate_image")
	defer span.End()

	span.SetAttributes(
		attribute.String("gemini.model", gc.imageModel),
		attribute.String("gemini.image_size", string(size)),
	)

	fullPrompt := prompt + " " + aspectInstruction(size)

	estimatedTokens := estimateTokens(fullPrompt)
	if !gc.tokenCounter.CanConsume(estimatedTokens, 1) {
		span.SetAttributes(attribute.Bool("gemini.rate_limited", true))
		return nil, errors.New("rate limit exceeded: wait before retry")
	}

	if err := gc.rateLimiter.Wait(ctx); err != nil {
		span.SetAttributes(attribute.Bool("gemini.rate_limited", true))
		return nil, err
	}

	result, err := gc.breaker.Execute(func() (interface{}, error) {
		model := gc.client.GenerativeModel(gc.imageModel)
		resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
		if err != nil {
			return nil, err
		}
		gc.recordTokens(extractTokenUsage(resp), gc.imageModel)

		data := collectImage(resp)
		if len(data) == 0 {
			return nil, errors.New("gemini returned no image data")
		}
		return data, nil
	})
	if err != nil {
		span.SetAttributes(attribute.Bool("gemini.error", true))
		if err == gobreaker.ErrOpenState {
			return nil, errors.New("gemini api unavailable: circuit breaker open")
		}
		return nil, err
	}

	data := result.([]byte)
	span.SetAttributes(
		attribute.Bool("gemini.success", true),
		attribute.Int("gemini.image_bytes", len(data)),
	)
	return data, nil
}

// generate is the shared text call path: token accounting, rate
// limiting and circuit breaking around one GenerateContent round trip.
func (gc *GeminiClient) generate(ctx context.Context, userPrompt string, buildModel func() *genai.GenerativeModel) (*genai.GenerateContentResponse, error) {
	estimatedTokens := estimateTokens(userPrompt)
	if !gc.tokenCounter.CanConsume(estimatedTokens, 1) {
		return nil, errors.New("rate limit exceeded: wait before retry")
	}

	if err := gc.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := gc.breaker.Execute(func() (interface{}, error) {
		model := buildModel()
		resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
		if err != nil {
			return nil, err
		}
		gc.recordTokens(extractTokenUsage(resp), gc.textModel)
		return resp, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, errors.New("gemini api unavailable: circuit breaker open")
		}
		return nil, err
	}

	return result.(*genai.GenerateContentResponse), nil
}

// recordTokens feeds actual usage into both the local TokenCounter and
// the exported metric.
func (gc *GeminiClient) recordTokens(tokens int, model string) {
	gc.tokenCounter.RecordUsage(tokens, 1)
	if gc.metrics != nil {
		gc.metrics.RecordTokensUsed(int64(tokens), model)
	}
}

func (gc *GeminiClient) newTextModel(systemPrompt string) *genai.GenerativeModel {
	model := gc.client.GenerativeModel(gc.textModel)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(2048)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}
	return model
}

func aspectInstruction(size models.ImageSize) string {
	if size == models.ImageSizeSquare {
		return "Use a square 1:1 composition."
	}
	return "Use a vertical 9:16 portrait composition."
}

func (tc *TokenCounter) CanConsume(tokens, requests int) bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	now := time.Now()

	// Reset counters if time windows expired
	if now.Sub(tc.lastMinuteReset) >= time.Minute {
		tc.minuteTokens = 0
		tc.minuteRequests = 0
		tc.lastMinuteReset = now
	}

	if now.Sub(tc.lastDayReset) >= 24*time.Hour {
		tc.dailyTokens = 0
		tc.dailyRequests = 0
		tc.lastDayReset = now
	}

	if tc.minuteRequests+requests > tc.limits.RPM {
		return false
	}
	if tc.minuteTokens+tokens > tc.limits.TPM {
		return false
	}
	if tc.dailyRequests+requests > tc.limits.RPD {
		return false
	}

	return true
}

func (tc *TokenCounter) RecordUsage(tokens, requests int) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.minuteTokens += tokens
	tc.minuteRequests += requests
	tc.dailyTokens += tokens
	tc.dailyRequests += requests
}

// Rough estimation: 1 token ≈ 4 characters
func estimateTokens(prompt string) int {
	estimated := len(prompt) / 4
	if estimated < 1 {
		estimated = 1
	}
	return estimated
}

// Extract token usage from Gemini response
func extractTokenUsage(resp *genai.GenerateContentResponse) int {
	if resp.UsageMetadata != nil {
		return int(resp.UsageMetadata.TotalTokenCount)
	}
	return estimateTokens(collectText(resp))
}

// collectText concatenates the text parts of all candidates.
func collectText(resp *genai.GenerateContentResponse) string {
	total := ""
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				total += string(text)
			}
		}
	}
	return total
}

// collectImage returns the first inline image blob in the response.
func collectImage(resp *genai.GenerateContentResponse) []byte {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return blob.Data
			}
		}
	}
	return nil
}

// Alert operations team
func alertOps(message string) {
	log.Printf("🚨 ALERT: %s", message)
	// In production, send to monitoring service (PagerDuty, Slack, etc.)
}

// Close the client
func (gc *GeminiClient) Close() error {
	if gc.client != nil {
		return gc.client.Close()
	}
	return nil
}
