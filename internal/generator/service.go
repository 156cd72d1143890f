package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"social-marketing-platform/internal/prompts"
	"social-marketing-platform/internal/telemetry"
	"social-marketing-platform/internal/validation"
	"social-marketing-platform/models"

	"golang.org/x/sync/errgroup"
)

// Provider is the external generation boundary: one image call, two
// structured calls and one free-text call. ai.GeminiClient implements
// it in production; tests plug in a fake.
type Provider interface {
	GenerateImage(ctx context.Context, prompt string, size models.ImageSize) ([]byte, error)
	GeneratePostContent(ctx context.Context, systemPrompt, userPrompt string) (*models.PostContent, error)
	GenerateTopics(ctx context.Context, systemPrompt, userPrompt string) ([]models.Topic, error)
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// TopicsCache caches topic lists per validated request. Lookups and
// stores are best effort; a nil cache disables caching.
type TopicsCache interface {
	Get(ctx context.Context, req *models.TopicsRequest) ([]models.Topic, bool)
	Set(ctx context.Context, req *models.TopicsRequest, topics []models.Topic)
}

// Service orchestrates validation, prompt building and provider calls.
// It holds no per-request state; every call is a function of its input
// and the provider's responses.
type Service struct {
	provider Provider
	cache    TopicsCache
	metrics  *telemetry.Metrics
}

// NewService wires the orchestrator. cache and metrics may be nil;
// both are best-effort infrastructure.
func NewService(provider Provider, cache TopicsCache, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, cache: cache, metrics: metrics}
}

// GeneratePost validates a raw /generate-post body and produces a full
// generated post. The three provider calls are independent of each
// other, so they fan out concurrently; the result is only assembled
// once all three succeed, and any failure discards the partial work.
func (s *Service) GeneratePost(ctx context.Context, raw []byte) (*models.GeneratedPost, error) {
	req, verr := validation.ValidateGenerationRequest(raw)
	if verr != nil {
		return nil, &InvalidInputError{Violations: verr.Violations}
	}

	bundle, ok := prompts.ForLanguage(req.Language)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	imagePrompt := bundle.ImagePrompt(req.Platform, req.Topic, req.Industry)

	var (
		image    []byte
		content  *models.PostContent
		insights string
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		data, err := s.provider.GenerateImage(egCtx, imagePrompt, req.Platform.ImageSize())
		if err != nil {
			return &ProviderError{Step: "image", Err: err}
		}
		image = data
		return nil
	})

	eg.Go(func() error {
		userPrompt := bundle.GeneratePrompt(req.Platform, req.Topic, req.Industry, req.Tone, req.Context)
		result, err := s.provider.GeneratePostContent(egCtx, bundle.SystemPrompt, userPrompt)
		if err != nil {
			return &ProviderError{Step: "content", Err: err}
		}
		content = result
		return nil
	})

	eg.Go(func() error {
		userPrompt := bundle.InsightsPrompt(req.Platform, req.Topic, req.Industry)
		text, err := s.provider.GenerateText(egCtx, bundle.SystemPrompt, userPrompt)
		if err != nil {
			return &ProviderError{Step: "insights", Err: err}
		}
		insights = text
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// The structured-output contract should guarantee the shape, but
	// provider conformance is not a language-level guarantee, so the
	// response is checked once more before it leaves this package.
	if err := normalizePostContent(content); err != nil {
		return nil, &ProviderError{Step: "content", Err: err}
	}

	if s.metrics != nil {
		s.metrics.RecordPostGenerated(string(req.Platform), string(req.Language), int64(len(image)))
	}

	return &models.GeneratedPost{
		Image:             base64.StdEncoding.EncodeToString(image),
		Content:           *content,
		MarketingInsights: insights,
		ImagePrompt:       imagePrompt,
	}, nil
}

// GenerateTopics validates a raw /generate-topics body and produces an
// ordered list of suggested topics for the requested month. The prompt
// asks for 8-10 topics; a conforming response with a count outside
// that range is passed through unchanged.
func (s *Service) GenerateTopics(ctx context.Context, raw []byte) ([]models.Topic, error) {
	req, verr := validation.ValidateTopicsRequest(raw)
	if verr != nil {
		return nil, &InvalidInputError{Violations: verr.Violations}
	}

	bundle, ok := prompts.ForLanguage(req.Language)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	if s.cache != nil {
		if topics, hit := s.cache.Get(ctx, req); hit {
			return topics, nil
		}
	}

	monthName, ok := prompts.MonthName(req.Language, req.Month)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	userPrompt := bundle.TopicsPrompt(monthName, req.Industry, req.Platform)
	topics, err := s.provider.GenerateTopics(ctx, bundle.SystemPrompt, userPrompt)
	if err != nil {
		return nil, &ProviderError{Step: "topics", Err: err}
	}

	if err := normalizeTopics(topics); err != nil {
		return nil, &ProviderError{Step: "topics", Err: err}
	}

	if s.cache != nil {
		s.cache.Set(ctx, req, topics)
	}

	if s.metrics != nil {
		s.metrics.RecordTopicsGenerated(string(req.Platform), string(req.Language), int64(len(topics)))
	}

	return topics, nil
}

// normalizePostContent re-validates a structured response and strips
// any leading '#' the provider put on hashtags despite instructions.
func normalizePostContent(content *models.PostContent) error {
	switch {
	case content == nil:
		return fmt.Errorf("empty post content")
	case content.Title == "":
		return fmt.Errorf("post content missing title")
	case content.Caption == "":
		return fmt.Errorf("post content missing caption")
	case content.BestTimeToPost == "":
		return fmt.Errorf("post content missing bestTimeToPost")
	case content.ContentStrategy == "":
		return fmt.Errorf("post content missing contentStrategy")
	case content.TargetAudience == "":
		return fmt.Errorf("post content missing targetAudience")
	case content.CallToAction == "":
		return fmt.Errorf("post content missing callToAction")
	case len(content.Hashtags) == 0:
		return fmt.Errorf("post content missing hashtags")
	}
	content.Hashtags = stripHashPrefix(content.Hashtags)
	if len(content.Hashtags) == 0 {
		return fmt.Errorf("post content hashtags are all empty")
	}
	return nil
}

func normalizeTopics(topics []models.Topic) error {
	if len(topics) == 0 {
		return fmt.Errorf("provider returned no topics")
	}
	for i := range topics {
		switch {
		case topics[i].Title == "":
			return fmt.Errorf("topic %d missing title", i)
		case topics[i].Description == "":
			return fmt.Errorf("topic %d missing description", i)
		case len(topics[i].BestDays) == 0:
			return fmt.Errorf("topic %d missing bestDays", i)
		case topics[i].ContentType == "":
			return fmt.Errorf("topic %d missing contentType", i)
		case len(topics[i].Hashtags) == 0:
			return fmt.Errorf("topic %d missing hashtags", i)
		}
		topics[i].Hashtags = stripHashPrefix(topics[i].Hashtags)
		if len(topics[i].Hashtags) == 0 {
			return fmt.Errorf("topic %d hashtags are all empty", i)
		}
	}
	return nil
}

func stripHashPrefix(tags []string) []string {
	out := tags[:0]
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
