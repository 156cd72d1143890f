package ai

import (
	"testing"

	"social-marketing-platform/internal/telemetry"
)

func TestRecordTokensFeedsCounterAndMetric(t *testing.T) {
	metrics, err := telemetry.InitMetrics()
	if err != nil {
		t.Fatalf("InitMetrics: %v", err)
	}

	gc := &GeminiClient{
		tokenCounter: &TokenCounter{limits: getRateLimits("free")},
		metrics:      metrics,
		textModel:    "test-model",
	}

	gc.recordTokens(42, gc.textModel)
	gc.recordTokens(8, gc.textModel)

	gc.tokenCounter.mu.Lock()
	defer gc.tokenCounter.mu.Unlock()
	if gc.tokenCounter.minuteTokens != 50 {
		t.Errorf("minuteTokens = %d, want 50", gc.tokenCounter.minuteTokens)
	}
	if gc.tokenCounter.minuteRequests != 2 {
		t.Errorf("minuteRequests = %d, want 2", gc.tokenCounter.minuteRequests)
	}
	if gc.tokenCounter.dailyTokens != 50 {
		t.Errorf("dailyTokens = %d, want 50", gc.tokenCounter.dailyTokens)
	}
}

func TestRecordTokensWithoutMetrics(t *testing.T) {
	gc := &GeminiClient{
		tokenCounter: &TokenCounter{limits: getRateLimits("free")},
	}

	// Must not panic when no metrics sink is configured
	gc.recordTokens(10, "test-model")

	gc.tokenCounter.mu.Lock()
	defer gc.tokenCounter.mu.Unlock()
	if gc.tokenCounter.minuteTokens != 10 {
		t.Errorf("minuteTokens = %d, want 10", gc.tokenCounter.minuteTokens)
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := estimateTokens(""); got != 1 {
		t.Errorf("estimateTokens(empty) = %d, want 1", got)
	}
	if got := estimateTokens("abcdefgh"); got != 2 {
		t.Errorf("estimateTokens(8 chars) = %d, want 2", got)
	}
}
