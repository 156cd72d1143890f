package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-marketing-platform/internal/generator"
	"social-marketing-platform/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type stubProvider struct {
	failContent bool
	imageSizes  []models.ImageSize
}

func (s *stubProvider) GenerateImage(ctx context.Context, prompt string, size models.ImageSize) ([]byte, error) {
	s.imageSizes = append(s.imageSizes, size)
	return []byte("img"), nil
}

func (s *stubProvider) GeneratePostContent(ctx context.Context, systemPrompt, userPrompt string) (*models.PostContent, error) {
	if s.failContent {
		return nil, errors.New("provider down")
	}
	return &models.PostContent{
		Title:           "Title",
		Caption:         "Caption",
		Hashtags:        []string{"launch", "tech"},
		BestTimeToPost:  "Tuesday 6-8 PM",
		ContentStrategy: "Strategy",
		TargetAudience:  "Audience",
		CallToAction:    "CTA",
	}, nil
}

func (s *stubProvider) GenerateTopics(ctx context.Context, systemPrompt, userPrompt string) ([]models.Topic, error) {
	topics := make([]models.Topic, 9)
	for i := range topics {
		topics[i] = models.Topic{
			Title:       "Topic",
			Description: "Desc",
			BestDays:    []string{"Mon"},
			Hashtags:    []string{"tag"},
			ContentType: "post",
		}
	}
	return topics, nil
}

func (s *stubProvider) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "insights", nil
}

func newTestRouter(provider generator.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupGenerateRoutes(router, generator.NewService(provider, nil, nil))
	return router
}

func doPost(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGeneratePostEndpoint(t *testing.T) {
	provider := &stubProvider{}
	router := newTestRouter(provider)

	w := doPost(t, router, "/generate-post",
		`{"topic":"New product launch","platform":"instagram","tone":"professional","industry":"technology","language":"en"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool                 `json:"success"`
		Data    models.GeneratedPost `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if !resp.Success {
		t.Error("success = false on a good request")
	}
	if len(provider.imageSizes) != 1 || provider.imageSizes[0] != models.ImageSizeSquare {
		t.Errorf("instagram request must issue one square image call, got %v", provider.imageSizes)
	}
	if len(resp.Data.Content.Hashtags) == 0 {
		t.Error("hashtags missing from response")
	}
	for _, tag := range resp.Data.Content.Hashtags {
		if strings.HasPrefix(tag, "#") {
			t.Errorf("hashtag %q has a leading #", tag)
		}
	}
}

func TestGeneratePostEndpointValidationFailure(t *testing.T) {
	provider := &stubProvider{}
	router := newTestRouter(provider)

	w := doPost(t, router, "/generate-post",
		`{"topic":"","platform":"instagram","tone":"professional","industry":"technology"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("expected {success:false, error:...}, got %+v", resp)
	}
	if len(provider.imageSizes) != 0 {
		t.Error("provider called despite validation failure")
	}
}

func TestGeneratePostEndpointProviderFailure(t *testing.T) {
	router := newTestRouter(&stubProvider{failContent: true})

	w := doPost(t, router, "/generate-post",
		`{"topic":"t","platform":"tiktok","tone":"casual","industry":"food"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if resp.Success {
		t.Error("success = true on provider failure")
	}
	// generic message only, no provider detail
	if strings.Contains(resp.Error, "provider down") {
		t.Errorf("provider detail leaked to caller: %q", resp.Error)
	}
}

func TestGenerateTopicsEndpoint(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	w := doPost(t, router, "/generate-topics",
		`{"month":5,"industry":"fitness","platform":"tiktok","language":"pl"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    []models.Topic `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if !resp.Success {
		t.Error("success = false on a good request")
	}
	if len(resp.Data) < 8 || len(resp.Data) > 10 {
		t.Errorf("topic count = %d, want within the requested 8-10", len(resp.Data))
	}
}

func TestGenerateTopicsEndpointMonthOutOfRange(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	w := doPost(t, router, "/generate-topics",
		`{"month":0,"industry":"fitness","platform":"tiktok"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUnsupportedLanguageMapsToBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/generate-post", nil)

	respondGenerationError(c, generator.ErrUnsupportedLanguage, "Failed to generate post")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if resp.Success {
		t.Error("success = true on an unsupported language")
	}
	if resp.Error != "Unsupported language" {
		t.Errorf("error = %q, want %q", resp.Error, "Unsupported language")
	}
}

func TestPreflightEndsAtCORSLayer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	downstream := 0
	router.Use(func(c *gin.Context) {
		downstream++
		c.Next()
	})
	SetupGenerateRoutes(router, generator.NewService(&stubProvider{}, nil, nil))

	req := httptest.NewRequest(http.MethodOptions, "/generate-post", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if downstream != 0 {
		t.Errorf("preflight reached middleware behind CORS %d times", downstream)
	}
}
