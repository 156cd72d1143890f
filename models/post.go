package models

// PostContent is the structured post returned by the text provider.
// Field names are the wire contract shared with the provider-side
// response schema and the frontend.
type PostContent struct {
	Title           string   `json:"title"`
	Caption         string   `json:"caption"`
	Hashtags        []string `json:"hashtags"`
	BestTimeToPost  string   `json:"bestTimeToPost"`
	ContentStrategy string   `json:"contentStrategy"`
	TargetAudience  string   `json:"targetAudience"`
	CallToAction    string   `json:"callToAction"`
}

// Topic is a single suggested content topic for a given month.
type Topic struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	BestDays    []string `json:"bestDays"`
	Hashtags    []string `json:"hashtags"`
	ContentType string   `json:"contentType"`
}

// TopicList is the structured shape the provider returns topics in.
type TopicList struct {
	Topics []Topic `json:"topics"`
}

// GeneratedPost is the assembled result of one generation request:
// cover image (base64), structured content, free-text insights, and
// the image prompt that was actually sent, kept for traceability.
type GeneratedPost struct {
	Image             string      `json:"image"`
	Content           PostContent `json:"content"`
	MarketingInsights string      `json:"marketingInsights"`
	ImagePrompt       string      `json:"imagePrompt"`
}

// APIResponse is the envelope every generation endpoint replies with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
