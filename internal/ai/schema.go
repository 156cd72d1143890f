package ai

import (
	genai "github.com/google/generative-ai-go/genai"
)

// Response schemas handed to Gemini as structured-output constraints.
// Property names and required-ness mirror the json tags on
// models.PostContent and models.TopicList; the provider either
// conforms to these shapes or the call fails.

var postContentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "Catchy title for the post",
		},
		"caption": {
			Type:        genai.TypeString,
			Description: "Engaging caption with emojis and hashtags",
		},
		"hashtags": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Relevant hashtags without # symbol",
		},
		"bestTimeToPost": {
			Type:        genai.TypeString,
			Description: "Recommended time to post (e.g., \"Tuesday 6-8 PM\")",
		},
		"contentStrategy": {
			Type:        genai.TypeString,
			Description: "Brief strategy note for this type of content",
		},
		"targetAudience": {
			Type:        genai.TypeString,
			Description: "Who this post targets",
		},
		"callToAction": {
			Type:        genai.TypeString,
			Description: "Clear call to action for engagement",
		},
	},
	Required: []string{
		"title", "caption", "hashtags", "bestTimeToPost",
		"contentStrategy", "targetAudience", "callToAction",
	},
}

var topicListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topics": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"bestDays": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
					"hashtags": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
					"contentType": {Type: genai.TypeString},
				},
				Required: []string{"title", "description", "bestDays", "hashtags", "contentType"},
			},
		},
	},
	Required: []string{"topics"},
}
