package prompts

import (
	"fmt"

	"social-marketing-platform/models"
)

// CheckBundles verifies at startup that every supported language has a
// complete bundle: a system prompt, all four template functions
// producing non-empty output, and a month table with twelve non-empty
// entries. main treats a failure as fatal so a half-wired language can
// never serve traffic.
func CheckBundles() error {
	for _, lang := range models.Languages {
		b, ok := bundles[lang]
		if !ok {
			return fmt.Errorf("language %q has no prompt bundle", lang)
		}
		if b.SystemPrompt == "" {
			return fmt.Errorf("language %q has an empty system prompt", lang)
		}
		if b.GeneratePrompt == nil || b.InsightsPrompt == nil || b.ImagePrompt == nil || b.TopicsPrompt == nil {
			return fmt.Errorf("language %q has a missing template function", lang)
		}

		// Probe each template with representative input
		platform := models.PlatformInstagram
		industry := models.IndustryTechnology
		if b.GeneratePrompt(platform, "probe", industry, models.ToneProfessional, "") == "" {
			return fmt.Errorf("language %q generate template produced empty output", lang)
		}
		if b.InsightsPrompt(platform, "probe", industry) == "" {
			return fmt.Errorf("language %q insights template produced empty output", lang)
		}
		if b.ImagePrompt(platform, "probe", industry) == "" {
			return fmt.Errorf("language %q image template produced empty output", lang)
		}
		if b.TopicsPrompt("January", industry, platform) == "" {
			return fmt.Errorf("language %q topics template produced empty output", lang)
		}

		names, ok := monthNames[lang]
		if !ok {
			return fmt.Errorf("language %q has no month name table", lang)
		}
		for i, name := range names {
			if name == "" {
				return fmt.Errorf("language %q month table entry %d is empty", lang, i)
			}
		}
	}
	return nil
}
