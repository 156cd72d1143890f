package prompts

import (
	"fmt"

	"social-marketing-platform/models"
)

// Bundle is the per-language set of template functions producing the
// instruction strings sent to the AI provider. Every generated string
// restates the output language so the provider cannot drift.
type Bundle struct {
	SystemPrompt   string
	GeneratePrompt func(platform models.Platform, topic string, industry models.Industry, tone models.Tone, context string) string
	InsightsPrompt func(platform models.Platform, topic string, industry models.Industry) string
	ImagePrompt    func(platform models.Platform, topic string, industry models.Industry) string
	TopicsPrompt   func(monthName string, industry models.Industry, platform models.Platform) string
}

// ForLanguage returns the prompt bundle for lang. Unknown languages
// fail closed: there is no fallback bundle, because a fallback would
// issue prompts in a language the caller did not ask for.
func ForLanguage(lang models.Language) (Bundle, bool) {
	b, ok := bundles[lang]
	return b, ok
}

// MonthName converts a 1-based month (1 = January) to its localized
// display name. The underlying tables are 0-indexed; this is the only
// place that off-by-one is allowed to live.
func MonthName(lang models.Language, month int) (string, bool) {
	names, ok := monthNames[lang]
	if !ok || month < 1 || month > 12 {
		return "", false
	}
	return names[month-1], true
}

var bundles = map[models.Language]Bundle{
	models.LanguageEnglish: {
		SystemPrompt: "You are an expert social media marketing strategist and content creator. Always respond in English.",
		GeneratePrompt: func(platform models.Platform, topic string, industry models.Industry, tone models.Tone, context string) string {
			contextLine := ""
			if context != "" {
				contextLine = fmt.Sprintf("Additional context: %s\n", context)
			}
			return fmt.Sprintf(`Create a %s %s post about %s for %s industry.
%s
Requirements:
- Platform: %s
- Topic: %s
- Industry: %s
- Tone: %s
- Include relevant emojis
- Add 8-12 strategic hashtags
- Suggest optimal posting time based on platform and audience
- Provide content strategy insights
- Include strong call to action
- IMPORTANT: Respond entirely in English

Make it engaging, authentic, and optimized for %s algorithm.`,
				tone, platform, topic, industry, contextLine, platform, topic, industry, tone, platform)
		},
		InsightsPrompt: func(platform models.Platform, topic string, industry models.Industry) string {
			return fmt.Sprintf(`As an AI marketing expert, provide 3-4 strategic insights for this %s post about %s in %s. Include:
- Content performance predictions
- Audience engagement tips
- Cross-platform promotion ideas
- Metrics to track

IMPORTANT: Respond entirely in English.`, platform, topic, industry)
		},
		ImagePrompt: func(platform models.Platform, topic string, industry models.Industry) string {
			return fmt.Sprintf("Create a professional, eye-catching %s post image about %s for %s industry. Modern, clean design with vibrant colors. High quality, social media optimized.",
				platform, topic, industry)
		},
		TopicsPrompt: func(monthName string, industry models.Industry, platform models.Platform) string {
			return fmt.Sprintf(`Generate 8-10 best post topics for %s in %s industry for %s.
Consider seasonality, holidays, trends, and events characteristic for this month.
For each topic provide title, description, best days to post, hashtags, and content type.
IMPORTANT: Respond entirely in English.`, platform, industry, monthName)
		},
	},
	models.LanguagePolish: {
		SystemPrompt: "Jesteś ekspertem od strategii marketingu w mediach społecznościowych i tworzenia treści. Zawsze odpowiadaj w języku polskim.",
		GeneratePrompt: func(platform models.Platform, topic string, industry models.Industry, tone models.Tone, context string) string {
			contextLine := ""
			if context != "" {
				contextLine = fmt.Sprintf("Dodatkowy kontekst: %s\n", context)
			}
			return fmt.Sprintf(`Stwórz %s post na %s o temacie %s dla branży %s.
%s
Wymagania:
- Platforma: %s
- Temat: %s
- Branża: %s
- Ton: %s
- Dodaj odpowiednie emotikony
- Dodaj 8-12 strategicznych hashtagów
- Zasugeruj optymalny czas publikacji
- Podaj insights strategii contentu
- Dodaj silne call to action
- WAŻNE: Odpowiedz całkowicie w języku polskim

Zrób to angażujące, autentyczne i zoptymalizowane pod algorytm %s.`,
				tone, platform, topic, industry, contextLine, platform, topic, industry, tone, platform)
		},
		InsightsPrompt: func(platform models.Platform, topic string, industry models.Industry) string {
			return fmt.Sprintf(`Jako ekspert AI marketingu, podaj 3-4 strategiczne insights dla tego posta na %s o %s w branży %s. Uwzględnij:
- Przewidywania wydajności treści
- Wskazówki dotyczące zaangażowania odbiorców
- Pomysły na promocję cross-platform
- Metryki do śledzenia

WAŻNE: Odpowiedz całkowicie w języku polskim.`, platform, topic, industry)
		},
		ImagePrompt: func(platform models.Platform, topic string, industry models.Industry) string {
			return fmt.Sprintf("Stwórz profesjonalny, przyciągający wzrok obraz posta na %s o temacie %s dla branży %s. Nowoczesny, czysty design z żywymi kolorami. Wysoka jakość, zoptymalizowany pod social media.",
				platform, topic, industry)
		},
		TopicsPrompt: func(monthName string, industry models.Industry, platform models.Platform) string {
			return fmt.Sprintf(`Wygeneruj 8-10 najlepszych tematów postów na %s dla branży %s na miesiąc %s.
Uwzględnij sezonowość, święta, trendy i wydarzenia charakterystyczne dla tego miesiąca.
Dla każdego tematu podaj tytuł, opis, najlepsze dni do publikacji, hashtagi i typ contentu.
WAŻNE: Odpowiedz całkowicie w języku polskim.`, platform, industry, monthName)
		},
	},
}

// monthNames is index-aligned with the 1-based month field used by
// TopicsRequest: entry 0 is January.
var monthNames = map[models.Language][12]string{
	models.LanguageEnglish: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	models.LanguagePolish: {
		"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec",
		"Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień",
	},
}
