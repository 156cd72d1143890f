package models

// Platform is a social network a post can target.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms is the canonical list of supported platforms. Validation
// and prompt building both read from this list, never their own copy.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformTikTok,
}

func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// ImageSize is the aspect ratio requested from the image provider.
type ImageSize string

const (
	ImageSizeSquare ImageSize = "square"
	ImageSizeTall   ImageSize = "tall"
)

// ImageSize maps a platform to its image aspect ratio. The switch is
// total over the Platform list; validation rejects anything else
// before this is ever called.
func (p Platform) ImageSize() ImageSize {
	switch p {
	case PlatformInstagram:
		return ImageSizeSquare
	default:
		return ImageSizeTall
	}
}

// Tone is the voice a generated post is written in.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneInspiring    Tone = "inspiring"
	ToneHumorous     Tone = "humorous"
	ToneEducational  Tone = "educational"
)

var Tones = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneFriendly,
	ToneInspiring,
	ToneHumorous,
	ToneEducational,
}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// Industry is the business sector a post is written for.
type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryMarketing  Industry = "marketing"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryEducation  Industry = "education"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryFitness    Industry = "fitness"
	IndustryFood       Industry = "food"
	IndustryTravel     Industry = "travel"
	IndustryFashion    Industry = "fashion"
)

var Industries = []Industry{
	IndustryTechnology,
	IndustryMarketing,
	IndustryFinance,
	IndustryHealthcare,
	IndustryEducation,
	IndustryEcommerce,
	IndustryFitness,
	IndustryFood,
	IndustryTravel,
	IndustryFashion,
}

func (i Industry) Valid() bool {
	for _, v := range Industries {
		if i == v {
			return true
		}
	}
	return false
}

// Language selects the prompt bundle and the language all generated
// output must be written in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguagePolish  Language = "pl"
)

// DefaultLanguage is applied when a request omits the language field.
const DefaultLanguage = LanguageEnglish

var Languages = []Language{LanguageEnglish, LanguagePolish}

func (l Language) Valid() bool {
	for _, v := range Languages {
		if l == v {
			return true
		}
	}
	return false
}

// GenerationRequest is a validated request for a single generated post.
type GenerationRequest struct {
	Topic    string   `json:"topic" validate:"required,max=200"`
	Platform Platform `json:"platform" validate:"required,platform"`
	Tone     Tone     `json:"tone" validate:"required,tone"`
	Industry Industry `json:"industry" validate:"required,industry"`
	Language Language `json:"language" validate:"required,language"`
	Context  string   `json:"context,omitempty" validate:"max=500"`
}

// TopicsRequest is a validated request for a month of content topics.
type TopicsRequest struct {
	Month    int      `json:"month" validate:"required,min=1,max=12"`
	Industry Industry `json:"industry" validate:"required,industry"`
	Platform Platform `json:"platform" validate:"required,platform"`
	Language Language `json:"language" validate:"required,language"`
}
