package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"social-marketing-platform/models"

	"github.com/go-playground/validator/v10"
)

// Violation is one field-level reason a request body was rejected.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a request body, not
// just the first. It is returned as a value; this package never panics
// on bad input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Enum rules delegate to the canonical value lists in models so the
	// allowed sets are declared exactly once.
	v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return models.Platform(fl.Field().String()).Valid()
	})
	v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
		return models.Tone(fl.Field().String()).Valid()
	})
	v.RegisterValidation("industry", func(fl validator.FieldLevel) bool {
		return models.Industry(fl.Field().String()).Valid()
	})
	v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return models.Language(fl.Field().String()).Valid()
	})

	return v
}

// ValidateGenerationRequest parses and validates a raw /generate-post
// body. Unknown fields are ignored for forward compatibility. A missing
// language defaults before validation runs.
func ValidateGenerationRequest(raw []byte) (*models.GenerationRequest, *ValidationError) {
	var req models.GenerationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, bodyError(err)
	}
	if req.Language == "" {
		req.Language = models.DefaultLanguage
	}
	if verr := check(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}

// ValidateTopicsRequest parses and validates a raw /generate-topics body.
func ValidateTopicsRequest(raw []byte) (*models.TopicsRequest, *ValidationError) {
	var req models.TopicsRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, bodyError(err)
	}
	if req.Language == "" {
		req.Language = models.DefaultLanguage
	}
	if verr := check(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}

func check(req interface{}) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Violations: []Violation{{
			Field:   "body",
			Rule:    "struct",
			Message: err.Error(),
		}}}
	}

	violations := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
		})
	}
	return &ValidationError{Violations: violations}
}

func bodyError(err error) *ValidationError {
	return &ValidationError{Violations: []Violation{{
		Field:   "body",
		Rule:    "json",
		Message: "request body is not valid JSON: " + err.Error(),
	}}}
}
