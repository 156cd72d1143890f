package generator

import (
	"errors"
	"fmt"

	"social-marketing-platform/internal/validation"
)

// ErrUnsupportedLanguage is returned when no prompt bundle exists for
// the requested language. The lookup fails closed; there is no default
// bundle.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// InvalidInputError carries the full violation list for a rejected
// request. No provider call is made once this is returned.
type InvalidInputError struct {
	Violations []validation.Violation
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %d violation(s)", len(e.Violations))
}

// ProviderError wraps any failure surfaced by an external generation
// call. Handlers map it to a generic message; the wrapped detail is
// for server-side logs only.
type ProviderError struct {
	Step string // image, content, insights, topics
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s call failed: %v", e.Step, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
