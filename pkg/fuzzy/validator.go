package fuzzy

import "strings"

// Validator accepts tokens that are dictionary words and fixes the rest by
// fuzzy correction. Tokens with no plausible correction fix to emptiness,
// which removes them from the field.
type Validator struct {
	matcher *Matcher
}

// NewValidator builds a validator over a word -> frequency dictionary.
func NewValidator(words map[string]int) *Validator {
	return &Validator{matcher: NewMatcher(words)}
}

// IsValid reports whether token is a known word with no surrounding space.
func (v *Validator) IsValid(token string) bool {
	trimmed := strings.TrimSpace(token)
	return trimmed == token && trimmed != "" && v.matcher.Contains(trimmed)
}

// FixText trims the token and replaces it with its closest dictionary
// word. Unrecognizable tokens become empty.
func (v *Validator) FixText(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if v.matcher.Contains(trimmed) {
		return strings.ToLower(trimmed)
	}
	if fixed, ok := v.matcher.SuggestCorrection(trimmed); ok {
		return fixed
	}
	return ""
}
