package emoji

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Validator decides whether status icons can be stored and whether a value is a single icon
type Validator interface {
	PlatformSupportsEmoji() bool
	IsSingleGrapheme(value string) bool
}

// GraphemeValidator accepts any single grapheme cluster that is not whitespace or a control character
type GraphemeValidator struct {
	supported bool
}

// NewValidator creates a GraphemeValidator. supported reflects whether the backing
// store can hold 4-byte UTF-8 sequences.
func NewValidator(supported bool) *GraphemeValidator {
	return &GraphemeValidator{supported: supported}
}

// PlatformSupportsEmoji reports whether status icons are enabled
func (v *GraphemeValidator) PlatformSupportsEmoji() bool {
	return v.supported
}

// IsSingleGrapheme reports whether value renders as exactly one character.
// "👨‍👩‍👧" (a ZWJ sequence) and "🇰🇷" (a flag) count as one; "📱📠" counts as two.
func (v *GraphemeValidator) IsSingleGrapheme(value string) bool {
	if value == "" || strings.TrimSpace(value) == "" {
		return false
	}
	if uniseg.GraphemeClusterCount(value) != 1 {
		return false
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
