// Package dyntype provides dynamic type: the user's preferred text size
// and the point sizes, fonts and measurements that follow from it.
//
// A [Preferences] value holds the current [ContentSizeCategory] and tells
// listeners when it changes. Controls resolve their font size through
// [TextStyle.PointSize] and measure text with [Metrics]:
//
//	prefs := dyntype.NewPreferences(dyntype.Large)
//	prefs.AddListener(func(c dyntype.ContentSizeCategory) {
//	    size := dyntype.Body.PointSize(c)
//	    // relayout with size
//	})
package dyntype

import (
	"fmt"
	"strings"
)

// ContentSizeCategory is the user's preferred text size.
type ContentSizeCategory int

const (
	ExtraSmall ContentSizeCategory = iota
	Small
	Medium
	Large
	ExtraLarge
	ExtraExtraLarge
	ExtraExtraExtraLarge
	AccessibilityMedium
	AccessibilityLarge
	AccessibilityExtraLarge
	AccessibilityExtraExtraLarge
	AccessibilityExtraExtraExtraLarge

	numCategories
)

// DefaultCategory is the system default text size.
const DefaultCategory = Large

var categoryNames = [numCategories]string{
	"extraSmall",
	"small",
	"medium",
	"large",
	"extraLarge",
	"extraExtraLarge",
	"extraExtraExtraLarge",
	"accessibilityMedium",
	"accessibilityLarge",
	"accessibilityExtraLarge",
	"accessibilityExtraExtraLarge",
	"accessibilityExtraExtraExtraLarge",
}

// String returns the lower camel case name of the category.
func (c ContentSizeCategory) String() string {
	if c.valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("ContentSizeCategory(%d)", int(c))
}

// IsAccessibility reports whether c is one of the larger accessibility sizes.
func (c ContentSizeCategory) IsAccessibility() bool {
	return c >= AccessibilityMedium && c < numCategories
}

func (c ContentSizeCategory) valid() bool {
	return c >= ExtraSmall && c < numCategories
}

// Categories returns every category from smallest to largest.
func Categories() []ContentSizeCategory {
	out := make([]ContentSizeCategory, numCategories)
	for i := range out {
		out[i] = ContentSizeCategory(i)
	}
	return out
}

// ParseContentSizeCategory parses a category name. Matching ignores case,
// hyphens and underscores, so "extra-large" and "EXTRA_LARGE" both name
// ExtraLarge.
func ParseContentSizeCategory(s string) (ContentSizeCategory, error) {
	key := foldName(s)
	for i, name := range categoryNames {
		if foldName(name) == key {
			return ContentSizeCategory(i), nil
		}
	}
	return DefaultCategory, fmt.Errorf("unknown content size category %q", s)
}

func foldName(s string) string {
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return strings.ToLower(s)
}
