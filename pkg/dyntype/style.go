package dyntype

import (
	"fmt"
	"math"
)

// TextStyle is a semantic text role whose size follows the content size
// category.
type TextStyle int

const (
	Body TextStyle = iota
	Callout
	Headline
	Footnote
	Caption
)

// bodySizes are the body point sizes per category.
var bodySizes = [numCategories]float64{14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53}

// largeSizes are the point sizes of each style at the Large category.
var largeSizes = map[TextStyle]float64{
	Body:     17,
	Callout:  16,
	Headline: 17,
	Footnote: 13,
	Caption:  12,
}

// String returns the lower case name of the style.
func (s TextStyle) String() string {
	switch s {
	case Body:
		return "body"
	case Callout:
		return "callout"
	case Headline:
		return "headline"
	case Footnote:
		return "footnote"
	case Caption:
		return "caption"
	default:
		return fmt.Sprintf("TextStyle(%d)", int(s))
	}
}

// PointSize returns the font size of s at category c. Body uses the fixed
// size table; the other styles scale with body from their Large size and
// are rounded to the nearest half point. Unknown categories use Large and
// unknown styles use Body.
func (s TextStyle) PointSize(c ContentSizeCategory) float64 {
	if !c.valid() {
		c = DefaultCategory
	}
	base, ok := largeSizes[s]
	if !ok {
		base = largeSizes[Body]
	}
	if base == largeSizes[Body] {
		return bodySizes[c]
	}
	scaled := base * bodySizes[c] / bodySizes[DefaultCategory]
	return math.Round(scaled*2) / 2
}
