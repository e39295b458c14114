// Package rating maps risk-rating labels to presentation colors.
package rating

import "strings"

// Rating is a risk severity band as supplied by the screening provider.
type Rating string

const (
	Low      Rating = "Low"
	Medium   Rating = "Medium"
	High     Rating = "High"
	Critical Rating = "Critical"
)

// Colors is a foreground/background pair for rendering a rating. Values are
// hex RGB without the leading '#'.
type Colors struct {
	Foreground string
	Background string
}

// Neutral is returned for labels outside the known severity bands. An
// unrecognized rating must never abort report generation.
var Neutral = Colors{Foreground: "000000", Background: "FFFFFF"}

var palette = map[Rating]Colors{
	Low:      {Foreground: "006100", Background: "C6EFCE"},
	Medium:   {Foreground: "9C6500", Background: "FFEB9C"},
	High:     {Foreground: "9C0006", Background: "FFC7CE"},
	Critical: {Foreground: "FFFFFF", Background: "C00000"},
}

// Classify returns the display color pair for a rating label. Matching is
// case-insensitive; unknown labels get the neutral pair.
func Classify(label string) Colors {
	for r, c := range palette {
		if strings.EqualFold(string(r), label) {
			return c
		}
	}
	return Neutral
}

// IsValid reports whether label is one of the known severity bands.
func (r Rating) IsValid() bool {
	switch r {
	case Low, Medium, High, Critical:
		return true
	}
	return false
}

// Score returns a numeric rank for sorting: Critical=4 … Low=1, unknown=0.
func (r Rating) Score() int {
	switch r {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

func (r Rating) String() string { return string(r) }
