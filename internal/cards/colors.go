package cards

import (
	"fmt"
	"slices"
	"strings"
)

// Color is one of the five card color symbols.
type Color string

const (
	White Color = "W"
	Blue  Color = "U"
	Black Color = "B"
	Red   Color = "R"
	Green Color = "G"
)

var allColors = []Color{White, Blue, Black, Red, Green}

func ParseColor(s string) (Color, error) {
	c := Color(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(allColors, c) {
		return "", fmt.Errorf("unknown color %q", s)
	}

	return c, nil
}

// ParseColors parses a comma separated color list. Empty elements are
// skipped, any unknown symbol invalidates the whole list.
func ParseColors(s string) ([]Color, error) {
	var colors []Color
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(colors, c) {
			colors = append(colors, c)
		}
	}

	return colors, nil
}

// ColorsString renders colors as a sorted comma separated list.
func ColorsString(colors []Color) string {
	if len(colors) == 0 {
		return ""
	}

	ss := make([]string, 0, len(colors))
	for _, c := range colors {
		ss = append(ss, string(c))
	}
	slices.Sort(ss)

	return strings.Join(ss, ",")
}
