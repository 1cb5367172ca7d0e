package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Foregrounds chosen against an accent background.
const (
	LightForeground = "#0F172A"
	DarkForeground  = "#FFFFFF"
)

// HexToRGBA converts a hex accent to a CSS-style rgba() string with the
// given alpha. Three-digit shorthand is expanded. Unparseable input
// falls back to fully transparent black.
func HexToRGBA(hex string, alpha float64) string {
	c, err := parseHex(hex)
	if err != nil {
		return fmt.Sprintf("rgba(0, 0, 0, %s)", formatAlpha(alpha))
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
}

// BlendWithSurface returns the accent softened for use as a card or row
// background. It is an alpha blend left to the renderer, expressed as rgba.
func BlendWithSurface(color string, alpha float64) string {
	return HexToRGBA(color, alpha)
}

// ReadableTextColor picks a light or dark foreground for text drawn on
// the given accent, using WCAG relative luminance on linearized sRGB
// with a 0.6 threshold.
func ReadableTextColor(color string) string {
	c, err := parseHex(color)
	if err != nil {
		return DarkForeground
	}

	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	if luminance > 0.6 {
		return LightForeground
	}
	return DarkForeground
}

func parseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return colorful.Hex(hex)
}

// formatAlpha trims trailing zeros so "0.30" renders as "0.3".
func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}
