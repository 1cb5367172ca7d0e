package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmaia/checkme/internal/theme"
)

func TestHexToRGBA(t *testing.T) {
	assert.Equal(t, "rgba(37, 99, 235, 0.2)", theme.HexToRGBA("#2563EB", 0.2))
	assert.Equal(t, "rgba(37, 99, 235, 1)", theme.HexToRGBA("2563EB", 1))
	// Three-digit shorthand expands per channel.
	assert.Equal(t, "rgba(255, 255, 255, 0.5)", theme.HexToRGBA("#fff", 0.5))
	assert.Equal(t, "rgba(0, 0, 0, 0.3)", theme.HexToRGBA("not-a-color", 0.3))
}

func TestBlendWithSurface(t *testing.T) {
	assert.Equal(t, theme.HexToRGBA("#DB2777", 0.12), theme.BlendWithSurface("#DB2777", 0.12))
}

func TestReadableTextColor(t *testing.T) {
	// Bright accents get the dark slate foreground.
	assert.Equal(t, theme.LightForeground, theme.ReadableTextColor("#FFFFFF"))
	assert.Equal(t, theme.LightForeground, theme.ReadableTextColor("#FACC15"))

	// Saturated/dark accents get white.
	assert.Equal(t, theme.DarkForeground, theme.ReadableTextColor("#2563EB"))
	assert.Equal(t, theme.DarkForeground, theme.ReadableTextColor("#000000"))
	assert.Equal(t, theme.DarkForeground, theme.ReadableTextColor("#64748B"))

	// Unparseable input falls back to white.
	assert.Equal(t, theme.DarkForeground, theme.ReadableTextColor(""))
}

func TestChecklistColorsPalette(t *testing.T) {
	assert.Len(t, theme.ChecklistColors, 8)
	assert.Equal(t, "#2563EB", theme.ChecklistColors[0].Value, "blue is the default accent")

	seen := make(map[string]bool)
	for _, option := range theme.ChecklistColors {
		assert.NotEmpty(t, option.ID)
		assert.NotEmpty(t, option.Label)
		assert.False(t, seen[option.Value])
		seen[option.Value] = true
	}
}
