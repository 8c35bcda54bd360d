package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/plus3/blockfall/tetris"
	"golang.org/x/image/colornames"
)

// RGBA resolves a color token: a CSS/SVG color name ("wheat") or a
// "#rrggbb" / "#rgb" hex literal.
func RGBA(token string) (color.RGBA, error) {
	if strings.HasPrefix(token, "#") {
		return parseHex(token)
	}
	if c, ok := colornames.Map[strings.ToLower(token)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("config: unknown color %q", token)
}

// MustRGBA is RGBA for the compile-time layout colors.
func MustRGBA(token string) color.RGBA {
	c, err := RGBA(token)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(token string) (color.RGBA, error) {
	hex := token[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("config: bad hex color %q", token)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: bad hex color %q: %w", token, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Swatches resolves every palette color once so renderers can look them up
// per cell without parsing.
func Swatches(palette *tetris.Palette) (map[tetris.Color]color.RGBA, error) {
	swatches := make(map[tetris.Color]color.RGBA, len(palette.Colors))
	for _, token := range palette.Colors {
		c, err := RGBA(string(token))
		if err != nil {
			return nil, err
		}
		swatches[token] = c
	}
	return swatches, nil
}
