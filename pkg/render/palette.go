package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/pkg/lines"
)

// DefaultColors is the palette definition used if nothing else is
// configured: five layers with black, gray and white.
const DefaultColors = "black,gray,white;black,gray,white;black,gray,white;black,gray,white;black,gray,white"

var defaultTones = Tones{"black", "gray", "white"}

// Tones holds the three colors (dark, medium, light) for one layer.
// They are indexed by the BrushColor of a line.
type Tones [3]string

// Palette assigns colors to layers.
type Palette struct {
	layers []Tones
	parsed map[string]color.RGBA
}

// NewPalette creates a palette from the given per-layer tones.
// All colors must be CSS color names or hex values.
func NewPalette(layers ...Tones) (*Palette, error) {
	p := &Palette{
		layers: layers,
		parsed: make(map[string]color.RGBA),
	}

	all := append([]Tones{defaultTones}, layers...)
	for _, tones := range all {
		for _, s := range tones {
			c, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			p.parsed[s] = c
		}
	}

	return p, nil
}

// DefaultPalette returns the palette for DefaultColors.
func DefaultPalette() *Palette {
	p, err := ParsePalette(DefaultColors)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette reads a palette definition like
// "black,gray,white;darkblue,blue,white".
//
// Layers are separated by semicolon, the three colors for a layer by comma.
func ParsePalette(s string) (*Palette, error) {
	var layers []Tones
	for _, layer := range strings.Split(s, ";") {
		parts := strings.Split(layer, ",")
		if len(parts) != 3 {
			return nil, errors.NewValidationError("expected 3 colors per layer, found %q", layer)
		}
		var t Tones
		for i, part := range parts {
			t[i] = strings.TrimSpace(part)
		}
		layers = append(layers, t)
	}

	return NewPalette(layers...)
}

// NumLayers is the number of layers with configured colors.
func (p *Palette) NumLayers() int {
	return len(p.layers)
}

// CSS returns the color for a line on the given layer as it was configured.
//
// Layers without configured colors use black, gray and white.
func (p *Palette) CSS(layer int, c lines.BrushColor) string {
	tones := defaultTones
	if layer >= 0 && layer < len(p.layers) {
		tones = p.layers[layer]
	}

	i := int(c)
	if i < 0 || i >= len(tones) {
		i = 0
	}
	return tones[i]
}

// Color returns the RGB color for a line on the given layer.
func (p *Palette) Color(layer int, c lines.BrushColor) color.RGBA {
	return p.parsed[p.CSS(layer, c)]
}

// Hex returns the color for a line on the given layer as #rrggbb.
func (p *Palette) Hex(layer int, c lines.BrushColor) string {
	return Hex(p.Color(layer, c))
}

// ParseColor reads a CSS color name or a #rrggbb / #rgb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, errors.NewValidationError("unknown color %q", s)
	}

	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, errors.NewValidationError("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.NewValidationError("invalid hex color %q", s)
	}

	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// Hex formats a color as #rrggbb, ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// withOpacity returns the given color with the alpha set to opacity (0..1).
func withOpacity(c color.RGBA, opacity float32) color.NRGBA {
	a := opacity * 255
	if a > 255 {
		a = 255
	}
	return color.NRGBA{c.R, c.G, c.B, uint8(a)}
}
