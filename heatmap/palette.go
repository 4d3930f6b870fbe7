package heatmap

import (
	"image/color"

	"github.com/icza/gox/imagex/colorx"
)

// YlOrRd is the 9-step ColorBrewer yellow-orange-red sequential scheme.
var YlOrRd = []string{
	"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
	"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
}

// Palette maps values in [Min, Max] onto a sequence of colors, lowest first.
type Palette struct {
	Colors   []color.RGBA
	Min, Max float64
}

// NewPalette parses hex colors such as "#ffeda0".
func NewPalette(hex []string, min, max float64) (Palette, error) {
	p := Palette{Min: min, Max: max, Colors: make([]color.RGBA, 0, len(hex))}
	for _, h := range hex {
		c, err := colorx.ParseHexColor(h)
		if err != nil {
			return p, err
		}
		p.Colors = append(p.Colors, c)
	}

	return p, nil
}

// Step returns the index of the color bin containing v. A palette with an
// empty range puts everything in the lowest bin.
func (p Palette) Step(v float64) int {
	if p.Max <= p.Min {
		return 0
	}

	i := int((v - p.Min) / (p.Max - p.Min) * float64(len(p.Colors)))
	if i < 0 {
		return 0
	}
	if i >= len(p.Colors) {
		return len(p.Colors) - 1
	}

	return i
}

func (p Palette) Color(v float64) color.RGBA {
	return p.Colors[p.Step(v)]
}

// Bounds returns the lower and upper value of bin i.
func (p Palette) Bounds(i int) (lo, hi float64) {
	w := (p.Max - p.Min) / float64(len(p.Colors))
	return p.Min + float64(i)*w, p.Min + float64(i+1)*w
}
