package render

import (
	"fmt"
	"image/color"
)

// Palette holds the colours of an exported diagram.
type Palette struct {
	Background   color.RGBA
	Surface      color.RGBA
	Grid         color.RGBA
	Text         color.RGBA
	TextDim      color.RGBA
	Accent       color.RGBA
	Interior     color.RGBA
	Boundary     color.RGBA
	Exterior     color.RGBA
	Adherent     color.RGBA
	Accumulation color.RGBA
	Isolated     color.RGBA
	Good         color.RGBA
	Bad          color.RGBA
}

// DefaultPalette is the dark palette of the interactive widgets.
var DefaultPalette = Palette{
	Background:   mustHex("#0c0e13"),
	Surface:      mustHex("#14171e"),
	Grid:         mustHex("#252a36"),
	Text:         mustHex("#d4d8e3"),
	TextDim:      mustHex("#6b7394"),
	Accent:       mustHex("#818cf8"),
	Interior:     mustHex("#3b82f6"),
	Boundary:     mustHex("#f59e0b"),
	Exterior:     mustHex("#64748b"),
	Adherent:     mustHex("#ebcb8b"),
	Accumulation: mustHex("#88c0d0"),
	Isolated:     mustHex("#b48ead"),
	Good:         mustHex("#a3be8c"),
	Bad:          mustHex("#e94560"),
}

// ParseHex parses #rrggbb or #rrggbbaa.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return c, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// fade returns c with its alpha scaled by a.
func fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
