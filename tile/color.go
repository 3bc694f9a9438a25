// Package tile defines the on-screen cell model: colors, tiles, and the
// closed set of map matter kinds (ground, biome, block) a cell can carry.
package tile

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind discriminates the closed color variant.
type ColorKind uint8

const (
	// ColorBasic is one of the 16 named ANSI colors.
	ColorBasic ColorKind = iota
	// ColorLegacyRGB is the legacy 6x6x6 color cube, each channel 0..=5.
	ColorLegacyRGB
	// ColorTrueRGB is true 24-bit RGB.
	ColorTrueRGB
	// ColorGray is one of the 24 grayscale steps.
	ColorGray
)

// BasicColor enumerates the 16 named ANSI colors.
type BasicColor uint8

const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var basicRGB = [16][3]uint8{
	Black:         {0, 0, 0},
	Red:           {205, 0, 0},
	Green:         {0, 205, 0},
	Yellow:        {205, 205, 0},
	Blue:          {0, 0, 238},
	Magenta:       {205, 0, 205},
	Cyan:          {0, 205, 205},
	White:         {229, 229, 229},
	BrightBlack:   {127, 127, 127},
	BrightRed:     {255, 0, 0},
	BrightGreen:   {0, 255, 0},
	BrightYellow:  {255, 255, 0},
	BrightBlue:    {92, 92, 255},
	BrightMagenta: {255, 0, 255},
	BrightCyan:    {0, 255, 255},
	BrightWhite:   {255, 255, 255},
}

// Color is a closed variant over the four color representations the
// screen device contract understands. Construct with the New* helpers;
// the zero value is ColorBasic(Black).
type Color struct {
	kind  ColorKind
	basic BasicColor
	r, g, b uint8 // legacy: each in 0..=5; true: full byte range
	gray  uint8   // 0..=23
}

// NewBasicColor builds a Color from one of the 16 named colors.
func NewBasicColor(c BasicColor) Color {
	return Color{kind: ColorBasic, basic: c}
}

// NewLegacyColor builds a Color from the 6x6x6 cube. Each channel is
// clamped to 0..=5.
func NewLegacyColor(r, g, b uint8) Color {
	clamp := func(v uint8) uint8 {
		if v > 5 {
			return 5
		}
		return v
	}
	return Color{kind: ColorLegacyRGB, r: clamp(r), g: clamp(g), b: clamp(b)}
}

// NewTrueColor builds a Color from a full 24-bit RGB triple.
func NewTrueColor(r, g, b uint8) Color {
	return Color{kind: ColorTrueRGB, r: r, g: g, b: b}
}

// NewGrayColor builds a Color from one of the 24 grayscale steps. The
// value is clamped to 0..=23.
func NewGrayColor(step uint8) Color {
	if step > 23 {
		step = 23
	}
	return Color{kind: ColorGray, gray: step}
}

// Kind reports which variant this Color holds.
func (c Color) Kind() ColorKind { return c.kind }

// RGB resolves the color to a concrete 24-bit triple, the device-neutral
// form every backend can render from.
func (c Color) RGB() (r, g, b uint8) {
	switch c.kind {
	case ColorBasic:
		rgb := basicRGB[c.basic]
		return rgb[0], rgb[1], rgb[2]
	case ColorLegacyRGB:
		step := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return step(c.r), step(c.g), step(c.b)
	case ColorTrueRGB:
		return c.r, c.g, c.b
	case ColorGray:
		if c.gray == 0 {
			return 8, 8, 8
		}
		v := 8 + c.gray*10
		return v, v, v
	default:
		return 0, 0, 0
	}
}

// Brightness reports the perceptual brightness contract for this color in
// 0..1, via CIE-Lab L* through go-colorful.
func (c Color) Brightness() float64 {
	r, g, b := c.RGB()
	cc := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := cc.Lab()
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return l
}

// NearestBasic downsamples the color to the closest of the 16 named
// colors by Lab distance, for device backends that cannot render true
// color.
func (c Color) NearestBasic() BasicColor {
	r, g, b := c.RGB()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := BasicColor(0)
	bestDist := -1.0
	for i, rgb := range basicRGB {
		cand := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
		d := target.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = BasicColor(i)
		}
	}
	return best
}

func (c Color) String() string {
	switch c.kind {
	case ColorBasic:
		return fmt.Sprintf("Basic(%d)", c.basic)
	case ColorLegacyRGB:
		return fmt.Sprintf("Legacy(%d,%d,%d)", c.r, c.g, c.b)
	case ColorTrueRGB:
		return fmt.Sprintf("RGB(%d,%d,%d)", c.r, c.g, c.b)
	case ColorGray:
		return fmt.Sprintf("Gray(%d)", c.gray)
	default:
		return "Color(?)"
	}
}

// ColorPair is a foreground/background pair, the unit a Tile carries.
type ColorPair struct {
	Foreground Color
	Background Color
}

// DefaultColorPair is white-on-black, matching the runtime's default
// configuration.
var DefaultColorPair = ColorPair{
	Foreground: NewBasicColor(White),
	Background: NewBasicColor(Black),
}
