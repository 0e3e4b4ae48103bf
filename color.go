package tui

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB terminal color, or the zero value meaning
// "default/none". Equality is structural, so two Colors
// built from the same RGB triple compare equal regardless of how they
// were constructed.
type Color struct {
	r, g, b uint8
	set     bool
}

// RGB constructs a color from 8-bit components.
func RGB(r, g, b uint8) Color { return Color{r: r, g: g, b: b, set: true} }

// Hex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB". An invalid string
// yields the default/none color rather than an error.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}
	}
	return RGB(r, g, b)
}

// HSL constructs a color from hue (0-360), saturation and lightness (0-1).
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l)
	return RGB(clamp8(c.R), clamp8(c.G), clamp8(c.B))
}

func clamp8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f * 255)
}

// Standard ANSI palette, true-color equivalents.
var (
	Black         = RGB(0, 0, 0)
	Red           = RGB(170, 0, 0)
	Green         = RGB(0, 170, 0)
	Yellow        = RGB(170, 170, 0)
	Blue          = RGB(0, 0, 170)
	Magenta       = RGB(170, 0, 170)
	Cyan          = RGB(0, 170, 170)
	White         = RGB(170, 170, 170)
	BrightBlack   = RGB(85, 85, 85)
	BrightRed     = RGB(255, 85, 85)
	BrightGreen   = RGB(85, 255, 85)
	BrightYellow  = RGB(255, 255, 85)
	BrightBlue    = RGB(85, 85, 255)
	BrightMagenta = RGB(255, 85, 255)
	BrightCyan    = RGB(85, 255, 255)
	BrightWhite   = RGB(255, 255, 255)
)

// RGB returns the color's components.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// Hex returns "#RRGGBB", or "" for the default/none color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// IsSet reports whether the color was explicitly assigned (vs. default/none).
func (c Color) IsSet() bool { return c.set }

// toColorful converts to go-colorful's representation for color-science ops.
func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
}

// HSL returns the color's hue (0-360), saturation and lightness (0-1).
func (c Color) HSL() (h, s, l float64) { return c.toColorful().Hsl() }

// Luminance returns the WCAG relative luminance (0-1).
func (c Color) Luminance() float64 { return c.toColorful().Luminance() }

// IsDark reports whether the color's lightness is below 0.5.
func (c Color) IsDark() bool { _, _, l := c.HSL(); return l < 0.5 }

// IsLight reports the complement of IsDark.
func (c Color) IsLight() bool { return !c.IsDark() }

// Attrs is a bitset of SGR text attributes.
type Attrs uint8

const (
	AttrBold Attrs = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrReverse
	AttrDim
	AttrBlink
)

// Has reports whether all bits in mask are set.
func (a Attrs) Has(mask Attrs) bool { return a&mask == mask }

// With returns a with mask's bits set.
func (a Attrs) With(mask Attrs) Attrs { return a | mask }

// Without returns a with mask's bits cleared.
func (a Attrs) Without(mask Attrs) Attrs { return a &^ mask }

// OptionalColor pairs a Color with whether it was actually specified. The
// zero value is "unset" (a cell with both colors None is
// transparent").
type OptionalColor struct {
	Color Color
	Set   bool
}

// Some wraps a Color as set.
func Some(c Color) OptionalColor { return OptionalColor{Color: c, Set: true} }

// None is the unset OptionalColor.
func None() OptionalColor { return OptionalColor{} }
