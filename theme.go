package tui

import (
	"gopkg.in/yaml.v3"
)

// ThemeToken names one semantic color slot a theme can define. Generalized
// into a map keyed by token, rather than a fixed struct, so theming-panel
// nodes can overlay a subset of tokens rather than a whole theme.
type ThemeToken string

const (
	TokenPrimary      ThemeToken = "primary"
	TokenSecondary    ThemeToken = "secondary"
	TokenAccent       ThemeToken = "accent"
	TokenBackground   ThemeToken = "background"
	TokenSurface      ThemeToken = "surface"
	TokenSurfaceHover ThemeToken = "surface_hover"
	TokenText         ThemeToken = "text"
	TokenTextMuted    ThemeToken = "text_muted"
	TokenTextOnPrimary ThemeToken = "text_on_primary"
	TokenBorder       ThemeToken = "border"
	TokenFocusRing    ThemeToken = "focus_ring"
	TokenError        ThemeToken = "error"
	TokenWarning      ThemeToken = "warning"
	TokenSuccess      ThemeToken = "success"
	TokenInfo         ThemeToken = "info"
)

// Theme is an immutable map from token to color. Build one with NewTheme
// and never mutate it afterward; overlays are separate Themes pushed onto
// a ThemeStack, not edits to an existing one.
type Theme map[ThemeToken]Color

// NewTheme copies entries into a fresh, independently-owned Theme.
func NewTheme(entries map[ThemeToken]Color) Theme {
	t := make(Theme, len(entries))
	for k, v := range entries {
		t[k] = v
	}
	return t
}

// themeOverlayFile is the YAML shape a theme overlay file parses into.
type themeOverlayFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// LoadThemeOverlay parses a YAML document of the form:
//
//	tokens:
//	  primary: "#c4a7e7"
//	  background: "#191724"
//
// into a Theme containing only the tokens present in the document.
func LoadThemeOverlay(data []byte) (Theme, error) {
	var f themeOverlayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, wrapErrf(err, "parse theme overlay")
	}
	theme := make(Theme, len(f.Tokens))
	for k, v := range f.Tokens {
		theme[ThemeToken(k)] = Hex(v)
	}
	return theme, nil
}

// ThemeStack is the push/pop stack threaded through render: theming-panel
// nodes push an overlay before descending into their child's render and
// pop it on the way out. Token lookups walk the stack top-down; the
// topmost match wins, falling through to lower layers for tokens the
// overlay doesn't define.
type ThemeStack struct {
	layers []Theme
}

// NewThemeStack seeds the stack with a base theme, always present at the
// bottom so Resolve never fails for a token the base theme defines.
func NewThemeStack(base Theme) *ThemeStack {
	return &ThemeStack{layers: []Theme{base}}
}

// Push adds an overlay on top of the stack.
func (s *ThemeStack) Push(overlay Theme) { s.layers = append(s.layers, overlay) }

// Pop removes the topmost overlay. Popping the base layer is a no-op: it
// never leaves the stack empty.
func (s *ThemeStack) Pop() {
	if len(s.layers) > 1 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// Resolve looks up token from the top of the stack down, returning the
// first match.
func (s *ThemeStack) Resolve(token ThemeToken) (Color, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if c, ok := s.layers[i][token]; ok {
			return c, true
		}
	}
	return Color{}, false
}

// defaultTheme is a rose-pine-derived palette.
var defaultTheme = NewTheme(map[ThemeToken]Color{
	TokenPrimary:       Hex("#c4a7e7"),
	TokenSecondary:     Hex("#ebbcba"),
	TokenAccent:        Hex("#f6c177"),
	TokenBackground:    Hex("#191724"),
	TokenSurface:       Hex("#1f1d2e"),
	TokenSurfaceHover:  Hex("#26233a"),
	TokenText:          Hex("#e0def4"),
	TokenTextMuted:     Hex("#908caa"),
	TokenTextOnPrimary: Hex("#191724"),
	TokenBorder:        Hex("#403d52"),
	TokenFocusRing:     Hex("#f6c177"),
	TokenError:         Hex("#eb6f92"),
	TokenWarning:       Hex("#f6c177"),
	TokenSuccess:       Hex("#31748f"),
	TokenInfo:          Hex("#9ccfd8"),
})

// DefaultTheme returns the framework's built-in default theme.
func DefaultTheme() Theme { return defaultTheme }
