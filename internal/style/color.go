// Package style implements the color/style model used to annotate every
// glyph the formula and section parsers emit.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the eight ANSI SGR colors, in ECMA-48 digit order.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// ColorInfo describes the style of a single glyph: an optional foreground
// and background color plus bold/underline flags. The zero value is
// NoColor and serializes to a plain SGR reset.
type ColorInfo struct {
	FG        Color
	HasFG     bool
	BG        Color
	HasBG     bool
	IsBold    bool
	IsUnderline bool
}

// NoColor is the default, unstyled ColorInfo.
var NoColor = ColorInfo{}

// FGColor returns a ColorInfo with only a foreground color set.
func FGColor(c Color) ColorInfo {
	return ColorInfo{FG: c, HasFG: true}
}

// FGBGColor returns a ColorInfo with both foreground and background set.
func FGBGColor(fg, bg Color) ColorInfo {
	return ColorInfo{FG: fg, HasFG: true, BG: bg, HasBG: true}
}

// Bold returns a copy of c with the bold flag set.
func (c ColorInfo) Bold() ColorInfo {
	c.IsBold = true
	return c
}

// Underlined returns a copy of c with the underline flag set.
func (c ColorInfo) Underlined() ColorInfo {
	c.IsUnderline = true
	return c
}

// BoldUnderlined returns a copy of c with both bold and underline set.
func (c ColorInfo) BoldUnderlined() ColorInfo {
	c.IsBold = true
	c.IsUnderline = true
	return c
}

// ToEscapeString renders c as an ECMA-48 SGR escape sequence:
// ESC[0[;1][;4][;3<fg>][;4<bg>]m
func (c ColorInfo) ToEscapeString() string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if c.IsBold {
		b.WriteString(";1")
	}
	if c.IsUnderline {
		b.WriteString(";4")
	}
	if c.HasFG {
		fmt.Fprintf(&b, ";3%d", int(c.FG))
	}
	if c.HasBG {
		fmt.Fprintf(&b, ";4%d", int(c.BG))
	}
	b.WriteByte('m')
	return b.String()
}

// lipglossColor maps our Color enum to lipgloss's terminal ANSI color indices,
// which use the same 0-7 ordering as ECMA-48.
func (c Color) lipglossColor() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", int(c)))
}

// ToLipgloss bridges c into a lipgloss.Style for renderers that want
// lipgloss's terminal-capability detection rather than raw escapes. No
// package in this module calls it; the parsers and Render use
// ToEscapeString.
func (c ColorInfo) ToLipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.HasFG {
		s = s.Foreground(c.FG.lipglossColor())
	}
	if c.HasBG {
		s = s.Background(c.BG.lipglossColor())
	}
	if c.IsBold {
		s = s.Bold(true)
	}
	if c.IsUnderline {
		s = s.Underline(true)
	}
	return s
}
