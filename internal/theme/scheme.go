// Package theme holds the color schemes the display can switch between.
//
// A Scheme is an immutable value. Widgets never keep a copy of the colors they
// draw with; they ask the display for the active scheme every render so that a
// scheme change shows up on the next frame.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Color is an RGBA color. A is 255 for opaque colors; surfaces treat lower
// values as a tint over what is already drawn.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Blend mixes c over base using c's alpha.
func (c Color) Blend(base Color) Color {
	a := int(c.A)
	mix := func(top, bottom uint8) uint8 {
		return uint8((int(top)*a + int(bottom)*(255-a)) / 255)
	}
	return RGB(mix(c.R, base.R), mix(c.G, base.G), mix(c.B, base.B))
}

// Scheme is a named palette.
type Scheme struct {
	Name       string
	Background Color
	Foreground Color
	Highlight  Color
}

// FocusColor returns Highlight for focused controls and Foreground otherwise.
func (s Scheme) FocusColor(focused bool) Color {
	if focused {
		return s.Highlight
	}
	return s.Foreground
}

// Disabled is the color for controls that cannot be interacted with.
func (s Scheme) Disabled() Color {
	return s.Foreground.WithAlpha(128).Blend(s.Background)
}

func (s Scheme) String() string {
	return s.Name
}

// Named schemes. The green scheme resembles military avionics displays and is
// the default.
var (
	Green = Scheme{Name: "Green", Background: RGB(0, 24, 0), Foreground: RGB(0, 170, 0), Highlight: RGB(170, 170, 170)}
	Cyan  = Scheme{Name: "Cyan", Background: RGB(0, 0, 32), Foreground: RGB(0, 170, 170), Highlight: RGB(0, 0, 255)}
	Blue  = Scheme{Name: "Blue", Background: RGB(0, 0, 32), Foreground: RGB(0, 128, 255), Highlight: RGB(255, 255, 255)}
	White = Scheme{Name: "White", Background: RGB(0, 0, 0), Foreground: RGB(150, 150, 150), Highlight: RGB(255, 255, 255)}
	Red   = Scheme{Name: "Red", Background: RGB(32, 0, 0), Foreground: RGB(170, 0, 0), Highlight: RGB(255, 0, 0)}
	Amber = Scheme{Name: "Amber", Background: RGB(63, 47, 20), Foreground: RGB(231, 176, 75), Highlight: RGB(255, 201, 14)}
)

// Default is the scheme used when no valid name is configured.
var Default = Green

var registry = map[string]Scheme{}

func init() {
	for _, s := range []Scheme{Green, Cyan, Blue, White, Red, Amber} {
		registry[strings.ToLower(s.Name)] = s
	}
}

// Lookup finds a scheme by name, case-insensitively.
func Lookup(name string) (Scheme, bool) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// LookupOrDefault is Lookup falling back to Default.
func LookupOrDefault(name string) Scheme {
	if s, ok := Lookup(name); ok {
		return s
	}
	return Default
}

// Names returns the registered scheme names in a stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, s := range registry {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}
