// Package ui provides the retained-mode widget toolkit the MFD pages are built from.
//
// Core abstractions:
//   - Surface: abstract drawing primitives (text, rectangles, lines, circles)
//   - Display: the surface plus the active color scheme, fonts and padding
//   - Widget: two-pass layout; Arrange computes the desired size bottom-up,
//     Render paints top-down at the position the parent assigned
//   - StackPanel: lays children out horizontally or vertically
//   - Focusable: widgets that take keyboard focus and report state changes
//     to their StateListener (normally the owning page)
//
// Widgets resolve colors from Display.Scheme at render time, so swapping the
// scheme takes effect on the next frame without touching the widget tree.
package ui
