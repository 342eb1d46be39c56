package apps

import (
	"fmt"

	"mfd/internal/mfd"
	"mfd/internal/ui"
)

const (
	MinZoom     = 1
	MaxZoom     = 10
	defaultZoom = 5
)

// MapModes are the map filters cycled by reselecting the map page. The
// active mode doubles as the page's button label.
var MapModes = []string{"MAP", "FOOD", "SHOP", "GAS"}

// MapView is the navigation state shared by the map pages. It carries no
// map geometry, only where the user is looking.
type MapView struct {
	Zoom   int
	Offset ui.Point
	Mode   int
}

// ModeName returns the label of the active filter.
func (v *MapView) ModeName() string {
	return MapModes[v.Mode%len(MapModes)]
}

// NextMode advances to the next filter, wrapping.
func (v *MapView) NextMode() {
	v.Mode = (v.Mode + 1) % len(MapModes)
}

// ZoomBy changes the zoom level within [MinZoom, MaxZoom] and reports
// whether it changed.
func (v *MapView) ZoomBy(delta int) bool {
	z := min(max(v.Zoom+delta, MinZoom), MaxZoom)
	if z == v.Zoom {
		return false
	}
	v.Zoom = z
	return true
}

// Pan moves the view. Steps shrink as the zoom level grows.
func (v *MapView) Pan(dx, dy int) {
	step := MaxZoom + 1 - v.Zoom
	v.Offset = v.Offset.Add(ui.Point{X: dx * step, Y: dy * step})
}

// NavApp is the navigation application.
type NavApp struct {
	*mfd.BaseApplication
	View *MapView
}

func NewNavApp(c *mfd.Controller) *NavApp {
	a := &NavApp{
		BaseApplication: mfd.NewBaseApplication(c, "NAV"),
		View:            &MapView{Zoom: defaultZoom},
	}
	a.SetPages(NewMapPage(c, a), NewMapInfoPage(c, a))
	return a
}

// HasData reports whether there is an origin to center the map on.
func (a *NavApp) HasData() bool {
	return a.Controller.Options().Location != ""
}

// MapPage draws the cursor at the current view and handles zoom and pan.
type MapPage struct {
	*mfd.BasePage
	app  *NavApp
	view *ui.TextBlock
}

func NewMapPage(c *mfd.Controller, a *NavApp) *MapPage {
	p := &MapPage{BasePage: mfd.NewBasePage(c, a, "MAP"), app: a}
	p.view = ui.NewTextBlock(c.Display, "%s  ZOOM %d  ORIGIN %s  %+d,%+d")
	p.Panel.Add(p.view)
	return p
}

func (p *MapPage) ButtonText() string { return p.app.View.ModeName() }

func (p *MapPage) HandleReselected() { p.app.View.NextMode() }

func (p *MapPage) HandleKey(k ui.Key) bool {
	v := p.app.View
	switch {
	case k.IsZoomIn():
		v.ZoomBy(1)
	case k.IsZoomOut():
		v.ZoomBy(-1)
	case k == ui.KeyUp:
		v.Pan(0, -1)
	case k == ui.KeyDown:
		v.Pan(0, 1)
	case k == ui.KeyLeft:
		v.Pan(-1, 0)
	case k == ui.KeyRight:
		v.Pan(1, 0)
	default:
		return p.BasePage.HandleKey(k)
	}
	return true
}

func (p *MapPage) Arrange() ui.Size {
	if !p.app.HasData() {
		p.Status = "NO DATA"
		return p.BasePage.Arrange()
	}
	p.Status = ""
	v := p.app.View
	p.view.Args = []any{v.ModeName(), v.Zoom, p.Controller.Options().Location, v.Offset.X, v.Offset.Y}
	return p.BasePage.Arrange()
}

func (p *MapPage) Render() ui.Rect {
	r := p.BasePage.Render()
	if p.Status != "" {
		return r
	}
	area := p.Display.ContentRect()
	cs := p.Display.Scheme()
	center := area.Center()
	// the origin axis scrolls with the view, the cursor stays put
	if y := center.Y - p.app.View.Offset.Y; y > r.Bottom() && y < area.Bottom() {
		p.Display.Surface.DrawHLine(area.X, area.Right()-1, y, cs.Foreground.WithAlpha(96))
	}
	p.Display.Surface.DrawCircle(center, 1, cs.Highlight, false)
	return r
}

// MapInfoPage describes the current view.
type MapInfoPage struct {
	*mfd.BasePage
	app                  *NavApp
	header               *ui.TextBlock
	zoom, offset, origin *ui.TextBlock
}

func NewMapInfoPage(c *mfd.Controller, a *NavApp) *MapInfoPage {
	p := &MapInfoPage{BasePage: mfd.NewBasePage(c, a, "INFO"), app: a}
	d := c.Display
	p.header = p.HeaderLabel("Node Info")
	p.zoom = ui.NewTextBlock(d, "  Zoom: %d")
	p.offset = ui.NewTextBlock(d, "Offset: %+d,%+d")
	p.origin = ui.NewTextBlock(d, "Origin: %s")
	p.Panel.Add(p.header, p.zoom, p.offset, p.origin)
	return p
}

func (p *MapInfoPage) HandleSelected() {
	name := "Node"
	if p.app.View.Mode != 0 {
		name = p.app.View.ModeName()
	}
	p.header.SetText(fmt.Sprintf("%s Info", name))
	p.BasePage.HandleSelected()
}

func (p *MapInfoPage) Arrange() ui.Size {
	v := p.app.View
	origin := p.Controller.Options().Location
	if origin == "" {
		origin = "NO DATA"
	}
	p.zoom.Args = []any{v.Zoom}
	p.offset.Args = []any{v.Offset.X, v.Offset.Y}
	p.origin.Args = []any{origin}
	return p.BasePage.Arrange()
}
