package apps

import (
	"unicode/utf8"

	"mfd/internal/mfd"
	"mfd/internal/settings"
	"mfd/internal/theme"
	"mfd/internal/ui"
)

// locationLength is the number of digits in a complete location code.
const locationLength = 5

// SettingsPage edits the persisted options. Every change goes through the
// controller so it takes effect on the next frame and is queued for saving.
type SettingsPage struct {
	*mfd.BasePage
	Scanline  *ui.CheckBox
	Interlace *ui.CheckBox
	FPS       *ui.CheckBox
	Location  *ui.TextBox
	Scheme    *ui.SpinnerBox
}

func NewSettingsPage(c *mfd.Controller, app mfd.Application) *SettingsPage {
	p := &SettingsPage{BasePage: mfd.NewBasePage(c, app, "OPTS")}
	d := c.Display
	p.Scanline = ui.NewCheckBox(d, p, "Scanline:")
	p.Interlace = ui.NewCheckBox(d, p, "Interlace:")
	p.FPS = ui.NewCheckBox(d, p, "FPS:")
	p.Location = ui.NewTextBox(d, p, "Location:")
	p.Location.Numeric = true
	p.Location.MaxLength = locationLength
	p.Scheme = ui.NewSpinnerBox(d, p, "Color Scheme:", theme.Names())
	p.Panel.Add(
		p.HeaderLabel("Settings"),
		p.Scanline,
		p.Interlace,
		p.FPS,
		p.Location,
		p.Scheme,
	)
	return p
}

func (p *SettingsPage) HandleSelected() {
	p.Location.Text = p.Controller.Options().Location
	p.BasePage.HandleSelected()
}

// Arrange mirrors the current options into the controls. The location box
// is left alone so partial input survives between frames.
func (p *SettingsPage) Arrange() ui.Size {
	o := p.Controller.Options()
	p.Scanline.Checked = o.Scanline
	p.Interlace.Checked = o.Interlace
	p.FPS.Checked = o.ShowFPS
	p.Scheme.SetValue(o.ColorScheme)
	return p.BasePage.Arrange()
}

func (p *SettingsPage) HandleControlStateChanged(w ui.Widget) {
	var fn func(o *settings.Options)
	switch w {
	case p.Scanline:
		on := p.Scanline.Checked
		fn = func(o *settings.Options) { o.Scanline = on }
	case p.Interlace:
		on := p.Interlace.Checked
		fn = func(o *settings.Options) { o.Interlace = on }
	case p.FPS:
		on := p.FPS.Checked
		fn = func(o *settings.Options) { o.ShowFPS = on }
	case p.Location:
		// partial codes are not saved
		if utf8.RuneCountInString(p.Location.Text) < locationLength {
			return
		}
		loc := p.Location.Text
		fn = func(o *settings.Options) { o.Location = loc }
	case p.Scheme:
		name := p.Scheme.Value()
		fn = func(o *settings.Options) { o.ColorScheme = name }
	default:
		return
	}
	p.Controller.UpdateOptions(fn)
}
