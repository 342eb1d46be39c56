package apps

import (
	"context"
	"fmt"

	"mfd/internal/mfd"
	"mfd/internal/provider"
	"mfd/internal/ui"
)

const (
	forecastDays = 5
	offline      = "Offline"
	clockFormat  = "3:04 PM"
)

// ScheduleApp groups the weather and calendar pages.
type ScheduleApp struct {
	*mfd.BaseApplication
	Weather  *provider.Async[provider.Weather]
	location provider.Snapshot[string]
}

func NewScheduleApp(ctx context.Context, c *mfd.Controller, deps Deps) *ScheduleApp {
	a := &ScheduleApp{BaseApplication: mfd.NewBaseApplication(c, "SCH")}
	location := func() string {
		loc, _ := a.location.Load()
		return loc
	}
	a.Weather = provider.NewWeather(ctx, deps.Weather, weatherRefresh, location, deps.Logger)
	a.SetPages(
		NewWeatherPage(c, a),
		mfd.NewMessagePage(c, a, "CAL", "No calendar configured"),
	)
	return a
}

// WeatherPage shows current conditions and a short forecast. Every value
// reads "Offline" until the source has answered once.
type WeatherPage struct {
	*mfd.BasePage
	app     *ScheduleApp
	weather *provider.Async[provider.Weather]
	// pending is set when the location changed and no fetch for it has
	// started yet.
	pending bool

	header                                     *ui.TextBlock
	temp, cond, wind, humidity, daylight, seen *ui.TextBlock
	forecast                                   [forecastDays]*ui.TextBlock
}

func NewWeatherPage(c *mfd.Controller, a *ScheduleApp) *WeatherPage {
	p := &WeatherPage{BasePage: mfd.NewBasePage(c, a, "WTHR"), app: a, weather: a.Weather}
	p.Provider = a.Weather
	p.RefreshInterval = weatherRefresh
	d := c.Display

	p.header = p.HeaderLabel("")
	p.temp = ui.NewTextBlock(d, "")
	p.cond = ui.NewTextBlock(d, "")
	p.wind = ui.NewTextBlock(d, "")
	p.humidity = ui.NewTextBlock(d, "")
	p.daylight = ui.NewTextBlock(d, "")
	p.seen = ui.NewTextBlock(d, "")
	p.Panel.Add(p.header, p.temp, p.cond, p.wind, p.humidity, p.daylight, p.seen,
		ui.NewSpacerLine(d), p.HeaderLabel("Forecast"))
	for i := range p.forecast {
		p.forecast[i] = ui.NewTextBlock(d, "")
		p.Panel.Add(p.forecast[i])
	}
	return p
}

func (p *WeatherPage) HandleSelected() {
	p.syncLocation()
	p.BasePage.HandleSelected()
}

// syncLocation publishes the configured location to the fetcher. After a
// change it forces a fetch as soon as the previous one has finished.
func (p *WeatherPage) syncLocation() {
	loc := p.Controller.Options().Location
	if cur, ok := p.app.location.Load(); !ok || cur != loc {
		p.pending = ok
		p.app.location.Store(loc)
	}
	if p.pending && !p.weather.Busy() {
		p.pending = false
		p.weather.Invalidate()
		p.Refresh(p.Controller.Now())
	}
}

func (p *WeatherPage) Arrange() ui.Size {
	p.syncLocation()
	w, ok := p.weather.Data.Load()
	if ok {
		p.show(w)
	} else {
		p.showOffline()
	}
	return p.BasePage.Arrange()
}

func (p *WeatherPage) show(w provider.Weather) {
	p.header.SetText(fmt.Sprintf("%s Weather", w.Location))
	p.temp.SetText(fmt.Sprintf("      Temp: %.0fF (Feels %.0fF)", w.Temperature, w.FeelsLike))
	p.cond.SetText("Conditions: " + w.Conditions)
	p.wind.SetText(fmt.Sprintf("      Wind: %.0f mph", w.WindMPH))
	p.humidity.SetText(fmt.Sprintf("  Humidity: %d%%", w.Humidity))
	p.daylight.SetText(fmt.Sprintf("  Daylight: %s - %s", w.Sunrise.Format(clockFormat), w.Sunset.Format(clockFormat)))
	p.seen.SetText("   Updated: " + w.Observed.Format(clockFormat))
	for i, l := range p.forecast {
		if i >= len(w.Forecast) {
			l.SetText("")
			continue
		}
		f := w.Forecast[i]
		l.SetText(fmt.Sprintf("%-4s %.0f-%.0fF %s", f.Day, f.Low, f.High, f.Conditions))
	}
}

func (p *WeatherPage) showOffline() {
	loc := p.Controller.Options().Location
	p.header.SetText(fmt.Sprintf("%s Weather", loc))
	p.temp.SetText("      Temp: " + offline)
	p.cond.SetText("Conditions: " + offline)
	p.wind.SetText("      Wind: " + offline)
	p.humidity.SetText("  Humidity: " + offline)
	p.daylight.SetText("  Daylight: " + offline)
	p.seen.SetText("   Updated: " + offline)
	for _, l := range p.forecast {
		l.SetText(offline)
	}
}
