package apps

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"mfd/internal/mfd"
	"mfd/internal/provider"
	"mfd/internal/ui"
)

const timeFormat = "15:04:05 Mon Jan 2"

// SystemApp shows information about the host and the display itself.
type SystemApp struct {
	*mfd.BaseApplication
	Stats     *provider.Async[provider.SystemStats]
	Processes *provider.Async[[]provider.ProcessInfo]
	Clock     *provider.Clock

	ctx       context.Context
	processes provider.ProcessSource
	logger    *slog.Logger
}

func NewSystemApp(ctx context.Context, c *mfd.Controller, deps Deps) *SystemApp {
	a := &SystemApp{
		BaseApplication: mfd.NewBaseApplication(c, "SYS"),
		ctx:             ctx,
		processes:       deps.Processes,
		logger:          deps.Logger,
	}
	a.Stats = provider.NewAsync(ctx, "system", systemRefresh, deps.System.Read, deps.Logger)
	a.Processes = provider.NewAsync(ctx, "processes", processRefresh, deps.Processes.List, deps.Logger)
	a.Clock = provider.NewClock(nil)
	a.SetPages(
		newSysInfoPage(c, a, deps.Version),
		newClockPage(c, a),
		newProcessPage(c, a),
		NewSettingsPage(c, a),
		mfd.NewExitPage(c, a),
	)
	a.DefaultPage = 1
	return a
}

type sysInfoPage struct {
	*mfd.BasePage
	stats         *provider.Async[provider.SystemStats]
	host, display *ui.TextBlock
	platform      *ui.TextBlock
	cpu, mem      *ui.BarChart
	load          *ui.TextBlock
	goroutines    *ui.TextBlock
}

func newSysInfoPage(c *mfd.Controller, a *SystemApp, version string) *sysInfoPage {
	p := &sysInfoPage{BasePage: mfd.NewBasePage(c, a, "INFO"), stats: a.Stats}
	p.Provider = a.Stats
	p.RefreshInterval = systemRefresh
	d := c.Display
	p.host = ui.NewTextBlock(d, "Net ID: %s")
	p.platform = ui.NewTextBlock(d, "    OS: %s")
	p.display = ui.NewTextBlock(d, "  Disp: %dx%d")
	p.cpu = ui.NewBarChart(d, "CPU:", 30)
	p.mem = ui.NewBarChart(d, "MEM:", 30)
	p.load = ui.NewTextBlock(d, "Load: %.2f %.2f %.2f")
	p.goroutines = ui.NewTextBlock(d, "Goroutines: %d")
	if version == "" {
		version = "dev"
	}
	p.Panel.Add(
		p.HeaderLabel("MFD Information"),
		ui.NewTextBlock(d, "   Ver: "+version),
		ui.NewTextBlock(d, "    Go: "+runtime.Version()),
		p.display,
		ui.NewSpacerLine(d),
		p.HeaderLabel("System Information"),
		ui.NewTextBlock(d, "System: "+runtime.GOOS+" "+runtime.GOARCH),
		ui.NewTextBlock(d, fmt.Sprintf("  CPUs: %d", runtime.NumCPU())),
		p.host,
		p.platform,
		ui.NewSpacerLine(d),
		p.HeaderLabel("Performance"),
		p.cpu,
		p.mem,
		p.load,
		p.goroutines,
	)
	return p
}

func (p *sysInfoPage) Arrange() ui.Size {
	b := p.Display.Surface.Bounds()
	p.display.Args = []any{b.W, b.H}
	s, ok := p.stats.Data.Load()
	host, platform := "Unknown", "Unknown"
	if ok && s.Hostname != "" {
		host = s.Hostname
	}
	if ok && s.Platform != "" {
		platform = s.Platform
	}
	p.host.Args = []any{host}
	p.platform.Args = []any{platform}
	p.cpu.Value = s.LoadPercent()
	p.mem.Value = s.MemUsedPercent()
	p.load.Args = []any{s.Load1, s.Load5, s.Load15}
	p.goroutines.Args = []any{s.Goroutines}
	return p.BasePage.Arrange()
}

type clockPage struct {
	*mfd.BasePage
	app          *SystemApp
	sysTime, gmt *ui.TextBlock
	alerts       *ui.StackPanel
}

func newClockPage(c *mfd.Controller, a *SystemApp) *clockPage {
	p := &clockPage{BasePage: mfd.NewBasePage(c, a, "TIME"), app: a}
	p.Provider = a.Clock
	d := c.Display
	p.sysTime = ui.NewTextBlock(d, "SYS: %s")
	p.gmt = ui.NewTextBlock(d, "GMT: %s")
	p.alerts = ui.NewStackPanel(d, ui.Vertical)
	p.Panel.Add(
		p.HeaderLabel("Current Time"),
		p.sysTime,
		p.gmt,
		ui.NewSpacerLine(d),
		p.HeaderLabel("Alerts"),
		p.alerts,
	)
	return p
}

// Alerts lists current warnings about the host.
func (p *clockPage) Alerts() []string {
	s, ok := p.app.Stats.Data.Load()
	if !ok {
		return nil
	}
	var out []string
	if s.LoadPercent() >= 90 {
		out = append(out, fmt.Sprintf("High CPU load %.0f%%", s.LoadPercent()))
	}
	if s.MemUsedPercent() >= 90 {
		out = append(out, fmt.Sprintf("Low memory %.0f%% used", s.MemUsedPercent()))
	}
	return out
}

func (p *clockPage) Arrange() ui.Size {
	p.Refresh(p.Controller.Now())
	p.app.Stats.Update(p.Controller.Now())
	now := p.app.Clock.Now()
	p.sysTime.Args = []any{now.Format(timeFormat)}
	p.gmt.Args = []any{now.UTC().Format(timeFormat)}

	p.alerts.Clear()
	alerts := p.Alerts()
	if len(alerts) == 0 {
		p.alerts.Add(ui.NewTextBlock(p.Display, "No Alerts"))
	}
	for _, a := range alerts {
		t := ui.NewTextBlock(p.Display, a)
		t.Highlighted = true
		p.alerts.Add(t)
	}
	return p.BasePage.Arrange()
}
