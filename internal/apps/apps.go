// Package apps holds the applications shown on the display: scheduling,
// navigation and system, plus reserved slots for social and media.
package apps

import (
	"context"
	"log/slog"
	"time"

	"mfd/internal/mfd"
	"mfd/internal/provider"
)

const (
	weatherRefresh = 5 * time.Minute
	systemRefresh  = 2 * time.Second
)

// Deps are the data sources the applications read from.
type Deps struct {
	// Weather defaults to an offline source.
	Weather provider.WeatherSource
	// System defaults to reading this host.
	System *provider.SystemReader
	// Processes defaults to this host's process table.
	Processes provider.ProcessSource
	Version   string
	Logger    *slog.Logger
}

// Build creates the top-row applications in slot order and returns the
// index of the one to show at startup. ctx bounds background fetches.
func Build(ctx context.Context, c *mfd.Controller, deps Deps) ([]mfd.Application, int) {
	if deps.System == nil {
		deps.System = provider.NewSystemReader()
	}
	if deps.Processes == nil {
		deps.Processes = provider.HostProcesses{}
	}
	if deps.Logger == nil {
		deps.Logger = c.Logger()
	}
	apps := []mfd.Application{
		NewScheduleApp(ctx, c, deps),
		NewNavApp(c),
		&mfd.Placeholder{Label: "SOC"},
		&mfd.Placeholder{Label: "MED"},
		NewSystemApp(ctx, c, deps),
	}
	return apps, len(apps) - 1
}
