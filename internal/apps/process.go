package apps

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"mfd/internal/mfd"
	"mfd/internal/provider"
	"mfd/internal/ui"
	"mfd/internal/ui/textutil"
)

const (
	processRefresh       = 15 * time.Second
	processDetailRefresh = time.Second
	processNameWidth     = 20
)

// ProcessSort is the order of the process list.
type ProcessSort int

const (
	SortByPID ProcessSort = iota
	SortByName
	SortByCPU
	SortByMemory
)

var processSortNames = [...]string{"PID", "Name", "CPU", "MEM"}

func (s ProcessSort) String() string { return processSortNames[s] }

// Next cycles PID, Name, CPU, MEM and back.
func (s ProcessSort) Next() ProcessSort {
	return (s + 1) % ProcessSort(len(processSortNames))
}

// SortProcesses orders procs in place. CPU and memory sort busiest first;
// ties fall back to pid.
func SortProcesses(procs []provider.ProcessInfo, by ProcessSort) {
	slices.SortFunc(procs, func(a, b provider.ProcessInfo) int {
		var c int
		switch by {
		case SortByName:
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByCPU:
			c = cmp.Compare(b.CPUPercent, a.CPUPercent)
		case SortByMemory:
			c = cmp.Compare(b.MemPercent, a.MemPercent)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})
}

func processRow(p provider.ProcessInfo) string {
	return fmt.Sprintf("%7d %s %5.1f%% %5.1f%%",
		p.PID, textutil.PadRight(p.Name, processNameWidth), p.CPUPercent, p.MemPercent)
}

// ProcessPage lists the busiest processes that fit on screen. Enter opens
// a detail page; pressing PROC again changes the sort order.
type ProcessPage struct {
	*mfd.BasePage
	app  *SystemApp
	Sort ProcessSort

	header    *ui.TextBlock
	list      *ui.StackPanel
	builtAt   time.Time
	builtSort ProcessSort
}

func newProcessPage(c *mfd.Controller, a *SystemApp) *ProcessPage {
	p := &ProcessPage{BasePage: mfd.NewBasePage(c, a, "PROC"), app: a}
	p.Provider = a.Processes
	p.RefreshInterval = processRefresh
	p.header = p.HeaderLabel("Processes (%d) by %s")
	p.list = ui.NewStackPanel(c.Display, ui.Vertical)
	p.list.Spacing = 0
	p.Panel.Add(p.header, p.list)
	return p
}

func (p *ProcessPage) HandleReselected() {
	p.Sort = p.Sort.Next()
}

// Items returns the rows currently on screen.
func (p *ProcessPage) Items() []*ui.TextMenuItem {
	var out []*ui.TextMenuItem
	for _, w := range p.list.Children() {
		if m, ok := w.(*ui.TextMenuItem); ok {
			out = append(out, m)
		}
	}
	return out
}

func (p *ProcessPage) Arrange() ui.Size {
	procs, ok := p.app.Processes.Data.Load()
	switch {
	case ok:
		p.Status = ""
		at := p.app.Processes.Data.UpdatedAt()
		if !at.Equal(p.builtAt) || p.Sort != p.builtSort {
			p.rebuild(procs)
			p.builtAt, p.builtSort = at, p.Sort
		}
	case p.app.Processes.Err() != nil:
		p.Status = "NO DATA"
	default:
		p.Status = "Loading"
	}
	return p.BasePage.Arrange()
}

// rebuild replaces the rows, keeping focus on the same pid when it is
// still listed.
func (p *ProcessPage) rebuild(procs []provider.ProcessInfo) {
	procs = slices.Clone(procs)
	SortProcesses(procs, p.Sort)
	p.header.Args = []any{len(procs), p.Sort}

	keep := int32(-1)
	if m, ok := p.FocusedWidget().(*ui.TextMenuItem); ok {
		if info, ok := m.Data.(provider.ProcessInfo); ok {
			keep = info.PID
		}
	}
	lh := p.Display.LineHeight()
	rows := max((p.Display.ContentRect().H-lh-p.Display.PaddingY)/lh, 1)

	p.list.Clear()
	var refocus ui.Focusable
	for _, info := range procs[:min(rows, len(procs))] {
		item := ui.NewTextMenuItem(p.Display, p, processRow(info), info)
		p.list.Add(item)
		if info.PID == keep {
			refocus = item
		}
	}
	switch {
	case refocus != nil:
		p.SetFocus(refocus)
	case p.FocusedWidget() == nil:
		p.AdvanceFocus(1)
	}
}

func (p *ProcessPage) HandleControlStateChanged(w ui.Widget) {
	item, ok := w.(*ui.TextMenuItem)
	if !ok {
		return
	}
	info, ok := item.Data.(provider.ProcessInfo)
	if !ok {
		return
	}
	p.Controller.Logger().Debug("open process", "pid", info.PID, "name", info.Name)
	p.app.Show(newProcessDetailPage(p.Controller, p.app, p, info))
}

// ProcessDetailPage follows one process. It has no button; backspace
// returns to the list.
type ProcessDetailPage struct {
	*mfd.BasePage
	app  *SystemApp
	back mfd.Page
	PID  int32
	Proc *provider.Async[provider.ProcessInfo]

	header                            *ui.TextBlock
	cpu                               *ui.BarChart
	cpuPct, mem, user, state, threads *ui.TextBlock
	started, cmd                      *ui.TextBlock
	children                          *ui.StackPanel
}

func newProcessDetailPage(c *mfd.Controller, a *SystemApp, back mfd.Page, info provider.ProcessInfo) *ProcessDetailPage {
	p := &ProcessDetailPage{
		BasePage: mfd.NewBasePage(c, a, "INFO"),
		app:      a,
		back:     back,
		PID:      info.PID,
	}
	src, pid := a.processes, info.PID
	p.Proc = provider.NewAsync(a.ctx, fmt.Sprintf("process-%d", pid), processDetailRefresh,
		func(ctx context.Context) (provider.ProcessInfo, error) { return src.Get(ctx, pid) },
		a.logger)
	p.Proc.Data.Store(info)
	p.Provider = p.Proc
	p.RefreshInterval = processDetailRefresh

	d := c.Display
	p.header = p.HeaderLabel("%s (PID: %d)")
	p.cpu = ui.NewBarChart(d, "CPU:", 30)
	p.cpuPct = ui.NewTextBlock(d, "%.1f%%")
	p.mem = ui.NewTextBlock(d, "   Mem: %s RSS / %s VMS")
	p.user = ui.NewTextBlock(d, "  User: %s")
	p.state = ui.NewTextBlock(d, "Status: %s")
	p.threads = ui.NewTextBlock(d, "Threads: %d")
	p.started = ui.NewTextBlock(d, "Started: %s")
	p.cmd = ui.NewTextBlock(d, "")
	p.children = ui.NewStackPanel(d, ui.Vertical)
	p.children.Spacing = 0
	cpuRow := ui.NewStackPanel(d, ui.Horizontal).Add(p.cpu, p.cpuPct)
	p.Panel.Add(
		p.header,
		cpuRow,
		p.mem,
		p.user,
		p.state,
		p.threads,
		p.started,
		p.cmd,
		ui.NewSpacerLine(d),
		p.HeaderLabel("Children"),
		p.children,
	)
	return p
}

// Exited reports whether the last lookup found the process gone.
func (p *ProcessDetailPage) Exited() bool {
	return errors.Is(p.Proc.Err(), provider.ErrNoProcess)
}

func (p *ProcessDetailPage) HandleKey(k ui.Key) bool {
	if k == ui.KeyBackspace {
		p.app.Show(p.back)
		return true
	}
	return p.BasePage.HandleKey(k)
}

func (p *ProcessDetailPage) Arrange() ui.Size {
	info, _ := p.Proc.Data.Load()
	p.header.Args = []any{info.Name, info.PID}
	p.cpu.Value = info.CPUPercent
	p.cpuPct.Args = []any{info.CPUPercent}
	p.mem.Args = []any{humanize.IBytes(info.RSS), humanize.IBytes(info.VMS)}
	p.user.Args = []any{orUnknown(info.Username)}
	status := orUnknown(info.Status)
	if p.Exited() {
		status = "exited"
	}
	p.state.Args = []any{status}
	p.threads.Args = []any{info.Threads}
	started := "unknown"
	if !info.Created.IsZero() {
		started = info.Created.Format(timeFormat)
	}
	p.started.Args = []any{started}
	width := p.Display.ContentRect().W - len("   Cmd: ")
	p.cmd.SetText("   Cmd: " + textutil.Truncate(info.Cmdline, width))

	p.children.Clear()
	kids := p.childProcesses()
	if len(kids) == 0 {
		p.children.Add(ui.NewTextBlock(p.Display, "None"))
	}
	for _, k := range kids {
		p.children.Add(ui.NewTextBlock(p.Display, fmt.Sprintf("%7d %s", k.PID, k.Name)))
	}
	return p.BasePage.Arrange()
}

// childProcesses comes from the last process list rather than a fresh scan.
func (p *ProcessDetailPage) childProcesses() []provider.ProcessInfo {
	all, _ := p.app.Processes.Data.Load()
	var out []provider.ProcessInfo
	for _, info := range all {
		if info.Parent == p.PID && info.PID != p.PID {
			out = append(out, info)
		}
	}
	SortProcesses(out, SortByPID)
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
