package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ErrNoProcess is returned by ProcessSource.Get for a pid that is gone.
var ErrNoProcess = errors.New("no such process")

// ProcessInfo describes one running process.
type ProcessInfo struct {
	PID        int32
	Parent     int32
	Name       string
	Username   string
	Status     string
	Cmdline    string
	CPUPercent float64
	MemPercent float32
	RSS        uint64
	VMS        uint64
	Threads    int32
	Created    time.Time
}

// ProcessSource lists processes. Implementations may block.
type ProcessSource interface {
	List(ctx context.Context) ([]ProcessInfo, error)
	Get(ctx context.Context, pid int32) (ProcessInfo, error)
}

// HostProcesses reads the processes of this machine through gopsutil.
type HostProcesses struct{}

// List skips processes that exit or deny access while being read.
func (HostProcesses) List(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		info, err := describe(ctx, p)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

func (HostProcesses) Get(ctx context.Context, pid int32) (ProcessInfo, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return ProcessInfo{PID: pid}, ErrNoProcess
		}
		return ProcessInfo{PID: pid}, fmt.Errorf("process %d: %w", pid, err)
	}
	return describe(ctx, p)
}

// describe fails only when the name is unreadable; other fields are best
// effort.
func describe(ctx context.Context, p *process.Process) (ProcessInfo, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ProcessInfo{PID: p.Pid}, fmt.Errorf("process %d name: %w", p.Pid, err)
	}
	info := ProcessInfo{PID: p.Pid, Name: name}
	info.Parent, _ = p.PpidWithContext(ctx)
	info.Username, _ = p.UsernameWithContext(ctx)
	if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
		info.Status = st[0]
	}
	info.Cmdline, _ = p.CmdlineWithContext(ctx)
	info.CPUPercent, _ = p.CPUPercentWithContext(ctx)
	info.MemPercent, _ = p.MemoryPercentWithContext(ctx)
	if m, err := p.MemoryInfoWithContext(ctx); err == nil {
		info.RSS, info.VMS = m.RSS, m.VMS
	}
	info.Threads, _ = p.NumThreadsWithContext(ctx)
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		info.Created = time.UnixMilli(ms)
	}
	return info, nil
}
