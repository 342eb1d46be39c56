package provider

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemStats is a point-in-time view of the host.
type SystemStats struct {
	Hostname   string
	OS         string
	Platform   string
	Arch       string
	Uptime     time.Duration
	CPUs       int
	Load1      float64
	Load5      float64
	Load15     float64
	MemTotal   uint64
	MemAvail   uint64
	Goroutines int
}

// MemUsedPercent returns memory in use as a percentage of the total.
func (s SystemStats) MemUsedPercent() float64 {
	if s.MemTotal == 0 {
		return 0
	}
	return 100 * float64(s.MemTotal-min(s.MemAvail, s.MemTotal)) / float64(s.MemTotal)
}

// LoadPercent scales the one minute load average by the CPU count.
func (s SystemStats) LoadPercent() float64 {
	if s.CPUs <= 0 {
		return 0
	}
	return 100 * s.Load1 / float64(s.CPUs)
}

// SystemReader collects host statistics. The function fields default to
// gopsutil and are replaced in tests.
type SystemReader struct {
	Host   func(ctx context.Context) (*host.InfoStat, error)
	Load   func(ctx context.Context) (*load.AvgStat, error)
	Memory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

func NewSystemReader() *SystemReader {
	return &SystemReader{
		Host:   host.InfoWithContext,
		Load:   load.AvgWithContext,
		Memory: mem.VirtualMemoryWithContext,
	}
}

// Read collects the current stats. Load and memory figures that cannot be
// read stay zero; only missing host information is an error.
func (r *SystemReader) Read(ctx context.Context) (SystemStats, error) {
	s := SystemStats{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		CPUs:       runtime.NumCPU(),
		Goroutines: runtime.NumGoroutine(),
	}
	if err := ctx.Err(); err != nil {
		return s, err
	}
	info, err := r.Host(ctx)
	if err != nil {
		return s, fmt.Errorf("host info: %w", err)
	}
	s.Hostname = info.Hostname
	s.Platform = info.Platform
	if info.PlatformVersion != "" {
		s.Platform += " " + info.PlatformVersion
	}
	s.Uptime = time.Duration(info.Uptime) * time.Second

	if r.Load != nil {
		if avg, err := r.Load(ctx); err == nil {
			s.Load1, s.Load5, s.Load15 = avg.Load1, avg.Load5, avg.Load15
		}
	}
	if r.Memory != nil {
		if vm, err := r.Memory(ctx); err == nil {
			s.MemTotal, s.MemAvail = vm.Total, vm.Available
		}
	}
	return s, nil
}
