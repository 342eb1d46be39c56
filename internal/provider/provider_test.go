package provider

import (
	"context"
	"errors"
	"math"
	"os"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_LoadBeforeStore(t *testing.T) {
	var s Snapshot[int]
	v, ok := s.Load()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.True(t, s.UpdatedAt().IsZero())

	s.Store(5)
	v, ok = s.Load()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.False(t, s.UpdatedAt().IsZero())
}

func TestAsync_UpdateReturnsWhileFetchBlocks(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	a := NewAsync(context.Background(), "slow", time.Minute, func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "done", nil
	}, nil)

	now := time.Unix(1000, 0)
	done := make(chan struct{})
	go func() {
		a.Update(now)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Update blocked on fetch")
	}

	// a second update while the first is running must not start another fetch
	a.Update(now.Add(2 * time.Minute))
	assert.True(t, a.Busy())

	close(release)
	require.Eventually(t, func() bool { return !a.Busy() }, time.Second, time.Millisecond)
	v, ok := a.Data.Load()
	assert.True(t, ok)
	assert.Equal(t, "done", v)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAsync_RespectsInterval(t *testing.T) {
	var calls atomic.Int32
	a := NewAsync(context.Background(), "count", time.Minute, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}, nil)

	now := time.Unix(1000, 0)
	a.Update(now)
	require.Eventually(t, func() bool { return a.Fetches() == 1 && !a.Busy() }, time.Second, time.Millisecond)

	a.Update(now.Add(30 * time.Second))
	assert.Equal(t, int32(1), calls.Load())

	a.Update(now.Add(61 * time.Second))
	require.Eventually(t, func() bool { return a.Fetches() == 2 && !a.Busy() }, time.Second, time.Millisecond)
	v, _ := a.Data.Load()
	assert.Equal(t, 2, v)
}

func TestAsync_ErrorKeepsPreviousValue(t *testing.T) {
	fail := atomic.Bool{}
	a := NewAsync(context.Background(), "flaky", 0, func(ctx context.Context) (int, error) {
		if fail.Load() {
			return 0, errors.New("boom")
		}
		return 42, nil
	}, nil)

	a.Update(time.Unix(1, 0))
	require.Eventually(t, func() bool { return a.Fetches() == 1 && !a.Busy() }, time.Second, time.Millisecond)
	fail.Store(true)
	a.Update(time.Unix(2, 0))
	require.Eventually(t, func() bool { return a.Fetches() == 2 && !a.Busy() }, time.Second, time.Millisecond)

	v, ok := a.Data.Load()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.EqualError(t, a.Err(), "boom")
}

func TestAsync_RecoversPanickingFetch(t *testing.T) {
	a := NewAsync(context.Background(), "panics", 0, func(ctx context.Context) (int, error) {
		panic("bad")
	}, nil)

	a.Update(time.Unix(1, 0))
	require.Eventually(t, func() bool { return a.Err() != nil && !a.Busy() }, time.Second, time.Millisecond)
	_, ok := a.Data.Load()
	assert.False(t, ok)
	assert.Equal(t, int64(1), a.Fetches())
	assert.ErrorContains(t, a.Err(), "fetch panicked")
}

func TestClock(t *testing.T) {
	c := NewClock(time.UTC)
	assert.True(t, c.Now().IsZero())

	at := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	c.Update(at)
	assert.True(t, at.Equal(c.Now()))
	assert.Equal(t, 12, c.UTC().Hour())
}

func fakeReader() *SystemReader {
	return &SystemReader{
		Host: func(ctx context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{Hostname: "pi", Platform: "debian", PlatformVersion: "12", Uptime: 90}, nil
		},
		Load: func(ctx context.Context) (*load.AvgStat, error) {
			return &load.AvgStat{Load1: 0.5, Load5: 0.25, Load15: 0.1}, nil
		},
		Memory: func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{Total: 8000, Available: 2000}, nil
		},
	}
}

func TestSystemReader_Read(t *testing.T) {
	s, err := fakeReader().Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pi", s.Hostname)
	assert.Equal(t, "debian 12", s.Platform)
	assert.Equal(t, 90*time.Second, s.Uptime)
	assert.InDelta(t, 0.5, s.Load1, 1e-9)
	assert.InDelta(t, 0.1, s.Load15, 1e-9)
	assert.Equal(t, uint64(8000), s.MemTotal)
	assert.InDelta(t, 75.0, s.MemUsedPercent(), 1e-9)
}

func TestSystemReader_UnreadableFiguresLeaveZeros(t *testing.T) {
	r := fakeReader()
	r.Load = func(ctx context.Context) (*load.AvgStat, error) { return nil, errors.New("no load") }
	r.Memory = func(ctx context.Context) (*mem.VirtualMemoryStat, error) { return nil, errors.New("no mem") }

	s, err := r.Read(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.Load1)
	assert.Zero(t, s.MemTotal)
	assert.Zero(t, s.MemUsedPercent())
}

func TestSystemReader_HostError(t *testing.T) {
	r := fakeReader()
	r.Host = func(ctx context.Context) (*host.InfoStat, error) { return nil, errors.New("no host") }
	_, err := r.Read(context.Background())
	assert.ErrorContains(t, err, "host info")
}

func TestSystemReader_ReadsThisHost(t *testing.T) {
	s, err := NewSystemReader().Read(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, s.Hostname)
	assert.Positive(t, s.CPUs)
}

func TestHostProcesses_FindsSelf(t *testing.T) {
	self := int32(os.Getpid())
	ctx := context.Background()

	info, err := HostProcesses{}.Get(ctx, self)
	require.NoError(t, err)
	assert.Equal(t, self, info.PID)
	assert.NotEmpty(t, info.Name)

	list, err := HostProcesses{}.List(ctx)
	require.NoError(t, err)
	assert.True(t, slices.ContainsFunc(list, func(p ProcessInfo) bool { return p.PID == self }))
}

func TestHostProcesses_GoneProcess(t *testing.T) {
	_, err := HostProcesses{}.Get(context.Background(), math.MaxInt32)
	assert.Error(t, err)
}

func TestWeather_OfflineSourceReportsError(t *testing.T) {
	w := NewWeather(context.Background(), nil, time.Minute, func() string { return "12345" }, nil)
	w.Update(time.Unix(1, 0))
	require.Eventually(t, func() bool { return w.Fetches() == 1 && !w.Busy() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, w.Err(), ErrOffline)
}

func TestWeather_PassesCurrentLocation(t *testing.T) {
	var got atomic.Value
	src := WeatherSourceFunc(func(ctx context.Context, loc string) (Weather, error) {
		got.Store(loc)
		return Weather{Location: loc}, nil
	})
	loc := "43035"
	w := NewWeather(context.Background(), src, 0, func() string { return loc }, nil)
	w.Update(time.Unix(1, 0))
	require.Eventually(t, func() bool { return w.Fetches() == 1 && !w.Busy() }, time.Second, time.Millisecond)
	assert.Equal(t, "43035", got.Load())
}
