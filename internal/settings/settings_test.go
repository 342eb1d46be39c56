package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfd/internal/theme"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "mfd.toml")

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), o)
	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults should be written on first load")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	want := Options{
		ColorScheme: "Amber",
		Scanline:    true,
		Interlace:   true,
		ShowFPS:     true,
		Location:    "90210",
		FPS:         60,
	}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, theme.Amber, got.Scheme())
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	require.NoError(t, os.WriteFile(path, []byte("color_scheme = \"cyan\"\nfps = 0\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Cyan", got.ColorScheme)
	assert.Equal(t, DefaultFPS, got.FPS)
	assert.Equal(t, Defaults().Location, got.Location)
}

func TestLoad_UnknownSchemeFallsBack(t *testing.T) {
	o := Options{ColorScheme: "Plaid", FPS: 500}.Normalize()
	assert.Equal(t, theme.Default.Name, o.ColorScheme)
	assert.Equal(t, MaxFPS, o.FPS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	require.NoError(t, Save(path, Defaults()))
	t.Setenv("MFD_COLOR_SCHEME", "Red")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Red", got.ColorScheme)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "read settings")
}

func TestStore_QueueLatestWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	s := NewStore(path, nil)

	a := Defaults()
	a.ColorScheme = "Blue"
	b := Defaults()
	b.ColorScheme = "White"
	s.Queue(a)
	s.Queue(b)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-s.Saved():
	case <-time.After(2 * time.Second):
		t.Fatal("store did not save")
	}
	cancel()
	<-done

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "White", got.ColorScheme)
}

func TestStore_FlushesOnShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mfd.toml")
	s := NewStore(path, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := Defaults()
	o.ShowFPS = true
	s.Queue(o)
	s.Run(ctx)

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.ShowFPS)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mfd.toml")
	require.NoError(t, Save(path, Defaults()))

	w := NewWatcher(path, Defaults(), nil)
	w.Debounce = 10 * time.Millisecond
	_, v0 := w.Current()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	o := Defaults()
	o.ColorScheme = "Amber"
	require.NoError(t, Save(path, o))

	require.Eventually(t, func() bool {
		cur, v := w.Current()
		return v > v0 && cur.ColorScheme == "Amber"
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errc)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mfd.toml")
	require.NoError(t, Save(path, Defaults()))

	w := NewWatcher(path, Defaults(), nil)
	w.Debounce = 10 * time.Millisecond
	_, v0 := w.Current()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)

	_, v := w.Current()
	assert.Equal(t, v0, v)
}
