package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_RoundTrip(t *testing.T) {
	for _, name := range Names() {
		first, ok := Lookup(name)
		require.True(t, ok, name)
		second, ok := Lookup(first.Name)
		require.True(t, ok, name)

		assert.Equal(t, first.Background, second.Background)
		assert.Equal(t, first.Foreground, second.Foreground)
		assert.Equal(t, first.Highlight, second.Highlight)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	s, ok := Lookup("  aMbEr ")
	require.True(t, ok)
	assert.Equal(t, Amber, s)

	_, ok = Lookup("magenta")
	assert.False(t, ok)
	assert.Equal(t, Default, LookupOrDefault("magenta"))
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"Amber", "Blue", "Cyan", "Green", "Red", "White"}, Names())
}

func TestFocusColor(t *testing.T) {
	assert.Equal(t, Green.Highlight, Green.FocusColor(true))
	assert.Equal(t, Green.Foreground, Green.FocusColor(false))
}

func TestColor_Blend(t *testing.T) {
	assert.Equal(t, RGB(10, 20, 30), RGB(10, 20, 30).Blend(RGB(200, 200, 200)))
	assert.Equal(t, RGB(200, 200, 200), RGB(10, 20, 30).WithAlpha(0).Blend(RGB(200, 200, 200)))
	assert.Equal(t, "#00aa00", Green.Foreground.Hex())
}
