package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBrightnessctl installs a shell-script brightnessctl on PATH that prints
// canned values for `g` and `m` and records `s` invocations to a file.
func stubBrightnessctl(t *testing.T, current, max string) string {
	t.Helper()
	dir := t.TempDir()
	setLog := filepath.Join(dir, "set.log")
	script := "#!/bin/sh\n" +
		"case \"$1\" in\n" +
		"g) printf '" + current + "\\n' ;;\n" +
		"m) printf '" + max + "\\n' ;;\n" +
		"s) printf '%s\\n' \"$2\" >> '" + setLog + "' ;;\n" +
		"esac\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightnessctl"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return setLog
}

func TestBrightnessctlCurrent(t *testing.T) {
	tests := []struct {
		name         string
		current, max string
		want         int
	}{
		{name: "mid range", current: "480", max: "960", want: 50},
		{name: "rounds down", current: "799", max: "1000", want: 79},
		{name: "full", current: "960", max: "960", want: 100},
		{name: "off", current: "0", max: "960", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBrightnessctl(t, tt.current, tt.max)
			got, err := NewBrightnessctl().Current()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrightnessctlCurrentBadOutput(t *testing.T) {
	tests := []struct {
		name         string
		current, max string
	}{
		{name: "non-integer current", current: "oops", max: "960"},
		{name: "non-integer max", current: "480", max: "oops"},
		{name: "zero max", current: "480", max: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBrightnessctl(t, tt.current, tt.max)
			_, err := NewBrightnessctl().Current()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadOutput)
		})
	}
}

func TestBrightnessctlSet(t *testing.T) {
	setLog := stubBrightnessctl(t, "480", "960")
	require.NoError(t, NewBrightnessctl().Set(75))

	data, err := os.ReadFile(setLog)
	require.NoError(t, err)
	assert.Equal(t, "75%\n", string(data))
}
