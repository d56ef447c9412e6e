package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvplot/chart"
	"github.com/katalvlaran/lvplot/config"
	"github.com/katalvlaran/lvplot/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "charts", cfg.OutDir)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 800, cfg.Height)

	f, err := cfg.ChartFormat()
	require.NoError(t, err)
	assert.Equal(t, chart.SVG, f)

	s, err := cfg.CurveShape()
	require.NoError(t, err)
	assert.Equal(t, curve.Exponential, s)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadWith_Layers(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "format: png\nlocale: es\nwidth: 640\nshape: linear\n")
	cfg, err := config.LoadWith(path, map[string]string{
		"LVPLOT_WIDTH":     "900",
		"LVPLOT_OUT_DIR":   "out",
		"LVPLOT_LOG_LEVEL": "debug",
		"UNRELATED":        "x",
	})
	require.NoError(t, err)

	assert.Equal(t, "png", cfg.Format, "from file")
	assert.Equal(t, "es", cfg.Locale, "from file")
	assert.Equal(t, "linear", cfg.Shape, "from file")
	assert.Equal(t, 900, cfg.Width, "env beats file")
	assert.Equal(t, "out", cfg.OutDir, "env beats default")
	assert.Equal(t, 800, cfg.Height, "default kept")

	th := cfg.Theme()
	assert.Equal(t, 900, th.Width)
	assert.Equal(t, 800, th.Height)
}

func TestLoadWith_NoFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWith("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	empty := writeFile(t, "")
	cfg, err = config.LoadWith(empty, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadWith_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"unknown key", "colour: red\n", nil},
		{"bad format", "format: pdf\n", nil},
		{"bad shape", "shape: cubic\n", nil},
		{"bad level", "log_level: loud\n", nil},
		{"zero width", "width: 0\n", nil},
		{"empty out dir", "out_dir: \"\"\n", nil},
		{"env not a number", "", map[string]string{"LVPLOT_HEIGHT": "tall"}},
		{"env empty locale", "locale: \" \"\n", nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			environ := tc.env
			if environ == nil {
				environ = map[string]string{}
			}
			_, err := config.LoadWith(writeFile(t, tc.file), environ)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.LoadWith(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "warn"
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")
}

func TestValidate_NamesYAMLField(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Height = 20_000
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "height")
	assert.Contains(t, err.Error(), "lte")

	cfg = config.Default()
	cfg.OutDir = "\t"
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "out_dir")
}
