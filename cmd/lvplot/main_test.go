package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exec runs one command line with a clean LVPLOT_ environment.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	for _, kv := range os.Environ() {
		if k, _, _ := strings.Cut(kv, "="); strings.HasPrefix(k, "LVPLOT_") {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)

	return out.String(), errOut.String(), code
}

func TestCurve_JSON(t *testing.T) {
	out, _, code := runCLI(t, "curve", "--start=0", "--end=10", "--steps=5", "--shape=linear", "--json")
	require.Equal(t, 0, code)

	var c curve.Curve
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.Steps)
	require.Len(t, c.Values, 6)
	for i, want := range []float64{0, 2, 4, 6, 8, 10} {
		assert.InDelta(t, want, c.Values[i], 1e-12)
	}
}

func TestCurve_Table(t *testing.T) {
	out, _, code := runCLI(t, "curve", "--start=8", "--end=4.326799", "--steps=6")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "step")
	assert.Contains(t, out, "8.000000")
	assert.Contains(t, out, "4.326799")
}

func TestCurve_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"zero steps", []string{"curve", "--start=1", "--end=0", "--steps=0"}, "steps"},
		{"unknown shape", []string{"curve", "--start=1", "--end=0", "--steps=3", "--shape=cubic"}, "shape"},
		{"missing flag", []string{"curve", "--start=1", "--end=0"}, "steps"},
		{"unknown command", []string{"plot"}, "unknown command"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errOut, code := runCLI(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "command failed")
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestShapes(t *testing.T) {
	out, _, code := runCLI(t, "shapes")
	require.Equal(t, 0, code)
	assert.Equal(t, "exponential\nlinear\nsigmoid\n", out)
}

func TestRender_WritesEveryFigure(t *testing.T) {
	dir := t.TempDir()
	out, _, code := runCLI(t, "render", "--out", dir, "--format", "svg", "--log-level", "error")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 12)
	for _, p := range lines {
		assert.True(t, strings.HasPrefix(p, dir), p)
		assert.FileExists(t, p)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 12)
	assert.FileExists(t, filepath.Join(dir, "recovery_heatmap.svg"))
}

func TestRender_BadFormat(t *testing.T) {
	_, errOut, code := runCLI(t, "render", "--out", t.TempDir(), "--format", "gif")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "gif")
}

func TestSummary_Locale(t *testing.T) {
	en, _, code := runCLI(t, "summary")
	require.Equal(t, 0, code)
	assert.Contains(t, en, "Recovery curve analysis")
	assert.Contains(t, en, "FireFly 30%")

	es, _, code := runCLI(t, "summary", "--locale", "es")
	require.Equal(t, 0, code)
	assert.Contains(t, es, "Análisis de las curvas de recuperación")
	assert.Contains(t, es, "Genetic Diploid")
}

func TestDataset_RoundTripsThroughSummary(t *testing.T) {
	doc, _, code := runCLI(t, "dataset")
	require.Equal(t, 0, code)
	assert.Contains(t, doc, "algorithms:")

	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, code := runCLI(t, "summary", "--data", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "PSO Divide")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lvplot.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("locale: es\nlog_level: warn\n"), 0o600))

	out, _, code := runCLI(t, "summary", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Análisis")

	_, errOut, code := runCLI(t, "summary", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing.yaml")
}
