package report_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvplot/chart"
	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/i18n"
	"github.com/katalvlaran/lvplot/report"
	"github.com/katalvlaran/lvplot/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localizer(t *testing.T, lang string) *i18n.Localizer {
	t.Helper()
	cat, err := i18n.Load()
	require.NoError(t, err)

	return cat.Localizer(lang)
}

func TestFigures_DefaultPlan(t *testing.T) {
	t.Parallel()

	figs, err := report.Figures(study.Default(), localizer(t, "en"), curve.Exponential)
	require.NoError(t, err)

	names := make([]string, len(figs))
	for i, f := range figs {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"recovery_curves_benchmark_1",
		"recovery_curves_benchmark_2",
		"recovery_curves_benchmark_3",
		"recovery_curves_benchmark_4",
		"recovery_curves_benchmark_5",
		"recovery_heatmap",
		"best_values_benchmark_1",
		"best_values_benchmark_2",
		"best_values_benchmark_3",
		"best_values_benchmark_4",
		"best_values_benchmark_5",
		"recovery_iterations",
	}, names)
	assert.Equal(t, "Recovery Curves - Benchmark 1", figs[0].Title)
}

func TestFigures_FixedLimitsStayOnCanvas(t *testing.T) {
	t.Parallel()

	figs, err := report.Figures(study.Default(), localizer(t, "en"), curve.Exponential)
	require.NoError(t, err)
	require.Equal(t, "recovery_curves_benchmark_1", figs[0].Name)

	theme := chart.DefaultTheme()
	var buf bytes.Buffer
	require.NoError(t, figs[0].Render(&buf, theme, chart.SVG))

	points := regexp.MustCompile(`[ML] (-?\d+) (-?\d+)`).FindAllStringSubmatch(buf.String(), -1)
	require.NotEmpty(t, points)
	for _, m := range points {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		assert.True(t, x >= 0 && x <= theme.Width && y >= 0 && y <= theme.Height, "path point %d,%d", x, y)
	}
}

func TestFigures_Spanish(t *testing.T) {
	t.Parallel()

	figs, err := report.Figures(study.Default(), localizer(t, "es"), curve.Sigmoid)
	require.NoError(t, err)
	assert.Equal(t, "Curvas de Recuperación - Benchmark 5", figs[4].Title)
}

func TestFigures_Errors(t *testing.T) {
	t.Parallel()

	loc := localizer(t, "en")
	_, err := report.Figures(nil, loc, curve.Linear)
	assert.ErrorIs(t, err, report.ErrNilStudy)
	_, err = report.Figures(study.Default(), nil, curve.Linear)
	assert.ErrorIs(t, err, report.ErrNilLocalizer)
	_, err = report.Figures(study.Default(), loc, curve.Shape(-1))
	assert.ErrorIs(t, err, curve.ErrUnknownShape)
}

func TestScaleAndFormatPerBenchmark(t *testing.T) {
	t.Parallel()

	st := study.Default()
	wantScale := []chart.Scale{chart.ScaleLinear, chart.ScaleLog, chart.ScaleLinear, chart.ScaleLinear, chart.ScaleInverted}
	wantFormat := []string{"%.3f", "%.2e", "%.3f", "%.3f", "%.1f"}
	for b := range st.Benchmarks() {
		col, err := st.BestColumn(b)
		require.NoError(t, err)
		assert.Equal(t, wantScale[b], report.ScaleFor(col), "scale of benchmark %d", b+1)
		assert.Equal(t, wantFormat[b], report.BarFormat(col), "format of benchmark %d", b+1)
	}
	assert.Equal(t, chart.ScaleLinear, report.ScaleFor(nil))
}

func TestSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "benchmark_1", report.Slug("Benchmark 1"))
	assert.Equal(t, "firefly_30", report.Slug("  FireFly 30% "))
	assert.Equal(t, "a_b", report.Slug("a--b"))
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	figs, err := report.Figures(study.Default(), localizer(t, "en"), curve.Exponential)
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := report.RenderAll(context.Background(), dir, figs, chart.DefaultTheme(), chart.SVG, logger)
	require.NoError(t, err)
	require.Len(t, paths, len(figs))

	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, figs[i].Name+".svg"), p)
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg", p)
	}
	assert.Contains(t, logs.String(), "figure written")
}

func TestRenderAll_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ok := func(w io.Writer, _ chart.Theme, _ chart.Format) error {
		_, err := w.Write([]byte("<svg/>"))
		return err
	}
	failing := func(io.Writer, chart.Theme, chart.Format) error { return boom }

	_, err := report.RenderAll(context.Background(), t.TempDir(), []report.Figure{
		{Name: "a", Render: ok}, {Name: "b", Render: failing},
	}, chart.DefaultTheme(), chart.SVG, nil)
	assert.ErrorIs(t, err, boom)

	_, err = report.RenderAll(context.Background(), t.TempDir(), []report.Figure{
		{Name: "a", Render: ok}, {Name: "a", Render: ok},
	}, chart.DefaultTheme(), chart.SVG, nil)
	assert.ErrorIs(t, err, report.ErrDuplicateFigure)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = report.RenderAll(ctx, t.TempDir(), []report.Figure{{Name: "a", Render: ok}}, chart.DefaultTheme(), chart.SVG, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = report.RenderAll(context.Background(), t.TempDir(), nil, chart.Theme{}, chart.SVG, nil)
	assert.ErrorIs(t, err, chart.ErrBadTheme)
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	var en bytes.Buffer
	require.NoError(t, report.WriteSummary(&en, study.Default(), localizer(t, "en")))
	out := en.String()
	assert.Contains(t, out, "Recovery curve analysis")
	assert.Contains(t, out, "Average recovery iterations")
	assert.Contains(t, out, "FireFly 30%")
	assert.Contains(t, out, "5.40")
	assert.Contains(t, out, "2 - 12")

	var es bytes.Buffer
	require.NoError(t, report.WriteSummary(&es, study.Default(), localizer(t, "es")))
	assert.Contains(t, es.String(), "Rango de iteraciones")
	assert.Contains(t, es.String(), "5,40")

	assert.ErrorIs(t, report.WriteSummary(&es, nil, localizer(t, "en")), report.ErrNilStudy)
}
