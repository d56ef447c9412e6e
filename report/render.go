// SPDX-License-Identifier: MIT
// Package: lvplot/report
//
// render.go — concurrent figure output.
//
// Contract:
//   - dir is created (0o755) if missing; files are <dir>/<Name><ext>.
//   - Figures render in parallel, bounded by GOMAXPROCS; the first failure
//     cancels the rest and is returned.
//   - Returned paths follow figure order, not completion order.

package report

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/katalvlaran/lvplot/chart"
	"golang.org/x/sync/errgroup"
)

const (
	opRenderAll = "RenderAll"
	dirPerm     = 0o755
	filePerm    = 0o644
)

// RenderAll writes every figure into dir and returns the written paths.
// A nil logger discards log output.
func RenderAll(ctx context.Context, dir string, figures []Figure, theme chart.Theme, format chart.Format, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := theme.Validate(); err != nil {
		return nil, reportErrorf(opRenderAll, err, "theme")
	}

	paths := make([]string, len(figures))
	seen := make(map[string]struct{}, len(figures))
	for i, f := range figures {
		if _, dup := seen[f.Name]; dup || f.Name == "" {
			return nil, reportErrorf(opRenderAll, ErrDuplicateFigure, "%q", f.Name)
		}
		seen[f.Name] = struct{}{}
		paths[i] = filepath.Join(dir, f.Name+format.Ext())
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, reportErrorf(opRenderAll, err, "%s", dir)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range figures {
		f := f
		path := paths[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := f.Render(&buf, theme, format); err != nil {
				logger.Error("figure failed", "figure", f.Name, "error", err)
				return reportErrorf(opRenderAll, err, "%s", f.Name)
			}
			if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
				return reportErrorf(opRenderAll, err, "%s", path)
			}

			logger.Info("figure written", "figure", f.Name, "path", path, "bytes", buf.Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("render complete", "figures", len(figures), "dir", dir, "format", format.String(), "elapsed", time.Since(start))

	return paths, nil
}
