// SPDX-License-Identifier: MIT

// Command lvplot synthesizes recovery curves and renders the benchmark
// study charts.
//
//	lvplot curve --start 8 --end 4.3268 --steps 6 --shape exponential
//	lvplot render --out charts --format png --locale es
//	lvplot summary --data study.yaml
//	lvplot shapes
//	lvplot dataset > study.yaml
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log().Error("command failed", "command", root.Name(), "error", err)
		return 1
	}

	return 0
}

// fallbackLogger is used before configuration has been loaded.
func fallbackLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}
