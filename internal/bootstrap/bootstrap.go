package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"httpcore/internal/config"
	"httpcore/internal/lint"
	"httpcore/internal/policy"
	"httpcore/internal/render"
	"httpcore/internal/version"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Config   config.Config
	Logger   *zap.Logger
	Linter   *lint.Linter
	Renderer *render.Renderer
}

func New(conf config.Config, logger *zap.Logger, out io.Writer) (*Bootstrap, error) {
	sensitive, err := policy.NewSensitive(conf.SensitiveNames())
	if err != nil {
		return nil, fmt.Errorf("HTTPLINT_SENSITIVE: %w", err)
	}

	linter := lint.New(lint.Options{
		Logger:     logger,
		Sensitive:  sensitive,
		StrictText: conf.StrictText(),
	})

	return &Bootstrap{
		Config:   conf,
		Logger:   logger,
		Linter:   linter,
		Renderer: render.New(out, conf.Color()),
	}, nil
}

type result struct {
	report lint.Report
	err    error
}

// Run checks every path concurrently and renders the combined report in
// argument order. With no paths the configured manifest is checked.
func (b *Bootstrap) Run(ctx context.Context, paths []string, dump bool) (lint.Report, error) {
	if len(paths) == 0 {
		paths = []string{b.Config.Manifest()}
	}
	b.Logger.Info("httplint starting",
		zap.String("version", version.GetShortVersion()),
		zap.Strings("paths", paths),
		zap.Bool("dump", dump))

	results := make([]result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i] = result{err: err}
				return
			}
			report, err := b.check(path, dump)
			results[i] = result{report: report, err: err}
		}()
	}
	wg.Wait()

	var report lint.Report
	for i, r := range results {
		if r.err != nil {
			b.Logger.Error("check failed", zap.String("path", paths[i]), zap.Error(r.err))
			report = append(report, lint.Finding{Source: paths[i], Severity: lint.SeverityError, Message: r.err.Error()})
			continue
		}
		report = append(report, r.report...)
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("interrupted: %w", err)
	}
	if err := b.Renderer.Report(report); err != nil {
		return report, fmt.Errorf("render report: %w", err)
	}
	return report, nil
}

func (b *Bootstrap) check(path string, dump bool) (lint.Report, error) {
	if !dump {
		return b.Linter.CheckManifestFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return b.Linter.CheckDump(path, f)
}
