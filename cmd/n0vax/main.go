// cmd/n0vax/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/adapters/output"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/usecases"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/config"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/hashing"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/logx"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/ui"

	// Import formats for auto-registration via init()
	_ "github.com/hiidhruv/n0va-desktop-extractor/internal/formats/bmp"
	_ "github.com/hiidhruv/n0va-desktop-extractor/internal/formats/gif"
	_ "github.com/hiidhruv/n0va-desktop-extractor/internal/formats/jpeg"
	_ "github.com/hiidhruv/n0va-desktop-extractor/internal/formats/png"
	_ "github.com/hiidhruv/n0va-desktop-extractor/internal/formats/webp"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (defaults -> yaml -> env -> flags)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("n0vax %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	// Validate cache path (no default exists outside Windows installs)
	if cfg.Core.CachePath == "" {
		fmt.Fprintln(os.Stderr, "Error: cache directory is required")
		fmt.Fprintln(os.Stderr, "Usage: n0vax --cache <dir> [--out <dir>]")
		fmt.Fprintln(os.Stderr, "Try: n0vax --help for all options")
		os.Exit(2)
	}

	// 2. Shared logger. El modo pretty usa logger silencioso para no
	// romper la barra de progreso, salvo con --verbose.
	logger := buildLogger(cfg)

	logger.Info("n0vax starting",
		"version", version,
		"cache", cfg.Core.CachePath,
		"out", cfg.Core.OutputDir,
		"allow_duplicates", cfg.Core.AllowDuplicates,
		"min_size_mb", cfg.Core.MinSizeMB,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 4. Presenter según modo de UI
	presenter := buildPresenter(cfg)
	defer presenter.Close()

	formats := registry.Global().Formats()
	if len(formats) == 0 {
		logger.Err(fmt.Errorf("no image formats registered"))
		os.Exit(2)
	}

	presenter.Start(ui.RunInfo{
		CachePath:       cfg.Core.CachePath,
		OutputDir:       cfg.Core.OutputDir,
		AllowDuplicates: cfg.Core.AllowDuplicates,
		MinSizeMB:       cfg.Core.MinSizeMB,
		IncludeTemp:     cfg.Core.IncludeTemp,
		Formats:         formats,
		Version:         version,
	})

	// 5. Build and run the extraction pipeline
	pipeline := usecases.NewExtractionPipeline(usecases.ExtractionPipelineOptions{
		Rules:           registry.Global().Rules(),
		Hasher:          hashing.NewSHA256Hasher(),
		Sink:            presenter,
		Logger:          logger,
		AllowDuplicates: cfg.Core.AllowDuplicates,
		MinSizeBytes:    cfg.MinSizeBytes(),
		IncludeTemp:     cfg.Core.IncludeTemp,
	})

	summary, runErr := pipeline.Run(ctx, cfg.Core.CachePath, cfg.Core.OutputDir)

	// 6. Fatal preconditions abort with no summary
	if summary == nil {
		presenter.Error(fmt.Sprintf("extraction aborted: %v", runErr))
		logger.Err(runErr, "phase", "run")
		os.Exit(1)
	}

	// 7. Write outputs (reporte JSON + tabla en modo raw)
	if outErr := writeOutputs(cfg, summary); outErr != nil {
		presenter.Warning(fmt.Sprintf("could not write run report: %v", outErr))
		logger.Warn("report write failed", "error", outErr.Error())
	}

	// 8. Summary
	logger.Info("n0vax finished",
		"extracted", summary.Extracted,
		"skipped_duplicate", summary.SkippedDuplicate,
		"skipped_unrecognized", summary.SkippedUnrecognized,
		"skipped_too_small", summary.SkippedTooSmall,
		"failed", summary.Failed,
		"elapsed_ms", summary.Duration.Milliseconds(),
	)

	if runErr != nil {
		// Interrupción: el resumen parcial ya se presentó
		logger.Err(runErr, "phase", "run")
		os.Exit(1)
	}
}

// buildLogger decide nivel y silencio según UI y verbose.
func buildLogger(cfg config.Config) logx.Logger {
	if cfg.Core.Verbose {
		return logx.NewWithLevel(logx.LevelDebug)
	}
	if cfg.UI.Mode == config.UIModePretty {
		return logx.NewSilent()
	}
	return logx.New()
}

// buildPresenter selecciona el presenter según configuración.
func buildPresenter(cfg config.Config) ui.Presenter {
	switch cfg.UI.Mode {
	case config.UIModeRaw:
		return ui.NewRawPresenter(ui.LogFormat(cfg.UI.LogFormat))
	case config.UIModeQuiet:
		return ui.NewNoopPresenter()
	default:
		return ui.NewPTermPresenter(cfg.Core.Verbose)
	}
}

// writeOutputs decide y ejecuta las salidas según configuración.
// Aislado de main para facilitar añadir formatos nuevos.
func writeOutputs(cfg config.Config, summary *domain.RunSummary) error {
	if !cfg.Report.Disabled {
		if err := output.WriteJSON(version, cfg.Core.CachePath, summary); err != nil {
			return err
		}
	}

	if cfg.UI.Mode == config.UIModeRaw {
		if err := output.WriteTable(summary); err != nil {
			return err
		}
	}

	return nil
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
