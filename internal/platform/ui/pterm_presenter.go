// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar el banner, la barra de progreso y los paneles finales.
type PTermPresenter struct {
	mu sync.Mutex

	// Barra de progreso activa durante el procesamiento
	bar *pterm.ProgressbarPrinter

	// Configuración visible de la ejecución
	runInfo RunInfo

	// Verbose muestra la razón de cada archivo no extraído
	Verbose bool
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter(verbose bool) *PTermPresenter {
	return &PTermPresenter{Verbose: verbose}
}

// Start muestra el banner y el panel de configuración
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runInfo = info

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("N0va Desktop Wallpaper Extractor " + info.Version)

	pterm.Println()

	infoPanel := pterm.DefaultBox.
		WithTitle("Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	cfgInfo := fmt.Sprintf("%s Cache Path: %s\n", IconCache, pterm.Cyan(info.CachePath))
	cfgInfo += fmt.Sprintf("%s Output Path: %s\n", IconOutput, pterm.Cyan(info.OutputDir))
	cfgInfo += fmt.Sprintf("   Skip Duplicates: %s\n", p.boolToString(!info.AllowDuplicates))
	cfgInfo += fmt.Sprintf("   Include Temp Files: %s\n", p.boolToString(info.IncludeTemp))
	cfgInfo += fmt.Sprintf("   Minimum Size: %s\n", pterm.Yellow(fmt.Sprintf("%.1fMB", info.MinSizeMB)))
	cfgInfo += fmt.Sprintf("%s Formats: %s", IconImages, pterm.Gray(fmt.Sprintf("%v", info.Formats)))

	infoPanel.Println(cfgInfo)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()
}

// RunStarted crea la barra de progreso para el total descubierto
func (p *PTermPresenter) RunStarted(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if total == 0 {
		pterm.Warning.Println("No .ndf files found in the cache directory")
		return
	}

	pterm.Info.Printf("Found %d cache files\n", total)
	pterm.Println()

	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Extracting").
		WithShowElapsedTime(true).
		Start()
	p.bar = bar
}

// FileStarted actualiza el título de la barra con el archivo actual
func (p *PTermPresenter) FileStarted(index, total int, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.UpdateTitle(fmt.Sprintf("[%d/%d] %s", index, total, filepath.Base(path)))
	}
}

// FileFinished avanza la barra y reporta skips/fallos en modo verbose
func (p *PTermPresenter) FileFinished(index, total int, result domain.ExtractionResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Increment()
	}

	status := StatusFor(result.Outcome)
	switch status {
	case StatusError:
		pterm.Error.Printf("%s: %s\n", filepath.Base(result.SourcePath), result.Reason)
	case StatusWarning, StatusSkipped:
		if p.Verbose {
			status.Style().Printf("  %s %s: %s\n",
				status.Symbol(), filepath.Base(result.SourcePath), result.Reason)
		}
	}
}

// RunFinished detiene la barra y presenta las estadísticas finales
func (p *PTermPresenter) RunFinished(summary *domain.RunSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Stop()
		p.bar = nil
	}

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Extraction Complete")

	pterm.Println()

	statsPanel := pterm.DefaultBox.
		WithTitle("Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	stats := fmt.Sprintf("%s Extracted: %s\n", IconSuccess, pterm.Green(fmt.Sprintf("%d", summary.Extracted)))
	stats += fmt.Sprintf("   Duplicates Skipped: %s\n", pterm.Yellow(fmt.Sprintf("%d", summary.SkippedDuplicate)))
	stats += fmt.Sprintf("   Unrecognized Skipped: %s\n", pterm.Yellow(fmt.Sprintf("%d", summary.SkippedUnrecognized)))
	stats += fmt.Sprintf("   Too Small Skipped: %s\n", pterm.Yellow(fmt.Sprintf("%d", summary.SkippedTooSmall)))
	stats += fmt.Sprintf("%s Failed: %s\n", IconError, pterm.Red(fmt.Sprintf("%d", summary.Failed)))
	stats += fmt.Sprintf("%s Duration: %s\n", IconTime, pterm.Cyan(p.formatDuration(summary.Duration)))
	stats += fmt.Sprintf("%s Output: %s", IconOutput, pterm.Cyan(summary.OutputDir))

	statsPanel.Println(stats)

	if len(summary.ExtractedByFormat) > 0 {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println("Extracted by Format")

		tableData := pterm.TableData{{"Format", "Count"}}

		formats := make([]string, 0, len(summary.ExtractedByFormat))
		for format := range summary.ExtractedByFormat {
			formats = append(formats, format)
		}
		sort.Strings(formats)

		for _, format := range formats {
			tableData = append(tableData, []string{
				format,
				fmt.Sprintf("%d", summary.ExtractedByFormat[format]),
			})
		}

		pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(tableData).
			Render()
	}

	if summary.Extracted > 0 {
		pterm.Println()
		pterm.Success.Println("Your wallpapers have been extracted. Enjoy!")
	}

	pterm.Println()
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Stop()
		p.bar = nil
	}
	return nil
}

// formatDuration formatea una duración de manera legible
func (p *PTermPresenter) formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// boolToString convierte booleano a string visual
func (p *PTermPresenter) boolToString(b bool) string {
	if b {
		return pterm.Green("ON")
	}
	return pterm.Gray("OFF")
}
