// internal/platform/ui/presenter.go
package ui

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// Presenter define la interfaz para presentar el progreso de la extracción
// de manera visual e interactiva. Incluye los métodos de ports.ProgressSink,
// de modo que cualquier Presenter puede conectarse directamente al pipeline.
type Presenter interface {
	// Start inicia la presentación con la configuración de la ejecución
	Start(info RunInfo)

	// RunStarted notifica el total de candidatos descubiertos
	RunStarted(total int)

	// FileStarted notifica que el candidato index (base 1) empieza a procesarse
	FileStarted(index, total int, path string)

	// FileFinished entrega el desenlace de un candidato
	FileFinished(index, total int, result domain.ExtractionResult)

	// RunFinished presenta el resumen final
	RunFinished(summary *domain.RunSummary)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene la configuración visible de la ejecución.
type RunInfo struct {
	CachePath       string
	OutputDir       string
	AllowDuplicates bool
	MinSizeMB       float64
	IncludeTemp     bool
	Formats         []string
	Version         string
}
