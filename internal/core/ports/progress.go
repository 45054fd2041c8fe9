// internal/core/ports/progress.go
package ports

import "github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"

// ProgressSink es el port de notificación de progreso del pipeline.
// Puramente informativo: ninguna implementación puede alterar el flujo
// de control de la extracción. Implementado por los presenters de ui.
type ProgressSink interface {
	// RunStarted notifica el inicio del procesamiento con el total de candidatos
	RunStarted(total int)

	// FileStarted notifica que el candidato index (base 1) empieza a procesarse
	FileStarted(index, total int, path string)

	// FileFinished entrega el desenlace del candidato index (base 1)
	FileFinished(index, total int, result domain.ExtractionResult)

	// RunFinished entrega el resumen final de la ejecución
	RunFinished(summary *domain.RunSummary)
}

// NoopSink es un ProgressSink que descarta todas las notificaciones.
// Útil para tests y modo headless.
type NoopSink struct{}

func (NoopSink) RunStarted(total int)                                          {}
func (NoopSink) FileStarted(index, total int, path string)                     {}
func (NoopSink) FileFinished(index, total int, result domain.ExtractionResult) {}
func (NoopSink) RunFinished(summary *domain.RunSummary)                        {}
