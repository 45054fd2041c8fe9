// internal/platform/ui/noop_presenter.go
package ui

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// Start no hace nada
func (n *NoopPresenter) Start(info RunInfo) {}

// RunStarted no hace nada
func (n *NoopPresenter) RunStarted(total int) {}

// FileStarted no hace nada
func (n *NoopPresenter) FileStarted(index, total int, path string) {}

// FileFinished no hace nada
func (n *NoopPresenter) FileFinished(index, total int, result domain.ExtractionResult) {}

// RunFinished no hace nada
func (n *NoopPresenter) RunFinished(summary *domain.RunSummary) {}

// Info no hace nada
func (n *NoopPresenter) Info(msg string) {}

// Warning no hace nada
func (n *NoopPresenter) Warning(msg string) {}

// Error no hace nada
func (n *NoopPresenter) Error(msg string) {}

// Close no hace nada
func (n *NoopPresenter) Close() error { return nil }
