// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// Status representa el estado visual de un candidato procesado
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusWarning
	StatusError
)

// StatusFor mapea un desenlace del dominio a su estado visual
func StatusFor(outcome domain.Outcome) Status {
	switch outcome {
	case domain.OutcomeExtracted:
		return StatusSuccess
	case domain.OutcomeFailed:
		return StatusError
	case domain.OutcomeSkippedUnrecognized:
		return StatusWarning
	default:
		return StatusSkipped
	}
}

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusSuccess:
		return "✓"
	case StatusSkipped:
		return "⊘"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return "?"
	}
}

// Color retorna el color pterm para cada estado
func (s Status) Color() pterm.Color {
	switch s {
	case StatusSuccess:
		return pterm.FgGreen
	case StatusSkipped:
		return pterm.FgGray
	case StatusWarning:
		return pterm.FgYellow
	case StatusError:
		return pterm.FgRed
	default:
		return pterm.FgDefault
	}
}

// Style retorna un pterm.Style configurado para el estado
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

// Icons globales para diferentes elementos de la UI
var (
	IconCache   = "🗂"
	IconOutput  = "📁"
	IconImages  = "🖼"
	IconTime    = "⏱"
	IconStats   = "📊"
	IconSuccess = "✓"
	IconError   = "✗"
)

// Separadores y bordes
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "────────────────────────────────────────────"
)
