// internal/formats/png/png.go
package png

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
)

// Rule retorna la regla de firma PNG: los ocho bytes fijos del estándar.
func Rule() domain.SignatureRule {
	return domain.SignatureRule{
		FormatName: "PNG",
		Extension:  ".png",
		Segments: []domain.Segment{
			{Offset: 0, Bytes: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}},
		},
		Priority: 100,
	}
}

// Auto-registro de la regla al importar el package
func init() {
	registry.Global().MustRegister(Rule())
}
