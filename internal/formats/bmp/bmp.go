// internal/formats/bmp/bmp.go
package bmp

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
)

// Rule retorna la regla de firma BMP. Con solo dos bytes es la firma más
// débil del conjunto, así que lleva la prioridad más baja y solo gana
// cuando ninguna otra regla coincide.
func Rule() domain.SignatureRule {
	return domain.SignatureRule{
		FormatName: "BMP",
		Extension:  ".bmp",
		Segments: []domain.Segment{
			{Offset: 0, Bytes: []byte("BM")},
		},
		Priority: 10,
	}
}

// Auto-registro de la regla al importar el package
func init() {
	registry.Global().MustRegister(Rule())
}
