// internal/formats/webp/webp.go
package webp

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
)

// Rule retorna la regla de firma WebP. Es la única regla con dos segmentos
// disjuntos: el contenedor RIFF en offset 0 y el FourCC "WEBP" en offset 8,
// saltando los cuatro bytes de tamaño del chunk.
func Rule() domain.SignatureRule {
	return domain.SignatureRule{
		FormatName: "WebP",
		Extension:  ".webp",
		Segments: []domain.Segment{
			{Offset: 0, Bytes: []byte("RIFF")},
			{Offset: 8, Bytes: []byte("WEBP")},
		},
		Priority: 80,
	}
}

// Auto-registro de la regla al importar el package
func init() {
	registry.Global().MustRegister(Rule())
}
