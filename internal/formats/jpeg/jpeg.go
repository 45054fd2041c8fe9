// internal/formats/jpeg/jpeg.go
package jpeg

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
)

// Rule retorna la regla de firma JPEG: el marcador SOI más el inicio del
// primer segmento de aplicación (FF D8 FF cubre JFIF, EXIF y variantes raw).
func Rule() domain.SignatureRule {
	return domain.SignatureRule{
		FormatName: "JPEG",
		Extension:  ".jpg",
		Segments: []domain.Segment{
			{Offset: 0, Bytes: []byte{0xFF, 0xD8, 0xFF}},
		},
		Priority: 90,
	}
}

// Auto-registro de la regla al importar el package
func init() {
	registry.Global().MustRegister(Rule())
}
