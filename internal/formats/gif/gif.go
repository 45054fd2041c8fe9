// internal/formats/gif/gif.go
package gif

import (
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/registry"
)

// Rules retorna las dos variantes de firma GIF (87a y 89a). Ambas mapean
// al mismo formato y extensión.
func Rules() []domain.SignatureRule {
	return []domain.SignatureRule{
		{
			FormatName: "GIF",
			Extension:  ".gif",
			Segments:   []domain.Segment{{Offset: 0, Bytes: []byte("GIF87a")}},
			Priority:   70,
		},
		{
			FormatName: "GIF",
			Extension:  ".gif",
			Segments:   []domain.Segment{{Offset: 0, Bytes: []byte("GIF89a")}},
			Priority:   70,
		},
	}
}

// Auto-registro de las reglas al importar el package
func init() {
	for _, rule := range Rules() {
		registry.Global().MustRegister(rule)
	}
}
