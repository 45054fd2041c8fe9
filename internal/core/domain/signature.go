// internal/core/domain/signature.go
package domain

import "fmt"

// HeaderSize es el número de bytes leídos del inicio de cada archivo para
// clasificarlo. Toda regla registrada debe caber dentro de este prefijo.
const HeaderSize = 16

// Segment representa un tramo literal de bytes dentro de una firma,
// anclado a un offset fijo del inicio del archivo.
type Segment struct {
	// Offset posición absoluta del primer byte del tramo
	Offset int

	// Bytes secuencia literal que debe aparecer en esa posición
	Bytes []byte
}

// SignatureRule describe la firma binaria de un formato de imagen.
// Una regla puede tener varios segmentos disjuntos (ej: WebP requiere
// "RIFF" en offset 0 y "WEBP" en offset 8). Las reglas son inmutables
// una vez registradas y se evalúan en orden de prioridad descendente.
type SignatureRule struct {
	// FormatName nombre canónico del formato (ej: "PNG", "JPEG")
	FormatName string

	// Extension extensión canónica con punto (ej: ".png")
	Extension string

	// Segments tramos de bytes que deben coincidir todos
	Segments []Segment

	// Priority orden de evaluación (mayor = se evalúa antes)
	Priority int
}

// FormatMatch es el resultado de una clasificación exitosa.
type FormatMatch struct {
	FormatName string
	Extension  string
}

// Matches indica si la cabecera dada satisface todos los segmentos de la
// regla. Una cabecera más corta que el tramo requerido nunca coincide.
func (r SignatureRule) Matches(header []byte) bool {
	if len(r.Segments) == 0 {
		return false
	}
	for _, seg := range r.Segments {
		end := seg.Offset + len(seg.Bytes)
		if seg.Offset < 0 || end > len(header) {
			return false
		}
		for i, b := range seg.Bytes {
			if header[seg.Offset+i] != b {
				return false
			}
		}
	}
	return true
}

// HeaderSpan retorna el número mínimo de bytes de cabecera necesarios
// para evaluar la regla completa.
func (r SignatureRule) HeaderSpan() int {
	span := 0
	for _, seg := range r.Segments {
		if end := seg.Offset + len(seg.Bytes); end > span {
			span = end
		}
	}
	return span
}

// Validate verifica que la regla sea consistente y quepa en HeaderSize.
func (r SignatureRule) Validate() error {
	if r.FormatName == "" {
		return ErrEmptyFormatName
	}
	if r.Extension == "" || r.Extension[0] != '.' {
		return fmt.Errorf("%w: %q", ErrInvalidExtension, r.Extension)
	}
	if len(r.Segments) == 0 {
		return fmt.Errorf("%w: rule %s has no segments", ErrInvalidSignature, r.FormatName)
	}
	for _, seg := range r.Segments {
		if seg.Offset < 0 || len(seg.Bytes) == 0 {
			return fmt.Errorf("%w: rule %s has an empty or negative segment", ErrInvalidSignature, r.FormatName)
		}
	}
	if r.HeaderSpan() > HeaderSize {
		return fmt.Errorf("%w: rule %s needs %d header bytes, max is %d",
			ErrInvalidSignature, r.FormatName, r.HeaderSpan(), HeaderSize)
	}
	return nil
}

// Match retorna el FormatMatch correspondiente a la regla.
func (r SignatureRule) Match() FormatMatch {
	return FormatMatch{FormatName: r.FormatName, Extension: r.Extension}
}
