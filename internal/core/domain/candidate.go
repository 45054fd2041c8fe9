// internal/core/domain/candidate.go
package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Extensiones de los archivos de caché de N0va Desktop.
const (
	// CacheExt extensión principal de los blobs de caché
	CacheExt = ".ndf"

	// CacheTempExt extensión de descargas incompletas
	CacheTempExt = ".ndf_tmp"
)

// CandidateFile es un archivo de caché descubierto, pendiente de
// clasificación. El pipeline solo lo lee, nunca lo modifica.
type CandidateFile struct {
	// Path ruta absoluta o relativa al archivo
	Path string

	// Size tamaño en bytes reportado por el filesystem
	Size int64
}

// Stem retorna el nombre base sin la extensión de caché.
// Ejemplo: "/cache/img/abc123.ndf" -> "abc123".
func (c CandidateFile) Stem() string {
	base := filepath.Base(c.Path)
	lower := strings.ToLower(base)
	switch {
	case strings.HasSuffix(lower, CacheTempExt):
		return base[:len(base)-len(CacheTempExt)]
	case strings.HasSuffix(lower, CacheExt):
		return base[:len(base)-len(CacheExt)]
	}
	return base
}

// IsCacheName indica si un nombre de archivo sigue la convención de caché.
// La comparación es case-insensitive. Los archivos temporales solo cuentan
// cuando includeTemp está activo.
func IsCacheName(name string, includeTemp bool) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, CacheExt) {
		return true
	}
	return includeTemp && strings.HasSuffix(lower, CacheTempExt)
}

// DefaultCachePath retorna la ruta de instalación convencional de la caché
// de N0va Desktop para la plataforma actual. En plataformas sin instalación
// conocida retorna cadena vacía y el caller debe exigir la ruta explícita.
func DefaultCachePath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\N0vaDesktop\N0vaDesktopCache`
	}
	return ""
}

// DefaultOutputPath retorna el directorio de salida por defecto.
func DefaultOutputPath() string {
	return "extracted_wallpapers"
}
