// internal/core/ports/hasher.go
package ports

// Hasher es el port para calcular la huella de contenido usada como clave
// de deduplicación. El digest debe cubrir el archivo completo, no solo la
// cabecera, y ser determinista dentro de una ejecución.
type Hasher interface {
	// DigestFile retorna la huella hex del contenido completo del archivo
	DigestFile(path string) (string, error)

	// Algorithm retorna el nombre del algoritmo (ej: "sha256")
	Algorithm() string
}
