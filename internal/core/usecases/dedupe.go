// internal/core/usecases/dedupe.go
package usecases

// DuplicateRegistry es el conjunto de digests aceptados durante la
// ejecución actual. Vive lo que vive el run: se crea vacío al empezar y se
// descarta al terminar, nunca se persiste. El pipeline es secuencial, así
// que el check-and-insert es atómico por construcción.
type DuplicateRegistry struct {
	seen map[string]string // digest -> primer source path aceptado
}

// NewDuplicateRegistry crea un registro vacío.
func NewDuplicateRegistry() *DuplicateRegistry {
	return &DuplicateRegistry{seen: make(map[string]string)}
}

// Register anota el digest si es la primera vez que se ve.
// Retorna firstSeen=true cuando el digest era nuevo; en caso contrario
// firstSource es la ruta del archivo que lo registró primero.
func (r *DuplicateRegistry) Register(digest, source string) (firstSeen bool, firstSource string) {
	if prev, ok := r.seen[digest]; ok {
		return false, prev
	}
	r.seen[digest] = source
	return true, ""
}

// Len retorna el número de digests únicos aceptados.
func (r *DuplicateRegistry) Len() int {
	return len(r.seen)
}
