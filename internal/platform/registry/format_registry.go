// internal/platform/registry/format_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// FormatRegistry gestiona el registro de reglas de firma de formatos.
// Desacopla la definición de cada formato (internal/formats/*) del
// clasificador: añadir un formato nuevo es registrar una regla más,
// no tocar la lógica de matching.
type FormatRegistry struct {
	mu    sync.RWMutex
	rules []domain.SignatureRule
}

// globalRegistry es la instancia global del registry.
var globalRegistry *FormatRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *FormatRegistry {
	once.Do(func() {
		globalRegistry = NewFormatRegistry()
	})
	return globalRegistry
}

// NewFormatRegistry crea un registry vacío.
func NewFormatRegistry() *FormatRegistry {
	return &FormatRegistry{rules: []domain.SignatureRule{}}
}

// Register valida y registra una regla de firma.
// Típicamente llamado desde init() de cada package de formato.
func (r *FormatRegistry) Register(rule domain.SignatureRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rules {
		if existing.FormatName == rule.FormatName && samePattern(existing, rule) {
			return fmt.Errorf("format %s: identical rule already registered", rule.FormatName)
		}
	}

	r.rules = append(r.rules, rule)
	return nil
}

// MustRegister registra una regla o entra en pánico. Pensado para init()
// de los packages de formato, donde una regla inválida es un bug de compilación.
func (r *FormatRegistry) MustRegister(rule domain.SignatureRule) {
	if err := r.Register(rule); err != nil {
		panic(fmt.Sprintf("format registry: %v", err))
	}
}

// Rules retorna una copia de las reglas en orden de evaluación: prioridad
// descendente, desempatada por nombre de formato para que el orden sea
// determinista entre ejecuciones.
func (r *FormatRegistry) Rules() []domain.SignatureRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SignatureRule, len(r.rules))
	copy(out, r.rules)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority == out[j].Priority {
			return out[i].FormatName < out[j].FormatName
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}

// Formats retorna los nombres de formato registrados, ordenados.
func (r *FormatRegistry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.rules))
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if !seen[rule.FormatName] {
			seen[rule.FormatName] = true
			names = append(names, rule.FormatName)
		}
	}
	sort.Strings(names)
	return names
}

// Len retorna el número de reglas registradas.
func (r *FormatRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Clear elimina todas las reglas registradas (útil para testing).
func (r *FormatRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = []domain.SignatureRule{}
}

// samePattern compara los segmentos de dos reglas byte a byte.
func samePattern(a, b domain.SignatureRule) bool {
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i].Offset != b.Segments[i].Offset {
			return false
		}
		if string(a.Segments[i].Bytes) != string(b.Segments[i].Bytes) {
			return false
		}
	}
	return true
}
