// internal/platform/hashing/hashing.go
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/errors"
)

// SHA256Hasher calcula la huella SHA-256 del contenido completo de un
// archivo, en streaming para no cargar wallpapers de varios MB en memoria.
// Implementa ports.Hasher. La resistencia a colisiones no es un requisito
// de seguridad aquí, solo unicidad práctica para deduplicar.
type SHA256Hasher struct{}

// NewSHA256Hasher crea una instancia del hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// DigestFile retorna el digest hex del archivo completo.
func (h *SHA256Hasher) DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s for hashing", path)
	}
	defer f.Close()

	sum := sha256.New()
	if _, err := io.Copy(sum, f); err != nil {
		return "", errors.Wrapf(err, "failed to read %s for hashing", path)
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

// Algorithm retorna el nombre del algoritmo.
func (h *SHA256Hasher) Algorithm() string {
	return "sha256"
}
