// internal/core/usecases/classifier.go
package usecases

import (
	"io"
	"os"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/errors"
)

// Classifier identifica el formato real de un archivo inspeccionando su
// cabecera contra la tabla de reglas de firma. Es total: cualquier buffer,
// incluso vacío, produce o un match o unknown, nunca un error.
type Classifier struct {
	rules []domain.SignatureRule
}

// NewClassifier crea un clasificador sobre una lista de reglas ya ordenada
// por prioridad (la primera que coincide gana).
func NewClassifier(rules []domain.SignatureRule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify evalúa las reglas en orden contra la cabecera dada.
// Retorna el match de la primera regla que coincide, o ok=false si ninguna.
func (c *Classifier) Classify(header []byte) (domain.FormatMatch, bool) {
	for _, rule := range c.rules {
		if rule.Matches(header) {
			return rule.Match(), true
		}
	}
	return domain.FormatMatch{}, false
}

// ClassifyFile lee los primeros domain.HeaderSize bytes del archivo y los
// clasifica. Un archivo más corto que la cabecera se evalúa con lo que haya;
// solo los errores reales de E/S se reportan como error.
func (c *Classifier) ClassifyFile(path string) (domain.FormatMatch, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.FormatMatch{}, false, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	header := make([]byte, domain.HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return domain.FormatMatch{}, false, errors.Wrapf(err, "failed to read header of %s", path)
	}

	match, ok := c.Classify(header[:n])
	return match, ok, nil
}
