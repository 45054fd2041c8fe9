// internal/core/usecases/discovery.go
package usecases

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/errors"
)

// DiscoverCandidates enumera recursivamente los archivos de caché bajo
// cacheDir. Los .ndf_tmp (descargas incompletas) solo entran cuando
// includeTemp está activo y no están vacíos. El resultado va en orden
// lexicográfico de ruta completa para que las ejecuciones sean reproducibles
// sobre un directorio sin cambios.
func DiscoverCandidates(cacheDir string, includeTemp bool) ([]domain.CandidateFile, error) {
	var candidates []domain.CandidateFile

	err := filepath.WalkDir(cacheDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Subdirectorios ilegibles no abortan el descubrimiento
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !domain.IsCacheName(d.Name(), includeTemp) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), domain.CacheTempExt) && info.Size() == 0 {
			return nil
		}

		candidates = append(candidates, domain.CandidateFile{
			Path: path,
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", cacheDir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Path < candidates[j].Path
	})
	return candidates, nil
}
