// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// ReportFileName es el nombre del reporte escrito en el output dir.
const ReportFileName = "n0vax_report.json"

// Report es el documento JSON persistido tras cada ejecución.
type Report struct {
	Tool      string             `json:"tool"`
	Version   string             `json:"version"`
	Timestamp time.Time          `json:"timestamp"`
	CacheDir  string             `json:"cache_dir"`
	Summary   *domain.RunSummary `json:"summary"`
}

// BuildReport construye el reporte desde un RunSummary.
func BuildReport(version, cacheDir string, summary *domain.RunSummary) Report {
	return Report{
		Tool:      "n0vax",
		Version:   version,
		Timestamp: summary.EndTime,
		CacheDir:  cacheDir,
		Summary:   summary,
	}
}

// WriteJSON escribe el reporte de la ejecución en el directorio de salida.
// El fallo al escribir el reporte es una advertencia del caller, nunca
// invalida la extracción ya hecha.
func WriteJSON(version, cacheDir string, summary *domain.RunSummary) error {
	if summary == nil {
		return fmt.Errorf("cannot write report: nil summary")
	}

	path := filepath.Join(summary.OutputDir, ReportFileName)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildReport(version, cacheDir, summary)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

// WriteJSONStdout exporta el reporte a stdout en formato JSON.
func WriteJSONStdout(version, cacheDir string, summary *domain.RunSummary, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildReport(version, cacheDir, summary))
}
