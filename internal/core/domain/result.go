// internal/core/domain/result.go
package domain

import (
	"fmt"
	"time"
)

// Outcome clasifica el desenlace del procesamiento de un candidato.
type Outcome string

const (
	OutcomeExtracted           Outcome = "extracted"
	OutcomeSkippedDuplicate    Outcome = "skipped_duplicate"
	OutcomeSkippedUnrecognized Outcome = "skipped_unrecognized"
	OutcomeSkippedTooSmall     Outcome = "skipped_too_small"
	OutcomeFailed              Outcome = "failed"
)

// ExtractionResult es el desenlace inmutable de un candidato.
// Se produce exactamente uno por archivo descubierto, en orden de
// descubrimiento.
type ExtractionResult struct {
	// Outcome desenlace del candidato
	Outcome Outcome `json:"outcome"`

	// SourcePath ruta del archivo de caché original
	SourcePath string `json:"source_path"`

	// DestPath ruta del archivo extraído (solo para extracted)
	DestPath string `json:"dest_path,omitempty"`

	// FormatName formato detectado (vacío si unknown)
	FormatName string `json:"format,omitempty"`

	// ByteSize tamaño del archivo fuente en bytes
	ByteSize int64 `json:"byte_size,omitempty"`

	// Digest huella del contenido (solo cuando se calculó)
	Digest string `json:"digest,omitempty"`

	// Reason causa legible para skips y fallos
	Reason string `json:"reason,omitempty"`
}

// NewExtracted construye el resultado de una extracción exitosa.
func NewExtracted(source, dest, format string, size int64, digest string) ExtractionResult {
	return ExtractionResult{
		Outcome:    OutcomeExtracted,
		SourcePath: source,
		DestPath:   dest,
		FormatName: format,
		ByteSize:   size,
		Digest:     digest,
	}
}

// NewSkippedDuplicate construye el resultado de un duplicado por contenido.
func NewSkippedDuplicate(source, format, digest string, size int64) ExtractionResult {
	return ExtractionResult{
		Outcome:    OutcomeSkippedDuplicate,
		SourcePath: source,
		FormatName: format,
		ByteSize:   size,
		Digest:     digest,
		Reason:     "identical content already extracted",
	}
}

// NewSkippedUnrecognized construye el resultado de una cabecera sin firma.
func NewSkippedUnrecognized(source string, size int64) ExtractionResult {
	return ExtractionResult{
		Outcome:    OutcomeSkippedUnrecognized,
		SourcePath: source,
		ByteSize:   size,
		Reason:     "header matches no known image signature",
	}
}

// NewSkippedTooSmall construye el resultado de un archivo bajo el umbral
// de tamaño (thumbnails).
func NewSkippedTooSmall(source, format string, size, minBytes int64) ExtractionResult {
	return ExtractionResult{
		Outcome:    OutcomeSkippedTooSmall,
		SourcePath: source,
		FormatName: format,
		ByteSize:   size,
		Reason:     fmt.Sprintf("%d bytes is below the %d byte minimum", size, minBytes),
	}
}

// NewFailed construye el resultado de un fallo de E/S por archivo.
func NewFailed(source string, err error) ExtractionResult {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return ExtractionResult{
		Outcome:    OutcomeFailed,
		SourcePath: source,
		Reason:     reason,
	}
}

// RunSummary acumula los resultados de una ejecución completa del pipeline.
// Se construye incrementalmente con Add y se cierra con Finalize.
type RunSummary struct {
	// Contadores por desenlace
	Extracted           int `json:"extracted"`
	SkippedDuplicate    int `json:"skipped_duplicate"`
	SkippedUnrecognized int `json:"skipped_unrecognized"`
	SkippedTooSmall     int `json:"skipped_too_small"`
	Failed              int `json:"failed"`

	// OutputDir directorio donde se escribieron las extracciones
	OutputDir string `json:"output_dir"`

	// StartTime momento de inicio del procesamiento
	StartTime time.Time `json:"start_time"`

	// EndTime momento de finalización
	EndTime time.Time `json:"end_time"`

	// Duration duración total de la ejecución
	Duration time.Duration `json:"duration_ns"`

	// ExtractedByFormat cuenta de extracciones agrupadas por formato
	ExtractedByFormat map[string]int `json:"extracted_by_format"`

	// Results lista completa de desenlaces, en orden de descubrimiento
	Results []ExtractionResult `json:"results"`
}

// NewRunSummary crea un resumen vacío para una ejecución.
func NewRunSummary(outputDir string) *RunSummary {
	return &RunSummary{
		OutputDir:         outputDir,
		StartTime:         time.Now(),
		ExtractedByFormat: make(map[string]int),
		Results:           []ExtractionResult{},
	}
}

// Add incorpora un resultado al resumen, actualizando los contadores.
func (s *RunSummary) Add(res ExtractionResult) {
	s.Results = append(s.Results, res)
	switch res.Outcome {
	case OutcomeExtracted:
		s.Extracted++
		s.ExtractedByFormat[res.FormatName]++
	case OutcomeSkippedDuplicate:
		s.SkippedDuplicate++
	case OutcomeSkippedUnrecognized:
		s.SkippedUnrecognized++
	case OutcomeSkippedTooSmall:
		s.SkippedTooSmall++
	case OutcomeFailed:
		s.Failed++
	}
}

// Total retorna el número de candidatos procesados.
func (s *RunSummary) Total() int {
	return s.Extracted + s.SkippedDuplicate + s.SkippedUnrecognized +
		s.SkippedTooSmall + s.Failed
}

// Finalize cierra el resumen y calcula la duración total.
func (s *RunSummary) Finalize() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// String retorna una línea legible del resumen.
func (s *RunSummary) String() string {
	return fmt.Sprintf(
		"RunSummary{extracted=%d, duplicate=%d, unrecognized=%d, too_small=%d, failed=%d, duration=%s}",
		s.Extracted, s.SkippedDuplicate, s.SkippedUnrecognized,
		s.SkippedTooSmall, s.Failed, s.Duration,
	)
}
