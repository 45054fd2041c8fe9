// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// RawPresenter implementa el Presenter para modo raw (logs sin formato
// visual), apto para pipelines y redirección a archivo.
type RawPresenter struct {
	format    LogFormat
	mu        sync.Mutex
	startTime time.Time
}

// NewRawPresenter crea un nuevo RawPresenter
func NewRawPresenter(format LogFormat) *RawPresenter {
	return &RawPresenter{
		format:    format,
		startTime: time.Now(),
	}
}

// log escribe un log en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]interface{}) {
	var parts []string
	parts = append(parts, timestamp)
	parts = append(parts, fmt.Sprintf("%-5s", level))
	parts = append(parts, message)

	for k, v := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.formatValue(v)))
	}

	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}

	if len(fields) > 0 {
		logEntry["data"] = fields
	}

	jsonBytes, _ := json.Marshal(logEntry)
	fmt.Fprintln(os.Stdout, string(jsonBytes))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.Contains(val, " ") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.1f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start inicia la presentación
func (r *RawPresenter) Start(info RunInfo) {
	r.startTime = time.Now()
	r.log("INFO", "run_started", map[string]interface{}{
		"cache_path":       info.CachePath,
		"output_dir":       info.OutputDir,
		"allow_duplicates": info.AllowDuplicates,
		"min_size_mb":      info.MinSizeMB,
		"include_temp":     info.IncludeTemp,
		"formats":          strings.Join(info.Formats, ","),
		"log_format":       string(r.format),
	})
}

// RunStarted notifica el total de candidatos descubiertos
func (r *RawPresenter) RunStarted(total int) {
	r.log("INFO", "candidates_discovered", map[string]interface{}{
		"total": total,
	})
}

// FileStarted notifica el inicio de un candidato
func (r *RawPresenter) FileStarted(index, total int, path string) {
	r.log("INFO", "file_started", map[string]interface{}{
		"index": index,
		"total": total,
		"path":  path,
	})
}

// FileFinished entrega el desenlace de un candidato
func (r *RawPresenter) FileFinished(index, total int, result domain.ExtractionResult) {
	fields := map[string]interface{}{
		"index":   index,
		"total":   total,
		"source":  result.SourcePath,
		"outcome": string(result.Outcome),
		"status":  StatusFor(result.Outcome).String(),
	}

	if result.FormatName != "" {
		fields["format"] = result.FormatName
	}
	if result.DestPath != "" {
		fields["dest"] = result.DestPath
	}
	if result.ByteSize > 0 {
		fields["bytes"] = result.ByteSize
	}
	if result.Reason != "" {
		fields["reason"] = result.Reason
	}

	r.log("INFO", "file_finished", fields)
}

// RunFinished entrega el resumen final de la ejecución
func (r *RawPresenter) RunFinished(summary *domain.RunSummary) {
	r.log("INFO", "run_completed", map[string]interface{}{
		"extracted":            summary.Extracted,
		"skipped_duplicate":    summary.SkippedDuplicate,
		"skipped_unrecognized": summary.SkippedUnrecognized,
		"skipped_too_small":    summary.SkippedTooSmall,
		"failed":               summary.Failed,
		"duration":             summary.Duration,
		"output_dir":           summary.OutputDir,
	})

	if len(summary.ExtractedByFormat) > 0 {
		r.log("INFO", "extracted_by_format", map[string]interface{}{
			"breakdown": summary.ExtractedByFormat,
		})
	}
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg, nil)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg, nil)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg, nil)
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
