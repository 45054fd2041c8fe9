// internal/adapters/output/table.go
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// WriteTable imprime una tabla legible en terminal con los resultados.
// Pensado para el modo raw, donde no hay paneles pterm.
func WriteTable(summary *domain.RunSummary) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== Extraction Results ===\n")
	fmt.Fprintf(w, "Output:\t%s\n", summary.OutputDir)
	fmt.Fprintf(w, "Duration:\t%s\n", summary.Duration)
	fmt.Fprintf(w, "Extracted:\t%d\n", summary.Extracted)
	fmt.Fprintf(w, "Skipped (duplicate):\t%d\n", summary.SkippedDuplicate)
	fmt.Fprintf(w, "Skipped (unrecognized):\t%d\n", summary.SkippedUnrecognized)
	fmt.Fprintf(w, "Skipped (too small):\t%d\n", summary.SkippedTooSmall)
	fmt.Fprintf(w, "Failed:\t%d\n\n", summary.Failed)

	extracted := make([]domain.ExtractionResult, 0, summary.Extracted)
	for _, res := range summary.Results {
		if res.Outcome == domain.OutcomeExtracted {
			extracted = append(extracted, res)
		}
	}

	if len(extracted) > 0 {
		fmt.Fprintln(w, "FILE\tFORMAT\tSIZE")
		fmt.Fprintln(w, "----\t------\t----")
		for _, res := range extracted {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				filepath.Base(res.DestPath),
				res.FormatName,
				formatBytes(res.ByteSize),
			)
		}
	} else {
		fmt.Fprintln(w, "No wallpapers extracted.")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if len(summary.ExtractedByFormat) > 0 {
		fmt.Fprintln(os.Stdout, "\nBy format:")

		formats := make([]string, 0, len(summary.ExtractedByFormat))
		for format := range summary.ExtractedByFormat {
			formats = append(formats, format)
		}
		sort.Strings(formats)

		for _, format := range formats {
			fmt.Fprintf(os.Stdout, "  - %s: %d\n", format, summary.ExtractedByFormat[format])
		}
	}

	fmt.Fprintln(os.Stdout)
	return nil
}

// formatBytes formatea un tamaño en una unidad legible.
func formatBytes(n int64) string {
	const mb = 1024 * 1024
	if n >= mb {
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	}
	if n >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	}
	return fmt.Sprintf("%dB", n)
}
