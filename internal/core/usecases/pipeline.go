// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/ports"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/errors"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/logx"
)

// ExtractionPipeline orquesta la extracción completa: descubrimiento,
// clasificación por firma, deduplicación opcional y copia byte a byte.
// Estrictamente secuencial: los fallos por archivo se absorben en el
// RunSummary y solo las precondiciones de directorio abortan el run.
type ExtractionPipeline struct {
	classifier *Classifier
	hasher     ports.Hasher
	sink       ports.ProgressSink
	logger     logx.Logger

	allowDuplicates bool
	minSizeBytes    int64
	includeTemp     bool
}

// ExtractionPipelineOptions agrupa las dependencias y parámetros del pipeline.
type ExtractionPipelineOptions struct {
	// Rules tabla de firmas ya ordenada por prioridad
	Rules []domain.SignatureRule

	// Hasher calcula el digest de contenido para deduplicar
	Hasher ports.Hasher

	// Sink recibe el progreso por archivo (nil = sin notificaciones)
	Sink ports.ProgressSink

	// Logger logger estructurado (nil = silencioso)
	Logger logx.Logger

	// AllowDuplicates desactiva hashing y deduplicación por completo
	AllowDuplicates bool

	// MinSizeBytes umbral mínimo de tamaño (0 = sin filtro)
	MinSizeBytes int64

	// IncludeTemp incluye .ndf_tmp no vacíos en el descubrimiento
	IncludeTemp bool
}

// NewExtractionPipeline crea un pipeline listo para ejecutar.
func NewExtractionPipeline(opts ExtractionPipelineOptions) *ExtractionPipeline {
	if opts.Sink == nil {
		opts.Sink = ports.NoopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewSilent()
	}
	return &ExtractionPipeline{
		classifier:      NewClassifier(opts.Rules),
		hasher:          opts.Hasher,
		sink:            opts.Sink,
		logger:          opts.Logger.With("component", "pipeline"),
		allowDuplicates: opts.AllowDuplicates,
		minSizeBytes:    opts.MinSizeBytes,
		includeTemp:     opts.IncludeTemp,
	}
}

// Run ejecuta la extracción de cacheDir hacia outputDir.
// Retorna el resumen incluso en cancelación (parcial); solo las
// precondiciones fatales retornan resumen nil.
func (p *ExtractionPipeline) Run(ctx context.Context, cacheDir, outputDir string) (*domain.RunSummary, error) {
	if err := checkCacheDir(cacheDir); err != nil {
		return nil, err
	}
	if err := ensureOutputDir(outputDir); err != nil {
		return nil, err
	}

	candidates, err := DiscoverCandidates(cacheDir, p.includeTemp)
	if err != nil {
		return nil, errors.Wrap(err, "candidate discovery failed")
	}

	p.logger.Info("candidates discovered", "count", len(candidates), "cache_dir", cacheDir)

	summary := domain.NewRunSummary(outputDir)
	total := len(candidates)
	p.sink.RunStarted(total)

	// Registro de duplicados con vida de run: cada ejecución parte limpia
	dups := NewDuplicateRegistry()

	for i, cand := range candidates {
		if ctx.Err() != nil {
			summary.Finalize()
			p.sink.RunFinished(summary)
			return summary, errors.Join(errors.ErrCanceled, ctx.Err())
		}

		p.sink.FileStarted(i+1, total, cand.Path)
		res := p.processCandidate(cand, outputDir, dups)
		summary.Add(res)
		p.sink.FileFinished(i+1, total, res)

		switch res.Outcome {
		case domain.OutcomeExtracted:
			p.logger.Debug("extracted", "source", res.SourcePath, "dest", res.DestPath, "format", res.FormatName)
		case domain.OutcomeFailed:
			p.logger.Warn("candidate failed", "source", res.SourcePath, "reason", res.Reason)
		default:
			p.logger.Debug("skipped", "source", res.SourcePath, "outcome", string(res.Outcome), "reason", res.Reason)
		}
	}

	summary.Finalize()
	p.sink.RunFinished(summary)
	return summary, nil
}

// processCandidate produce exactamente un ExtractionResult por candidato.
// Nunca retorna error: todo fallo de E/S se convierte en OutcomeFailed.
func (p *ExtractionPipeline) processCandidate(cand domain.CandidateFile, outputDir string, dups *DuplicateRegistry) domain.ExtractionResult {
	match, ok, err := p.classifier.ClassifyFile(cand.Path)
	if err != nil {
		return domain.NewFailed(cand.Path, err)
	}
	if !ok {
		return domain.NewSkippedUnrecognized(cand.Path, cand.Size)
	}

	if p.minSizeBytes > 0 && cand.Size < p.minSizeBytes {
		return domain.NewSkippedTooSmall(cand.Path, match.FormatName, cand.Size, p.minSizeBytes)
	}

	var digest string
	if !p.allowDuplicates {
		digest, err = p.hasher.DigestFile(cand.Path)
		if err != nil {
			return domain.NewFailed(cand.Path, err)
		}
		firstSeen, firstSource := dups.Register(digest, cand.Path)
		if !firstSeen {
			p.logger.Debug("duplicate content", "source", cand.Path, "first_seen", firstSource)
			return domain.NewSkippedDuplicate(cand.Path, match.FormatName, digest, cand.Size)
		}
	}

	dest, err := uniqueDestPath(outputDir, cand.Stem(), match.Extension)
	if err != nil {
		return domain.NewFailed(cand.Path, err)
	}

	written, err := copyFile(cand.Path, dest)
	if err != nil {
		return domain.NewFailed(cand.Path, err)
	}

	return domain.NewExtracted(cand.Path, dest, match.FormatName, written, digest)
}

// checkCacheDir valida la precondición fatal del directorio de caché.
func checkCacheDir(cacheDir string) error {
	info, err := os.Stat(cacheDir)
	if err != nil {
		return errors.Wrapf(domain.ErrCacheDirNotFound, "%s", cacheDir)
	}
	if !info.IsDir() {
		return errors.Wrapf(domain.ErrCacheDirNotFound, "%s is not a directory", cacheDir)
	}
	return nil
}

// ensureOutputDir crea el directorio de salida y verifica que sea escribible.
func ensureOutputDir(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(domain.ErrOutputUnwritable, "%s: %v", outputDir, err)
	}

	probe, err := os.CreateTemp(outputDir, ".n0vax-probe-*")
	if err != nil {
		return errors.Wrapf(domain.ErrOutputUnwritable, "%s: %v", outputDir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// uniqueDestPath resuelve el nombre destino stem+ext, aplicando un sufijo
// numérico cuando ya existe un archivo con ese nombre (de esta ejecución o
// de una anterior) en vez de sobrescribir en silencio.
func uniqueDestPath(outputDir, stem, ext string) (string, error) {
	dest := filepath.Join(outputDir, stem+ext)
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return dest, nil
	}

	for counter := 1; counter < 10000; counter++ {
		dest = filepath.Join(outputDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest, nil
		}
	}
	return "", errors.Errorf("could not find a free destination name for %s%s", stem, ext)
}

// copyFile copia src a dst byte a byte, sin transcodificar. En caso de
// error elimina el destino parcial para que un re-run sea idempotente.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open source %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create destination %s", dst)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return 0, errors.Wrapf(err, "failed to copy %s", src)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return 0, errors.Wrapf(err, "failed to finalize %s", dst)
	}
	return written, nil
}
