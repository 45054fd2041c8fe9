// internal/core/usecases/pipeline_test.go
package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/errors"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/platform/hashing"
	"github.com/hiidhruv/n0va-desktop-extractor/internal/testutil"
)

// recordingSink captura las notificaciones de progreso para las aserciones.
type recordingSink struct {
	started     int
	fileStarts  []string
	fileResults []domain.ExtractionResult
	finished    *domain.RunSummary
}

func (s *recordingSink) RunStarted(total int) { s.started = total }
func (s *recordingSink) FileStarted(index, total int, path string) {
	s.fileStarts = append(s.fileStarts, path)
}
func (s *recordingSink) FileFinished(index, total int, res domain.ExtractionResult) {
	s.fileResults = append(s.fileResults, res)
}
func (s *recordingSink) RunFinished(summary *domain.RunSummary) { s.finished = summary }

func newTestPipeline(t *testing.T, opts ExtractionPipelineOptions) *ExtractionPipeline {
	t.Helper()
	if opts.Rules == nil {
		opts.Rules = allRules(t)
	}
	if opts.Hasher == nil {
		opts.Hasher = hashing.NewSHA256Hasher()
	}
	return NewExtractionPipeline(opts)
}

func TestPipeline_ExtractsAndDeduplicates(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	pngData := testutil.PNGBytes(128)
	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), pngData)
	testutil.WriteFile(t, filepath.Join(cache, "b.ndf"), pngData) // mismo contenido
	testutil.WriteFile(t, filepath.Join(cache, "c.ndf"), testutil.JPEGBytes(128))

	sink := &recordingSink{}
	p := newTestPipeline(t, ExtractionPipelineOptions{Sink: sink})

	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, summary.Extracted, 2, "one PNG plus one JPEG")
	testutil.AssertEqual(t, summary.SkippedDuplicate, 1, "second PNG is a duplicate")
	testutil.AssertEqual(t, summary.Total(), 3, "every candidate accounted for")

	// El primero en orden lexicográfico gana; el duplicado no toca disco
	if _, err := os.Stat(filepath.Join(out, "a.png")); err != nil {
		t.Errorf("a.png should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "b.png")); !os.IsNotExist(err) {
		t.Error("duplicate b.ndf must not produce output")
	}

	// Copia byte a byte, extensión por contenido y no por nombre
	got := testutil.ReadFile(t, filepath.Join(out, "a.png"))
	testutil.AssertEqual(t, string(got), string(pngData), "extracted bytes identical to source")
	if _, err := os.Stat(filepath.Join(out, "c.jpg")); err != nil {
		t.Errorf("c.jpg should exist: %v", err)
	}

	// Notificaciones de progreso completas
	testutil.AssertEqual(t, sink.started, 3, "RunStarted total")
	testutil.AssertEqual(t, len(sink.fileResults), 3, "one FileFinished per candidate")
	if sink.finished == nil {
		t.Fatal("RunFinished never called")
	}
	testutil.AssertEqual(t, sink.finished.ExtractedByFormat["PNG"], 1, "per-format count")
}

func TestPipeline_SkipsUnrecognized(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	testutil.WriteFile(t, filepath.Join(cache, "d.ndf"), testutil.UnknownBytes(64))

	p := newTestPipeline(t, ExtractionPipelineOptions{})
	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, summary.SkippedUnrecognized, 1, "unknown payload skipped")
	testutil.AssertEqual(t, summary.Extracted, 0, "nothing extracted")

	entries, err := os.ReadDir(out)
	testutil.AssertNoError(t, err, "read output dir")
	testutil.AssertEqual(t, len(entries), 0, "skipped files leave no output")
}

func TestPipeline_MissingCacheDirIsFatal(t *testing.T) {
	p := newTestPipeline(t, ExtractionPipelineOptions{})

	summary, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	testutil.AssertError(t, err, "missing cache dir aborts the run")
	if !errors.Is(err, domain.ErrCacheDirNotFound) {
		t.Errorf("error should wrap ErrCacheDirNotFound, got %v", err)
	}
	if summary != nil {
		t.Error("fatal precondition must not produce a summary")
	}
}

func TestPipeline_CacheDirIsFile(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "file.ndf")
	testutil.WriteFile(t, notADir, []byte("x"))

	p := newTestPipeline(t, ExtractionPipelineOptions{})
	_, err := p.Run(context.Background(), notADir, t.TempDir())
	testutil.AssertError(t, err, "regular file is not a cache dir")
	if !errors.Is(err, domain.ErrCacheDirNotFound) {
		t.Errorf("error should wrap ErrCacheDirNotFound, got %v", err)
	}
}

func TestPipeline_FaultIsolation(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), testutil.PNGBytes(64))
	testutil.WriteFile(t, filepath.Join(cache, "z.ndf"), testutil.GIFBytes(64))

	// Symlink roto: stat de descubrimiento pasa, la apertura falla
	if err := os.Symlink(filepath.Join(cache, "missing-target"), filepath.Join(cache, "m.ndf")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	p := newTestPipeline(t, ExtractionPipelineOptions{})
	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "per-file failures never abort the run")
	testutil.AssertEqual(t, summary.Failed, 1, "broken candidate recorded as failed")
	testutil.AssertEqual(t, summary.Extracted, 2, "healthy candidates still extracted")
	testutil.AssertEqual(t, summary.Total(), 3, "counters sum to candidate total")

	for _, res := range summary.Results {
		if res.Outcome == domain.OutcomeFailed && res.Reason == "" {
			t.Error("failed result must carry a reason")
		}
	}
}

func TestPipeline_AllowDuplicates(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	data := testutil.PNGBytes(64)
	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), data)
	testutil.WriteFile(t, filepath.Join(cache, "b.ndf"), data)

	p := newTestPipeline(t, ExtractionPipelineOptions{AllowDuplicates: true})
	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, summary.Extracted, 2, "duplicates extracted when allowed")
	testutil.AssertEqual(t, summary.SkippedDuplicate, 0, "no dedup bookkeeping")

	if _, err := os.Stat(filepath.Join(out, "a.png")); err != nil {
		t.Errorf("a.png should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "b.png")); err != nil {
		t.Errorf("b.png should exist: %v", err)
	}
}

func TestPipeline_CollisionSuffix(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	// El destino a.png ya existe de una ejecución anterior
	testutil.WriteFile(t, filepath.Join(out, "a.png"), []byte("previous run"))
	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), testutil.PNGBytes(64))

	p := newTestPipeline(t, ExtractionPipelineOptions{})
	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, summary.Extracted, 1, "collision does not block extraction")

	// El archivo previo queda intacto y el nuevo recibe sufijo numérico
	prev := testutil.ReadFile(t, filepath.Join(out, "a.png"))
	testutil.AssertEqual(t, string(prev), "previous run", "existing file never overwritten")
	if _, err := os.Stat(filepath.Join(out, "a_1.png")); err != nil {
		t.Errorf("a_1.png should exist: %v", err)
	}
}

func TestPipeline_MinSizeFilter(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	testutil.WriteFile(t, filepath.Join(cache, "small.ndf"), testutil.PNGBytes(8))
	testutil.WriteFile(t, filepath.Join(cache, "big.ndf"), testutil.JPEGBytes(4096))

	p := newTestPipeline(t, ExtractionPipelineOptions{MinSizeBytes: 1024})
	summary, err := p.Run(context.Background(), cache, out)
	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, summary.SkippedTooSmall, 1, "small file filtered")
	testutil.AssertEqual(t, summary.Extracted, 1, "large file extracted")

	if _, err := os.Stat(filepath.Join(out, "small.png")); !os.IsNotExist(err) {
		t.Error("filtered file must not produce output")
	}
}

func TestPipeline_Cancellation(t *testing.T) {
	cache := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), testutil.PNGBytes(64))
	testutil.WriteFile(t, filepath.Join(cache, "b.ndf"), testutil.JPEGBytes(64))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recordingSink{}
	p := newTestPipeline(t, ExtractionPipelineOptions{Sink: sink})

	summary, err := p.Run(ctx, cache, out)
	testutil.AssertError(t, err, "cancelled run reports an error")
	if !errors.Is(err, errors.ErrCanceled) {
		t.Errorf("error should wrap ErrCanceled, got %v", err)
	}
	if summary == nil {
		t.Fatal("cancellation still yields a partial summary")
	}
	if sink.finished == nil {
		t.Error("RunFinished fires even on cancellation")
	}
}

func TestPipeline_DedupScopeIsPerRun(t *testing.T) {
	cache := t.TempDir()

	data := testutil.PNGBytes(64)
	testutil.WriteFile(t, filepath.Join(cache, "a.ndf"), data)

	p := newTestPipeline(t, ExtractionPipelineOptions{})

	// Dos runs sobre el mismo pipeline: el segundo no ve los digests del primero
	out1 := filepath.Join(t.TempDir(), "out1")
	summary, err := p.Run(context.Background(), cache, out1)
	testutil.AssertNoError(t, err, "first run")
	testutil.AssertEqual(t, summary.Extracted, 1, "first run extracts")

	out2 := filepath.Join(t.TempDir(), "out2")
	summary, err = p.Run(context.Background(), cache, out2)
	testutil.AssertNoError(t, err, "second run")
	testutil.AssertEqual(t, summary.Extracted, 1, "fresh dedup registry per run")
	testutil.AssertEqual(t, summary.SkippedDuplicate, 0, "no cross-run dedup state")
}

func TestUniqueDestPath(t *testing.T) {
	dir := t.TempDir()

	dest, err := uniqueDestPath(dir, "img", ".png")
	testutil.AssertNoError(t, err, "free name")
	testutil.AssertEqual(t, dest, filepath.Join(dir, "img.png"), "plain name when free")

	testutil.WriteFile(t, filepath.Join(dir, "img.png"), []byte("x"))
	testutil.WriteFile(t, filepath.Join(dir, "img_1.png"), []byte("x"))

	dest, err = uniqueDestPath(dir, "img", ".png")
	testutil.AssertNoError(t, err, "suffixed name")
	testutil.AssertEqual(t, dest, filepath.Join(dir, "img_2.png"), "counter skips taken names")
}

func TestCopyFile_RefusesExistingDest(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	testutil.WriteFile(t, src, []byte("data"))
	testutil.WriteFile(t, dst, []byte("occupied"))

	_, err := copyFile(src, dst)
	testutil.AssertError(t, err, "O_EXCL refuses an existing destination")

	got := testutil.ReadFile(t, dst)
	testutil.AssertEqual(t, string(got), "occupied", "destination untouched")
}
