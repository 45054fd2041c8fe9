// internal/core/usecases/discovery_test.go
package usecases

import (
	"path/filepath"
	"testing"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/testutil"
)

func TestDiscoverCandidates_NestedTree(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteFile(t, filepath.Join(dir, "a.ndf"), []byte("aaaa"))
	testutil.WriteFile(t, filepath.Join(dir, "sub", "b.ndf"), []byte("bbbb"))
	testutil.WriteFile(t, filepath.Join(dir, "sub", "deep", "c.NDF"), []byte("cccc"))
	testutil.WriteFile(t, filepath.Join(dir, "ignore.png"), []byte("pppp"))
	testutil.WriteFile(t, filepath.Join(dir, "readme.txt"), []byte("tttt"))

	candidates, err := DiscoverCandidates(dir, false)
	testutil.AssertNoError(t, err, "discovery")
	testutil.AssertEqual(t, len(candidates), 3, "only cache files survive the walk")

	// Orden lexicográfico por ruta completa
	testutil.AssertEqual(t, candidates[0].Path, filepath.Join(dir, "a.ndf"), "first candidate")
	testutil.AssertEqual(t, candidates[1].Path, filepath.Join(dir, "sub", "b.ndf"), "second candidate")
	testutil.AssertEqual(t, candidates[2].Path, filepath.Join(dir, "sub", "deep", "c.NDF"), "third candidate")

	testutil.AssertEqual(t, candidates[0].Size, int64(4), "size recorded from stat")
}

func TestDiscoverCandidates_TempFiles(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteFile(t, filepath.Join(dir, "done.ndf"), []byte("xxxx"))
	testutil.WriteFile(t, filepath.Join(dir, "partial.ndf_tmp"), []byte("yyyy"))
	testutil.WriteFile(t, filepath.Join(dir, "empty.ndf_tmp"), nil)

	// Sin includeTemp solo entran los .ndf
	candidates, err := DiscoverCandidates(dir, false)
	testutil.AssertNoError(t, err, "discovery")
	testutil.AssertEqual(t, len(candidates), 1, "temp files excluded by default")

	// Con includeTemp entran los .ndf_tmp no vacíos
	candidates, err = DiscoverCandidates(dir, true)
	testutil.AssertNoError(t, err, "discovery with temp")
	testutil.AssertEqual(t, len(candidates), 2, "non-empty temp file included")
	for _, c := range candidates {
		if filepath.Base(c.Path) == "empty.ndf_tmp" {
			t.Error("empty temp file must never be a candidate")
		}
	}
}

func TestDiscoverCandidates_EmptyDir(t *testing.T) {
	candidates, err := DiscoverCandidates(t.TempDir(), false)
	testutil.AssertNoError(t, err, "walking an empty dir")
	testutil.AssertEqual(t, len(candidates), 0, "no candidates in empty dir")
}
