// internal/platform/hashing/hashing_test.go
package hashing

import (
	"path/filepath"
	"testing"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/testutil"
)

func TestSHA256Hasher_KnownVector(t *testing.T) {
	h := NewSHA256Hasher()
	path := filepath.Join(t.TempDir(), "abc")
	testutil.WriteFile(t, path, []byte("abc"))

	digest, err := h.DigestFile(path)
	testutil.AssertNoError(t, err, "digest")
	testutil.AssertEqual(t, digest,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"sha256 of 'abc'")
}

func TestSHA256Hasher_IdenticalContentSameDigest(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()

	a := filepath.Join(dir, "a.ndf")
	b := filepath.Join(dir, "b.ndf")
	testutil.WriteFile(t, a, testutil.PNGBytes(256))
	testutil.WriteFile(t, b, testutil.PNGBytes(256))

	da, err := h.DigestFile(a)
	testutil.AssertNoError(t, err, "digest a")
	db, err := h.DigestFile(b)
	testutil.AssertNoError(t, err, "digest b")
	testutil.AssertEqual(t, da, db, "same bytes, same digest regardless of name")
}

func TestSHA256Hasher_DifferentContent(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	testutil.WriteFile(t, a, []byte("one"))
	testutil.WriteFile(t, b, []byte("two"))

	da, _ := h.DigestFile(a)
	db, _ := h.DigestFile(b)
	testutil.AssertNotEqual(t, da, db, "different bytes, different digest")
}

func TestSHA256Hasher_MissingFile(t *testing.T) {
	h := NewSHA256Hasher()
	_, err := h.DigestFile(filepath.Join(t.TempDir(), "nope"))
	testutil.AssertError(t, err, "missing file is an error")
}

func TestSHA256Hasher_Algorithm(t *testing.T) {
	testutil.AssertEqual(t, NewSHA256Hasher().Algorithm(), "sha256", "algorithm name")
}
