// internal/core/usecases/dedupe_test.go
package usecases

import (
	"testing"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/testutil"
)

func TestDuplicateRegistry_Register(t *testing.T) {
	r := NewDuplicateRegistry()

	firstSeen, _ := r.Register("digest-a", "a.ndf")
	testutil.AssertTrue(t, firstSeen, "first registration is new")

	firstSeen, firstSource := r.Register("digest-a", "b.ndf")
	testutil.AssertFalse(t, firstSeen, "second registration is a duplicate")
	testutil.AssertEqual(t, firstSource, "a.ndf", "reports the original source")

	firstSeen, _ = r.Register("digest-b", "c.ndf")
	testutil.AssertTrue(t, firstSeen, "distinct digest is new")

	testutil.AssertEqual(t, r.Len(), 2, "two unique digests accepted")
}

func TestDuplicateRegistry_StartsEmpty(t *testing.T) {
	r := NewDuplicateRegistry()
	testutil.AssertEqual(t, r.Len(), 0, "new registry is empty")
}
