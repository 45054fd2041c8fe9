// internal/formats/png/png_test.go
package png

import (
	"testing"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/testutil"
)

func TestRule(t *testing.T) {
	rule := Rule()
	testutil.AssertNoError(t, rule.Validate(), "rule is well-formed")

	testutil.AssertTrue(t, rule.Matches(testutil.PNGBytes(8)), "canonical PNG header matches")
	testutil.AssertFalse(t, rule.Matches([]byte{0x89, 0x50, 0x4E, 0x47}), "partial magic does not match")
	testutil.AssertFalse(t, rule.Matches(testutil.JPEGBytes(8)), "other formats do not match")
}
