package scenario

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/libcore/internal/trace"
)

// AssertGolden compares the result's session, as canonical JSON, against
// testdata/golden/<name>.golden.
//
// To regenerate golden files, run the calling test with -update.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := trace.MarshalCanonical(result.Session)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
