package harness

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as text, one searched breakend per line:
//
//	<breakend>\t<outcome>\t<link IDs, comma separated, or ->
//
// The first line names the scenario.
func Snapshot(name string, result *Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", name)

	for _, res := range result.Resolutions {
		chain := "-"
		if len(res.Links) > 0 {
			chain = strings.Join(res.Links, ",")
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", res.Breakend, res.Outcome, chain)
	}

	return buf.Bytes()
}

// RunWithGolden executes a scenario and compares its resolutions against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares a result against a golden file without re-running
// the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, Snapshot(scenarioName, result))
}
