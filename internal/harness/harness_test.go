package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err, path)

		t.Run(scenario.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_ReportsFailedExpectations(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "transitive_hop.yaml"))
	require.NoError(t, err)

	scenario.Expect = []Expectation{
		{Breakend: "var1o", Links: []string{"PAIR"}},
		{Breakend: "var2o", Outcome: "resolved"},
		{Breakend: "var9o"},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "var1o: links = [PAIR,trs_var1o_0,PAIR], want [PAIR]")
	assert.Contains(t, result.Errors[1], "var2o: outcome = exhausted, want resolved")
	assert.Contains(t, result.Errors[2], "var9o: breakend was not searched")
}

func TestRun_FixedRunID(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "single_breakend.yaml"))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, "test-run-default", result.RunID)

	scenario.RunID = "run-42"
	result, err = Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, "run-42", result.RunID)
}

func TestRun_InvalidConfig(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "single_breakend.yaml"))
	require.NoError(t, err)

	scenario.Config = map[string]any{"max-hops": 3}

	_, err = Run(scenario)
	assert.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "assembly_chain.yaml"))
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := Run(scenario)
		require.NoError(t, err)
		assert.Equal(t, Snapshot(scenario.Name, first), Snapshot(scenario.Name, again))
	}
}
