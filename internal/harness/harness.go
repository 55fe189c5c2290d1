package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/engine"
	"github.com/roach88/svlinks/internal/links"
	"github.com/roach88/svlinks/internal/store"
	"github.com/roach88/svlinks/internal/testutil"
)

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Apply the scenario's config overrides to the defaults
// 2. Load the variants and run the engine with a fixed run ID
// 3. Persist the run to a fresh in-memory store and read the chains back
// 4. Compare the expectations against the resolutions
//
// Returns an error only when the scenario cannot be executed; failed
// expectations are reported in the result.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	cfg, err := config.FromOverrides(scenario.Config)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	eng := engine.New(scenario.BuildCache(), cfg,
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
		engine.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(scenario.RunID)),
	)

	report, err := eng.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: run engine: %w", scenario.Name, err)
	}

	result := NewResult()
	result.RunID = report.RunID
	for _, res := range report.Resolutions {
		result.Resolutions = append(result.Resolutions, ResolutionSnapshot{
			Breakend: res.BreakendID,
			Outcome:  res.Outcome.String(),
			Links:    links.LinkIDs(res.Links),
		})
	}

	if err := checkStored(ctx, report, result); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	for _, e := range scenario.Expect {
		checkExpectation(e, result)
	}

	return result, nil
}

// checkStored writes the run to an in-memory store and verifies each chain
// reads back as reported.
func checkStored(ctx context.Context, report *engine.Report, result *Result) error {
	st, err := store.Open(":memory:")
	if err != nil {
		return fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	if err := st.WriteRun(ctx, report); err != nil {
		return err
	}

	chains, err := st.ReadChains(ctx, report.RunID)
	if err != nil {
		return err
	}

	stored := make(map[string][]string, len(chains))
	for _, chain := range chains {
		ids := make([]string, len(chain.Links))
		for i, link := range chain.Links {
			ids[i] = link.LinkID
		}
		stored[chain.BreakendID] = ids
	}

	for _, res := range result.Resolutions {
		if len(res.Links) == 0 {
			continue
		}
		if !slices.Equal(stored[res.Breakend], res.Links) {
			result.AddError(fmt.Sprintf("%s: stored chain [%s] differs from reported [%s]",
				res.Breakend, strings.Join(stored[res.Breakend], ","), strings.Join(res.Links, ",")))
		}
	}

	return nil
}

func checkExpectation(e Expectation, result *Result) {
	res, ok := result.Resolution(e.Breakend)
	if !ok {
		result.AddError(fmt.Sprintf("%s: breakend was not searched", e.Breakend))
		return
	}

	if e.Outcome != "" && e.Outcome != res.Outcome {
		result.AddError(fmt.Sprintf("%s: outcome = %s, want %s", e.Breakend, res.Outcome, e.Outcome))
	}

	if !slices.Equal(e.Links, res.Links) {
		result.AddError(fmt.Sprintf("%s: links = [%s], want [%s]",
			e.Breakend, strings.Join(res.Links, ","), strings.Join(e.Links, ",")))
	}
}
