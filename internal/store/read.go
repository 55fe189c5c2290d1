package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Run is a stored run row.
type Run struct {
	ID            string
	VariantCount  int
	AssemblyLinks int
}

// Resolution is a stored resolution row. ChainID is empty when the search
// found no chain.
type Resolution struct {
	Seq        int
	VariantID  string
	BreakendID string
	Outcome    string
	Iterations int
	ChainID    string
}

// ChainLink is one stored link of a chain.
type ChainLink struct {
	Position       int
	LinkID         string
	FirstBreakend  string
	SecondBreakend string
	MinDistance    int
	MaxDistance    int
}

// Chain is a resolved chain as stored for one breakend of a run.
type Chain struct {
	ID         string
	BreakendID string
	Links      []ChainLink
}

// ReadRun returns a run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, variant_count, assembly_links
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.VariantCount, &run.AssemblyLinks)
	if err == sql.ErrNoRows {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	return run, nil
}

// ReadResolutions returns a run's resolutions ordered by seq.
//
// Returns an empty slice (not nil) if the run has none.
func (s *Store) ReadResolutions(ctx context.Context, runID string) ([]Resolution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, variant_id, breakend_id, outcome, iterations, chain_id
		FROM resolutions
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query resolutions: %w", err)
	}
	defer rows.Close()

	resolutions := []Resolution{}
	for rows.Next() {
		var res Resolution
		var chainID sql.NullString
		if err := rows.Scan(&res.Seq, &res.VariantID, &res.BreakendID, &res.Outcome, &res.Iterations, &chainID); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		res.ChainID = chainID.String
		resolutions = append(resolutions, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resolutions: %w", err)
	}

	return resolutions, nil
}

// ReadChains returns the chains resolved by a run, in resolution order.
//
// Returns an empty slice (not nil) if the run resolved nothing.
func (s *Store) ReadChains(ctx context.Context, runID string) ([]Chain, error) {
	resolutions, err := s.ReadResolutions(ctx, runID)
	if err != nil {
		return nil, err
	}

	chains := []Chain{}
	for _, res := range resolutions {
		if res.ChainID == "" {
			continue
		}

		chainLinks, err := s.ReadChainLinks(ctx, res.ChainID)
		if err != nil {
			return nil, err
		}

		chains = append(chains, Chain{
			ID:         res.ChainID,
			BreakendID: res.BreakendID,
			Links:      chainLinks,
		})
	}

	return chains, nil
}

// ReadChainLinks returns the links of a chain ordered by position.
func (s *Store) ReadChainLinks(ctx context.Context, chainID string) ([]ChainLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, link_id, first_breakend, second_breakend, min_distance, max_distance
		FROM chain_links
		WHERE chain_id = ?
		ORDER BY position ASC
	`, chainID)
	if err != nil {
		return nil, fmt.Errorf("query chain links: %w", err)
	}
	defer rows.Close()

	var chainLinks []ChainLink
	for rows.Next() {
		var link ChainLink
		if err := rows.Scan(
			&link.Position,
			&link.LinkID,
			&link.FirstBreakend,
			&link.SecondBreakend,
			&link.MinDistance,
			&link.MaxDistance,
		); err != nil {
			return nil, fmt.Errorf("scan chain link: %w", err)
		}
		chainLinks = append(chainLinks, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain links: %w", err)
	}

	return chainLinks, nil
}

// CountOutcomes returns how many resolutions of a run ended in each outcome.
func (s *Store) CountOutcomes(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*)
		FROM resolutions
		WHERE run_id = ?
		GROUP BY outcome
		ORDER BY outcome ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}

	return counts, nil
}
