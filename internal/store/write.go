package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/roach88/svlinks/internal/engine"
	"github.com/roach88/svlinks/internal/links"
)

// DomainChain prefixes chain hashes. The version suffix leaves room to
// change the encoding without colliding with stored IDs.
const DomainChain = "svlinks/chain/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// chainLinkKey is the hashed form of one link.
type chainLinkKey struct {
	ID     string `json:"id"`
	First  string `json:"first"`
	Second string `json:"second"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

// ChainID computes the content-addressed ID of a chain. The same links in
// the same order always hash to the same ID.
func ChainID(chain []links.Link) (string, error) {
	keys := make([]chainLinkKey, len(chain))
	for i, link := range chain {
		keys[i] = chainLinkKey{
			ID:     link.ID,
			First:  link.First().VcfID,
			Second: link.Second().VcfID,
			Min:    link.MinDistance,
			Max:    link.MaxDistance,
		}
	}

	data, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("ChainID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainChain, data), nil
}

// WriteRun stores a report in one transaction: the run row, one row per
// resolution and every resolved chain.
//
// Uses ON CONFLICT DO NOTHING throughout, so writing the same report twice
// is a no-op and chains shared with earlier runs are not duplicated.
func (s *Store) WriteRun(ctx context.Context, report *engine.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, variant_count, assembly_links)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, report.RunID, report.VariantCount, report.AssemblyLinks)
	if err != nil {
		return fmt.Errorf("write run: insert run: %w", err)
	}

	for seq, res := range report.Resolutions {
		var chainID sql.NullString
		if len(res.Links) > 0 {
			id, err := writeChain(ctx, tx, res.Links)
			if err != nil {
				return fmt.Errorf("write run: %s: %w", res.BreakendID, err)
			}
			chainID = sql.NullString{String: id, Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO resolutions
			(run_id, seq, variant_id, breakend_id, outcome, iterations, chain_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, seq) DO NOTHING
		`,
			report.RunID,
			seq,
			res.VariantID,
			res.BreakendID,
			res.Outcome.String(),
			res.Iterations,
			chainID,
		)
		if err != nil {
			return fmt.Errorf("write run: insert resolution %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}

	return nil
}

// writeChain inserts a chain and its links unless already stored, and
// returns its ID.
func writeChain(ctx context.Context, tx *sql.Tx, chain []links.Link) (string, error) {
	id, err := ChainID(chain)
	if err != nil {
		return "", err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO chains (id, length)
		VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, len(chain))
	if err != nil {
		return "", fmt.Errorf("insert chain: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("insert chain: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return id, nil
	}

	for position, link := range chain {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chain_links
			(chain_id, position, link_id, first_breakend, second_breakend, min_distance, max_distance)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			id,
			position,
			link.ID,
			link.First().VcfID,
			link.Second().VcfID,
			link.MinDistance,
			link.MaxDistance,
		)
		if err != nil {
			return "", fmt.Errorf("insert chain link %d: %w", position, err)
		}
	}

	return id, nil
}
