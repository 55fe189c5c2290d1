// Package store persists engine runs in SQLite.
//
// Tables:
//   - runs: one row per engine run
//   - resolutions: one row per searched variant, keyed by (run_id, seq)
//   - chains, chain_links: resolved chains, content-addressed so a chain
//     found by several runs is stored once
//
// All reads order by seq (resolutions) or position (chain links), never by
// insertion time, so a run reads back exactly as the engine reported it.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
