// Package engine resolves transitive links for every paired variant in a
// cache.
//
// A run has two phases:
//
//  1. Build: the cache's breakend map is rebuilt and assembly links are
//     derived from it. This phase is single-threaded and writes the shared
//     LinkStore.
//  2. Search: one transitive search per paired variant, fanned out over a
//     bounded pool of goroutines. The cache and LinkStore are read-only by
//     now and every search keeps its queues locally.
//
// Each search writes only its own slot in the result slice, so a report
// lists resolutions in variant order whatever the worker count.
package engine
