// Package sv models structural-variant breakends and the in-memory variant
// cache the link search reads from.
//
// A Variant owns one breakend (single-ended, SGL) or two (paired). Breakends
// are created together with their variant and are never mutated afterwards,
// so pointer identity is breakend identity throughout the module.
//
// # Spatial queries
//
// Cache.BuildBreakendMap sorts each chromosome's breakends by position and
// loads them into a B-tree. SelectOthersNearby walks that tree in ascending
// position order:
//
//	seek window:    [min - additional - seek, max + additional + seek]
//	overlap window: [min - additional,        max + additional]
//
// Every breakend positioned inside the seek window whose own bounds overlap
// the overlap window is returned, except the query breakend itself.
//
// The cache must not be modified once BuildBreakendMap has run; after that
// point it is safe for concurrent readers.
package sv
