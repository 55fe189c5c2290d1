// Package links joins structural-variant breakends through chains of
// evidence links.
//
// Two kinds of link exist. Assembly links come from local assemblies shared
// by two breakends and are built once per run into a LinkStore. Transitive
// links are synthesized during a search from breakend geometry alone and live
// only in the chain a search returns.
//
// # Search
//
// TransitiveLinkFinder.Search starts from a breakend whose mate could not be
// joined directly and looks for a chain ending at a breakend equivalent to
// that mate:
//
//  1. Alternatives to the starting breakend seed one search node each.
//  2. Nodes are expanded breadth-first from two FIFO queues. The
//     assembly-pending queue is drained first and its first match wins
//     outright. Once it is empty, every further child (assembly or
//     transitive) goes to the transitive-pending queue.
//  3. More than one transitive-pending node, or more than one matched node,
//     is ambiguous and yields no chain.
//
// Every search is bounded by jump budgets on each node and by an iteration
// quota on the whole loop. None of the "no chain" outcomes is an error.
//
// A finder holds no per-search state; one finder may serve concurrent
// searches as long as the LinkStore and breakend index are no longer written.
package links
