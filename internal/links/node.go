package links

import (
	"fmt"

	"github.com/roach88/svlinks/internal/sv"
)

// TransLinkPrefix starts the ID of every synthesized transitive link.
const TransLinkPrefix = "trs"

// TransitiveLink is a search node: a partial chain from start to the
// current frontier breakend, end.
//
// The distance range is summed once at construction, taking for each link
// the larger bound into the maximum and the smaller into the minimum.
type TransitiveLink struct {
	prefix string
	start  *sv.Breakend
	end    *sv.Breakend

	remainingAssemblyJumps   int
	remainingTransitiveJumps int

	links       []Link
	minDistance int
	maxDistance int
}

// NewTransitiveLink creates a search node. links is owned by the node.
func NewTransitiveLink(
	prefix string,
	start, end *sv.Breakend,
	assemblyJumps, transitiveJumps int,
	links []Link,
) *TransitiveLink {
	node := &TransitiveLink{
		prefix:                   prefix,
		start:                    start,
		end:                      end,
		remainingAssemblyJumps:   assemblyJumps,
		remainingTransitiveJumps: transitiveJumps,
		links:                    links,
	}

	for _, link := range links {
		if link.MinDistance >= link.MaxDistance {
			node.maxDistance += link.MinDistance
			node.minDistance += link.MaxDistance
		} else {
			node.minDistance += link.MinDistance
			node.maxDistance += link.MaxDistance
		}
	}

	return node
}

func (n *TransitiveLink) Prefix() string              { return n.prefix }
func (n *TransitiveLink) Start() *sv.Breakend         { return n.start }
func (n *TransitiveLink) End() *sv.Breakend           { return n.end }
func (n *TransitiveLink) Links() []Link               { return n.links }
func (n *TransitiveLink) MinDistance() int            { return n.minDistance }
func (n *TransitiveLink) MaxDistance() int            { return n.maxDistance }
func (n *TransitiveLink) RemainingAssemblyJumps() int { return n.remainingAssemblyJumps }

func (n *TransitiveLink) RemainingTransitiveJumps() int { return n.remainingTransitiveJumps }

// MatchesTarget reports whether the node's frontier reaches target. For a
// precise target the chain length must also cover the target's insert
// sequence plus any duplicated span.
func (n *TransitiveLink) MatchesTarget(target *sv.Breakend) bool {
	if !IsAlternative(target, n.end) {
		return false
	}

	if !target.Imprecise() {
		targetDistance := target.InsertSequenceLength() + target.Variant().DuplicationLength()
		if targetDistance < n.minDistance || targetDistance > n.maxDistance {
			return false
		}
	}

	return true
}

// hasLink reports whether link is already part of the node's chain.
func (n *TransitiveLink) hasLink(link Link) bool {
	for _, existing := range n.links {
		if existing.Equal(link) {
			return true
		}
	}
	return false
}

// extend copies the chain and appends extra links to the copy.
func (n *TransitiveLink) extend(extra ...Link) []Link {
	links := make([]Link, 0, len(n.links)+len(extra))
	links = append(links, n.links...)
	return append(links, extra...)
}

func (n *TransitiveLink) String() string {
	return fmt.Sprintf("%s breaks(%s - %s) links(%d)", n.prefix, n.start, n.end, len(n.links))
}
