package links

import (
	"fmt"

	"github.com/roach88/svlinks/internal/sv"
)

// PairLinkID identifies the zero-length marker joining a variant's two ends.
const PairLinkID = "PAIR"

// Link is an edge between two breakends with an estimated distance range.
type Link struct {
	ID          string
	MinDistance int
	MaxDistance int

	breakends [2]*sv.Breakend
}

// NewLink creates a link from first to second, estimating the distance
// between them from their position bounds.
func NewLink(id string, first, second *sv.Breakend) Link {
	return Link{
		ID:          id,
		MinDistance: abs(first.MaxPosition() - second.MinPosition()),
		MaxDistance: abs(first.MinPosition() - second.MaxPosition()),
		breakends:   [2]*sv.Breakend{first, second},
	}
}

// PairLink creates the zero-length marker from b to its mate. It records
// that a chain passed through b's variant.
func PairLink(b *sv.Breakend) Link {
	return Link{
		ID:        PairLinkID,
		breakends: [2]*sv.Breakend{b, b.Other()},
	}
}

// First returns the breakend the link starts from.
func (l Link) First() *sv.Breakend { return l.breakends[0] }

// Second returns the breakend the link ends at.
func (l Link) Second() *sv.Breakend { return l.breakends[1] }

// Reverse returns the same link seen from its second breakend.
func (l Link) Reverse() Link {
	return Link{
		ID:          l.ID,
		MinDistance: l.MinDistance,
		MaxDistance: l.MaxDistance,
		breakends:   [2]*sv.Breakend{l.breakends[1], l.breakends[0]},
	}
}

// OtherBreakend returns the endpoint that is not b.
func (l Link) OtherBreakend(b *sv.Breakend) *sv.Breakend {
	if l.breakends[0] == b {
		return l.breakends[1]
	}
	return l.breakends[0]
}

// Equal reports whether both links have the same ID and join the same two
// breakends, in either direction.
func (l Link) Equal(other Link) bool {
	if l.ID != other.ID {
		return false
	}
	return (l.breakends[0] == other.breakends[0] && l.breakends[1] == other.breakends[1]) ||
		(l.breakends[0] == other.breakends[1] && l.breakends[1] == other.breakends[0])
}

func (l Link) String() string {
	return fmt.Sprintf("%s<%s-%s> distance(%d-%d)",
		l.ID, vcfID(l.breakends[0]), vcfID(l.breakends[1]), l.MinDistance, l.MaxDistance)
}

// LinkIDs returns the IDs of a chain in order.
func LinkIDs(chain []Link) []string {
	ids := make([]string, len(chain))
	for i, l := range chain {
		ids[i] = l.ID
	}
	return ids
}

func vcfID(b *sv.Breakend) string {
	if b == nil {
		return "none"
	}
	return b.VcfID
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
