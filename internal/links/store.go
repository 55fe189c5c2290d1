package links

import "github.com/roach88/svlinks/internal/sv"

// LinkStore maps each breakend to the links touching it.
//
// Storage is symmetric: a link added from A to B is listed under A as is and
// under B as its reverse. The store is written by a single goroutine during
// the build phase and only read afterwards.
type LinkStore struct {
	breakendLinks map[*sv.Breakend][]Link
	ordered       []Link
}

// NewLinkStore creates an empty store.
func NewLinkStore() *LinkStore {
	return &LinkStore{
		breakendLinks: make(map[*sv.Breakend][]Link),
	}
}

// AddLinks links first and second under id. It is a no-op, returning false,
// when either breakend already holds a link with the same ID or a link to the
// other: a breakend can assemble to several breakends but not to the same
// breakend twice.
func (s *LinkStore) AddLinks(id string, first, second *sv.Breakend) bool {
	if s.hasLink(first, id, second) || s.hasLink(second, id, first) {
		return false
	}

	link := NewLink(id, first, second)
	s.breakendLinks[first] = append(s.breakendLinks[first], link)
	s.breakendLinks[second] = append(s.breakendLinks[second], link.Reverse())
	s.ordered = append(s.ordered, link)
	return true
}

func (s *LinkStore) hasLink(b *sv.Breakend, id string, partner *sv.Breakend) bool {
	for _, existing := range s.breakendLinks[b] {
		if existing.ID == id || existing.OtherBreakend(b) == partner {
			return true
		}
	}
	return false
}

// Links returns the links touching b in insertion order, or nil if there are none.
// The returned slice must not be modified.
func (s *LinkStore) Links(b *sv.Breakend) []Link {
	return s.breakendLinks[b]
}

// Contains reports whether b has at least one link.
func (s *LinkStore) Contains(b *sv.Breakend) bool {
	_, ok := s.breakendLinks[b]
	return ok
}

// All returns every link once, as added, in insertion order.
func (s *LinkStore) All() []Link {
	return s.ordered
}

// Len returns the number of distinct links.
func (s *LinkStore) Len() int {
	return len(s.ordered)
}

// BreakendCount returns the number of breakends holding links.
func (s *LinkStore) BreakendCount() int {
	return len(s.breakendLinks)
}

// Clear removes all links.
func (s *LinkStore) Clear() {
	s.breakendLinks = make(map[*sv.Breakend][]Link)
	s.ordered = nil
}
