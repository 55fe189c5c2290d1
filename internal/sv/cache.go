package sv

import (
	"sort"

	"github.com/tidwall/btree"
)

// indexItem is one breakend in a chromosome's position index.
// seq keeps items with equal positions distinct and in insertion order.
type indexItem struct {
	position int
	seq      int
	breakend *Breakend
}

func indexItemLess(a, b indexItem) bool {
	if a.position != b.position {
		return a.position < b.position
	}
	return a.seq < b.seq
}

// Cache holds the loaded variants and answers proximity queries over their breakends.
type Cache struct {
	variants     []*Variant
	chrBreakends map[string][]*Breakend
	index        map[string]*btree.BTreeG[indexItem]
}

// NewCache creates an empty variant cache.
func NewCache() *Cache {
	return &Cache{
		chrBreakends: make(map[string][]*Breakend),
		index:        make(map[string]*btree.BTreeG[indexItem]),
	}
}

// AddVariant registers a variant. BuildBreakendMap must be called after the
// last variant is added and before any query.
func (c *Cache) AddVariant(v *Variant) {
	c.variants = append(c.variants, v)
}

// Variants returns the variants in the order they were added.
func (c *Cache) Variants() []*Variant {
	return c.variants
}

// VariantCount returns the number of loaded variants.
func (c *Cache) VariantCount() int {
	return len(c.variants)
}

// BuildBreakendMap groups breakends by chromosome, sorts each group by
// position and rebuilds the spatial index. Equal positions keep the order in
// which their variants were added.
func (c *Cache) BuildBreakendMap() {
	c.chrBreakends = make(map[string][]*Breakend)
	c.index = make(map[string]*btree.BTreeG[indexItem])

	for _, v := range c.variants {
		for _, b := range v.Breakends() {
			c.chrBreakends[b.Chromosome] = append(c.chrBreakends[b.Chromosome], b)
		}
	}

	for chr, breakends := range c.chrBreakends {
		sort.SliceStable(breakends, func(i, j int) bool {
			return breakends[i].Position < breakends[j].Position
		})

		tree := btree.NewBTreeG[indexItem](indexItemLess)
		for i, b := range breakends {
			tree.Set(indexItem{position: b.Position, seq: i, breakend: b})
		}
		c.index[chr] = tree
	}
}

// BreakendMap returns breakends grouped by chromosome, each sorted by position.
func (c *Cache) BreakendMap() map[string][]*Breakend {
	return c.chrBreakends
}

// Chromosomes returns the chromosomes holding at least one breakend, sorted.
func (c *Cache) Chromosomes() []string {
	chromosomes := make([]string, 0, len(c.chrBreakends))
	for chr := range c.chrBreakends {
		chromosomes = append(chromosomes, chr)
	}
	sort.Strings(chromosomes)
	return chromosomes
}

// SelectOthersNearby returns the breakends on b's chromosome whose bounds
// overlap b's bounds widened by additionalDistance, scanning no further than
// seekDistance beyond that window. Results are in ascending position order
// and never include b.
func (c *Cache) SelectOthersNearby(b *Breakend, additionalDistance, seekDistance int) []*Breakend {
	tree, ok := c.index[b.Chromosome]
	if !ok {
		return nil
	}

	minStart := b.MinPosition() - additionalDistance
	maxStart := b.MaxPosition() + additionalDistance
	seekEnd := maxStart + seekDistance

	var nearby []*Breakend
	tree.Ascend(indexItem{position: minStart - seekDistance, seq: -1}, func(item indexItem) bool {
		if item.position > seekEnd {
			return false
		}

		other := item.breakend
		if other != b && other.MinPosition() <= maxStart && other.MaxPosition() >= minStart {
			nearby = append(nearby, other)
		}
		return true
	})

	return nearby
}
