package sv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(variants ...*Variant) *Cache {
	c := NewCache()
	for _, v := range variants {
		c.AddVariant(v)
	}
	c.BuildBreakendMap()
	return c
}

func vcfIDs(breakends []*Breakend) []string {
	ids := make([]string, len(breakends))
	for i, b := range breakends {
		ids[i] = b.VcfID
	}
	return ids
}

func TestCache_BuildBreakendMap_SortsByPosition(t *testing.T) {
	a := NewVariant("a", site("1", 5000, PosOrient), site("1", 6000, NegOrient), Attributes{})
	b := NewVariant("b", site("1", 1000, PosOrient), site("2", 300, NegOrient), Attributes{})
	c := NewVariant("c", site("1", 5000, NegOrient), site("1", 5500, PosOrient), Attributes{})

	cache := newTestCache(a, b, c)

	assert.Equal(t, 3, cache.VariantCount())
	assert.Equal(t, []string{"1", "2"}, cache.Chromosomes())
	assert.Equal(t, []string{"bo", "ao", "co", "ch", "ah"}, vcfIDs(cache.BreakendMap()["1"]))
	assert.Equal(t, []string{"bh"}, vcfIDs(cache.BreakendMap()["2"]))
}

func TestCache_SelectOthersNearby(t *testing.T) {
	target := NewVariant("t", site("1", 10000, PosOrient), site("2", 100, NegOrient), Attributes{})
	near := NewVariant("n", site("1", 10500, PosOrient), site("1", 30000, NegOrient), Attributes{})
	edge := NewVariant("e", site("1", 9000, NegOrient), site("1", 40000, PosOrient), Attributes{})
	far := NewVariant("f", site("1", 11500, PosOrient), site("1", 50000, NegOrient), Attributes{})

	cache := newTestCache(target, near, edge, far)

	nearby := cache.SelectOthersNearby(target.Start(), 1000, 1000)
	assert.Equal(t, []string{"eo", "no"}, vcfIDs(nearby))

	wider := cache.SelectOthersNearby(target.Start(), 1500, 0)
	assert.Equal(t, []string{"eo", "no", "fo"}, vcfIDs(wider))
}

func TestCache_SelectOthersNearby_ImpreciseOverlap(t *testing.T) {
	target := NewVariant("t", site("1", 10000, PosOrient), site("2", 100, NegOrient), Attributes{})

	wide := site("1", 12000, PosOrient)
	wide.ConfidenceInterval = [2]int{-1500, 1500}
	imprecise := NewVariant("i", wide, site("1", 60000, NegOrient), Attributes{Imprecise: true})

	cache := newTestCache(target, imprecise)

	// Position is outside the overlap window but the bounds reach into it.
	nearby := cache.SelectOthersNearby(target.Start(), 1000, 1000)
	require.Len(t, nearby, 1)
	assert.Same(t, imprecise.Start(), nearby[0])

	// Without seek distance the scan stops before reaching it.
	assert.Empty(t, cache.SelectOthersNearby(target.Start(), 1000, 0))
}

func TestCache_SelectOthersNearby_UnknownChromosome(t *testing.T) {
	v := NewVariant("v", site("1", 100, PosOrient), site("1", 200, NegOrient), Attributes{})
	other := NewVariant("o", site("9", 100, PosOrient), site("9", 200, NegOrient), Attributes{})

	cache := newTestCache(v)

	assert.Empty(t, cache.SelectOthersNearby(other.Start(), 1000, 1000))
}

func TestCache_SelectOthersNearby_ExcludesSelf(t *testing.T) {
	v := NewVariant("v", site("1", 100, PosOrient), site("1", 200, NegOrient), Attributes{})

	cache := newTestCache(v)

	assert.Equal(t, []string{"vh"}, vcfIDs(cache.SelectOthersNearby(v.Start(), 1000, 1000)))
}
