package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/svlinks/internal/sv"
	"github.com/roach88/svlinks/internal/testutil"
)

func TestTransitiveLink_Distances(t *testing.T) {
	f := testutil.NewVariantFactory()
	v := f.CreateDel("1", 1000, 2000)

	links := []Link{
		PairLink(v.Start()),
		{ID: "inverted", MinDistance: 10, MaxDistance: 5},
		{ID: "ordered", MinDistance: 2, MaxDistance: 8},
	}

	node := NewTransitiveLink("trs_x_", v.Start(), v.End(), 5, 2, links)

	assert.Equal(t, 7, node.MinDistance())
	assert.Equal(t, 18, node.MaxDistance())
	assert.Equal(t, 5, node.RemainingAssemblyJumps())
	assert.Equal(t, 2, node.RemainingTransitiveJumps())
	assert.Equal(t, "trs_x_", node.Prefix())
}

func TestTransitiveLink_MatchesTarget(t *testing.T) {
	f := testutil.NewVariantFactory()

	origin := f.CreateBnd("1", 1000, sv.PosOrient, "2", 5000, sv.NegOrient, testutil.WithInsertLength(500))
	reach := f.CreateBnd("1", 2500, sv.PosOrient, "2", 5000, sv.NegOrient)
	target := origin.End()

	tests := []struct {
		name     string
		min, max int
		want     bool
	}{
		{"distance covers insert", 400, 600, true},
		{"exact distance", 500, 500, true},
		{"too short", 100, 499, false},
		{"too long", 501, 900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewTransitiveLink("p", reach.Start(), reach.End(), 0, 0,
				[]Link{{ID: "hop", MinDistance: tt.min, MaxDistance: tt.max}})
			assert.Equal(t, tt.want, node.MatchesTarget(target))
		})
	}
}

func TestTransitiveLink_MatchesTarget_ImpreciseIgnoresDistance(t *testing.T) {
	f := testutil.NewVariantFactory()

	origin := f.CreateBnd("1", 1000, sv.PosOrient, "2", 5000, sv.NegOrient,
		testutil.WithInsertLength(500), testutil.WithImprecise(-10, 10))
	reach := f.CreateBnd("1", 2500, sv.PosOrient, "2", 5005, sv.NegOrient)

	node := NewTransitiveLink("p", reach.Start(), reach.End(), 0, 0,
		[]Link{{ID: "hop", MinDistance: 1, MaxDistance: 1}})

	assert.True(t, node.MatchesTarget(origin.End()))
}

func TestTransitiveLink_MatchesTarget_DuplicationLength(t *testing.T) {
	f := testutil.NewVariantFactory()

	// duplicated span 1000-1099 is 100 bases
	dup := f.CreateDup("1", 1000, 1099)
	reach := f.CreateDup("1", 500, 1099)

	hop := func(distance int) *TransitiveLink {
		return NewTransitiveLink("p", reach.Start(), reach.End(), 0, 0,
			[]Link{{ID: "hop", MinDistance: distance, MaxDistance: distance}})
	}

	assert.True(t, hop(100).MatchesTarget(dup.End()))
	assert.False(t, hop(0).MatchesTarget(dup.End()))

	// orientation must agree whatever the distance
	del := f.CreateDel("1", 500, 1099)
	wrongWay := NewTransitiveLink("p", del.Start(), del.End(), 0, 0,
		[]Link{{ID: "hop", MinDistance: 100, MaxDistance: 100}})
	assert.False(t, wrongWay.MatchesTarget(dup.End()))
}

func TestTransitiveLink_Extend(t *testing.T) {
	f := testutil.NewVariantFactory()
	v := f.CreateDel("1", 1000, 2000)

	base := make([]Link, 1, 4)
	base[0] = PairLink(v.Start())
	node := NewTransitiveLink("p", v.Start(), v.End(), 1, 1, base)

	first := node.extend(Link{ID: "a"})
	second := node.extend(Link{ID: "b"})

	assert.Equal(t, []string{PairLinkID, "a"}, LinkIDs(first))
	assert.Equal(t, []string{PairLinkID, "b"}, LinkIDs(second))
	assert.Len(t, node.Links(), 1)
}

func TestTransitiveLink_HasLink(t *testing.T) {
	f := testutil.NewVariantFactory()
	v1 := f.CreateDel("1", 1000, 2000)
	v2 := f.CreateDel("1", 2500, 4000)

	link := NewLink("asm1-0", v1.End(), v2.Start())
	node := NewTransitiveLink("p", v2.Start(), v2.End(), 1, 1,
		[]Link{PairLink(v1.Start()), link, PairLink(v2.Start())})

	assert.True(t, node.hasLink(link))
	assert.True(t, node.hasLink(link.Reverse()))
	assert.False(t, node.hasLink(NewLink("asm2-0", v1.End(), v2.Start())))
}
