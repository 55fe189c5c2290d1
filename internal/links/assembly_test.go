package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svlinks/internal/sv"
	"github.com/roach88/svlinks/internal/testutil"
)

func TestBuildAssemblyLinks_SharedAssemblies(t *testing.T) {
	f := testutil.NewVariantFactory()

	v1 := f.CreateInv("2", 1000, 2000, sv.NegOrient,
		testutil.WithEndAssemblies("asm12_01", "asm12_02", "asm13-01", "asm13-02"))
	v2 := f.CreateInv("2", 2100, 4200, sv.PosOrient,
		testutil.WithStartAssemblies("asm12_01", "asm12_02"),
		testutil.WithEndAssemblies("asm23-01", "asm23-02", "asm23-03"))
	v3 := f.CreateDel("2", 2200, 4100,
		testutil.WithStartAssemblies("asm13-01", "asm13-02"),
		testutil.WithEndAssemblies("asm23-01", "asm23-02", "asm23-03"))

	store := BuildAssemblyLinksFromVariants([]*sv.Variant{v1, v2, v3})

	assert.Equal(t, 3, store.Len())
	assert.Nil(t, store.Links(v1.Start()))

	v1End := store.Links(v1.End())
	require.Len(t, v1End, 2)
	assert.Equal(t, "asm12_01-0", v1End[0].ID)
	assert.Same(t, v2.Start(), v1End[0].Second())
	assert.Equal(t, "asm13-01-0", v1End[1].ID)
	assert.Same(t, v3.Start(), v1End[1].Second())

	v2End := store.Links(v2.End())
	require.Len(t, v2End, 1)
	assert.Same(t, v3.End(), v2End[0].Second())

	v3End := store.Links(v3.End())
	require.Len(t, v3End, 1)
	assert.Same(t, v2.End(), v3End[0].Second())
}

func TestBuildAssemblyLinks_DifferentChromosomes(t *testing.T) {
	f := testutil.NewVariantFactory()

	v1 := f.CreateDel("1", 1000, 2000, testutil.WithEndAssemblies("asm1"))
	v2 := f.CreateBnd("2", 2500, sv.PosOrient, "3", 100, sv.NegOrient, testutil.WithStartAssemblies("asm1"))

	store := BuildAssemblyLinksFromVariants([]*sv.Variant{v1, v2})

	assert.Zero(t, store.Len())
	assert.Nil(t, store.Links(v1.End()))
}

func TestBuildAssemblyLinks_Disqualified(t *testing.T) {
	tests := []struct {
		name  string
		build func(f *testutil.VariantFactory) []*sv.Variant
	}{
		{
			name: "same variant",
			build: func(f *testutil.VariantFactory) []*sv.Variant {
				return []*sv.Variant{f.CreateDup("1", 1000, 2000,
					testutil.WithStartAssemblies("asm1"), testutil.WithEndAssemblies("asm1"))}
			},
		},
		{
			name: "same orientation",
			build: func(f *testutil.VariantFactory) []*sv.Variant {
				return []*sv.Variant{
					f.CreateDel("1", 1000, 2000, testutil.WithEndAssemblies("asm1")),
					f.CreateDup("1", 2500, 4000, testutil.WithStartAssemblies("asm1")),
				}
			},
		},
		{
			name: "facing away",
			build: func(f *testutil.VariantFactory) []*sv.Variant {
				return []*sv.Variant{
					f.CreateDel("1", 1000, 3000, testutil.WithStartAssemblies("asm1")),
					f.CreateDup("1", 1500, 4000, testutil.WithStartAssemblies("asm1")),
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := BuildAssemblyLinksFromVariants(tt.build(testutil.NewVariantFactory()))
			assert.Zero(t, store.Len())
		})
	}
}

func TestBuildAssemblyLinks_DuplicateCitation(t *testing.T) {
	f := testutil.NewVariantFactory()

	v1 := f.CreateDel("1", 1000, 2000, testutil.WithEndAssemblies("asm1", "asm1"))
	v2 := f.CreateDel("1", 2500, 4000, testutil.WithStartAssemblies("asm1", "asm2"))

	store := BuildAssemblyLinksFromVariants([]*sv.Variant{v1, v2})

	require.Equal(t, 1, store.Len())
	assert.Equal(t, []string{"asm1-0"}, LinkIDs(store.Links(v1.End())))
	assert.Equal(t, []string{"asm1-0"}, LinkIDs(store.Links(v2.Start())))
}

func TestBuildAssemblyLinks_Clique(t *testing.T) {
	f := testutil.NewVariantFactory()

	// two negative then two positive breakends all citing one assembly:
	// C(4,2) = 6 pairs, less the two same-orientation pairs
	n1 := f.CreateBnd("1", 100, sv.NegOrient, "9", 1000, sv.PosOrient, testutil.WithStartAssemblies("clique"))
	n2 := f.CreateBnd("1", 200, sv.NegOrient, "9", 2000, sv.PosOrient, testutil.WithStartAssemblies("clique"))
	p1 := f.CreateBnd("1", 300, sv.PosOrient, "9", 3000, sv.NegOrient, testutil.WithStartAssemblies("clique"))
	p2 := f.CreateBnd("1", 400, sv.PosOrient, "9", 4000, sv.NegOrient, testutil.WithStartAssemblies("clique"))

	store := BuildAssemblyLinksFromVariants([]*sv.Variant{n1, n2, p1, p2})

	require.Equal(t, 4, store.Len())
	assert.Equal(t, []string{"clique-0", "clique-1", "clique-2", "clique-3"}, LinkIDs(store.All()))

	var pairs [][]string
	for _, link := range store.All() {
		pairs = append(pairs, breakendIDs(link.First(), link.Second()))
	}
	assert.Equal(t, [][]string{
		{"var1o", "var3o"},
		{"var1o", "var4o"},
		{"var2o", "var3o"},
		{"var2o", "var4o"},
	}, pairs)
}

func TestBuildAssemblyLinks_DeterministicIDs(t *testing.T) {
	build := func() []string {
		f := testutil.NewVariantFactory()
		v1 := f.CreateDel("1", 1000, 2000, testutil.WithEndAssemblies("b", "a"))
		v2 := f.CreateDel("1", 2500, 4000, testutil.WithStartAssemblies("b"))
		v3 := f.CreateDel("1", 3000, 5000, testutil.WithStartAssemblies("a"))
		return LinkIDs(BuildAssemblyLinksFromVariants([]*sv.Variant{v1, v2, v3}).All())
	}

	first := build()
	assert.Equal(t, []string{"a-0", "b-0"}, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, build())
	}
}
