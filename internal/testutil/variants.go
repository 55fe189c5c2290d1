package testutil

import (
	"fmt"

	"github.com/roach88/svlinks/internal/sv"
)

// DefaultQual is the quality given to variants created without WithQual.
const DefaultQual = 100

// VariantFactory creates variants with sequential IDs (var1, var2, ...).
//
// Not safe for concurrent use; create one per test.
type VariantFactory struct {
	next int
}

// NewVariantFactory creates a factory whose first variant is var1.
func NewVariantFactory() *VariantFactory {
	return &VariantFactory{next: 1}
}

type variantSpec struct {
	id              string
	attrs           sv.Attributes
	startAssemblies []string
	endAssemblies   []string
	ci              [2]int
}

// VariantOption adjusts a variant before it is built.
type VariantOption func(*variantSpec)

// WithID overrides the generated variant ID.
func WithID(id string) VariantOption {
	return func(s *variantSpec) {
		s.id = id
	}
}

// WithQual sets the variant quality.
func WithQual(qual float64) VariantOption {
	return func(s *variantSpec) {
		s.attrs.Qual = qual
	}
}

// WithInsertLength sets the inserted sequence length.
func WithInsertLength(length int) VariantOption {
	return func(s *variantSpec) {
		s.attrs.InsertSequenceLength = length
	}
}

// WithImprecise marks the variant imprecise with the same confidence
// interval on both ends.
func WithImprecise(ciStart, ciEnd int) VariantOption {
	return func(s *variantSpec) {
		s.attrs.Imprecise = true
		s.ci = [2]int{ciStart, ciEnd}
	}
}

// WithStartAssemblies sets the assemblies citing the start breakend.
func WithStartAssemblies(assemblies ...string) VariantOption {
	return func(s *variantSpec) {
		s.startAssemblies = assemblies
	}
}

// WithEndAssemblies sets the assemblies citing the end breakend.
func WithEndAssemblies(assemblies ...string) VariantOption {
	return func(s *variantSpec) {
		s.endAssemblies = assemblies
	}
}

func (f *VariantFactory) spec(opts []VariantOption) variantSpec {
	s := variantSpec{
		id:    fmt.Sprintf("var%d", f.next),
		attrs: sv.Attributes{Qual: DefaultQual},
	}
	f.next++

	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Create builds a paired variant from explicit ends; the type follows from
// the geometry.
func (f *VariantFactory) Create(
	startChr string, startPos int, startOrient sv.Orientation,
	endChr string, endPos int, endOrient sv.Orientation,
	opts ...VariantOption,
) *sv.Variant {
	s := f.spec(opts)

	start := sv.Site{
		Chromosome:         startChr,
		Position:           startPos,
		Orientation:        startOrient,
		Assemblies:         s.startAssemblies,
		ConfidenceInterval: s.ci,
	}
	end := sv.Site{
		Chromosome:         endChr,
		Position:           endPos,
		Orientation:        endOrient,
		Assemblies:         s.endAssemblies,
		ConfidenceInterval: s.ci,
	}

	return sv.NewVariant(s.id, start, end, s.attrs)
}

// CreateDel builds a deletion: start positive, end negative.
func (f *VariantFactory) CreateDel(chr string, start, end int, opts ...VariantOption) *sv.Variant {
	return f.Create(chr, start, sv.PosOrient, chr, end, sv.NegOrient, opts...)
}

// CreateDup builds a duplication: start negative, end positive.
func (f *VariantFactory) CreateDup(chr string, start, end int, opts ...VariantOption) *sv.Variant {
	return f.Create(chr, start, sv.NegOrient, chr, end, sv.PosOrient, opts...)
}

// CreateInv builds an inversion with both ends oriented as orient.
func (f *VariantFactory) CreateInv(chr string, start, end int, orient sv.Orientation, opts ...VariantOption) *sv.Variant {
	return f.Create(chr, start, orient, chr, end, orient, opts...)
}

// CreateBnd builds a translocation between two chromosomes.
func (f *VariantFactory) CreateBnd(
	startChr string, start int, startOrient sv.Orientation,
	endChr string, end int, endOrient sv.Orientation,
	opts ...VariantOption,
) *sv.Variant {
	return f.Create(startChr, start, startOrient, endChr, end, endOrient, opts...)
}

// CreateSgl builds a single-ended variant. Start assemblies apply to its
// only breakend.
func (f *VariantFactory) CreateSgl(chr string, pos int, orient sv.Orientation, opts ...VariantOption) *sv.Variant {
	s := f.spec(opts)

	site := sv.Site{
		Chromosome:         chr,
		Position:           pos,
		Orientation:        orient,
		Assemblies:         s.startAssemblies,
		ConfidenceInterval: s.ci,
	}
	return sv.NewSingle(s.id, site, s.attrs)
}

// NewCache loads variants into a cache and builds its breakend map.
func NewCache(variants ...*sv.Variant) *sv.Cache {
	cache := sv.NewCache()
	for _, v := range variants {
		cache.AddVariant(v)
	}
	cache.BuildBreakendMap()
	return cache
}
