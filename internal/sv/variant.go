package sv

import "fmt"

// Type is the structural variant class derived from breakend geometry.
type Type string

const (
	TypeDEL Type = "DEL"
	TypeDUP Type = "DUP"
	TypeINV Type = "INV"
	TypeINS Type = "INS"
	TypeBND Type = "BND"
	TypeSGL Type = "SGL"
)

// Attributes are the variant-level values shared by both breakends.
type Attributes struct {
	Qual                 float64
	InsertSequenceLength int
	Imprecise            bool
}

// Variant is a structural variant with one (single) or two (paired) breakends.
type Variant struct {
	ID                   string
	Type                 Type
	Qual                 float64
	InsertSequenceLength int
	Imprecise            bool

	breakends [2]*Breakend
}

// NewVariant creates a paired variant from its start and end sites.
// The type is derived from chromosomes and orientations.
func NewVariant(id string, start, end Site, attrs Attributes) *Variant {
	v := newVariant(id, attrs)
	v.breakends[0] = v.newBreakend(id+"o", start, true)
	v.breakends[1] = v.newBreakend(id+"h", end, false)
	v.Type = classify(v.breakends[0], v.breakends[1])
	return v
}

// NewSingle creates a single-ended (SGL) variant with no mate.
func NewSingle(id string, site Site, attrs Attributes) *Variant {
	v := newVariant(id, attrs)
	v.breakends[0] = v.newBreakend(id+"b", site, true)
	v.Type = TypeSGL
	return v
}

func newVariant(id string, attrs Attributes) *Variant {
	return &Variant{
		ID:                   id,
		Qual:                 attrs.Qual,
		InsertSequenceLength: attrs.InsertSequenceLength,
		Imprecise:            attrs.Imprecise,
	}
}

func (v *Variant) newBreakend(vcfID string, site Site, isStart bool) *Breakend {
	qual := site.Qual
	if qual == 0 {
		qual = v.Qual
	}

	var assemblies []string
	if len(site.Assemblies) > 0 {
		assemblies = make([]string, len(site.Assemblies))
		copy(assemblies, site.Assemblies)
	}

	return &Breakend{
		VcfID:       vcfID,
		Chromosome:  site.Chromosome,
		Position:    site.Position,
		Orientation: site.Orientation,
		Qual:        qual,
		assemblies:  assemblies,
		ci:          site.ConfidenceInterval,
		variant:     v,
		isStart:     isStart,
	}
}

func classify(start, end *Breakend) Type {
	if start.Chromosome != end.Chromosome {
		return TypeBND
	}
	if start.Orientation == end.Orientation {
		return TypeINV
	}
	if start.Orientation == PosOrient {
		if end.Position-start.Position <= 1 && start.variant.InsertSequenceLength > 0 {
			return TypeINS
		}
		return TypeDEL
	}
	return TypeDUP
}

// Start returns the start breakend.
func (v *Variant) Start() *Breakend { return v.breakends[0] }

// End returns the end breakend, or nil for a single-ended variant.
func (v *Variant) End() *Breakend { return v.breakends[1] }

// Breakends returns the variant's one or two breakends.
func (v *Variant) Breakends() []*Breakend {
	if v.breakends[1] == nil {
		return []*Breakend{v.breakends[0]}
	}
	return []*Breakend{v.breakends[0], v.breakends[1]}
}

// IsSgl reports whether the variant is single-ended.
func (v *Variant) IsSgl() bool { return v.breakends[1] == nil }

// DuplicationLength is the duplicated span for DUP variants, else 0.
func (v *Variant) DuplicationLength() int {
	if v.Type != TypeDUP {
		return 0
	}
	return v.breakends[1].Position - v.breakends[0].Position + 1
}

func (v *Variant) String() string {
	if v.IsSgl() {
		return fmt.Sprintf("%s %s %s:%d", v.ID, v.Type, v.Start().Chromosome, v.Start().Position)
	}
	return fmt.Sprintf("%s %s %s:%d-%s:%d", v.ID, v.Type,
		v.Start().Chromosome, v.Start().Position, v.End().Chromosome, v.End().Position)
}
