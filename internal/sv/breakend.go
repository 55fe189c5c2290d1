package sv

import "fmt"

// Orientation indicates which side of a breakend's position is joined.
type Orientation int8

const (
	// PosOrient joins the sequence ending at the position (bases to the left are retained).
	PosOrient Orientation = 1
	// NegOrient joins the sequence starting at the position.
	NegOrient Orientation = -1
)

// String renders the orientation as GRIDSS writes it.
func (o Orientation) String() string {
	switch o {
	case PosOrient:
		return "+1"
	case NegOrient:
		return "-1"
	default:
		return fmt.Sprintf("orientation(%d)", int8(o))
	}
}

// Valid reports whether o is one of the two defined orientations.
func (o Orientation) Valid() bool {
	return o == PosOrient || o == NegOrient
}

// Site describes one end of a variant before the variant is constructed.
type Site struct {
	Chromosome  string
	Position    int
	Orientation Orientation

	// Qual overrides the variant quality for this breakend when non-zero.
	Qual float64

	// Assemblies lists the local assemblies that called this breakend.
	Assemblies []string

	// ConfidenceInterval holds the CIPOS offsets applied to Position when
	// the variant is imprecise. Ignored for precise variants.
	ConfidenceInterval [2]int
}

// Breakend is one directional end of a structural variant.
type Breakend struct {
	// VcfID names the breakend: variant ID plus "o" (start), "h" (end) or "b" (single).
	VcfID string

	Chromosome  string
	Position    int
	Orientation Orientation
	Qual        float64

	assemblies []string
	ci         [2]int
	variant    *Variant
	isStart    bool
}

// Variant returns the structural variant owning this breakend.
func (b *Breakend) Variant() *Variant { return b.variant }

// IsStart reports whether this is the variant's start breakend.
func (b *Breakend) IsStart() bool { return b.isStart }

// Other returns the paired end of the variant, or nil for a single breakend.
func (b *Breakend) Other() *Breakend {
	if b.isStart {
		return b.variant.breakends[1]
	}
	return b.variant.breakends[0]
}

// IsSgl reports whether the breakend belongs to a single-ended variant.
func (b *Breakend) IsSgl() bool { return b.variant.IsSgl() }

// Imprecise reports whether the breakend coordinate is an estimated range.
func (b *Breakend) Imprecise() bool { return b.variant.Imprecise }

// PosOrient reports whether the breakend has positive orientation.
func (b *Breakend) PosOrient() bool { return b.Orientation == PosOrient }

// InsertSequenceLength is the length of the variant's inserted sequence.
func (b *Breakend) InsertSequenceLength() int { return b.variant.InsertSequenceLength }

// Assemblies returns the assembly identifiers citing this breakend.
// The returned slice must not be modified.
func (b *Breakend) Assemblies() []string { return b.assemblies }

// MinPosition is the lower position bound; equal to Position when precise.
func (b *Breakend) MinPosition() int {
	if !b.Imprecise() {
		return b.Position
	}
	return b.Position + b.ci[0]
}

// MaxPosition is the upper position bound; equal to Position when precise.
func (b *Breakend) MaxPosition() int {
	if !b.Imprecise() {
		return b.Position
	}
	return b.Position + b.ci[1]
}

func (b *Breakend) String() string {
	return fmt.Sprintf("%s %s:%d:%s", b.VcfID, b.Chromosome, b.Position, b.Orientation)
}
