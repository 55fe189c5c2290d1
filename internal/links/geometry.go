package links

import "github.com/roach88/svlinks/internal/sv"

// DefaultAllowance is the positional slack IsAlternative applies to the target.
const DefaultAllowance = 1

// IsAlternative reports whether other could describe the same breakpoint as
// target, within DefaultAllowance bases.
func IsAlternative(target, other *sv.Breakend) bool {
	return IsAlternativeWithin(target, other, DefaultAllowance)
}

// IsAlternativeWithin reports whether other could describe the same
// breakpoint as target. Both must share an orientation and belong to
// different variants. The target's bounds are widened by allowance on both
// sides and by its insert sequence on the side it points to; the other's
// bounds only by its own insert sequence. The breakends are alternatives when
// the two intervals overlap.
func IsAlternativeWithin(target, other *sv.Breakend, allowance int) bool {
	if target == other || target.Variant() == other.Variant() {
		return false
	}
	if target.Orientation != other.Orientation {
		return false
	}

	targetMin, targetMax := insertWidenedBounds(target)
	targetMin -= allowance
	targetMax += allowance

	otherMin, otherMax := insertWidenedBounds(other)

	return otherMin <= targetMax && otherMax >= targetMin
}

func insertWidenedBounds(b *sv.Breakend) (int, int) {
	minPos, maxPos := b.MinPosition(), b.MaxPosition()
	if b.PosOrient() {
		maxPos += b.InsertSequenceLength()
	} else {
		minPos -= b.InsertSequenceLength()
	}
	return minPos, maxPos
}

// AreCandidateLink reports whether second can follow first as a transitive
// hop: the two must face each other and be at least minDistance apart. A
// positive-oriented first needs second entirely before it; a negative one
// needs second entirely after it.
func AreCandidateLink(first, second *sv.Breakend, minDistance int) bool {
	if first.Orientation == second.Orientation {
		return false
	}

	if first.PosOrient() {
		return second.MaxPosition() <= first.MinPosition()-minDistance
	}
	return second.MinPosition() >= first.MaxPosition()+minDistance
}
