package links

// Outcome explains how a transitive search ended.
type Outcome int

const (
	// OutcomeResolved means a single chain was found.
	OutcomeResolved Outcome = iota + 1
	// OutcomeTooManyVariants means the dataset exceeds the search ceiling.
	OutcomeTooManyVariants
	// OutcomeSingleBreakend means the breakend has no mate to resolve toward.
	OutcomeSingleBreakend
	// OutcomeNoAlternatives means no breakend could stand in for the start.
	OutcomeNoAlternatives
	// OutcomeTooManyAlternatives means the alternatives were too many to trust.
	OutcomeTooManyAlternatives
	// OutcomeAmbiguous means more than one chain was viable.
	OutcomeAmbiguous
	// OutcomeExhausted means every path ran out without reaching the target.
	OutcomeExhausted
	// OutcomeIterationLimit means the loop hit its iteration ceiling.
	OutcomeIterationLimit
)

var outcomeNames = map[Outcome]string{
	OutcomeResolved:            "resolved",
	OutcomeTooManyVariants:     "too_many_variants",
	OutcomeSingleBreakend:      "single_breakend",
	OutcomeNoAlternatives:      "no_alternatives",
	OutcomeTooManyAlternatives: "too_many_alternatives",
	OutcomeAmbiguous:           "ambiguous",
	OutcomeExhausted:           "exhausted",
	OutcomeIterationLimit:      "iteration_limit",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Outcomes lists every outcome in declaration order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeResolved,
		OutcomeTooManyVariants,
		OutcomeSingleBreakend,
		OutcomeNoAlternatives,
		OutcomeTooManyAlternatives,
		OutcomeAmbiguous,
		OutcomeExhausted,
		OutcomeIterationLimit,
	}
}

// ParseOutcome returns the outcome with the given name.
func ParseOutcome(name string) (Outcome, bool) {
	for outcome, n := range outcomeNames {
		if n == name {
			return outcome, true
		}
	}
	return 0, false
}
