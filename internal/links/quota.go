package links

import (
	"errors"
	"fmt"
)

// DefaultMaxIterations bounds the search loop. A well-formed input never
// comes close; reaching it indicates a pathological neighbourhood.
const DefaultMaxIterations = 500

// iterationQuota counts search loop iterations against a ceiling.
//
// Jump budgets bound the depth of each chain; the quota bounds the total
// work of one search regardless of branching.
type iterationQuota struct {
	limit   int
	current int
}

func newIterationQuota(limit int) *iterationQuota {
	return &iterationQuota{limit: limit}
}

// Check counts one iteration and fails once the ceiling is reached.
func (q *iterationQuota) Check(breakendID string) error {
	q.current++
	if q.current >= q.limit {
		return &IterationLimitError{
			Breakend:   breakendID,
			Iterations: q.current,
			Limit:      q.limit,
		}
	}
	return nil
}

// Current returns the number of iterations counted so far.
func (q *iterationQuota) Current() int {
	return q.current
}

// IterationLimitError reports a search abandoned at the iteration ceiling.
// The search result is empty; the error only travels to the log.
type IterationLimitError struct {
	Breakend   string
	Iterations int
	Limit      int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("breakend %s reached max iterations finding transitive links: %d >= %d limit",
		e.Breakend, e.Iterations, e.Limit)
}

// IsIterationLimitError reports whether err is, or wraps, an IterationLimitError.
func IsIterationLimitError(err error) bool {
	var ie *IterationLimitError
	return errors.As(err, &ie)
}
