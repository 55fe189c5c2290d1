package harness

// ResolutionSnapshot is one search result in a form that compares and
// serializes without breakend pointers.
type ResolutionSnapshot struct {
	Breakend string   `json:"breakend"`
	Outcome  string   `json:"outcome"`
	Links    []string `json:"links"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expectations match.
	Pass bool `json:"pass"`

	RunID string `json:"run_id"`

	// Resolutions holds one entry per searched breakend, in variant order.
	// Used for golden comparison.
	Resolutions []ResolutionSnapshot `json:"resolutions"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:        true,
		Resolutions: []ResolutionSnapshot{},
		Errors:      []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Resolution returns the snapshot for a breakend ID.
func (r *Result) Resolution(breakend string) (ResolutionSnapshot, bool) {
	for _, res := range r.Resolutions {
		if res.Breakend == breakend {
			return res, true
		}
	}
	return ResolutionSnapshot{}, false
}
