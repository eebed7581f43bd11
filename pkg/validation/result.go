package validation

import "strings"

// Result captures a validation outcome. The zero value is valid.
type Result struct {
	reasons []string
	invalid bool
}

// Valid returns a passing result.
func Valid() Result {
	return Result{}
}

// NotValid returns a failing result carrying the supplied reasons. Blank
// reasons are dropped but the result stays not valid even when none remain.
func NotValid(reasons ...string) Result {
	out := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		if trimmed := strings.TrimSpace(reason); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return Result{reasons: out, invalid: true}
}

// IsValid reports whether the result passed.
func (r Result) IsValid() bool {
	return !r.invalid
}

// Reasons returns a copy of the accumulated reasons in order.
func (r Result) Reasons() []string {
	if len(r.reasons) == 0 {
		return nil
	}
	return append([]string(nil), r.reasons...)
}

// Combine merges r with other. Reasons are concatenated left to right and the
// outcome is valid only when both sides are valid.
func (r Result) Combine(other Result) Result {
	if !r.invalid && !other.invalid {
		return Valid()
	}
	reasons := make([]string, 0, len(r.reasons)+len(other.reasons))
	reasons = append(reasons, r.reasons...)
	reasons = append(reasons, other.reasons...)
	return Result{reasons: reasons, invalid: true}
}

// Suffixed appends " (label)" to every reason so aggregated results stay
// traceable to the field that produced them.
func (r Result) Suffixed(label string) Result {
	label = strings.TrimSpace(label)
	if !r.invalid || label == "" {
		return r
	}
	reasons := make([]string, len(r.reasons))
	for i, reason := range r.reasons {
		reasons[i] = reason + " (" + label + ")"
	}
	return Result{reasons: reasons, invalid: true}
}

// Err converts a not-valid result into an *Error. Valid results return nil.
func (r Result) Err() error {
	if !r.invalid {
		return nil
	}
	return &Error{Reasons: r.Reasons()}
}

// String renders the result for logs and debugging output.
func (r Result) String() string {
	if !r.invalid {
		return "valid"
	}
	if len(r.reasons) == 0 {
		return "not valid"
	}
	return "not valid: " + strings.Join(r.reasons, "; ")
}

// Combined folds results in order. An empty input is valid.
func Combined(results ...Result) Result {
	out := Valid()
	for _, result := range results {
		out = out.Combine(result)
	}
	return out
}
