package validation

import "strings"

// AbsentPolicy declares how a validator treats a value that was never set.
type AbsentPolicy int

const (
	// AbsentValid accepts missing values.
	AbsentValid AbsentPolicy = iota
	// AbsentInvalid rejects missing values with a "required" reason.
	AbsentInvalid
)

// ReasonRequired is the reason reported for missing values under
// AbsentInvalid.
const ReasonRequired = "value is required"

// Result returns the outcome the policy produces for an absent value.
func (p AbsentPolicy) Result() Result {
	if p == AbsentInvalid {
		return NotValid(ReasonRequired)
	}
	return Valid()
}

// Validator checks values of type T. Implementations must be pure.
type Validator[T any] interface {
	Validate(value T) Result
	Absent() Result
}

// Check runs v against value, applying the absent policy when present is
// false. A nil validator accepts everything.
func Check[T any](v Validator[T], value T, present bool) Result {
	if v == nil {
		return Valid()
	}
	if !present {
		return v.Absent()
	}
	return v.Validate(value)
}

type funcValidator[T any] struct {
	policy AbsentPolicy
	fn     func(T) Result
}

// New adapts fn into a Validator with the given absent policy.
func New[T any](policy AbsentPolicy, fn func(T) Result) Validator[T] {
	return funcValidator[T]{policy: policy, fn: fn}
}

func (v funcValidator[T]) Validate(value T) Result {
	if v.fn == nil {
		return Valid()
	}
	return v.fn(value)
}

func (v funcValidator[T]) Absent() Result {
	return v.policy.Result()
}

type allValidator[T any] struct {
	validators []Validator[T]
}

// All combines validators so every one runs and their results are combined in
// order. The absent outcome combines each member's absent outcome, so a single
// AbsentInvalid member makes the whole chain reject missing values.
func All[T any](validators ...Validator[T]) Validator[T] {
	filtered := make([]Validator[T], 0, len(validators))
	for _, v := range validators {
		if v != nil {
			filtered = append(filtered, v)
		}
	}
	return allValidator[T]{validators: filtered}
}

func (v allValidator[T]) Validate(value T) Result {
	out := Valid()
	for _, member := range v.validators {
		out = out.Combine(member.Validate(value))
	}
	return out
}

func (v allValidator[T]) Absent() Result {
	out := Valid()
	for _, member := range v.validators {
		out = out.Combine(member.Absent())
	}
	return dedupe(out)
}

// Required wraps next so absent values are rejected regardless of next's own
// policy.
func Required[T any](next Validator[T]) Validator[T] {
	return requiredValidator[T]{next: next}
}

type requiredValidator[T any] struct {
	next Validator[T]
}

func (v requiredValidator[T]) Validate(value T) Result {
	if v.next == nil {
		return Valid()
	}
	return v.next.Validate(value)
}

func (v requiredValidator[T]) Absent() Result {
	return AbsentInvalid.Result()
}

// SkipBlank wraps next so whitespace-only text is valid, as if the value were
// absent. Optional fields use it to be cleared after they were set.
func SkipBlank(next Validator[string]) Validator[string] {
	return skipBlankValidator{next: next}
}

type skipBlankValidator struct {
	next Validator[string]
}

func (v skipBlankValidator) Validate(value string) Result {
	if strings.TrimSpace(value) == "" || v.next == nil {
		return Valid()
	}
	return v.next.Validate(value)
}

func (v skipBlankValidator) Absent() Result {
	if v.next == nil {
		return Valid()
	}
	return v.next.Absent()
}

func dedupe(r Result) Result {
	if r.IsValid() || len(r.reasons) < 2 {
		return r
	}
	seen := make(map[string]struct{}, len(r.reasons))
	out := make([]string, 0, len(r.reasons))
	for _, reason := range r.reasons {
		if _, ok := seen[reason]; ok {
			continue
		}
		seen[reason] = struct{}{}
		out = append(out, reason)
	}
	return Result{reasons: out, invalid: true}
}
