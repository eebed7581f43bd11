package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Converter turns an input value into the type a downstream validator checks.
// The returned error message becomes the not-valid reason.
type Converter[In, Out any] func(In) (Out, error)

type transformValidator[In, Out any] struct {
	convert Converter[In, Out]
	next    Validator[Out]
}

// Transform builds a validator that converts its input before delegating to
// next. Conversion failures short-circuit to not valid; next never runs. The
// absent policy is inherited from next.
func Transform[In, Out any](convert Converter[In, Out], next Validator[Out]) Validator[In] {
	return transformValidator[In, Out]{convert: convert, next: next}
}

func (v transformValidator[In, Out]) Validate(value In) Result {
	out, err := v.convert(value)
	if err != nil {
		return NotValid(err.Error())
	}
	if v.next == nil {
		return Valid()
	}
	return v.next.Validate(out)
}

func (v transformValidator[In, Out]) Absent() Result {
	if v.next == nil {
		return Valid()
	}
	return v.next.Absent()
}

// ParseInt converts base-10 text (surrounding whitespace ignored) and feeds the
// integer to next.
func ParseInt(next Validator[int]) Validator[string] {
	return Transform(ToInt, next)
}

// ParseFloat converts decimal text and feeds the float to next.
func ParseFloat(next Validator[float64]) Validator[string] {
	return Transform(ToFloat, next)
}

// ToInt is the Converter used by ParseInt.
func ToInt(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return n, nil
}

// ToFloat is the Converter used by ParseFloat. NaN and infinities are not
// numbers a form can hold.
func ToFloat(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return f, nil
}
