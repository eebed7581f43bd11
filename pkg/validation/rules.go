package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LengthRange accepts text whose rune count lies in [min, max]. Absent text is
// valid.
func LengthRange(min, max int) Validator[string] {
	return New(AbsentValid, func(value string) Result {
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return NotValid(fmt.Sprintf("length must be between %d and %d characters, got %d", min, max, n))
		}
		return Valid()
	})
}

// IntRange accepts integers in [min, max]. Absent values are valid.
func IntRange(min, max int) Validator[int] {
	return New(AbsentValid, func(value int) Result {
		if value < min || value > max {
			return NotValid(fmt.Sprintf("%d is out of range [%d, %d]", value, min, max))
		}
		return Valid()
	})
}

// FloatRange accepts floats in [min, max]. Absent values are valid.
func FloatRange(min, max float64) Validator[float64] {
	return New(AbsentValid, func(value float64) Result {
		if value < min || value > max {
			return NotValid(fmt.Sprintf("%s is out of range [%s, %s]", formatFloat(value), formatFloat(min), formatFloat(max)))
		}
		return Valid()
	})
}

// Pattern accepts text matching re.
func Pattern(re *regexp.Regexp) Validator[string] {
	return New(AbsentValid, func(value string) Result {
		if re == nil || re.MatchString(value) {
			return Valid()
		}
		return NotValid(fmt.Sprintf("does not match pattern %s", re.String()))
	})
}

// NotBlank rejects absent and whitespace-only text.
func NotBlank() Validator[string] {
	return New(AbsentInvalid, func(value string) Result {
		if strings.TrimSpace(value) == "" {
			return NotValid(ReasonRequired)
		}
		return Valid()
	})
}

// OneOf accepts only the listed selection indices.
func OneOf(indices ...int) Validator[int] {
	allowed := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		allowed[idx] = struct{}{}
	}
	return New(AbsentValid, func(value int) Result {
		if _, ok := allowed[value]; ok {
			return Valid()
		}
		return NotValid(fmt.Sprintf("option %d is not allowed", value))
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
