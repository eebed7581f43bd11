package validation

import (
	"errors"
	"strings"
)

// Error is the aggregate failure returned by operations that require a fully
// valid model. Reasons preserve the order in which they were accumulated.
type Error struct {
	Reasons []string
}

func (e *Error) Error() string {
	if e == nil || len(e.Reasons) == 0 {
		return "validation: not valid"
	}
	return "validation: " + strings.Join(e.Reasons, "; ")
}

// ReasonsOf extracts the reasons carried by an *Error anywhere in err's chain.
func ReasonsOf(err error) ([]string, bool) {
	if err == nil {
		return nil, false
	}
	var verr *Error
	if errors.As(err, &verr) {
		return append([]string(nil), verr.Reasons...), true
	}
	return nil, false
}
