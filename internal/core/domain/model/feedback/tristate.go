package feedback

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// TriState is an answer that may not have been given yet.
type TriState int

const (
	Unset TriState = iota
	Yes
	No
)

// ParseTriState accepts yes/no (and true/false, y/n) case-insensitively; an
// empty string or "unknown" is Unset.
func ParseTriState(raw string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "unknown", "null":
		return Unset, nil
	case "yes", "y", "true":
		return Yes, nil
	case "no", "n", "false":
		return No, nil
	default:
		return Unset, errs.NewValueIsInvalidErrorWithCause("tri_state", fmt.Errorf("%q is not yes, no or empty", raw))
	}
}

// TriStateFromBool maps a nullable column.
func TriStateFromBool(b *bool) TriState {
	switch {
	case b == nil:
		return Unset
	case *b:
		return Yes
	default:
		return No
	}
}

// Bool is the nullable column form.
func (t TriState) Bool() *bool {
	var v bool
	switch t {
	case Yes:
		v = true
	case No:
		v = false
	default:
		return nil
	}
	return &v
}

func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return ""
	}
}

func (t TriState) IsSet() bool {
	return t == Yes || t == No
}
