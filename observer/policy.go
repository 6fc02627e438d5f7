package observer

import (
	"chat-observer/errors"
	"fmt"
)

// Policy decides what a notification round does when a listener fails.
type Policy int

const (
	// FailFast stops the round at the first failing listener and returns its error.
	FailFast Policy = iota
	// Isolate notifies every listener and returns all failures together.
	Isolate
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case Isolate:
		return "isolate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps the configuration spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "fail-fast", "":
		return FailFast, nil
	case "isolate":
		return Isolate, nil
	default:
		return FailFast, fmt.Errorf("%w: %q", errors.ErrInvalidPolicy, s)
	}
}
