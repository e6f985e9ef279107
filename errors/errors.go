package errors

import (
	"fmt"

	"github.com/pontaoski/shaderast/source"
)

// InvalidArgument reports text that does not name a known enumeration value,
// such as an unknown qualifier or operator token.
type InvalidArgument struct {
	What     string
	Text     string
	Location source.Span
}

func (e InvalidArgument) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("invalid %s %q", e.What, e.Text)
	}
	return fmt.Sprintf("invalid %s %q. %s", e.What, e.Text, e.Location)
}

type OutOfRange struct {
	What  string
	Index int
	Limit int
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

// UnsatisfiedConstraint is returned when a generic parameter substitution is
// rejected, or when no constraint exists for the parameter.
type UnsatisfiedConstraint struct {
	Parameter string
	Candidate string
}

func (e UnsatisfiedConstraint) Error() string {
	return fmt.Sprintf("type %s does not satisfy the constraint on %s", e.Candidate, e.Parameter)
}
