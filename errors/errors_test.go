package errors

import (
	"testing"

	"github.com/pontaoski/shaderast/source"
)

func TestMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{InvalidArgument{What: "qualifier", Text: "sometimes"}, `invalid qualifier "sometimes"`},
		{InvalidArgument{What: "operator", Text: "=>", Location: source.NewSpan("a.sdsl", 1, 4, 3, 2)}, `invalid operator "=>". a.sdsl:1:4-1:6`},
		{OutOfRange{What: "vector axis", Index: 4, Limit: 4}, "vector axis index 4 out of range [0, 4)"},
		{UnsatisfiedConstraint{Parameter: "T", Candidate: "bool"}, "type bool does not satisfy the constraint on T"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Expected %q, got %q", c.want, got)
		}
	}
}
