package observer

import (
	"chat-observer/errors"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected Policy
		err      error
	}{
		{input: "", expected: FailFast},
		{input: "fail-fast", expected: FailFast},
		{input: "isolate", expected: Isolate},
		{input: "best-effort", expected: FailFast, err: errors.ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := require.New(t)
			policy, err := ParsePolicy(tt.input)
			if tt.err != nil {
				req.True(stderrors.Is(err, tt.err))
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, policy)
			req.Equal(tt.input == "isolate", policy.String() == "isolate")
		})
	}
}
