package tourney

import "fmt"

// Policy decides what happens to a record that fails to decode.
type Policy string

const (
	// PolicyAbort stops scoring at the first bad record.
	PolicyAbort Policy = "abort"
	// PolicySkip drops the bad record from every tally and carries on.
	PolicySkip Policy = "skip"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAbort, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("unknown invalid record policy %q, want %q or %q", s, PolicyAbort, PolicySkip)
	}
}
