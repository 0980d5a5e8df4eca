package mdp

import (
	"fmt"
	"strings"
)

// Solver names accepted by ByName.
const (
	NameValueIteration  = "value-iteration"
	NamePolicyIteration = "policy-iteration"
)

// Names lists the registered solvers.
func Names() []string {
	return []string{NameValueIteration, NamePolicyIteration}
}

// ByName builds the solver registered under name (case-insensitive).
func ByName(name string, opts ...Option) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameValueIteration:
		return NewValueIteration(opts...), nil
	case NamePolicyIteration:
		return NewPolicyIteration(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSolver, name, strings.Join(Names(), ", "))
	}
}
