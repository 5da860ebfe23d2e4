package validate

import (
	"errors"
	"fmt"

	"github.com/arvonet/lnet/net"
)

// ErrNotAcyclic is returned when the net contains a directed cycle. Check
// tests acyclicity only once the structural checks have passed, and
// reports it on its own rather than accumulated alongside structural
// violations.
var ErrNotAcyclic = errors.New("validate: net is not acyclic")

// ErrStructural is the sentinel every *Violations wraps, so callers can
// branch with errors.Is without caring about the accumulated detail.
var ErrStructural = errors.New("validate: net violates structural invariants")

// Violation describes a single structural invariant failure.
type Violation struct {
	Node    net.NodeID
	Arc     net.ArcID // net.NoArc if the violation is node-scoped
	Message string
}

func (v Violation) String() string {
	if v.Arc != net.NoArc {
		return fmt.Sprintf("node %d, arc %d: %s", v.Node, v.Arc, v.Message)
	}

	return fmt.Sprintf("node %d: %s", v.Node, v.Message)
}

// Violations collects every structural violation found in one Check call.
// It wraps ErrStructural so errors.Is(err, ErrStructural) succeeds, and
// implements errors.As via its concrete type.
type Violations struct {
	Items []Violation
}

func (v *Violations) Error() string {
	if len(v.Items) == 1 {
		return fmt.Sprintf("validate: 1 structural violation: %s", v.Items[0])
	}
	s := fmt.Sprintf("validate: %d structural violations:", len(v.Items))
	for _, item := range v.Items {
		s += "\n  - " + item.String()
	}

	return s
}

func (v *Violations) Unwrap() error {
	return ErrStructural
}
