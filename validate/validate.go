package validate

import (
	"github.com/arvonet/lnet/net"
)

// DFS visitation states, three-color marking as in the teacher's dfs
// package (White = unvisited, Gray = on the current recursion stack,
// Black = fully explored).
const (
	white = iota
	gray
	black
)

// Check runs every per-node structural check, then acyclicity. It returns:
//   - nil if the net is structurally sound and acyclic,
//   - a *Violations (wrapping ErrStructural) if one or more structural
//     rules were broken — every violation found is accumulated, not just
//     the first,
//   - ErrNotAcyclic if the net contains a directed cycle. Acyclicity is
//     checked only after structural checks pass, since a cyclic net with
//     e.g. out-of-range Join counters is better reported for its structural
//     problems first.
//
// Check does not decide whether the target is reachable under every
// condition/test branch combination — that is the reach package's job, run
// by the caller only once Check has returned nil and the net contains at
// least one Condition or Test node.
func Check(n *net.Net) error {
	if violations := structuralViolations(n); len(violations) > 0 {
		return &Violations{Items: violations}
	}
	if hasCycle(n) {
		return ErrNotAcyclic
	}

	return nil
}

// HasBranches reports whether n contains any Condition or Test node, i.e.
// whether the caller must still run the reach package after a clean Check.
func HasBranches(n *net.Net) bool {
	for _, v := range n.Nodes() {
		k := n.Kind(v)
		if k == net.Condition || k == net.Test {
			return true
		}
	}

	return false
}

func structuralViolations(n *net.Net) []Violation {
	var violations []Violation
	sectionOwner := make(map[int]net.NodeID)

	for _, v := range n.Nodes() {
		switch k := n.Kind(v); k {
		case net.UnitInactive, net.UnitActive, net.UnitCompleted:
			if n.InDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "unit has more than one in-arc"})
			}
			if n.OutDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "unit has more than one out-arc"})
			}
			section, _ := n.Section(v)
			if owner, seen := sectionOwner[section]; seen && owner != v {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "duplicate unit section id"})
			} else {
				sectionOwner[section] = v
			}

		case net.Split:
			if n.InDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "split has more than one in-arc"})
			}

		case net.Condition:
			if n.InDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "condition has more than one in-arc"})
			}
			if !hasElseBranch(n, v) {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "condition has no ELSE out-arc"})
			}

		case net.Test:
			if n.InDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "test has more than one in-arc"})
			}

		case net.Join:
			if n.OutDegree(v) > 1 {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "join has more than one out-arc"})
			}
			necessary, _ := n.NecessaryInArcs(v)
			indeg := n.InDegree(v)
			if necessary < 1 || necessary > indeg {
				violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "join necessary-in-arcs out of [1, in-degree] range"})
			}

		default:
			violations = append(violations, Violation{Node: v, Arc: net.NoArc, Message: "unrecognized node kind"})
		}
	}

	return violations
}

func hasElseBranch(n *net.Net, condition net.NodeID) bool {
	for _, a := range n.OutArcs(condition) {
		if n.Branch(a) == net.ElseBranch {
			return true
		}
	}

	return false
}

// hasCycle runs an iterative three-color DFS over every node, following
// out-arcs, reporting whether a back-edge (a Gray successor) was found.
func hasCycle(n *net.Net) bool {
	state := make(map[net.NodeID]int, len(n.Nodes()))
	for _, v := range n.Nodes() {
		state[v] = white
	}

	for _, start := range n.Nodes() {
		if state[start] != white {
			continue
		}
		if visit(n, start, state) {
			return true
		}
	}

	return false
}

// frame is one level of the explicit DFS stack used by visit, tracking
// which out-arc index to resume from.
type frame struct {
	node    net.NodeID
	arcIdx  int
	outArcs []net.ArcID
}

func visit(n *net.Net, start net.NodeID, state map[net.NodeID]int) bool {
	stack := []frame{{node: start, outArcs: n.OutArcs(start)}}
	state[start] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.arcIdx >= len(top.outArcs) {
			state[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}

		a := top.outArcs[top.arcIdx]
		top.arcIdx++
		next := n.ArcTo(a)

		switch state[next] {
		case white:
			state[next] = gray
			stack = append(stack, frame{node: next, outArcs: n.OutArcs(next)})
		case gray:
			return true
		case black:
			// already fully explored, no cycle through it
		}
	}

	return false
}
