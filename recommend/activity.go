package recommend

import (
	"fmt"

	"github.com/arvonet/lnet/net"
)

// Learner carries the branch-selection inputs for one learner: which
// condition values they satisfy, and which grade they achieved on each
// test, by reference id.
type Learner struct {
	ConditionValues map[int][]string
	Grades          map[int]int
}

// ActiveSet is the result of running the active-set frontier once.
type ActiveSet struct {
	// Actives lists, in traversal order, every unit newly transitioned from
	// UnitInactive to UnitActive by this call.
	Actives []net.NodeID
	// VisitedArcs lists every arc the traversal followed, for diagnostics.
	VisitedArcs []net.ArcID
	// TargetReached reports whether the traversal popped the net's target
	// node at any point.
	TargetReached bool
}

// Diagnostics collects the non-fatal input-inconsistency messages a
// traversal encountered (an already-active unit, or an unrecognized node
// kind). It wraps ErrInputInconsistency.
type Diagnostics struct {
	Messages []string
}

func (d *Diagnostics) Error() string {
	return fmt.Sprintf("recommend: %d input inconsistencies encountered", len(d.Messages))
}

func (d *Diagnostics) Unwrap() error {
	return ErrInputInconsistency
}

// Activate runs the active-set frontier from n's sources (resetting every
// Join's ActivatedInArcs first) and returns the units newly marked active.
// A non-nil error is always a *Diagnostics — the returned ActiveSet is
// still the engine's best-effort result and should still be used.
func Activate(n *net.Net, learner Learner) (*ActiveSet, error) {
	for _, v := range n.Nodes() {
		if n.Kind(v) == net.Join {
			n.ResetActivatedInArcs(v)
		}
	}

	var sources []net.NodeID
	for _, v := range n.Nodes() {
		if n.InDegree(v) == 0 {
			sources = append(sources, v)
		}
	}

	return activateFrom(n, learner, sources)
}

// activateFrom runs the frontier starting at the given seed nodes without
// resetting Join counters, so a caller (recPath) can resume an in-progress
// traversal after completing one more unit.
func activateFrom(n *net.Net, learner Learner, seeds []net.NodeID) (*ActiveSet, error) {
	f := &dq{}
	for _, v := range seeds {
		f.push(n, v)
	}

	result := &ActiveSet{}
	var messages []string

	for !f.empty() {
		v := f.popBack()
		if n.IsTarget(v) {
			result.TargetReached = true
		}

		var toFollow []net.ArcID
		switch kind := n.Kind(v); kind {
		case net.UnitInactive:
			result.Actives = append(result.Actives, v)
			_ = n.SetKind(v, net.UnitActive)

			continue

		case net.UnitActive:
			messages = append(messages, fmt.Sprintf("node %d: already active before this call", v))

			continue

		case net.UnitCompleted:
			toFollow = n.OutArcs(v)

		case net.Condition:
			accepted := learner.ConditionValues[n.Ref(v)]
			if len(accepted) == 0 {
				accepted = []string{net.ElseBranch}
			}
			acceptedSet := make(map[string]bool, len(accepted))
			for _, label := range accepted {
				acceptedSet[label] = true
			}
			for _, a := range n.OutArcs(v) {
				if acceptedSet[n.Branch(a)] {
					toFollow = append(toFollow, a)
				}
			}

		case net.Test:
			grade, hasGrade := learner.Grades[n.Ref(v)]
			if a := chooseTestArc(n, v, grade, hasGrade); a != net.NoArc {
				toFollow = append(toFollow, a)
			}

		case net.Split, net.Join:
			toFollow = n.OutArcs(v)

		default:
			messages = append(messages, fmt.Sprintf("node %d: unrecognized node kind", v))

			continue
		}

		for _, a := range toFollow {
			w := n.ArcTo(a)
			if n.Kind(w) == net.Join {
				necessary, _ := n.NecessaryInArcs(w)
				if n.IncrementActivatedInArcs(w) != necessary {
					continue
				}
			}
			result.VisitedArcs = append(result.VisitedArcs, a)
			f.push(n, w)
		}
	}

	if len(messages) > 0 {
		return result, &Diagnostics{Messages: messages}
	}

	return result, nil
}

// chooseTestArc picks the out-arc of Test node v that a learner with the
// given grade would follow. With a recorded grade it is the arc with the
// greatest numeric label not exceeding grade; a MAX_GRADE arc is taken only
// when no numeric label fits. With no recorded grade it is the MAX_GRADE
// arc if there is one, else the arc with the highest numeric label. NoArc
// means no arc qualifies.
func chooseTestArc(n *net.Net, v net.NodeID, grade int, hasGrade bool) net.ArcID {
	best, bestVal := net.NoArc, -1
	maxGradeArc := net.NoArc

	for _, a := range n.OutArcs(v) {
		label := n.Branch(a)
		if label == net.MaxGradeBranch {
			maxGradeArc = a

			continue
		}
		val := parseNonNegativeInt(label)
		if !hasGrade {
			if val > bestVal {
				bestVal, best = val, a
			}

			continue
		}
		if val <= grade && val > bestVal {
			bestVal, best = val, a
		}
	}

	// No recorded grade: assume the best possible outcome. A literal
	// MAX_GRADE arc (post test-grade normalization) always wins; only a
	// not-yet-normalized test falls back to its highest raw numeric arc.
	if !hasGrade && maxGradeArc != net.NoArc {
		return maxGradeArc
	}
	if best == net.NoArc {
		return maxGradeArc
	}

	return best
}

func parseNonNegativeInt(label string) int {
	val := 0
	for _, c := range label {
		if c < '0' || c > '9' {
			return 0
		}
		val = val*10 + int(c-'0')
	}

	return val
}

// dq is a double-ended queue of NodeID, popped LIFO from the back;
// Condition nodes are pushed to the front instead of the back, matching
// the reach package's search-order heuristic.
type dq struct {
	items []net.NodeID
}

func (q *dq) empty() bool { return len(q.items) == 0 }

func (q *dq) popBack() net.NodeID {
	last := len(q.items) - 1
	v := q.items[last]
	q.items = q.items[:last]

	return v
}

func (q *dq) push(n *net.Net, v net.NodeID) {
	if n.Kind(v) == net.Condition {
		q.items = append([]net.NodeID{v}, q.items...)
	} else {
		q.items = append(q.items, v)
	}
}
