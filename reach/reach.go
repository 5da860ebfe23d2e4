package reach

import (
	"sort"
	"time"

	"github.com/arvonet/lnet/net"
)

// Option configures a Check call.
type Option func(*config)

type config struct {
	budget time.Duration
}

// WithBudget overrides the default 10-minute wall-clock budget allotted to
// enumerating every branch combination.
func WithBudget(d time.Duration) Option {
	return func(c *config) { c.budget = d }
}

const defaultBudget = 10 * time.Minute

// Check enumerates the Cartesian product of every Condition id's distinct
// branch labels (ELSE always included) and runs one branch-aware traversal
// per combination, returning nil if the target is reachable under every
// one of them, *NoPathForCombination for the first one that fails, or
// ErrTimeout if the wall-clock budget elapses first.
func Check(n *net.Net, opts ...Option) error {
	cfg := config{budget: defaultBudget}
	for _, opt := range opts {
		opt(&cfg)
	}

	branchSets := collectConditionBranches(n)
	ids := make([]int, 0, len(branchSets))
	for id := range branchSets {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	deadline := time.Now().Add(cfg.budget)
	combo := make(map[int]string, len(ids))

	var enumerate func(i int) error
	enumerate = func(i int) error {
		if i == len(ids) {
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			if !traverse(n, combo) {
				snapshot := make(map[int]string, len(combo))
				for k, v := range combo {
					snapshot[k] = v
				}

				return &NoPathForCombination{Combination: snapshot}
			}

			return nil
		}

		id := ids[i]
		for _, branch := range branchSets[id] {
			combo[id] = branch
			if err := enumerate(i + 1); err != nil {
				return err
			}
		}
		delete(combo, id)

		return nil
	}

	return enumerate(0)
}

// collectConditionBranches returns, for each Condition id present in n, the
// distinct out-arc branch labels used by any Condition node with that id —
// ELSE is always included even if no arc happens to carry it literally,
// since the traversal always has an ELSE fallback available.
func collectConditionBranches(n *net.Net) map[int][]string {
	sets := make(map[int]map[string]bool)
	for _, v := range n.Nodes() {
		if n.Kind(v) != net.Condition {
			continue
		}
		id := n.Ref(v)
		if sets[id] == nil {
			sets[id] = map[string]bool{net.ElseBranch: true}
		}
		for _, a := range n.OutArcs(v) {
			sets[id][n.Branch(a)] = true
		}
	}

	out := make(map[int][]string, len(sets))
	for id, set := range sets {
		branches := make([]string, 0, len(set))
		for b := range set {
			branches = append(branches, b)
		}
		sort.Strings(branches)
		out[id] = branches
	}

	return out
}

// frontier is a double-ended queue of NodeID, popped LIFO from the back;
// Condition successors are pushed to the front instead, deprioritizing
// them relative to non-branching work still pending on the stack.
type frontier struct {
	items []net.NodeID
}

func (f *frontier) pushBack(v net.NodeID)  { f.items = append(f.items, v) }
func (f *frontier) pushFront(v net.NodeID) { f.items = append([]net.NodeID{v}, f.items...) }
func (f *frontier) empty() bool            { return len(f.items) == 0 }
func (f *frontier) popBack() net.NodeID {
	last := len(f.items) - 1
	v := f.items[last]
	f.items = f.items[:last]

	return v
}

func (f *frontier) push(n *net.Net, v net.NodeID) {
	if n.Kind(v) == net.Condition {
		f.pushFront(v)
	} else {
		f.pushBack(v)
	}
}

// traverse runs one branch-aware topological traversal of n under the
// given condition-branch combination, returning whether the target was
// reached.
func traverse(n *net.Net, combo map[int]string) bool {
	for _, v := range n.Nodes() {
		if n.Kind(v) == net.Join {
			n.ResetActivatedInArcs(v)
		}
	}

	f := &frontier{}
	for _, v := range n.Nodes() {
		if n.InDegree(v) == 0 {
			f.push(n, v)
		}
	}

	for !f.empty() {
		v := f.popBack()
		if n.IsTarget(v) {
			return true
		}

		var nexts []net.NodeID
		switch n.Kind(v) {
		case net.Condition:
			chosen, ok := combo[n.Ref(v)]
			if !ok {
				chosen = net.ElseBranch
			}
			var elseArc net.ArcID = net.NoArc
			matched := false
			for _, a := range n.OutArcs(v) {
				if n.Branch(a) == chosen {
					nexts = append(nexts, n.ArcTo(a))
					matched = true

					break
				}
				if n.Branch(a) == net.ElseBranch {
					elseArc = a
				}
			}
			if !matched && elseArc != net.NoArc {
				nexts = append(nexts, n.ArcTo(elseArc))
			}

		case net.Test:
			for _, a := range n.OutArcs(v) {
				if n.Branch(a) == net.MaxGradeBranch {
					nexts = append(nexts, n.ArcTo(a))
				}
			}

		default:
			for _, a := range n.OutArcs(v) {
				nexts = append(nexts, n.ArcTo(a))
			}
		}

		for _, w := range nexts {
			if n.Kind(w) == net.Join {
				necessary, _ := n.NecessaryInArcs(w)
				if n.IncrementActivatedInArcs(w) != necessary {
					continue
				}
			}
			f.push(n, w)
		}
	}

	return false
}
