package compress

import "github.com/arvonet/lnet/net"

// contractOutcome reports what attemptContract did with one (v, w) pair.
type contractOutcome struct {
	handled     bool
	unreachable bool
	diagnostic  Diagnostic
}

// attemptContract tries each contraction rule, in the order C-double,
// C-single, C-split-chain, C-join-join, against the arc v -> w. The first
// applicable rule wins; if none apply, w is left for its own turn as a
// source (handled == false).
func attemptContract(n *net.Net, v, w net.NodeID) contractOutcome {
	vKind, wKind := n.Kind(v), n.Kind(w)

	if vKind.IsSplitLike() && wKind == net.Join &&
		n.OutDegree(v) == 1 && n.InDegree(w) == 1 {
		necessary, _ := n.NecessaryInArcs(w)
		allowed := vKind == net.Split ||
			(vKind == net.Condition && necessary <= 1) ||
			(vKind == net.Test && countMaxGrade(n, v) >= necessary)
		if allowed {
			return doubleContract(n, v, w)
		}
	}

	if n.InDegree(w) == 1 && n.OutDegree(w) <= 1 &&
		(wKind != net.Test || allMaxGrade(n, w)) {
		if n.OutDegree(w) == 0 {
			if (vKind == net.Condition || vKind == net.Test) && !n.IsTarget(w) {
				// w is a dead end on one of v's branches and never becomes
				// the target: that branch can never reach it, which is
				// exactly the evidence Unreachable needs, so surface it now
				// instead of letting w be silently queued as an ordinary
				// deferred source.
				return contractOutcome{unreachable: true, diagnostic: diagnosticFor(n, v, w)}
			}
			if vKind == net.Condition || vKind == net.Test {
				// w is the target itself: a legitimate terminal branch, left
				// untouched for its own turn as a source.
				return contractOutcome{}
			}

			return deleteLeaf(n, v, w)
		}

		return mergeInto(n, v, w, 0)
	}

	if vKind == net.Split && wKind == net.Split {
		return mergeInto(n, v, w, 0)
	}

	if vKind == net.Join && wKind == net.Join {
		necV, _ := n.NecessaryInArcs(v)
		necW, _ := n.NecessaryInArcs(w)
		indegV, indegW := n.InDegree(v), n.InDegree(w)

		switch {
		case necV == 1 && necW == 1:
			return mergeInto(n, v, w, 0)
		case necV == indegV && necW == indegW:
			return mergeInto(n, v, w, necV+necW-1)
		}
	}

	return contractOutcome{}
}

// mergeInto contracts w into v (w disappears, v absorbs its arcs),
// transferring the target property through the transferability predicate
// first if w currently holds it. If mergedNecessary is non-zero, v's
// NecessaryInArcs is overwritten after the merge (the C-join-join
// "forall-join" case). When v is a Condition or Test, w's single out-arc
// takes over the branch label of the arc v -> w it replaces.
func mergeInto(n *net.Net, v, w net.NodeID, mergedNecessary int) contractOutcome {
	if n.IsTarget(w) {
		if !canTransferTarget(n, v, w) {
			return contractOutcome{unreachable: true, diagnostic: diagnosticFor(n, v, w)}
		}
		n.SetTarget(v)
	}
	if vKind := n.Kind(v); (vKind == net.Condition || vKind == net.Test) && n.OutDegree(w) == 1 {
		for _, a := range n.OutArcs(v) {
			if n.ArcTo(a) == w {
				_ = n.SetBranch(n.OutArcs(w)[0], n.Branch(a))

				break
			}
		}
	}
	_ = n.Contract(v, w)
	if mergedNecessary > 0 {
		_ = n.SetNecessaryInArcs(v, mergedNecessary)
	}

	return contractOutcome{handled: true}
}

// deleteLeaf removes a dead-end w (no out-arcs) outright, transferring the
// target property to v first if necessary.
func deleteLeaf(n *net.Net, v, w net.NodeID) contractOutcome {
	if n.IsTarget(w) {
		if !canTransferTarget(n, v, w) {
			return contractOutcome{unreachable: true, diagnostic: diagnosticFor(n, v, w)}
		}
		n.SetTarget(v)
	}
	_ = n.RemoveNode(w)

	return contractOutcome{handled: true}
}

// doubleContract implements rule C-double: v and w are both removed, and
// v's sole predecessor (if any) is reconnected directly to w's sole
// successor (if any), carrying the branch label of the predecessor's arc
// into v.
func doubleContract(n *net.Net, v, w net.NodeID) contractOutcome {
	pred, predArc := net.NoNode, net.NoArc
	if in := n.InArcs(v); len(in) == 1 {
		predArc = in[0]
		pred = n.ArcFrom(predArc)
	}
	succ, predBranch := net.NoNode, n.Branch(predArc)
	if out := n.OutArcs(w); len(out) == 1 {
		succ = n.ArcTo(out[0])
	}

	targetInvolved := n.IsTarget(v) || n.IsTarget(w)
	if targetInvolved {
		if pred == net.NoNode || !canTransferTarget(n, pred, v) {
			return contractOutcome{unreachable: true, diagnostic: diagnosticFor(n, v, w)}
		}
	}

	if pred != net.NoNode && succ != net.NoNode {
		_, _ = n.AddArc(pred, succ, predBranch)
	}
	if targetInvolved {
		n.SetTarget(pred)
	}
	_ = n.RemoveNode(v)
	_ = n.RemoveNode(w)

	return contractOutcome{handled: true}
}

// canTransferTarget reports whether the target property may move from w to
// v when w is contracted into (or removed in favor of) v.
func canTransferTarget(n *net.Net, v, w net.NodeID) bool {
	vKind := n.Kind(v)
	if vKind != net.Test && n.OutDegree(v) == 1 {
		return true
	}
	if vKind == net.Split {
		return true
	}
	if vKind == net.Test {
		for _, a := range n.OutArcs(v) {
			if n.ArcTo(a) == w && n.Branch(a) == net.MaxGradeBranch {
				return true
			}
		}
	}

	return false
}

func countMaxGrade(n *net.Net, v net.NodeID) int {
	count := 0
	for _, a := range n.OutArcs(v) {
		if n.Branch(a) == net.MaxGradeBranch {
			count++
		}
	}

	return count
}

func allMaxGrade(n *net.Net, v net.NodeID) bool {
	for _, a := range n.OutArcs(v) {
		if n.Branch(a) != net.MaxGradeBranch {
			return false
		}
	}

	return true
}

func diagnosticFor(n *net.Net, v, w net.NodeID) Diagnostic {
	switch n.Kind(v) {
	case net.Condition:
		for _, a := range n.OutArcs(v) {
			if n.ArcTo(a) == w {
				return Diagnostic{ConditionID: n.Ref(v), Branch: n.Branch(a)}
			}
		}
	case net.Test:
		for _, a := range n.OutArcs(v) {
			if n.ArcTo(a) == w {
				return Diagnostic{TestID: n.Ref(v), HasTestID: true, Branch: n.Branch(a)}
			}
		}
	}

	return Diagnostic{}
}
