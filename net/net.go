package net

import "sort"

// AddNode creates a new node of the given kind and reference integer,
// returning its handle. Complexity: O(1).
func (n *Net) AddNode(kind NodeKind, ref int) NodeID {
	id := n.nextNode
	n.nextNode++
	n.nodes[id] = &node{kind: kind, ref: ref}

	return id
}

// RemoveNode deletes v and every arc incident to it. Handles to v, and to
// any of its incident arcs, are invalidated. Complexity: O(deg(v)).
func (n *Net) RemoveNode(v NodeID) error {
	nd, ok := n.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}

	// Copy slices before mutating them via RemoveArc (which edits nd.out/in).
	out := append([]ArcID(nil), nd.out...)
	in := append([]ArcID(nil), nd.in...)
	for _, a := range out {
		_ = n.RemoveArc(a)
	}
	for _, a := range in {
		_ = n.RemoveArc(a)
	}

	delete(n.nodes, v)
	if n.hasTarget && n.target == v {
		n.hasTarget = false
		n.target = NoNode
	}

	return nil
}

// AddArc creates a new arc from→to with the given branch label (ignored
// unless from is a Condition or Test; pass "" otherwise). Complexity: O(1).
func (n *Net) AddArc(from, to NodeID, branch string) (ArcID, error) {
	fn, ok := n.nodes[from]
	if !ok {
		return NoArc, ErrNodeNotFound
	}
	tn, ok := n.nodes[to]
	if !ok {
		return NoArc, ErrNodeNotFound
	}

	id := n.nextArc
	n.nextArc++
	n.arcs[id] = &arc{from: from, to: to, branch: branch}
	fn.out = append(fn.out, id)
	tn.in = append(tn.in, id)

	return id, nil
}

// RemoveArc deletes a. Complexity: O(deg(from) + deg(to)) for the slice
// removal from the two endpoints' arc lists.
func (n *Net) RemoveArc(a ArcID) error {
	ar, ok := n.arcs[a]
	if !ok {
		return ErrArcNotFound
	}
	if fn, ok := n.nodes[ar.from]; ok {
		fn.out = removeArcID(fn.out, a)
	}
	if tn, ok := n.nodes[ar.to]; ok {
		tn.in = removeArcID(tn.in, a)
	}
	delete(n.arcs, a)

	return nil
}

func removeArcID(s []ArcID, a ArcID) []ArcID {
	for i, x := range s {
		if x == a {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// RedirectFrom changes a's source endpoint to newFrom, leaving its branch
// label and target endpoint untouched. Complexity: O(deg(from)) to unlink
// from the old source.
func (n *Net) RedirectFrom(a ArcID, newFrom NodeID) error {
	ar, ok := n.arcs[a]
	if !ok {
		return ErrArcNotFound
	}
	if _, ok := n.nodes[newFrom]; !ok {
		return ErrNodeNotFound
	}
	if old, ok := n.nodes[ar.from]; ok {
		old.out = removeArcID(old.out, a)
	}
	n.nodes[newFrom].out = append(n.nodes[newFrom].out, a)
	ar.from = newFrom

	return nil
}

// RedirectTo changes a's target endpoint to newTo. Complexity: O(deg(to)).
func (n *Net) RedirectTo(a ArcID, newTo NodeID) error {
	ar, ok := n.arcs[a]
	if !ok {
		return ErrArcNotFound
	}
	if _, ok := n.nodes[newTo]; !ok {
		return ErrNodeNotFound
	}
	if old, ok := n.nodes[ar.to]; ok {
		old.in = removeArcID(old.in, a)
	}
	n.nodes[newTo].in = append(n.nodes[newTo].in, a)
	ar.to = newTo

	return nil
}

// Contract merges w into v: every arc touching w (other than an arc
// directly between v and w, which would become a self-loop and is instead
// dropped) is redirected to touch v, and w is removed. The caller is
// responsible for any attribute transfer (target property, branch labels)
// that the specific contraction rule requires before calling Contract.
//
// Complexity: O(deg(w)).
func (n *Net) Contract(v, w NodeID) error {
	if v == w {
		return ErrSelfContract
	}
	wn, ok := n.nodes[w]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok := n.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	for _, a := range append([]ArcID(nil), wn.out...) {
		ar := n.arcs[a]
		if ar.to == v {
			_ = n.RemoveArc(a)
			continue
		}
		_ = n.RedirectFrom(a, v)
	}
	for _, a := range append([]ArcID(nil), wn.in...) {
		ar := n.arcs[a]
		if ar.from == v {
			_ = n.RemoveArc(a)
			continue
		}
		_ = n.RedirectTo(a, v)
	}

	return n.RemoveNode(w)
}

// HasNode reports whether v currently names a live node.
func (n *Net) HasNode(v NodeID) bool {
	_, ok := n.nodes[v]

	return ok
}

// HasArc reports whether a currently names a live arc.
func (n *Net) HasArc(a ArcID) bool {
	_, ok := n.arcs[a]

	return ok
}

// Nodes returns every live NodeID in ascending order (insertion order minus
// removals), giving deterministic iteration for validation, compression,
// and traversal.
func (n *Net) Nodes() []NodeID {
	out := make([]NodeID, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Arcs returns every live ArcID in ascending order.
func (n *Net) Arcs() []ArcID {
	out := make([]ArcID, 0, len(n.arcs))
	for id := range n.arcs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// OutArcs returns v's out-arcs (source-side order of creation).
func (n *Net) OutArcs(v NodeID) []ArcID {
	nd, ok := n.nodes[v]
	if !ok {
		return nil
	}

	return append([]ArcID(nil), nd.out...)
}

// InArcs returns v's in-arcs (target-side order of creation).
func (n *Net) InArcs(v NodeID) []ArcID {
	nd, ok := n.nodes[v]
	if !ok {
		return nil
	}

	return append([]ArcID(nil), nd.in...)
}

// OutDegree returns len(OutArcs(v)).
func (n *Net) OutDegree(v NodeID) int {
	if nd, ok := n.nodes[v]; ok {
		return len(nd.out)
	}

	return 0
}

// InDegree returns len(InArcs(v)).
func (n *Net) InDegree(v NodeID) int {
	if nd, ok := n.nodes[v]; ok {
		return len(nd.in)
	}

	return 0
}

// IsSource reports whether v has zero in-arcs.
func (n *Net) IsSource(v NodeID) bool {
	return n.InDegree(v) == 0
}

// IsDeadEnd reports whether v has zero out-arcs.
func (n *Net) IsDeadEnd(v NodeID) bool {
	return n.OutDegree(v) == 0
}

// Kind returns v's NodeKind, or Unknown if v does not name a live node.
func (n *Net) Kind(v NodeID) NodeKind {
	if nd, ok := n.nodes[v]; ok {
		return nd.kind
	}

	return Unknown
}

// SetKind sets v's NodeKind.
func (n *Net) SetKind(v NodeID, kind NodeKind) error {
	nd, ok := n.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	nd.kind = kind

	return nil
}

// Ref returns v's kind-dependent reference integer (section id / necessary
// in-arcs / condition id / test id), or 0 if v is not live.
func (n *Net) Ref(v NodeID) int {
	if nd, ok := n.nodes[v]; ok {
		return nd.ref
	}

	return 0
}

// SetRef sets v's reference integer.
func (n *Net) SetRef(v NodeID, ref int) error {
	nd, ok := n.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	nd.ref = ref

	return nil
}

// Section returns the section id of a unit node v, or (0, false) if v is
// not a unit.
func (n *Net) Section(v NodeID) (int, bool) {
	nd, ok := n.nodes[v]
	if !ok || !nd.kind.IsUnit() {
		return 0, false
	}

	return nd.ref, true
}

// NecessaryInArcs returns the necessary-in-arcs count of a join node v, or
// (0, false) if v is not a Join.
func (n *Net) NecessaryInArcs(v NodeID) (int, bool) {
	nd, ok := n.nodes[v]
	if !ok || nd.kind != Join {
		return 0, false
	}

	return nd.ref, true
}

// SetNecessaryInArcs sets the necessary-in-arcs count of join node v.
func (n *Net) SetNecessaryInArcs(v NodeID, count int) error {
	nd, ok := n.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	if nd.kind != Join {
		return ErrWrongKind
	}
	nd.ref = count

	return nil
}

// ActivatedInArcs returns the transient activation counter of join node v.
func (n *Net) ActivatedInArcs(v NodeID) int {
	if nd, ok := n.nodes[v]; ok {
		return nd.activatedInArcs
	}

	return 0
}

// ResetActivatedInArcs zeroes the activation counter of join node v. Called
// at the start of every traversal that fires joins (reach, recommend).
func (n *Net) ResetActivatedInArcs(v NodeID) {
	if nd, ok := n.nodes[v]; ok {
		nd.activatedInArcs = 0
	}
}

// IncrementActivatedInArcs increments and returns the activation counter of
// join node v.
func (n *Net) IncrementActivatedInArcs(v NodeID) int {
	nd, ok := n.nodes[v]
	if !ok {
		return 0
	}
	nd.activatedInArcs++

	return nd.activatedInArcs
}

// Branch returns a's branch label.
func (n *Net) Branch(a ArcID) string {
	if ar, ok := n.arcs[a]; ok {
		return ar.branch
	}

	return ""
}

// SetBranch sets a's branch label.
func (n *Net) SetBranch(a ArcID, branch string) error {
	ar, ok := n.arcs[a]
	if !ok {
		return ErrArcNotFound
	}
	ar.branch = branch

	return nil
}

// ArcFrom returns a's source node.
func (n *Net) ArcFrom(a ArcID) NodeID {
	if ar, ok := n.arcs[a]; ok {
		return ar.from
	}

	return NoNode
}

// ArcTo returns a's target node.
func (n *Net) ArcTo(a ArcID) NodeID {
	if ar, ok := n.arcs[a]; ok {
		return ar.to
	}

	return NoNode
}

// Target returns the net's distinguished target node, and whether one has
// been set.
func (n *Net) Target() (NodeID, bool) {
	return n.target, n.hasTarget
}

// SetTarget sets v as the net's target.
func (n *Net) SetTarget(v NodeID) {
	n.target = v
	n.hasTarget = true
}

// IsTarget reports whether v is the net's current target.
func (n *Net) IsTarget(v NodeID) bool {
	return n.hasTarget && n.target == v
}

// Recommended returns the net's recommended learning path (output only).
func (n *Net) Recommended() []NodeID {
	return append([]NodeID(nil), n.recommended...)
}

// SetRecommended sets the net's recommended learning path.
func (n *Net) SetRecommended(path []NodeID) {
	n.recommended = append([]NodeID(nil), path...)
}

// SnapshotKinds returns a copy of every live node's current NodeKind, for a
// caller (recommend.RecPath) that needs to restore the net's lifecycle
// state after a search that provisionally advances units to UnitCompleted.
func (n *Net) SnapshotKinds() map[NodeID]NodeKind {
	out := make(map[NodeID]NodeKind, len(n.nodes))
	for id, nd := range n.nodes {
		out[id] = nd.kind
	}

	return out
}

// RestoreKinds resets every node named in snapshot back to its recorded
// NodeKind. Nodes removed since the snapshot was taken are skipped; nodes
// added since are left untouched, since they have no recorded prior state.
func (n *Net) RestoreKinds(snapshot map[NodeID]NodeKind) {
	for id, kind := range snapshot {
		if nd, ok := n.nodes[id]; ok {
			nd.kind = kind
		}
	}
}

// CreateFromSections builds a fresh Net with one UnitInactive node per
// section id in sections, all feeding into a single Join whose
// NecessaryInArcs equals len(sections); that Join is the net's target.
func CreateFromSections(sections []int) *Net {
	n := New()
	join := n.AddNode(Join, 0)
	n.SetTarget(join)

	for _, section := range sections {
		u := n.AddNode(UnitInactive, section)
		_, _ = n.AddArc(u, join, "")
	}
	_ = n.SetNecessaryInArcs(join, len(sections))

	return n
}

// SetCompleted sets the kind of every unit node whose section id appears in
// sections to UnitCompleted. Section ids with no matching unit node are
// returned to the caller; join activation counters are untouched, since
// resetting them is a traversal concern (see recommend.Activate).
func (n *Net) SetCompleted(sections []int) []int {
	bySection := make(map[int]NodeID, len(n.nodes))
	for _, v := range n.Nodes() {
		if s, ok := n.Section(v); ok {
			bySection[s] = v
		}
	}

	var notFound []int
	for _, s := range sections {
		if v, ok := bySection[s]; ok {
			_ = n.SetKind(v, UnitCompleted)
		} else {
			notFound = append(notFound, s)
		}
	}

	return notFound
}
