package recommend

import (
	"container/heap"

	"github.com/arvonet/lnet/net"
)

// RecPath greedily extends a learning path over the active set: it
// repeatedly pops the cheapest still-active unit from a min-heap keyed by
// costs, appends it to the result, marks it UnitCompleted, and re-runs the
// active-set frontier from that single node to discover newly reachable
// units, pushing them onto the heap in turn. The search stops once the
// target is popped or the heap empties.
//
// RecPath restores the net's node-kind map to exactly the state it found
// it in before returning (see net.SnapshotKinds/RestoreKinds) — the
// UnitCompleted transitions it makes along the way are scratch state for
// the search, not a durable effect on the caller's net. Units named in
// firstActives but absent from costs are treated as cost 0.
func RecPath(n *net.Net, learner Learner, costs NodeCosts, firstActives []net.NodeID) ([]net.NodeID, error) {
	// Only the node-kind map is snapshotted; RecPath keeps no target-found
	// flag. The loop below stops only when the target node itself is
	// popped, so a target that is not a unit (e.g. a Join) never ends the
	// search early: it then runs until the heap empties.
	snapshot := n.SnapshotKinds()
	defer n.RestoreKinds(snapshot)

	h := &costHeap{}
	heap.Init(h)
	for _, v := range firstActives {
		heap.Push(h, &costItem{node: v, cost: costs[v], seq: h.nextSeq()})
	}

	var result []net.NodeID
	var diag *Diagnostics

	for h.Len() > 0 {
		item := heap.Pop(h).(*costItem)
		v := item.node
		result = append(result, v)

		if n.IsTarget(v) {
			break
		}

		_ = n.SetKind(v, net.UnitCompleted)
		active, err := activateFrom(n, learner, []net.NodeID{v})
		diag = mergeDiagnostics(diag, err)

		for _, w := range active.Actives {
			heap.Push(h, &costItem{node: w, cost: costs[w], seq: h.nextSeq()})
		}
	}

	if diag != nil {
		return result, diag
	}

	return result, nil
}

// RecPathPair is RecPath's node-pair-cost counterpart: the candidate set is
// an unordered slice rather than a heap (the next pick depends on the
// previously picked node, so costs can't be precomputed once into heap
// keys), and each pick is delegated to RecNextPair.
//
// Snapshot/restore and the stopping condition are identical to RecPath.
func RecPathPair(n *net.Net, learner Learner, costs NodePairCosts, firstActives []net.NodeID) ([]net.NodeID, error) {
	snapshot := n.SnapshotKinds()
	defer n.RestoreKinds(snapshot)

	candidates := append([]net.NodeID(nil), firstActives...)
	var result []net.NodeID
	var diag *Diagnostics
	prev := net.NoNode

	for len(candidates) > 0 {
		best, ok := RecNextPair(costs, candidates, prev)
		if !ok {
			break
		}
		candidates = removeNodeID(candidates, best)
		result = append(result, best)

		if n.IsTarget(best) {
			break
		}

		_ = n.SetKind(best, net.UnitCompleted)
		active, err := activateFrom(n, learner, []net.NodeID{best})
		diag = mergeDiagnostics(diag, err)

		candidates = append(candidates, active.Actives...)
		prev = best
	}

	if diag != nil {
		return result, diag
	}

	return result, nil
}

func removeNodeID(s []net.NodeID, v net.NodeID) []net.NodeID {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

func mergeDiagnostics(acc *Diagnostics, err error) *Diagnostics {
	if err == nil {
		return acc
	}
	d, ok := err.(*Diagnostics)
	if !ok {
		return acc
	}
	if acc == nil {
		return d
	}
	acc.Messages = append(acc.Messages, d.Messages...)

	return acc
}

// costItem is one entry in costHeap: a candidate node, its cost, and an
// insertion sequence number used to break cost ties by iteration order
// (the order firstActives/newly-discovered actives were pushed), matching
// the deterministic tie-breaking RecNext uses over a plain slice.
type costItem struct {
	node net.NodeID
	cost float64
	seq  int
}

// costHeap is a container/heap min-heap over costItem, ordered by cost
// then by seq.
type costHeap struct {
	items []*costItem
	seq   int
}

func (h *costHeap) nextSeq() int {
	h.seq++

	return h.seq
}

func (h *costHeap) Len() int { return len(h.items) }

func (h *costHeap) Less(i, j int) bool {
	if h.items[i].cost != h.items[j].cost {
		return h.items[i].cost < h.items[j].cost
	}

	return h.items[i].seq < h.items[j].seq
}

func (h *costHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *costHeap) Push(x interface{}) {
	h.items = append(h.items, x.(*costItem))
}

func (h *costHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
