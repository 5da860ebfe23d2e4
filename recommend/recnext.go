package recommend

import "github.com/arvonet/lnet/net"

// NodeCosts maps a unit to its standalone recommendation cost.
type NodeCosts map[net.NodeID]float64

// NodePairCosts maps a unit to the cost of moving from it to each other
// unit, keyed node-then-node: pairCosts[from][to].
type NodePairCosts map[net.NodeID]map[net.NodeID]float64

// RecNext picks the active unit with the smallest node cost. Ties are
// broken by actives' iteration order (the first-seen minimum wins), so the
// result is deterministic for a given actives slice.
func RecNext(costs NodeCosts, actives []net.NodeID) (net.NodeID, bool) {
	best, bestCost := net.NoNode, 0.0
	found := false
	for _, v := range actives {
		c := costs[v]
		if !found || c < bestCost {
			best, bestCost, found = v, c, true
		}
	}

	return best, found
}

// RecNextPair picks the active unit that best continues from prev. If prev
// is net.NoNode, it instead picks the active minimizing the sum of its
// pair cost to every unit named in costs[v], v itself included when it is
// named there (a heuristic for which
// active leaves the best downstream options). Ties are broken by actives'
// iteration order.
func RecNextPair(costs NodePairCosts, actives []net.NodeID, prev net.NodeID) (net.NodeID, bool) {
	best, bestCost := net.NoNode, 0.0
	found := false

	for _, v := range actives {
		var c float64
		if prev != net.NoNode {
			c = costs[prev][v]
		} else {
			for _, toCost := range costs[v] {
				c += toCost
			}
		}
		if !found || c < bestCost {
			best, bestCost, found = v, c, true
		}
	}

	return best, found
}
