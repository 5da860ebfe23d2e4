package request

import (
	"strconv"

	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/recommend"
)

// NodeCost computes the weighted-average per-section cost: for section s,
// Σ_i (entries[i].Costs[s] × entries[i].Weight) / Σ_i entries[i].Weight.
// An entry missing s contributes 0 to the numerator but still counts
// toward the weight total. A zero weight total yields cost 0.
func NodeCost(entries []CostEntry, section int) float64 {
	w := nodeCostWeight(entries)
	if w == 0 {
		return 0
	}

	key := strconv.Itoa(section)
	var sum float64
	for _, e := range entries {
		if v, ok := e.Costs[key]; ok {
			sum += v * e.Weight
		}
	}

	return sum / w
}

func nodeCostWeight(entries []CostEntry) float64 {
	var w float64
	for _, e := range entries {
		w += e.Weight
	}

	return w
}

// NodePairCost computes the node-pair cost for (from, to): the target
// section's weighted node cost plus the (from,to) section pair's weighted
// pair cost, both divided by the combined weight total of every supplied
// nodeCosts and nodePairCosts entry. This mirrors the original
// implementation's toNodePairCosts, which folds both cost kinds into one
// normalized total whenever any pair costs were supplied at all.
func NodePairCost(nodeCosts []CostEntry, pairCosts []PairCostEntry, from, to int) float64 {
	w := nodeCostWeight(nodeCosts) + pairCostWeight(pairCosts)
	if w == 0 {
		return 0
	}

	toKey := strconv.Itoa(to)
	fromKey := strconv.Itoa(from)

	var sum float64
	for _, e := range nodeCosts {
		if v, ok := e.Costs[toKey]; ok {
			sum += v * e.Weight
		}
	}
	for _, e := range pairCosts {
		if row, ok := e.Costs[fromKey]; ok {
			if v, ok := row[toKey]; ok {
				sum += v * e.Weight
			}
		}
	}

	return sum / w
}

func pairCostWeight(entries []PairCostEntry) float64 {
	var w float64
	for _, e := range entries {
		w += e.Weight
	}

	return w
}

// buildNodeCosts evaluates NodeCost at every unit node's section, for
// RecNext/RecPath's nodeCosts-only path.
func (r *Request) buildNodeCosts(n *net.Net) recommend.NodeCosts {
	out := make(recommend.NodeCosts)
	for _, v := range n.Nodes() {
		if section, ok := n.Section(v); ok {
			out[v] = NodeCost(r.NodeCosts, section)
		}
	}

	return out
}

// buildNodePairCosts evaluates NodePairCost for every ordered pair of unit
// nodes, for RecNextPair/RecPathPair's combined-cost path.
func (r *Request) buildNodePairCosts(n *net.Net) recommend.NodePairCosts {
	var units []net.NodeID
	for _, v := range n.Nodes() {
		if _, ok := n.Section(v); ok {
			units = append(units, v)
		}
	}

	out := make(recommend.NodePairCosts, len(units))
	for _, s := range units {
		ss, _ := n.Section(s)
		row := make(map[net.NodeID]float64, len(units))
		for _, t := range units {
			st, _ := n.Section(t)
			row[t] = NodePairCost(r.NodeCosts, r.NodePairCosts, ss, st)
		}
		out[s] = row
	}

	return out
}
