package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvonet/lnet/request"
)

func TestNodeCostWeightedAverage(t *testing.T) {
	entries := []request.CostEntry{
		{Weight: 1, Costs: map[string]float64{"0": 10}},
		{Weight: 3, Costs: map[string]float64{"0": 2}},
	}
	// (10*1 + 2*3) / 4 = 4
	assert.InDelta(t, 4.0, request.NodeCost(entries, 0), 1e-9)
}

func TestNodeCostMissingSectionContributesZero(t *testing.T) {
	entries := []request.CostEntry{
		{Weight: 1, Costs: map[string]float64{"0": 10}},
		{Weight: 1, Costs: map[string]float64{}},
	}
	// (10*1 + 0*1) / 2 = 5
	assert.InDelta(t, 5.0, request.NodeCost(entries, 0), 1e-9)
}

func TestNodeCostZeroWeightIsZero(t *testing.T) {
	assert.Equal(t, 0.0, request.NodeCost(nil, 0))
}

func TestNodePairCostCombinesBothKinds(t *testing.T) {
	nodeCosts := []request.CostEntry{
		{Weight: 1, Costs: map[string]float64{"1": 10}},
	}
	pairCosts := []request.PairCostEntry{
		{Weight: 1, Costs: map[string]map[string]float64{"0": {"1": 6}}},
	}
	// (10*1 + 6*1) / (1+1) = 8
	assert.InDelta(t, 8.0, request.NodePairCost(nodeCosts, pairCosts, 0, 1), 1e-9)
}
