package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/recommend"
)

func TestRecNextPicksCheapest(t *testing.T) {
	a, b, c := net.NodeID(0), net.NodeID(1), net.NodeID(2)
	costs := recommend.NodeCosts{a: 3, b: 1, c: 2}

	best, ok := recommend.RecNext(costs, []net.NodeID{a, b, c})
	assert.True(t, ok)
	assert.Equal(t, b, best)
}

func TestRecNextTiesBreakByIterationOrder(t *testing.T) {
	a, b := net.NodeID(0), net.NodeID(1)
	costs := recommend.NodeCosts{a: 1, b: 1}

	best, ok := recommend.RecNext(costs, []net.NodeID{a, b})
	assert.True(t, ok)
	assert.Equal(t, a, best)
}

func TestRecNextEmptyActives(t *testing.T) {
	_, ok := recommend.RecNext(recommend.NodeCosts{}, nil)
	assert.False(t, ok)
}

func TestRecNextPairWithPrev(t *testing.T) {
	a, b, prev := net.NodeID(0), net.NodeID(1), net.NodeID(9)
	costs := recommend.NodePairCosts{
		prev: {a: 5, b: 1},
	}

	best, ok := recommend.RecNextPair(costs, []net.NodeID{a, b}, prev)
	assert.True(t, ok)
	assert.Equal(t, b, best)
}

func TestRecNextPairWithoutPrevSumsOutgoingCosts(t *testing.T) {
	a, b := net.NodeID(0), net.NodeID(1)
	costs := recommend.NodePairCosts{
		a: {net.NodeID(10): 1, net.NodeID(11): 1},
		b: {net.NodeID(10): 100},
	}

	best, ok := recommend.RecNextPair(costs, []net.NodeID{a, b}, net.NoNode)
	assert.True(t, ok)
	assert.Equal(t, a, best)
}
