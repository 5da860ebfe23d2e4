package netgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonet/lnet/netgen"
	"github.com/arvonet/lnet/validate"
)

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	a, err := netgen.Generate(netgen.WithSeed(42), netgen.WithSize(30))
	require.NoError(t, err)
	b, err := netgen.Generate(netgen.WithSeed(42), netgen.WithSize(30))
	require.NoError(t, err)

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Arcs(), b.Arcs())
	for _, v := range a.Nodes() {
		assert.Equal(t, a.Kind(v), b.Kind(v))
		assert.Equal(t, a.Ref(v), b.Ref(v))
	}
}

func TestGenerateProducesStructurallyValidNet(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		n, err := netgen.Generate(netgen.WithSeed(seed), netgen.WithSize(25), netgen.WithBranchiness(0.5))
		require.NoError(t, err)
		require.NoError(t, validate.Check(n), "seed %d", seed)

		target, ok := n.Target()
		require.True(t, ok)
		assert.True(t, n.HasNode(target))
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	_, err := netgen.Generate(netgen.WithSize(0))
	require.ErrorIs(t, err, netgen.ErrInvalidConfig)

	_, err = netgen.Generate(netgen.WithBranchiness(1.5))
	require.ErrorIs(t, err, netgen.ErrInvalidConfig)

	_, err = netgen.Generate(netgen.WithMaxBranches(1))
	require.ErrorIs(t, err, netgen.ErrInvalidConfig)
}

func TestGenerateNoBranchingProducesLinearChain(t *testing.T) {
	n, err := netgen.Generate(netgen.WithSeed(7), netgen.WithSize(5), netgen.WithBranchiness(0))
	require.NoError(t, err)
	require.NoError(t, validate.Check(n))
	assert.Len(t, n.Nodes(), 5)
	for _, v := range n.Nodes() {
		assert.LessOrEqual(t, n.OutDegree(v), 1)
		assert.LessOrEqual(t, n.InDegree(v), 1)
	}
}
