package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/validate"
)

func TestCheckSimpleFanInValid(t *testing.T) {
	n := net.CreateFromSections([]int{1, 2, 3})
	assert.NoError(t, validate.Check(n))
	assert.False(t, validate.HasBranches(n))
}

func TestCheckDetectsCycle(t *testing.T) {
	n := net.New()
	a := n.AddNode(net.UnitInactive, 1)
	b := n.AddNode(net.UnitInactive, 2)
	_, _ = n.AddArc(a, b, "")
	_, _ = n.AddArc(b, a, "")

	assert.ErrorIs(t, validate.Check(n), validate.ErrNotAcyclic)
}

func TestCheckUnitDoubleOutArc(t *testing.T) {
	n := net.New()
	a := n.AddNode(net.UnitInactive, 1)
	b := n.AddNode(net.UnitInactive, 2)
	c := n.AddNode(net.UnitInactive, 3)
	_, _ = n.AddArc(a, b, "")
	_, _ = n.AddArc(a, c, "")

	err := validate.Check(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrStructural)

	var violations *validate.Violations
	require.ErrorAs(t, err, &violations)
	assert.Len(t, violations.Items, 1)
}

func TestCheckDuplicateSectionID(t *testing.T) {
	n := net.New()
	n.AddNode(net.UnitInactive, 7)
	n.AddNode(net.UnitInactive, 7)

	err := validate.Check(n)
	var violations *validate.Violations
	require.ErrorAs(t, err, &violations)
	assert.Len(t, violations.Items, 1)
}

func TestCheckConditionRequiresElse(t *testing.T) {
	n := net.New()
	cond := n.AddNode(net.Condition, 1)
	u := n.AddNode(net.UnitInactive, 1)
	_, _ = n.AddArc(cond, u, "yes")

	err := validate.Check(n)
	var violations *validate.Violations
	require.ErrorAs(t, err, &violations)
	assert.Contains(t, violations.Items[0].Message, "ELSE")

	assert.True(t, validate.HasBranches(n))
}

func TestCheckConditionWithElseOK(t *testing.T) {
	n := net.New()
	cond := n.AddNode(net.Condition, 1)
	u1 := n.AddNode(net.UnitInactive, 1)
	u2 := n.AddNode(net.UnitInactive, 2)
	_, _ = n.AddArc(cond, u1, "yes")
	_, _ = n.AddArc(cond, u2, net.ElseBranch)

	assert.NoError(t, validate.Check(n))
}

func TestCheckJoinNecessaryInArcsRange(t *testing.T) {
	n := net.New()
	j := n.AddNode(net.Join, 0)
	a := n.AddNode(net.UnitInactive, 1)
	_, _ = n.AddArc(a, j, "")
	_ = n.SetNecessaryInArcs(j, 2) // only 1 in-arc present

	err := validate.Check(n)
	var violations *validate.Violations
	require.ErrorAs(t, err, &violations)
	assert.Contains(t, violations.Items[0].Message, "necessary-in-arcs")
}
