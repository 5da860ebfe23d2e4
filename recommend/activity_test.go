package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/recommend"
)

// S1: u0 -> u1 -> u2 -> target(u3), completed = {0,1}, expect active = {u2}.
func TestActivateLinearChain(t *testing.T) {
	n := net.New()
	u0 := n.AddNode(net.UnitCompleted, 0)
	u1 := n.AddNode(net.UnitCompleted, 1)
	u2 := n.AddNode(net.UnitInactive, 2)
	u3 := n.AddNode(net.UnitInactive, 3)
	_, _ = n.AddArc(u0, u1, "")
	_, _ = n.AddArc(u1, u2, "")
	_, _ = n.AddArc(u2, u3, "")
	n.SetTarget(u3)

	result, err := recommend.Activate(n, recommend.Learner{})
	require.NoError(t, err)
	assert.Equal(t, []net.NodeID{u2}, result.Actives)
	assert.Equal(t, net.UnitActive, n.Kind(u2))
	assert.False(t, result.TargetReached)
}

// S2: split -> {u1, u2} -> join(necessary=2) -> target(u3), completed={}.
func TestActivateSplitJoin(t *testing.T) {
	n := net.New()
	split := n.AddNode(net.Split, 0)
	u1 := n.AddNode(net.UnitInactive, 1)
	u2 := n.AddNode(net.UnitInactive, 2)
	join := n.AddNode(net.Join, 0)
	u3 := n.AddNode(net.UnitInactive, 3)
	_, _ = n.AddArc(split, u1, "")
	_, _ = n.AddArc(split, u2, "")
	_, _ = n.AddArc(u1, join, "")
	_, _ = n.AddArc(u2, join, "")
	_, _ = n.AddArc(join, u3, "")
	_ = n.SetNecessaryInArcs(join, 2)
	n.SetTarget(u3)

	result, err := recommend.Activate(n, recommend.Learner{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []net.NodeID{u1, u2}, result.Actives)
}

// S3: condition with values {a} activates u1; empty values activates u2 (ELSE).
func TestActivateConditionBranches(t *testing.T) {
	build := func() (*net.Net, net.NodeID, net.NodeID) {
		n := net.New()
		cond := n.AddNode(net.Condition, 0)
		u1 := n.AddNode(net.UnitInactive, 1)
		u2 := n.AddNode(net.UnitInactive, 2)
		join := n.AddNode(net.Join, 0)
		_, _ = n.AddArc(cond, u1, "a")
		_, _ = n.AddArc(cond, u2, net.ElseBranch)
		_, _ = n.AddArc(u1, join, "")
		_, _ = n.AddArc(u2, join, "")
		_ = n.SetNecessaryInArcs(join, 1)
		n.SetTarget(join)

		return n, u1, u2
	}

	n, u1, _ := build()
	result, err := recommend.Activate(n, recommend.Learner{ConditionValues: map[int][]string{0: {"a"}}})
	require.NoError(t, err)
	assert.Equal(t, []net.NodeID{u1}, result.Actives)

	n2, _, u2 := build()
	result2, err := recommend.Activate(n2, recommend.Learner{})
	require.NoError(t, err)
	assert.Equal(t, []net.NodeID{u2}, result2.Actives)
}

// S5: test0 -MAX_GRADE-> u1 -> target; test0 -0-> u2 (no out). testGrades[0]=7
// (already normalized labels) picks branch labeled "0", activating u2.
func TestActivateTestGradePicksLowerNormalizedBranch(t *testing.T) {
	n := net.New()
	test := n.AddNode(net.Test, 0)
	u1 := n.AddNode(net.UnitInactive, 1)
	u2 := n.AddNode(net.UnitInactive, 2)
	_, _ = n.AddArc(test, u1, net.MaxGradeBranch)
	_, _ = n.AddArc(test, u2, "0")
	n.SetTarget(u1)

	result, err := recommend.Activate(n, recommend.Learner{Grades: map[int]int{0: 7}})
	require.NoError(t, err)
	assert.Equal(t, []net.NodeID{u2}, result.Actives)
}

func TestActivateNoGradeAssumesBest(t *testing.T) {
	n := net.New()
	test := n.AddNode(net.Test, 0)
	u1 := n.AddNode(net.UnitInactive, 1)
	u2 := n.AddNode(net.UnitInactive, 2)
	_, _ = n.AddArc(test, u1, net.MaxGradeBranch)
	_, _ = n.AddArc(test, u2, "0")
	n.SetTarget(u1)

	result, err := recommend.Activate(n, recommend.Learner{})
	require.NoError(t, err)
	assert.Equal(t, []net.NodeID{u1}, result.Actives)
}

func TestActivateAlreadyActiveReportsDiagnostic(t *testing.T) {
	n := net.New()
	u0 := n.AddNode(net.UnitActive, 1)

	result, err := recommend.Activate(n, recommend.Learner{})
	require.Error(t, err)
	var diag *recommend.Diagnostics
	require.ErrorAs(t, err, &diag)
	assert.ErrorIs(t, err, recommend.ErrInputInconsistency)
	assert.Empty(t, result.Actives)
	assert.Equal(t, net.UnitActive, n.Kind(u0))
}

func TestActivateEmptyNet(t *testing.T) {
	n := net.New()
	result, err := recommend.Activate(n, recommend.Learner{})
	require.NoError(t, err)
	assert.Empty(t, result.Actives)
}
