package netgen

import (
	"math/rand"
	"strconv"

	"github.com/arvonet/lnet/net"
)

// Generate resolves opts into a Config and builds a fresh, structurally
// valid net: a chain of unit nodes interspersed with split/condition/test
// branch segments that always rejoin at a Join before the chain continues,
// ending with the last node on the chain set as the net's target. The
// result always passes validate.Check; it says nothing about whether every
// condition/test branch combination reaches the target (deciding that is
// the job of compress and reach).
//
// Generate never panics: an out-of-range Config comes back as
// ErrInvalidConfig.
func Generate(opts ...Option) (*net.Net, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := cfg.rng()
	n := net.New()

	g := &generator{n: n, rng: rng, maxBranches: cfg.maxBranches}

	head := n.AddNode(net.UnitInactive, g.nextSection())
	tail := head
	remaining := cfg.size - 1

	for remaining > 0 {
		if remaining >= 2 && rng.Float64() < cfg.branchiness {
			tail, remaining = g.addBranch(tail, remaining)

			continue
		}

		u := n.AddNode(net.UnitInactive, g.nextSection())
		_, _ = n.AddArc(tail, u, "")
		tail = u
		remaining--
	}

	n.SetTarget(tail)

	return n, nil
}

// generator holds the running id counters a single Generate call threads
// through its segment construction.
type generator struct {
	n   *net.Net
	rng *rand.Rand

	maxBranches int
	section     int
	conditionID int
	testID      int
}

func (g *generator) nextSection() int {
	s := g.section
	g.section++

	return s
}

func (g *generator) nextConditionID() int {
	id := g.conditionID
	g.conditionID++

	return id
}

func (g *generator) nextTestID() int {
	id := g.testID
	g.testID++

	return id
}

// addBranch appends one split/condition/test segment after tail and
// returns the Join node that merges its branches back together, along with
// the unit budget remaining after the units it consumed.
func (g *generator) addBranch(tail net.NodeID, remaining int) (net.NodeID, int) {
	branches := 2 + g.rng.Intn(g.maxBranches-1)

	var branchNode net.NodeID
	switch roll := g.rng.Float64(); {
	case roll < 0.6:
		branchNode = g.n.AddNode(net.Split, 0)
	case roll < 0.85:
		branchNode = g.n.AddNode(net.Condition, g.nextConditionID())
	default:
		branchNode = g.n.AddNode(net.Test, g.nextTestID())
	}
	_, _ = g.n.AddArc(tail, branchNode, "")

	kind := g.n.Kind(branchNode)
	perBranch := 1
	if remaining > 0 {
		perBranch = max(1, remaining/branches)
	}

	var branchTails []net.NodeID
	var directLabels []string

	for i := 0; i < branches; i++ {
		label := g.branchLabel(kind, i, branches)

		chainLen := 0
		if remaining > 0 {
			chainLen = 1 + g.rng.Intn(min(perBranch, remaining))
		}
		if chainLen == 0 {
			directLabels = append(directLabels, label)

			continue
		}

		first := g.n.AddNode(net.UnitInactive, g.nextSection())
		_, _ = g.n.AddArc(branchNode, first, label)
		remaining--

		prev := first
		for j := 1; j < chainLen; j++ {
			u := g.n.AddNode(net.UnitInactive, g.nextSection())
			_, _ = g.n.AddArc(prev, u, "")
			prev = u
			remaining--
		}
		branchTails = append(branchTails, prev)
	}

	join := g.n.AddNode(net.Join, 0)
	for _, bt := range branchTails {
		_, _ = g.n.AddArc(bt, join, "")
	}
	for _, label := range directLabels {
		_, _ = g.n.AddArc(branchNode, join, label)
	}
	necessary := 1 + g.rng.Intn(len(branchTails)+len(directLabels))
	_ = g.n.SetNecessaryInArcs(join, necessary)

	return join, remaining
}

// branchLabel picks the label carried by branchNode's i-th out-arc. A
// Condition always makes its last branch ELSE, so the generated net always
// satisfies validate's "condition has an ELSE out-arc" rule.
func (g *generator) branchLabel(kind net.NodeKind, i, branches int) string {
	switch kind {
	case net.Condition:
		if i == branches-1 {
			return net.ElseBranch
		}

		return strconv.Itoa(g.rng.Intn(100))
	case net.Test:
		return strconv.Itoa((i + 1) * 10)
	default:
		return ""
	}
}
