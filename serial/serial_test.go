package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/serial"
)

func TestRoundTripSimpleChain(t *testing.T) {
	n := net.New()
	a := n.AddNode(net.UnitInactive, 1)
	b := n.AddNode(net.UnitInactive, 2)
	_, _ = n.AddArc(a, b, "")
	n.SetTarget(b)

	out := serial.Write(n, nil)

	parsed, err := serial.Read(out)
	require.NoError(t, err)

	assert.Len(t, parsed.Nodes(), 2)
	target, ok := parsed.Target()
	require.True(t, ok)
	assert.Equal(t, net.UnitInactive, parsed.Kind(net.NodeID(0)))
	assert.Equal(t, 2, parsed.Ref(target))
}

func TestReadWritesElseSentinelAsSonst(t *testing.T) {
	n := net.New()
	cond := n.AddNode(net.Condition, 7)
	u := n.AddNode(net.UnitInactive, 1)
	_, _ = n.AddArc(cond, u, net.ElseBranch)
	n.SetTarget(u)

	out := serial.Write(n, nil)
	assert.Contains(t, out, "SONST")
	assert.NotContains(t, out, "ELSE")

	parsed, err := serial.Read(out)
	require.NoError(t, err)
	arcs := parsed.OutArcs(net.NodeID(0))
	require.Len(t, arcs, 1)
	assert.Equal(t, net.ElseBranch, parsed.Branch(arcs[0]))
}

func TestReadTargetAndAttributes(t *testing.T) {
	const doc = `@nodes
label	type	ref
0	0	3
1	20	1
@arcs
	label	condition
0	1	0	SONST
@attributes
target	1
recommended	0 1
`
	n, err := serial.Read(doc)
	require.NoError(t, err)
	assert.Equal(t, net.UnitInactive, n.Kind(net.NodeID(0)))
	assert.Equal(t, net.Join, n.Kind(net.NodeID(1)))
	target, ok := n.Target()
	require.True(t, ok)
	assert.Equal(t, net.NodeID(1), target)
	// recommended is write-only: Read never populates it.
	assert.Empty(t, n.Recommended())
}

func TestReadUnrecognizedKindBecomesUnknown(t *testing.T) {
	const doc = `@nodes
label	type	ref
0	999	0
`
	n, err := serial.Read(doc)
	require.NoError(t, err)
	assert.Equal(t, net.Unknown, n.Kind(net.NodeID(0)))
}

func TestReadMalformedNodeRow(t *testing.T) {
	const doc = `@nodes
label	type	ref
0	0
`
	_, err := serial.Read(doc)
	require.ErrorIs(t, err, serial.ErrParse)
}

func TestReadArcReferencingUnknownNode(t *testing.T) {
	const doc = `@nodes
label	type	ref
0	0	1
@arcs
	label	condition
0	5	0
`
	_, err := serial.Read(doc)
	require.ErrorIs(t, err, serial.ErrParse)
}

func TestWriteVisitedColumn(t *testing.T) {
	n := net.New()
	a := n.AddNode(net.UnitInactive, 1)
	b := n.AddNode(net.UnitInactive, 2)
	arc, _ := n.AddArc(a, b, "")
	n.SetTarget(b)

	out := serial.Write(n, serial.VisitedMap([]net.ArcID{arc}))
	assert.Contains(t, out, "visited")
}

func TestReadEmptyDocument(t *testing.T) {
	n, err := serial.Read("")
	require.NoError(t, err)
	assert.Empty(t, n.Nodes())
}
