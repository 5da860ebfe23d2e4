package serial

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/arvonet/lnet/net"
)

// elseSentinel is the literal ELSE marker kept on the wire for
// compatibility with historical fixtures written before net.ElseBranch was
// renamed away from the original dialect's native-language keyword.
const elseSentinel = "SONST"

// kind <-> wire-integer encoding (§6 of the package's external-interfaces
// note): units 0/1/2, split-likes 10/11/12, join 20. Unlike the original
// dialect this repo descends from, a join's activated_in_arcs counter is
// never folded into this integer — NodeKind only ever names the node's
// role.
var kindToWire = map[net.NodeKind]int{
	net.UnitInactive:  0,
	net.UnitActive:    1,
	net.UnitCompleted: 2,
	net.Split:         10,
	net.Condition:     11,
	net.Test:          12,
	net.Join:          20,
}

var wireToKind = map[int]net.NodeKind{
	0:  net.UnitInactive,
	1:  net.UnitActive,
	2:  net.UnitCompleted,
	10: net.Split,
	11: net.Condition,
	12: net.Test,
	20: net.Join,
}

// Write renders n in the line-oriented @nodes/@arcs/@attributes dialect.
// visited, if non-nil, adds a fourth "visited" column to the @arcs block
// (1 for an arc the caller's traversal followed, 0 otherwise) — used by
// the recommend response to surface which arcs a frontier search took.
// recommended is always written when n has a non-empty recommended path;
// it is never read back in (write-only attribute).
func Write(n *net.Net, visited map[net.ArcID]bool) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 3, ' ', 0)

	fmt.Fprintln(tw, "@nodes")
	fmt.Fprintln(tw, "label\ttype\tref")
	for _, v := range n.Nodes() {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", v, kindToWire[n.Kind(v)], n.Ref(v))
	}
	tw.Flush()

	fmt.Fprintln(tw, "@arcs")
	if visited != nil {
		fmt.Fprintln(tw, "\tlabel\tcondition\tvisited")
	} else {
		fmt.Fprintln(tw, "\tlabel\tcondition")
	}
	for i, a := range n.Arcs() {
		branch := n.Branch(a)
		if branch == net.ElseBranch {
			branch = elseSentinel
		}
		if visited != nil {
			v := 0
			if visited[a] {
				v = 1
			}
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%d\n", n.ArcFrom(a), n.ArcTo(a), i, branch, v)
		} else {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", n.ArcFrom(a), n.ArcTo(a), i, branch)
		}
	}
	tw.Flush()

	fmt.Fprintln(tw, "@attributes")
	if target, ok := n.Target(); ok {
		fmt.Fprintf(tw, "target\t%d\n", target)
	}
	if rec := n.Recommended(); len(rec) > 0 {
		labels := make([]string, len(rec))
		for i, v := range rec {
			labels[i] = strconv.Itoa(int(v))
		}
		fmt.Fprintf(tw, "recommended\t%s\n", strings.Join(labels, " "))
	}
	tw.Flush()

	return sb.String()
}

// section is the reading position within a serialized net, advanced on
// each "@..." header line.
type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionArcs
	sectionAttributes
)

// Read parses a serialized net. It tolerates any of the three blocks being
// absent entirely and tolerates blank lines between rows, but returns
// ErrParse the moment a row within a block has fewer columns than its
// block requires or a numeric column does not parse as an integer.
//
// "recommended" in @attributes is accepted (so Read never errors on a
// round-tripped Write output) but discarded — a fresh net's recommended
// path is always request-computed, never read in.
func Read(s string) (*net.Net, error) {
	n := net.New()
	labelToID := make(map[int]net.NodeID)

	cur := sectionNone
	sawNodeHeader, sawArcHeader := false, false

	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch strings.TrimSpace(line) {
		case "@nodes":
			cur = sectionNodes
			sawNodeHeader = false

			continue
		case "@arcs":
			cur = sectionArcs
			sawArcHeader = false

			continue
		case "@attributes":
			cur = sectionAttributes

			continue
		}

		fields := strings.Fields(line)

		switch cur {
		case sectionNodes:
			if !sawNodeHeader {
				sawNodeHeader = true

				continue
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: node row %q has fewer than 3 columns", ErrParse, line)
			}
			label, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: node label %q: %v", ErrParse, fields[0], err)
			}
			wireType, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: node type %q: %v", ErrParse, fields[1], err)
			}
			ref, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: node ref %q: %v", ErrParse, fields[2], err)
			}
			kind, ok := wireToKind[wireType]
			if !ok {
				kind = net.Unknown
			}
			labelToID[label] = n.AddNode(kind, ref)

		case sectionArcs:
			if !sawArcHeader {
				sawArcHeader = true

				continue
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: arc row %q has fewer than 3 columns", ErrParse, line)
			}
			fromLabel, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: arc source %q: %v", ErrParse, fields[0], err)
			}
			toLabel, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: arc target %q: %v", ErrParse, fields[1], err)
			}
			from, ok := labelToID[fromLabel]
			if !ok {
				return nil, fmt.Errorf("%w: arc references unknown node %d", ErrParse, fromLabel)
			}
			to, ok := labelToID[toLabel]
			if !ok {
				return nil, fmt.Errorf("%w: arc references unknown node %d", ErrParse, toLabel)
			}

			branch := ""
			// fields: from to label [condition]; "label" (index 2) is the
			// arc's own ordinal and carries no semantics on read.
			if len(fields) >= 4 {
				branch = fields[3]
				if branch == elseSentinel {
					branch = net.ElseBranch
				}
			}
			if _, err := n.AddArc(from, to, branch); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}

		case sectionAttributes:
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: attribute row %q has fewer than 2 columns", ErrParse, line)
			}
			switch fields[0] {
			case "target":
				label, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: target %q: %v", ErrParse, fields[1], err)
				}
				id, ok := labelToID[label]
				if !ok {
					return nil, fmt.Errorf("%w: target references unknown node %d", ErrParse, label)
				}
				n.SetTarget(id)
			case "recommended":
				// Write-only in the wire dialect; accepted and discarded.
			}

		default:
			return nil, fmt.Errorf("%w: row %q outside any @section", ErrParse, line)
		}
	}

	return n, nil
}

// sortedArcIDs returns a copy of ids in ascending order; VisitedMap builds
// its map from it.
func sortedArcIDs(ids []net.ArcID) []net.ArcID {
	out := append([]net.ArcID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VisitedMap turns a slice of visited arc ids (as recommend.ActiveSet
// reports them) into the map form Write expects.
func VisitedMap(ids []net.ArcID) map[net.ArcID]bool {
	out := make(map[net.ArcID]bool, len(ids))
	for _, a := range sortedArcIDs(ids) {
		out[a] = true
	}

	return out
}
