package request

import (
	"fmt"

	"github.com/arvonet/lnet/compress"
	"github.com/arvonet/lnet/diag"
	"github.com/arvonet/lnet/net"
	"github.com/arvonet/lnet/reach"
	"github.com/arvonet/lnet/recommend"
	"github.com/arvonet/lnet/serial"
	"github.com/arvonet/lnet/validate"
)

// Response is the result of handling one Request: the text a CLI mirrors
// to stdout, and the process exit code it should use.
type Response struct {
	Stdout   string
	ExitCode int
}

// Handle decodes raw as a Request and dispatches it to Check, Create, or
// Recommend. A malformed document never panics; it always comes back as a
// failed Response with ExitCode 1.
func Handle(raw []byte) Response {
	req, err := Decode(raw)
	if err != nil {
		return Response{Stdout: err.Error(), ExitCode: 1}
	}

	return Dispatch(req)
}

// Dispatch routes an already-decoded Request to Check, Create, or
// Recommend by its Action field. Callers that build a Request themselves
// (e.g. cmd/lnetctl's per-subcommand body, which forces Action from the
// subcommand name rather than trusting the JSON body) should call this
// directly instead of round-tripping through Handle.
func Dispatch(req *Request) Response {
	switch req.Action {
	case "check":
		return Check(req)
	case "create":
		return Create(req)
	case "recommend":
		return Recommend(req)
	default:
		var d diag.Buffer
		d.Fail("%v: %q", ErrUnknownAction, req.Action)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}
}

// Check runs C2 (structural validation), then — only if the net has any
// branching node — C3 (compression) and, when compression is inconclusive,
// C4 (branch-combination reachability).
func Check(req *Request) Response {
	var d diag.Buffer

	n, err := serial.Read(req.Network)
	if err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	if err := validate.Check(n); err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	if !validate.HasBranches(n) {
		d.Append("valid")

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	result := compress.Compress(n)
	switch result.Status {
	case compress.Reachable:
		d.Append("valid")

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}

	case compress.Unreachable:
		for _, diagnostic := range result.Diagnostics {
			d.Fail("target unreachable: %s", formatCompressDiagnostic(diagnostic))
		}

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	if err := reach.Check(n); err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	d.Append("valid")

	return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
}

func formatCompressDiagnostic(diagnostic compress.Diagnostic) string {
	if diagnostic.HasTestID {
		return fmt.Sprintf("test %d: branch %s", diagnostic.TestID, diagnostic.Branch)
	}

	return fmt.Sprintf("condition %d: branch %s", diagnostic.ConditionID, diagnostic.Branch)
}

// Create builds a fresh net from req.Sections via net.CreateFromSections
// and serializes it.
func Create(req *Request) Response {
	var d diag.Buffer

	sections, err := req.SectionIDs()
	if err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	n := net.CreateFromSections(sections)

	return Response{Stdout: serial.Write(n, nil), ExitCode: 0}
}

// Recommend reads req.Network, marks req.Sections completed, runs the
// active-set frontier, then — depending on req.RecType — computes nothing
// further (active), the single cheapest next unit (next), or a full
// heuristic path (path). The serialized response always carries whatever
// kinds/recommended/visited state the run produced, even when a non-fatal
// diagnostic was recorded along the way.
func Recommend(req *Request) Response {
	var d diag.Buffer

	n, err := serial.Read(req.Network)
	if err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	sections, err := req.SectionIDs()
	if err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}
	for _, s := range n.SetCompleted(sections) {
		d.Append("section %d not found", s)
	}

	learner, err := req.Learner()
	if err != nil {
		d.Fail("%v", err)

		return Response{Stdout: d.String(), ExitCode: d.ExitCode()}
	}

	active, err := recommend.Activate(n, learner)
	appendDiagnostics(&d, err)

	var path []net.NodeID
	switch req.RecType {
	case "active":
		// Nothing further to compute; the active set itself is the answer.

	case "next":
		if v, ok := req.recNext(n, active.Actives); ok {
			path = []net.NodeID{v}
		}

	case "path":
		path, err = req.recPath(n, learner, active.Actives)
		appendDiagnostics(&d, err)

	default:
		d.Fail("%v: %q", ErrUnknownRecType, req.RecType)
	}

	n.SetRecommended(path)
	out := serial.Write(n, serial.VisitedMap(active.VisitedArcs))
	if !d.Empty() {
		out = d.String() + "\n" + out
	}

	return Response{Stdout: out, ExitCode: d.ExitCode()}
}

func (r *Request) recNext(n *net.Net, actives []net.NodeID) (net.NodeID, bool) {
	if r.hasOnlyNodeCosts() {
		return recommend.RecNext(r.buildNodeCosts(n), actives)
	}

	return recommend.RecNextPair(r.buildNodePairCosts(n), actives, net.NoNode)
}

func (r *Request) recPath(n *net.Net, learner recommend.Learner, actives []net.NodeID) ([]net.NodeID, error) {
	if r.hasOnlyNodeCosts() {
		return recommend.RecPath(n, learner, r.buildNodeCosts(n), actives)
	}

	return recommend.RecPathPair(n, learner, r.buildNodePairCosts(n), actives)
}

// appendDiagnostics folds a *recommend.Diagnostics (the only error shape
// Activate/RecPath/RecPathPair ever return) into d as non-fatal messages —
// an input inconsistency during recommendation still produces a usable
// best-effort result, so it is never treated as a Fail.
func appendDiagnostics(d *diag.Buffer, err error) {
	if err == nil {
		return
	}
	diagnostics, ok := err.(*recommend.Diagnostics)
	if !ok {
		d.Append("%v", err)

		return
	}
	for _, m := range diagnostics.Messages {
		d.Append("%s", m)
	}
}
