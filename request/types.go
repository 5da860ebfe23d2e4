package request

import (
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/arvonet/lnet/recommend"
)

// Request is the single JSON object the CLI (and any future transport)
// decodes: one action plus whichever fields that action requires. Unused
// fields for a given action are simply left at their zero value.
type Request struct {
	Action        string            `json:"action"`
	Network       string            `json:"network"`
	Sections      []string          `json:"sections"`
	Conditions    [][]string        `json:"conditions"`
	TestGrades    map[string]string `json:"testGrades"`
	RecType       string            `json:"recType"`
	NodeCosts     []CostEntry       `json:"nodeCosts"`
	NodePairCosts []PairCostEntry   `json:"nodePairCosts"`
}

// CostEntry is one weighted per-section cost table (the "nodeCosts" array
// element): costs is keyed by decimal section id.
type CostEntry struct {
	Weight float64            `json:"weight"`
	Costs  map[string]float64 `json:"costs"`
}

// PairCostEntry is one weighted per-section-pair cost table (the
// "nodePairCosts" array element): costs is keyed by source section id, then
// by target section id, both decimal.
type PairCostEntry struct {
	Weight float64                       `json:"weight"`
	Costs  map[string]map[string]float64 `json:"costs"`
}

// Decode parses raw as a Request. A malformed document or a field that
// cannot be typed as declared above is reported as ErrParse.
func Decode(raw []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &ParseError{cause: err}
	}

	return &req, nil
}

// ParseError wraps the underlying JSON decoding failure while still
// satisfying errors.Is(err, ErrParse).
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return "request: " + e.cause.Error()
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// SectionIDs parses r.Sections (decimal strings) into ints, failing with
// ErrParse the moment one does not parse.
func (r *Request) SectionIDs() ([]int, error) {
	out := make([]int, len(r.Sections))
	for i, s := range r.Sections {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ParseError{cause: err}
		}
		out[i] = v
	}

	return out, nil
}

// Grades parses r.TestGrades (decimal-string keys and values) into a
// test-id -> grade map, failing with ErrParse on a non-integer key or value.
func (r *Request) Grades() (map[int]int, error) {
	out := make(map[int]int, len(r.TestGrades))
	for k, v := range r.TestGrades {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, &ParseError{cause: err}
		}
		grade, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ParseError{cause: err}
		}
		out[id] = grade
	}

	return out, nil
}

// Learner builds a recommend.Learner from r.Conditions and r.TestGrades.
func (r *Request) Learner() (recommend.Learner, error) {
	grades, err := r.Grades()
	if err != nil {
		return recommend.Learner{}, err
	}

	values := make(map[int][]string, len(r.Conditions))
	for id, accepted := range r.Conditions {
		if len(accepted) > 0 {
			values[id] = accepted
		}
	}

	return recommend.Learner{ConditionValues: values, Grades: grades}, nil
}

// hasOnlyNodeCosts reports whether the recommend request supplied no
// per-unit-pair costs (whether or not it supplied per-unit costs), in
// which case RecNext/RecPath use the
// simpler per-section NodeCost formula instead of NodePairCost.
func (r *Request) hasOnlyNodeCosts() bool {
	return len(r.NodePairCosts) == 0
}
