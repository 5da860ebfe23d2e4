// Package lnet is a backend engine for learning nets: directed acyclic
// graphs that model branching, joining study paths toward one target
// section.
//
// Given a learner's completed sections, condition values, and test grades,
// the engine can:
//
//   - validate that a net is well-formed and that some path to its target
//     exists for every possible learner profile (validate, compress, reach);
//   - mark the subset of currently active, ready-to-study unit nodes
//     (recommend);
//   - recommend a single next unit, or an entire heuristically cheapest
//     learning path (recommend).
//
// The module is organized leaves-first:
//
//	net/       — the typed LearningNet graph model (C1)
//	validate/  — per-node structural checks + acyclicity (C2)
//	compress/  — linear-time contraction preserving target reachability (C3)
//	reach/     — branch-combination enumeration + topological traversal (C4)
//	recommend/ — active-set frontier + cost-driven path recommendation (C5)
//	serial/    — the line-oriented textual net format
//	request/   — the JSON request/response boundary and orchestration
//	netgen/    — a deterministic random learning-net generator, for tests
//	cmd/lnetctl — the CLI entry point
//
// A net is exclusively owned by the single request that constructs it;
// the engine is synchronous and keeps no state across invocations.
package lnet
