// Package net defines the Net type: a directed graph of study units and
// connectives (splits, conditions, tests, joins) with a single distinguished
// target node and an optional recommended learning path.
//
// Net owns its nodes, arcs, and their attributes (kind, reference integer,
// branch label, join activation counters). NodeID and ArcID are opaque
// handles, stable across insertions but invalidated once the element they
// name is removed — callers must not retain a handle across a removal of
// that specific node or arc.
//
// The graph is stored as an adjacency list of arc handles per node (an
// in-slice and an out-slice), not as a generic weighted multigraph: the
// learning-net domain needs cheap arc redirection and node contraction, not
// the locking, metadata maps, or undirected-edge mirroring that a
// general-purpose graph type would carry.
package net
