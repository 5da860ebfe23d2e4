package net

import "errors"

// Sentinel errors for net operations. Callers branch on these with
// errors.Is; messages are not part of the contract.
var (
	// ErrNodeNotFound indicates a NodeID that does not currently name a node
	// (never allocated, or since removed).
	ErrNodeNotFound = errors.New("net: node not found")

	// ErrArcNotFound indicates an ArcID that does not currently name an arc.
	ErrArcNotFound = errors.New("net: arc not found")

	// ErrWrongKind indicates an operation was attempted on a node whose kind
	// does not support it (e.g. NecessaryInArcs on a non-Join).
	ErrWrongKind = errors.New("net: operation not valid for this node kind")

	// ErrSelfContract indicates an attempt to contract a node into itself.
	ErrSelfContract = errors.New("net: cannot contract a node into itself")
)
