// Package reach enumerates every condition-branch combination a learning
// net can present to a learner and, for each one, runs a branch-aware
// topological traversal to confirm the target is reachable. It is the
// fallback for whatever a compress.Compress call could not already decide
// on its own.
package reach
