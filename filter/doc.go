// Package filter defines the immutable boolean filter tree produced by the
// hashsplit query constructors.
//
// The tree is a plain tagged-variant structure (And, Or, Term, Range,
// Prefix, Pattern, None) with no behavior of its own: evaluation against a
// term dictionary lives in the searcher package, so hosts with their own
// boolean executor can walk the tree and translate each leaf into a native
// primitive instead.
package filter
