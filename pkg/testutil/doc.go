// Package testutil provides test utilities for mounted component trees:
// tree traversal, predicate queries over rendered instances, and event
// simulation against rendered DOM nodes.
//
// Queries come in two cardinalities. Scry functions return zero or more
// matches in document order. Find functions require exactly one match and
// return a MultiplicityError otherwise.
//
// Simulate dispatches synthesized events through the real DOM dispatch
// path, so listeners attached by the mount layer run exactly as they would
// for genuine input. Listeners execute synchronously: state they change is
// visible as soon as the Simulate call returns.
package testutil
