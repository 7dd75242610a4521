// Package mount turns a vdom tree into a live instance tree backed by an
// in-memory DOM. Composite instances correspond to component nodes and may
// own no DOM node of their own; host instances wrap exactly one DOM node.
// Event handler props ("onclick", ...) are attached as real DOM listeners,
// so dispatching an event on a rendered node runs the authored handlers.
//
// Instance children are always kept in document order, the order host
// nodes appear in the rendered markup. Update reuses keyed instances
// across re-renders, so the order instances were created in can diverge
// from document order; the Children slices never do.
package mount
