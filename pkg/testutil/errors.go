package testutil

import (
	"fmt"
)

// InvalidRootError reports that the root argument of a traversal or query
// was not a mounted component instance. Category names what was actually
// received to make the mistake easy to spot (a DOM node, a slice, an
// unrendered element description, ...).
type InvalidRootError struct {
	Call     string
	Category string
}

// Error implements the error interface.
func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("testutil: %s: root must be a mounted component instance, got %s", e.Call, e.Category)
}

// MultiplicityError reports that a Find call did not observe exactly one
// match.
type MultiplicityError struct {
	Call  string
	Count int
}

// Error implements the error interface.
func (e *MultiplicityError) Error() string {
	found := "no instances"
	if e.Count > 1 {
		found = "more than one instance"
	}
	return fmt.Sprintf("testutil: %s: did not find exactly one match (found: %s)", e.Call, found)
}

// MisuseKind distinguishes the ways a Simulate target can be wrong.
type MisuseKind uint8

const (
	// MisuseElement means an unrendered element description (*vdom.VNode)
	// was passed instead of a DOM node.
	MisuseElement MisuseKind = iota
	// MisuseInstance means a component instance (*mount.Instance) was
	// passed instead of a DOM node.
	MisuseInstance
	// MisuseOther covers every other non-node value.
	MisuseOther
)

// MisuseError reports that a Simulate call was given something other than
// a DOM node.
type MisuseError struct {
	Event string
	Kind  MisuseKind
	Got   string
}

// Error implements the error interface.
func (e *MisuseError) Error() string {
	switch e.Kind {
	case MisuseElement:
		return fmt.Sprintf("testutil: Simulate.%s: received a rendered element description; pass the DOM node instead", e.Event)
	case MisuseInstance:
		return fmt.Sprintf("testutil: Simulate.%s: received a component instance; pass the DOM node instead", e.Event)
	default:
		return fmt.Sprintf("testutil: Simulate.%s: target must be a DOM node, got %s", e.Event, e.Got)
	}
}
