package testutil

import (
	"strings"

	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/mount"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// Predicate decides whether an instance matches a query.
type Predicate func(*mount.Instance) bool

// FindAllInRenderedTree traverses the instance tree under root and returns
// every instance the predicate matches, in document order: the order the
// corresponding host nodes appear in the rendered markup, regardless of
// the order instances were mounted or updated in.
//
// Falsy roots (nil, empty string, zero, false) return an empty result
// without error; this long-standing leniency applies to this function
// only. Any other non-instance root returns an InvalidRootError.
func FindAllInRenderedTree(root any, pred Predicate) ([]*mount.Instance, error) {
	if isFalsy(root) {
		return nil, nil
	}
	inst, err := requireInstance("FindAllInRenderedTree", root)
	if err != nil {
		return nil, err
	}
	return appendMatches(nil, inst, pred), nil
}

// appendMatches accumulates matches in a pre-order walk: the instance
// itself first, then its children left to right. Children are stored in
// document order by the mount layer, so the result is in document order.
func appendMatches(out []*mount.Instance, inst *mount.Instance, pred Predicate) []*mount.Instance {
	if pred(inst) {
		out = append(out, inst)
	}
	for _, c := range inst.Children {
		out = appendMatches(out, c, pred)
	}
	return out
}

// scry validates the root strictly and returns all matches in document
// order. Unlike FindAllInRenderedTree there is no falsy leniency.
func scry(call string, root any, pred Predicate) ([]*mount.Instance, error) {
	inst, err := requireInstance(call, root)
	if err != nil {
		return nil, err
	}
	return appendMatches(nil, inst, pred), nil
}

// findOne wraps a scry result with exactly-one semantics.
func findOne(call string, root any, pred Predicate) (*mount.Instance, error) {
	matches, err := scry(call, root, pred)
	if err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		return nil, &MultiplicityError{Call: call, Count: len(matches)}
	}
	return matches[0], nil
}

// ScryRenderedComponentsWithType returns all composite instances whose
// authoring type is typ. Matching is reference equality on the
// *vdom.ComponentType pointer, never structural.
func ScryRenderedComponentsWithType(root any, typ *vdom.ComponentType) ([]*mount.Instance, error) {
	return scry("ScryRenderedComponentsWithType", root, typePredicate(typ))
}

// FindRenderedComponentWithType returns the single composite instance with
// the given type, or a MultiplicityError if there is not exactly one.
func FindRenderedComponentWithType(root any, typ *vdom.ComponentType) (*mount.Instance, error) {
	return findOne("FindRenderedComponentWithType", root, typePredicate(typ))
}

// ScryRenderedDOMComponentsWithTag returns all host element instances
// whose tag name equals tag, case-insensitively.
func ScryRenderedDOMComponentsWithTag(root any, tag string) ([]*mount.Instance, error) {
	return scry("ScryRenderedDOMComponentsWithTag", root, tagPredicate(tag))
}

// FindRenderedDOMComponentWithTag returns the single host element instance
// with the given tag, or a MultiplicityError if there is not exactly one.
func FindRenderedDOMComponentWithTag(root any, tag string) (*mount.Instance, error) {
	return findOne("FindRenderedDOMComponentWithTag", root, tagPredicate(tag))
}

// ScryRenderedDOMComponentsWithClass returns all host element instances
// whose class attribute contains every requested token. Each classNames
// argument is split on whitespace runs (spaces, tabs, newlines), and all
// tokens across all arguments must be present; order is irrelevant.
func ScryRenderedDOMComponentsWithClass(root any, classNames ...string) ([]*mount.Instance, error) {
	return scry("ScryRenderedDOMComponentsWithClass", root, classPredicate(classNames))
}

// FindRenderedDOMComponentWithClass returns the single host element
// instance matching the class specification, or a MultiplicityError if
// there is not exactly one.
func FindRenderedDOMComponentWithClass(root any, classNames ...string) (*mount.Instance, error) {
	return findOne("FindRenderedDOMComponentWithClass", root, classPredicate(classNames))
}

func typePredicate(typ *vdom.ComponentType) Predicate {
	return func(inst *mount.Instance) bool {
		return inst.Kind == mount.KindComposite && inst.Type == typ
	}
}

func tagPredicate(tag string) Predicate {
	return func(inst *mount.Instance) bool {
		return isHostElement(inst) && strings.EqualFold(inst.Node.Tag, tag)
	}
}

func classPredicate(classNames []string) Predicate {
	var want []string
	for _, spec := range classNames {
		want = append(want, strings.Fields(spec)...)
	}
	return func(inst *mount.Instance) bool {
		if !isHostElement(inst) {
			return false
		}
		for _, tok := range want {
			if !inst.Node.HasClass(tok) {
				return false
			}
		}
		return true
	}
}

func isHostElement(inst *mount.Instance) bool {
	return inst.Kind == mount.KindHost && inst.Node != nil && inst.Node.Type == dom.ElementNode
}

// IsDOMComponent reports whether x is a DOM element: either a *dom.Node
// element or a host element instance. Text nodes and composite instances
// are not DOM components.
func IsDOMComponent(x any) bool {
	switch v := x.(type) {
	case *dom.Node:
		return v != nil && v.Type == dom.ElementNode
	case *mount.Instance:
		return v != nil && isHostElement(v)
	}
	return false
}

// IsCompositeComponent reports whether x is a composite (user-authored)
// component instance.
func IsCompositeComponent(x any) bool {
	inst, ok := x.(*mount.Instance)
	return ok && inst != nil && inst.Kind == mount.KindComposite
}

// IsCompositeComponentWithType reports whether x is a composite instance
// whose authoring type is exactly typ (reference equality).
func IsCompositeComponentWithType(x any, typ *vdom.ComponentType) bool {
	inst, ok := x.(*mount.Instance)
	return ok && inst != nil && inst.Kind == mount.KindComposite && inst.Type == typ
}

// IsElement reports whether x is an element description (*vdom.VNode).
func IsElement(x any) bool {
	n, ok := x.(*vdom.VNode)
	return ok && n != nil
}

// IsElementOfType reports whether x is a component element description
// authored with exactly typ.
func IsElementOfType(x any, typ *vdom.ComponentType) bool {
	n, ok := x.(*vdom.VNode)
	return ok && n != nil && n.Kind == vdom.KindComponent && n.Type == typ
}
