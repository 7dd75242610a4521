package mount

import (
	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// InstanceKind is the instance type discriminator.
type InstanceKind uint8

const (
	KindComposite InstanceKind = iota // User-authored component
	KindHost                          // Backed directly by a DOM node
)

// String returns the string representation of the InstanceKind.
func (k InstanceKind) String() string {
	switch k {
	case KindComposite:
		return "Composite"
	case KindHost:
		return "Host"
	default:
		return "Unknown"
	}
}

// Instance is a node in the mounted render tree. Composite instances carry
// the authoring Type; host instances carry the DOM Node. Children are in
// document order regardless of the order instances were mounted in.
type Instance struct {
	Kind InstanceKind
	Type *vdom.ComponentType // For KindComposite
	Node *dom.Node           // For KindHost
	Key  string

	Parent   *Instance
	Children []*Instance

	// seq records creation order across the lifetime of the mount. It is
	// bookkeeping only and deliberately unrelated to document order.
	seq uint64

	// container is the detached element the tree was mounted into. Set
	// only on the root instance.
	container *dom.Node

	// listeners are the DOM listener handles attached from on* props, so a
	// re-render can replace them.
	listeners []*dom.ListenerHandle
}

// DOMNode resolves this instance to a DOM node. Host instances resolve to
// their own node; composite instances delegate to their nearest rendered
// host descendant. Returns nil for a composite that rendered no host
// output.
func (inst *Instance) DOMNode() *dom.Node {
	if inst == nil {
		return nil
	}
	if inst.Kind == KindHost {
		return inst.Node
	}
	for _, c := range inst.Children {
		if n := c.DOMNode(); n != nil {
			return n
		}
	}
	return nil
}

// hostNodes collects the DOM nodes this instance contributes to its DOM
// parent, in document order. A host instance contributes its own node; a
// composite contributes whatever its children contribute.
func (inst *Instance) hostNodes() []*dom.Node {
	if inst.Kind == KindHost {
		return []*dom.Node{inst.Node}
	}
	var nodes []*dom.Node
	for _, c := range inst.Children {
		nodes = append(nodes, c.hostNodes()...)
	}
	return nodes
}

// detach removes the instance's host output from the DOM.
func (inst *Instance) detach() {
	for _, n := range inst.hostNodes() {
		n.Remove()
	}
}
