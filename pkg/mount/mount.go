package mount

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// Mount errors.
var (
	ErrNilTree      = errors.New("mount: tree is nil")
	ErrMultipleRoot = errors.New("mount: root must produce exactly one instance")
)

// instanceSeqCounter generates creation-order sequence numbers.
var instanceSeqCounter atomic.Uint64

// RenderIntoDocument mounts a vdom tree into a detached container element
// and returns the root instance. The container is reachable through the
// root's DOM node parent.
func RenderIntoDocument(n *vdom.VNode) (*Instance, error) {
	if n == nil {
		return nil, ErrNilTree
	}

	container := dom.NewElement("div")
	insts, err := mountNode(n, container, nil)
	if err != nil {
		return nil, err
	}
	if len(insts) != 1 {
		return nil, ErrMultipleRoot
	}

	root := insts[0]
	root.container = container
	return root, nil
}

// Update re-renders a mounted tree against a new vdom tree. Keyed children
// are matched to their previous instances and reused, so instance identity
// survives reorders. DOM children are reordered to match the new markup
// order.
func Update(root *Instance, n *vdom.VNode) error {
	if root == nil {
		return errors.New("mount: root instance is nil")
	}
	if n == nil {
		return ErrNilTree
	}
	if !compatible(root, n) {
		return fmt.Errorf("mount: cannot update %s instance with %s node", root.Kind, n.Kind)
	}
	if err := updateInstance(root, n, root.container); err != nil {
		return err
	}
	if root.container != nil {
		rebuildDOM(root.container, []*Instance{root})
	}
	return nil
}

// mountNode mounts a vdom node, appending host output to domParent. It
// returns the instances the node contributes to its parent: one for
// elements, text, and components; zero or more for fragments, which are
// transparent.
func mountNode(n *vdom.VNode, domParent *dom.Node, parent *Instance) ([]*Instance, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case vdom.KindText:
		node := dom.NewText(n.Text)
		domParent.AppendChild(node)
		inst := newInstance(KindHost, parent)
		inst.Node = node
		return []*Instance{inst}, nil

	case vdom.KindFragment:
		var insts []*Instance
		for _, c := range n.Children {
			childInsts, err := mountNode(c, domParent, parent)
			if err != nil {
				return nil, err
			}
			insts = append(insts, childInsts...)
		}
		return insts, nil

	case vdom.KindElement:
		node := dom.NewElement(n.Tag)
		inst := newInstance(KindHost, parent)
		inst.Node = node
		inst.Key = n.Key
		if err := applyProps(inst, node, n.Props); err != nil {
			return nil, err
		}
		domParent.AppendChild(node)
		for _, c := range n.Children {
			childInsts, err := mountNode(c, node, inst)
			if err != nil {
				return nil, err
			}
			inst.Children = append(inst.Children, childInsts...)
		}
		return []*Instance{inst}, nil

	case vdom.KindComponent:
		if n.Type == nil {
			return nil, errors.New("mount: component node has no type")
		}
		if n.Type.Render == nil {
			return nil, fmt.Errorf("mount: component type %q has no render function", n.Type.Name)
		}
		inst := newInstance(KindComposite, parent)
		inst.Type = n.Type
		inst.Key = n.Key
		rendered := n.Type.Render(n.Props, n.Children)
		childInsts, err := mountNode(rendered, domParent, inst)
		if err != nil {
			return nil, err
		}
		inst.Children = childInsts
		return []*Instance{inst}, nil

	default:
		return nil, fmt.Errorf("mount: unknown node kind %d", n.Kind)
	}
}

// newInstance creates an instance with the next creation sequence number.
func newInstance(kind InstanceKind, parent *Instance) *Instance {
	return &Instance{
		Kind:   kind,
		Parent: parent,
		seq:    instanceSeqCounter.Add(1),
	}
}

// applyProps sets attributes and attaches event listeners from props.
func applyProps(inst *Instance, node *dom.Node, props vdom.Props) error {
	for key, value := range props {
		if value == nil {
			continue
		}
		if strings.HasPrefix(key, "on") && len(key) > 2 {
			handler, err := wrapHandler(value)
			if err != nil {
				return fmt.Errorf("mount: prop %q on <%s>: %w", key, node.Tag, err)
			}
			eventType := strings.ToLower(key[2:])
			h := node.AddEventListener(eventType, handler, false)
			inst.listeners = append(inst.listeners, h)
			continue
		}
		if s, ok := attrValue(value); ok {
			node.SetAttr(key, s)
		}
	}
	return nil
}

// wrapHandler adapts the supported handler prop shapes to a dom.Listener.
func wrapHandler(value any) (dom.Listener, error) {
	switch h := value.(type) {
	case dom.Listener:
		return h, nil
	case func(*dom.Event):
		return h, nil
	case func():
		return func(*dom.Event) { h() }, nil
	default:
		return nil, fmt.Errorf("handler must be func() or func(*dom.Event), got %T", value)
	}
}

// attrValue converts a prop value to an attribute string. Boolean props
// follow boolean-attribute semantics: true sets an empty attribute, false
// omits it.
func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "", true
		}
		return "", false
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// updateInstance re-renders an existing instance against a compatible vdom
// node. domParent is the DOM node the instance's host output lives in.
func updateInstance(inst *Instance, n *vdom.VNode, domParent *dom.Node) error {
	switch n.Kind {
	case vdom.KindText:
		inst.Node.SetText(n.Text)
		return nil

	case vdom.KindElement:
		if err := updateProps(inst, n.Props); err != nil {
			return err
		}
		if err := reconcileChildren(inst, inst.Node, n.Children); err != nil {
			return err
		}
		rebuildDOM(inst.Node, inst.Children)
		return nil

	case vdom.KindComponent:
		rendered := n.Type.Render(n.Props, n.Children)
		var kids []*vdom.VNode
		if rendered != nil {
			kids = []*vdom.VNode{rendered}
		}
		return reconcileChildren(inst, domParent, kids)

	default:
		return fmt.Errorf("mount: cannot update %s node", n.Kind)
	}
}

// updateProps replaces a host element's attributes and listeners with the
// new prop set.
func updateProps(inst *Instance, props vdom.Props) error {
	node := inst.Node

	for _, h := range inst.listeners {
		node.RemoveEventListener(h)
	}
	inst.listeners = nil

	for _, name := range node.AttrNames() {
		if v, ok := props[name]; ok && v != nil {
			if _, set := attrValue(v); set {
				continue
			}
		}
		// Gone from the new props, or present with a value that does not
		// serialize (nil, false bool).
		node.RemoveAttr(name)
	}

	return applyProps(inst, node, props)
}

// reconcileChildren matches an instance's children against new vdom
// children. Keyed children match by key, unkeyed children by position;
// matched instances are updated in place, unmatched old instances are
// detached, and unmatched new nodes are freshly mounted. The resulting
// Children slice is in document order.
func reconcileChildren(inst *Instance, domParent *dom.Node, newKids []*vdom.VNode) error {
	kids := flattenVNodes(newKids)
	old := inst.Children

	keyed := make(map[string]*Instance)
	for _, o := range old {
		if o.Key != "" {
			keyed[o.Key] = o
		}
	}

	used := make(map[*Instance]bool)
	next := make([]*Instance, 0, len(kids))
	unkeyedIdx := 0

	for _, k := range kids {
		var match *Instance
		if k.Key != "" {
			if cand, ok := keyed[k.Key]; ok && compatible(cand, k) {
				match = cand
			}
		} else {
			for unkeyedIdx < len(old) {
				cand := old[unkeyedIdx]
				unkeyedIdx++
				if cand.Key != "" || used[cand] {
					continue
				}
				if compatible(cand, k) {
					match = cand
				}
				break
			}
		}

		if match != nil && !used[match] {
			used[match] = true
			if err := updateInstance(match, k, domParent); err != nil {
				return err
			}
			next = append(next, match)
			continue
		}

		mounted, err := mountNode(k, domParent, inst)
		if err != nil {
			return err
		}
		next = append(next, mounted...)
	}

	for _, o := range old {
		if !used[o] {
			o.detach()
		}
	}

	inst.Children = next
	return nil
}

// flattenVNodes inlines fragment children and drops nils, yielding the
// structural child list in document order.
func flattenVNodes(nodes []*vdom.VNode) []*vdom.VNode {
	var flat []*vdom.VNode
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == vdom.KindFragment {
			flat = append(flat, flattenVNodes(n.Children)...)
			continue
		}
		flat = append(flat, n)
	}
	return flat
}

// compatible reports whether an existing instance can be updated in place
// by the given vdom node.
func compatible(inst *Instance, n *vdom.VNode) bool {
	switch n.Kind {
	case vdom.KindText:
		return inst.Kind == KindHost && inst.Node.Type == dom.TextNode
	case vdom.KindElement:
		return inst.Kind == KindHost && inst.Node.Type == dom.ElementNode && inst.Node.Tag == n.Tag
	case vdom.KindComponent:
		return inst.Kind == KindComposite && inst.Type == n.Type
	default:
		return false
	}
}

// rebuildDOM reassembles a DOM parent's children from the instance tree so
// node order matches document order after a reorder.
func rebuildDOM(parent *dom.Node, children []*Instance) {
	existing := parent.Children()
	snapshot := make([]*dom.Node, len(existing))
	copy(snapshot, existing)
	for _, c := range snapshot {
		c.Remove()
	}
	for _, inst := range children {
		for _, n := range inst.hostNodes() {
			parent.AppendChild(n)
		}
	}
}
