package vdom

import (
	"fmt"
	"strings"
)

// Attr represents a single attribute or event handler.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// El creates an element node. Arguments may be Attr values, Props maps,
// strings (text children), *VNode children, or []*VNode slices; nil
// arguments and nil children are skipped.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   strings.ToLower(tag),
		Props: Props{},
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			node.apply(v.Key, v.Value)
		case Props:
			for k, val := range v {
				node.apply(k, val)
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case *ComponentType:
			node.Children = append(node.Children, Comp(v, nil))
		}
	}

	return node
}

// apply stores a prop, routing the reconciliation key to VNode.Key.
func (n *VNode) apply(key string, value any) {
	if key == "key" {
		n.Key = fmt.Sprintf("%v", value)
		return
	}
	n.Props[key] = value
}

// Comp creates a component node for the given type.
func Comp(typ *ComponentType, props Props, children ...*VNode) *VNode {
	node := &VNode{
		Kind:  KindComponent,
		Type:  typ,
		Props: props,
	}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// Fragment groups children without a wrapper element. Fragments are
// transparent when mounted: they contribute no instance of their own.
func Fragment(children ...*VNode) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// Class creates a class attribute. Multiple names are joined with spaces.
func Class(names ...string) Attr {
	return Attr{Key: "class", Value: strings.Join(names, " ")}
}

// ID creates an id attribute.
func ID(v string) Attr {
	return Attr{Key: "id", Value: v}
}

// Key creates a reconciliation key.
func Key(key any) Attr {
	return Attr{Key: "key", Value: fmt.Sprintf("%v", key)}
}

// Prop creates an arbitrary attribute.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes. Nil results are dropped.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
