package dom

import (
	"strings"
)

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota // <div>, <button>, etc.
	TextNode                    // Plain text node
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a DOM node. Element nodes have a tag, attributes, and children;
// text nodes carry only text. Both kinds are event targets.
type Node struct {
	Type NodeType
	Tag  string // lowercase tag name, empty for text nodes

	text      string
	attrs     map[string]string
	parent    *Node
	children  []*Node
	listeners map[string][]*ListenerHandle
	nextLID   uint64
}

// NewElement creates a detached element node with the given tag.
// The tag is stored lowercase.
func NewElement(tag string) *Node {
	return &Node{
		Type:  ElementNode,
		Tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, text: text}
}

// Parent returns the parent node, or nil for a detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in document order. The returned slice
// must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild appends child to this node, detaching it from any previous
// parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild removes child from this node. It is a no-op if child is not
// a direct child.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Remove detaches this node from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// SetAttr sets an attribute value.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[strings.ToLower(name)] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, strings.ToLower(name))
}

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[strings.ToLower(name)]
	return v, ok
}

// AttrNames returns the names of all set attributes in sorted order.
func (n *Node) AttrNames() []string {
	return n.sortedAttrNames()
}

// ClassList returns the class attribute split into tokens. Any run of
// whitespace (spaces, tabs, newlines) separates tokens.
func (n *Node) ClassList() []string {
	return strings.Fields(n.attrs["class"])
}

// HasClass reports whether the class attribute contains the given token.
func (n *Node) HasClass(token string) bool {
	for _, t := range n.ClassList() {
		if t == token {
			return true
		}
	}
	return false
}

// Text returns the text of a text node. It is empty for element nodes.
func (n *Node) Text() string {
	return n.text
}

// SetText sets the text of a text node.
func (n *Node) SetText(text string) {
	n.text = text
}

// TextContent returns the concatenated text of this node and all its
// descendants in document order.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}
