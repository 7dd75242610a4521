package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // User-authored component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is a virtual node describing what to render. It is a plain
// description; it is not itself a rendered instance or a DOM node.
type VNode struct {
	Kind     VKind          // Node type
	Tag      string         // Element tag name, lowercase (e.g. "div")
	Props    Props          // Attributes and event handlers
	Children []*VNode       // Child nodes
	Key      string         // Reconciliation key
	Text     string         // For KindText
	Type     *ComponentType // For KindComponent
}

// Props holds attributes and event handlers. Keys starting with "on" are
// event handlers ("onclick", "oninput", ...); everything else becomes an
// attribute on the rendered element.
type Props map[string]any

// RenderFunc produces the virtual tree for a component given its props and
// the children it was authored with.
type RenderFunc func(props Props, children []*VNode) *VNode

// ComponentType is the authoring identity of a component. Identity is the
// pointer: matching is reference equality, never structural. A factory that
// returns a fresh ComponentType per call therefore produces nodes that do
// not match the factory itself, only the returned value.
type ComponentType struct {
	// Name is a display name used in error messages and tooling.
	Name string

	// Render produces the component's virtual tree. A nil return renders
	// nothing.
	Render RenderFunc
}

// Component defines a new component type with the given display name and
// render function.
func Component(name string, render RenderFunc) *ComponentType {
	return &ComponentType{Name: name, Render: render}
}
