package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/mount"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// mustRender mounts a tree or fails the test.
func mustRender(t *testing.T, n *vdom.VNode) *mount.Instance {
	t.Helper()
	root, err := mount.RenderIntoDocument(n)
	if err != nil {
		t.Fatalf("RenderIntoDocument: %v", err)
	}
	return root
}

// tags extracts host element tag names from a match list, in order.
func tags(insts []*mount.Instance) []string {
	var out []string
	for _, inst := range insts {
		out = append(out, inst.Node.Tag)
	}
	return out
}

func TestFindAllInRenderedTreeDocumentOrder(t *testing.T) {
	root := mustRender(t, vdom.El("div",
		vdom.El("header", vdom.El("a", "one")),
		vdom.El("main",
			vdom.El("a", "two"),
			vdom.El("section", vdom.El("a", "three")),
		),
		vdom.El("a", "four"),
	))

	matches, err := FindAllInRenderedTree(root, func(inst *mount.Instance) bool {
		return inst.Kind == mount.KindHost && inst.Node.Type == dom.ElementNode && inst.Node.Tag == "a"
	})
	if err != nil {
		t.Fatalf("FindAllInRenderedTree: %v", err)
	}

	var texts []string
	for _, m := range matches {
		texts = append(texts, m.Node.TextContent())
	}
	if diff := cmp.Diff([]string{"one", "two", "three", "four"}, texts); diff != "" {
		t.Errorf("match order (-want +got):\n%s", diff)
	}
}

func TestFindAllIncludesRootItself(t *testing.T) {
	root := mustRender(t, vdom.El("div", vdom.El("div")))

	matches, err := FindAllInRenderedTree(root, func(inst *mount.Instance) bool {
		return inst.Kind == mount.KindHost && inst.Node.Tag == "div"
	})
	if err != nil {
		t.Fatalf("FindAllInRenderedTree: %v", err)
	}
	if len(matches) != 2 || matches[0] != root {
		t.Error("the root instance itself must be visited first")
	}
}

func TestFindAllFalsyLeniency(t *testing.T) {
	tests := []struct {
		name string
		root any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"false", false},
		{"zero int", 0},
		{"zero float", 0.0},
		{"nil instance", (*mount.Instance)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := FindAllInRenderedTree(tt.root, func(*mount.Instance) bool { return true })
			if err != nil {
				t.Errorf("falsy root should yield no error, got %v", err)
			}
			if len(matches) != 0 {
				t.Errorf("falsy root should yield no matches, got %d", len(matches))
			}
		})
	}
}

func TestFindAllRejectsTruthyNonInstances(t *testing.T) {
	tests := []struct {
		name string
		root any
		want string
	}{
		{"dom node", dom.NewElement("div"), "a DOM node"},
		{"element description", vdom.El("div"), "an unrendered element description"},
		{"string", "div", "a primitive value (string)"},
		{"number", 42, "a primitive value (int)"},
		{"slice", []int{1}, "an array"},
		{"map", map[string]int{"b": 2, "a": 1}, "a plain object with keys {a, b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindAllInRenderedTree(tt.root, func(*mount.Instance) bool { return true })
			var rootErr *InvalidRootError
			if !errors.As(err, &rootErr) {
				t.Fatalf("err = %v, want InvalidRootError", err)
			}
			if rootErr.Category != tt.want {
				t.Errorf("Category = %q, want %q", rootErr.Category, tt.want)
			}
			if rootErr.Call != "FindAllInRenderedTree" {
				t.Errorf("Call = %q", rootErr.Call)
			}
		})
	}
}

func TestScryRejectsFalsyRoots(t *testing.T) {
	// The falsy leniency belongs to FindAllInRenderedTree alone. Every other
	// traversal validates strictly.
	if _, err := ScryRenderedDOMComponentsWithTag(nil, "div"); err == nil {
		t.Error("Scry must reject a nil root")
	}
	if _, err := FindRenderedDOMComponentWithTag("", "div"); err == nil {
		t.Error("Find must reject an empty-string root")
	}
	if _, err := ScryRenderedComponentsWithType(false, nil); err == nil {
		t.Error("Scry must reject a false root")
	}
}

func TestScryRenderedComponentsWithType(t *testing.T) {
	render := func(props vdom.Props, kids []*vdom.VNode) *vdom.VNode {
		return vdom.El("span", kids)
	}
	item := vdom.Component("Item", render)
	sameShape := vdom.Component("Item", render)

	app := vdom.Component("App", func(vdom.Props, []*vdom.VNode) *vdom.VNode {
		return vdom.El("div",
			vdom.Comp(item, nil),
			vdom.Comp(sameShape, nil),
			vdom.Comp(item, nil),
		)
	})
	root := mustRender(t, vdom.Comp(app, nil))

	matches, err := ScryRenderedComponentsWithType(root, item)
	if err != nil {
		t.Fatalf("ScryRenderedComponentsWithType: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("found %d, want 2; identity is the type pointer, never name or shape", len(matches))
	}
	for _, m := range matches {
		if m.Type != item {
			t.Error("matched instance carries the wrong type")
		}
	}

	only, err := FindRenderedComponentWithType(root, sameShape)
	if err != nil {
		t.Fatalf("FindRenderedComponentWithType: %v", err)
	}
	if only.Type != sameShape {
		t.Error("distinct type of the same name must resolve to its own instance")
	}
}

func TestFactoryWrappedTypesAreDistinct(t *testing.T) {
	makeLabel := func(text string) *vdom.ComponentType {
		return vdom.Component("Label", func(vdom.Props, []*vdom.VNode) *vdom.VNode {
			return vdom.El("span", text)
		})
	}

	a := makeLabel("a")
	b := makeLabel("b")
	root := mustRender(t, vdom.El("div", vdom.Comp(a, nil), vdom.Comp(b, nil)))

	got, err := ScryRenderedComponentsWithType(root, a)
	if err != nil {
		t.Fatalf("ScryRenderedComponentsWithType: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("found %d instances of a factory-produced type, want 1", len(got))
	}
}

func TestScryAndFindByTag(t *testing.T) {
	root := mustRender(t, vdom.El("div",
		vdom.El("span", "a"),
		vdom.El("p"),
		vdom.El("span", "b"),
	))

	spans, err := ScryRenderedDOMComponentsWithTag(root, "SPAN")
	if err != nil {
		t.Fatalf("ScryRenderedDOMComponentsWithTag: %v", err)
	}
	if diff := cmp.Diff([]string{"span", "span"}, tags(spans)); diff != "" {
		t.Errorf("tag match is case-insensitive (-want +got):\n%s", diff)
	}

	p, err := FindRenderedDOMComponentWithTag(root, "p")
	if err != nil {
		t.Fatalf("FindRenderedDOMComponentWithTag: %v", err)
	}
	if p.Node.Tag != "p" {
		t.Error("wrong instance found")
	}

	var multi *MultiplicityError
	_, err = FindRenderedDOMComponentWithTag(root, "span")
	if !errors.As(err, &multi) || multi.Count != 2 {
		t.Errorf("two spans: err = %v, want MultiplicityError with Count 2", err)
	}
	_, err = FindRenderedDOMComponentWithTag(root, "table")
	if !errors.As(err, &multi) || multi.Count != 0 {
		t.Errorf("no tables: err = %v, want MultiplicityError with Count 0", err)
	}
}

func TestClassMatching(t *testing.T) {
	root := mustRender(t, vdom.El("div",
		vdom.El("button", vdom.Class("btn", "primary")),
		vdom.El("button", vdom.Class("btn")),
		vdom.El("button", vdom.Prop("class", "btn\nprimary\nlarge")),
	))

	tests := []struct {
		name  string
		specs []string
		want  int
	}{
		{"single token", []string{"btn"}, 3},
		{"two tokens one arg", []string{"btn primary"}, 2},
		{"two tokens split args", []string{"btn", "primary"}, 2},
		{"newline separated spec", []string{"primary\nlarge"}, 1},
		{"order irrelevant", []string{"primary btn"}, 2},
		{"missing token", []string{"btn ghost"}, 0},
		{"no substring match", []string{"prim"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScryRenderedDOMComponentsWithClass(root, tt.specs...)
			if err != nil {
				t.Fatalf("ScryRenderedDOMComponentsWithClass: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("found %d, want %d", len(got), tt.want)
			}
		})
	}

	only, err := FindRenderedDOMComponentWithClass(root, "large")
	if err != nil {
		t.Fatalf("FindRenderedDOMComponentWithClass: %v", err)
	}
	if !only.Node.HasClass("large") {
		t.Error("wrong instance found")
	}
}

func TestDocumentOrderSurvivesKeyedReorder(t *testing.T) {
	item := func(key string) *vdom.VNode {
		return vdom.El("li", vdom.Key(key), key)
	}

	root := mustRender(t, vdom.El("ul", item("a"), item("b"), item("c")))
	if err := mount.Update(root, vdom.El("ul", item("c"), item("b"), item("a"))); err != nil {
		t.Fatalf("Update: %v", err)
	}

	lis, err := ScryRenderedDOMComponentsWithTag(root, "li")
	if err != nil {
		t.Fatalf("ScryRenderedDOMComponentsWithTag: %v", err)
	}

	var texts []string
	for _, li := range lis {
		texts = append(texts, li.Node.TextContent())
	}
	// Traversal follows current markup order, not the order the instances
	// were first mounted in.
	if diff := cmp.Diff([]string{"c", "b", "a"}, texts); diff != "" {
		t.Errorf("order after reorder (-want +got):\n%s", diff)
	}
}

func TestClassificationHelpers(t *testing.T) {
	label := vdom.Component("Label", func(vdom.Props, []*vdom.VNode) *vdom.VNode {
		return vdom.El("span", "x")
	})
	other := vdom.Component("Other", func(vdom.Props, []*vdom.VNode) *vdom.VNode {
		return vdom.El("span")
	})
	root := mustRender(t, vdom.Comp(label, nil))
	hostInst := root.Children[0]

	if !IsCompositeComponent(root) || IsCompositeComponent(hostInst) {
		t.Error("IsCompositeComponent misclassified")
	}
	if !IsCompositeComponentWithType(root, label) || IsCompositeComponentWithType(root, other) {
		t.Error("IsCompositeComponentWithType must use reference equality")
	}
	if !IsDOMComponent(hostInst) || IsDOMComponent(root) {
		t.Error("IsDOMComponent misclassified instances")
	}
	if !IsDOMComponent(root.DOMNode()) || IsDOMComponent(dom.NewText("x")) {
		t.Error("IsDOMComponent misclassified nodes")
	}
	if IsDOMComponent(nil) || IsCompositeComponent(nil) {
		t.Error("nil is never a component")
	}

	el := vdom.Comp(label, nil)
	if !IsElement(el) || IsElement(root) {
		t.Error("IsElement misclassified")
	}
	if !IsElementOfType(el, label) || IsElementOfType(el, other) {
		t.Error("IsElementOfType must use reference equality")
	}
	if IsElementOfType(vdom.El("span"), label) {
		t.Error("host element description has no component type")
	}
}
