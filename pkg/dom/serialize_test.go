package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TestOuterHTMLParsesBack feeds serialized markup through a real HTML
// parser and checks the parsed tree mirrors the node tree, tag for tag
// and text for text.
func TestOuterHTMLParsesBack(t *testing.T) {
	root := NewElement("div")
	root.SetAttr("class", "wrap")
	header := NewElement("header")
	header.AppendChild(NewText("title & more"))
	root.AppendChild(header)
	list := NewElement("ul")
	for _, s := range []string{"a", "b", "c"} {
		li := NewElement("li")
		li.SetAttr("data-id", s)
		li.AppendChild(NewText(s))
		list.AppendChild(li)
	}
	root.AppendChild(list)
	img := NewElement("img")
	img.SetAttr("src", "x.png")
	root.AppendChild(img)

	frag, err := html.ParseFragment(strings.NewReader(root.OuterHTML()), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("parsed %d top-level nodes, want 1", len(frag))
	}

	var parsed []string
	var walkParsed func(n *html.Node)
	walkParsed = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			parsed = append(parsed, n.Data)
		case html.TextNode:
			parsed = append(parsed, "#"+n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkParsed(c)
		}
	}
	walkParsed(frag[0])

	var ours []string
	var walkOurs func(n *Node)
	walkOurs = func(n *Node) {
		switch n.Type {
		case ElementNode:
			ours = append(ours, n.Tag)
		case TextNode:
			ours = append(ours, "#"+n.Text())
		}
		for _, c := range n.Children() {
			walkOurs(c)
		}
	}
	walkOurs(root)

	if diff := cmp.Diff(ours, parsed); diff != "" {
		t.Errorf("parsed tree diverges from node tree (-ours +parsed):\n%s", diff)
	}

	if v, ok := findParsedAttr(frag[0], "class"); !ok || v != "wrap" {
		t.Errorf("parsed class = %q, %v", v, ok)
	}
}

func findParsedAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
