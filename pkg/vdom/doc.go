// Package vdom defines the virtual node tree used to author component trees.
//
// A tree is built from four node kinds: elements (host DOM tags), text,
// fragments (grouping without a wrapper), and components. Component nodes
// carry a *ComponentType, and component identity is the pointer itself:
// two types with identical render functions are still different types.
package vdom
