package testutil

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/mount"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// isFalsy reports whether a root value is one of the legacy falsy values
// that FindAllInRenderedTree tolerates as an empty tree: nil, empty
// string, numeric zero, or false.
func isFalsy(root any) bool {
	switch v := root.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	}
	rv := reflect.ValueOf(root)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// requireInstance validates a query root, returning the instance or an
// InvalidRootError that names the category of what was received instead.
// The category check is resolved here, once, at the validation boundary;
// everything past this point deals in *mount.Instance only.
func requireInstance(call string, root any) (*mount.Instance, error) {
	if inst, ok := root.(*mount.Instance); ok && inst != nil {
		return inst, nil
	}
	return nil, &InvalidRootError{Call: call, Category: describeValue(root)}
}

// describeValue names the category of a non-instance value for error
// messages.
func describeValue(x any) string {
	switch v := x.(type) {
	case nil:
		return "nil"
	case *mount.Instance:
		return "a nil component instance"
	case *dom.Node:
		return "a DOM node"
	case *vdom.VNode:
		return "an unrendered element description"
	case *vdom.ComponentType:
		return fmt.Sprintf("a component type (%s)", v.Name)
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("a primitive value (%T)", v)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map:
		keys := rv.MapKeys()
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, fmt.Sprintf("%v", k.Interface()))
		}
		sort.Strings(names)
		return fmt.Sprintf("a plain object with keys {%s}", strings.Join(names, ", "))
	case reflect.Struct:
		return fmt.Sprintf("a plain object (%T)", x)
	case reflect.Ptr:
		if rv.Elem().Kind() == reflect.Struct {
			return fmt.Sprintf("a plain object (%T)", x)
		}
	}
	return fmt.Sprintf("an unsupported value (%T)", x)
}
