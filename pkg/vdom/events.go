package vdom

// event creates a handler attribute with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

// On creates a handler attribute for an arbitrary event name.
func On(name string, handler any) Attr { return event(name, handler) }

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return event("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return event("mouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return event("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return event("keyup", handler) }

// Form events

// OnInput handles input events (fired as the value changes).
func OnInput(handler any) Attr { return event("input", handler) }

// OnChange handles change events (fired when the value is committed).
func OnChange(handler any) Attr { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Attr { return event("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return event("blur", handler) }
