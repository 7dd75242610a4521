package testutil

import (
	"sort"

	"github.com/veldt-ui/veldt/pkg/dom"
	"github.com/veldt-ui/veldt/pkg/mount"
	"github.com/veldt-ui/veldt/pkg/vdom"
)

// EventOpts carries caller-supplied event property overrides. The keys
// "bubbles" and "cancelable" override the event flags; every other entry
// becomes an event field, winning over defaults.
type EventOpts map[string]any

// eventShape describes the native event a logical name maps to: interface
// category, default flags, and the case-sensitive native type string used
// to construct and dispatch the event.
type eventShape struct {
	category   dom.Category
	nativeType string
	bubbles    bool
	cancelable bool
}

// eventShapes is the process-wide table of supported logical event names.
// It is initialized once and read-only thereafter.
var eventShapes = map[string]eventShape{
	// Mouse
	"Click":       {dom.CategoryMouse, "click", true, true},
	"DoubleClick": {dom.CategoryMouse, "dblclick", true, true},
	"MouseDown":   {dom.CategoryMouse, "mousedown", true, true},
	"MouseUp":     {dom.CategoryMouse, "mouseup", true, true},
	"MouseMove":   {dom.CategoryMouse, "mousemove", true, true},
	"MouseEnter":  {dom.CategoryMouse, "mouseenter", false, false},
	"MouseLeave":  {dom.CategoryMouse, "mouseleave", false, false},
	"MouseOver":   {dom.CategoryMouse, "mouseover", true, true},
	"MouseOut":    {dom.CategoryMouse, "mouseout", true, true},
	"ContextMenu": {dom.CategoryMouse, "contextmenu", true, true},

	// Wheel
	"Wheel": {dom.CategoryWheel, "wheel", true, true},

	// Keyboard
	"KeyDown":  {dom.CategoryKeyboard, "keydown", true, true},
	"KeyUp":    {dom.CategoryKeyboard, "keyup", true, true},
	"KeyPress": {dom.CategoryKeyboard, "keypress", true, true},

	// Focus
	"Focus":    {dom.CategoryFocus, "focus", false, false},
	"Blur":     {dom.CategoryFocus, "blur", false, false},
	"FocusIn":  {dom.CategoryFocus, "focusin", true, false},
	"FocusOut": {dom.CategoryFocus, "focusout", true, false},

	// Input / form
	"Change":  {dom.CategoryInput, "change", true, false},
	"Input":   {dom.CategoryInput, "input", true, false},
	"Submit":  {dom.CategoryForm, "submit", true, true},
	"Reset":   {dom.CategoryForm, "reset", true, true},
	"Invalid": {dom.CategoryForm, "invalid", false, true},
	"Select":  {dom.CategoryForm, "select", true, false},

	// UI
	"Scroll": {dom.CategoryUI, "scroll", false, false},
	"Load":   {dom.CategoryUI, "load", false, false},
	"Error":  {dom.CategoryUI, "error", false, false},
	"Abort":  {dom.CategoryUI, "abort", false, false},

	// Touch
	"TouchStart":  {dom.CategoryTouch, "touchstart", true, true},
	"TouchMove":   {dom.CategoryTouch, "touchmove", true, true},
	"TouchEnd":    {dom.CategoryTouch, "touchend", true, true},
	"TouchCancel": {dom.CategoryTouch, "touchcancel", true, false},

	// Pointer
	"PointerDown":   {dom.CategoryPointer, "pointerdown", true, true},
	"PointerUp":     {dom.CategoryPointer, "pointerup", true, true},
	"PointerMove":   {dom.CategoryPointer, "pointermove", true, true},
	"PointerOver":   {dom.CategoryPointer, "pointerover", true, true},
	"PointerOut":    {dom.CategoryPointer, "pointerout", true, true},
	"PointerEnter":  {dom.CategoryPointer, "pointerenter", false, false},
	"PointerLeave":  {dom.CategoryPointer, "pointerleave", false, false},
	"PointerCancel": {dom.CategoryPointer, "pointercancel", true, false},

	// Animation
	"AnimationStart":     {dom.CategoryAnimation, "animationstart", true, false},
	"AnimationEnd":       {dom.CategoryAnimation, "animationend", true, false},
	"AnimationIteration": {dom.CategoryAnimation, "animationiteration", true, false},

	// Transition
	"TransitionStart":  {dom.CategoryTransition, "transitionstart", true, false},
	"TransitionEnd":    {dom.CategoryTransition, "transitionend", true, false},
	"TransitionRun":    {dom.CategoryTransition, "transitionrun", true, false},
	"TransitionCancel": {dom.CategoryTransition, "transitioncancel", true, false},

	// Clipboard
	"Copy":  {dom.CategoryClipboard, "copy", true, true},
	"Cut":   {dom.CategoryClipboard, "cut", true, true},
	"Paste": {dom.CategoryClipboard, "paste", true, true},

	// Composition
	"CompositionStart":  {dom.CategoryComposition, "compositionstart", true, true},
	"CompositionUpdate": {dom.CategoryComposition, "compositionupdate", true, false},
	"CompositionEnd":    {dom.CategoryComposition, "compositionend", true, false},

	// Drag
	"Drag":      {dom.CategoryDrag, "drag", true, true},
	"DragStart": {dom.CategoryDrag, "dragstart", true, true},
	"DragEnd":   {dom.CategoryDrag, "dragend", true, false},
	"DragEnter": {dom.CategoryDrag, "dragenter", true, true},
	"DragLeave": {dom.CategoryDrag, "dragleave", true, false},
	"DragOver":  {dom.CategoryDrag, "dragover", true, true},
	"Drop":      {dom.CategoryDrag, "drop", true, true},

	// Media
	"Play":         {dom.CategoryMedia, "play", false, false},
	"Pause":        {dom.CategoryMedia, "pause", false, false},
	"Ended":        {dom.CategoryMedia, "ended", false, false},
	"TimeUpdate":   {dom.CategoryMedia, "timeupdate", false, false},
	"VolumeChange": {dom.CategoryMedia, "volumechange", false, false},

	// Generic
	"Toggle": {dom.CategoryGeneric, "toggle", false, false},
}

// simulate constructs the native-shaped event for a logical name, merges
// the caller's overrides on top, and dispatches it on the target node
// through the standard DOM dispatch path. Listener side effects happen
// inline; the call returns after dispatch completes.
func simulate(name string, target any, opts []EventOpts) error {
	shape := eventShapes[name]

	node, err := requireDOMNode(name, target)
	if err != nil {
		return err
	}

	e := dom.NewEvent(shape.nativeType, shape.category)
	e.Bubbles = shape.bubbles
	e.Cancelable = shape.cancelable

	for _, o := range opts {
		for k, v := range o {
			switch k {
			case "bubbles":
				if b, ok := v.(bool); ok {
					e.Bubbles = b
				}
			case "cancelable":
				if b, ok := v.(bool); ok {
					e.Cancelable = b
				}
			default:
				e.Fields[k] = v
			}
		}
	}

	node.DispatchEvent(e)
	return nil
}

// requireDOMNode validates a Simulate target. The two frequent mistakes,
// passing an element description or a component instance, each get a
// dedicated message.
func requireDOMNode(event string, target any) (*dom.Node, error) {
	switch v := target.(type) {
	case *dom.Node:
		if v != nil {
			return v, nil
		}
		return nil, &MisuseError{Event: event, Kind: MisuseOther, Got: "a nil DOM node"}
	case *vdom.VNode:
		return nil, &MisuseError{Event: event, Kind: MisuseElement}
	case *mount.Instance:
		return nil, &MisuseError{Event: event, Kind: MisuseInstance}
	}
	return nil, &MisuseError{Event: event, Kind: MisuseOther, Got: describeValue(target)}
}

// EventInfo describes one supported logical event for tooling.
type EventInfo struct {
	Name       string
	Category   dom.Category
	NativeType string
	Bubbles    bool
	Cancelable bool
}

// EventCatalog returns the supported logical events sorted by category,
// then name.
func EventCatalog() []EventInfo {
	infos := make([]EventInfo, 0, len(eventShapes))
	for name, shape := range eventShapes {
		infos = append(infos, EventInfo{
			Name:       name,
			Category:   shape.category,
			NativeType: shape.nativeType,
			Bubbles:    shape.bubbles,
			Cancelable: shape.cancelable,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Category != infos[j].Category {
			return infos[i].Category < infos[j].Category
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}
