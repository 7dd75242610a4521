package dom

// Category identifies the native interface family of an event.
type Category uint8

const (
	CategoryGeneric Category = iota
	CategoryMouse
	CategoryKeyboard
	CategoryFocus
	CategoryInput
	CategoryForm
	CategoryUI
	CategoryTouch
	CategoryWheel
	CategoryPointer
	CategoryAnimation
	CategoryTransition
	CategoryClipboard
	CategoryComposition
	CategoryDrag
	CategoryMedia
)

// String returns the string representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "Generic"
	case CategoryMouse:
		return "Mouse"
	case CategoryKeyboard:
		return "Keyboard"
	case CategoryFocus:
		return "Focus"
	case CategoryInput:
		return "Input"
	case CategoryForm:
		return "Form"
	case CategoryUI:
		return "UI"
	case CategoryTouch:
		return "Touch"
	case CategoryWheel:
		return "Wheel"
	case CategoryPointer:
		return "Pointer"
	case CategoryAnimation:
		return "Animation"
	case CategoryTransition:
		return "Transition"
	case CategoryClipboard:
		return "Clipboard"
	case CategoryComposition:
		return "Composition"
	case CategoryDrag:
		return "Drag"
	case CategoryMedia:
		return "Media"
	default:
		return "Unknown"
	}
}

// Phase is the dispatch phase an event is currently in.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapture
	PhaseAtTarget
	PhaseBubble
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseCapture:
		return "Capture"
	case PhaseAtTarget:
		return "AtTarget"
	case PhaseBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}

// Event is a dispatched event. Type is the native event type string
// ("click", "keydown", ...). Fields carries interface-specific properties
// (key, button, clientX, ...) set by the dispatcher or the caller.
type Event struct {
	Type       string
	Category   Category
	Bubbles    bool
	Cancelable bool

	// Target is the node the event was dispatched on. CurrentTarget is the
	// node whose listener is currently executing.
	Target        *Node
	CurrentTarget *Node
	Phase         Phase

	Fields map[string]any

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// NewEvent creates an event of the given type and category with empty
// fields. Bubbles and Cancelable default to false; callers set them before
// dispatch.
func NewEvent(eventType string, category Category) *Event {
	return &Event{
		Type:     eventType,
		Category: category,
		Fields:   make(map[string]any),
	}
}

// Get returns a field value, or nil if unset.
func (e *Event) Get(key string) any {
	return e.Fields[key]
}

// PreventDefault marks the event's default action as prevented. It has no
// effect on events that are not cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents the event from reaching further nodes. Remaining
// listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation prevents any further listener from running,
// including remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}
