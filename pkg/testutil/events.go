package testutil

// Simulate dispatches synthesized events on rendered DOM nodes. Each
// method maps a logical event name to its native shape (category, default
// bubbles/cancelable flags, native type string), merges any overrides, and
// dispatches through the real DOM event path.
var Simulate simulator

type simulator struct{}

// Mouse events

// Click dispatches a "click" event.
func (simulator) Click(target any, opts ...EventOpts) error {
	return simulate("Click", target, opts)
}

// DoubleClick dispatches a "dblclick" event.
func (simulator) DoubleClick(target any, opts ...EventOpts) error {
	return simulate("DoubleClick", target, opts)
}

// MouseDown dispatches a "mousedown" event.
func (simulator) MouseDown(target any, opts ...EventOpts) error {
	return simulate("MouseDown", target, opts)
}

// MouseUp dispatches a "mouseup" event.
func (simulator) MouseUp(target any, opts ...EventOpts) error {
	return simulate("MouseUp", target, opts)
}

// MouseMove dispatches a "mousemove" event.
func (simulator) MouseMove(target any, opts ...EventOpts) error {
	return simulate("MouseMove", target, opts)
}

// MouseEnter dispatches a non-bubbling "mouseenter" event.
func (simulator) MouseEnter(target any, opts ...EventOpts) error {
	return simulate("MouseEnter", target, opts)
}

// MouseLeave dispatches a non-bubbling "mouseleave" event.
func (simulator) MouseLeave(target any, opts ...EventOpts) error {
	return simulate("MouseLeave", target, opts)
}

// MouseOver dispatches a "mouseover" event.
func (simulator) MouseOver(target any, opts ...EventOpts) error {
	return simulate("MouseOver", target, opts)
}

// MouseOut dispatches a "mouseout" event.
func (simulator) MouseOut(target any, opts ...EventOpts) error {
	return simulate("MouseOut", target, opts)
}

// ContextMenu dispatches a "contextmenu" event.
func (simulator) ContextMenu(target any, opts ...EventOpts) error {
	return simulate("ContextMenu", target, opts)
}

// Wheel dispatches a "wheel" event.
func (simulator) Wheel(target any, opts ...EventOpts) error {
	return simulate("Wheel", target, opts)
}

// Keyboard events

// KeyDown dispatches a "keydown" event.
func (simulator) KeyDown(target any, opts ...EventOpts) error {
	return simulate("KeyDown", target, opts)
}

// KeyUp dispatches a "keyup" event.
func (simulator) KeyUp(target any, opts ...EventOpts) error {
	return simulate("KeyUp", target, opts)
}

// KeyPress dispatches a "keypress" event.
func (simulator) KeyPress(target any, opts ...EventOpts) error {
	return simulate("KeyPress", target, opts)
}

// Focus events

// Focus dispatches a non-bubbling "focus" event.
func (simulator) Focus(target any, opts ...EventOpts) error {
	return simulate("Focus", target, opts)
}

// Blur dispatches a non-bubbling "blur" event.
func (simulator) Blur(target any, opts ...EventOpts) error {
	return simulate("Blur", target, opts)
}

// FocusIn dispatches a "focusin" event (bubbles, unlike focus).
func (simulator) FocusIn(target any, opts ...EventOpts) error {
	return simulate("FocusIn", target, opts)
}

// FocusOut dispatches a "focusout" event (bubbles, unlike blur).
func (simulator) FocusOut(target any, opts ...EventOpts) error {
	return simulate("FocusOut", target, opts)
}

// Form events

// Change dispatches a "change" event.
func (simulator) Change(target any, opts ...EventOpts) error {
	return simulate("Change", target, opts)
}

// Input dispatches an "input" event.
func (simulator) Input(target any, opts ...EventOpts) error {
	return simulate("Input", target, opts)
}

// Submit dispatches a "submit" event.
func (simulator) Submit(target any, opts ...EventOpts) error {
	return simulate("Submit", target, opts)
}

// Reset dispatches a "reset" event.
func (simulator) Reset(target any, opts ...EventOpts) error {
	return simulate("Reset", target, opts)
}

// Invalid dispatches an "invalid" event.
func (simulator) Invalid(target any, opts ...EventOpts) error {
	return simulate("Invalid", target, opts)
}

// Select dispatches a "select" event.
func (simulator) Select(target any, opts ...EventOpts) error {
	return simulate("Select", target, opts)
}

// UI events

// Scroll dispatches a non-bubbling "scroll" event.
func (simulator) Scroll(target any, opts ...EventOpts) error {
	return simulate("Scroll", target, opts)
}

// Load dispatches a "load" event.
func (simulator) Load(target any, opts ...EventOpts) error {
	return simulate("Load", target, opts)
}

// Error dispatches an "error" event.
func (simulator) Error(target any, opts ...EventOpts) error {
	return simulate("Error", target, opts)
}

// Abort dispatches an "abort" event.
func (simulator) Abort(target any, opts ...EventOpts) error {
	return simulate("Abort", target, opts)
}

// Touch events

// TouchStart dispatches a "touchstart" event.
func (simulator) TouchStart(target any, opts ...EventOpts) error {
	return simulate("TouchStart", target, opts)
}

// TouchMove dispatches a "touchmove" event.
func (simulator) TouchMove(target any, opts ...EventOpts) error {
	return simulate("TouchMove", target, opts)
}

// TouchEnd dispatches a "touchend" event.
func (simulator) TouchEnd(target any, opts ...EventOpts) error {
	return simulate("TouchEnd", target, opts)
}

// TouchCancel dispatches a "touchcancel" event.
func (simulator) TouchCancel(target any, opts ...EventOpts) error {
	return simulate("TouchCancel", target, opts)
}

// Pointer events

// PointerDown dispatches a "pointerdown" event.
func (simulator) PointerDown(target any, opts ...EventOpts) error {
	return simulate("PointerDown", target, opts)
}

// PointerUp dispatches a "pointerup" event.
func (simulator) PointerUp(target any, opts ...EventOpts) error {
	return simulate("PointerUp", target, opts)
}

// PointerMove dispatches a "pointermove" event.
func (simulator) PointerMove(target any, opts ...EventOpts) error {
	return simulate("PointerMove", target, opts)
}

// PointerOver dispatches a "pointerover" event.
func (simulator) PointerOver(target any, opts ...EventOpts) error {
	return simulate("PointerOver", target, opts)
}

// PointerOut dispatches a "pointerout" event.
func (simulator) PointerOut(target any, opts ...EventOpts) error {
	return simulate("PointerOut", target, opts)
}

// PointerEnter dispatches a non-bubbling "pointerenter" event.
func (simulator) PointerEnter(target any, opts ...EventOpts) error {
	return simulate("PointerEnter", target, opts)
}

// PointerLeave dispatches a non-bubbling "pointerleave" event.
func (simulator) PointerLeave(target any, opts ...EventOpts) error {
	return simulate("PointerLeave", target, opts)
}

// PointerCancel dispatches a "pointercancel" event.
func (simulator) PointerCancel(target any, opts ...EventOpts) error {
	return simulate("PointerCancel", target, opts)
}

// Animation events

// AnimationStart dispatches an "animationstart" event.
func (simulator) AnimationStart(target any, opts ...EventOpts) error {
	return simulate("AnimationStart", target, opts)
}

// AnimationEnd dispatches an "animationend" event.
func (simulator) AnimationEnd(target any, opts ...EventOpts) error {
	return simulate("AnimationEnd", target, opts)
}

// AnimationIteration dispatches an "animationiteration" event.
func (simulator) AnimationIteration(target any, opts ...EventOpts) error {
	return simulate("AnimationIteration", target, opts)
}

// Transition events

// TransitionStart dispatches a "transitionstart" event.
func (simulator) TransitionStart(target any, opts ...EventOpts) error {
	return simulate("TransitionStart", target, opts)
}

// TransitionEnd dispatches a "transitionend" event.
func (simulator) TransitionEnd(target any, opts ...EventOpts) error {
	return simulate("TransitionEnd", target, opts)
}

// TransitionRun dispatches a "transitionrun" event.
func (simulator) TransitionRun(target any, opts ...EventOpts) error {
	return simulate("TransitionRun", target, opts)
}

// TransitionCancel dispatches a "transitioncancel" event.
func (simulator) TransitionCancel(target any, opts ...EventOpts) error {
	return simulate("TransitionCancel", target, opts)
}

// Clipboard events

// Copy dispatches a "copy" event.
func (simulator) Copy(target any, opts ...EventOpts) error {
	return simulate("Copy", target, opts)
}

// Cut dispatches a "cut" event.
func (simulator) Cut(target any, opts ...EventOpts) error {
	return simulate("Cut", target, opts)
}

// Paste dispatches a "paste" event.
func (simulator) Paste(target any, opts ...EventOpts) error {
	return simulate("Paste", target, opts)
}

// Composition events

// CompositionStart dispatches a "compositionstart" event.
func (simulator) CompositionStart(target any, opts ...EventOpts) error {
	return simulate("CompositionStart", target, opts)
}

// CompositionUpdate dispatches a "compositionupdate" event.
func (simulator) CompositionUpdate(target any, opts ...EventOpts) error {
	return simulate("CompositionUpdate", target, opts)
}

// CompositionEnd dispatches a "compositionend" event.
func (simulator) CompositionEnd(target any, opts ...EventOpts) error {
	return simulate("CompositionEnd", target, opts)
}

// Drag events

// Drag dispatches a "drag" event.
func (simulator) Drag(target any, opts ...EventOpts) error {
	return simulate("Drag", target, opts)
}

// DragStart dispatches a "dragstart" event.
func (simulator) DragStart(target any, opts ...EventOpts) error {
	return simulate("DragStart", target, opts)
}

// DragEnd dispatches a "dragend" event.
func (simulator) DragEnd(target any, opts ...EventOpts) error {
	return simulate("DragEnd", target, opts)
}

// DragEnter dispatches a "dragenter" event.
func (simulator) DragEnter(target any, opts ...EventOpts) error {
	return simulate("DragEnter", target, opts)
}

// DragLeave dispatches a "dragleave" event.
func (simulator) DragLeave(target any, opts ...EventOpts) error {
	return simulate("DragLeave", target, opts)
}

// DragOver dispatches a "dragover" event.
func (simulator) DragOver(target any, opts ...EventOpts) error {
	return simulate("DragOver", target, opts)
}

// Drop dispatches a "drop" event.
func (simulator) Drop(target any, opts ...EventOpts) error {
	return simulate("Drop", target, opts)
}

// Media events

// Play dispatches a "play" event.
func (simulator) Play(target any, opts ...EventOpts) error {
	return simulate("Play", target, opts)
}

// Pause dispatches a "pause" event.
func (simulator) Pause(target any, opts ...EventOpts) error {
	return simulate("Pause", target, opts)
}

// Ended dispatches an "ended" event.
func (simulator) Ended(target any, opts ...EventOpts) error {
	return simulate("Ended", target, opts)
}

// TimeUpdate dispatches a "timeupdate" event.
func (simulator) TimeUpdate(target any, opts ...EventOpts) error {
	return simulate("TimeUpdate", target, opts)
}

// VolumeChange dispatches a "volumechange" event.
func (simulator) VolumeChange(target any, opts ...EventOpts) error {
	return simulate("VolumeChange", target, opts)
}

// Details events

// Toggle dispatches a "toggle" event (for details elements).
func (simulator) Toggle(target any, opts ...EventOpts) error {
	return simulate("Toggle", target, opts)
}
