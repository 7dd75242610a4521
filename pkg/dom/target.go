package dom

// Listener is an event listener callback.
type Listener func(*Event)

// ListenerHandle identifies a registered listener so it can be removed.
// Function values are not comparable in Go, so registration returns a
// handle instead of matching on the function itself.
type ListenerHandle struct {
	id      uint64
	event   string
	capture bool
	fn      Listener
}

// AddEventListener registers fn for the given native event type. Capture
// listeners run during the capture phase; others during target and bubble
// phases. Listeners on a node run in registration order.
func (n *Node) AddEventListener(eventType string, fn Listener, capture bool) *ListenerHandle {
	if fn == nil {
		return nil
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]*ListenerHandle)
	}
	n.nextLID++
	h := &ListenerHandle{id: n.nextLID, event: eventType, capture: capture, fn: fn}
	n.listeners[eventType] = append(n.listeners[eventType], h)
	return h
}

// RemoveEventListener unregisters a listener by its handle. It is a no-op
// for nil or already-removed handles.
func (n *Node) RemoveEventListener(h *ListenerHandle) {
	if h == nil {
		return
	}
	ls := n.listeners[h.event]
	for i, entry := range ls {
		if entry.id == h.id {
			n.listeners[h.event] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// DispatchEvent dispatches e on this node through the standard event path:
// capture phase from the root down, target phase, then the bubble phase
// back up if the event bubbles. All listeners run synchronously before
// DispatchEvent returns. The return value is false if a listener called
// PreventDefault on a cancelable event.
func (n *Node) DispatchEvent(e *Event) bool {
	e.Target = n

	// Ancestors from root to the target's parent.
	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	e.Phase = PhaseCapture
	for _, a := range path {
		a.invokeListeners(e, phaseCapture)
		if e.propagationStopped {
			return e.finish()
		}
	}

	e.Phase = PhaseAtTarget
	n.invokeListeners(e, phaseBoth)
	if e.propagationStopped || !e.Bubbles {
		return e.finish()
	}

	e.Phase = PhaseBubble
	for i := len(path) - 1; i >= 0; i-- {
		path[i].invokeListeners(e, phaseBubble)
		if e.propagationStopped {
			return e.finish()
		}
	}

	return e.finish()
}

// listener phase selectors for invokeListeners.
const (
	phaseCapture = iota
	phaseBubble
	phaseBoth
)

// invokeListeners runs the node's listeners for e.Type matching the phase
// selector. The slice is copied first so listeners may add or remove
// listeners during dispatch without affecting the current pass.
func (n *Node) invokeListeners(e *Event, selector int) {
	registered := n.listeners[e.Type]
	if len(registered) == 0 {
		return
	}
	snapshot := make([]*ListenerHandle, len(registered))
	copy(snapshot, registered)

	e.CurrentTarget = n
	for _, h := range snapshot {
		if selector == phaseCapture && !h.capture {
			continue
		}
		if selector == phaseBubble && h.capture {
			continue
		}
		h.fn(e)
		if e.immediateStopped {
			return
		}
	}
}

// finish resets transient dispatch state and reports the dispatch result.
func (e *Event) finish() bool {
	e.CurrentTarget = nil
	e.Phase = PhaseNone
	return !e.defaultPrevented
}
