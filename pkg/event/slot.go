// Package event provides the single-callback registry that every widget
// uses to expose semantic events to the host.
package event

// Slot holds at most one handler for one semantic event.
//
// Set replaces any previously registered handler; there is no fan-out and
// no unregister operation. Invoking an empty slot is a no-op. The zero
// value is an empty slot ready to use.
type Slot[E any] struct {
	handler func(E)
}

// Set registers h, replacing the current handler. Passing nil empties the slot.
func (s *Slot[E]) Set(h func(E)) {
	s.handler = h
}

// Invoke calls the current handler synchronously with ev.
// The handler is read once, so a handler that calls Set on its own slot
// affects the next invocation, not this one.
func (s *Slot[E]) Invoke(ev E) {
	if h := s.handler; h != nil {
		h(ev)
	}
}

// IsSet reports whether a handler is registered.
func (s *Slot[E]) IsSet() bool {
	return s.handler != nil
}
