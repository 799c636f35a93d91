package nav

import "github.com/google/uuid"

// Handle is a weak observer proxy over one coordinator. Descendant content
// holds a handle instead of the coordinator itself, so a long-lived ancestor
// and transient content never form an ownership cycle. The handle re-emits
// the coordinator's change signal to its own subscribers.
type Handle struct {
	reg  *Registry
	id   uuid.UUID
	name string
	subs []func()
}

// Handle returns the coordinator's handle, created on first use and memoized
// for the coordinator's lifetime.
func (c *Coordinator) Handle() *Handle {
	if c.handle == nil {
		h := &Handle{reg: c.reg, id: c.id, name: c.name}
		c.Subscribe(h.emit)
		c.handle = h
	}
	return c.handle
}

// Live reports whether the target coordinator still exists. Checking costs
// nothing and never faults.
func (h *Handle) Live() bool {
	_, ok := h.reg.lookup(h.id)
	return ok
}

// Get returns the target coordinator. Calling it after the coordinator was
// destroyed is a programming error and panics; a handle held past its scope
// should fail loudly, not silently drop operations.
func (h *Handle) Get() *Coordinator {
	c, ok := h.reg.lookup(h.id)
	if !ok {
		panic("nav: handle dereferenced after coordinator " + h.name + " was destroyed")
	}
	return c
}

// Subscribe registers fn to run whenever the target coordinator's state
// changes.
func (h *Handle) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	h.subs = append(h.subs, fn)
}

func (h *Handle) emit() {
	for _, fn := range h.subs {
		fn()
	}
}
