package nav

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSettle is how long a replace-current retry waits for the dismiss
// transition to settle before re-presenting.
const DefaultSettle = 350 * time.Millisecond

// Registry owns every live coordinator. Parent links and handles store
// coordinator IDs, never pointers, and validate them against the registry on
// each read; destroying a coordinator therefore invalidates every reference
// to it without a sweep.
type Registry struct {
	coords map[uuid.UUID]*Coordinator

	// Settle is the delay before a replace-current presentation retries.
	Settle time.Duration

	// OnNavigate, when set, is invoked fire-and-forget after every path or
	// modal mutation. The app uses it to drop text-input focus.
	OnNavigate func()
}

func NewRegistry() *Registry {
	return &Registry{
		coords: map[uuid.UUID]*Coordinator{},
		Settle: DefaultSettle,
	}
}

// NewCoordinator creates and registers a coordinator. Its state exists from
// construction and lives until Destroy.
func (r *Registry) NewCoordinator(name string) *Coordinator {
	c := &Coordinator{
		id:   uuid.New(),
		name: name,
		reg:  r,
	}
	c.state = &state{coord: c}
	r.coords[c.id] = c
	return c
}

// Destroy removes c from the liveness set. Anything still presented by c is
// destroyed with it; weak references to c (parent links, handles, pending
// retries) observe the absence on their next read.
func (r *Registry) Destroy(c *Coordinator) {
	if c == nil {
		return
	}
	if _, ok := r.coords[c.id]; !ok {
		return
	}
	delete(r.coords, c.id)
	// The presenter's slot must not keep pointing at a dead node, or the
	// presentation chain walks onto it.
	if parent, ok := r.lookup(c.state.presentedBy); ok {
		if p := parent.state.presented; p != nil && p.Child == c {
			parent.clearPresented()
		}
	}
	if p := c.state.presented; p != nil {
		c.state.presented = nil
		r.Destroy(p.Child)
	}
}

// Live reports whether c is still registered.
func (r *Registry) Live(c *Coordinator) bool {
	if c == nil {
		return false
	}
	_, ok := r.coords[c.id]
	return ok
}

func (r *Registry) lookup(id uuid.UUID) (*Coordinator, bool) {
	if id == uuid.Nil {
		return nil, false
	}
	c, ok := r.coords[id]
	return c, ok
}

func (r *Registry) navigated() {
	if r.OnNavigate != nil {
		r.OnNavigate()
	}
}
