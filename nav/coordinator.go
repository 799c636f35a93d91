package nav

import "github.com/google/uuid"

// Coordinator is one node in the navigation tree. It exclusively owns one
// navigation state; modally presented coordinators carry a weak link back to
// their presenter. Two coordinators are the same iff they are the same
// registered instance.
type Coordinator struct {
	id     uuid.UUID
	name   string
	reg    *Registry
	state  *state
	handle *Handle

	// placeholder marks a coordinator synthesised for a leaf modal flow.
	// Its lifetime is bound to the presentation that created it.
	placeholder bool
}

// ID returns the coordinator's registry identity.
func (c *Coordinator) ID() uuid.UUID {
	return c.id
}

// Name returns the label given at construction. Placeholder coordinators
// synthesised for leaf modal flows are named after the flow.
func (c *Coordinator) Name() string {
	return c.name
}

// Parent returns the coordinator that presented this one modally. The link
// is weak: a destroyed or never-set presenter reads as absent.
func (c *Coordinator) Parent() (*Coordinator, bool) {
	return c.reg.lookup(c.state.presentedBy)
}
