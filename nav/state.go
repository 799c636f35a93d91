package nav

import "github.com/google/uuid"

// Screen identifies one entry in a coordinator's push stack. Each concrete
// coordinator defines its own closed set of screen values; they must be
// comparable so PopTo can match them.
type Screen any

// state is the single mutable record a coordinator owns: the screen path,
// the current modal presentation, the alert queue and the weak link back to
// whoever presented this coordinator.
type state struct {
	coord       *Coordinator
	path        []Screen
	presented   *Presentation
	alerts      []Alert
	presentedBy uuid.UUID
	subs        []func()
}

// changed notifies subscribers after a path or modal mutation and pings the
// platform hook.
func (s *state) changed() {
	s.emit()
	s.coord.reg.navigated()
}

// emit notifies subscribers only. Alert mutations use this directly: they
// re-render but do not touch input focus.
func (s *state) emit() {
	for _, fn := range s.subs {
		fn()
	}
}

// Push appends a screen to the path.
func (c *Coordinator) Push(s Screen) {
	c.state.path = append(c.state.path, s)
	c.state.changed()
}

// Pop removes the top screen. Popping an empty path is a no-op, not a fault.
func (c *Coordinator) Pop() {
	if len(c.state.path) == 0 {
		return
	}
	c.state.path = c.state.path[:len(c.state.path)-1]
	c.state.changed()
}

// PopToRoot clears the path.
func (c *Coordinator) PopToRoot() {
	if len(c.state.path) == 0 {
		return
	}
	c.state.path = c.state.path[:0]
	c.state.changed()
}

// PopToFunc truncates the path after the first screen, scanning from the
// root, for which match returns true. It reports whether any screen matched.
func (c *Coordinator) PopToFunc(match func(Screen) bool) bool {
	for i, s := range c.state.path {
		if !match(s) {
			continue
		}
		if i+1 < len(c.state.path) {
			c.state.path = c.state.path[:i+1]
			c.state.changed()
		}
		return true
	}
	return false
}

// PopTo is PopToFunc specialised to equality.
func (c *Coordinator) PopTo(s Screen) bool {
	return c.PopToFunc(func(v Screen) bool { return v == s })
}

// Path returns the current screen stack, root first.
func (c *Coordinator) Path() []Screen {
	return c.state.path
}

// Top returns the top screen, or nil for an empty path.
func (c *Coordinator) Top() Screen {
	if len(c.state.path) == 0 {
		return nil
	}
	return c.state.path[len(c.state.path)-1]
}

// Subscribe registers fn to run after every state mutation. Subscriptions
// last for the coordinator's lifetime.
func (c *Coordinator) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	c.state.subs = append(c.state.subs, fn)
}
