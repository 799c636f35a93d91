package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Style selects how the view layer composites a modal over its base.
type Style int

const (
	// StyleSheet is a partial-screen card anchored to the bottom edge.
	StyleSheet Style = iota
	// StyleCover replaces the whole screen.
	StyleCover
	// StyleOverlay is a centered popup managed by the coordinator itself.
	StyleOverlay
)

// Policy resolves a present request that finds a modal already showing.
type Policy int

const (
	// OverAll stacks the new presentation over whatever is topmost.
	OverAll Policy = iota
	// ReplaceCurrent dismisses the current presentation, waits for the
	// transition to settle, then retries the same request.
	ReplaceCurrent
)

// Flow identifies a modal variant and its presentation style. Each concrete
// coordinator defines its own closed set of flows.
type Flow interface {
	FlowID() string
	Style() Style
}

// Presentation is the immutable value created when a flow is presented.
type Presentation struct {
	Flow Flow

	// Child owns the presented flow's navigation state. Leave nil for a leaf
	// modal screen; Present synthesises a placeholder so the presented
	// content still has a state of its own.
	Child *Coordinator

	// Content is the deferred content factory, evaluated by the view layer.
	Content func() string
}

// retryPresentMsg re-enters the resolver after a replace-current dismiss has
// settled. It names the coordinator by ID only, so a destroyed coordinator
// makes the retry a no-op.
type retryPresentMsg struct {
	coord  uuid.UUID
	pres   Presentation
	policy Policy
}

// Present shows a modal flow on this coordinator, resolving conflicts with
// policy. The returned command is nil except on the replace-current retry
// path and must be handed to the runtime.
func (c *Coordinator) Present(p Presentation, policy Policy) tea.Cmd {
	if p.Child == nil {
		p.Child = c.reg.NewCoordinator(p.Flow.FlowID())
		p.Child.placeholder = true
	}
	return c.resolve(p, policy)
}

func (c *Coordinator) resolve(p Presentation, policy Policy) tea.Cmd {
	cur := c.state.presented
	if cur == nil {
		c.state.presented = &p
		p.Child.state.presentedBy = c.id
		c.state.changed()
		return nil
	}
	switch policy {
	case OverAll:
		// Bubble to the first idle coordinator in the presentation chain.
		return cur.Child.resolve(p, OverAll)
	case ReplaceCurrent:
		c.clearPresented()
		id := c.id
		return tea.Tick(c.reg.Settle, func(time.Time) tea.Msg {
			return retryPresentMsg{coord: id, pres: p, policy: ReplaceCurrent}
		})
	}
	return nil
}

// Dismiss asks the coordinator that presented this one to clear its modal.
// A root, or a coordinator that was never presented, does nothing.
func (c *Coordinator) Dismiss() {
	if parent, ok := c.Parent(); ok {
		parent.DismissPresented()
	}
}

// DismissPresented clears whatever this coordinator is currently presenting.
// Idempotent: with no modal showing it neither mutates nor notifies.
func (c *Coordinator) DismissPresented() {
	if c.state.presented == nil {
		return
	}
	c.clearPresented()
}

func (c *Coordinator) clearPresented() {
	p := c.state.presented
	c.state.presented = nil
	if p.Child != nil && c.reg.Live(p.Child) {
		p.Child.state.presentedBy = uuid.Nil
		if p.Child.placeholder {
			c.reg.Destroy(p.Child)
		}
	}
	c.state.changed()
}

// Presented returns the active modal presentation, or nil when idle.
func (c *Coordinator) Presented() *Presentation {
	return c.state.presented
}

// Route handles the navigation core's own messages. It reports whether msg
// was consumed.
func (r *Registry) Route(msg tea.Msg) (tea.Cmd, bool) {
	m, ok := msg.(retryPresentMsg)
	if !ok {
		return nil, false
	}
	c, ok := r.lookup(m.coord)
	if !ok {
		// Destroyed before the retry fired. Reclaim the child that was
		// synthesised for the pending presentation.
		if m.pres.Child != nil && m.pres.Child.placeholder {
			r.Destroy(m.pres.Child)
		}
		return nil, true
	}
	return c.resolve(m.pres, m.policy), true
}
