package nav

import tea "github.com/charmbracelet/bubbletea"

// Alert is a transient confirmation dialog. Message and Actions are deferred
// so they capture live state when the view finally draws the alert.
type Alert struct {
	Title   string
	Message func() string
	Actions func() []AlertAction
}

// AlertAction is one button on an alert.
type AlertAction struct {
	Label string
	Do    func() tea.Msg
}

// Alert queues a dialog. Insertion is append-only; display and dismissal act
// on the tail, so the newest alert shows first.
func (c *Coordinator) Alert(title string, message func() string, actions func() []AlertAction) {
	c.state.alerts = append(c.state.alerts, Alert{Title: title, Message: message, Actions: actions})
	c.state.emit()
}

// DismissAlert removes the alert currently showing, which is always the
// tail. Nothing showing, nothing done.
func (c *Coordinator) DismissAlert() {
	if len(c.state.alerts) == 0 {
		return
	}
	c.state.alerts = c.state.alerts[:len(c.state.alerts)-1]
	c.state.emit()
}

// Alerts returns the queue in insertion order.
func (c *Coordinator) Alerts() []Alert {
	return c.state.alerts
}

// CurrentAlert returns the alert the view should display.
func (c *Coordinator) CurrentAlert() (Alert, bool) {
	if len(c.state.alerts) == 0 {
		return Alert{}, false
	}
	return c.state.alerts[len(c.state.alerts)-1], true
}
