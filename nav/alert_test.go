package nav

import "testing"

func TestAlertsDismissFromTail(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.Alert("A", func() string { return "first" }, nil)
	c.Alert("B", func() string { return "second" }, nil)

	cur, ok := c.CurrentAlert()
	if !ok || cur.Title != "B" {
		t.Fatalf("newest alert should show first")
	}
	c.DismissAlert()
	cur, ok = c.CurrentAlert()
	if !ok || cur.Title != "A" {
		t.Fatalf("after one dismissal only A should remain")
	}
	if len(c.Alerts()) != 1 {
		t.Fatalf("queue length = %d, want 1", len(c.Alerts()))
	}
}

func TestDismissAlertOnEmptyQueue(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.DismissAlert()
	if _, ok := c.CurrentAlert(); ok {
		t.Fatalf("empty queue should show nothing")
	}
}

func TestAlertDoesNotTouchInputFocus(t *testing.T) {
	reg := NewRegistry()
	released := 0
	reg.OnNavigate = func() { released++ }
	c := reg.NewCoordinator("shop")
	notified := 0
	c.Subscribe(func() { notified++ })
	c.Alert("A", func() string { return "" }, nil)
	if notified != 1 {
		t.Fatalf("alert should notify subscribers")
	}
	if released != 0 {
		t.Fatalf("alerts should not release input focus")
	}
}

func TestAlertMessageIsDeferred(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	count := 0
	c.Alert("Cart", func() string { count++; return "n items" }, nil)
	if count != 0 {
		t.Fatalf("message should not be evaluated at queue time")
	}
	cur, _ := c.CurrentAlert()
	if cur.Message() != "n items" {
		t.Fatalf("unexpected message")
	}
	if count != 1 {
		t.Fatalf("message should evaluate on display")
	}
}
