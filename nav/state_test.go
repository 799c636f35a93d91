package nav

import "testing"

type shopScreen int

const (
	screenHome shopScreen = iota
	screenCategory
	screenProduct
)

func TestPushPopReplayStackSemantics(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.Push(screenHome)
	c.Push(screenCategory)
	c.Push(screenProduct)
	c.Pop()
	c.Push(screenProduct)
	if got := len(c.Path()); got != 3 {
		t.Fatalf("path length = %d, want 3", got)
	}
	if c.Top() != screenProduct {
		t.Fatalf("top = %v, want product", c.Top())
	}
}

func TestPopOnEmptyPathIsNoOp(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	notified := 0
	c.Subscribe(func() { notified++ })
	c.Pop()
	if len(c.Path()) != 0 {
		t.Fatalf("path should stay empty")
	}
	if notified != 0 {
		t.Fatalf("no-op pop should not notify, got %d", notified)
	}
}

func TestPopToRootClearsPath(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.Push(screenHome)
	c.Push(screenCategory)
	c.PopToRoot()
	if len(c.Path()) != 0 {
		t.Fatalf("path = %v, want empty", c.Path())
	}
}

func TestPopToTruncatesAfterFirstMatchFromRoot(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.Push(screenCategory)
	c.Push(screenProduct)
	c.Push(screenCategory)
	c.Push(screenProduct)
	if !c.PopTo(screenCategory) {
		t.Fatalf("expected match for category")
	}
	if got := len(c.Path()); got != 1 {
		t.Fatalf("path length = %d, want 1", got)
	}
	if c.Top() != screenCategory {
		t.Fatalf("top = %v, want category", c.Top())
	}
}

func TestPopToMissReturnsFalseAndKeepsPath(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	c.Push(screenHome)
	if c.PopTo(screenProduct) {
		t.Fatalf("expected no match")
	}
	if len(c.Path()) != 1 {
		t.Fatalf("path should be untouched")
	}
}

func TestMutationsNotifySubscribers(t *testing.T) {
	reg := NewRegistry()
	c := reg.NewCoordinator("shop")
	notified := 0
	c.Subscribe(func() { notified++ })
	c.Push(screenHome)
	c.Push(screenCategory)
	c.Pop()
	c.PopToRoot()
	if notified != 4 {
		t.Fatalf("notifications = %d, want 4", notified)
	}
}

func TestOnNavigateFiresOnPathChange(t *testing.T) {
	reg := NewRegistry()
	released := 0
	reg.OnNavigate = func() { released++ }
	c := reg.NewCoordinator("shop")
	c.Push(screenHome)
	c.Pop()
	if released != 2 {
		t.Fatalf("focus hook calls = %d, want 2", released)
	}
}
