package nav

import (
	"testing"
	"time"
)

type testFlow struct {
	id    string
	style Style
}

func (f testFlow) FlowID() string { return f.id }
func (f testFlow) Style() Style   { return f.style }

func sheet(id string) testFlow { return testFlow{id: id, style: StyleSheet} }

func TestPresentOnIdleCoordinator(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	cmd := root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	if cmd != nil {
		t.Fatalf("idle present should not schedule a retry")
	}
	p := root.Presented()
	if p == nil || p.Flow.FlowID() != "cart" {
		t.Fatalf("expected cart presented")
	}
	parent, ok := p.Child.Parent()
	if !ok || parent != root {
		t.Fatalf("presented child should point back at root")
	}
}

func TestPresentSynthesisesPlaceholderChild(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	child := root.Presented().Child
	if child == nil || !reg.Live(child) {
		t.Fatalf("leaf flow should get a live placeholder coordinator")
	}
	if child.Name() != "cart" {
		t.Fatalf("placeholder named %q, want cart", child.Name())
	}
}

func TestOverAllStacksWithoutOverwriting(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	root.Present(Presentation{Flow: sheet("search")}, OverAll)
	if root.Presented().Flow.FlowID() != "cart" {
		t.Fatalf("root should still present cart")
	}
	nested := root.Presented().Child.Presented()
	if nested == nil || nested.Flow.FlowID() != "search" {
		t.Fatalf("search should nest under cart's coordinator")
	}
	// A third present bubbles past both presenting nodes.
	root.Present(Presentation{Flow: sheet("promo")}, OverAll)
	deep := nested.Child.Presented()
	if deep == nil || deep.Flow.FlowID() != "promo" {
		t.Fatalf("promo should land on the first idle coordinator")
	}
}

func TestReplaceCurrentRetriesAfterSettle(t *testing.T) {
	reg := NewRegistry()
	reg.Settle = time.Millisecond
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	old := root.Presented().Child

	cmd := root.Present(Presentation{Flow: sheet("checkout")}, ReplaceCurrent)
	if cmd == nil {
		t.Fatalf("replace on busy coordinator should schedule a retry")
	}
	if root.Presented() != nil {
		t.Fatalf("current modal should be dismissed before the retry")
	}
	if _, ok := old.Parent(); ok {
		t.Fatalf("dismissed child should no longer report a parent")
	}

	retryCmd, consumed := reg.Route(cmd())
	if !consumed {
		t.Fatalf("registry should consume its retry message")
	}
	if retryCmd != nil {
		t.Fatalf("retry against an idle coordinator should finish")
	}
	p := root.Presented()
	if p == nil || p.Flow.FlowID() != "checkout" {
		t.Fatalf("checkout should be presented after the settle delay")
	}
}

func TestRetryIsNoOpAfterCoordinatorDestroyed(t *testing.T) {
	reg := NewRegistry()
	reg.Settle = time.Millisecond
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	cmd := root.Present(Presentation{Flow: sheet("checkout")}, ReplaceCurrent)
	retry := cmd().(retryPresentMsg)

	reg.Destroy(root)
	retryCmd, consumed := reg.Route(retry)
	if !consumed {
		t.Fatalf("stale retry should still be consumed")
	}
	if retryCmd != nil {
		t.Fatalf("stale retry should do nothing")
	}
	if reg.Live(retry.pres.Child) {
		t.Fatalf("pending placeholder should be reclaimed with the stale retry")
	}
}

func TestDismissClearsPresenterModal(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	child := root.Presented().Child

	child.Dismiss()
	if root.Presented() != nil {
		t.Fatalf("dismiss should clear the presenter's modal")
	}
	if _, ok := child.Parent(); ok {
		t.Fatalf("child should report no parent after dismiss")
	}
}

func TestDismissOnRootIsNoOp(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Push(screenHome)
	root.Dismiss()
	if len(root.Path()) != 1 {
		t.Fatalf("dismiss on a root should change nothing")
	}
}

func TestDismissPresentedIdempotent(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	notified := 0
	root.Subscribe(func() { notified++ })
	root.DismissPresented()
	if notified != 0 {
		t.Fatalf("dismissing nothing should not notify")
	}
}

func TestPresentDismissScenario(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")

	root.Present(Presentation{Flow: sheet("m1")}, OverAll)
	if root.Presented().Flow.FlowID() != "m1" {
		t.Fatalf("m1 should be presented")
	}
	m1 := root.Presented().Child

	root.Present(Presentation{Flow: sheet("m2")}, OverAll)
	if m1.Presented().Flow.FlowID() != "m2" {
		t.Fatalf("m2 should nest under m1")
	}

	m1.Dismiss()
	if root.Presented() != nil {
		t.Fatalf("root should be idle after m1 dismisses")
	}
}

func TestDismissReclaimsPlaceholderChild(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	placeholder := root.Presented().Child
	root.DismissPresented()
	if reg.Live(placeholder) {
		t.Fatalf("synthesised child should die with its presentation")
	}

	// An externally owned child outlives the presentation.
	owned := reg.NewCoordinator("checkout")
	root.Present(Presentation{Flow: sheet("checkout"), Child: owned}, OverAll)
	root.DismissPresented()
	if !reg.Live(owned) {
		t.Fatalf("externally owned child must survive dismissal")
	}
}

func TestDestroyingPresentedChildClearsPresenterSlot(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	owned := reg.NewCoordinator("checkout")
	root.Present(Presentation{Flow: sheet("checkout"), Child: owned}, OverAll)

	reg.Destroy(owned)
	if root.Presented() != nil {
		t.Fatalf("destroying the presented child should clear the presenter's modal")
	}
}

func TestDestroyTearsDownPresentationChain(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewCoordinator("root")
	root.Present(Presentation{Flow: sheet("cart")}, OverAll)
	root.Present(Presentation{Flow: sheet("search")}, OverAll)
	cart := root.Presented().Child
	search := cart.Presented().Child

	reg.Destroy(root)
	if reg.Live(cart) || reg.Live(search) {
		t.Fatalf("destroying the root should destroy presented descendants")
	}
}
