package pointer

import (
	"math"
	"testing"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/physics"
	"github.com/lixenwraith/archive/vmath"
)

func chainOf(leaf *layout.Element) []*layout.Element { return leaf.Chain() }

func TestClassifyPriority(t *testing.T) {
	root := layout.NewElement("root", vmath.R(0, 0, 100, 100))
	card := root.Add(layout.NewElement("card", vmath.R(0, 0, 50, 50), constants.TagMagnetic))
	card.Label = "VIEW"
	btn := card.Add(layout.NewElement("btn", vmath.R(0, 0, 10, 10), constants.TagButton))
	link := root.Add(layout.NewElement("link", vmath.R(60, 60, 10, 10), constants.TagLink))
	plain := root.Add(layout.NewElement("plain", vmath.R(80, 80, 10, 10)))

	tests := []struct {
		name  string
		chain []*layout.Element
		want  Classification
	}{
		{"magnetic beats button", chainOf(btn), Classification{KindMagnetic, "VIEW"}},
		{"magnetic itself", chainOf(card), Classification{KindMagnetic, "VIEW"}},
		{"link", chainOf(link), Classification{Kind: KindInteractive}},
		{"plain", chainOf(plain), Classification{}},
		{"nothing", nil, Classification{}},
	}
	for _, tt := range tests {
		if got := Classify(tt.chain); got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestClassifyLabelFallback(t *testing.T) {
	mag := layout.NewElement("mag", vmath.R(0, 0, 10, 10), constants.TagMagnetic)
	if got := Classify(mag.Chain()); got.Label != constants.MagneticDefaultLabel {
		t.Errorf("Expected default label, got %q", got.Label)
	}

	leaf := mag.Add(layout.NewElement("img", vmath.R(0, 0, 1, 1)).WithLabel("EXPLORE"))
	if got := Classify(leaf.Chain()); got.Label != "EXPLORE" {
		t.Errorf("Expected leaf label to win, got %q", got.Label)
	}
}

func TestTierSize(t *testing.T) {
	if TierSize(Classification{}) != 32 ||
		TierSize(Classification{Kind: KindInteractive}) != 60 ||
		TierSize(Classification{Kind: KindMagnetic, Label: "OPEN"}) != 100 {
		t.Error("Unexpected tier sizes")
	}
}

// TestFollowerStrictSmoothing verifies the follower lags the pointer then converges
func TestFollowerStrictSmoothing(t *testing.T) {
	sched := engine.NewFrameScheduler(constants.FrameInterval)
	f := NewFollower(sched, physics.PointerSpring)

	path := []vmath.Vec2{{X: 10, Y: 10}, {X: 40, Y: 25}, {X: 90, Y: 60}, {X: 140, Y: 80}, {X: 200, Y: 120}}
	for _, p := range path {
		f.OnMove(p)
		sched.Step()
		if f.Position() == p {
			t.Fatalf("Follower equals raw position %v on the same tick", p)
		}
	}

	last := path[len(path)-1]
	for i := 0; i < 600 && sched.IsActive(f); i++ {
		sched.Step()
	}
	if sched.IsActive(f) {
		t.Fatal("Follower never settled")
	}
	if d := f.Position().Dist(last); d > constants.SpringEpsilon {
		t.Errorf("Expected convergence within epsilon, distance %v", d)
	}
}

// TestFollowerSizeTween verifies size animates to the tier with overshoot
func TestFollowerSizeTween(t *testing.T) {
	sched := engine.NewFrameScheduler(constants.FrameInterval)
	f := NewFollower(sched, physics.PointerSpring)

	f.OnOver(Classification{Kind: KindMagnetic, Label: "OPEN"})
	peak := 0.0
	for i := 0; i < 60; i++ {
		sched.Step()
		peak = math.Max(peak, f.State().Size)
	}
	if got := f.State().Size; got != constants.FollowerSizeMagnetic {
		t.Errorf("Expected final size 100, got %v", got)
	}
	if peak <= constants.FollowerSizeMagnetic {
		t.Errorf("Expected backOut overshoot, peak %v", peak)
	}
	if !f.Settled() || sched.IsActive(f) {
		t.Error("Expected follower idle after tween")
	}
}

// TestFollowerBusWiring verifies subscriptions and their release
func TestFollowerBusWiring(t *testing.T) {
	bus := events.NewBus()
	sched := engine.NewFrameScheduler(constants.FrameInterval)
	scope := engine.NewScope()
	f := NewFollower(sched, physics.PointerSpring)
	f.Attach(bus, scope)

	btn := layout.NewElement("btn", vmath.R(0, 0, 10, 10), constants.TagButton)
	bus.Publish(events.EventPointerMove, &events.PointerPayload{Pos: vmath.V2(5, 5)})
	bus.Publish(events.EventPointerOver, &events.OverPayload{Chain: btn.Chain()})
	bus.Publish(events.EventPointerDown, &events.PointerPayload{})
	bus.Dispatch()

	st := f.State()
	if !st.Visible || !st.Pressed || st.Class.Kind != KindInteractive {
		t.Errorf("Unexpected state after events: %+v", st)
	}
	if f.Raw() != vmath.V2(5, 5) {
		t.Errorf("Expected raw (5,5), got %v", f.Raw())
	}

	scope.Close()
	if bus.HandlerCount(events.EventPointerMove) != 0 || sched.IsActive(f) {
		t.Error("Expected subscriptions and animator released")
	}
}
