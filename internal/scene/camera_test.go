package scene

import (
	"math"
	"testing"
	"time"
)

func TestStartTransition_RejectsSecond(t *testing.T) {
	cam := &Camera{}
	obj := &Object{Position: Vec3{X: 10}, Scale: 2}
	now := time.Now()

	if err := cam.StartTransition(obj, now, nil); err != nil {
		t.Fatal(err)
	}
	if !cam.Transitioning() {
		t.Fatal("camera should be transitioning")
	}
	if err := cam.StartTransition(obj, now, nil); err != ErrTransitionActive {
		t.Errorf("second start: err = %v, want ErrTransitionActive", err)
	}
}

func TestStep_EndsExactlyAtTarget(t *testing.T) {
	cam := &Camera{Position: Vec3{Z: 10}}
	obj := &Object{Position: Vec3{}, Scale: 2}
	now := time.Now()

	done := false
	if err := cam.StartTransition(obj, now, func() { done = true }); err != nil {
		t.Fatal(err)
	}

	// Step past the end: position must land exactly at radius+margin on
	// the view axis with no residual arc offset.
	cam.Step(now.Add(2 * time.Second))

	want := Vec3{Z: 4} // object radius 2 + margin 2
	if cam.Position != want {
		t.Errorf("end position = %+v, want %+v", cam.Position, want)
	}
	if cam.LookAt != obj.Position {
		t.Errorf("end look-at = %+v, want %+v", cam.LookAt, obj.Position)
	}
	if cam.Transitioning() {
		t.Error("transition should have cleared")
	}
	if !done {
		t.Error("completion callback did not run")
	}
}

func TestStep_CompletionRunsOnce(t *testing.T) {
	cam := &Camera{}
	obj := &Object{Scale: 1}
	now := time.Now()

	calls := 0
	cam.StartTransition(obj, now, func() { calls++ })

	end := now.Add(2 * time.Second)
	cam.Step(end)
	cam.Step(end.Add(time.Second)) // idle step, transition already gone

	if calls != 1 {
		t.Errorf("completion ran %d times, want 1", calls)
	}
}

func TestStep_MidFlightArc(t *testing.T) {
	cam := &Camera{}
	obj := &Object{Position: Vec3{X: 100}, Scale: 2}
	now := time.Now()
	cam.StartTransition(obj, now, nil)

	// At the halfway point the vertical arc peaks at +2.
	cam.Step(now.Add(750 * time.Millisecond))

	if math.Abs(cam.Position.Y-2) > 1e-9 {
		t.Errorf("mid-flight Y = %v, want 2", cam.Position.Y)
	}
	if math.Abs(cam.Position.X-50) > 1e-9 {
		t.Errorf("mid-flight X = %v, want 50 (eased halfway)", cam.Position.X)
	}
}

func TestCancelTransition_SkipsCallback(t *testing.T) {
	cam := &Camera{}
	obj := &Object{Scale: 1}
	now := time.Now()

	done := false
	cam.StartTransition(obj, now, func() { done = true })
	cam.CancelTransition()

	if cam.Transitioning() {
		t.Error("cancel should clear the transition")
	}
	cam.Step(now.Add(2 * time.Second))
	if done {
		t.Error("cancelled transition must not fire its callback")
	}

	// The camera is free again
	if err := cam.StartTransition(obj, now, nil); err != nil {
		t.Errorf("restart after cancel: %v", err)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{0.25, 4 * 0.25 * 0.25 * 0.25},
	}
	for _, tt := range tests {
		if got := easeInOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("easeInOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	// Symmetry around the midpoint
	if math.Abs(easeInOutCubic(0.3)+easeInOutCubic(0.7)-1) > 1e-12 {
		t.Error("easing should be symmetric about 0.5")
	}
}
