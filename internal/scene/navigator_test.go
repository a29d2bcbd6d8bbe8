package scene

import (
	"math"
	"testing"
	"time"
)

func testObjects() []*Object {
	return []*Object{
		{ID: "a", Position: Vec3{}, BaseScale: 2},
		{ID: "b", Position: Vec3{X: 40}, BaseScale: 1.5},
		{ID: "c", Position: Vec3{X: -40}, BaseScale: 1},
	}
}

func TestFocus_Wraps(t *testing.T) {
	n := NewNavigator(&Camera{}, testObjects())

	if n.Focused().ID != "a" {
		t.Fatalf("initial focus = %s, want a", n.Focused().ID)
	}
	n.Next()
	n.Next()
	n.Next()
	if n.Focused().ID != "a" {
		t.Errorf("three Next on three objects should wrap to a, got %s", n.Focused().ID)
	}
	n.Prev()
	if n.Focused().ID != "c" {
		t.Errorf("Prev from a should wrap to c, got %s", n.Focused().ID)
	}
}

func TestFocus_IgnoredDuringTransition(t *testing.T) {
	cam := &Camera{}
	n := NewNavigator(cam, testObjects())

	cam.StartTransition(n.Focused(), time.Now(), nil)
	n.Next()
	if n.Focused().ID != "a" {
		t.Error("Next should be ignored while the camera is in flight")
	}
	n.Prev()
	if n.Focused().ID != "a" {
		t.Error("Prev should be ignored while the camera is in flight")
	}
}

func TestStep_ScaleEmphasis(t *testing.T) {
	n := NewNavigator(&Camera{}, testObjects())

	for i := 0; i < 500; i++ {
		n.Step()
	}

	focused := n.Focused()
	if math.Abs(focused.Scale-focused.BaseScale*1.7) > 1e-6 {
		t.Errorf("focused scale = %v, want ~%v", focused.Scale, focused.BaseScale*1.7)
	}
	other := n.Objects[1]
	if math.Abs(other.Scale-other.BaseScale) > 1e-6 {
		t.Errorf("unfocused scale = %v, want ~%v", other.Scale, other.BaseScale)
	}
}

func TestStep_ScaleRelaxesAfterFocusMoves(t *testing.T) {
	n := NewNavigator(&Camera{}, testObjects())
	for i := 0; i < 500; i++ {
		n.Step()
	}
	prev := n.Focused()

	n.Next()
	for i := 0; i < 500; i++ {
		n.Step()
	}
	if math.Abs(prev.Scale-prev.BaseScale) > 1e-6 {
		t.Errorf("previous focus scale = %v, want ~%v", prev.Scale, prev.BaseScale)
	}
}

func TestStep_CameraConvergesOnFocused(t *testing.T) {
	cam := &Camera{Position: Vec3{Z: 200}}
	n := NewNavigator(cam, testObjects())
	n.Next() // focus "b" at (40,0,0)

	for i := 0; i < 2000; i++ {
		n.Step()
	}

	b := n.Objects[1]
	r := b.EffectiveRadius()
	want := b.Position.Add(Vec3{0, r * 1.2, r*5 + 6})
	if cam.Position.Dist(want) > 1e-3 {
		t.Errorf("camera = %+v, want near %+v", cam.Position, want)
	}
	if cam.LookAt.Dist(b.Position) > 1e-3 {
		t.Errorf("look-at = %+v, want near %+v", cam.LookAt, b.Position)
	}
}

func TestStep_NarrowViewportBacksOff(t *testing.T) {
	camWide := &Camera{}
	wide := NewNavigator(camWide, testObjects())
	camNarrow := &Camera{}
	narrow := NewNavigator(camNarrow, testObjects())
	narrow.NarrowViewport = true

	for i := 0; i < 2000; i++ {
		wide.Step()
		narrow.Step()
	}

	if camNarrow.Position.Z <= camWide.Position.Z {
		t.Errorf("narrow viewport should settle further back: narrow Z=%v wide Z=%v",
			camNarrow.Position.Z, camWide.Position.Z)
	}
}

func TestStep_SuspendedDuringTransition(t *testing.T) {
	cam := &Camera{Position: Vec3{Z: 100}}
	n := NewNavigator(cam, testObjects())

	cam.StartTransition(n.Focused(), time.Now(), nil)
	before := cam.Position
	rotBefore := n.Objects[0].Rotation

	n.Step()

	if cam.Position != before {
		t.Error("idle follow must not move the camera during a transition")
	}
	if n.Objects[0].Rotation == rotBefore {
		t.Error("objects keep rotating during a transition")
	}
}

func TestStep_RotationAdvances(t *testing.T) {
	n := NewNavigator(&Camera{}, testObjects())
	n.Step()
	n.Step()
	if math.Abs(n.Objects[2].Rotation-0.004) > 1e-12 {
		t.Errorf("rotation = %v after two steps, want 0.004", n.Objects[2].Rotation)
	}
}

func TestFocused_EmptyScene(t *testing.T) {
	n := NewNavigator(&Camera{}, nil)
	if n.Focused() != nil {
		t.Error("empty scene should have no focused object")
	}
	n.Next() // must not panic
	n.Prev()
	n.Step()
}
