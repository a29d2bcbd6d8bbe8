package scene

import (
	"errors"
	"math"
	"time"
)

// ErrTransitionActive is returned when a transition is requested while one
// is already running. Callers ignore the request rather than queue it.
var ErrTransitionActive = errors.New("camera transition in progress")

const (
	transitionDuration = 1500 * time.Millisecond

	// Gap between the camera and the focused object's surface at the end
	// of a transition.
	approachMargin = 2.0
)

// Camera holds the current viewpoint. While a transition is active the
// navigator's idle-follow is suspended; the transition owns both fields.
type Camera struct {
	Position Vec3
	LookAt   Vec3

	tr *transition
}

type transition struct {
	start        time.Time
	fromPosition Vec3
	fromLookAt   Vec3
	toPosition   Vec3
	toLookAt     Vec3
	onComplete   func()
}

// Transitioning reports whether a transition currently owns the camera.
func (c *Camera) Transitioning() bool {
	return c.tr != nil
}

// StartTransition begins a timed move toward obj: the look-at ends at the
// object's position, the camera ends offset along the view axis by the
// object's effective radius plus a margin. Exactly one transition may run
// at a time; a second request is rejected with ErrTransitionActive.
func (c *Camera) StartTransition(obj *Object, now time.Time, onComplete func()) error {
	if c.tr != nil {
		return ErrTransitionActive
	}
	end := obj.Position
	c.tr = &transition{
		start:        now,
		fromPosition: c.Position,
		fromLookAt:   c.LookAt,
		toPosition:   end.Add(Vec3{0, 0, obj.EffectiveRadius() + approachMargin}),
		toLookAt:     end,
		onComplete:   onComplete,
	}
	return nil
}

// CancelTransition aborts an active transition without invoking its
// completion callback. The camera stays wherever the last Step left it.
func (c *Camera) CancelTransition() {
	c.tr = nil
}

// Step advances an active transition to the given time. On completion the
// camera snaps exactly to the end values, the active flag clears, and the
// completion callback runs once.
func (c *Camera) Step(now time.Time) {
	t := c.tr
	if t == nil {
		return
	}

	p := float64(now.Sub(t.start)) / float64(transitionDuration)
	if p > 1 {
		p = 1
	}
	e := easeInOutCubic(p)

	pos := Lerp(t.fromPosition, t.toPosition, e)
	pos.Y += math.Sin(p*math.Pi) * 2 // cosmetic arc, position only
	c.Position = pos
	c.LookAt = Lerp(t.fromLookAt, t.toLookAt, e)

	if p == 1 {
		c.Position = t.toPosition
		c.LookAt = t.toLookAt
		c.tr = nil
		if t.onComplete != nil {
			t.onComplete()
		}
	}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
