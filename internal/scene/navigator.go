package scene

// Object is one category sphere in the navigator scene. Radius is the
// geometry radius; Scale is the animated scale factor, easing toward
// BaseScale (×focusEmphasis when focused).
type Object struct {
	ID        string
	Position  Vec3
	Color     string
	BaseScale float64

	Scale    float64
	Rotation float64
}

// EffectiveRadius is the rendered radius: geometry radius 1 times the
// current scale factor.
func (o *Object) EffectiveRadius() float64 {
	return o.Scale
}

const (
	idleFollowRate = 0.04
	scaleEaseRate  = 0.1
	rotationRate   = 0.002
	focusEmphasis  = 1.7

	followMargin  = 6.0
	yOffsetFactor = 1.2
)

// Navigator drives the idle camera and the category objects, one Step per
// frame while the navigator view is active.
type Navigator struct {
	Objects []*Object
	Camera  *Camera

	// NarrowViewport widens the follow distance so the focused object
	// still fits on a narrow display.
	NarrowViewport bool

	focus int
}

func NewNavigator(cam *Camera, objects []*Object) *Navigator {
	for _, o := range objects {
		o.Scale = o.BaseScale
	}
	return &Navigator{Objects: objects, Camera: cam}
}

// Focused returns the currently focused object, or nil when the scene is empty.
func (n *Navigator) Focused() *Object {
	if len(n.Objects) == 0 {
		return nil
	}
	return n.Objects[n.focus]
}

// Next moves focus forward, wrapping. Ignored while a transition is active.
func (n *Navigator) Next() {
	if n.Camera.Transitioning() || len(n.Objects) == 0 {
		return
	}
	n.focus = (n.focus + 1) % len(n.Objects)
}

// Prev moves focus backward, wrapping. Ignored while a transition is active.
func (n *Navigator) Prev() {
	if n.Camera.Transitioning() || len(n.Objects) == 0 {
		return
	}
	n.focus = (n.focus - 1 + len(n.Objects)) % len(n.Objects)
}

// Step advances one frame: objects rotate at a fixed rate, and unless a
// transition owns the camera, object scales ease toward their resting
// values and the camera eases toward the focused object. The camera never
// reaches the target in finite frames; it converges asymptotically.
func (n *Navigator) Step() {
	for _, o := range n.Objects {
		o.Rotation += rotationRate
	}

	if n.Camera.Transitioning() {
		return
	}

	focused := n.Focused()
	for _, o := range n.Objects {
		rest := o.BaseScale
		if o == focused {
			rest = o.BaseScale * focusEmphasis
		}
		o.Scale += (rest - o.Scale) * scaleEaseRate
	}

	if focused == nil {
		return
	}
	r := focused.EffectiveRadius()
	mult := 5.0
	if n.NarrowViewport {
		mult = 6.0
	}
	desired := focused.Position.Add(Vec3{0, r * yOffsetFactor, r*mult + followMargin})

	n.Camera.Position = Lerp(n.Camera.Position, desired, idleFollowRate)
	n.Camera.LookAt = Lerp(n.Camera.LookAt, focused.Position, idleFollowRate)
}
