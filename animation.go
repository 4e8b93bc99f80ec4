package neuroview

import (
	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase is the ease-in/ease-out curve used for camera framing.
var DefaultEase ease.TweenFunc = ease.InOutQuad

// tweenSlot animates one scalar property. It holds at most one tween:
// starting a new one replaces whatever was running, so the property always
// converges on the latest request.
type tweenSlot struct {
	tween *gween.Tween
	to    float32
}

// start overwrites the slot with a tween from -> to.
func (s *tweenSlot) start(from, to, duration float32, fn ease.TweenFunc) {
	s.tween = gween.New(from, to, duration, fn)
	s.to = to
}

// step advances the tween by dt seconds and writes the value to dst.
// Returns false when the slot is idle.
func (s *tweenSlot) step(dt float32, dst *float32) bool {
	if s.tween == nil {
		return false
	}
	val, done := s.tween.Update(dt)
	*dst = val
	if done {
		*dst = s.to
		s.tween = nil
	}
	return true
}

// active reports whether a tween is in flight.
func (s *tweenSlot) active() bool {
	return s.tween != nil
}

// stop drops the in-flight tween, leaving the property where it is.
func (s *tweenSlot) stop() {
	s.tween = nil
}

// vecSlot animates a Vector3 property as three scalar tweens that always
// start and stop together.
type vecSlot struct {
	x, y, z tweenSlot
}

func (s *vecSlot) start(from, to math32.Vector3, duration float32, fn ease.TweenFunc) {
	s.x.start(from.X, to.X, duration, fn)
	s.y.start(from.Y, to.Y, duration, fn)
	s.z.start(from.Z, to.Z, duration, fn)
}

func (s *vecSlot) step(dt float32, dst *math32.Vector3) bool {
	ax := s.x.step(dt, &dst.X)
	ay := s.y.step(dt, &dst.Y)
	az := s.z.step(dt, &dst.Z)
	return ax || ay || az
}

func (s *vecSlot) active() bool {
	return s.x.active() || s.y.active() || s.z.active()
}

// destination returns the end value of the latest tween.
func (s *vecSlot) destination() math32.Vector3 {
	return math32.Vec3(s.x.to, s.y.to, s.z.to)
}

func (s *vecSlot) stop() {
	s.x.stop()
	s.y.stop()
	s.z.stop()
}
