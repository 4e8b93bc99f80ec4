package neuroview

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/tanema/gween/ease"
)

// minBoxExtent is the smallest box dimension the rig will frame. Thinner
// boxes (a flat layer, a single point) are padded up to it.
const minBoxExtent = 1e-3

// CameraRig owns the camera and animates it to frame 3D regions of the
// scene. Position, look-at target, orthographic zoom and tilt each have
// their own single-slot tween; a new framing request overwrites the
// in-flight one for every property it touches.
type CameraRig struct {
	root *Node

	projection  Projection
	fov         float32 // vertical, radians
	near, far   float32
	frustumSize float32
	fill        float32
	duration    float32
	tilts       [FocusNeuron + 1]float32 // radians, indexed by FocusMode
	easeFn      ease.TweenFunc

	width, height int
	aspect        float32
	halfW, halfH  float32 // orthographic frustum half extents at zoom 1

	position math32.Vector3
	target   math32.Vector3
	zoom     float32
	tilt     float32

	posAnim    vecSlot
	targetAnim vecSlot
	zoomAnim   tweenSlot
	tiltAnim   tweenSlot

	// View basis, recomputed by Update.
	eye, forward, right, up math32.Vector3
}

// NewCameraRig creates a rig that frames nodes under root. root is the
// group FocusOverview falls back to and is required.
func NewCameraRig(root *Node, cfg RigConfig) (*CameraRig, error) {
	if root == nil {
		return nil, fmt.Errorf("new camera rig: %w", ErrNoRoot)
	}
	proj, err := parseProjection(cfg.Projection)
	if err != nil {
		return nil, fmt.Errorf("new camera rig: %w", err)
	}
	cfg = cfg.normalized()

	r := &CameraRig{
		root:        root,
		projection:  proj,
		fov:         math32.DegToRad(cfg.FOV),
		near:        cfg.Near,
		far:         cfg.Far,
		frustumSize: cfg.FrustumSize,
		fill:        cfg.FillFraction,
		duration:    cfg.Duration,
		easeFn:      DefaultEase,
		zoom:        1,
	}
	for name, deg := range cfg.Tilts {
		if m, ok := parseFocusMode(name); ok {
			r.tilts[m] = math32.DegToRad(deg)
		}
	}
	if proj == ProjectionOrthographic {
		r.position = math32.Vec3(0, 0, defaultOrthoStandoff)
	} else {
		r.position = math32.Vec3(0, 0, 10)
	}
	r.Resize(cfg.Width, cfg.Height)
	r.updateView()
	return r, nil
}

// SetEase replaces the easing curve used by future framing animations.
func (r *CameraRig) SetEase(fn ease.TweenFunc) {
	if fn == nil {
		fn = DefaultEase
	}
	r.easeFn = fn
}

// Resize recomputes the projection for a new viewport. Sizes below 1 are
// treated as 1. The current framing is left untouched.
func (r *CameraRig) Resize(width, height int) {
	r.width = max(width, 1)
	r.height = max(height, 1)
	r.aspect = float32(r.width) / float32(r.height)
	r.halfH = r.frustumSize / 2
	r.halfW = r.halfH * r.aspect
}

// FocusOverview frames the whole of root, or the rig's root when root is
// nil, with no tilt.
func (r *CameraRig) FocusOverview(root *Node) {
	if root == nil {
		root = r.root
	}
	if root == nil {
		panic("neuroview: FocusOverview with no root")
	}
	r.zoomToBox(frameBox(root), FocusOverview)
}

// FocusOnObject frames n and its subtree using the tilt for mode.
// Panics if n is nil.
func (r *CameraRig) FocusOnObject(n *Node, mode FocusMode) {
	if n == nil {
		panic("neuroview: FocusOnObject on nil node")
	}
	r.zoomToBox(frameBox(n), mode)
}

// frameBox returns the region to frame for n. A subtree without geometry
// frames the node's origin, which zoomToBox pads to a tiny box.
func frameBox(n *Node) math32.Box3 {
	box := n.SubtreeBounds()
	if box.IsEmpty() {
		p := n.WorldPosition()
		box = math32.Box3{Min: p, Max: p}
	}
	return box
}

// zoomToBox starts the tweens that bring the camera to frame box.
func (r *CameraRig) zoomToBox(box math32.Box3, mode FocusMode) {
	center := box.Center()
	size := box.Size()
	size.X = math32.Max(size.X, minBoxExtent)
	size.Y = math32.Max(size.Y, minBoxExtent)
	size.Z = math32.Max(size.Z, minBoxExtent)

	if mode > FocusNeuron {
		mode = FocusOverview
	}
	pitch := r.tilts[mode]

	switch r.projection {
	case ProjectionOrthographic:
		fw, fh := 2*r.halfW, 2*r.halfH
		zoom := math32.Min(fw/size.X, fh/size.Y) * r.fill
		dest := math32.Vec3(center.X, center.Y, r.position.Z)
		r.posAnim.start(r.position, dest, r.duration, r.easeFn)
		r.zoomAnim.start(r.zoom, zoom, r.duration, r.easeFn)
		logger.Debug("frame", "mode", mode, "center", center, "zoom", zoom)
	default:
		tanV := math32.Tan(r.fov / 2)
		tanH := tanV * r.aspect
		hDist := (size.Y / 2) / tanV
		wDist := (size.X / 2) / tanH
		dist := math32.Max(hDist, wDist) / r.fill
		dest := center.Add(backVector(pitch).MulScalar(dist))
		r.posAnim.start(r.position, dest, r.duration, r.easeFn)
		logger.Debug("frame", "mode", mode, "center", center, "dist", dist)
	}
	r.targetAnim.start(r.target, center, r.duration, r.easeFn)
	r.tiltAnim.start(r.tilt, pitch, r.duration, r.easeFn)
}

// backVector is the unit vector from a look-at point toward a camera
// pitched down by angle radians.
func backVector(pitch float32) math32.Vector3 {
	return math32.Vec3(0, math32.Sin(pitch), math32.Cos(pitch))
}

// orbitX rotates v about the X axis so that +Z swings toward +Y.
func orbitX(v math32.Vector3, angle float32) math32.Vector3 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return math32.Vec3(v.X, v.Y*cos+v.Z*sin, v.Z*cos-v.Y*sin)
}

// Update is the per-frame hook. It advances every property tween by dt
// seconds and re-aims the camera at the current look-at target.
func (r *CameraRig) Update(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 0) {
		dt = 0
	}
	r.posAnim.step(dt, &r.position)
	r.targetAnim.step(dt, &r.target)
	r.zoomAnim.step(dt, &r.zoom)
	r.tiltAnim.step(dt, &r.tilt)
	r.updateView()
}

// updateView recomputes the eye and the look-at basis.
func (r *CameraRig) updateView() {
	eye := r.position
	if r.projection == ProjectionOrthographic {
		eye = r.target.Add(orbitX(r.position.Sub(r.target), r.tilt))
	}
	fwd := r.target.Sub(eye)
	if fwd.Length() < 1e-6 {
		fwd = math32.Vec3(0, 0, -1)
	}
	fwd = fwd.Normal()
	right := fwd.Cross(math32.Vec3(0, 1, 0))
	if right.Length() < 1e-6 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()

	r.eye = eye
	r.forward = fwd
	r.right = right
	r.up = right.Cross(fwd)
}

// StopAnimations cancels every in-flight tween, leaving the pose where it is.
func (r *CameraRig) StopAnimations() {
	r.posAnim.stop()
	r.targetAnim.stop()
	r.zoomAnim.stop()
	r.tiltAnim.stop()
}

// Animating reports whether any property is still tweening.
func (r *CameraRig) Animating() bool {
	return r.posAnim.active() || r.targetAnim.active() ||
		r.zoomAnim.active() || r.tiltAnim.active()
}

// Destination returns where the latest framing request sends the camera
// position and look-at target.
func (r *CameraRig) Destination() (position, target math32.Vector3) {
	return r.posAnim.destination(), r.targetAnim.destination()
}

// --- Picking and projection ---

// Ray returns the world-space ray through the given normalized device
// coordinates, as of the last Update.
func (r *CameraRig) Ray(ndcX, ndcY float32) math32.Ray {
	if r.projection == ProjectionOrthographic {
		zoom := math32.Max(r.zoom, 1e-6)
		origin := r.eye.
			Add(r.right.MulScalar(ndcX * r.halfW / zoom)).
			Add(r.up.MulScalar(ndcY * r.halfH / zoom))
		return math32.Ray{Origin: origin, Dir: r.forward}
	}
	tanV := math32.Tan(r.fov / 2)
	dir := r.forward.
		Add(r.right.MulScalar(ndcX * tanV * r.aspect)).
		Add(r.up.MulScalar(ndcY * tanV))
	return math32.Ray{Origin: r.eye, Dir: dir.Normal()}
}

// Project maps a world point to normalized device coordinates. ok is false
// for points behind the near plane of a perspective camera.
func (r *CameraRig) Project(p math32.Vector3) (ndcX, ndcY float32, ok bool) {
	v := p.Sub(r.eye)
	if r.projection == ProjectionOrthographic {
		zoom := math32.Max(r.zoom, 1e-6)
		return v.Dot(r.right) * zoom / r.halfW, v.Dot(r.up) * zoom / r.halfH, true
	}
	z := v.Dot(r.forward)
	if z < r.near {
		return 0, 0, false
	}
	tanV := math32.Tan(r.fov / 2)
	return v.Dot(r.right) / (z * tanV * r.aspect), v.Dot(r.up) / (z * tanV), true
}

// NDCToScreen converts normalized device coordinates to viewport pixels.
func (r *CameraRig) NDCToScreen(ndcX, ndcY float32) (x, y float64) {
	x = float64((ndcX + 1) / 2 * float32(r.width))
	y = float64((1 - ndcY) / 2 * float32(r.height))
	return x, y
}

// --- Accessors ---

// Root returns the group FocusOverview frames by default.
func (r *CameraRig) Root() *Node { return r.root }

// Projection returns the camera projection kind.
func (r *CameraRig) Projection() Projection { return r.projection }

// Position returns the current camera position.
func (r *CameraRig) Position() math32.Vector3 { return r.position }

// Eye returns the point the view is rendered from. It equals Position for
// perspective rigs; orthographic rigs orbit it around the target by Tilt.
func (r *CameraRig) Eye() math32.Vector3 { return r.eye }

// Target returns the current look-at point.
func (r *CameraRig) Target() math32.Vector3 { return r.target }

// Forward returns the unit view direction.
func (r *CameraRig) Forward() math32.Vector3 { return r.forward }

// Tilt returns the current pitch in radians.
func (r *CameraRig) Tilt() float32 { return r.tilt }

// TiltFor returns the configured pitch for mode in radians.
func (r *CameraRig) TiltFor(mode FocusMode) float32 {
	if mode > FocusNeuron {
		return 0
	}
	return r.tilts[mode]
}

// Zoom returns the orthographic zoom factor. It stays 1 for perspective rigs.
func (r *CameraRig) Zoom() float32 { return r.zoom }

// FOV returns the vertical field of view in radians.
func (r *CameraRig) FOV() float32 { return r.fov }

// Aspect returns the viewport aspect ratio.
func (r *CameraRig) Aspect() float32 { return r.aspect }

// FrustumHalfExtents returns the orthographic half width and height at zoom 1.
func (r *CameraRig) FrustumHalfExtents() (halfW, halfH float32) { return r.halfW, r.halfH }

// Viewport returns the clamped viewport size in pixels.
func (r *CameraRig) Viewport() (width, height int) { return r.width, r.height }

// Duration returns the framing animation length in seconds.
func (r *CameraRig) Duration() float32 { return r.duration }

// FillFraction returns the share of the viewport a framed box occupies.
func (r *CameraRig) FillFraction() float32 { return r.fill }
