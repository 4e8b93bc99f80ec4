package neuroview

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default wireframe tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to an 8-bit premultiplied color for ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned screen rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// FocusMode is the drill level of the navigator. Exactly one is active.
type FocusMode uint8

const (
	FocusOverview FocusMode = iota // whole scene framed, models pickable
	FocusModel                     // a model is focused, its layers pickable
	FocusLayer                     // a layer is focused, neurons pickable
	FocusNeuron                    // a neuron is focused, layers pickable
)

// String returns the mode name used in logs and scripts.
func (m FocusMode) String() string {
	switch m {
	case FocusOverview:
		return "overview"
	case FocusModel:
		return "modelFocus"
	case FocusLayer:
		return "layerFocus"
	case FocusNeuron:
		return "neuronFocus"
	default:
		return "unknown"
	}
}

// Projection selects the camera projection.
type Projection uint8

const (
	ProjectionPerspective  Projection = iota // field-of-view camera
	ProjectionOrthographic                   // zoomed parallel camera
)

// String returns "perspective" or "orthographic".
func (p Projection) String() string {
	if p == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// CursorShape is the pointer affordance shown over the host element.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota // arrow
	CursorPointer                    // hand, shown over a pickable node
)

// EventType identifies a kind of pointer event delivered by a PointerHost.
type EventType uint8

const (
	EventPointerMove EventType = iota // pointer moved over the host element
	EventPointerDown                  // primary button pressed
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// NodeKind distinguishes the tiers of the diagram hierarchy.
type NodeKind uint8

const (
	NodeKindGroup  NodeKind = iota // grouping node with no pickable role
	NodeKindModel                  // a model, pickable in overview
	NodeKindLayer                  // a layer inside a model
	NodeKindNeuron                 // a neuron inside a layer
	NodeKindMesh                   // visual sub-part of another node
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeKindGroup:
		return "group"
	case NodeKindModel:
		return "model"
	case NodeKindLayer:
		return "layer"
	case NodeKindNeuron:
		return "neuron"
	case NodeKindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}
