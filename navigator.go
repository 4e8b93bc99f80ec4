package neuroview

import (
	"fmt"
	"slices"
)

// NavigatorConfig wires a Navigator to its scene. The node slices are
// non-owning; the composition layer keeps them alive for the navigator's
// lifetime. Nil callbacks are replaced with no-ops.
type NavigatorConfig struct {
	Models  []*Node
	Layers  []*Node
	Neurons []*Node

	Host PointerHost
	Rig  *CameraRig

	OnNothingSelect func()
	OnModelSelect   func(Record)
	OnLayerSelect   func(Record)
	OnNeuronSelect  func(Record)
}

// Navigator turns pointer events into hover and focus changes. It owns the
// focus state machine, drives the CameraRig and notifies the host through
// the selection callbacks.
//
// Transitions on click:
//
//	overview + model                 -> modelFocus
//	modelFocus + layer of that model -> layerFocus
//	layerFocus + neuron              -> neuronFocus
//	neuronFocus + layer (or nothing) -> layerFocus
//	anything else + nothing          -> overview
//
// Every selection runs SetMode, then the camera reframe, then the callback.
type Navigator struct {
	models, layers, neurons []*Node
	modelSet, layerSet      map[*Node]struct{}
	neuronSet               map[*Node]struct{}

	host PointerHost
	rig  *CameraRig

	onNothing func()
	onModel   func(Record)
	onLayer   func(Record)
	onNeuron  func(Record)

	mode    FocusMode
	focused *Node
	hovered *Node

	ndcX, ndcY float32
	hitBuf     []rayHit

	moveHandle CallbackHandle
	downHandle CallbackHandle
	disposed   bool
}

// NewNavigator validates cfg, registers pointer listeners on the host and
// starts in overview mode. It does not move the camera.
func NewNavigator(cfg NavigatorConfig) (*Navigator, error) {
	if cfg.Host == nil {
		return nil, fmt.Errorf("new navigator: %w", ErrNoHost)
	}
	if cfg.Rig == nil {
		return nil, fmt.Errorf("new navigator: %w", ErrNoRig)
	}
	nv := &Navigator{
		models:    cfg.Models,
		layers:    cfg.Layers,
		neurons:   cfg.Neurons,
		modelSet:  nodeSet(cfg.Models),
		layerSet:  nodeSet(cfg.Layers),
		neuronSet: nodeSet(cfg.Neurons),
		host:      cfg.Host,
		rig:       cfg.Rig,
		onNothing: cfg.OnNothingSelect,
		onModel:   cfg.OnModelSelect,
		onLayer:   cfg.OnLayerSelect,
		onNeuron:  cfg.OnNeuronSelect,
		mode:      FocusOverview,
	}
	if nv.onNothing == nil {
		nv.onNothing = func() {}
	}
	if nv.onModel == nil {
		nv.onModel = func(Record) {}
	}
	if nv.onLayer == nil {
		nv.onLayer = func(Record) {}
	}
	if nv.onNeuron == nil {
		nv.onNeuron = func(Record) {}
	}
	nv.moveHandle = cfg.Host.OnPointerMove(nv.handlePointerMove)
	nv.downHandle = cfg.Host.OnPointerDown(nv.handlePointerDown)
	logger.Debug("navigator ready", "models", len(cfg.Models), "layers", len(cfg.Layers), "neurons", len(cfg.Neurons))
	return nv, nil
}

func nodeSet(nodes []*Node) map[*Node]struct{} {
	set := make(map[*Node]struct{}, len(nodes))
	for _, n := range nodes {
		if n != nil {
			set[n] = struct{}{}
		}
	}
	return set
}

// pickable returns the node slice ray-cast in the current mode and the set
// used to climb from a hit to its owner.
func (nv *Navigator) pickable() ([]*Node, map[*Node]struct{}) {
	switch nv.mode {
	case FocusModel, FocusNeuron:
		return nv.layers, nv.layerSet
	case FocusLayer:
		return nv.neurons, nv.neuronSet
	default:
		return nv.models, nv.modelSet
	}
}

// --- State ---

// SetMode is the pure state transition: it clears the hover (calling
// HoverOut), then sets mode and focus. Overview always clears the focus,
// and a non-overview mode without a target falls back to overview so that
// the focus is nil exactly in overview. It neither moves the camera nor
// fires callbacks.
func (nv *Navigator) SetMode(mode FocusMode, target *Node) {
	nv.setHover(nil)
	if mode > FocusNeuron || target == nil {
		mode = FocusOverview
	}
	if mode == FocusOverview {
		target = nil
	}
	if mode != nv.mode || target != nv.focused {
		logger.Debug("mode", "from", nv.mode, "to", mode, "focus", nodeName(target))
	}
	nv.mode = mode
	nv.focused = target
}

// Mode returns the active focus mode.
func (nv *Navigator) Mode() FocusMode {
	return nv.mode
}

// Focused returns the focused node, nil in overview.
func (nv *Navigator) Focused() *Node {
	return nv.focused
}

// Hovered returns the hovered node, or nil.
func (nv *Navigator) Hovered() *Node {
	return nv.hovered
}

// PointerNDC returns the normalized device coordinates of the last pointer
// event.
func (nv *Navigator) PointerNDC() (x, y float32) {
	return nv.ndcX, nv.ndcY
}

// Refocus re-frames the current focus without changing state or firing
// callbacks, e.g. after the viewport was resized.
func (nv *Navigator) Refocus() {
	if nv.disposed {
		return
	}
	if nv.focused == nil {
		nv.rig.FocusOverview(nil)
		return
	}
	nv.rig.FocusOnObject(nv.focused, nv.mode)
}

// --- Selection ---

// selectNode applies the click transition table for hit (nil when the
// click resolved to nothing).
func (nv *Navigator) selectNode(hit *Node) {
	switch nv.mode {
	case FocusOverview:
		if hit == nil {
			nv.selectNothing()
			return
		}
		nv.selectModel(hit)
	case FocusModel:
		if hit == nil {
			nv.selectNothing()
			return
		}
		nv.selectLayer(hit)
	case FocusLayer:
		if hit == nil {
			nv.selectNothing()
			return
		}
		nv.selectNeuron(hit)
	case FocusNeuron:
		if hit == nil {
			hit = nv.owningLayer(nv.focused)
		}
		if hit == nil {
			nv.selectNothing()
			return
		}
		nv.selectLayer(hit)
	}
}

// owningLayer returns the layer containing a neuron.
func (nv *Navigator) owningLayer(n *Node) *Node {
	if n == nil {
		return nil
	}
	return climbToPickable(n.Parent, nv.layerSet)
}

func (nv *Navigator) selectNothing() {
	nv.SetMode(FocusOverview, nil)
	nv.rig.FocusOverview(nil)
	nv.onNothing()
}

func (nv *Navigator) selectModel(n *Node) {
	nv.SetMode(FocusModel, n)
	nv.rig.FocusOnObject(n, FocusModel)
	nv.onModel(n.Data)
}

func (nv *Navigator) selectLayer(n *Node) {
	nv.SetMode(FocusLayer, n)
	nv.rig.FocusOnObject(n, FocusLayer)
	nv.onLayer(n.Data)
}

func (nv *Navigator) selectNeuron(n *Node) {
	nv.SetMode(FocusNeuron, n)
	nv.rig.FocusOnObject(n, FocusNeuron)
	nv.onNeuron(n.Data)
}

// --- Programmatic navigation ---

// Goto navigates by identifiers without pointer input: Goto() returns to
// overview, Goto(model) focuses a model, Goto(model, layer) a layer of that
// model, and Goto(model, layer, neuron) a neuron of that layer. Each id is
// looked up inside the node named before it. The deepest node is selected
// exactly as a click would select it. An id that matches nothing makes the
// whole call a no-op. An empty id ends the path, so Goto("m", "") focuses
// model m. Extra ids beyond the neuron are ignored.
func (nv *Navigator) Goto(ids ...string) {
	if nv.disposed {
		return
	}
	if i := slices.Index(ids, ""); i >= 0 {
		ids = ids[:i]
	}
	if len(ids) == 0 {
		nv.selectNothing()
		return
	}
	model := findNode(nv.models, nil, ids[0])
	if model == nil {
		logger.Debug("goto: no such model", "id", ids[0])
		return
	}
	if len(ids) == 1 {
		nv.selectModel(model)
		return
	}
	layer := findNode(nv.layers, model, ids[1])
	if layer == nil {
		logger.Debug("goto: no such layer", "model", ids[0], "id", ids[1])
		return
	}
	if len(ids) == 2 {
		nv.selectLayer(layer)
		return
	}
	neuron := findNode(nv.neurons, layer, ids[2])
	if neuron == nil {
		logger.Debug("goto: no such neuron", "layer", ids[1], "id", ids[2])
		return
	}
	nv.selectNeuron(neuron)
}

// findNode returns the first node in nodes with the given id that lies
// under within (any node when within is nil).
func findNode(nodes []*Node, within *Node, id string) *Node {
	for _, n := range nodes {
		if n == nil || n.ID != id {
			continue
		}
		if within == nil || isAncestor(within, n) {
			return n
		}
	}
	return nil
}

// --- Lifecycle ---

// Dispose detaches the pointer listeners, resets the cursor, clears the
// hover and stops camera animations. It never fires selection callbacks
// and is safe to call more than once.
func (nv *Navigator) Dispose() {
	if nv.disposed {
		return
	}
	nv.disposed = true
	nv.moveHandle.Remove()
	nv.downHandle.Remove()
	if nv.hovered != nil {
		nv.hovered.HoverOut()
		nv.hovered = nil
	}
	nv.host.SetCursor(CursorDefault)
	nv.rig.StopAnimations()
	logger.Debug("navigator disposed")
}

// Disposed reports whether Dispose has been called.
func (nv *Navigator) Disposed() bool {
	return nv.disposed
}

func nodeName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}
