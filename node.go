package neuroview

import (
	"slices"
	"strings"

	"cogentcore.org/core/math32"
)

// Hoverable is the capability the navigator relies on to give hover
// feedback. Implementations perform visual side effects only.
type Hoverable interface {
	HoverIn()
	HoverOut()
}

// HoverAffordance is the visual reaction attached to a node. Keeping it a
// separate component lets models, layers and neurons share one Node type
// while reacting to hover differently.
type HoverAffordance interface {
	Enter(n *Node)
	Leave(n *Node)
}

// Highlight is a HoverAffordance that tints the node while it is hovered
// and restores the previous color afterwards.
type Highlight struct {
	Tint  Color
	saved Color
}

// NewHighlight returns a Highlight using the given tint.
func NewHighlight(tint Color) *Highlight {
	return &Highlight{Tint: tint}
}

// Enter saves the node color and applies the tint.
func (h *Highlight) Enter(n *Node) {
	h.saved = n.Color
	n.Color = h.Tint
}

// Leave restores the color saved by Enter.
func (h *Highlight) Leave(n *Node) {
	n.Color = h.saved
}

// HoverFuncs adapts plain functions to HoverAffordance. Nil fields are skipped.
type HoverFuncs struct {
	OnEnter func(n *Node)
	OnLeave func(n *Node)
}

// Enter calls OnEnter if set.
func (f HoverFuncs) Enter(n *Node) {
	if f.OnEnter != nil {
		f.OnEnter(n)
	}
}

// Leave calls OnLeave if set.
func (f HoverFuncs) Leave(n *Node) {
	if f.OnLeave != nil {
		f.OnLeave(n)
	}
}

// Node is the scene graph element for every tier of the diagram. A single
// flat struct is used for models, layers, neurons and their visual parts;
// Kind tells them apart.
type Node struct {
	// Identity
	ID   string
	Name string
	Kind NodeKind
	Data Record

	// Hierarchy. Parent is a lookup link only; the composition layer owns
	// every node.
	Parent   *Node
	children []*Node

	// Transform (local): translation then uniform scale.
	Position math32.Vector3
	Scale    float32

	// Bounds is the node's own geometry in local space. Nodes whose Bounds
	// is empty contribute no hit volume of their own.
	Bounds math32.Box3

	Visible bool
	Color   Color

	// Hover is the optional visual reaction to HoverIn/HoverOut.
	Hover HoverAffordance

	// Metadata
	UserData any

	hovered  bool
	disposed bool
}

var _ Hoverable = (*Node)(nil)

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.Scale = 1
	n.Visible = true
	n.Color = ColorWhite
	n.Bounds = math32.B3Empty()
}

func newNode(kind NodeKind, rec Record) *Node {
	n := &Node{ID: rec.ID, Name: rec.DisplayName(), Kind: kind, Data: rec}
	nodeDefaults(n)
	return n
}

// NewGroup creates a grouping node with no geometry, such as the scene root.
func NewGroup(name string) *Node {
	n := &Node{ID: name, Name: name, Kind: NodeKindGroup}
	nodeDefaults(n)
	return n
}

// NewModel creates a model node for the given record.
func NewModel(rec Record) *Node {
	return newNode(NodeKindModel, rec)
}

// NewLayer creates a layer node for the given record.
func NewLayer(rec Record) *Node {
	return newNode(NodeKindLayer, rec)
}

// NewNeuron creates a neuron node for the given record.
func NewNeuron(rec Record) *Node {
	return newNode(NodeKindNeuron, rec)
}

// NewMesh creates a visual sub-part occupying the given local box. Meshes
// are what rays actually hit; picking climbs from a mesh to its owner.
func NewMesh(name string, bounds math32.Box3) *Node {
	n := &Node{ID: name, Name: name, Kind: NodeKindMesh}
	nodeDefaults(n)
	n.Bounds = bounds
	return n
}

// --- Hover ---

// HoverIn marks the node hovered and runs its affordance. Repeated calls
// without an intervening HoverOut are ignored.
func (n *Node) HoverIn() {
	if n.hovered || n.disposed {
		return
	}
	n.hovered = true
	if n.Hover != nil {
		n.Hover.Enter(n)
	}
}

// HoverOut clears the hovered flag and undoes the affordance.
func (n *Node) HoverOut() {
	if !n.hovered {
		return
	}
	n.hovered = false
	if n.Hover != nil && !n.disposed {
		n.Hover.Leave(n)
	}
}

// Hovered reports whether the node is currently hovered.
func (n *Node) Hovered() bool {
	return n.hovered
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("neuroview: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("neuroview: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("neuroview: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindChild returns the first direct child of the given kind whose ID
// matches, or nil.
func (n *Node) FindChild(kind NodeKind, id string) *Node {
	for _, c := range n.children {
		if c.Kind == kind && c.ID == id {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Ancestor returns the closest node of the given kind on the parent chain,
// starting with n itself, or nil.
func (n *Node) Ancestor(kind NodeKind) *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// Path joins the ids of the model, layer and neuron nodes from the
// outermost down to n with slashes, e.g. "mlp/hidden/n3". Groups and
// meshes are skipped.
func (n *Node) Path() string {
	var ids []string
	for p := n; p != nil; p = p.Parent {
		switch p.Kind {
		case NodeKindModel, NodeKindLayer, NodeKindNeuron:
			ids = append(ids, p.ID)
		}
	}
	slices.Reverse(ids)
	return strings.Join(ids, "/")
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.removeChildByPtr(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Hover = nil
	n.UserData = nil
	n.hovered = false
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
