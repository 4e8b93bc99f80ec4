package neuroview

import (
	"cmp"
	"slices"

	"cogentcore.org/core/math32"
)

// --- Coordinates ---

// clientToNDC converts client coordinates to normalized device coordinates
// relative to bounds: x and y span [-1, 1] across the rectangle with +y up.
// Degenerate bounds are treated as 1x1.
func clientToNDC(bounds Rect, x, y float64) (ndcX, ndcY float32) {
	w := max(bounds.Width, 1)
	h := max(bounds.Height, 1)
	ndcX = float32((x-bounds.X)/w*2 - 1)
	ndcY = float32(-((y-bounds.Y)/h*2 - 1))
	return ndcX, ndcY
}

// --- Ray casting ---

// rayHit is one intersection between a pick ray and a node's own geometry.
type rayHit struct {
	node *Node
	dist float32
}

// raycast intersects ray with the visible geometry of nodes and all their
// descendants. Hits are sorted nearest first; hits at equal distance keep
// the order they were found in.
func raycast(ray math32.Ray, nodes []*Node, buf []rayHit) []rayHit {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		n.Walk(func(c *Node) bool {
			if !c.Visible || c.disposed {
				return false
			}
			if c.Bounds.IsEmpty() {
				return true
			}
			if pt, ok := ray.IntersectBox(c.WorldBounds()); ok {
				buf = append(buf, rayHit{node: c, dist: pt.Sub(ray.Origin).Length()})
			}
			return true
		})
	}
	slices.SortStableFunc(buf, func(a, b rayHit) int {
		return cmp.Compare(a.dist, b.dist)
	})
	return buf
}

// climbToPickable walks from a hit node up the parent chain to the first
// member of set. Returns nil if no ancestor is pickable.
func climbToPickable(n *Node, set map[*Node]struct{}) *Node {
	for p := n; p != nil; p = p.Parent {
		if _, ok := set[p]; ok {
			return p
		}
	}
	return nil
}

// --- Pointer handling ---

// pick resolves the pickable node under a pointer event for the current
// mode, or nil. It also records the event's NDC.
func (nv *Navigator) pick(evt PointerEvent) *Node {
	nv.ndcX, nv.ndcY = clientToNDC(nv.host.Bounds(), evt.ClientX, evt.ClientY)
	nodes, set := nv.pickable()
	if len(nodes) == 0 {
		return nil
	}
	ray := nv.rig.Ray(nv.ndcX, nv.ndcY)
	nv.hitBuf = raycast(ray, nodes, nv.hitBuf[:0])
	for _, h := range nv.hitBuf {
		n := climbToPickable(h.node, set)
		if n == nil {
			continue
		}
		// In model focus only the focused model's layers can be picked.
		if nv.mode == FocusModel && nv.focused != nil && !isAncestor(nv.focused, n) {
			continue
		}
		return n
	}
	return nil
}

// handlePointerMove updates the hover target and cursor affordance.
func (nv *Navigator) handlePointerMove(evt PointerEvent) {
	if nv.disposed {
		return
	}
	nv.setHover(nv.pick(evt))
}

// handlePointerDown resolves the clicked node and runs the transition table.
func (nv *Navigator) handlePointerDown(evt PointerEvent) {
	if nv.disposed {
		return
	}
	nv.selectNode(nv.pick(evt))
}

// setHover swaps the hovered node, always calling HoverOut on the old one
// before HoverIn on the new one.
func (nv *Navigator) setHover(n *Node) {
	if n == nv.hovered {
		return
	}
	if nv.hovered != nil {
		nv.hovered.HoverOut()
	}
	nv.hovered = n
	if n != nil {
		n.HoverIn()
		nv.host.SetCursor(CursorPointer)
	} else {
		nv.host.SetCursor(CursorDefault)
	}
}
