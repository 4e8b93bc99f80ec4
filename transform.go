package neuroview

import "cogentcore.org/core/math32"

// WorldPosition returns the node's origin in world space. The local
// transform composes as Scale then Translate(Position), inherited down the
// parent chain.
func (n *Node) WorldPosition() math32.Vector3 {
	pos, _ := worldTransform(n)
	return pos
}

// WorldScale returns the accumulated uniform scale of the node.
func (n *Node) WorldScale() float32 {
	_, s := worldTransform(n)
	return s
}

// worldTransform walks up the parent chain, composing translation and
// uniform scale. Trees here are shallow (root → model → layer → neuron →
// mesh), so nothing is cached.
func worldTransform(n *Node) (math32.Vector3, float32) {
	if n.Parent == nil {
		return n.Position, n.Scale
	}
	ppos, ps := worldTransform(n.Parent)
	return ppos.Add(n.Position.MulScalar(ps)), ps * n.Scale
}

// WorldBounds returns the node's own geometry in world space, or an empty
// box when the node has none.
func (n *Node) WorldBounds() math32.Box3 {
	if n.Bounds.IsEmpty() {
		return math32.B3Empty()
	}
	pos, s := worldTransform(n)
	return localToWorld(n.Bounds, pos, s)
}

// SubtreeBounds returns the world AABB of the node's own geometry and that
// of every visible descendant. This is the region the camera frames when a
// node is focused. An empty box means nothing in the subtree has geometry.
func (n *Node) SubtreeBounds() math32.Box3 {
	pos, s := worldTransform(n)
	box := math32.B3Empty()
	expandSubtree(n, pos, s, &box)
	return box
}

func expandSubtree(n *Node, pos math32.Vector3, s float32, box *math32.Box3) {
	if !n.Visible {
		return
	}
	if !n.Bounds.IsEmpty() {
		box.ExpandByBox(localToWorld(n.Bounds, pos, s))
	}
	for _, c := range n.children {
		expandSubtree(c, pos.Add(c.Position.MulScalar(s)), s*c.Scale, box)
	}
}

// localToWorld maps a local box through a translate+uniform-scale transform.
// A negative scale flips min and max, so the result is re-normalized.
func localToWorld(b math32.Box3, pos math32.Vector3, s float32) math32.Box3 {
	out := math32.B3Empty()
	out.ExpandByPoint(b.Min.MulScalar(s).Add(pos))
	out.ExpandByPoint(b.Max.MulScalar(s).Add(pos))
	return out
}
