package neuroview

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestNewNodeDefaults(t *testing.T) {
	rec := Record{ID: "m1", Label: "Model one"}
	n := NewModel(rec)
	if n.ID != "m1" {
		t.Errorf("ID = %q, want %q", n.ID, "m1")
	}
	if n.Name != "Model one" {
		t.Errorf("Name = %q, want label", n.Name)
	}
	if n.Kind != NodeKindModel {
		t.Errorf("Kind = %v, want model", n.Kind)
	}
	if n.Scale != 1 {
		t.Errorf("Scale = %v, want 1", n.Scale)
	}
	if !n.Visible {
		t.Error("Visible = false, want true")
	}
	if !n.Bounds.IsEmpty() {
		t.Error("model should have no geometry of its own")
	}
	if n.Data.ID != "m1" {
		t.Error("Data should carry the originating record")
	}
}

func TestNewNodeNameFallsBackToID(t *testing.T) {
	n := NewNeuron(Record{ID: "n7"})
	if n.Name != "n7" {
		t.Errorf("Name = %q, want %q", n.Name, "n7")
	}
}

func TestAddChildSetsParent(t *testing.T) {
	parent := NewGroup("p")
	child := NewLayer(Record{ID: "c"})
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should list child")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.AddChild(c)
	b.AddChild(c)
	if a.NumChildren() != 0 {
		t.Errorf("old parent children = %d, want 0", a.NumChildren())
	}
	if c.Parent != b {
		t.Error("child should belong to new parent")
	}
}

func TestAddChildPanics(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on nil child")
			}
		}()
		NewGroup("p").AddChild(nil)
	})
	t.Run("cycle", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on cycle")
			}
		}()
		a := NewGroup("a")
		b := NewGroup("b")
		a.AddChild(b)
		b.AddChild(a)
	})
}

func TestRemoveChild(t *testing.T) {
	p := NewGroup("p")
	c1 := NewGroup("c1")
	c2 := NewGroup("c2")
	p.AddChild(c1)
	p.AddChild(c2)
	p.RemoveChild(c1)
	if p.NumChildren() != 1 || p.Children()[0] != c2 {
		t.Errorf("children after remove = %v", p.Children())
	}
	if c1.Parent != nil {
		t.Error("removed child should have nil parent")
	}
}

func TestFindChildAndAncestor(t *testing.T) {
	model := NewModel(Record{ID: "m"})
	layer := NewLayer(Record{ID: "l"})
	neuron := NewNeuron(Record{ID: "n"})
	mesh := NewMesh("cube", math32.B3(0, 0, 0, 1, 1, 1))
	model.AddChild(layer)
	layer.AddChild(neuron)
	neuron.AddChild(mesh)

	if got := model.FindChild(NodeKindLayer, "l"); got != layer {
		t.Errorf("FindChild(layer, l) = %v, want layer", got)
	}
	if got := model.FindChild(NodeKindNeuron, "l"); got != nil {
		t.Error("FindChild should match on kind")
	}
	if got := mesh.Ancestor(NodeKindLayer); got != layer {
		t.Errorf("Ancestor(layer) = %v, want layer", got)
	}
	if got := layer.Ancestor(NodeKindLayer); got != layer {
		t.Error("Ancestor should include the node itself")
	}
	if got := layer.Ancestor(NodeKindNeuron); got != nil {
		t.Error("Ancestor should not look down the tree")
	}
}

func TestPathSkipsGroupsAndMeshes(t *testing.T) {
	root := NewGroup("root")
	model := NewModel(Record{ID: "mlp"})
	layer := NewLayer(Record{ID: "hidden"})
	neuron := NewNeuron(Record{ID: "n3"})
	mesh := NewMesh("cube", math32.B3(0, 0, 0, 1, 1, 1))
	root.AddChild(model)
	model.AddChild(layer)
	layer.AddChild(neuron)
	neuron.AddChild(mesh)

	tests := []struct {
		n    *Node
		want string
	}{
		{root, ""},
		{model, "mlp"},
		{layer, "mlp/hidden"},
		{neuron, "mlp/hidden/n3"},
		{mesh, "mlp/hidden/n3"},
	}
	for _, tt := range tests {
		if got := tt.n.Path(); got != tt.want {
			t.Errorf("%s.Path() = %q, want %q", tt.n.Name, got, tt.want)
		}
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	a1 := NewGroup("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Name)
		return n != a
	})
	want := []string{"root", "a", "b"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}
}

func TestHoverInOutAffordance(t *testing.T) {
	n := NewLayer(Record{ID: "l"})
	n.Color = Color{R: 0.2, G: 0.3, B: 0.4, A: 1}
	tint := Color{R: 1, G: 1, B: 0, A: 1}
	n.Hover = NewHighlight(tint)

	n.HoverIn()
	if !n.Hovered() {
		t.Error("Hovered = false after HoverIn")
	}
	if n.Color != tint {
		t.Errorf("Color = %v, want tint", n.Color)
	}
	n.HoverOut()
	if n.Hovered() {
		t.Error("Hovered = true after HoverOut")
	}
	if n.Color != (Color{R: 0.2, G: 0.3, B: 0.4, A: 1}) {
		t.Errorf("Color = %v, want restored", n.Color)
	}
}

func TestHoverIsIdempotent(t *testing.T) {
	var enters, leaves int
	n := NewModel(Record{ID: "m"})
	n.Hover = HoverFuncs{
		OnEnter: func(*Node) { enters++ },
		OnLeave: func(*Node) { leaves++ },
	}
	n.HoverIn()
	n.HoverIn()
	n.HoverOut()
	n.HoverOut()
	if enters != 1 || leaves != 1 {
		t.Errorf("enters=%d leaves=%d, want 1 and 1", enters, leaves)
	}
}

func TestDisposeRecursive(t *testing.T) {
	root := NewGroup("root")
	m := NewModel(Record{ID: "m"})
	l := NewLayer(Record{ID: "l"})
	root.AddChild(m)
	m.AddChild(l)

	m.Dispose()
	if !m.IsDisposed() || !l.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should leave its parent")
	}
	m.Dispose() // second call is a no-op
}

func TestDisposedNodeIgnoresHover(t *testing.T) {
	var enters int
	n := NewNeuron(Record{ID: "n"})
	n.Hover = HoverFuncs{OnEnter: func(*Node) { enters++ }}
	n.Dispose()
	n.HoverIn()
	if enters != 0 || n.Hovered() {
		t.Error("disposed node should not react to hover")
	}
}
