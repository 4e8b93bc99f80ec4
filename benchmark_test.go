package neuroview

import (
	"testing"

	"cogentcore.org/core/math32"
)

// buildGrid lays out models x layers x neurons cubes under one root and
// returns the neuron-tier nodes.
func buildGrid(models, layers, neurons int) (*Node, []*Node, []*Node) {
	root := NewGroup("root")
	var ms, ns []*Node
	for i := range models {
		m := NewModel(Record{ID: "m"})
		m.Position = math32.Vec3(float32(i)*20, 0, 0)
		root.AddChild(m)
		ms = append(ms, m)
		for j := range layers {
			l := NewLayer(Record{ID: "l"})
			l.Position = math32.Vec3(float32(j)*2, 0, 0)
			m.AddChild(l)
			for k := range neurons {
				n := NewNeuron(Record{ID: "n"})
				n.Position = math32.Vec3(0, float32(k)*0.5, 0.5)
				l.AddChild(n)
				n.AddChild(NewMesh("cube", math32.B3(-0.1, -0.1, -0.1, 0.1, 0.1, 0.1)))
				ns = append(ns, n)
			}
		}
	}
	return root, ms, ns
}

func BenchmarkRaycastModels(b *testing.B) {
	_, models, _ := buildGrid(4, 8, 32)
	ray := math32.Ray{Origin: math32.Vec3(2, 2, 50), Dir: math32.Vec3(0, 0, -1)}
	var buf []rayHit
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		buf = raycast(ray, models, buf[:0])
	}
}

func BenchmarkSubtreeBounds(b *testing.B) {
	root, _, _ := buildGrid(4, 8, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = root.SubtreeBounds()
	}
}

func BenchmarkFrameAndSettle(b *testing.B) {
	root, models, _ := buildGrid(4, 8, 32)
	rig, err := NewCameraRig(root, DefaultRigConfig())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		rig.FocusOnObject(models[i%len(models)], FocusModel)
		rig.Update(rig.Duration() + 1)
	}
}
