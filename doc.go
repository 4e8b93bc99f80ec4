// Package neuroview is an interactive 3D navigator for hierarchical model
// diagrams (models → layers → neurons), built on [Ebitengine].
//
// The package provides the navigation core: a [CameraRig] that animates a
// camera to frame any region of the scene, and a [Navigator] that turns
// pointer events into hover feedback and a drill-down focus state machine.
// Building the node hierarchy and laying it out in space is left to the
// caller.
//
// # Quick start
//
//	scene, err := neuroview.NewScene(neuroview.DefaultConfig())
//	// ... build models, layers and neurons under scene.Root() ...
//	nav, err := scene.Navigate(neuroview.NavigatorConfig{
//		Models: models, Layers: layers, Neurons: neurons,
//		OnModelSelect: func(r neuroview.Record) { fmt.Println("model", r.ID) },
//	})
//	scene.Rig().FocusOverview(nil)
//	err = neuroview.Run(scene, neuroview.RunConfig{Title: "neuroview"})
//
// # Scene graph
//
// Every element is a [Node]. Models, layers and neurons are pickable tiers;
// meshes created with [NewMesh] carry the geometry that rays actually hit.
// A hit climbs the Parent chain to the nearest node of the tier that is
// pickable in the current mode. Hover feedback is delegated to the node's
// [HoverAffordance], such as [Highlight].
//
// # Focus modes
//
// The navigator is always in one of [FocusOverview], [FocusModel],
// [FocusLayer] or [FocusNeuron]. Clicking drills one level down; clicking
// empty space returns to the overview, except from neuron focus, which
// steps back out to the layer. [Navigator.Goto] replays the same
// transitions from identifiers for deep links.
//
// # Camera
//
// Framing computes the bounding box of the target subtree, fits it to the
// field of view (or orthographic frustum) with a fill margin, and tweens
// position, look-at target, zoom and tilt with [gween]. Each property has a
// single animation slot, so a newer request always replaces an older one.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package neuroview
