package neuroview

import "errors"

// Configuration errors returned by the constructors.
var (
	ErrNoRoot = errors.New("neuroview: camera rig requires a root node")
	ErrNoRig  = errors.New("neuroview: navigator requires a camera rig")
	ErrNoHost = errors.New("neuroview: navigator requires a pointer host")
)
