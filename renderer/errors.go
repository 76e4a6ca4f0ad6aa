package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims  = errors.New("renderer: frame dims must be > 0")
	ErrInvalidSampleRate = errors.New("renderer: samples per pixel must be > 0")
)
