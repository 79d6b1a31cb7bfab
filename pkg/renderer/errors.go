package renderer

import "errors"

// Configuration errors returned by NewCamera and NewRenderer. They are wrapped with
// the offending value, so compare with errors.Is.
var (
	ErrZeroSamples    = errors.New("samples per pixel must be positive")
	ErrNegativeDepth  = errors.New("max depth must not be negative")
	ErrFieldOfView    = errors.New("vertical field of view must be in [0, 360) degrees")
	ErrDefocusAngle   = errors.New("defocus angle must be in [0, 360) degrees")
	ErrDegenerateView = errors.New("camera view direction is degenerate")
	ErrFocusDistance  = errors.New("focus distance must be positive")
	ErrAspectRatio    = errors.New("aspect ratio must be positive")
	ErrImageSize      = errors.New("image dimensions must be positive")
)
