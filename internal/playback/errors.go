package playback

import "errors"

// ErrInvalidSpeed indicates a non-positive tick delay.
var ErrInvalidSpeed = errors.New("playback: speed must be positive")
