package api

import "errors"

// ErrorInvalidKind arena construction requested with an unknown
// arena kind.
var ErrorInvalidKind = errors.New("invalidKind")

// ErrorNoSpace allocation cannot be satisfied, either the arena is
// fixed and full, or growing it failed.
var ErrorNoSpace = errors.New("noSpace")

// ErrorReleased operation attempted on an arena that is already
// released.
var ErrorReleased = errors.New("released")
