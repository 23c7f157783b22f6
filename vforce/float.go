package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// Float is the element type constraint of every operation. It is closed:
// named types with a float underlying type do not satisfy it.
type Float = native.Float
