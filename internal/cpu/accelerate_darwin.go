//go:build darwin && cgo && !purego

package cpu

// accelerateLinked is true when internal/native/arch/accelerate is part of the build.
const accelerateLinked = true
