// Package accelerate binds the vforce routines to Apple's Accelerate framework
// (vForce, the vv* family).
//
// The package only contains code on darwin with cgo enabled and without the
// purego tag. Importing it registers the "accelerate" backend, which the
// registry prefers over the pure Go kernels whenever it is linked.
package accelerate
