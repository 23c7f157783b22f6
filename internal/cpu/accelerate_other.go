//go:build !darwin || !cgo || purego

package cpu

const accelerateLinked = false
