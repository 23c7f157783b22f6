//go:build darwin && cgo && !purego

package vforce

import _ "github.com/cwbudde/algo-vforce/internal/native/arch/accelerate"
