package vforce

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var log atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	log.Store(&nop)
}

// SetLogger replaces the logger used for backend selection and chunking
// events. The package logs nothing until SetLogger is called.
func SetLogger(l zerolog.Logger) {
	log.Store(&l)
}

func logger() *zerolog.Logger {
	return log.Load()
}
