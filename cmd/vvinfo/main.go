// Command vvinfo inspects the vforce vector math backends.
//
// Usage:
//
//	vvinfo [--backend name] [--verbose] <command>
//
// Examples:
//
//	vvinfo backends
//	vvinfo ops --group trig
//	vvinfo eval pow 2,3,4,5 3,2,0.5,1
//	vvinfo eval --precision 32 sincos 0,0.5
//	vvinfo --backend generic compare sin
//
// Set VFORCE_NO_NATIVE=1 to hide native backends from automatic selection.
package main

import (
	"os"

	"github.com/cwbudde/algo-vforce/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
