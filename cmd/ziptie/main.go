// Command ziptie drives a ziptie with a toy world and reports the bundles it
// learns, either as a one-shot text report (run) or a live dashboard (watch).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
