// Command planckinfo evaluates Planck's law from the command line.
//
// Usage:
//
//	planckinfo <command> [flags]
//
// Wavelengths are given in micrometres and temperatures in kelvin.
//
// Examples:
//
//	planckinfo radiance -t 5778 -w 0.5
//	planckinfo integrate -t 1000 --min 1 --max 10 --exact
//	planckinfo curves --temperatures 3000,4500,6000 --format csv
//	planckinfo config --format yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
