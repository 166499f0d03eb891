// Command uridump decomposes URIs into their components.
//
// Usage:
//
//	uridump [flags] [uri...]
//
// With no arguments and no action flags every built-in sample is dumped.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
