// SPDX-License-Identifier: MIT

// Command graphd serves the graph engine over HTTP and analyzes edge-list
// files offline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
