// ABOUTME: Entry point for the hichhki-admin CLI
// ABOUTME: Terminal console for store administrators

package main

import (
	"fmt"
	"os"

	"github.com/manish201258/Hichhki-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
