// Command cmdward is a shell-command safety gate: it screens a candidate
// command against a built-in catalog of risky patterns and decides whether
// to allow it, challenge it interactively, or deny it outright.
package main

import (
	"fmt"
	"os"

	"github.com/cmdward/cmdward/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
