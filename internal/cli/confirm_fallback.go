package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/cmdward/cmdward/internal/decision"
)

// isInteractive reports whether stdin is a real terminal — used to decide
// whether the confirm challenge can fall back to a plain terminal prompt
// instead of a browser page.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalConfirm runs a plain yes/no prompt on stderr/stdin, used when
// --no-browser is set or stdin isn't a TTY and the command only needs a
// confirm-type challenge. Any command that asked for math or word still
// needs the browser page — typing a derived answer has no terminal
// equivalent worth building.
func terminalConfirm(command string, matches []decision.MatchRecord) bool {
	if !isInteractive() {
		fmt.Fprintln(os.Stderr, "cmdward: non-interactive session, denying by default")
		return false
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "command requires approval")
	fmt.Fprintf(os.Stderr, "  command: %s\n", command)
	if len(matches) > 0 {
		fmt.Fprintln(os.Stderr, "  triggered:")
		for _, m := range matches {
			fmt.Fprintf(os.Stderr, "    [%s] %s — %s\n", m.Severity, m.ID, m.Description)
		}
	}
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "approve? [y/N]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.TrimSpace(strings.ToLower(input)) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		default:
			fmt.Fprintln(os.Stderr, "please answer y or n")
		}
	}
}
