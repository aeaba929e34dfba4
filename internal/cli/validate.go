package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate <command>",
	Short: "check a command against the catalog without executing it",
	Long: `validate runs the split/match/filter/decide pipeline over <command> and
prints the resulting matches and verdict as JSON. It never executes the
command and never opens a challenge.`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")

	e := engine.New(catalog.MustLoad())
	result, err := e.Validate(command, engineOptionsFromFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdward: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func engineOptionsFromFlags() engine.Options {
	severities := make([]catalog.Severity, 0)
	for _, s := range splitCSV(severityFlag) {
		severities = append(severities, catalog.Severity(s))
	}
	return engine.Options{
		AllowedSeverities: severities,
		DenyPatternIDs:    nil,
	}
}
