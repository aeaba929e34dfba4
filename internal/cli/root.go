package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdward/cmdward/internal/challenge"
	"github.com/cmdward/cmdward/internal/logger"
)

var (
	logPathFlag      string
	challengeFlag    string
	severityFlag     string
	propagateEnvFlag string
	noBrowserFlag    bool
	debugFlag        bool
)

var rootCmd = &cobra.Command{
	Use:   "cmdward",
	Short: "cmdward - shell-command safety gate",
	Long: `cmdward sits between a caller (IDE plugin, shell pre-exec hook, MCP tool
endpoint) and the operating system's command executor. It screens a
candidate command against a built-in catalog of risky patterns and
decides whether to allow it, challenge it with a short interactive
verification, or deny it outright.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debugFlag, isInteractive())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPathFlag, "log", "", "path to the audit log file (default: ~/.cmdward/audit.jsonl)")
	rootCmd.PersistentFlags().StringVar(&challengeFlag, "challenge", "confirm", "challenge type: confirm|math|word|block")
	rootCmd.PersistentFlags().StringVar(&severityFlag, "severity", "critical,high,medium", "comma-separated severities to act on")
	rootCmd.PersistentFlags().StringVar(&propagateEnvFlag, "propagate-env", "", "comma-separated environment variable names to inherit when executing")
	rootCmd.PersistentFlags().BoolVar(&noBrowserFlag, "no-browser", false, "answer confirm challenges with a terminal prompt instead of a browser page")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug-level logging")
}

// Execute runs the cmdward CLI.
func Execute() error {
	return rootCmd.Execute()
}

// resolveChallengeType maps the --challenge flag to a challenge.Kind,
// falling back to confirm on an unrecognized value.
func resolveChallengeType(raw string) challenge.Kind {
	switch challenge.Kind(raw) {
	case challenge.KindConfirm, challenge.KindMath, challenge.KindWord, challenge.KindBlock:
		return challenge.Kind(raw)
	default:
		fmt.Fprintf(os.Stderr, "cmdward: warning: unrecognized --challenge %q, falling back to confirm\n", raw)
		return challenge.KindConfirm
	}
}

func splitCSV(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
