package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/challenge"
	"github.com/cmdward/cmdward/internal/config"
	"github.com/cmdward/cmdward/internal/decision"
	"github.com/cmdward/cmdward/internal/engine"
	"github.com/cmdward/cmdward/internal/execfacade"
	"github.com/cmdward/cmdward/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "validate, challenge if needed, and execute a command",
	Long: `run is cmdward's full pipeline: validate the command, open a challenge
if the verdict requires one, and execute it on approval. The command and
its arguments should be provided after --.

Example:
  cmdward run -- rm -rf ./build
  cmdward run --challenge math -- git push --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")
	challengeType := resolveChallengeType(challengeFlag)

	cfg, err := config.Load(logPathFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	auditLogger, err := logger.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("init audit logger: %w", err)
	}
	defer auditLogger.Close()

	e := engine.New(catalog.MustLoad())
	opts := engineOptionsFromFlags()

	event := logger.AuditEvent{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Command:       command,
		ChallengeType: string(challengeType),
		Source:        "cli-run",
	}

	result, err := e.Validate(command, opts)
	if err != nil {
		event.Decision = "deny"
		event.Error = err.Error()
		logEvent(auditLogger, event)
		fmt.Fprintf(os.Stderr, "cmdward: %v\n", err)
		os.Exit(1)
	}

	for _, m := range result.Matches {
		event.TriggeredRules = append(event.TriggeredRules, m.ID)
	}
	if len(result.Matches) > 0 {
		event.HighestSeverity = string(decision.HighestSeverity(result))
	}

	if !result.ShouldChallenge {
		event.Decision = "allow"
		logEvent(auditLogger, event)
		return execute(command, cfg)
	}

	if result.ShouldDeny {
		event.Decision = "deny"
		event.Reasons = decision.Descriptions(result)
		logEvent(auditLogger, event)
		fmt.Fprintln(os.Stderr, "cmdward: blocked — security policy violation")
		for _, r := range event.Reasons {
			fmt.Fprintf(os.Stderr, "  - %s\n", r)
		}
		os.Exit(1)
	}

	if challengeType == challenge.KindBlock {
		event.Decision = "deny"
		event.Flagged = true
		logEvent(auditLogger, event)
		fmt.Fprintln(os.Stderr, "cmdward: blocked by policy")
		os.Exit(1)
	}

	approved, reason, sessionID := runChallenge(command, challengeType, result.Matches)
	event.Flagged = true
	event.ChallengeID = sessionID
	if !approved {
		event.Decision = "deny"
		event.Reasons = []string{reason}
		logEvent(auditLogger, event)
		fmt.Fprintf(os.Stderr, "cmdward: denied (%s)\n", reason)
		os.Exit(1)
	}

	event.Decision = "allow"
	logEvent(auditLogger, event)
	return execute(command, cfg)
}

// runChallenge resolves the pending challenge, using a plain terminal
// prompt for a confirm challenge in a non-interactive or --no-browser
// session, and the local HTTP challenge page otherwise. The returned
// session ID is empty for the terminal-prompt path, which never opens an
// HTTP session to correlate with.
func runChallenge(command string, challengeType challenge.Kind, matches []decision.MatchRecord) (bool, string, string) {
	if challengeType == challenge.KindConfirm && (noBrowserFlag || !isInteractive()) {
		if terminalConfirm(command, matches) {
			return true, "", ""
		}
		return false, "user denial", ""
	}

	res, err := challenge.Open(context.Background(), challenge.OpenParams{
		Kind:    challengeType,
		Command: command,
		Matches: matches,
		Timeout: 60 * time.Second,
	})
	if err != nil {
		return false, "challenge system error", ""
	}
	if res.Approved {
		return true, "", res.SessionID
	}
	if res.Reason == "" {
		return false, "user denial", res.SessionID
	}
	return false, res.Reason, res.SessionID
}

func logEvent(l *logger.AuditLogger, event logger.AuditEvent) {
	if err := l.Log(event); err != nil {
		fmt.Fprintf(os.Stderr, "cmdward: warning: failed to write audit log: %v\n", err)
	}
}

func execute(command string, cfg *config.Config) error {
	_ = cfg
	result := execfacade.Run(context.Background(), command, "", nil, splitCSV(propagateEnvFlag))
	if result.Stdout != "" {
		fmt.Print(result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(os.Stderr, result.Stderr)
	}
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "cmdward: command exited with an error: %s\n", result.Error)
	}
	return nil
}
