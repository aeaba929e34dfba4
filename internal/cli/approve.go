package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/challenge"
	"github.com/cmdward/cmdward/internal/engine"
)

var approveCmd = &cobra.Command{
	Use:   "approve <command>",
	Short: "validate a command and, if needed, run an interactive challenge",
	Long: `approve runs the full validate -> challenge pipeline over <command>. It
never executes the command itself — see "run" for that — it only decides
whether the command would be allowed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: approveCommand,
}

func init() {
	rootCmd.AddCommand(approveCmd)
}

type approveOutput struct {
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

func approveCommand(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")
	challengeType := resolveChallengeType(challengeFlag)

	e := engine.New(catalog.MustLoad())
	opts := engineOptionsFromFlags()

	var out approveOutput

	// A non-interactive or --no-browser confirm challenge never opens the
	// HTTP session; it prompts on the terminal instead, so it is handled
	// here rather than inside engine.Approve.
	if challengeType == challenge.KindConfirm && (noBrowserFlag || !isInteractive()) {
		result, err := e.Validate(command, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cmdward: %v\n", err)
			os.Exit(1)
		}
		switch {
		case !result.ShouldChallenge:
			out = approveOutput{Allowed: true}
		case result.ShouldDeny:
			out = approveOutput{Allowed: false, Reason: "security policy violation"}
		case terminalConfirm(command, result.Matches):
			out = approveOutput{Allowed: true}
		default:
			out = approveOutput{Allowed: false, Reason: "user denial"}
		}
	} else {
		res, err := e.Approve(context.Background(), command, opts, challengeType, 60*time.Second)
		if err != nil {
			engineErr, ok := engine.AsError(err)
			if !ok || engineErr.Kind != engine.ErrChallengeTimeout {
				fmt.Fprintf(os.Stderr, "cmdward: %v\n", err)
				os.Exit(1)
			}
		}
		out = approveOutput{Allowed: res.Allowed, Reason: res.Reason, SessionID: res.SessionID}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if !out.Allowed {
		os.Exit(1)
	}
	return nil
}
