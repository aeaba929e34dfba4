// Package execfacade runs an already-approved command, building the
// child's environment as an explicit allow-listed construction rather
// than a filtered copy of the parent process environment.
package execfacade

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/cmdward/cmdward/internal/redact"
)

// Result mirrors the engine's ALLOW outcome once the command has actually
// run: admission and execution are reported separately — a nonzero exit
// does not retroactively un-admit the command.
type Result struct {
	Allowed bool
	Stdout  string
	Stderr  string
	Error   string
}

// Run executes command through the host shell, in cwd (or the current
// directory if empty), with a child environment built from:
//
//	{name: os.Getenv(name) for name in envAllowList if set} ∪ environment
//
// Only names present in envAllowList are ever read from the parent
// process environment; everything else is excluded outright. Keys in
// environment win on collision with the allow-listed parent values. An
// empty envAllowList means only the explicit environment is used.
func Run(ctx context.Context, command, cwd string, environment map[string]string, envAllowList []string) Result {
	childEnv := buildChildEnv(environment, envAllowList)
	log.Debug().Strs("env", redact.RedactEnvVars(childEnv)).Msg("running approved command")

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = childEnv
	if cwd != "" {
		cmd.Dir = cwd
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Allowed: true,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	if err != nil {
		result.Error = err.Error()
		log.Debug().Err(err).Str("command", command).Msg("approved command exited with an error")
	}
	return result
}

func buildChildEnv(environment map[string]string, envAllowList []string) []string {
	merged := make(map[string]string, len(envAllowList)+len(environment))

	for _, name := range envAllowList {
		if v, ok := os.LookupEnv(name); ok {
			merged[name] = v
		}
	}
	for k, v := range environment {
		merged[k] = v
	}

	env := make([]string, 0, len(merged))
	for k, v := range merged {
		env = append(env, k+"="+v)
	}
	return env
}
