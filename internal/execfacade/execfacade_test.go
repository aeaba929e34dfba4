package execfacade

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestRunEnvAllowListOnlyExposesListedVars(t *testing.T) {
	// /test/path leads PATH; the rest keeps sh and printenv findable.
	os.Setenv("PATH", "/test/path:"+os.Getenv("PATH"))
	os.Setenv("HOME", "/x")
	defer os.Unsetenv("HOME")

	result := Run(context.Background(), "printenv", "", map[string]string{"CUSTOM": "yes"}, []string{"PATH", "SSH_AUTH_SOCK"})

	if !result.Allowed {
		t.Fatalf("expected allowed=true, got %+v", result)
	}
	if !strings.Contains(result.Stdout, "PATH=/test/path") {
		t.Errorf("expected child PATH to be propagated, got: %s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "CUSTOM=yes") {
		t.Errorf("expected explicit CUSTOM to be propagated, got: %s", result.Stdout)
	}
	if strings.Contains(result.Stdout, "HOME=") {
		t.Errorf("expected HOME to be excluded, got: %s", result.Stdout)
	}
}

func TestRunEmptyAllowListUsesOnlyExplicitEnv(t *testing.T) {
	os.Setenv("PATH", "/should/not/appear")

	env := buildChildEnv(map[string]string{"ONLY": "this"}, nil)
	if len(env) != 1 || env[0] != "ONLY=this" {
		t.Errorf("expected exactly [ONLY=this], got %v", env)
	}
}

func TestRunExplicitEnvWinsOnCollision(t *testing.T) {
	os.Setenv("PATH", "/from/parent")

	env := buildChildEnv(map[string]string{"PATH": "/from/explicit"}, []string{"PATH"})
	if len(env) != 1 || env[0] != "PATH=/from/explicit" {
		t.Errorf("expected explicit environment to win, got %v", env)
	}
}

func TestRunNonZeroExitStillAllowed(t *testing.T) {
	result := Run(context.Background(), "exit 3", "", nil, nil)
	if !result.Allowed {
		t.Error("expected allowed=true even on nonzero exit")
	}
	if result.Error == "" {
		t.Error("expected a populated error on nonzero exit")
	}
}
