package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path is present on disk. The default
// implementation is os.Stat-based; callers that want deterministic,
// disk-free evaluation (tests, dry runs) inject their own.
type Exists func(path string) bool

// RealFileExists is the default Exists capability, backed by the real
// filesystem.
func RealFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandHome expands a leading "~" or "~/" in path using homeDir.
func expandHome(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// matchProtectedGlob reports whether path matches pattern, supporting two
// glob suffixes beyond filepath.Match: "/**" (path is the prefix dir or
// anything beneath it) and "/*" (path is a direct, one-level child of the
// prefix dir).
func matchProtectedGlob(path, pattern string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		if !strings.HasPrefix(path, prefix+"/") {
			return false
		}
		remainder := strings.TrimPrefix(path, prefix+"/")
		return !strings.Contains(remainder, "/")
	}

	matched, _ := filepath.Match(pattern, path)
	return matched
}

// pathExistsPredicate builds a Predicate that checks whether the named
// capture group holds a path that exists on disk (after "~" expansion),
// using exists to probe the filesystem.
func pathExistsPredicate(captureName string, exists Exists) Predicate {
	homeDir, _ := os.UserHomeDir()
	return func(captures map[string]string) bool {
		raw, ok := captures[captureName]
		if !ok || raw == "" {
			return false
		}
		return exists(expandHome(raw, homeDir))
	}
}

// protectedPathPredicate builds a Predicate that fires when the named
// capture group's path falls under any of the given glob patterns — used
// by checks that should only apply when a command touches a
// known-sensitive location (~/.ssh/**, ~/.aws/**, ...).
func protectedPathPredicate(captureName string, patterns []string) Predicate {
	homeDir, _ := os.UserHomeDir()
	return func(captures map[string]string) bool {
		raw, ok := captures[captureName]
		if !ok || raw == "" {
			return false
		}
		path := filepath.Clean(expandHome(raw, homeDir))
		for _, pattern := range patterns {
			if matchProtectedGlob(path, expandHome(pattern, homeDir)) {
				return true
			}
		}
		return false
	}
}

// DefaultProtectedPaths lists the home-relative locations that should
// never be silently touched without a prompt, regardless of which check
// matched.
var DefaultProtectedPaths = []string{
	"~/.ssh/**",
	"~/.aws/**",
	"~/.gnupg/**",
	"~/.config/gcloud/**",
	"~/.kube/**",
}
