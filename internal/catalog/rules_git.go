package catalog

// gitRules covers history-rewriting and forced-overwrite git operations
// that can destroy shared state.
func gitRules() []ruleDef {
	return []ruleDef{
		{
			id:          "git:force_push",
			group:       "git",
			pattern:     `^\s*git\s+push\s+.*(--force\b|-f\b)`,
			severity:    High,
			description: "force-pushes, potentially overwriting remote history",
			hint:        HintWord,
		},
		{
			id:          "git:push-force-with-lease",
			group:       "git",
			pattern:     `^\s*git\s+push\s+.*--force-with-lease`,
			severity:    Medium,
			description: "force-pushes with lease, overwriting remote history if unchanged since fetch",
			hint:        HintMath,
		},
		{
			id:          "git:reset-hard",
			group:       "git",
			pattern:     `^\s*git\s+reset\s+.*--hard\b`,
			severity:    Medium,
			description: "discards local working tree changes irreversibly",
			hint:        HintMath,
		},
		{
			id:          "git:clean-force",
			group:       "git",
			pattern:     `^\s*git\s+clean\s+.*-[a-zA-Z]*f[a-zA-Z]*d?`,
			severity:    Medium,
			description: "removes untracked files and directories from the working tree",
			hint:        HintMath,
		},
		{
			id:          "git:branch-delete-force",
			group:       "git",
			pattern:     `^\s*git\s+branch\s+.*-D\b`,
			severity:    Medium,
			description: "force-deletes a branch regardless of merge status",
			hint:        HintMath,
		},
		{
			id:          "git:filter-branch",
			group:       "git",
			pattern:     `^\s*git\s+filter-branch\b`,
			severity:    High,
			description: "rewrites repository history across many commits",
			hint:        HintWord,
		},
		{
			id:          "git:rebase-onto-main-force",
			group:       "git",
			pattern:     `^\s*git\s+push\s+.*origin\s+.*:(main|master)\b`,
			severity:    High,
			description: "pushes directly to a protected default branch ref",
			hint:        HintWord,
		},
	}
}
