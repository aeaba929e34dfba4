package catalog

// credentialRules flags commands that read, print, or transmit secret
// material.
func credentialRules() []ruleDef {
	return []ruleDef{
		{
			id:          "credential:env-print-all",
			group:       "credential",
			pattern:     `^\s*(env|printenv|export)\s*$`,
			severity:    Medium,
			description: "prints the full process environment, which may include secrets",
			hint:        HintMath,
		},
		{
			id:          "credential:read-ssh-private-key",
			group:       "credential",
			pattern:     `\b(cat|less|more|head|tail|cp|scp|base64)\s+.*(?P<path>[~$][\w./\-]*\.ssh[\w./\-]*(id_rsa|id_ed25519|id_ecdsa)[\w./\-]*)`,
			severity:    High,
			description: "reads or copies an SSH private key",
			hint:        HintWord,
			predicates:  []Predicate{protectedPathPredicate("path", []string{"~/.ssh/**"})},
		},
		{
			id:          "credential:inline-aws-key",
			group:       "credential",
			pattern:     `\bAKIA[0-9A-Z]{16}\b`,
			severity:    High,
			description: "command line contains what looks like an AWS access key ID",
			hint:        HintWord,
		},
		{
			id:          "credential:inline-github-token",
			group:       "credential",
			pattern:     `\bgh[pousr]_[A-Za-z0-9]{36,}\b`,
			severity:    High,
			description: "command line contains what looks like a GitHub access token",
			hint:        HintWord,
		},
		{
			id:          "credential:inline-private-key-block",
			group:       "credential",
			pattern:     `-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`,
			severity:    Critical,
			description: "command line embeds a raw PEM private key block",
			hint:        HintBlock,
		},
		{
			id:          "credential:curl-with-bearer-token",
			group:       "credential",
			pattern:     `curl\s+.*-H\s+["']?Authorization:\s*Bearer\s+\S+`,
			severity:    Medium,
			description: "sends a bearer token over curl, visible in shell history and process list",
			hint:        HintMath,
		},
		{
			id:          "credential:history-grep-secret",
			group:       "credential",
			pattern:     `history\s*\|\s*grep\s+-i\s+['"]?(pass|secret|token|key)`,
			severity:    Medium,
			description: "searches shell history for credential-like terms",
			hint:        HintMath,
		},
	}
}
