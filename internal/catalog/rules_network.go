package catalog

// networkRules covers commands that open outbound listeners, disable
// firewalls, or pipe remote content straight into a shell.
func networkRules() []ruleDef {
	return []ruleDef{
		{
			id:          "network:curl-pipe-shell",
			group:       "network",
			pattern:     `(curl|wget)\s+[^|]*\|\s*(sudo\s+)?(sh|bash|zsh|ash)\b`,
			severity:    Critical,
			description: "downloads a remote script and executes it directly in a shell",
			hint:        HintBlock,
		},
		{
			id:          "network:reverse-shell",
			group:       "network",
			pattern:     `\b(nc|ncat|netcat)\s+.*-e\s+/bin/(sh|bash)`,
			severity:    Critical,
			description: "spawns a reverse or bind shell over a raw socket",
			hint:        HintBlock,
		},
		{
			id:          "network:disable-firewall",
			group:       "network",
			pattern:     `^\s*(sudo\s+)?(ufw\s+disable|iptables\s+-F|systemctl\s+stop\s+firewalld)\b`,
			severity:    High,
			description: "disables or flushes the host firewall",
			hint:        HintWord,
		},
		{
			id:          "network:open-listener-bash-dev-tcp",
			group:       "network",
			pattern:     `/dev/tcp/(?P<host>[\w.\-]+)/(?P<port>\d+)`,
			severity:    High,
			description: "opens a raw TCP connection via bash's /dev/tcp pseudo-device",
			hint:        HintWord,
		},
		{
			id:          "network:scp-to-external-host",
			group:       "network",
			pattern:     `^\s*scp\s+.*@(?P<host>[\w.\-]+):`,
			severity:    Medium,
			description: "copies files to a remote host over scp",
			hint:        HintMath,
		},
		{
			id:          "network:ssh-strict-host-key-off",
			group:       "network",
			pattern:     `\bssh\s+.*StrictHostKeyChecking=no\b`,
			severity:    Medium,
			description: "disables host key verification for an ssh connection",
			hint:        HintMath,
		},
	}
}
