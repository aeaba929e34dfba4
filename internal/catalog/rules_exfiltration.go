package catalog

// exfiltrationRules flag commands that move a large or sensitive local
// corpus to a remote destination.
func exfiltrationRules() []ruleDef {
	return []ruleDef{
		{
			id:          "exfiltration:tar-pipe-to-remote",
			group:       "exfiltration",
			pattern:     `tar\s+.*-c.*\|\s*(ssh|nc|ncat)\s+`,
			severity:    High,
			description: "archives a directory tree and streams it directly to a remote host",
			hint:        HintWord,
		},
		{
			id:          "exfiltration:rsync-to-external-host",
			group:       "exfiltration",
			pattern:     `rsync\s+.*-a.*\s+\S+@(?P<host>[\w.\-]+):`,
			severity:    Medium,
			description: "syncs a local directory tree to a remote host",
			hint:        HintMath,
		},
		{
			id:          "exfiltration:curl-upload-large-archive",
			group:       "exfiltration",
			pattern:     `curl\s+.*-F\s+["']?file=@\S*\.(tar|tar\.gz|tgz|zip)["']?`,
			severity:    High,
			description: "uploads an archive file to a remote endpoint",
			hint:        HintWord,
		},
		{
			id:          "exfiltration:dns-exfil-lookup",
			group:       "exfiltration",
			pattern:     `nslookup\s+(?P<label>[A-Za-z0-9+/=]{20,})\.`,
			severity:    High,
			description: "encodes data into a DNS lookup label, a common exfiltration channel",
			hint:        HintWord,
		},
		{
			id:          "exfiltration:pastebin-style-upload",
			group:       "exfiltration",
			pattern:     `curl\s+.*--data(-binary)?\s+.*@.*\s+https?://(pastebin|transfer\.sh|0x0\.st|ix\.io)`,
			severity:    High,
			description: "uploads local content to a public paste or file-transfer service",
			hint:        HintWord,
		},
		{
			id:          "exfiltration:mail-attachment-send",
			group:       "exfiltration",
			pattern:     `(mail|mutt|sendmail)\s+.*-a\s+\S+`,
			severity:    Medium,
			description: "emails a local file as an attachment",
			hint:        HintMath,
		},
	}
}
