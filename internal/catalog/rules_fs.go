package catalog

// fsRules covers destructive filesystem operations: recursive deletes,
// raw-device writes, permission changes on sensitive trees. exists backs
// the predicates that need to probe the real filesystem.
func fsRules(exists Exists) []ruleDef {
	return []ruleDef{
		{
			id:          "fs:recursively_delete",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?rm\s+.*-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*\s+/\s*$`,
			severity:    Critical,
			description: "recursive, forced delete of the filesystem root",
			hint:        HintBlock,
		},
		{
			id:          "fs:rm-rf-system-dir",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?rm\s+.*-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*\s+(/etc|/usr|/bin|/sbin|/lib|/boot|/var)(/\S*)?\s*$`,
			severity:    Critical,
			description: "recursive, forced delete under a core system directory",
			hint:        HintBlock,
		},
		{
			id:          "fs:rm-rf-home",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?rm\s+.*-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*\s+(~|\$HOME)(/\S*)?\s*$`,
			severity:    High,
			description: "recursive, forced delete under the home directory",
			hint:        HintWord,
		},
		{
			id:          "fs:dd-to-block-device",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?dd\s+.*\bof=(?P<target>/dev/(sd|nvme|hd|xvd)\S*)`,
			severity:    Critical,
			description: "writes raw bytes directly to a block device",
			hint:        HintBlock,
		},
		{
			id:          "fs:chmod-world-writable-recursive",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?chmod\s+.*-[a-zA-Z]*R[a-zA-Z]*\s+.*\b(777|a\+w|o\+w)\b`,
			severity:    High,
			description: "recursively grants world-writable permissions",
			hint:        HintWord,
		},
		{
			id:          "fs:protected-path-write",
			group:       "fs",
			pattern:     `^\s*(cat\s+>|>{1,2}|rm|cp|mv|chmod|chown|tee)\s+.*?(?P<path>[~$][\w./\-]*)`,
			severity:    High,
			description: "writes to or removes a path under a protected directory",
			hint:        HintWord,
			predicates: []Predicate{
				protectedPathPredicate("path", DefaultProtectedPaths),
				pathExistsPredicate("path", exists),
			},
		},
		{
			id:          "fs:mkfs-on-device",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?mkfs(\.\w+)?\s+.*\b/dev/\S+`,
			severity:    Critical,
			description: "formats a block device, destroying its contents",
			hint:        HintBlock,
		},
		{
			id:          "fs:shred-file",
			group:       "fs",
			pattern:     `^\s*(sudo\s+)?shred\s+.*-[a-zA-Z]*u[a-zA-Z]*\s+`,
			severity:    High,
			description: "securely deletes a file, making recovery impossible",
			hint:        HintWord,
		},
	}
}
