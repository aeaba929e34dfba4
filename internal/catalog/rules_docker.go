package catalog

// dockerRules covers container operations that discard state or escape
// container isolation.
func dockerRules() []ruleDef {
	return []ruleDef{
		{
			id:          "docker:system-prune-all",
			group:       "docker",
			pattern:     `^\s*docker\s+system\s+prune\s+.*-a\b`,
			severity:    High,
			description: "removes all unused docker images, containers, and networks",
			hint:        HintWord,
		},
		{
			id:          "docker:volume-prune",
			group:       "docker",
			pattern:     `^\s*docker\s+volume\s+(prune|rm)\b`,
			severity:    High,
			description: "removes docker volumes, which may destroy persisted data",
			hint:        HintWord,
		},
		{
			id:          "docker:run-privileged",
			group:       "docker",
			pattern:     `^\s*docker\s+run\s+.*--privileged\b`,
			severity:    High,
			description: "runs a container with full host device and kernel capability access",
			hint:        HintWord,
		},
		{
			id:          "docker:run-host-mount-root",
			group:       "docker",
			pattern:     `^\s*docker\s+run\s+.*-v\s+/:/`,
			severity:    Critical,
			description: "mounts the host root filesystem into the container",
			hint:        HintBlock,
		},
		{
			id:          "docker:rm-force-all",
			group:       "docker",
			pattern:     `^\s*docker\s+rm\s+.*-f\b.*\$\(docker\s+ps`,
			severity:    High,
			description: "force-removes every running or stopped container",
			hint:        HintWord,
		},
		{
			id:          "docker:compose-down-volumes",
			group:       "docker",
			pattern:     `^\s*docker(-compose|\s+compose)\s+down\s+.*-v\b`,
			severity:    Medium,
			description: "tears down a compose stack and deletes its named volumes",
			hint:        HintMath,
		},
	}
}
