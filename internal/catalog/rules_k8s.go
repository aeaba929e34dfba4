package catalog

// k8sRules covers destructive kubectl operations against clusters and
// namespaces.
func k8sRules() []ruleDef {
	return []ruleDef{
		{
			id:          "k8s:delete-namespace",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+delete\s+namespace\b`,
			severity:    Critical,
			description: "deletes an entire Kubernetes namespace and everything in it",
			hint:        HintBlock,
		},
		{
			id:          "k8s:delete-all-resources",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+delete\s+.*--all\b`,
			severity:    High,
			description: "deletes all resources of a given kind in the target scope",
			hint:        HintWord,
		},
		{
			id:          "k8s:delete-pvc",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+delete\s+(pvc|persistentvolumeclaim)\b`,
			severity:    High,
			description: "deletes a persistent volume claim, risking data loss",
			hint:        HintWord,
		},
		{
			id:          "k8s:scale-to-zero",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+scale\s+.*--replicas=0\b`,
			severity:    Medium,
			description: "scales a workload down to zero replicas",
			hint:        HintMath,
		},
		{
			id:          "k8s:apply-production-context",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+.*--context[= ](?P<context>\S*prod\S*)`,
			severity:    High,
			description: "targets a context whose name indicates a production cluster",
			hint:        HintWord,
		},
		{
			id:          "k8s:drain-node",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+drain\b`,
			severity:    Medium,
			description: "evicts all pods from a node in preparation for maintenance",
			hint:        HintMath,
		},
		{
			id:          "k8s:delete-secret",
			group:       "k8s",
			pattern:     `^\s*kubectl\s+delete\s+secret\b`,
			severity:    High,
			description: "deletes a Kubernetes secret",
			hint:        HintWord,
		},
	}
}
