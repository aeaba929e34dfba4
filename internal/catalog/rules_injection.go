package catalog

// injectionRules flags commands that look like they carry instructions
// aimed at an AI agent rather than the shell — attempts to override prior
// instructions, disable safety tooling, or exfiltrate a system prompt.
func injectionRules() []ruleDef {
	return []ruleDef{
		{
			id:          "injection:ignore-previous-instructions",
			group:       "injection",
			pattern:     `(?i)ignore\s+(all\s+)?(previous|prior|above)\s+(instructions|rules|prompts)`,
			severity:    Critical,
			description: "text attempts to override prior agent instructions",
			hint:        HintBlock,
		},
		{
			id:          "injection:you-are-now",
			group:       "injection",
			pattern:     `(?i)you\s+are\s+now\s+(a|an)\s+\w+.{0,40}(unrestricted|no\s+rules|without\s+restrictions)`,
			severity:    Critical,
			description: "text attempts to re-role the agent into an unrestricted persona",
			hint:        HintBlock,
		},
		{
			id:          "injection:system-prompt-exfil",
			group:       "injection",
			pattern:     `(?i)(print|reveal|show|repeat)\s+(your\s+)?(system\s+prompt|initial\s+instructions)`,
			severity:    Medium,
			description: "text asks the agent to reveal its system prompt or hidden instructions",
			hint:        HintMath,
		},
		{
			id:          "injection:disable-safety-tooling",
			group:       "injection",
			pattern:     `(?i)(disable|bypass|turn\s+off)\s+(the\s+)?(safety|guard|security)\s+(check|filter|tool)`,
			severity:    High,
			description: "text asks the agent to disable its own safety tooling",
			hint:        HintWord,
		},
		{
			id:          "injection:indirect-from-fetched-content",
			group:       "injection",
			pattern:     `(?i)(curl|wget|fetch).{0,80}\|\s*.*(ignore|disregard)\s+(previous|above)\s+instructions`,
			severity:    Medium,
			description: "fetched remote content appears to carry instruction-override text",
			hint:        HintMath,
		},
		{
			id:          "injection:do-anything-now",
			group:       "injection",
			pattern:     `(?i)\b(DAN|do\s+anything\s+now)\b.{0,40}(mode|jailbreak)`,
			severity:    Critical,
			description: "text matches a known jailbreak-persona pattern",
			hint:        HintBlock,
		},
	}
}
