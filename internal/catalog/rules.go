package catalog

// ruleDef is the plain-data shape rule files build; Load() compiles each
// one into a Check. Keeping this separate from Check lets rule authors
// write plain string patterns without touching regexp directly.
type ruleDef struct {
	id          string
	group       string
	pattern     string
	severity    Severity
	description string
	hint        ChallengeHint
	predicates  []Predicate
}

// allDefinitions assembles the full built-in rule set from each domain
// group's contribution. Order here is the catalog's iteration order.
// exists is threaded to the one group (fs) whose predicates probe the
// filesystem.
func allDefinitions(exists Exists) []ruleDef {
	var defs []ruleDef
	defs = append(defs, fsRules(exists)...)
	defs = append(defs, gitRules()...)
	defs = append(defs, k8sRules()...)
	defs = append(defs, dockerRules()...)
	defs = append(defs, awsRules()...)
	defs = append(defs, networkRules()...)
	defs = append(defs, credentialRules()...)
	defs = append(defs, injectionRules()...)
	defs = append(defs, obfuscationRules()...)
	defs = append(defs, exfiltrationRules()...)
	return defs
}
