package challenge

// wordList is the closed set of all-uppercase, safety-themed words the
// word challenge picks from. The source keeps this list small and fixed;
// this one satisfies the same property with a dozen entries.
var wordList = []string{
	"VERIFIED",
	"SENTINEL",
	"GUARDIAN",
	"CHECKPOINT",
	"THRESHOLD",
	"BEACON",
	"PERIMETER",
	"WATCHTOWER",
	"SAFEGUARD",
	"CUSTODIAN",
	"OVERWATCH",
	"BULWARK",
}

func pickWord(n int) string {
	return wordList[n%len(wordList)]
}
