// Package splitter decomposes a shell command line into the individual
// sub-commands joined by top-level "&&", "||", "|", ";" and "&" operators,
// so each can be screened independently.
package splitter

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Split tokenizes command honoring single/double quotes and backslash
// escapes, and splits it at unquoted "&&", "||", "|", ";" and "&"
// (background, not "&&"). Leading/trailing whitespace of each part is
// trimmed and empty parts are dropped.
//
// Heredocs, process substitution and arithmetic expansion are never
// executed — command is parsed purely to find operator boundaries, and
// each returned part is a verbatim substring of the input.
//
// On unbalanced quotes or any other parse failure, the whole input is
// returned as a single part — deliberately permissive, since the matcher
// downstream still screens the unsplit text.
func Split(command string) []string {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash), syntax.KeepComments(true))

	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		whole := strings.TrimSpace(command)
		if whole == "" {
			return nil
		}
		return []string{whole}
	}

	var parts []string
	for _, stmt := range file.Stmts {
		collectStmt(stmt, command, &parts)
	}
	return parts
}

// collectStmt appends the leaf command segments of stmt to parts, in
// left-to-right order, recursing through "&&"/"||"/"|" chains.
func collectStmt(stmt *syntax.Stmt, src string, parts *[]string) {
	if bin, ok := stmt.Cmd.(*syntax.BinaryCmd); ok {
		collectStmt(bin.X, src, parts)
		collectStmt(bin.Y, src, parts)
		return
	}

	start := stmt.Pos().Offset()
	end := stmt.End().Offset()
	if stmt.Semicolon.IsValid() {
		// End() covers a trailing ";" or "&"; the part stops before it.
		end = stmt.Semicolon.Offset()
	}
	if end > uint(len(src)) {
		end = uint(len(src))
	}
	if start > end {
		return
	}

	part := strings.TrimSpace(src[start:end])
	if part != "" {
		*parts = append(*parts, part)
	}
}
