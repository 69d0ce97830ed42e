// Package diagnostics turns a *parser.ParseError into a human-readable
// message, adding source context and "did you mean" keyword suggestions
// that the bare ParseError doesn't carry.
//
// This is presentation only: nothing here changes parsing behavior, and
// parser never imports this package.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/thrift-tools/thriftidl/parser"
)

// suggestionThreshold is the minimum Jaro-Winkler similarity before a
// keyword is offered as a suggestion. Below this, unrelated keywords
// would show up as noise more often than they'd help.
const suggestionThreshold = 0.8

// contextKeywords is the vocabulary suggestions are drawn from: every
// reserved word the lexer recognizes, from the construct-starting
// keywords through the primitive type names, true/false and cpp_type.
var contextKeywords = []string{
	"namespace", "include", "cpp_include", "const", "typedef", "enum",
	"struct", "union", "exception", "service", "extends", "required",
	"optional", "oneway", "throws", "void", "bool", "byte", "i8", "i16",
	"i32", "i64", "double", "string", "binary", "map", "list", "set",
	"true", "false", "cpp_type",
}

// Format renders err as a one-line diagnostic followed by a source
// snippet with a caret under the offending byte, in the vein of the
// teacher's own log.Fatalf-style CLI error reporting but with more
// context: a line:column position and, for UnexpectedToken errors caused
// by a misspelled keyword, a suggested correction.
func Format(err *parser.ParseError, source []byte) string {
	line, col, snippet := locate(source, err.Position)

	var b strings.Builder
	fmt.Fprintf(&b, "parse error at line %d, column %d: %s\n", line, col, err.Error())
	if snippet != "" {
		b.WriteString(snippet)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString("^\n")
	}
	if suggestion := didYouMean(err); suggestion != "" {
		fmt.Fprintf(&b, "did you mean %q?\n", suggestion)
	}
	return b.String()
}

// locate converts a byte offset into a 1-based line/column and returns
// the full text of that line for display.
func locate(source []byte, offset int) (line, col int, snippet string) {
	if offset > len(source) {
		offset = len(source)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1

	lineEnd := len(source)
	if idx := strings.IndexByte(string(source[lineStart:]), '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	return line, col, string(source[lineStart:lineEnd])
}

// didYouMean looks for a keyword close enough to the offending lexeme to
// be a plausible typo, using Jaro-Winkler similarity the way the
// teacher's transitive smetrics dependency is meant to be used elsewhere
// in the ecosystem for fuzzy identifier matching.
func didYouMean(err *parser.ParseError) string {
	if err.Kind != parser.UnexpectedToken || err.Lexeme == "" {
		return ""
	}
	best := ""
	bestScore := suggestionThreshold
	for _, kw := range contextKeywords {
		score := smetrics.JaroWinkler(strings.ToLower(err.Lexeme), kw, 0.7, 4)
		if score > bestScore {
			bestScore = score
			best = kw
		}
	}
	return best
}
