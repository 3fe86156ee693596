package identifier

import (
	"regexp"
	"slices"
	"strings"
)

var reservedWords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {}, "def": {},
	"del": {}, "elif": {}, "else": {}, "end": {}, "enddef": {}, "endfor": {},
	"endif": {}, "endtry": {}, "endwhile": {}, "eval": {}, "except": {}, "exec": {},
	"execfile": {}, "finally": {}, "for": {}, "from": {}, "global": {}, "group": {},
	"if": {}, "import": {}, "in": {}, "is": {}, "lambda": {}, "nonlocal": {},
	"not": {}, "or": {}, "pass": {}, "print": {}, "raise": {}, "return": {},
	"try": {}, "while": {}, "with": {}, "yield": {},
}

// Pre-compiled patterns
var (
	nameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)
)

const (
	badFileChars = ";~,`!%$@$&^?*#:\"/|'\\\t\r\n (){}[]<>"
	badVarChars  = badFileChars + "=+-."
)

// Translation tables mapping disallowed characters to the placeholder.
var (
	fileReplacer = newPlaceholderReplacer(badFileChars)
	varReplacer  = newPlaceholderReplacer(badVarChars)
)

func newPlaceholderReplacer(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, c := range chars {
		pairs = append(pairs, string(c), "_")
	}
	return strings.NewReplacer(pairs...)
}

// isShortNameChar reports whether r may appear in a dot-free name.
func isShortNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isNameChar(r rune) bool {
	return r == '.' || isShortNameChar(r)
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsReserved reports whether name is a reserved word. The check is case-sensitive.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// ReservedWords returns a sorted copy of the reserved word set.
func ReservedWords() []string {
	words := make([]string, 0, len(reservedWords))
	for w := range reservedWords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
