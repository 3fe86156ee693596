package delims

import "strings"

const (
	escape       = `\`
	doubleEscape = `\\`
)

// Find locates the first occurrence of delim in s and the first unescaped
// occurrence of match after it. An empty match means delim closes the span.
//
// It returns the index of delim, the index of the last byte of match and
// true when the span is closed. When delim is missing start is -1; when the
// span is never closed end is len(s). In both cases ok is false.
func Find(s, delim, match string) (start, end int, ok bool) {
	if delim == "" {
		return -1, len(s), false
	}
	if match == "" {
		match = delim
	}

	start = strings.Index(s, delim)
	if start < 0 {
		return -1, len(s), false
	}

	for k := start + len(delim); k < len(s); k++ {
		if !strings.HasPrefix(s[k:], match) {
			continue
		}
		if escaped(s, k) {
			continue
		}
		return start, k + len(match) - 1, true
	}
	return start, len(s), false
}

// escaped reports whether the byte at k is preceded by a backslash that is
// not itself the second half of a doubled backslash.
func escaped(s string, k int) bool {
	if k < 1 || s[k-1:k] != escape {
		return false
	}
	return k < 2 || s[k-2:k] != doubleEscape
}

// IsLiteralString reports whether s is wrapped in a matching pair of single
// or double quotes.
func IsLiteralString(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q
}

// StripQuotes removes one level of enclosing quotes. Triple quotes are
// tried before single ones. Other input is returned unchanged.
func StripQuotes(s string) string {
	for _, q := range []string{`"""`, `'''`} {
		if len(s) >= 2*len(q) && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	if IsLiteralString(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// StripComment is StripComments with '#' as the comment character.
func StripComment(s string) string {
	return StripComments(s, '#')
}

// StripComments cuts s at the first occurrence of char that is not inside a
// quoted span and trims the trailing whitespace left behind. Quoted spans
// start at ' or " and end at the next identical quote; an unterminated quote
// protects nothing.
func StripComments(s string, char byte) string {
	if strings.IndexByte(s, char) < 0 {
		return s
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\'':
			if j := strings.IndexByte(s[i+1:], c); j >= 0 {
				i += j + 1
			}
		case c == char:
			return strings.TrimRight(s[:i], " \t\r\n\v\f")
		}
	}
	return s
}
