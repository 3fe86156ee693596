package identifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FixFilename replaces characters that are unsafe in file names with
// underscores. All dots except the last one are replaced too, so the
// extension survives: "a.b.c.dat" becomes "a_b_c.dat".
func FixFilename(s string) string {
	t := fileReplacer.Replace(s)
	if n := strings.Count(t, "."); n > 1 {
		t = strings.Replace(t, ".", "_", n-1)
	}
	return t
}

// FixVarname converts s into a string usable as a plain variable name:
// unsafe characters become underscores, a leading non-letter gets an
// underscore prefix and trailing underscores are dropped.
// The result is never empty.
func FixVarname(s string) string {
	t := varReplacer.Replace(s)
	if t == "" {
		return "_"
	}
	if !isLetter(t[0]) {
		t = "_" + t
	}
	t = strings.TrimRight(t, "_")
	if t == "" {
		return "_"
	}
	return t
}

// StrictASCII replaces every byte of the UTF-8 encoding of s that is outside
// the ASCII range with replacement. A multi-byte character therefore yields
// several replacements.
func StrictASCII(s, replacement string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			b.WriteByte(s[i])
			continue
		}
		b.WriteString(replacement)
	}
	return b.String()
}

// FoldASCII strips combining marks so that accented Latin letters map to
// their base letter ("données" becomes "donnees"). Characters without a
// decomposition are left alone; combine with StrictASCII for pure ASCII.
func FoldASCII(s string) string {
	// Chained transformers keep state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CommonPrefix returns the longest common leading substring of words.
func CommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		i := 0
		for i < len(prefix) && i < len(w) && prefix[i] == w[i] {
			i++
		}
		for i > 0 && i < len(prefix) && !utf8.RuneStart(prefix[i]) {
			i--
		}
		prefix = prefix[:i]
		if prefix == "" {
			break
		}
	}
	return prefix
}
