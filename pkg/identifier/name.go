package identifier

import "strings"

// IsValidName reports whether name is a valid, optionally dotted, identifier
// that is not a reserved word.
func IsValidName(name string) bool {
	if IsReserved(name) {
		return false
	}
	return nameRegex.MatchString(strings.ToLower(name))
}

// FixName turns name into a valid name with minimal changes.
// Valid input is returned unchanged. Otherwise a leading underscore is tried
// first, then every character outside the permitted set is replaced with an
// underscore. When allowDot is false dots are replaced as well.
func FixName(name string, allowDot bool) string {
	if IsValidName(name) {
		return name
	}
	if prefixed := "_" + name; IsValidName(prefixed) {
		return prefixed
	}

	keep := isShortNameChar
	if allowDot {
		keep = isNameChar
	}

	fixed := strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return '_'
	}, name)

	if IsValidName(fixed) {
		return fixed
	}

	// Remaining problems: a segment starting with a digit, or an empty
	// segment around a dot.
	segments := strings.Split(fixed, ".")
	for i, seg := range segments {
		if seg == "" || !isNameStart(seg[0]) {
			segments[i] = "_" + seg
		}
	}
	return strings.Join(segments, ".")
}
