// Package textwrap splits long strings into display-sized chunks at natural
// break characters.
package textwrap

import "strings"

const (
	DefaultMaxLength  = 90
	DefaultSoftLength = 20
)

// breakChars lists the characters a chunk may end with, highest priority
// first.
var breakChars = []byte{',', ' ', '\t', '.', '/'}

// Option configures Break.
type Option func(*config)

type config struct {
	maxLength  int
	softLength int
}

// MaxLength sets the length above which a string is split.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// SoftLength sets how far before MaxLength the search for a break character
// starts. Negative values search from MaxLength onwards.
func SoftLength(n int) Option {
	return func(c *config) {
		c.softLength = n
	}
}

// Break splits s into chunks. Strings shorter than MaxLength come back as a
// single chunk. Otherwise each chunk ends right after the first comma found
// past offset MaxLength-SoftLength, or failing that the first space, tab,
// period or slash, in that order. When none exists the chunk is cut at
// MaxLength. Joining the chunks yields s.
func Break(s string, opts ...Option) []string {
	cfg := &config{maxLength: DefaultMaxLength, softLength: DefaultSoftLength}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxLength <= 0 || len(s) < cfg.maxLength {
		return []string{s}
	}
	minLength := min(max(cfg.maxLength-cfg.softLength, 0), cfg.maxLength)

	var out []string
	for len(s) > cfg.maxLength {
		cut := cfg.maxLength
		if i := findBreak(s[minLength:]); i > 0 {
			cut = minLength + i + 1
		}
		out = append(out, s[:cut])
		s = s[cut:]
	}
	return append(out, s)
}

// findBreak returns the index of the highest priority break character in s,
// ignoring position 0, or -1.
func findBreak(s string) int {
	for _, c := range breakChars {
		if i := strings.IndexByte(s[1:], c); i >= 0 {
			return i + 1
		}
	}
	return -1
}
