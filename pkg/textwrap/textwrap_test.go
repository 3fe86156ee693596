package textwrap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/textwrap"
)

func TestBreak(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []textwrap.Option
		expected []string
	}{
		{
			name:     "short string is one chunk",
			input:    "short",
			expected: []string{"short"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "string of exactly max length",
			input:    "abcdefghij",
			opts:     []textwrap.Option{textwrap.MaxLength(10), textwrap.SoftLength(4)},
			expected: []string{"abcdefghij"},
		},
		{
			name:     "breaks after space past soft offset",
			input:    "aaaa bbbb cccc dddd",
			opts:     []textwrap.Option{textwrap.MaxLength(10), textwrap.SoftLength(4)},
			expected: []string{"aaaa bbbb ", "cccc dddd"},
		},
		{
			name:     "comma beats closer space",
			input:    "aaaaaa bb,cccccccc",
			opts:     []textwrap.Option{textwrap.MaxLength(10), textwrap.SoftLength(5)},
			expected: []string{"aaaaaa bb,", "cccccccc"},
		},
		{
			name:     "no break character cuts at max length",
			input:    "abcdefghijklmnopqrstuvwxyz",
			opts:     []textwrap.Option{textwrap.MaxLength(10), textwrap.SoftLength(4)},
			expected: []string{"abcdefghij", "klmnopqrst", "uvwxyz"},
		},
		{
			name:     "slash is a break character",
			input:    "/data/xafs/fe_foil/scan_001_dat",
			opts:     []textwrap.Option{textwrap.MaxLength(12), textwrap.SoftLength(4)},
			expected: []string{"/data/xafs/", "fe_foil/scan", "_001_dat"},
		},
		{
			name:     "period outranks slash",
			input:    "/data/xafs/fe_foil/scan_001.dat",
			opts:     []textwrap.Option{textwrap.MaxLength(12), textwrap.SoftLength(4)},
			expected: []string{"/data/xafs/fe_foil/scan_001.", "dat"},
		},
		{
			name:     "break character at the soft offset itself is skipped",
			input:    "aaaaaa,aaa bbbbbbbbbb",
			opts:     []textwrap.Option{textwrap.MaxLength(10), textwrap.SoftLength(4)},
			expected: []string{"aaaaaa,aaa ", "bbbbbbbbbb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textwrap.Break(tt.input, tt.opts...)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.input, strings.Join(got, ""))
		})
	}
}

func TestBreakDefaults(t *testing.T) {
	words := strings.Repeat("energy, ", 40)
	chunks := textwrap.Break(words)

	require.Greater(t, len(chunks), 1)
	assert.Equal(t, words, strings.Join(chunks, ""))
	for _, c := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(c, ","), "chunk %q should end at a comma", c)
		assert.GreaterOrEqual(t, len(c), textwrap.DefaultMaxLength-textwrap.DefaultSoftLength)
	}
}

func TestBreakReconstructsInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 1000),
		strings.Repeat("a.b/c d\te,", 77),
		"mixed " + strings.Repeat("é", 200),
	}
	for _, in := range inputs {
		chunks := textwrap.Break(in, textwrap.MaxLength(30), textwrap.SoftLength(10))
		assert.Equal(t, in, strings.Join(chunks, ""))
	}
}

func TestBreakSoftLengthLargerThanMax(t *testing.T) {
	got := textwrap.Break("ab cd ef gh", textwrap.MaxLength(4), textwrap.SoftLength(10))
	assert.Equal(t, "ab cd ef gh", strings.Join(got, ""))
	assert.Equal(t, "ab ", got[0])
}

func TestBreakNegativeSoftLength(t *testing.T) {
	in := strings.Repeat("x", 100)
	var got []string
	require.NotPanics(t, func() {
		got = textwrap.Break(in, textwrap.SoftLength(-50))
	})
	assert.Equal(t, []string{strings.Repeat("x", 90), strings.Repeat("x", 10)}, got)

	got = textwrap.Break("aaaa bbbb cccc dddd", textwrap.MaxLength(10), textwrap.SoftLength(-3))
	assert.Equal(t, "aaaa bbbb cccc dddd", strings.Join(got, ""))
	assert.Equal(t, "aaaa bbbb cccc ", got[0])
}
