package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/identifier"
)

func TestFixFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "safe name unchanged", input: "scan_001.dat", expected: "scan_001.dat"},
		{name: "spaces and brackets", input: "my scan (2).dat", expected: "my_scan__2_.dat"},
		{name: "only last dot kept", input: "a.b.c.dat", expected: "a_b_c.dat"},
		{name: "path separators", input: "dir/sub\\file.txt", expected: "dir_sub_file.txt"},
		{name: "no dot", input: "plain", expected: "plain"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, identifier.FixFilename(tt.input))
		})
	}
}

func TestFixVarname(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already fine", input: "energy", expected: "energy"},
		{name: "dash and dot", input: "scan-001.dat", expected: "scan_001_dat"},
		{name: "leading digit", input: "2theta", expected: "_2theta"},
		{name: "trailing bad characters trimmed", input: "mu(E)", expected: "mu_E"},
		{name: "plus and equals", input: "a+b=c", expected: "a_b_c"},
		{name: "empty", input: "", expected: "_"},
		{name: "only bad characters", input: "...", expected: "_"},
		{name: "non ascii kept", input: "données", expected: "données"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, identifier.FixVarname(tt.input))
		})
	}
}

func TestStrictASCII(t *testing.T) {
	assert.Equal(t, "abc", identifier.StrictASCII("abc", "_"))
	assert.Equal(t, "caf__", identifier.StrictASCII("café", "_"))
	assert.Equal(t, "x??y", identifier.StrictASCII("xéy", "?"))
	assert.Equal(t, "", identifier.StrictASCII("", "_"))
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "donnees", identifier.FoldASCII("données"))
	assert.Equal(t, "Angstrom", identifier.FoldASCII("Ångström"))
	assert.Equal(t, "plain", identifier.FoldASCII("plain"))
	assert.Equal(t, "ø", identifier.FoldASCII("ø"))
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		expected string
	}{
		{name: "nil", words: nil, expected: ""},
		{name: "single word", words: []string{"scan"}, expected: "scan"},
		{name: "shared prefix", words: []string{"scan_001", "scan_002", "scan_010"}, expected: "scan_0"},
		{name: "nothing shared", words: []string{"abc", "xyz"}, expected: ""},
		{name: "one word is prefix of other", words: []string{"scan", "scanner"}, expected: "scan"},
		{name: "stops on rune boundary", words: []string{"é1", "è2"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, identifier.CommonPrefix(tt.words))
		})
	}
}
