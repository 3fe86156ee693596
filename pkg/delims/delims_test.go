package delims_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/delims"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delim     string
		match     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{name: "simple quotes", input: `a"b"c`, delim: `"`, wantStart: 1, wantEnd: 3, wantOK: true},
		{name: "unterminated", input: `a"b`, delim: `"`, wantStart: 1, wantEnd: 3, wantOK: false},
		{name: "delimiter absent", input: "abc", delim: `"`, wantStart: -1, wantEnd: 3, wantOK: false},
		{name: "empty input", input: "", delim: `"`, wantStart: -1, wantEnd: 0, wantOK: false},
		{name: "empty delimiter", input: "abc", delim: "", wantStart: -1, wantEnd: 3, wantOK: false},
		{name: "escaped quote skipped", input: `x = "a\"b" + 1`, delim: `"`, wantStart: 4, wantEnd: 9, wantOK: true},
		{name: "double backslash re-enables match", input: `a"b\\"c`, delim: `"`, wantStart: 1, wantEnd: 5, wantOK: true},
		{name: "only escaped closer", input: `a"b\"c`, delim: `"`, wantStart: 1, wantEnd: 6, wantOK: false},
		{name: "brackets", input: "f(x[1], y)", delim: "[", match: "]", wantStart: 3, wantEnd: 5, wantOK: true},
		{name: "angle brackets", input: "<tag> rest", delim: "<", match: ">", wantStart: 0, wantEnd: 4, wantOK: true},
		{name: "multi character tokens", input: "x {{ name }} y", delim: "{{", match: "}}", wantStart: 2, wantEnd: 11, wantOK: true},
		{name: "triple quotes", input: `"""doc"""`, delim: `"""`, wantStart: 0, wantEnd: 8, wantOK: true},
		{name: "adjacent closer", input: `""`, delim: `"`, wantStart: 0, wantEnd: 1, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := delims.Find(tt.input, tt.delim, tt.match)
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
			assert.Equal(t, tt.wantOK, ok, "ok")
		})
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "double quotes", input: `"hello"`, expected: "hello"},
		{name: "single quotes", input: `'hello'`, expected: "hello"},
		{name: "triple double quotes", input: `"""doc string"""`, expected: "doc string"},
		{name: "triple single quotes", input: `'''doc'''`, expected: "doc"},
		{name: "plain", input: "plain", expected: "plain"},
		{name: "mismatched quotes", input: `"hello'`, expected: `"hello'`},
		{name: "opening quote only", input: `"hello`, expected: `"hello`},
		{name: "empty quoted", input: `""`, expected: ""},
		{name: "single quote character", input: `"`, expected: `"`},
		{name: "empty", input: "", expected: ""},
		{name: "only one level removed", input: `"'x'"`, expected: `'x'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, delims.StripQuotes(tt.input))
		})
	}
}

func TestIsLiteralString(t *testing.T) {
	assert.True(t, delims.IsLiteralString(`"abc"`))
	assert.True(t, delims.IsLiteralString(`'abc'`))
	assert.True(t, delims.IsLiteralString(`''`))
	assert.False(t, delims.IsLiteralString(`"abc'`))
	assert.False(t, delims.IsLiteralString(`abc`))
	assert.False(t, delims.IsLiteralString(`"`))
	assert.False(t, delims.IsLiteralString(""))
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		char     byte
		expected string
	}{
		{name: "trailing comment", input: "x = 1 # comment", char: '#', expected: "x = 1"},
		{name: "comment inside double quotes", input: `x = "a#b"`, char: '#', expected: `x = "a#b"`},
		{name: "comment inside single quotes", input: `x = 'a#b'`, char: '#', expected: `x = 'a#b'`},
		{name: "comment after quoted hash", input: `x = "a#b"  # real`, char: '#', expected: `x = "a#b"`},
		{name: "no comment", input: "x = 1", char: '#', expected: "x = 1"},
		{name: "whole line comment", input: "# only", char: '#', expected: ""},
		{name: "unterminated quote does not protect", input: `x = "a # b`, char: '#', expected: `x = "a`},
		{name: "mixed quotes", input: `s = "it's" # c`, char: '#', expected: `s = "it's"`},
		{name: "custom comment character", input: "a = 2 ; note", char: ';', expected: "a = 2"},
		{name: "tab before comment", input: "a\t\t#x", char: '#', expected: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, delims.StripComments(tt.input, tt.char))
		})
	}
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "x = 1", delims.StripComment("x = 1 # comment"))
	assert.Equal(t, `x = "a#b"`, delims.StripComment(`x = "a#b"`))
}
