// Package delims scans strings for matching delimiter pairs and removes
// quoting and trailing comments from source-like text.
//
// Find honours backslash escaping: a closing delimiter directly preceded by
// a single backslash is skipped, while a doubled backslash escapes the escape
// and lets the delimiter close the span.
//
//	start, end, ok := delims.Find(`x = "a\"b" + 1`, `"`, "")
//	// start == 4, end == 9, ok == true
//
//	delims.StripQuotes(`"hello"`)             // hello
//	delims.StripComment(`x = 1  # note`)      // x = 1
//	delims.StripComment(`s = "a#b"`)          // s = "a#b"
//
// Nothing here returns an error: "not found" and "unterminated" are reported
// through the returned indexes and flag, and malformed input is returned
// unchanged by the strip helpers.
package delims
