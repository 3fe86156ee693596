package version

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/blang/semver"
)

// Label ranks within one release. Unknown labels sort between release
// candidates and post-releases, by name.
const (
	rankDev = iota
	rankAlpha
	rankBeta
	rankRC
	rankOther
	rankPost
)

func labelRank(s string) int {
	switch s {
	case "dev":
		return rankDev
	case "a", "alpha":
		return rankAlpha
	case "b", "beta":
		return rankBeta
	case "rc", "c", "pre", "preview":
		return rankRC
	case "post", "r", "rev":
		return rankPost
	}
	return rankOther
}

// splitTag breaks each identifier at letter/digit boundaries. Labels are
// lowercased and digit runs become numeric identifiers.
func splitTag(ids []string) ([]semver.PRVersion, error) {
	var out []semver.PRVersion
	for _, id := range ids {
		for _, chunk := range splitDigits(id) {
			if isDigit(chunk[0]) {
				n, err := strconv.ParseUint(chunk, 10, 64)
				if err != nil {
					return nil, err
				}
				out = append(out, semver.PRVersion{VersionNum: n, IsNum: true})
				continue
			}
			pr, err := semver.NewPRVersion(strings.ToLower(chunk))
			if err != nil {
				return nil, err
			}
			out = append(out, pr)
		}
	}
	return out, nil
}

func splitDigits(s string) []string {
	var out []string
	start := 0
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != isDigit(s[i-1]) {
			out = append(out, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// compareTag orders two split tags. Numbers compare numerically and sort
// before labels, labels compare by rank. When one tag is a prefix of the
// other the longer one is greater, unless its next identifier is a dev label.
func compareTag(a, b []semver.PRVersion) int {
	for i := range min(len(a), len(b)) {
		if c := compareIdent(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) > len(b):
		if isDev(a[len(b)]) {
			return -1
		}
		return 1
	case len(a) < len(b):
		if isDev(b[len(a)]) {
			return 1
		}
		return -1
	}
	return 0
}

func compareIdent(x, y semver.PRVersion) int {
	switch {
	case x.IsNumeric() && y.IsNumeric():
		return cmp.Compare(x.VersionNum, y.VersionNum)
	case x.IsNumeric():
		return -1
	case y.IsNumeric():
		return 1
	}
	rx, ry := labelRank(x.VersionStr), labelRank(y.VersionStr)
	if c := cmp.Compare(rx, ry); c != 0 {
		return c
	}
	if rx != rankOther {
		return 0
	}
	return strings.Compare(x.VersionStr, y.VersionStr)
}

func isDev(pr semver.PRVersion) bool {
	return !pr.IsNumeric() && labelRank(pr.VersionStr) == rankDev
}
