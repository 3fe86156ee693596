// Package version orders version strings the way package metadata usually
// writes them: strict semantic versions, short forms such as "1.2", a leading
// "v", glued pre-release tags such as "1.0rc1" and release numbers with more
// than three components.
//
//	version.GE("1.2.0", "1.1.9")    // true
//	version.GE("1.0rc1", "1.0")     // false, pre-releases sort first
//	version.GE("1.0rc10", "1.0rc2") // true
//	version.GE("1.0.post1", "1.0")  // true
//	version.GE("1.2.3.1", "1.2.3")  // true
//
// Within one release, dev tags sort before alpha, beta and release
// candidates, and post-release tags sort after the release itself.
package version

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/blang/semver"
)

var looseRegex = regexp.MustCompile(`^v?(\d+(?:\.\d+)*)(?:[-_.]?([A-Za-z][0-9A-Za-z.\-_]*))?(?:\+([0-9A-Za-z.\-]+))?$`)

// Version is a parsed version. Components beyond major.minor.patch are kept
// in order and compared after the semantic version part. Pre holds the
// pre-release tag split at letter/digit boundaries ("rc10" becomes "rc", 10).
// Post holds a post-release tag, which sorts after the plain release.
type Version struct {
	semver.Version
	Extra []uint64
	Post  []semver.PRVersion
}

// Parse reads s as a version. Strict and tolerant semantic versions are
// handled by semver; other common forms are normalised first.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if sv, err := semver.ParseTolerant(s); err == nil {
		ids := make([]string, 0, len(sv.Pre))
		for _, pr := range sv.Pre {
			ids = append(ids, pr.String())
		}
		v := Version{Version: sv}
		if err := v.setTag(ids); err != nil {
			return Version{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidVersion, s), err)
		}
		return v, nil
	}

	m := looseRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	parts := strings.Split(m[1], ".")
	nums := make([]uint64, 0, max(len(parts), 3))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidVersion, s), err)
		}
		nums = append(nums, n)
	}
	for len(nums) < 3 {
		nums = append(nums, 0)
	}

	v := Version{
		Version: semver.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]},
		Extra:   nums[3:],
	}

	if m[2] != "" {
		tag := strings.NewReplacer("-", ".", "_", ".").Replace(m[2])
		if err := v.setTag(strings.Split(tag, ".")); err != nil {
			return Version{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidVersion, s), err)
		}
	}
	if m[3] != "" {
		v.Build = strings.Split(m[3], ".")
	}
	return v, nil
}

// setTag splits the tag identifiers into Pre, or into Post when the tag
// starts with a post-release label.
func (v *Version) setTag(ids []string) error {
	tag, err := splitTag(ids)
	if err != nil {
		return err
	}
	if len(tag) > 0 && !tag[0].IsNumeric() && labelRank(tag[0].VersionStr) == rankPost {
		v.Pre, v.Post = nil, tag
		return nil
	}
	v.Pre, v.Post = tag, nil
	return nil
}

// Compare returns -1, 0 or 1 as a is lower than, equal to or greater than b.
// Pre-release versions sort before the release and post-releases after it;
// build metadata is ignored.
func (a Version) Compare(b Version) int {
	if c := compareRelease(a, b); c != 0 {
		return c
	}
	if c := cmp.Compare(a.phase(), b.phase()); c != 0 {
		return c
	}
	if c := compareTag(a.Pre, b.Pre); c != 0 {
		return c
	}
	return compareTag(a.Post, b.Post)
}

func (v Version) phase() int {
	switch {
	case len(v.Pre) > 0:
		return -1
	case len(v.Post) > 0:
		return 1
	}
	return 0
}

// compareRelease orders the numeric release parts, including Extra, and
// ignores pre-release tags.
func compareRelease(a, b Version) int {
	ra := append([]uint64{a.Major, a.Minor, a.Patch}, a.Extra...)
	rb := append([]uint64{b.Major, b.Minor, b.Patch}, b.Extra...)
	for i := range max(len(ra), len(rb)) {
		var x, y uint64
		if i < len(ra) {
			x = ra[i]
		}
		if i < len(rb) {
			y = rb[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Compare parses both strings and compares them.
func Compare(v1, v2 string) (int, error) {
	a, err := Parse(v1)
	if err != nil {
		return 0, err
	}
	b, err := Parse(v2)
	if err != nil {
		return 0, err
	}
	return a.Compare(b), nil
}

// GE reports whether v1 >= v2. Unparseable input yields false.
func GE(v1, v2 string) bool {
	c, err := Compare(v1, v2)
	return err == nil && c >= 0
}
