package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/version"
)

func TestGE(t *testing.T) {
	tests := []struct {
		name     string
		v1, v2   string
		expected bool
	}{
		{name: "greater minor", v1: "1.2.0", v2: "1.1.9", expected: true},
		{name: "equal", v1: "1.0.0", v2: "1.0.0", expected: true},
		{name: "lower major", v1: "0.9.0", v2: "1.0.0", expected: false},
		{name: "short form equals padded", v1: "1.2", v2: "1.2.0", expected: true},
		{name: "leading v", v1: "v2", v2: "1.9.9", expected: true},
		{name: "numeric not lexical", v1: "1.10.0", v2: "1.9.0", expected: true},
		{name: "pre-release sorts before release", v1: "1.0rc1", v2: "1.0", expected: false},
		{name: "release after pre-release", v1: "1.0", v2: "1.0rc1", expected: true},
		{name: "alpha before beta", v1: "1.0.0-alpha", v2: "1.0.0-beta", expected: false},
		{name: "fourth component", v1: "1.2.3.1", v2: "1.2.3", expected: true},
		{name: "fourth component lower", v1: "1.2.3", v2: "1.2.3.1", expected: false},
		{name: "release candidate numbers compare numerically", v1: "1.0rc10", v2: "1.0rc2", expected: true},
		{name: "beta numbers compare numerically", v1: "2.0b10", v2: "2.0b9", expected: true},
		{name: "lower release candidate", v1: "1.0rc2", v2: "1.0rc10", expected: false},
		{name: "alpha after dev", v1: "1.0a1", v2: "1.0.dev1", expected: true},
		{name: "dev before alpha", v1: "1.0.dev1", v2: "1.0a1", expected: false},
		{name: "beta after alpha spelled out", v1: "1.0b1", v2: "1.0alpha3", expected: true},
		{name: "release candidate before release", v1: "1.0rc10", v2: "1.0", expected: false},
		{name: "dev of a pre-release sorts before it", v1: "1.0a1.dev1", v2: "1.0a1", expected: false},
		{name: "post-release after release", v1: "1.0.post1", v2: "1.0", expected: true},
		{name: "release before post-release", v1: "1.0", v2: "1.0.post1", expected: false},
		{name: "post-release numbers", v1: "1.0.post10", v2: "1.0.post2", expected: true},
		{name: "post-release below next release", v1: "1.0.post1", v2: "1.0.1", expected: false},
		{name: "build metadata ignored", v1: "1.2.3+build5", v2: "1.2.3", expected: true},
		{name: "invalid left", v1: "abc", v2: "1.0", expected: false},
		{name: "invalid right", v1: "1.0", v2: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, version.GE(tt.v1, tt.v2))
		})
	}
}

func TestParse(t *testing.T) {
	v, err := version.Parse("1.0-rc1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major)
	assert.Equal(t, uint64(0), v.Minor)
	require.Len(t, v.Pre, 2)
	assert.Equal(t, "rc", v.Pre[0].VersionStr)
	assert.Equal(t, uint64(1), v.Pre[1].VersionNum)
	assert.Empty(t, v.Post)

	v, err = version.Parse("1.2.3.4.5")
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 5}, v.Extra)

	v, err = version.Parse(" 2.1.dev3 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Major)
	assert.Equal(t, uint64(1), v.Minor)
	require.Len(t, v.Pre, 2)
	assert.Equal(t, "dev", v.Pre[0].VersionStr)
	assert.Equal(t, uint64(3), v.Pre[1].VersionNum)

	v, err = version.Parse("1.0.POST2")
	require.NoError(t, err)
	assert.Empty(t, v.Pre)
	require.Len(t, v.Post, 2)
	assert.Equal(t, "post", v.Post[0].VersionStr)
	assert.Equal(t, uint64(2), v.Post[1].VersionNum)
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "abc", "1..2", "1.0+", "release-1"} {
		_, err := version.Parse(s)
		assert.ErrorIs(t, err, version.ErrInvalidVersion, "input %q", s)
	}
}

func TestCompare(t *testing.T) {
	c, err := version.Compare("1.0-rc1", "1.0rc1")
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = version.Compare("1.0.0-rc.1", "1.0rc1")
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = version.Compare("1.0.0-rc10", "1.0.0-rc.2")
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = version.Compare("1.01", "1.1")
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = version.Compare("2.0.0", "10.0.0")
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = version.Compare("1.0", "x")
	assert.ErrorIs(t, err, version.ErrInvalidVersion)
}
