package uniquename_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/uniquename"
)

func TestUnique(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		existing  []string
		maxSuffix int
		expected  string
	}{
		{name: "absent name unchanged", input: "foo", existing: []string{"bar", "baz"}, expected: "foo"},
		{name: "empty list", input: "foo", existing: nil, expected: "foo"},
		{name: "first suffix", input: "foo", existing: []string{"foo", "bar"}, expected: "foo_1"},
		{name: "skips taken suffixes", input: "foo", existing: []string{"foo", "foo_1", "foo_2"}, expected: "foo_3"},
		{name: "gap is filled", input: "foo", existing: []string{"foo", "foo_2"}, expected: "foo_1"},
		{name: "all collide returns last", input: "foo", existing: []string{"foo", "foo_1", "foo_2"}, maxSuffix: 2, expected: "foo_2"},
		{name: "custom limit", input: "x", existing: []string{"x", "x_1"}, maxSuffix: 5, expected: "x_2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uniquename.Unique(tt.input, tt.existing, tt.maxSuffix))
		})
	}
}

func TestNameSet(t *testing.T) {
	ctx := context.Background()
	s := uniquename.NewNameSet("a", "b")
	s.Add("c", "a")
	assert.Equal(t, 3, s.Len())

	ok, err := s.Contains(ctx, "c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Contains(ctx, "d")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistryFunc(t *testing.T) {
	var seen string
	r := uniquename.RegistryFunc(func(_ context.Context, name string) (bool, error) {
		seen = name
		return name == "taken", nil
	})

	ok, err := r.Contains(context.Background(), "taken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "taken", seen)
}
