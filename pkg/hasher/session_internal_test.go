package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID(t *testing.T) {
	assert.Equal(t, "iVsZjpsz", newSessionID(0x0242ac110002, 1234))
	assert.NotEqual(t, newSessionID(0x0242ac110002, 1234), newSessionID(0x0242ac110002, 1235))
}

func TestNewSessionIDReplacesUnsafeCharacters(t *testing.T) {
	for pid := range 500 {
		id := newSessionID(42, pid)
		assert.NotContains(t, id, "/")
		assert.NotContains(t, id, "+")
		assert.Len(t, id, 8)
	}
}
