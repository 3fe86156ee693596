package hasher

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

const (
	// DefaultArrayHashLength is the fingerprint length used by ArrayHash
	// when the requested length is not positive.
	DefaultArrayHashLength = 12

	// arrayFieldWidth is the width every array element is formatted to.
	arrayFieldWidth = 16
)

// Number is the set of element types ArrayHash accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// B32Hash returns the base32 encoded SHA-256 digest of s.
func B32Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base32.StdEncoding.EncodeToString(sum[:])
}

// B64Hash returns the base64 encoded SHA-256 digest of s.
func B64Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// ArrayHash fingerprints a numeric slice. The result is the lowercased
// base32 digest of the fixed-width text of all elements, cut to length
// characters.
func ArrayHash[T Number](values []T, length int) string {
	if length <= 0 {
		length = DefaultArrayHashLength
	}

	var b strings.Builder
	b.Grow(len(values) * arrayFieldWidth)
	for _, v := range values {
		b.WriteString(numfmt.Format(float64(v), arrayFieldWidth))
	}

	digest := strings.ToLower(B32Hash(b.String()))
	if length < len(digest) {
		digest = digest[:length]
	}
	return digest
}

var (
	sessionOnce sync.Once
	sessionID   string
)

// SessionID returns an 8-character identifier for the running process.
// The value is computed on first use and cached.
func SessionID() string {
	sessionOnce.Do(func() {
		sessionID = newSessionID(nodeNumber(), os.Getpid())
	})
	return sessionID
}

func newSessionID(node uint64, pid int) string {
	out := B64Hash(fmt.Sprintf("%d %d", node, pid))[3:11]
	return strings.NewReplacer("/", "-", "+", "=").Replace(out)
}

// nodeNumber returns the 48-bit node id (usually a hardware address) as an
// integer.
func nodeNumber() uint64 {
	var buf [8]byte
	copy(buf[2:], uuid.NodeID())
	return binary.BigEndian.Uint64(buf[:])
}
