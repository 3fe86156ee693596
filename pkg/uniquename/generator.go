package uniquename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/strkit/pkg/identifier"
	"github.com/dmitrymomot/strkit/pkg/logger"
)

const (
	// DefaultMaxAttempts caps the registry probes of a single GroupName call.
	DefaultMaxAttempts = 10000

	// DefaultMaxLength is the default maximum length of a group name stem.
	DefaultMaxLength = 9

	// DefaultMinLength is the default minimum length of a group name stem.
	DefaultMinLength = 2
)

const (
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
	lowerAlnum    = lowerLetters + "0123456789"
	prefixLetters = "abcdefg"

	counterWrap   = 100
	stemRestarts  = 200
	initialRandom = 2
)

// Generator creates random variable names and collision-free group names.
// It is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	maxAttempts int
	log         *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the generator draw from r. The generator serialises access
// to r, but r must not be used elsewhere concurrently.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// WithMaxAttempts sets the number of registry probes after which GroupName
// gives up with ErrAttemptsExhausted.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to report registry probing.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator. Without WithSeed or WithRand the random source
// is seeded from the current time.
func New(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Seed reseeds the random source.
func (g *Generator) Seed(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rnd.Seed(seed)
}

// RandomVarname returns a random name of n characters: a lowercase letter
// followed by lowercase letters and digits. It returns "" when n < 1.
func (g *Generator) RandomVarname(n int) string {
	if n < 1 {
		return ""
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.randomVarname(n)
}

// randomVarname requires g.mu to be held.
func (g *Generator) randomVarname(n int) string {
	b := make([]byte, n)
	b[0] = lowerLetters[g.rnd.Intn(len(lowerLetters))]
	for i := 1; i < n; i++ {
		b[i] = lowerAlnum[g.rnd.Intn(len(lowerAlnum))]
	}
	return string(b)
}

type groupConfig struct {
	maxLength int
	minLength int
	registry  Registry
}

// GroupOption configures a single GroupName call.
type GroupOption func(*groupConfig)

// MaxLength sets the maximum length of the name stem (default 9).
func MaxLength(n int) GroupOption {
	return func(c *groupConfig) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// MinLength sets the minimum length of the name stem (default 2). Shorter
// stems are padded with random characters.
func MinLength(n int) GroupOption {
	return func(c *groupConfig) {
		if n > 0 {
			c.minLength = n
		}
	}
}

// WithRegistry makes GroupName return a name that r does not contain.
func WithRegistry(r Registry) GroupOption {
	return func(c *groupConfig) {
		c.registry = r
	}
}

// GroupName derives a short lowercase name from filename.
//
// The stem is filename folded to ASCII, stripped of everything but letters
// and digits, prefixed with a random letter if it does not start with one,
// padded to MinLength and cut to MaxLength. Without a registry the stem is
// returned as is. With one, the stem is tried first, then stem01 to stem99;
// after that the stem gets random characters appended and the counter starts
// again. Every 200 such restarts the random part grows by one character.
func (g *Generator) GroupName(ctx context.Context, filename string, opts ...GroupOption) (string, error) {
	cfg := groupConfig{
		maxLength: DefaultMaxLength,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	base := g.baseName(filename, cfg)
	if cfg.registry == nil {
		return base, nil
	}

	log := g.log.With(logger.Component("uniquename"))
	name, stem := base, base
	count, restarts, n := 0, 0, initialRandom
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		taken, err := cfg.registry.Contains(ctx, name)
		if err != nil {
			return "", errors.Join(ErrRegistry, err)
		}
		if !taken {
			if attempt > 1 {
				log.DebugContext(ctx, "group name resolved", logger.Name(name), logger.Attempts(attempt))
			}
			return name, nil
		}

		count++
		if count == counterWrap {
			count = 1
			restarts++
			if restarts > stemRestarts {
				restarts = 0
				n++
			}
			stem = base + g.RandomVarname(n)
		}
		name = fmt.Sprintf("%s%02d", stem, count)
	}

	log.WarnContext(ctx, "group name attempts exhausted", logger.Name(base), logger.Attempts(g.maxAttempts))
	return "", ErrAttemptsExhausted
}

func (g *Generator) baseName(filename string, cfg groupConfig) string {
	s := identifier.StrictASCII(identifier.FoldASCII(filename), "_")
	s = strings.ReplaceAll(strings.ToLower(identifier.FixVarname(s)), "_", "")

	g.mu.Lock()
	defer g.mu.Unlock()

	if s == "" || !strings.ContainsRune(lowerLetters, rune(s[0])) {
		s = string(prefixLetters[g.rnd.Intn(len(prefixLetters))]) + s
	}
	if len(s) < cfg.minLength {
		s += g.randomVarname(cfg.minLength - len(s))
	}
	if len(s) > cfg.maxLength {
		s = s[:cfg.maxLength]
	}
	return s
}

var defaultGenerator = New()

// RandomVarname calls RandomVarname on the default generator.
func RandomVarname(n int) string {
	return defaultGenerator.RandomVarname(n)
}

// GroupName calls GroupName on the default generator.
func GroupName(ctx context.Context, filename string, opts ...GroupOption) (string, error) {
	return defaultGenerator.GroupName(ctx, filename, opts...)
}

// Seed reseeds the default generator.
func Seed(seed int64) {
	defaultGenerator.Seed(seed)
}
