package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/strkit/pkg/uniquename"
)

// Kind names a registry backend.
type Kind string

const (
	KindNone     Kind = "none"
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
	KindMongo    Kind = "mongo"
)

// ParseKind validates a backend name. The empty string means KindNone.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindNone, nil
	case KindNone, KindRedis, KindPostgres, KindMongo:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Claimer reserves names so later lookups report them as taken.
type Claimer interface {
	Add(ctx context.Context, names ...string) error
}

// Store is a registry that can also claim names.
type Store interface {
	uniquename.Registry
	Claimer
}

// Any reports a name as taken when at least one of registries contains it.
// Registries are consulted in order and the first error stops the lookup.
func Any(registries ...uniquename.Registry) uniquename.Registry {
	return uniquename.RegistryFunc(func(ctx context.Context, name string) (bool, error) {
		for _, r := range registries {
			taken, err := r.Contains(ctx, name)
			if err != nil {
				return false, err
			}
			if taken {
				return true, nil
			}
		}
		return false, nil
	})
}

// Claim records names in every claimer, joining the errors of those that
// fail.
func Claim(ctx context.Context, names []string, claimers ...Claimer) error {
	var errs []error
	for _, c := range claimers {
		if err := c.Add(ctx, names...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
