package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/config"
	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/mongo"
	"github.com/dmitrymomot/strkit/pkg/pg"
	"github.com/dmitrymomot/strkit/pkg/redis"
	"github.com/dmitrymomot/strkit/pkg/registry"
	"github.com/dmitrymomot/strkit/pkg/uniquename"
)

func newUniqueCmd(a *app) *cobra.Command {
	var (
		existing  []string
		maxSuffix int
	)
	c := &cobra.Command{
		Use:   "unique NAME",
		Short: "Suffix NAME with _1, _2, ... until it is not among the existing names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, uniquename.Unique(args[0], existing, maxSuffix))
		},
	}
	c.Flags().StringSliceVar(&existing, "existing", nil, "names already in use")
	c.Flags().IntVar(&maxSuffix, "max", uniquename.DefaultMaxSuffix, "largest suffix to try")
	return c
}

func newVarnameCmd(a *app) *cobra.Command {
	var (
		n    int
		seed int64
	)
	c := &cobra.Command{
		Use:   "varname",
		Short: "Print a random variable name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.emit(cmd, a.generator(cmd, seed).RandomVarname(n))
		},
	}
	c.Flags().IntVarP(&n, "length", "n", 6, "name length")
	c.Flags().Int64Var(&seed, "seed", 0, "seed the random source for a reproducible name")
	return c
}

func newGroupNameCmd(a *app) *cobra.Command {
	var (
		kind    string
		seed    int64
		maxLen  int
		minLen  int
		claim   bool
		migrate bool
	)
	c := &cobra.Command{
		Use:   "groupname FILE",
		Short: "Derive a short group name from a file name",
		Long: `Derive a short lowercase group name from a file name.

With --registry the name is checked against a shared registry and a numeric
and, if needed, random suffix is added until it is free. --claim records the
chosen name so later runs skip it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			k, err := registry.ParseKind(kind)
			if err != nil {
				return err
			}
			if claim && k == registry.KindNone {
				return ErrClaimWithoutRegistry
			}

			opts := []uniquename.GroupOption{uniquename.MaxLength(maxLen), uniquename.MinLength(minLen)}
			var store registry.Store
			if k != registry.KindNone {
				s, closeStore, err := a.openRegistry(ctx, k, migrate)
				if err != nil {
					return err
				}
				defer closeStore()
				store = s
				opts = append(opts, uniquename.WithRegistry(store))
			}

			name, err := a.generator(cmd, seed).GroupName(ctx, args[0], opts...)
			if err != nil {
				return err
			}
			if claim {
				if err := registry.Claim(ctx, []string{name}, store); err != nil {
					return err
				}
				a.log.InfoContext(ctx, "group name claimed", logger.Name(name), logger.Registry(string(k)))
			}
			return a.emit(cmd, name)
		},
	}
	c.Flags().StringVar(&kind, "registry", string(registry.KindNone), "shared registry: none, redis, postgres or mongo")
	c.Flags().Int64Var(&seed, "seed", 0, "seed the random source")
	c.Flags().IntVar(&maxLen, "max-len", uniquename.DefaultMaxLength, "maximum length of the name stem")
	c.Flags().IntVar(&minLen, "min-len", uniquename.DefaultMinLength, "minimum length of the name stem")
	c.Flags().BoolVar(&claim, "claim", false, "record the chosen name in the registry")
	c.Flags().BoolVar(&migrate, "migrate", false, "create the postgres table before use")
	return c
}

// generator returns a new generator, seeded from --seed when it was given and
// from the clock otherwise.
func (a *app) generator(cmd *cobra.Command, seed int64) *uniquename.Generator {
	opts := []uniquename.Option{
		uniquename.WithLogger(a.log),
		uniquename.WithMaxAttempts(a.settings.MaxAttempts),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, uniquename.WithSeed(seed))
	}
	return uniquename.New(opts...)
}

const registryCheckTimeout = 5 * time.Second

// openRegistry connects to the backend named by kind and runs its health
// check. The returned function releases the connection.
func (a *app) openRegistry(ctx context.Context, kind registry.Kind, migrate bool) (registry.Store, func(), error) {
	log := a.log.With(logger.Registry(string(kind)))

	var (
		store   registry.Store
		release func()
		check   func(context.Context) error
	)

	switch kind {
	case registry.KindRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		store = registry.NewRedis(client, a.settings.RegistryKey)
		release = func() { _ = client.Close() }
		check = redis.Healthcheck(client)

	case registry.KindPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if migrate {
			if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		store = registry.NewPostgres(pool, a.settings.RegistryTable, a.settings.RegistryColumn)
		release = pool.Close
		check = pg.Healthcheck(pool)

	case registry.KindMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg, a.settings.MongoDatabase, log)
		if err != nil {
			return nil, nil, err
		}
		store = registry.NewMongo(db.Collection(a.settings.MongoCollection), a.settings.RegistryColumn)
		release = func() {
			if err := db.Client().Disconnect(context.WithoutCancel(ctx)); err != nil {
				log.WarnContext(ctx, "mongo disconnect failed", logger.Error(err))
			}
		}
		check = mongo.Healthcheck(db.Client())

	default:
		return nil, nil, registry.ErrUnknownKind
	}

	if err := checkRegistry(ctx, log, check, release); err != nil {
		return nil, nil, err
	}
	return store, release, nil
}

// checkRegistry runs check within registryCheckTimeout and calls release
// when it fails.
func checkRegistry(ctx context.Context, log *slog.Logger, check func(context.Context) error, release func()) error {
	ctx, cancel := context.WithTimeout(ctx, registryCheckTimeout)
	defer cancel()

	if err := check(ctx); err != nil {
		log.ErrorContext(ctx, "registry healthcheck failed", logger.Error(err))
		release()
		return err
	}
	return nil
}
