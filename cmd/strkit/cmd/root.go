// Package cmd implements the strkit command line interface.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/config"
	"github.com/dmitrymomot/strkit/pkg/logger"
)

// settings are read from the environment, see config.Load.
type settings struct {
	Env             string `env:"STRKIT_ENV" envDefault:"production"`
	LogLevel        string `env:"STRKIT_LOG_LEVEL" envDefault:"warn"`
	RegistryKey     string `env:"STRKIT_REGISTRY_KEY" envDefault:"strkit:names"`
	RegistryTable   string `env:"STRKIT_REGISTRY_TABLE" envDefault:"strkit_names"`
	RegistryColumn  string `env:"STRKIT_REGISTRY_COLUMN" envDefault:"name"`
	MongoDatabase   string `env:"STRKIT_MONGO_DB" envDefault:"strkit"`
	MongoCollection string `env:"STRKIT_MONGO_COLLECTION" envDefault:"names"`
	MaxAttempts     int    `env:"STRKIT_MAX_ATTEMPTS" envDefault:"10000"`
}

type commandKey struct{}

type app struct {
	settings settings
	log      *slog.Logger

	format  string
	envFile string
	verbose bool
}

// NewRootCmd builds the strkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "strkit",
		Short: "Identifier, naming, hashing and text helpers",
		Long: `strkit validates and repairs identifiers, derives unique group names
from file names, hashes strings and numeric arrays, wraps long strings and
scans quoted or bracketed text.

Group names can be made unique across machines with a shared registry kept
in Redis, PostgreSQL or MongoDB, configured through REDIS_*, PG_* and
MONGODB_* environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.format, "format", "o", formatText, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file first")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newValidCmd(a),
		newFixNameCmd(a),
		newFixVarCmd(a),
		newFixFileCmd(a),
		newFoldCmd(a),
		newPrefixCmd(a),
		newReservedCmd(a),
		newUniqueCmd(a),
		newVarnameCmd(a),
		newGroupNameCmd(a),
		newHashCmd(a),
		newArrayHashCmd(a),
		newSessionCmd(a),
		newWrapCmd(a),
		newDelimsCmd(a),
		newStripCmd(a),
		newVersionGECmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !validFormat(a.format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, a.format)
	}

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
		config.ResetCache()
	}
	if err := config.Load(&a.settings); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.settings.Env, "strkit"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
	}
	if a.settings.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(a.settings.LogLevel)))
	}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	a.log = logger.New(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.CommandPath()))
	return nil
}
