package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/hasher"
	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func newHashCmd(a *app) *cobra.Command {
	var b64 bool
	c := &cobra.Command{
		Use:   "hash TEXT",
		Short: "Print the base32 (or base64) encoded SHA-256 of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if b64 {
				return a.emit(cmd, hasher.B64Hash(args[0]))
			}
			return a.emit(cmd, hasher.B32Hash(args[0]))
		},
	}
	c.Flags().BoolVar(&b64, "b64", false, "use base64 instead of base32")
	return c
}

func newArrayHashCmd(a *app) *cobra.Command {
	var length int
	c := &cobra.Command{
		Use:   "arrayhash NUMBER...",
		Short: "Print a short fingerprint of a numeric array",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, s := range args {
				v, ok := numfmt.AsFloat(s)
				if !ok {
					return fmt.Errorf("%w: %q", ErrNotANumber, s)
				}
				values[i] = v
			}
			return a.emit(cmd, hasher.ArrayHash(values, length))
		},
	}
	c.Flags().IntVar(&length, "len", hasher.DefaultArrayHashLength, "fingerprint length")
	return c
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the identifier of this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.emit(cmd, hasher.SessionID())
		},
	}
}
