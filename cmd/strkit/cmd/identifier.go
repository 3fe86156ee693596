package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/identifier"
)

func newValidCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "valid NAME",
		Short: "Report whether NAME is a valid, non-reserved symbol name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.IsValidName(args[0]))
		},
	}
}

func newFixNameCmd(a *app) *cobra.Command {
	var noDot bool
	c := &cobra.Command{
		Use:   "fixname NAME",
		Short: "Turn NAME into a valid symbol name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.FixName(args[0], !noDot))
		},
	}
	c.Flags().BoolVar(&noDot, "no-dot", false, "replace dots as well")
	return c
}

func newFixVarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fixvar TEXT",
		Short: "Turn TEXT into a plain variable name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.FixVarname(args[0]))
		},
	}
}

func newFixFileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fixfile NAME",
		Short: "Replace characters that are unsafe in file names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.FixFilename(args[0]))
		},
	}
}

func newFoldCmd(a *app) *cobra.Command {
	var replacement string
	c := &cobra.Command{
		Use:   "fold TEXT",
		Short: "Fold accented letters to ASCII and replace what remains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.StrictASCII(identifier.FoldASCII(args[0]), replacement))
		},
	}
	c.Flags().StringVar(&replacement, "replacement", "_", "replacement for each non-ASCII byte")
	return c
}

func newPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix WORD...",
		Short: "Print the longest common prefix of the words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, identifier.CommonPrefix(args))
		},
	}
}

func newReservedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reserved",
		Short: "List the reserved words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.emit(cmd, identifier.ReservedWords())
		},
	}
}
