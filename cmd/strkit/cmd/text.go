package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/delims"
	"github.com/dmitrymomot/strkit/pkg/textwrap"
	"github.com/dmitrymomot/strkit/pkg/version"
)

func newWrapCmd(a *app) *cobra.Command {
	var maxLen, soft int
	c := &cobra.Command{
		Use:   "wrap TEXT",
		Short: "Break TEXT into chunks at commas, blanks, periods or slashes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, textwrap.Break(args[0], textwrap.MaxLength(maxLen), textwrap.SoftLength(soft)))
		},
	}
	c.Flags().IntVar(&maxLen, "max", textwrap.DefaultMaxLength, "maximum chunk length")
	c.Flags().IntVar(&soft, "soft", textwrap.DefaultSoftLength, "how far before the maximum a break may be taken")
	return c
}

// span is the result of the delims command.
type span struct {
	Start int  `json:"start" yaml:"start"`
	End   int  `json:"end" yaml:"end"`
	OK    bool `json:"ok" yaml:"ok"`
}

func (s span) String() string {
	return fmt.Sprintf("%d %d %t", s.Start, s.End, s.OK)
}

func newDelimsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delims TEXT DELIM [MATCH]",
		Short: "Locate the first DELIM in TEXT and its unescaped closing MATCH",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var match string
			if len(args) == 3 {
				match = args[2]
			}
			start, end, ok := delims.Find(args[0], args[1], match)
			return a.emit(cmd, span{Start: start, End: end, OK: ok})
		},
	}
}

func newStripCmd(a *app) *cobra.Command {
	var comments string
	c := &cobra.Command{
		Use:   "strip TEXT",
		Short: "Remove surrounding quotes, or a trailing comment with --comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if comments != "" {
				return a.emit(cmd, delims.StripComments(args[0], comments[0]))
			}
			return a.emit(cmd, delims.StripQuotes(args[0]))
		},
	}
	c.Flags().StringVar(&comments, "comments", "", "strip from the first unquoted occurrence of this character")
	return c
}

func newVersionGECmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version-ge V1 V2",
		Short: "Report whether version V1 is at least V2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := version.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, c >= 0)
		},
	}
}
