package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// emit writes v to the command output in the selected format. In text
// format slices are written one element per line.
func (a *app) emit(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()

	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, v)
	}
}

func writeText(w io.Writer, v any) error {
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
