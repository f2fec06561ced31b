package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"labfixture/internal/domain/relations"
)

var relationFormats = []string{"yaml", "json"}

func NewRelationsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Print the relation model the fixture server honours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := relations.Default()
			if err := model.Validate(); err != nil {
				return fmt.Errorf("relation model is invalid: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(model); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(model)
			default:
				return fmt.Errorf("invalid format %q: must be one of %v", format, relationFormats)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml|json)")
	return cmd
}
