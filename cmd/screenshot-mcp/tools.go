package main

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/tkuutti/screenshot-mcp/encoding"
)

func toolsCmd(f *flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			d, err := newDispatcher(cfg)
			if err != nil {
				return err
			}

			js, err := encoding.Marshal(encoding.Mode(format), map[string]any{
				"tools": d.Catalog(),
			})
			if err != nil {
				return err
			}
			if !bytes.HasSuffix(js, []byte("\n")) {
				js = append(js, '\n')
			}
			_, err = cmd.OutOrStdout().Write(js)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(encoding.ModeJSON), "output format: json|yaml|toml")
	return cmd
}
