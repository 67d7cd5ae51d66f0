package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/copytext-go/pkg/copytext"
)

func newProcessorsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "processors",
		Short: "List the available sheet processors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range copytext.DefaultRegistry().Names() {
				marker := " "
				if name == f.processor {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
