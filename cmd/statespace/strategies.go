package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range search.Strategies() {
				kind := "uninformed"
				if s.Informed() {
					kind = "heuristic"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s, kind)
			}
			return nil
		},
	}
}
