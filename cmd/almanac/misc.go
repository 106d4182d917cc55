package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackVoid/aoc2023/internal/config"
	"github.com/BlackVoid/aoc2023/internal/puzzle"
)

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List days with a registered solver",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, d := range puzzle.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "%02d\n", d)
			}
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
