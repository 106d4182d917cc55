package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/BlackVoid/aoc2023/internal/almanac"
)

func newTraceCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "trace [seed...]",
		Short: "Print the value of seeds in every domain (default: the listed seeds)",
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.parseAlmanac(&in)
			if err != nil {
				return err
			}

			seeds := alm.Seeds
			if len(args) > 0 {
				seeds = make([]uint64, 0, len(args))

				for _, arg := range args {
					n, err := strconv.ParseUint(arg, 10, 64)
					if err != nil {
						return fmt.Errorf("invalid seed %q: %w", arg, err)
					}

					seeds = append(seeds, n)
				}
			}

			for _, seed := range seeds {
				steps := alm.Trace(seed)

				parts := make([]string, 0, len(steps))
				for _, st := range steps {
					parts = append(parts, fmt.Sprintf("%s %d", st.Domain, st.Value))
				}

				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))
			}

			return nil
		},
	}

	in.register(cmd)

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report malformed or suspicious almanac content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := a.readInput(&in)
			if err != nil {
				return err
			}

			alm, diags := almanac.ParseWithDiagnostics(input)
			if alm != nil {
				diags.Merge(*almanac.Check(alm))
			}

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				return errors.New("almanac is invalid")
			}

			fmt.Fprintf(out, "ok: %d seeds, %d stages, %d warnings\n",
				len(alm.Seeds), len(alm.Stages), len(diags.Warnings))

			return nil
		},
	}

	in.register(cmd)

	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed almanac",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alm, err := a.parseAlmanac(&in)
			if err != nil {
				return err
			}

			cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			cs.Fdump(cmd.OutOrStdout(), alm.Seeds)

			for _, st := range alm.Ordered() {
				cs.Fdump(cmd.OutOrStdout(), st)
			}

			return nil
		},
	}

	in.register(cmd)

	return cmd
}

func (a *app) parseAlmanac(in *inputFlags) (*almanac.Almanac, error) {
	input, err := a.readInput(in)
	if err != nil {
		return nil, err
	}

	return almanac.Parse(input)
}
