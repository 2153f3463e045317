package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vishnuv4/students-excel/internal/app/pairing"
	"github.com/vishnuv4/students-excel/internal/app/roster"
)

func newListSheetsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list-sheets",
		Short: "List the workbook's sheet names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			sheets, err := a.roster.ListSheets(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range sheets {
				cmd.Println(s)
			}
			return nil
		},
	}
}

func newNormalizeNamesCmd(flags *rootFlags) *cobra.Command {
	var (
		source       string
		target       string
		expected     int
		dropLeading  int
		dropTrailing int
	)
	cmd := &cobra.Command{
		Use:   "normalize-names",
		Short: `Convert the raw "Last, First" roster into display names`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			in := roster.NormalizeNamesInput{
				SourceSheet:      a.cfg.SourceSheet,
				TargetSheet:      a.cfg.NamesSheet,
				ExpectedCount:    expected,
				DropLeadingRows:  a.cfg.DropLeadingRows,
				DropTrailingRows: a.cfg.DropTrailingRows,
			}
			if source != "" {
				in.SourceSheet = source
			}
			if target != "" {
				in.TargetSheet = target
			}
			if cmd.Flags().Changed("drop-leading") {
				in.DropLeadingRows = dropLeading
			}
			if cmd.Flags().Changed("drop-trailing") {
				in.DropTrailingRows = dropTrailing
			}

			res, err := a.roster.NormalizeNames(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Println(infoStyle.Render(fmt.Sprintf("wrote %d names to sheet %q", len(res.Names), res.Sheet)))
			for _, n := range res.Names {
				cmd.Println(n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "sheet holding the raw export (default from config)")
	cmd.Flags().StringVar(&target, "target", "", "sheet to write display names to (default from config)")
	cmd.Flags().IntVar(&expected, "expected", 0, "expected number of students (required)")
	cmd.Flags().IntVar(&dropLeading, "drop-leading", 0, "leading export rows to discard (default from config)")
	cmd.Flags().IntVar(&dropTrailing, "drop-trailing", 0, "trailing export rows to discard (default from config)")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}

func newGeneratePairingCmd(flags *rootFlags) *cobra.Command {
	var (
		namesSheet string
		target     string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "generate-pairing",
		Short: "Draw a random pairing round and write it to a sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			in := pairing.GenerateRoundInput{
				NamesSheet:  a.cfg.NamesSheet,
				TargetSheet: target,
			}
			if namesSheet != "" {
				in.NamesSheet = namesSheet
			}
			if cmd.Flags().Changed("seed") {
				in.Seed = &seed
			}

			res, err := a.pairings.GenerateRound(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Println(infoStyle.Render(fmt.Sprintf("wrote %d pairs to sheet %q", len(res.Pairs), res.Label)))
			for _, p := range res.Pairs {
				cmd.Printf("%s\t%s\n", p.A, p.B)
			}
			if res.RoundID != "" {
				cmd.Println(infoStyle.Render("archived as round " + string(res.RoundID)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&namesSheet, "names", "", "sheet holding the roster (default from config)")
	cmd.Flags().StringVar(&target, "target", "", "sheet to write the round to (required)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed shuffle seed for a reproducible draw")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newCheckDuplicatesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check-duplicates <sheet> <sheet> [sheet...]",
		Short: "Report partnerships repeated across pairing sheets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			comparisons, err := a.pairings.CheckDuplicates(cmd.Context(), pairing.CheckDuplicatesInput{Sheets: args})
			if err != nil {
				return err
			}
			printComparisons(cmd, comparisons)
			return nil
		},
	}
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the archived pairing rounds",
	}

	historyCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List archived rounds, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			rounds, err := a.pairings.ListHistory(cmd.Context())
			if err != nil {
				return err
			}
			if len(rounds) == 0 {
				cmd.Println(infoStyle.Render("no archived rounds"))
				return nil
			}
			for _, r := range rounds {
				seed := "random"
				if r.Seed != nil {
					seed = fmt.Sprintf("seed %d", *r.Seed)
				}
				cmd.Printf("%s\t%d pairs\t%s\t%s\n", r.Label, len(r.Pairs), seed, r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "check <label> <label> [label...]",
		Short: "Report partnerships repeated across archived rounds",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			comparisons, err := a.pairings.CheckHistory(cmd.Context(), args)
			if err != nil {
				return err
			}
			printComparisons(cmd, comparisons)
			return nil
		},
	})

	return historyCmd
}

func printComparisons(cmd *cobra.Command, comparisons []pairing.Comparison) {
	clean := true
	for _, c := range comparisons {
		if len(c.Common) == 0 {
			continue
		}
		clean = false
		names := make([]string, 0, len(c.Common))
		for _, p := range c.Common {
			names = append(names, fmt.Sprintf("%s & %s", p.A, p.B))
		}
		cmd.Println(warnStyle.Render(fmt.Sprintf("%s and %s repeat: %s", c.RoundA, c.RoundB, strings.Join(names, ", "))))
	}
	if clean {
		cmd.Println(okStyle.Render("no repeated partnerships"))
	}
}
