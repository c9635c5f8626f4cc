package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/answerbench/internal/store"
)

func newHistoryCmd(st *cliState) *cobra.Command {
	var (
		datasetName string
		limit       int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored evaluation runs",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadState(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if st == nil || st.cfg == nil {
				return fmt.Errorf("history: missing config (internal error)")
			}
			format, err := parseOutputFormat(output)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}

			evalStore, err := store.Open(st.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = evalStore.Close() }()

			recs, err := evalStore.ListEvals(cmd.Context(), store.EvalFilter{
				Dataset: datasetName,
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			out, err := formatEvalHistory(recs, format)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetName, "dataset", "", "filter by dataset name")
	cmd.Flags().IntVar(&limit, "limit", 20, "max evaluations to show")
	cmd.Flags().StringVar(&output, "output", "", "output format: table|json")
	return cmd
}
