package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/answerbench/internal/app"
)

func newListCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured dataset's examples and split",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadState(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if st == nil || st.cfg == nil {
				return fmt.Errorf("list: missing config (internal error)")
			}

			ds, err := app.LoadDataset(st.cfg)
			if err != nil {
				return err
			}

			train, validation, err := ds.Split(st.cfg.Dataset.SplitRatio)
			if err != nil {
				return err
			}

			cmd.Printf("Dataset: %s (%d examples, %d train / %d validation)\n",
				ds.Name, ds.Len(), len(train), len(validation))
			for i, ex := range ds.Examples {
				part := "train"
				if i >= len(train) {
					part = "validation"
				}
				cmd.Printf("  [%s] %s -> %s\n", part, ex.Question, ex.Answer)
			}
			return nil
		},
	}
	return cmd
}
