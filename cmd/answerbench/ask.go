package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/answerbench/internal/app"
)

func newAskCmd(st *cliState) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the configured predictor a single question",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadState(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if st == nil || st.cfg == nil {
				return fmt.Errorf("ask: missing config (internal error)")
			}
			question := strings.TrimSpace(args[0])
			if question == "" {
				return fmt.Errorf("ask: empty question")
			}
			if v := strings.TrimSpace(provider); v != "" {
				st.cfg.Predictor.DefaultProvider = v
			}

			ds, err := app.LoadDataset(st.cfg)
			if err != nil {
				return err
			}
			prog, _, err := app.NewProgram(st.cfg, ds)
			if err != nil {
				return err
			}

			answer, err := prog.Run(cmd.Context(), question)
			if err != nil {
				return err
			}

			cmd.Printf("Question: %s\n", question)
			cmd.Printf("Answer: %s\n", answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "predictor provider (overrides config)")
	return cmd
}
