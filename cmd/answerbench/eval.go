package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/answerbench/internal/app"
	"github.com/stellarlinkco/answerbench/internal/store"
)

type evalOptions struct {
	datasetPath string
	splitRatio  float64
	provider    string
	output      string
	noSave      bool
}

func newEvalCmd(st *cliState) *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the configured predictor on the validation set",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadState(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, st, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.datasetPath, "dataset", "", "dataset file (overrides config)")
	cmd.Flags().Float64Var(&opts.splitRatio, "split", -1, "train/validation split ratio between 0 and 1 (overrides config)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "predictor provider (overrides config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "output format: table|json")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "skip persisting the evaluation")

	return cmd
}

func runEval(cmd *cobra.Command, st *cliState, opts *evalOptions) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("eval: missing config (internal error)")
	}
	if opts == nil {
		return fmt.Errorf("eval: nil options")
	}

	if v := strings.TrimSpace(opts.datasetPath); v != "" {
		st.cfg.Dataset.Path = v
	}
	if opts.splitRatio >= 0 {
		if opts.splitRatio > 1 {
			return fmt.Errorf("eval: split must be between 0 and 1 (got %v)", opts.splitRatio)
		}
		st.cfg.Dataset.SplitRatio = opts.splitRatio
	}
	if v := strings.TrimSpace(opts.provider); v != "" {
		st.cfg.Predictor.DefaultProvider = v
	}

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	ds, err := app.LoadDataset(st.cfg)
	if err != nil {
		return err
	}

	prog, pred, err := app.NewProgram(st.cfg, ds)
	if err != nil {
		return err
	}

	var evalStore store.Store
	if !opts.noSave {
		evalStore, err = store.Open(st.cfg)
		if err != nil {
			return err
		}
		defer func() { _ = evalStore.Close() }()
	}

	outcome, err := app.Evaluate(cmd.Context(), st.cfg, ds, prog, pred.Name(), evalStore)
	if err != nil {
		return err
	}

	out, err := formatEvalOutcome(outcome, format)
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}
