package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/stellarlinkco/answerbench/internal/app"
	"github.com/stellarlinkco/answerbench/internal/store"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return formatTable, nil
	case "json":
		return formatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected table|json)", s)
	}
}

func formatEvalOutcome(outcome *app.EvalOutcome, format outputFormat) (string, error) {
	if outcome == nil || outcome.Record == nil {
		return "", fmt.Errorf("output: nil eval outcome")
	}

	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(outcome.Record, "", "  ")
		if err != nil {
			return "", fmt.Errorf("output: marshal eval: %w", err)
		}
		return string(b) + "\n", nil
	case formatTable:
		var sb strings.Builder
		rec := outcome.Record
		fmt.Fprintf(&sb, "Model Accuracy on Validation Set: %.2f\n", rec.Accuracy)
		fmt.Fprintf(&sb, "Dataset: %s (%d train / %d validation), provider: %s\n",
			rec.Dataset, rec.TrainSize, rec.ValidationSize, rec.Provider)
		for _, p := range rec.Predictions {
			status := "PASS"
			if !p.Correct {
				status = "FAIL"
			}
			fmt.Fprintf(&sb, "  [%s] %s: got %q, want %q\n", status, p.Question, p.Predicted, p.Expected)
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("output: unknown format %q", format)
	}
}

func formatEvalHistory(recs []*store.EvalRecord, format outputFormat) (string, error) {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("output: marshal history: %w", err)
		}
		return string(b) + "\n", nil
	case formatTable:
		if len(recs) == 0 {
			return "no evaluations recorded\n", nil
		}
		var buf bytes.Buffer
		w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATASET\tPROVIDER\tACCURACY\tCORRECT\tSTARTED")
		for _, rec := range recs {
			if rec == nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d/%d\t%s\n",
				rec.ID,
				rec.Dataset,
				rec.Provider,
				rec.Accuracy,
				rec.Correct,
				rec.Total,
				rec.StartedAt.Format("2006-01-02 15:04:05"),
			)
		}
		if err := w.Flush(); err != nil {
			return "", fmt.Errorf("output: flush table: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("output: unknown format %q", format)
	}
}
