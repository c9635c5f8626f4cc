package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/answerbench/internal/config"
)

type cliState struct {
	configPath string
	cfg        *config.Config
}

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderrWriter, err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &cliState{configPath: config.DefaultPath}

	root := &cobra.Command{
		Use:           "answerbench",
		Short:         "Evaluate question-answering programs against labeled datasets",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", st.configPath, "path to config file")

	root.AddCommand(newEvalCmd(st))
	root.AddCommand(newAskCmd(st))
	root.AddCommand(newHistoryCmd(st))
	root.AddCommand(newListCmd(st))
	return root
}

func loadState(st *cliState) error {
	cfg, err := config.LoadOrDefault(st.configPath)
	if err != nil {
		return err
	}
	st.cfg = cfg
	return nil
}
