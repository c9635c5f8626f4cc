package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/stellarlinkco/answerbench/api"
	"github.com/stellarlinkco/answerbench/internal/app"
	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/store"
)

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr

	loadConfig  = config.LoadOrDefault
	loadDataset = app.LoadDataset
	newProgram  = app.NewProgram
	openStore   = store.Open
	newServer   = api.NewServer
	runServer   = (*api.Server).Run
)

func main() {
	osExit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(stderrWriter)

	var addr string
	var configPath string
	fs.StringVar(&addr, "addr", ":8080", "listen address")
	fs.StringVar(&configPath, "config", config.DefaultPath, "path to config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	prog, pred, err := newProgram(cfg, ds)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}
	defer func() { _ = st.Close() }()

	srv, err := newServer(cfg, ds, prog, pred.Name(), st)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	if err := runServer(srv, addr); err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}
	return 0
}
