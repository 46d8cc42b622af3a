// main.go

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intuitionamiga/sps1620/internal/config"
	"github.com/intuitionamiga/sps1620/internal/output"
)

// errAssembly marks a run that completed but reported errors.
var errAssembly = errors.New("assembly failed")

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      colors,
		DisableColors:    !colors,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newRootCmd(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	var flags flagSet
	cmd := &cobra.Command{
		Use:   "sps1620 [options] source[.sps] ...",
		Short: "IBM 1620 Jr. SPS Assembler (v" + output.Version + ")",
		Long: "Assembles IBM 1620 SPS source into a listing and loadable core memory, " +
			"card deck and paper tape images.",
		Args:          cobra.RangeArgs(1, 15),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, flags.verbose)

			opts := config.Default()
			if path := config.File(flags.configFile); path != "" {
				if err := config.Load(path, &opts); err != nil {
					return err
				}
				log.Debugf("configuration loaded from %s", path)
			}
			config.ApplyEnv(&opts)
			flags.overlay(cmd.Flags(), &opts)

			r := &runner{log: log, console: stdout, now: now}
			return r.run(opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	flags.bind(cmd.Flags())
	return cmd
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, time.Now)
	if err := cmd.Execute(); err != nil {
		if errors.Cause(err) != errAssembly {
			fmt.Fprintf(os.Stderr, "*** Error: %v\n", err)
		}
		os.Exit(1)
	}
}
