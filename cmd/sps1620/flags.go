// flags.go

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
	"strings"

	"github.com/spf13/pflag"

	"github.com/intuitionamiga/sps1620/internal/config"
)

const (
	artifactOn  = "on"
	artifactOff = "off"
)

// artifactValue is a flag that enables an artifact, names its file, or
// turns it off: --cmem, --cmem=prog.cmem, --cmem=off.
type artifactValue struct {
	a *config.Artifact
}

func (v artifactValue) String() string {
	if v.a == nil || !v.a.Enabled {
		return artifactOff
	}
	if v.a.Path != "" {
		return v.a.Path
	}
	return artifactOn
}

func (v artifactValue) Set(s string) error {
	switch strings.ToLower(s) {
	case artifactOn, "true", "":
		v.a.Enabled = true
	case artifactOff, "false", "none":
		v.a.Enabled = false
		v.a.Path = ""
	default:
		v.a.Enabled = true
		v.a.Path = s
	}
	return nil
}

func (v artifactValue) Type() string { return "file" }

// flagSet holds the command line values before they are layered over the
// file and environment settings.
type flagSet struct {
	configFile string
	verbose    bool
	opts       config.Options
}

func (f *flagSet) bind(fs *pflag.FlagSet) {
	d := config.Default()
	f.opts = d

	fs.StringVarP(&f.configFile, "config", "c", "", "TOML configuration file (default $SPS1620_CONFIG or ./"+config.DefaultFile+")")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log debug detail")

	fs.StringVarP(&f.opts.Format, "format", "f", d.Format, "Source format: fixed (columns 6, 12, 16) or freeform")
	fs.IntVarP(&f.opts.Model, "model", "m", d.Model, "IBM 1620 model: 1 or 2")
	fs.IntVar(&f.opts.Memory, "memory", d.Memory, "Memory size: 20, 40, 60, 80 or 100 thousand digits")
	fs.StringVar(&f.opts.Tabs, "tabs", d.Tabs, "Freeform tab stops: every n columns, or n1,n2,... (default 8)")
	fs.BoolVar(&f.opts.Tables, "tables", d.Tables, "Include the arithmetic tables")
	fs.BoolVar(&f.opts.Halt, "halt", d.Halt, "Halt at the end of the load")
	fs.BoolVar(&f.opts.Warnings, "warn", d.Warnings, "Produce warning messages")
	fs.BoolVar(&f.opts.Pass1Errors, "pass1-errors", d.Pass1Errors, "Print pass 1 errors")
	fs.BoolVar(&f.opts.SymbolDivide, "symbol-divide", d.SymbolDivide, "Allow / in symbols; no divide in expressions")

	artifacts := []struct {
		name, usage string
		a           *config.Artifact
	}{
		{"lst", "Listing file (on, off or a path)", &f.opts.Listing},
		{"cmem", "Core memory file (on, off or a path)", &f.opts.Cmem},
		{"crd", "Card deck file (on, off or a path)", &f.opts.Crd},
		{"pt", "Paper tape file (on, off or a path)", &f.opts.Pt},
		{"sym", "YAML symbol map (on, off or a path)", &f.opts.Symbols},
	}
	for _, art := range artifacts {
		fl := fs.VarPF(artifactValue{art.a}, art.name, "", art.usage)
		fl.NoOptDefVal = artifactOn
	}
}

// overlay copies every flag the user set onto o.
func (f *flagSet) overlay(fs *pflag.FlagSet, o *config.Options) {
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "format":
			o.Format = f.opts.Format
		case "model":
			o.Model = f.opts.Model
		case "memory":
			o.Memory = f.opts.Memory
		case "tabs":
			o.Tabs = f.opts.Tabs
		case "tables":
			o.Tables = f.opts.Tables
		case "halt":
			o.Halt = f.opts.Halt
		case "warn":
			o.Warnings = f.opts.Warnings
		case "pass1-errors":
			o.Pass1Errors = f.opts.Pass1Errors
		case "symbol-divide":
			o.SymbolDivide = f.opts.SymbolDivide
		case "lst":
			o.Listing = f.opts.Listing
		case "cmem":
			o.Cmem = f.opts.Cmem
		case "crd":
			o.Crd = f.opts.Crd
		case "pt":
			o.Pt = f.opts.Pt
		case "sym":
			o.Symbols = f.opts.Symbols
		}
	})
}
