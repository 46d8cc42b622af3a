// run.go

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
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intuitionamiga/sps1620/internal/config"
	"github.com/intuitionamiga/sps1620/internal/output"
	"github.com/intuitionamiga/sps1620/internal/source"
	"github.com/intuitionamiga/sps1620/internal/sps"
)

type runner struct {
	log     *logrus.Logger
	console io.Writer
	now     func() time.Time
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(path string) string {
	if path == "" {
		return "<none>"
	}
	return path
}

// summary prints the run settings ahead of the passes.
func (r *runner) summary(opts config.Options, files []string, paths output.Paths, tabs source.Tabs) {
	w := r.console
	fmt.Fprintf(w, "IBM 1620 Jr. SPS Assembler (v%s)\n\n", output.Version)
	if len(files) == 1 {
		fmt.Fprintf(w, "Source file:  %s\n", files[0])
	} else {
		for i, f := range files {
			label := "              "
			if i == 0 {
				label = "Source files: "
			}
			fmt.Fprintf(w, "%s%d. %s\n", label, i+1, f)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Lst file:     %s\n", orNone(paths.Listing))
	fmt.Fprintf(w, "Cmem file:    %s\n", orNone(paths.Cmem))
	fmt.Fprintf(w, "Crd file:     %s\n", orNone(paths.Crd))
	fmt.Fprintf(w, "Pt file:      %s\n", orNone(paths.Pt))
	fmt.Fprintf(w, "Symbol map:   %s\n\n", orNone(paths.Symbols))

	core := opts.Assembler()
	stops := "n/a"
	if opts.SourceFormat() == source.Freeform {
		stops = tabs.String()
	}
	fmt.Fprintf(w, "Source format:       %s\n", opts.SourceFormat())
	fmt.Fprintf(w, "System type:         %s\n", core.Model)
	fmt.Fprintf(w, "Memory size:         %d\n", core.MemorySize)
	fmt.Fprintf(w, "Include tables:      %s\n", yesNo(core.Tables))
	fmt.Fprintf(w, "Load halt:           %s\n", yesNo(core.LoadHalt))
	fmt.Fprintf(w, "Produce warnings:    %s\n", yesNo(core.Warnings))
	fmt.Fprintf(w, "Print pass 1 errors: %s\n", yesNo(opts.Pass1Errors))
	fmt.Fprintf(w, "Symbol divide:       %s\n", yesNo(core.SymbolDivide))
	fmt.Fprintf(w, "Tab stops:           %s\n\n", stops)
}

// locator renders a line key as "line" or, across files, "file:line".
func locator(files []string, multi bool) func(int) string {
	return func(key int) string {
		file, line := sps.SplitLineKey(key)
		if multi && file >= 1 && file <= len(files) {
			return fmt.Sprintf("%s:%d", filepath.Base(files[file-1]), line)
		}
		return strconv.Itoa(line)
	}
}

func (r *runner) report(d sps.Diagnostic, loc func(int) string) {
	entry := r.log.WithField("pass", d.Pass)
	if d.Line > 0 {
		entry = entry.WithField("line", loc(d.Line))
	}
	if d.Level == sps.LevelError {
		entry.Error(d.Message)
		return
	}
	entry.Warn(d.Message)
}

func (r *runner) run(opts config.Options, files []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, n := range opts.Notices() {
		r.log.Warn(n)
	}

	tabs, err := opts.TabStops()
	if err != nil {
		return err
	}
	format := opts.SourceFormat()
	stream, err := source.NewStream(files, format, tabs)
	if err != nil {
		return err
	}
	names := stream.Files()
	paths := opts.Paths(names[0])
	r.summary(opts, names, paths, tabs)

	stream.OnFile = func(i int, name string) {
		r.log.WithField("file", i).Debugf("reading %s", name)
	}

	loc := locator(names, stream.Multi())
	asm := sps.New(opts.Assembler())
	if opts.Pass1Errors {
		asm.Pass1Hook = func(d sps.Diagnostic) { r.report(d, loc) }
	}
	// without a listing, pass 2 messages go to the console
	if paths.Listing == "" {
		asm.Pass2Hook = func(res *sps.Result) {
			for _, d := range res.Diagnostics {
				r.report(d, loc)
			}
		}
	}

	prog, err := asm.Assemble(stream)
	if err != nil {
		return err
	}
	r.log.Infof("End of Pass 1, %d lines, %d error(s), %d warning(s)",
		prog.Lines, prog.Pass1.Errors, prog.Pass1.Warnings)
	if paths.Listing == "" {
		for _, d := range prog.Trailing {
			r.report(d, loc)
		}
	}
	r.log.Infof("End of Pass 2, %d lines, %d error(s), %d warning(s)",
		prog.Lines, prog.Pass2.Errors, prog.Pass2.Warnings)

	meta := output.Meta{Files: names, Fixed: format == source.Fixed, Stamp: r.now()}
	written, err := output.Emit(prog, meta, paths)
	for _, p := range written.Created {
		r.log.Debugf("wrote %s", p)
	}
	for _, p := range written.Removed {
		r.log.Debugf("removed %s", p)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.console, "End of assembly")
	if !prog.OK() {
		return errAssembly
	}
	return nil
}
