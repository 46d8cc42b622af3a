// assembler.go

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

package sps

import (
	"io"

	"github.com/pkg/errors"
)

// LineSource yields tokenized lines. Next returns io.EOF after the last
// line and a *ReadError for a failure the run can continue past.
type LineSource interface {
	Open() error
	Next() (Line, error)
	Close() error
}

// ReadError is a recoverable failure reading one source file.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string { return e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// Counts are the diagnostics tallied by one pass.
type Counts struct {
	Errors   int
	Warnings int
}

// Span is where a statement was laid out.
type Span struct {
	Line    int
	Address int
	Length  int
}

// Program is the output of a run.
type Program struct {
	Options  Options
	Memory   *Memory
	Symbols  *SymbolTable
	Results  []*Result
	Trailing []Diagnostic // raised after the last line
	Entry    int
	Lines    int
	Pass1    Counts
	Pass2    Counts
	Layout1  []Span
	Layout2  []Span
	Startup  Value // cells 0 to 35 as seeded before pass 2
}

// OK reports whether neither pass raised an error.
func (p *Program) OK() bool { return p.Pass1.Errors == 0 && p.Pass2.Errors == 0 }

// Assembler runs the two passes over a LineSource.
type Assembler struct {
	ctx *Context

	// Pass1Hook sees each pass 1 diagnostic as it is raised.
	Pass1Hook func(Diagnostic)
	// Pass2Hook sees each pass 2 result once processed.
	Pass2Hook func(*Result)
}

// New creates an assembler for opts.
func New(opts Options) *Assembler {
	return &Assembler{ctx: NewContext(opts)}
}

// Context exposes the run state.
func (a *Assembler) Context() *Context { return a.ctx }

// Assemble runs pass 1 to build the symbol table and pass 2 to build the
// memory image. Only a source that cannot be opened aborts the run.
func (a *Assembler) Assemble(src LineSource) (*Program, error) {
	c := a.ctx
	prog := &Program{Options: c.opts, Symbols: c.symbols, Memory: c.memory}

	c.diag.Hook = a.Pass1Hook
	c.Reset(1)
	_, err := a.sweep(src, func(r *Result, processed bool) {
		if processed && r.Statement.Desc.Class != ClassUnknown {
			prog.Layout1 = append(prog.Layout1, span(r))
		}
	})
	c.diag.Hook = nil
	if err != nil {
		return nil, errors.Wrap(err, "pass 1")
	}
	c.diag.Take()
	prog.Pass1 = Counts{Errors: c.diag.ErrorCount(), Warnings: c.diag.WarningCount()}

	c.Reset(2)
	c.memory.Clear()
	c.memory.seedLowCore(c.entry, c.opts.LoadHalt, c.opts.Tables, c.opts.Model)
	prog.Startup = Value(c.memory.cells[:startupCells]).Clone()
	lines, err := a.sweep(src, func(r *Result, processed bool) {
		if processed && r.Statement.Desc.Class != ClassUnknown {
			prog.Layout2 = append(prog.Layout2, span(r))
		}
		prog.Results = append(prog.Results, r)
		if a.Pass2Hook != nil {
			a.Pass2Hook(r)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "pass 2")
	}
	prog.Trailing = c.diag.Take()
	prog.Pass2 = Counts{Errors: c.diag.ErrorCount(), Warnings: c.diag.WarningCount()}
	prog.Lines = lines
	prog.Entry = c.entry
	return prog, nil
}

func span(r *Result) Span {
	return Span{Line: r.Statement.Line.Number, Address: r.Address, Length: r.Length}
}

// sweep runs one pass, handing every line's result to emit.
func (a *Assembler) sweep(src LineSource, emit func(r *Result, processed bool)) (int, error) {
	c := a.ctx
	if err := src.Open(); err != nil {
		return 0, err
	}
	defer src.Close()

	lines := 0
	for {
		ln, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var rerr *ReadError
			if !errors.As(err, &rerr) {
				return lines, err
			}
			c.SetLine(lines)
			c.diag.Errorf("error reading source file (%v)", rerr.Err)
			continue
		}
		lines++
		c.SetLine(ln.Number)

		st := c.Parse(ln)
		var r *Result
		processed := false
		switch {
		case st.Desc.Class == ClassComment:
			r = &Result{Statement: st, Shape: ShapeComment}
		case c.dend == dendWarned:
			r = &Result{Statement: st, Shape: ShapeUnknown}
		case c.dend == dendSeen:
			c.diag.Errorf("statement(s) beyond DEND")
			c.dend = dendWarned
			r = &Result{Statement: st, Shape: ShapeUnknown}
		default:
			r = c.Process(st)
			processed = true
		}
		r.Diagnostics = c.diag.Take()
		emit(r, processed)
	}

	if c.dend == dendNotSeen {
		c.SetLine(0)
		c.diag.Errorf("DEND statement missing")
	}
	return lines, nil
}
