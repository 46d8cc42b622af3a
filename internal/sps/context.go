// context.go

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

import "strings"

// StartAddress is where the address counter begins each pass.
const StartAddress = 402

// Options configure the target machine and the assembly.
type Options struct {
	Model        Model
	MemorySize   int
	SymbolDivide bool // '/' is a symbol character, not an operator
	Tables       bool // load the arithmetic tables
	LoadHalt     bool // halt at the end of the load
	Warnings     bool
}

// DefaultOptions returns a 60000 digit model 1 with tables, halt and warnings.
func DefaultOptions() Options {
	return Options{
		Model:        Model1,
		MemorySize:   DefaultMemorySize,
		SymbolDivide: true,
		Tables:       true,
		LoadHalt:     true,
		Warnings:     true,
	}
}

type dendStatus int

const (
	dendNotSeen dendStatus = iota
	dendSeen
	dendWarned
)

// Context carries the state shared by every statement of a run. Pass
// scoped fields are cleared by Reset.
type Context struct {
	opts    Options
	diag    *Diagnostics
	symbols *SymbolTable
	memory  *Memory

	pass    int
	line    int
	counter int
	last    int
	head    byte
	dend    dendStatus
	entry   int
}

// NewContext creates the state for one run.
func NewContext(opts Options) *Context {
	diag := NewDiagnostics(opts.Warnings)
	return &Context{
		opts:    opts,
		diag:    diag,
		symbols: NewSymbolTable(diag, opts.SymbolDivide),
		memory:  NewMemory(opts.MemorySize),
		head:    ' ',
	}
}

// Reset prepares the context for pass.
func (c *Context) Reset(pass int) {
	c.pass = pass
	c.line = 0
	c.counter = StartAddress
	c.last = 0
	c.head = ' '
	c.dend = dendNotSeen
	c.diag.Reset(pass)
}

func (c *Context) Diagnostics() *Diagnostics { return c.diag }
func (c *Context) Symbols() *SymbolTable     { return c.symbols }
func (c *Context) Memory() *Memory           { return c.memory }

// Counter returns the next free address.
func (c *Context) Counter() int { return c.counter }

// Entry returns the address named by DEND.
func (c *Context) Entry() int { return c.entry }

// SetLine sets the line the next statement is attributed to.
func (c *Context) SetLine(line int) {
	c.line = line
	c.diag.SetLine(line)
}

func (c *Context) indexOK() bool { return c.opts.Model == Model2 }

func (c *Context) emitting() bool { return c.pass == 2 }

func (c *Context) alignEven() {
	if c.counter&1 == 1 {
		c.counter++
	}
}

func isBlank(s string) bool {
	return strings.Trim(s, " ") == ""
}

// strip removes every blank and tab.
func strip(s string) string {
	if strings.IndexAny(s, " \t") < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}
