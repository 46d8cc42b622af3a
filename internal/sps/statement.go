// statement.go

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
	"strings"
	"unicode"
)

const maxAddressOperands = 10

// LineShift places the file index above the line number in the line keys
// of multi-file runs, keeping keys ordered across files.
const LineShift = 18

const lineMask = 1<<LineShift - 1

// LineKey returns the key of line in file; single file runs use line alone.
func LineKey(file, line int, multi bool) int {
	if multi {
		return file<<LineShift | line&lineMask
	}
	return line
}

// SplitLineKey undoes LineKey.
func SplitLineKey(key int) (file, line int) {
	return key >> LineShift, key & lineMask
}

// Line is one tokenized source line.
type Line struct {
	Number    int // line key, see LineKey
	File      int // 1 based index of the source file
	FileLine  int // line number within the file
	Text      string
	Label     string
	Operation string
	Operands  string
	Comment   bool
	Invalid   bool // characters outside the source alphabet
}

// Statement is a classified line with its operand list.
type Statement struct {
	Line     Line
	Desc     *Descriptor
	Operands []string
}

// Label returns the statement label.
func (s *Statement) Label() string { return s.Line.Label }

// Operand returns operand i, or "" when absent.
func (s *Statement) Operand(i int) string {
	if i < 0 || i >= len(s.Operands) {
		return ""
	}
	return s.Operands[i]
}

// Parse classifies ln and splits its operands. Problems are reported and
// leave the statement with the Unknown descriptor.
func (c *Context) Parse(ln Line) *Statement {
	st := &Statement{Line: ln, Desc: Unknown}
	switch {
	case ln.Invalid:
		c.diag.Errorf("invalid character(s) in statement")
		return st
	case c.dend != dendNotSeen:
		return st
	case ln.Comment:
		st.Desc = Comment
		return st
	case isBlank(ln.Operation):
		c.diag.Errorf("missing operation")
		return st
	}

	d, ok := Lookup(ln.Operation)
	if !ok {
		if unicode.IsDigit(rune(ln.Operation[0])) {
			c.diag.Errorf("invalid numeric operation code (%s)", ln.Operation)
		} else {
			c.diag.Errorf("invalid operation (%s)", ln.Operation)
		}
		return st
	}
	if d.Model == Model2 && c.opts.Model != Model2 {
		c.diag.Warnf("model 2 instruction (%s)", ln.Operation)
	}
	st.Desc = d
	st.Operands = c.splitOperands(d, ln.Operands)
	return st
}

func (c *Context) splitOperands(d *Descriptor, text string) []string {
	switch d.Type {
	case TypeDAC, TypeDSAC:
		return c.splitAlpha(text)

	case TypeDSA:
		parts := strings.Split(text, ",")
		if len(parts) > maxAddressOperands {
			c.diag.Errorf("more than %d operands", maxAddressOperands)
			parts = parts[:maxAddressOperands]
		}
		ops := make([]string, len(parts))
		for i, p := range parts {
			ops[i] = strip(p)
		}
		return ops
	}

	parts := strings.Split(text, ",")
	ops := make([]string, d.Operands)
	for i := range ops {
		if i < len(parts) {
			ops[i] = strip(parts[i])
		}
	}
	return ops
}

// splitAlpha splits "len,text[,address]" where text is taken verbatim,
// commas and blanks included, for len characters.
func (c *Context) splitAlpha(text string) []string {
	ops := make([]string, 3)
	comma := strings.IndexByte(text, ',')
	if comma < 0 {
		ops[0] = strip(text)
		return ops
	}
	ops[0] = strip(text[:comma])

	var n int64
	c.diag.Quiet(func() {
		n, _ = c.Eval(ops[0], c.last, false, true, CheckNone)
	})
	start := comma + 1
	end := len(text)
	if n >= 0 && n < int64(end-start) {
		end = start + int(n)
	}
	ops[1] = text[start:end]
	if end == len(text) {
		return ops
	}

	rest := strings.Split(text[end:], ",")
	if !isBlank(rest[0]) {
		c.diag.Errorf("operand value too long")
	}
	if len(rest) > 1 {
		ops[2] = strip(rest[1])
	}
	return ops
}
