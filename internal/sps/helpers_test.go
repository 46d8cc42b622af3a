// helpers_test.go

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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceSource replays fixed lines for each pass.
type sliceSource struct {
	lines []Line
	pos   int
	opens int
}

func (s *sliceSource) Open() error {
	s.pos = 0
	s.opens++
	return nil
}

func (s *sliceSource) Next() (Line, error) {
	if s.pos >= len(s.lines) {
		return Line{}, io.EOF
	}
	ln := s.lines[s.pos]
	s.pos++
	return ln, nil
}

func (s *sliceSource) Close() error { return nil }

// src builds a source from "label op operands" rows, fields separated by
// '|'. A row starting with '*' is a comment.
func src(rows ...string) *sliceSource {
	s := &sliceSource{}
	for i, row := range rows {
		ln := Line{Number: i + 1, File: 1, FileLine: i + 1, Text: row}
		if strings.HasPrefix(row, "*") {
			ln.Comment = true
		} else {
			parts := strings.SplitN(row, "|", 3)
			for len(parts) < 3 {
				parts = append(parts, "")
			}
			ln.Label, ln.Operation, ln.Operands = parts[0], parts[1], parts[2]
		}
		s.lines = append(s.lines, ln)
	}
	return s
}

func assemble(t *testing.T, opts Options, rows ...string) *Program {
	t.Helper()
	prog, err := New(opts).Assemble(src(rows...))
	require.NoError(t, err)
	return prog
}

// newPassContext returns a context positioned in pass.
func newPassContext(opts Options, pass int) *Context {
	c := NewContext(opts)
	c.Reset(pass)
	c.SetLine(1)
	return c
}

func messages(ds []Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	return out
}

func cells(m *Memory, addr, n int) []byte {
	return m.Cells()[addr : addr+n]
}
