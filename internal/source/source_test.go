// source_test.go

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

package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

func TestParseTabs(t *testing.T) {
	tests := []struct {
		in   string
		want Tabs
		err  bool
	}{
		{"8", Tabs{8}, false},
		{"4", Tabs{4}, false},
		{"6,12,16", Tabs{6, 12, 16}, false},
		{"0", nil, true},
		{"81", nil, true},
		{"12,6", nil, true},
		{"x", nil, true},
		{"", nil, true},
	}
	for _, tc := range tests {
		got, err := ParseTabs(tc.in)
		if tc.err {
			require.Error(t, err, tc.in)
			assert.Equal(t, "invalid tabs value ("+tc.in+")", err.Error())
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTabsExpand(t *testing.T) {
	assert.Equal(t, "AB      C", Tabs{8}.Expand("AB\tC"))
	assert.Equal(t, "        X", Tabs{8}.Expand("\tX"))
	assert.Equal(t, "A   B", Tabs{4}.Expand("A\tB"))

	// explicit stops, then one blank past the last
	stops := Tabs{6, 12}
	assert.Equal(t, "L    OP    X", stops.Expand("L\tOP\tX"))
	assert.Equal(t, "LABEL1234567 X", stops.Expand("LABEL1234567\tX"))
	assert.Equal(t, "no tabs", stops.Expand("no tabs"))
}

func TestTokenizeFixed(t *testing.T) {
	ln := Tokenize("     loop  tf  data,src           comment", Fixed, nil)
	assert.False(t, ln.Invalid)
	assert.False(t, ln.Comment)
	assert.Equal(t, "LOOP", ln.Label)
	assert.Equal(t, "TF", ln.Operation)
	assert.Equal(t, "DATA,SRC           COMMENT", ln.Operands)

	assert.True(t, Tokenize("00010*THIS IS A COMMENT", Fixed, nil).Comment)
	assert.True(t, Tokenize("00020", Fixed, nil).Comment)
	assert.True(t, Tokenize("", Fixed, nil).Comment)

	long := "           DC  5,1" + strings.Repeat(" ", 57) + "SEQ1"
	assert.Equal(t, "5,1", strings.TrimRight(Tokenize(long, Fixed, nil).Operands, " "))
}

func TestTokenizeFreeform(t *testing.T) {
	ln := Tokenize("loop\ttf\tdata,src", Freeform, DefaultTabs())
	assert.Equal(t, "LOOP", ln.Label)
	assert.Equal(t, "TF", ln.Operation)
	assert.Equal(t, "DATA,SRC", ln.Operands)

	ln = Tokenize(" B  LOOP", Freeform, DefaultTabs())
	assert.Equal(t, "", ln.Label)
	assert.Equal(t, "B", ln.Operation)
	assert.Equal(t, "LOOP", ln.Operands)

	ln = Tokenize(" NOP", Freeform, DefaultTabs())
	assert.Equal(t, "NOP", ln.Operation)
	assert.Equal(t, "", ln.Operands)

	assert.True(t, Tokenize("* remark", Freeform, DefaultTabs()).Comment)
	assert.True(t, Tokenize("   ", Freeform, DefaultTabs()).Comment)
}

func TestTokenizeInvalid(t *testing.T) {
	assert.True(t, Tokenize(" DC 1,5 ; semi", Freeform, DefaultTabs()).Invalid)
	assert.True(t, Tokenize("     X     DAC 3,A!B", Fixed, nil).Invalid)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "prog.sps", SourceName("prog"))
	assert.Equal(t, "prog.txt", SourceName("prog.txt"))
	assert.Equal(t, filepath.Join("dir.d", "prog.sps"), SourceName(filepath.Join("dir.d", "prog")))
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func drain(t *testing.T, s *Stream) []sps.Line {
	t.Helper()
	require.NoError(t, s.Open())
	defer s.Close()
	var out []sps.Line
	for {
		ln, err := s.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, ln)
	}
}

func TestStreamSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.sps", " NOP\n DEND 402\n")

	s, err := NewStream([]string{filepath.Join(dir, "one")}, Freeform, nil)
	require.NoError(t, err)
	assert.False(t, s.Multi())

	lines := drain(t, s)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[1].Number)
	assert.Equal(t, "DEND", lines[1].Operation)

	// a second pass sees the same lines
	assert.Equal(t, lines, drain(t, s))
}

func TestStreamMultiFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sps", " NOP\n")
	b := writeFile(t, dir, "b.sps", "* two\n DEND 402\n")

	s, err := NewStream([]string{a, b}, Freeform, nil)
	require.NoError(t, err)
	var opened []string
	s.OnFile = func(i int, name string) { opened = append(opened, filepath.Base(name)) }

	lines := drain(t, s)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"a.sps", "b.sps"}, opened)
	assert.Equal(t, sps.LineKey(1, 1, true), lines[0].Number)
	assert.Equal(t, sps.LineKey(2, 2, true), lines[2].Number)
	assert.Equal(t, 2, lines[2].File)
	assert.Equal(t, 2, lines[2].FileLine)
	assert.Less(t, lines[0].Number, lines[1].Number)
}

func TestStreamMissingFile(t *testing.T) {
	s, err := NewStream([]string{filepath.Join(t.TempDir(), "absent")}, Fixed, nil)
	require.NoError(t, err)
	err = s.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.sps")
}

func TestStreamLimits(t *testing.T) {
	_, err := NewStream(nil, Fixed, nil)
	assert.Error(t, err)

	files := make([]string, MaxFiles+1)
	for i := range files {
		files[i] = "f"
	}
	_, err = NewStream(files, Fixed, nil)
	assert.Error(t, err)
}

func TestStreamAssembles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "loop.sps", "LOOP\tB\tLOOP\n\tDEND\tLOOP\n")

	s, err := NewStream([]string{path}, Freeform, nil)
	require.NoError(t, err)
	prog, err := sps.New(sps.DefaultOptions()).Assemble(s)
	require.NoError(t, err)
	assert.True(t, prog.OK())
	assert.Equal(t, 2, prog.Lines)
	assert.Equal(t, sps.StartAddress, prog.Entry)
}
