// process_test.go

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const f = FlagBit

// single assembles one statement ahead of DEND and returns its result.
func single(t *testing.T, opts Options, row string) (*Program, *Result) {
	t.Helper()
	prog := assemble(t, opts, row, "|DEND|402")
	require.Len(t, prog.Results, 2)
	return prog, prog.Results[0]
}

func TestInstructionEncoding(t *testing.T) {
	model2 := DefaultOptions()
	model2.Model = Model2

	tests := []struct {
		name string
		opts Options
		row  string
		want Value
	}{
		{"reference pair", DefaultOptions(), "|A|500,600", Value{2, 1, 0, 0, 5, 0, 0, 0, 0, 6, 0, 0}},
		{"immediate flags q", DefaultOptions(), "|TFM|500,12", Value{1, 6, 0, 0, 5, 0, 0, f, 0, 0, 1, 2}},
		{"immediate with flags", DefaultOptions(), "|TFM|500,12,11", Value{1, 6, 0, 0, 5, 0, 0, 0, 0, 0, 1, 2 | f}},
		{"flag operand", DefaultOptions(), "|TF|500,600,1", Value{2, 6 | f, 0, 0, 5, 0, 0, 0, 0, 6, 0, 0}},
		{"negative q", DefaultOptions(), "|AM|500,-3", Value{1, 1, 0, 0, 5, 0, 0, f, 0, 0, 0, 3 | f}},
		{"literal q", DefaultOptions(), "|RCTY|", Value{3, 4, 0, 0, 0, 0, 0, 0, 0, 1, 0, 2}},
		{"space table", DefaultOptions(), "|SPIM|,2", Value{3, 4, 0, 0, 0, 0, 0, 0, 0, 9, 5, 2}},
		{"short branch", DefaultOptions(), "|BB2|", Value{4, 2}},
		{"seven digit branch", DefaultOptions(), "|B7|500", Value{4, 9, 0, 0, 5, 0, 0}},
		{"index registers", model2, "|A|500(1),600(2)", Value{2, 1, 0, 0, 5, f, 0, 0, 0, 6 | f, 0, 0}},
		{"reference bit", model2, "|BBT|500,1234,5", Value{9, 0, 0, 0, 5, 0, 0, 5, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, r := single(t, tt.opts, tt.row)
			assert.Empty(t, messages(r.Diagnostics))
			assert.Equal(t, 402, r.Address)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, []byte(tt.want), cells(prog.Memory, 402, len(tt.want)))
		})
	}
}

func TestInstructionWarnings(t *testing.T) {
	tests := []struct {
		row  string
		want string
	}{
		{"|B|401", "address must be even (401)"},
		{"|B7|500,5", "Q operand is ignored (5)"},
		{"|BB2|4", "P operand is ignored (4)"},
		{"|RCTY|,105", "Q operand overrides default (105)"},
	}
	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			_, r := single(t, DefaultOptions(), tt.row)
			assert.Contains(t, messages(r.Diagnostics), tt.want)
		})
	}
}

func TestInstructionFlagSixRelaxesParity(t *testing.T) {
	_, r := single(t, DefaultOptions(), "|B|401,,6")
	assert.Empty(t, r.Diagnostics)
}

func TestInstructionErrors(t *testing.T) {
	tests := []struct {
		row  string
		want string
	}{
		{"|SPIM|,4", "space not in range 1 - 3 (4)"},
		{"|TF|500,600,31", "invalid flags (31)"},
	}
	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			prog, r := single(t, DefaultOptions(), tt.row)
			assert.Contains(t, messages(r.Diagnostics), tt.want)
			assert.False(t, prog.OK())
		})
	}
}

func TestInstructionAlignsEven(t *testing.T) {
	prog := assemble(t, DefaultOptions(),
		"|DC|1,5",
		"X|NOP|",
		"|DEND|X",
	)
	assert.Equal(t, 402, prog.Results[0].Address)
	assert.Equal(t, 404, prog.Results[1].Address)
	assert.Equal(t, 404, prog.Entry)
}

func TestDeclaratives(t *testing.T) {
	model2 := DefaultOptions()
	model2.Model = Model2

	tests := []struct {
		name    string
		opts    Options
		row     string
		address int
		label   int
		length  int
		want    Value
	}{
		{"DC", DefaultOptions(), "N|DC|3,-12", 402, 404, 3, Value{f, 1, 2 | f}},
		{"DC single", DefaultOptions(), "N|DC|1,7", 402, 402, 1, Value{7 | f}},
		{"DC record mark", DefaultOptions(), "N|DC|1,@", 402, 402, 1, Value{RecordMark}},
		{"DC at address", DefaultOptions(), "N|DC|2,34,601", 600, 601, 2, Value{3 | f, 4}},
		{"DSC", DefaultOptions(), "N|DSC|3,J12", 402, 402, 3, Value{1 | f, 1, 2}},
		{"DAC", DefaultOptions(), "M|DAC|3,ABC", 402, 403, 6, Value{4 | f, 1, 4, 2, 4, 3}},
		{"DAC with commas", DefaultOptions(), "M|DAC|3,A,B,701", 700, 701, 6, Value{4 | f, 1, 2, 3, 4, 2}},
		{"DSAC", DefaultOptions(), "M|DSAC|2,HI", 402, 405, 4, Value{4 | f, 8, 4, 9}},
		{"DNB", DefaultOptions(), "B|DNB|3", 402, 404, 3, Value{NumericBlank, NumericBlank, NumericBlank}},
		{"DGM", DefaultOptions(), "G|DGM|", 402, 402, 1, Value{GroupMark}},
		{"DS", DefaultOptions(), "S|DS|10", 402, 411, 10, nil},
		{"DSS", DefaultOptions(), "S|DSS|10", 402, 402, 10, nil},
		{"DAS", DefaultOptions(), "S|DAS|4", 402, 403, 8, nil},
		{"DSA", DefaultOptions(), "T|DSA|500,-7", 402, 406, 10, Value{f, 0, 5, 0, 0, f, 0, 0, 0, 7 | f}},
		{"DVLC", DefaultOptions(), "V|DVLC|,2,12,3,-5", 402, 403, 5, Value{1 | f, 2, f, 0, 5 | f}},
		{"DDA", DefaultOptions(), "D|DDA|,1,1234,10,600", 402, 402, 14,
			Value{1, f, 1, 2, 3, 4, f, 1, 0, f, 0, 6, 0, 0}},
		{"DOT", model2, "P|DOT|0", 402, 404, 3, Value{0x10, 0x01, 0x0a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, r := single(t, tt.opts, tt.row)
			assert.Empty(t, messages(r.Diagnostics))
			assert.Equal(t, tt.address, r.Address, "address")
			assert.Equal(t, tt.label, r.LabelAddress, "label")
			assert.Equal(t, tt.length, r.Length, "length")
			assert.Equal(t, tt.want, r.Value)
			if tt.want != nil {
				assert.Equal(t, []byte(tt.want), cells(prog.Memory, tt.address, tt.length))
			}
			sym, ok := prog.Symbols.Get(r.Statement.Label())
			require.True(t, ok)
			assert.Equal(t, tt.label, sym.Address)
		})
	}
}

func TestDSBCount(t *testing.T) {
	_, r := single(t, DefaultOptions(), "T|DSB|5,10")
	assert.Equal(t, 50, r.Length)
	assert.Equal(t, 10, r.Count)
	assert.Equal(t, 406, r.LabelAddress)
	assert.Equal(t, ShapeReserve2, r.Shape)
}

func TestDeclarativeLengthLimit(t *testing.T) {
	_, r := single(t, DefaultOptions(), "N|DC|51,1")
	assert.Contains(t, messages(r.Diagnostics), "length greater than 50")
	assert.Equal(t, 50, r.Length)
}

func TestDACValueTooLong(t *testing.T) {
	_, r := single(t, DefaultOptions(), "M|DAC|2,ABC,701")
	assert.Contains(t, messages(r.Diagnostics), "operand value too long")
}

func TestDSAOperandLimit(t *testing.T) {
	_, r := single(t, DefaultOptions(), "T|DSA|1,2,3,4,5,6,7,8,9,10,11")
	assert.Contains(t, messages(r.Diagnostics), "more than 10 operands")
	assert.Equal(t, 50, r.Length)
}

func TestDDALimits(t *testing.T) {
	_, r := single(t, DefaultOptions(), "D|DDA|,1,90000,0,600")
	assert.Equal(t, []string{"sector address greater than 79999", "sector count zero"}, messages(r.Diagnostics))
}

func TestDORGMovesCounter(t *testing.T) {
	prog := assemble(t, DefaultOptions(),
		"START|DORG|1000",
		"X|NOP|",
		"|DEND|X",
	)
	x, ok := prog.Symbols.Get("X")
	require.True(t, ok)
	assert.Equal(t, 1000, x.Address)
	start, _ := prog.Symbols.Get("START")
	assert.Equal(t, 1000, start.Address)
}

func TestHeadQualifiesLabels(t *testing.T) {
	prog := assemble(t, DefaultOptions(),
		"|HEAD|A",
		"X|DS|1",
		"|HEAD|",
		"Y|DS|1",
		"|DSA|A$X,Y",
		"|HEAD|AB",
		"|DEND|402",
	)
	_, ok := prog.Symbols.Get("A$X")
	assert.True(t, ok)
	_, ok = prog.Symbols.Get("Y")
	assert.True(t, ok)
	assert.Equal(t, []string{"invalid head (AB)"}, messages(prog.Results[5].Diagnostics))
}

func TestControlWarnings(t *testing.T) {
	prog := assemble(t, DefaultOptions(),
		"L|SEND|",
		"|TRA|",
		"E|DEND|402",
	)
	assert.Equal(t, []string{"unexpected label (L)", "unsupported control operation (SEND)"}, messages(prog.Results[0].Diagnostics))
	assert.Equal(t, []string{"unsupported control operation (TRA)"}, messages(prog.Results[1].Diagnostics))
	assert.Equal(t, []string{"unexpected label (E)"}, messages(prog.Results[2].Diagnostics))
	assert.Equal(t, 4, prog.Pass2.Warnings)
	assert.True(t, prog.OK())
}

func TestModel2OperationOnModel1(t *testing.T) {
	prog, r := single(t, DefaultOptions(), "|BS|500")
	assert.Equal(t, []string{"model 2 instruction (BS)"}, messages(r.Diagnostics))
	assert.Equal(t, 12, r.Length)
	assert.Equal(t, 1, prog.Pass2.Warnings)
	assert.True(t, prog.OK())

	opts := DefaultOptions()
	opts.Warnings = false
	prog, r = single(t, opts, "|BS|500")
	assert.Empty(t, r.Diagnostics)
	assert.True(t, prog.OK())
}

func TestParseClassification(t *testing.T) {
	c := newPassContext(DefaultOptions(), 1)

	st := c.Parse(Line{Operation: "FOO"})
	assert.Same(t, Unknown, st.Desc)
	st = c.Parse(Line{Operation: "9X"})
	assert.Same(t, Unknown, st.Desc)
	st = c.Parse(Line{Label: "L"})
	assert.Same(t, Unknown, st.Desc)
	st = c.Parse(Line{Invalid: true, Operation: "NOP"})
	assert.Same(t, Unknown, st.Desc)
	st = c.Parse(Line{Comment: true})
	assert.Same(t, Comment, st.Desc)

	assert.Equal(t, []string{
		"invalid operation (FOO)",
		"invalid numeric operation code (9X)",
		"missing operation",
		"invalid character(s) in statement",
	}, messages(c.diag.Take()))
}

func TestParseOperands(t *testing.T) {
	c := newPassContext(DefaultOptions(), 1)

	st := c.Parse(Line{Operation: "TF", Operands: "A , B"})
	assert.Equal(t, []string{"A", "B", ""}, st.Operands)

	st = c.Parse(Line{Operation: "DAC", Operands: "5, A,B ,701"})
	assert.Equal(t, []string{"5", " A,B ", "701"}, st.Operands)

	st = c.Parse(Line{Operation: "DSA", Operands: "A,B,C"})
	assert.Equal(t, []string{"A", "B", "C"}, st.Operands)
	assert.Empty(t, c.diag.Take())
}
