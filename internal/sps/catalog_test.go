// catalog_test.go

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

func TestLookupInstructions(t *testing.T) {
	tests := []struct {
		mnemonic string
		code     int
		p        PRule
		q        QRule
		shape    Shape
	}{
		{"A", 21, PReference, QReference, ShapeInstruction},
		{"AM", 11, PReference, QImmediate, ShapeInstruction},
		{"TFM", 16, PReference, QImmediate, ShapeInstruction},
		{"B7", 49, PRefEven, QNone, ShapeInstr7},
		{"BB2", 42, PNone, QNone, ShapeInstr2},
		{"SPIM", 34, PValue, QSpim, ShapeInstruction},
		{"BLC", 46, PRefEven, QLiteral, ShapeInstruction},
	}
	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			d, ok := Lookup(tt.mnemonic)
			require.True(t, ok)
			assert.Equal(t, tt.mnemonic, d.Mnemonic)
			assert.Equal(t, ClassImperative, d.Class)
			assert.Equal(t, TypeInstruction, d.Type)
			assert.Equal(t, tt.code, d.OpCode)
			assert.Equal(t, tt.p, d.P)
			assert.Equal(t, tt.q, d.Q)
			assert.Equal(t, tt.shape, d.Shape)
		})
	}
}

func TestLookupLiteralDefault(t *testing.T) {
	d, ok := Lookup("RCTY")
	require.True(t, ok)
	assert.Equal(t, QLiteral, d.Q)
	assert.Equal(t, 102, d.QDefault)
}

func TestLookupDeclaratives(t *testing.T) {
	d, ok := Lookup("DVLC")
	require.True(t, ok)
	assert.Equal(t, ClassDeclarative, d.Class)
	assert.Equal(t, 41, d.Operands)

	d, ok = Lookup("DOT")
	require.True(t, ok)
	assert.Equal(t, Model2, d.Model)

	d, ok = Lookup("DEND")
	require.True(t, ok)
	assert.Equal(t, ClassControl, d.Class)
	assert.Equal(t, ShapeAddress, d.Shape)
}

func TestLookupReturnsCopy(t *testing.T) {
	d, _ := Lookup("A")
	d.OpCode = 99
	again, _ := Lookup("A")
	assert.Equal(t, 21, again.OpCode)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("XYZZY")
	assert.False(t, ok)
	assert.Greater(t, Mnemonics(), 200)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "<inst>", TypeInstruction.String())
	assert.Equal(t, "DSAC", TypeDSAC.String())
	assert.Equal(t, "unknown", Type(-1).String())
}
