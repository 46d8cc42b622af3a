// diag_test.go

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
)

func TestDiagnosticsCounts(t *testing.T) {
	d := NewDiagnostics(true)
	d.Reset(2)
	d.SetLine(7)
	d.Errorf("bad %d", 1)
	d.Warnf("odd")

	assert.Equal(t, 1, d.ErrorCount())
	assert.Equal(t, 1, d.WarningCount())
	assert.True(t, d.HasErrors())

	got := d.Take()
	assert.Equal(t, []Diagnostic{
		{Level: LevelError, Pass: 2, Line: 7, Message: "bad 1"},
		{Level: LevelWarning, Pass: 2, Line: 7, Message: "odd"},
	}, got)
	assert.Empty(t, d.Take())
	assert.Equal(t, "Error: bad 1", got[0].String())
}

func TestDiagnosticsWarningsOff(t *testing.T) {
	d := NewDiagnostics(false)
	d.Warnf("ignored")
	assert.Zero(t, d.WarningCount())
	assert.Empty(t, d.Take())
}

func TestDiagnosticsQuiet(t *testing.T) {
	d := NewDiagnostics(true)
	d.Quiet(func() {
		d.Errorf("hidden")
	})
	d.Errorf("shown")
	assert.Equal(t, 1, d.ErrorCount())
	assert.Equal(t, []string{"shown"}, messages(d.Take()))
}

func TestDiagnosticsHook(t *testing.T) {
	d := NewDiagnostics(true)
	var seen []string
	d.Hook = func(x Diagnostic) { seen = append(seen, x.String()) }
	d.Warnf("w")
	d.Errorf("e")
	assert.Equal(t, []string{"Warning: w", "Error: e"}, seen)

	d.Reset(2)
	assert.Zero(t, d.ErrorCount())
	assert.Empty(t, d.Take())
}
