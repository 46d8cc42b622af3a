// diag.go

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

import "fmt"

// Level indicates the severity of a diagnostic.
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "unknown"
	}
}

// Diagnostic is one message raised while processing a line.
type Diagnostic struct {
	Level   Level
	Pass    int
	Line    int // logical line number, 0 for run level messages
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Level, d.Message)
}

// Diagnostics is the counting sink every component reports through.
// Warnings are dropped without being counted when disabled.
type Diagnostics struct {
	warnings bool
	mute     int

	pass       int
	line       int
	errorCnt   int
	warningCnt int
	pending    []Diagnostic

	// Hook, when set, sees every counted diagnostic as it is raised.
	Hook func(Diagnostic)
}

// NewDiagnostics creates a sink; warnings controls whether warnings are kept.
func NewDiagnostics(warnings bool) *Diagnostics {
	return &Diagnostics{warnings: warnings}
}

// Reset clears the counters for a new pass.
func (d *Diagnostics) Reset(pass int) {
	d.pass = pass
	d.line = 0
	d.errorCnt = 0
	d.warningCnt = 0
	d.pending = nil
}

// SetLine sets the line number attached to subsequent diagnostics.
func (d *Diagnostics) SetLine(line int) {
	d.line = line
}

func (d *Diagnostics) Errorf(format string, args ...interface{}) {
	if d.mute > 0 {
		return
	}
	d.errorCnt++
	d.add(LevelError, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	if d.mute > 0 || !d.warnings {
		return
	}
	d.warningCnt++
	d.add(LevelWarning, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) add(level Level, msg string) {
	diag := Diagnostic{Level: level, Pass: d.pass, Line: d.line, Message: msg}
	d.pending = append(d.pending, diag)
	if d.Hook != nil {
		d.Hook(diag)
	}
}

// Take returns the diagnostics raised since the previous call.
func (d *Diagnostics) Take() []Diagnostic {
	out := d.pending
	d.pending = nil
	return out
}

// Quiet runs fn with reporting switched off.
func (d *Diagnostics) Quiet(fn func()) {
	d.mute++
	defer func() { d.mute-- }()
	fn()
}

func (d *Diagnostics) ErrorCount() int   { return d.errorCnt }
func (d *Diagnostics) WarningCount() int { return d.warningCnt }
func (d *Diagnostics) HasErrors() bool   { return d.errorCnt > 0 }
