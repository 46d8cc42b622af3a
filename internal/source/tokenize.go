// tokenize.go

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
	"regexp"
	"strings"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

// Format is the source card layout.
type Format int

const (
	Fixed    Format = iota // columns 6-11 label, 12-15 operation, 16-75 operands
	Freeform               // whitespace separated fields
)

func (f Format) String() string {
	if f == Freeform {
		return "freeform"
	}
	return "fixed"
}

// ParseFormat accepts "fixed" or "freeform".
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "fixed":
		return Fixed, true
	case "freeform", "free":
		return Freeform, true
	}
	return Fixed, false
}

var (
	linePattern     = regexp.MustCompile(`^[ .)+$*\-/,(=@A-Z0-9]*$`)
	freeformPattern = regexp.MustCompile(`^(\S*)\s+(\S+)(\s(.*))?$`)
)

// Fixed format columns, zero based.
const (
	colLabel    = 5
	colOp       = 11
	colOperands = 15
	colEnd      = 75
)

func substr(s string, from, to int) string {
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}

func rtrim(s string) string { return strings.TrimRight(s, " ") }
func ltrim(s string) string { return strings.TrimLeft(s, " ") }

func blank(s string) bool { return strings.Trim(s, " ") == "" }

// Tokenize splits one raw line into its fields. The text is upper cased
// and, for freeform, tab expanded first.
func Tokenize(raw string, format Format, tabs Tabs) sps.Line {
	text := strings.ToUpper(raw)
	if format == Freeform {
		text = tabs.Expand(text)
	}
	ln := sps.Line{Text: text}

	if !linePattern.MatchString(text) {
		ln.Invalid = true
		return ln
	}

	if format == Fixed {
		if blank(substr(text, colLabel, colEnd)) || substr(text, colLabel, colLabel+1) == "*" {
			ln.Comment = true
			return ln
		}
		ln.Label = rtrim(substr(text, colLabel, colOp))
		ln.Operation = rtrim(substr(text, colOp, colOperands))
		ln.Operands = ltrim(substr(text, colOperands, colEnd))
		return ln
	}

	if blank(text) || text[0] == '*' {
		ln.Comment = true
		return ln
	}
	if m := freeformPattern.FindStringSubmatch(text); m != nil {
		ln.Label = m[1]
		ln.Operation = m[2]
		ln.Operands = ltrim(m[3])
	}
	return ln
}
