// tables.go

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

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

// Version is reported in every artifact header.
const Version = "1.00"

const stampLayout = "1/02/2006 @ 15:04"

// Character sets indexed by cell value with the flag bit.
var (
	listChars = [32]byte{
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '@', '?', '~', '?', '?', '#',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '@', '?', '~', '?', '?', '#',
	}
	crdChars = [32]byte{
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '|', ' ', ')', ' ', ' ', '}',
		']', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', '!', ' ', '*', ' ', ' ', '"',
	}
	ptCodes = [32]byte{
		0x20, 0x01, 0x02, 0x13, 0x04, 0x15, 0x16, 0x07, 0x08, 0x19, 0x2A, 0x0B, 0x1C, 0x00, 0x00, 0x2F,
		0x40, 0x51, 0x52, 0x43, 0x54, 0x45, 0x46, 0x57, 0x58, 0x49, 0x4A, 0x5B, 0x4C, 0x00, 0x00, 0x4F,
	}
)

// ptEOL ends a paper tape image.
const ptEOL = 0x80

func listChar(c byte) byte { return listChars[c&sps.CellMask] }
func crdChar(c byte) byte  { return crdChars[c&sps.CellMask] }

func flagChar(c byte) byte {
	if c&sps.FlagBit != 0 {
		return '_'
	}
	return ' '
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func rtrim(s string) string { return strings.TrimRight(s, " ") }

func substr(s string, from, to int) string {
	if to < 0 || to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}

func sourceList(files []string) string {
	if len(files) == 0 {
		return ""
	}
	if len(files) == 1 {
		return files[0]
	}
	return files[0] + ",..."
}
