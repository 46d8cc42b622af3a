// listing.go

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
	"time"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

// Meta describes the run an artifact is written for.
type Meta struct {
	Files []string  // resolved source names, in order
	Fixed bool      // fixed card format
	Stamp time.Time // assembly time
}

func (m Meta) multi() bool { return len(m.Files) > 1 }

func (m Meta) stamp() string { return m.Stamp.Format(stampLayout) }

// lineNumber renders a line key the way the listing prints it.
func (m Meta) lineNumber(key int) string {
	file, line := sps.SplitLineKey(key)
	if m.multi() {
		return fmt.Sprintf("%2d:%-4d", file, line)
	}
	return fmt.Sprintf("%7d", line)
}

// formatted renders the source line in listing columns.
func (m Meta) formatted(r *sps.Result) string {
	text := r.Statement.Line.Text
	if !m.Fixed {
		return rtrim(text)
	}
	if r.Shape == sps.ShapeComment {
		return rtrim(fmt.Sprintf("%-5s %-70s  %s", substr(text, 0, 5), substr(text, 5, 75), substr(text, 75, -1)))
	}
	return rtrim(fmt.Sprintf("%-5s %-6s %-4s %s", substr(text, 0, 5), substr(text, 5, 11), substr(text, 11, 15), substr(text, 15, -1)))
}

func (m Meta) message(d sps.Diagnostic) string {
	indent := ""
	if m.multi() {
		indent = "  "
	}
	return indent + "                               ^^^ " + d.String() + "\n"
}

// WriteListing writes the pass 2 listing followed by the symbol
// cross-reference table.
func WriteListing(w io.Writer, prog *sps.Program, meta Meta) error {
	p := &printer{w: w}
	p.printf("IBM 1620 Jr. SPS Assembler (v%s)    Source: %s    Assembled: %s\n\n",
		Version, sourceList(meta.Files), meta.stamp())

	file := 0
	for _, r := range prog.Results {
		if meta.multi() {
			for ; file < r.Statement.Line.File; file++ {
				fileBanner(p, file+1, meta.Files)
			}
		}
		listStatement(p, r, meta)
		for _, d := range r.Diagnostics {
			p.write(meta.message(d))
		}
	}
	if meta.multi() {
		for ; file < len(meta.Files); file++ {
			fileBanner(p, file+1, meta.Files)
		}
	}
	for _, d := range prog.Trailing {
		p.write(meta.message(d))
	}

	writeXref(p, prog.Symbols, meta)
	return p.err
}

func fileBanner(p *printer, index int, files []string) {
	name := ""
	if index <= len(files) {
		name = files[index-1]
	}
	p.printf("\n  ------ %d: %s --------------------------------------------------\n\n", index, name)
}

// cellText renders cells through conv, inserting a blank before each
// position listed in gaps.
func cellText(v sps.Value, n int, conv func(byte) byte, gaps ...int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		for _, g := range gaps {
			if g == i {
				b.WriteByte(' ')
			}
		}
		var c byte
		if i < len(v) {
			c = v[i]
		}
		b.WriteByte(conv(c))
	}
	return b.String()
}

func flagLine(p *printer, flags string, width int) {
	if strings.TrimSpace(flags) == "" {
		return
	}
	p.printf("               %-*s\n", width, rtrim(flags))
}

// dataText shows short values whole and long ones as head..tail.
func dataText(v sps.Value, conv func(byte) byte) string {
	if len(v) <= 14 {
		return cellText(v, len(v), conv)
	}
	return cellText(v[:6], 6, conv) + ".." + cellText(v[len(v)-6:], 6, conv)
}

func dataFlags(v sps.Value) string {
	if len(v) <= 14 {
		return cellText(v, len(v), flagChar)
	}
	return cellText(v[:6], 6, flagChar) + "  " + cellText(v[len(v)-6:], 6, flagChar)
}

func listStatement(p *printer, r *sps.Result, meta Meta) {
	num := meta.lineNumber(r.Statement.Line.Number)
	text := meta.formatted(r)

	switch r.Shape {
	case sps.ShapeUnknown, sps.ShapeComment, sps.ShapeControl:
		p.printf("%s                        %s\n", num, text)

	case sps.ShapeAddress:
		p.printf("%s  %05d                 %s\n", num, r.LabelAddress, text)

	case sps.ShapeInstruction:
		flagLine(p, cellText(r.Value, 12, flagChar, 2, 7), 14)
		p.printf("%s  %05d %-14s  %s\n", num, r.Address, cellText(r.Value, 12, listChar, 2, 7), text)

	case sps.ShapeInstr2:
		flagLine(p, cellText(r.Value, 2, flagChar), 2)
		p.printf("%s  %05d %-2s              %s\n", num, r.Address, cellText(r.Value, 2, listChar), text)

	case sps.ShapeInstr7:
		flagLine(p, cellText(r.Value, 7, flagChar, 2), 8)
		p.printf("%s  %05d %-8s        %s\n", num, r.Address, cellText(r.Value, 7, listChar, 2), text)

	case sps.ShapeData:
		flagLine(p, dataFlags(r.Value), 14)
		p.printf("%s  %05d %-14s  %s\n", num, r.Address, dataText(r.Value, listChar), text)

	case sps.ShapeReserve1:
		p.printf("%s  %05d    %05d        %s\n", num, r.LabelAddress, r.Length, text)

	case sps.ShapeReserve2:
		p.printf("%s  %05d    %05d %05d  %s\n", num, r.LabelAddress, r.Length, r.Count, text)
	}
}
