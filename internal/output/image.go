// image.go

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

const (
	cmemRule    = "// ---------------------------------------------------------------\n"
	cmemComment = "                                                                    //"
	cmemChunk   = 20
)

// Card loader decks punched ahead of and behind the program records.
const (
	crdLoader1 = "41000000050036001100050026000470011925001090000026000660011431000000012000000000\n"
	crdLoader2 = "]0072]0108260009000119250000000109490001200000|000000000000000000000000000000000\n"
	crdLoader3 = "]0028]01093600160005003600080005001600001000L6490000004900028|000000000000000000\n"

	crdFirstAddr  = 240
	crdRecordSize = 60
	crdCardSize   = 80
)

func hexCells(v sps.Value) string {
	var b strings.Builder
	for _, c := range v {
		fmt.Fprintf(&b, "%02X ", c)
	}
	return b.String()
}

// instrHex renders an instruction as op, P and Q groups.
func instrHex(v sps.Value) string {
	g := func(from, to int) string {
		parts := make([]string, 0, to-from)
		for i := from; i < to && i < len(v); i++ {
			parts = append(parts, fmt.Sprintf("%02X", v[i]))
		}
		return strings.Join(parts, " ")
	}
	switch {
	case len(v) <= 2:
		return g(0, 2)
	case len(v) <= 7:
		return g(0, 2) + "  " + g(2, 7)
	}
	return g(0, 2) + "  " + g(2, 7) + "  " + g(7, 12)
}

func tableLines(p *printer, title string, addr int, table []byte) {
	p.printf("\n// %s\n", title)
	for i := 0; i < len(table); i += cmemChunk {
		end := i + cmemChunk
		if end > len(table) {
			end = len(table)
		}
		p.printf("%05d: %s\n", addr+i, strings.TrimSuffix(hexCells(table[i:end]), " "))
	}
}

// writeLowCore lists the startup instructions and, when loaded, the
// arithmetic tables.
func writeLowCore(p *printer, prog *sps.Program) {
	p.write(cmemRule)
	p.write("// Startup\n")
	for i := 0; i+12 <= len(prog.Startup); i += 12 {
		p.printf("%05d: %-37s\n", i, instrHex(prog.Startup[i:i+12]))
	}
	if prog.Options.Tables {
		tableLines(p, "Multiply table", 100, sps.MultiplyTable)
		if prog.Options.Model == sps.Model1 {
			tableLines(p, "Add table", 300, sps.AddTable)
		}
		p.write("\n// Record mark\n00400: 0A\n")
	}
	p.write(cmemRule + "\n\n")
}

func fields(ln sps.Line) string {
	return fmt.Sprintf("%-6s %-4s %s", ln.Label, ln.Operation, ln.Operands)
}

func cmemSource(ln sps.Line, fixed bool) string {
	if fixed {
		return substr(ln.Text, 5, -1)
	}
	return ln.Text
}

// WriteCmem writes the memory image as an annotated hex dump, one entry
// per statement.
func WriteCmem(w io.Writer, prog *sps.Program, meta Meta) error {
	p := &printer{w: w}
	p.printf("// IBM 1620 Jr. SPS Assembler (v%s)\n", Version)
	p.printf("// Source: %s\n", sourceList(meta.Files))
	p.printf("// Assembled: %s\n\n", meta.stamp())
	writeLowCore(p, prog)

	for _, r := range prog.Results {
		ln := r.Statement.Line
		switch r.Shape {
		case sps.ShapeUnknown, sps.ShapeComment:
			p.write(cmemComment + cmemSource(ln, meta.Fixed) + "\n")

		case sps.ShapeControl:
			p.write(cmemComment + "   " + cmemSource(ln, meta.Fixed) + "\n")

		case sps.ShapeInstruction, sps.ShapeInstr2, sps.ShapeInstr7:
			p.printf("%05d: %-59s  // %s\n", r.Address, instrHex(r.Value), fields(ln))

		case sps.ShapeData:
			if len(r.Value) == 0 {
				p.write(cmemComment + " " + fields(ln) + "\n")
				continue
			}
			for i := 0; i < len(r.Value); i += cmemChunk {
				end := i + cmemChunk
				if end > len(r.Value) {
					end = len(r.Value)
				}
				chunk := hexCells(r.Value[i:end])
				if i == 0 {
					p.printf("%05d: %-60s // %s\n", r.Address, chunk, fields(ln))
				} else {
					p.printf("%05d: %-60s\n", r.Address+i, chunk)
				}
			}

		case sps.ShapeAddress, sps.ShapeReserve1, sps.ShapeReserve2:
			p.write(cmemComment + " " + fields(ln) + "\n")
		}
	}
	return p.err
}

// addressField renders a card address with the ten thousands digit
// flagged.
func addressField(addr int) string {
	return string([]byte{
		crdChars[(addr/10000)|int(sps.FlagBit)],
		crdChar(byte(addr / 1000 % 10)),
		crdChar(byte(addr / 100 % 10)),
		crdChar(byte(addr / 10 % 10)),
		crdChar(byte(addr % 10)),
	})
}

// WriteCrd writes the image as a self loading card deck.
func WriteCrd(w io.Writer, prog *sps.Program) error {
	p := &printer{w: w}
	cells := prog.Memory.Cells()
	size := len(cells)

	p.write(crdLoader1)
	p.write(crdLoader2)

	addr := crdFirstAddr
	for addr < size {
		for addr < size && cells[addr] == sps.Undefined {
			addr++
		}
		if addr >= size {
			break
		}

		var b strings.Builder
		seen := false
		end := addr + crdRecordSize
		if end > size {
			end = size
		}
		next := addr
		for ; next < end; next++ {
			c := cells[next]
			if c == sps.Undefined {
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(crdChar(c))
			if sps.IsMark(c) {
				seen = true
				next++
				break
			}
		}

		rec := rtrim(b.String())
		stop := (addr + len(rec)) % size
		if !seen {
			rec += "|"
		}
		p.printf("%5s%5s%s\n", addressField(addr), addressField(stop), rec)
		addr = next
	}

	p.write(crdLoader3)
	for _, from := range []int{160, 80, 0} {
		var b strings.Builder
		for i := from; i < from+crdCardSize && i < size; i++ {
			b.WriteByte(crdChar(cells[i]))
		}
		p.write(b.String() + "\n")
	}
	return p.err
}

// WritePt writes the image as paper tape codes up to the last defined
// cell, closed by an end of line code.
func WritePt(w io.Writer, prog *sps.Program) error {
	last := prog.Memory.LastDefined()
	if last < 0 {
		return nil
	}
	cells := prog.Memory.Cells()
	buf := make([]byte, 0, last+2)
	for _, c := range cells[:last+1] {
		buf = append(buf, ptCodes[c&sps.CellMask])
	}
	buf = append(buf, ptEOL)
	_, err := w.Write(buf)
	return err
}
