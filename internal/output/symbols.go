// symbols.go

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
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

const xrefPerLine = 8

func writeXref(p *printer, syms *sps.SymbolTable, meta Meta) {
	p.write("\f\n                                 Symbol Cross-Reference Table\n")
	p.write("                                 ============================\n")

	if meta.multi() {
		p.write("\n\n  Id  Source File\n")
		p.write("  --  --------------------------------------------------\n")
		for i, f := range meta.Files {
			p.printf("  %2d  %s\n", i+1, f)
		}
	}

	p.write("\n\n  Symbol   Addr.  Type    Defined  References\n")
	p.write("  -------  -----  ------  -------  " + strings.Repeat("-", 61) + "\n")

	for _, sym := range syms.Sorted() {
		defined := ""
		if sym.Resolved() {
			defined = meta.lineNumber(sym.Defined)
		}
		p.printf("  %-7s  %05d  %-6s  %7s", sym.Name, sym.Address, sym.Type, defined)
		cnt := 0
		for _, ref := range sym.References {
			if cnt++; cnt == xrefPerLine {
				p.write("\n                                 ")
				cnt = 1
			}
			p.printf("  %7s", meta.lineNumber(ref))
		}
		p.write("\n")
	}
}

// symbolEntry is the YAML form of one symbol.
type symbolEntry struct {
	Name       string   `yaml:"name"`
	Address    int      `yaml:"address"`
	Type       string   `yaml:"type"`
	Defined    string   `yaml:"defined,omitempty"`
	References []string `yaml:"references,omitempty"`
}

type symbolMap struct {
	Assembler string        `yaml:"assembler"`
	Sources   []string      `yaml:"sources"`
	Entry     int           `yaml:"entry"`
	Symbols   []symbolEntry `yaml:"symbols"`
}

func trimmedLine(meta Meta, key int) string {
	return strings.TrimSpace(meta.lineNumber(key))
}

// WriteSymbols writes the symbol table as a YAML document for tools that
// load the image alongside it.
func WriteSymbols(w io.Writer, prog *sps.Program, meta Meta) error {
	doc := symbolMap{
		Assembler: "IBM 1620 Jr. SPS Assembler (v" + Version + ")",
		Sources:   meta.Files,
		Entry:     prog.Entry,
	}
	for _, sym := range prog.Symbols.Sorted() {
		e := symbolEntry{
			Name:    sym.Name,
			Address: sym.Address,
			Type:    sym.Type.String(),
		}
		if sym.Resolved() {
			e.Defined = trimmedLine(meta, sym.Defined)
		}
		for _, ref := range sym.References {
			e.References = append(e.References, trimmedLine(meta, ref))
		}
		doc.Symbols = append(doc.Symbols, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
