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

package sps

import (
	"regexp"
	"sort"
	"strings"
)

// ValidHeads lists the characters HEAD accepts; blank clears the head.
const ValidHeads = " ABCDEFGHIJKLMNOPQRSTUVWXY0123456789"

var (
	labelPattern    = regexp.MustCompile(`^[A-Z0-9=/@.]{1,6}$`)
	labelXPattern   = regexp.MustCompile(`^[A-Z0-9=@.]{1,6}$`)
	symbolHPattern  = regexp.MustCompile(`^[A-Z0-9]?\$[A-Z0-9=/@.]{1,5}$`)
	symbolHXPattern = regexp.MustCompile(`^[A-Z0-9]?\$[A-Z0-9=@.]{1,5}$`)
)

func validHead(c byte) bool {
	return strings.IndexByte(ValidHeads, c) >= 0
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name       string
	Address    int
	Type       Type
	Defined    int
	References []int
}

// Resolved reports whether the symbol was defined by a label. An undefined
// symbol is entered by its first pass 2 reference so the cross reference
// can list where it was used.
func (s *Symbol) Resolved() bool { return s.Defined > 0 }

func (s *Symbol) reference(line int) {
	i := sort.SearchInts(s.References, line)
	if i < len(s.References) && s.References[i] == line {
		return
	}
	s.References = append(s.References, 0)
	copy(s.References[i+1:], s.References[i:])
	s.References[i] = line
}

// SymbolTable maps symbol keys to their definitions. Keys carry the
// active head as "H$NAME".
type SymbolTable struct {
	symbols      map[string]*Symbol
	symbolDivide bool
	diag         *Diagnostics
}

// NewSymbolTable creates an empty table. symbolDivide admits '/' in names.
func NewSymbolTable(diag *Diagnostics, symbolDivide bool) *SymbolTable {
	return &SymbolTable{
		symbols:      make(map[string]*Symbol),
		symbolDivide: symbolDivide,
		diag:         diag,
	}
}

// ValidLabel reports whether name may be defined as a label.
func (st *SymbolTable) ValidLabel(name string) bool {
	p := labelPattern
	if !st.symbolDivide {
		p = labelXPattern
	}
	return p.MatchString(name) && !numberPattern.MatchString(name)
}

// ValidSymbol reports whether name may be referenced, with or without a head.
func (st *SymbolTable) ValidSymbol(name string) bool {
	p, h := labelPattern, symbolHPattern
	if !st.symbolDivide {
		p, h = labelXPattern, symbolHXPattern
	}
	return (p.MatchString(name) || h.MatchString(name)) && !numberPattern.MatchString(name)
}

func headKey(head byte, name string) string {
	if head != ' ' && len(name) < 6 {
		return string(head) + "$" + name
	}
	return name
}

// Add defines name at address. The first definition wins.
func (st *SymbolTable) Add(name string, address int, t Type, line int, head byte) {
	if isBlank(name) {
		return
	}
	if !st.ValidLabel(name) {
		st.diag.Errorf("invalid label (%s)", name)
		return
	}
	key := headKey(head, name)
	if _, ok := st.symbols[key]; ok {
		st.diag.Errorf("duplicate label (%s)", key)
		return
	}
	st.symbols[key] = &Symbol{Name: key, Address: address, Type: t, Defined: line}
}

// Verify checks in pass 2 that name is the one defined at line in pass 1.
func (st *SymbolTable) Verify(name string, line int, head byte) {
	if isBlank(name) {
		return
	}
	if !st.ValidSymbol(name) {
		st.diag.Errorf("invalid label (%s)", name)
		return
	}
	key := headKey(head, name)
	if sym, ok := st.symbols[key]; ok && sym.Resolved() && sym.Defined != line {
		st.diag.Errorf("duplicate label (%s)", key)
	}
}

// Lookup resolves name as referenced from line and records the reference.
// With enforceOrder a symbol defined after line resolves to 0.
func (st *SymbolTable) Lookup(name string, line int, enforceOrder bool, head byte) int {
	if isBlank(name) {
		return 0
	}

	var key string
	switch pos := strings.IndexByte(name, '$'); pos {
	case -1:
		if !st.ValidSymbol(name) {
			st.diag.Errorf("invalid symbol (%s)", name)
			return 0
		}
		key = headKey(head, name)
	case 0:
		key = name[1:]
	case 1:
		if !validHead(name[0]) {
			st.diag.Errorf("invalid symbol head (%c)", name[0])
			return 0
		}
		if rest := name[2:]; !st.ValidSymbol(rest) {
			st.diag.Errorf("invalid symbol (%s)", rest)
			return 0
		}
		key = name
	default:
		st.diag.Errorf("invalid symbol head (%s)", name[:pos])
		return 0
	}

	sym, ok := st.symbols[key]
	if !ok && st.diag.pass == 2 {
		sym = &Symbol{Name: key, Type: TypeUnknown}
		st.symbols[key] = sym
		ok = true
	}
	if !ok || !sym.Resolved() {
		st.diag.Errorf("undefined symbol (%s)", key)
		if ok {
			sym.reference(line)
		}
		return 0
	}
	if enforceOrder && sym.Defined > line {
		st.diag.Errorf("undefined [forward reference] symbol (%s)", key)
		return 0
	}
	sym.reference(line)
	return sym.Address
}

// Get returns the symbol stored under key.
func (st *SymbolTable) Get(key string) (*Symbol, bool) {
	sym, ok := st.symbols[key]
	return sym, ok
}

func (st *SymbolTable) Len() int { return len(st.symbols) }

// Sorted returns every symbol ordered by key.
func (st *SymbolTable) Sorted() []*Symbol {
	out := make([]*Symbol, 0, len(st.symbols))
	for _, sym := range st.symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
