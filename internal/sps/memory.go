// memory.go

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

// ---------------------------------------------------------------------
// Cell values
// ---------------------------------------------------------------------
const (
	FlagBit   byte = 0x10
	DigitMask byte = 0x0F
	CellMask  byte = 0x1F

	RecordMark      byte = 0x0A
	RecordGroupMark byte = 0x0B
	NumericBlank    byte = 0x0C
	GroupMark       byte = 0x0F
	Undefined       byte = 0xE0
)

// Memory sizes the machine was offered in.
var MemorySizes = []int{20000, 40000, 60000, 80000, 100000}

const DefaultMemorySize = 60000

// ValidMemorySize reports whether n is one of MemorySizes.
func ValidMemorySize(n int) bool {
	for _, s := range MemorySizes {
		if s == n {
			return true
		}
	}
	return false
}

// IsMark reports whether the cell holds a record mark or group mark.
func IsMark(cell byte) bool {
	d := cell & DigitMask
	return d == RecordMark || d == GroupMark
}

// ---------------------------------------------------------------------
// Low core and arithmetic tables
// ---------------------------------------------------------------------
const (
	startupCells      = 36
	multiplyTableAddr = 100
	addTableAddr      = 300
	tablesEndAddr     = 400
)

// MultiplyTable is loaded at 00100.
var MultiplyTable = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00,
	0x00, 0x00, 0x02, 0x00, 0x04, 0x00, 0x06, 0x00, 0x08, 0x00, 0x00, 0x00, 0x03, 0x00, 0x06, 0x00, 0x09, 0x00, 0x02, 0x01,
	0x00, 0x00, 0x04, 0x00, 0x08, 0x00, 0x02, 0x01, 0x06, 0x01, 0x00, 0x00, 0x05, 0x00, 0x00, 0x01, 0x05, 0x01, 0x00, 0x02,
	0x00, 0x00, 0x06, 0x00, 0x02, 0x01, 0x08, 0x01, 0x04, 0x02, 0x00, 0x00, 0x07, 0x00, 0x04, 0x01, 0x01, 0x02, 0x08, 0x02,
	0x00, 0x00, 0x08, 0x00, 0x06, 0x01, 0x04, 0x02, 0x02, 0x03, 0x00, 0x00, 0x09, 0x00, 0x08, 0x01, 0x07, 0x02, 0x06, 0x03,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0x00, 0x06, 0x00, 0x07, 0x00, 0x08, 0x00, 0x09, 0x00,
	0x00, 0x01, 0x02, 0x01, 0x04, 0x01, 0x06, 0x01, 0x08, 0x01, 0x05, 0x01, 0x08, 0x01, 0x01, 0x02, 0x04, 0x02, 0x07, 0x02,
	0x00, 0x02, 0x04, 0x02, 0x08, 0x02, 0x02, 0x03, 0x06, 0x03, 0x05, 0x02, 0x00, 0x03, 0x05, 0x03, 0x00, 0x04, 0x05, 0x04,
	0x00, 0x03, 0x06, 0x03, 0x02, 0x04, 0x08, 0x04, 0x04, 0x05, 0x05, 0x03, 0x02, 0x04, 0x09, 0x04, 0x06, 0x05, 0x03, 0x06,
	0x00, 0x04, 0x08, 0x04, 0x06, 0x05, 0x04, 0x06, 0x02, 0x07, 0x05, 0x04, 0x04, 0x05, 0x03, 0x06, 0x02, 0x07, 0x01, 0x08,
}

// AddTable is loaded at 00300 on a model 1 only; the model 2 adds in hardware.
var AddTable = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10,
	0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12,
	0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14,
	0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16,
	0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
}

// dotLengths is the length of the DOT constant for powers 0 through 13.
var dotLengths = [...]int{3, 5, 7, 10, 14, 19, 25, 32, 40, 49, 59, 69, 80, 92}

// dotTable holds the DOT constants back to back; a constant is the last
// dotLengths[power] cells.
var dotTable = []byte{
	0x15, 0x04, 0x09, 0x07, 0x05, 0x05, 0x08, 0x01, 0x03, 0x08, 0x08, 0x08,
	0x16, 0x08, 0x07, 0x01, 0x09, 0x04, 0x07, 0x06, 0x07, 0x03, 0x06,
	0x18, 0x05, 0x08, 0x09, 0x09, 0x03, 0x04, 0x05, 0x09, 0x02,
	0x11, 0x00, 0x07, 0x03, 0x07, 0x04, 0x01, 0x08, 0x02, 0x04,
	0x11, 0x03, 0x04, 0x02, 0x01, 0x07, 0x07, 0x02, 0x08,
	0x11, 0x06, 0x07, 0x07, 0x07, 0x02, 0x01, 0x06,
	0x12, 0x00, 0x09, 0x07, 0x01, 0x05, 0x02,
	0x12, 0x06, 0x02, 0x01, 0x04, 0x04,
	0x13, 0x02, 0x07, 0x06, 0x08,
	0x14, 0x00, 0x09, 0x06,
	0x15, 0x01, 0x02,
	0x16, 0x04,
	0x10, 0x08,
	0x10, 0x01,
	0x0a,
}

// Q field codes selected by the skip and space mnemonics.
var (
	skipCodes = [...]int{971, 972, 973, 974, 975, 976, 977, 978, 979, 970, 933, 934}
	skapCodes = [...]int{941, 942, 943, 944, 945, 946, 947, 948, 949, 940, 903, 904}
	spimCodes = [...]int{951, 952, 953}
	spapCodes = [...]int{921, 962, 963}
)

// Startup instructions at 00000, 00012 and 00024.
var (
	nopInstr    = Value{4, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	haltInstr   = Value{4, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	branchInstr = Value{4, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
)

// ---------------------------------------------------------------------
// Memory image
// ---------------------------------------------------------------------

// Memory is the assembled core image, one cell per decimal digit.
type Memory struct {
	cells []byte
}

// NewMemory returns a memory of size cells, all undefined.
func NewMemory(size int) *Memory {
	m := &Memory{cells: make([]byte, size)}
	m.Clear()
	return m
}

// Clear marks every cell undefined.
func (m *Memory) Clear() {
	for i := range m.cells {
		m.cells[i] = Undefined
	}
}

func (m *Memory) Size() int { return len(m.cells) }

// At returns the cell at addr, or Undefined outside the image.
func (m *Memory) At(addr int) byte {
	if addr < 0 || addr >= len(m.cells) {
		return Undefined
	}
	return m.cells[addr]
}

// Cells exposes the raw image to the dumpers.
func (m *Memory) Cells() []byte { return m.cells }

// Fits reports whether length cells starting at addr lie inside the image.
func (m *Memory) Fits(addr, length int) bool {
	return addr >= 0 && addr+length <= len(m.cells)
}

// Store copies v into memory at addr. An empty value is a no-op.
func (m *Memory) Store(addr int, v Value) bool {
	if len(v) == 0 {
		return true
	}
	if !m.Fits(addr, len(v)) {
		return false
	}
	copy(m.cells[addr:], v)
	return true
}

// LastDefined returns the highest defined address, or -1 when empty.
func (m *Memory) LastDefined() int {
	for i := len(m.cells) - 1; i >= 0; i-- {
		if m.cells[i] != Undefined {
			return i
		}
	}
	return -1
}

// seedLowCore writes the startup instructions and, optionally, the
// arithmetic tables.
func (m *Memory) seedLowCore(entry int, halt, tables bool, model Model) {
	m.Store(0, nopInstr)
	if halt {
		m.Store(12, haltInstr)
	} else {
		m.Store(12, nopInstr)
	}
	b := branchInstr.Clone()
	b.SetField(FieldP, 5, false, int64(entry))
	m.Store(24, b)

	if !tables {
		return
	}
	m.Store(multiplyTableAddr, MultiplyTable)
	if model == Model1 {
		m.Store(addTableAddr, AddTable)
	}
	m.Store(tablesEndAddr, Value{RecordMark})
}
