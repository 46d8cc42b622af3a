// process.go

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

import "strings"

const (
	maxConstLength = 50
	maxVLCPairs    = 20
	maxSector      = 79999
	maxSectorCount = 200
	ddaLength      = 14
)

// Result is the outcome of processing one statement.
type Result struct {
	Statement    *Statement
	Shape        Shape
	LabelAddress int
	Address      int
	Length       int
	Count        int // DSB element count
	Value        Value
	Diagnostics  []Diagnostic
}

// Process lays out st, defines or verifies its label and, in pass 2,
// builds and stores its value.
func (c *Context) Process(st *Statement) *Result {
	r := &Result{Statement: st, Shape: st.Desc.Shape}

	switch st.Desc.Type {
	case TypeUnknown, TypeComment:

	case TypeDEND:
		c.dend = dendSeen
		c.unexpectedLabel(st)
		r.LabelAddress = c.evalLayout(st.Operand(0), CheckAddrEven)
		r.Address = r.LabelAddress
		c.entry = r.LabelAddress

	case TypeDORG:
		r.LabelAddress = c.evalLayout(st.Operand(0), CheckAddress)
		r.Address = r.LabelAddress
		c.counter = r.LabelAddress
		c.last = r.LabelAddress - 1
		c.define(st, r)

	case TypeHEAD:
		c.unexpectedLabel(st)
		op := st.Operand(0)
		switch {
		case isBlank(op):
			c.head = ' '
		case len(op) == 1 && validHead(op[0]):
			c.head = op[0]
		default:
			c.diag.Errorf("invalid head (%s)", op)
		}

	case TypeSEND, TypeTCD:
		c.unexpectedLabel(st)
		c.diag.Warnf("unsupported control operation (%s)", st.Desc.Mnemonic)

	case TypeTRA:
		c.diag.Warnf("unsupported control operation (%s)", st.Desc.Mnemonic)

	case TypeDAC, TypeDSAC:
		c.processAlpha(st, r)

	case TypeDAS:
		n := 2 * c.evalLength(st.Operand(0))
		c.layoutPairs(r, n, st.Operand(1))
		c.define(st, r)

	case TypeDC, TypeDSC:
		c.processNumeric(st, r)

	case TypeDNB:
		n := c.clampLength(c.evalLength(st.Operand(0)), "length greater than 50")
		c.layoutRight(r, n, st.Operand(1))
		c.define(st, r)
		if c.emitting() && n > 0 {
			r.Value = make(Value, n)
			for i := range r.Value {
				r.Value[i] = NumericBlank
			}
		}

	case TypeDGM:
		c.layoutRight(r, 1, st.Operand(0))
		c.define(st, r)
		if c.emitting() {
			r.Value = Value{GroupMark}
		}

	case TypeDOT:
		c.processDOT(st, r)

	case TypeDS:
		c.layoutRight(r, c.evalLength(st.Operand(0)), st.Operand(1))
		c.define(st, r)

	case TypeDSS:
		c.layoutLeft(r, c.evalLength(st.Operand(0)), st.Operand(1))
		c.define(st, r)

	case TypeDSB:
		c.processDSB(st, r)

	case TypeDSA:
		c.processDSA(st, r)

	case TypeDDA:
		c.processDDA(st, r)

	case TypeDVLC:
		c.processDVLC(st, r)

	case TypeInstruction:
		c.processInstruction(st, r)
	}

	if c.emitting() && len(r.Value) > 0 && !c.memory.Store(r.Address, r.Value) {
		c.diag.Errorf("invalid address (%d)", r.Address)
	}
	return r
}

func (c *Context) unexpectedLabel(st *Statement) {
	if !isBlank(st.Label()) {
		c.diag.Warnf("unexpected label (%s)", st.Label())
	}
}

// define records the label in pass 1 and checks it in pass 2.
func (c *Context) define(st *Statement, r *Result) {
	if c.pass == 1 {
		c.symbols.Add(st.Label(), r.LabelAddress, st.Desc.Type, c.line, c.head)
	} else {
		c.symbols.Verify(st.Label(), c.line, c.head)
	}
}

func (c *Context) checkBounds(r *Result) {
	if r.Address+r.Length > c.opts.MemorySize {
		c.diag.Errorf("outside memory bounds")
	}
}

// evalLayout evaluates an operand that positions a statement.
func (c *Context) evalLayout(op string, check Check) int {
	v, _ := c.Eval(op, c.last, false, true, check)
	return int(v)
}

// evalLength evaluates a length or count operand.
func (c *Context) evalLength(op string) int {
	return c.evalLayout(op, CheckValPositive)
}

func (c *Context) clampLength(n int, msg string) int {
	if n > maxConstLength {
		c.diag.Errorf("%s", msg)
		return maxConstLength
	}
	return n
}

func tail(n int) int {
	if n > 0 {
		return 1
	}
	return 0
}

// layoutRight places n cells addressed by their rightmost digit.
func (c *Context) layoutRight(r *Result, n int, addr string) {
	r.Length = n
	if isBlank(addr) {
		r.Address = c.counter
		c.counter += n
		c.last = c.counter - tail(n)
		r.LabelAddress = c.last
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddress)
		r.Address = r.LabelAddress - (n - tail(n))
	}
	c.checkBounds(r)
}

// layoutLeft places n cells addressed by their leftmost digit.
func (c *Context) layoutLeft(r *Result, n int, addr string) {
	r.Length = n
	if isBlank(addr) {
		r.LabelAddress = c.counter
		r.Address = c.counter
		c.counter += n
		c.last = c.counter - tail(n)
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddress)
		r.Address = r.LabelAddress
	}
	c.checkBounds(r)
}

// layoutPairs places n cells of character pairs at an even address,
// labelled by the odd address of the first character.
func (c *Context) layoutPairs(r *Result, n int, addr string) {
	r.Length = n
	if isBlank(addr) {
		c.alignEven()
		r.Address = c.counter
		r.LabelAddress = c.counter + 1
		c.counter += n
		c.last = c.counter - tail(n)
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddrOdd)
		r.Address = r.LabelAddress - tail(n)
	}
	c.checkBounds(r)
}

func (c *Context) processAlpha(st *Statement, r *Result) {
	n := c.clampLength(c.evalLength(st.Operand(0)), "length greater than 50")
	if st.Desc.Type == TypeDAC {
		c.layoutPairs(r, 2*n, st.Operand(2))
	} else {
		r.Length = 2 * n
		if addr := st.Operand(2); isBlank(addr) {
			c.alignEven()
			r.Address = c.counter
			c.counter += r.Length
			c.last = c.counter - tail(n)
			r.LabelAddress = c.last
		} else {
			r.LabelAddress = c.evalLayout(addr, CheckAddrOdd)
			r.Address = r.LabelAddress - (r.Length - tail(n))
		}
		c.checkBounds(r)
	}
	c.define(st, r)

	if c.emitting() && n > 0 {
		v, err := AlphaValue(n, st.Operand(1))
		if err != nil {
			c.diag.Errorf("%s", err)
		}
		v.flag(0)
		r.Value = v
	}
}

func (c *Context) processNumeric(st *Statement, r *Result) {
	n := c.clampLength(c.evalLength(st.Operand(0)), "length greater than 50")
	dc := st.Desc.Type == TypeDC
	if dc {
		c.layoutRight(r, n, st.Operand(2))
	} else {
		c.layoutLeft(r, n, st.Operand(2))
	}
	c.define(st, r)

	if !c.emitting() || n == 0 {
		return
	}
	v, err := NumValue(n, !dc, st.Operand(1))
	if err != nil {
		c.diag.Errorf("%s", err)
	}
	if dc && (n > 1 || v[0] != RecordMark) {
		v.flag(0)
	}
	r.Value = v
}

func (c *Context) processDOT(st *Statement, r *Result) {
	power := c.evalLength(st.Operand(0))
	switch {
	case power < 0:
		c.diag.Errorf("power less than 0")
		power = 0
	case power >= len(dotLengths):
		c.diag.Errorf("power greater than %d", len(dotLengths)-1)
		power = len(dotLengths) - 1
	}
	n := dotLengths[power]
	c.layoutRight(r, n, st.Operand(1))
	c.define(st, r)
	if c.emitting() {
		r.Value = Value(dotTable[len(dotTable)-n:]).Clone()
	}
}

func (c *Context) processDSB(st *Statement, r *Result) {
	size := c.evalLength(st.Operand(0))
	r.Count = c.evalLength(st.Operand(1))
	r.Length = size * r.Count
	r.Address = c.counter
	if addr := st.Operand(2); isBlank(addr) {
		r.LabelAddress = c.counter
		if r.Length > 0 {
			r.LabelAddress += size - 1
		}
		c.counter += r.Length
		c.last = c.counter - tail(r.Length)
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddress)
	}
	c.checkBounds(r)
	c.define(st, r)
}

func (c *Context) processDSA(st *Statement, r *Result) {
	last := c.last
	r.Length = 5 * len(st.Operands)
	r.Address = c.counter
	r.LabelAddress = c.counter
	if r.Length > 0 {
		r.LabelAddress += 4
	}
	c.counter += r.Length
	c.last = c.counter - tail(r.Length)
	c.checkBounds(r)
	c.define(st, r)

	if !c.emitting() {
		return
	}
	v := make(Value, r.Length)
	for i, op := range st.Operands {
		pos := 5*i + 4
		a, idx := c.Eval(op, last, c.indexOK(), false, CheckReference)
		v.SetField(pos, 5, true, a)
		v.SetIndexFlags(pos, idx.Register)
	}
	r.Value = v
}

func (c *Context) processDDA(st *Statement, r *Result) {
	r.Length = ddaLength
	if addr := st.Operand(0); isBlank(addr) {
		c.alignEven()
		r.Address = c.counter
		r.LabelAddress = c.counter
		c.counter += ddaLength
		c.last = c.counter - 1
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddrEven)
		r.Address = r.LabelAddress
	}
	c.checkBounds(r)
	c.define(st, r)

	if !c.emitting() {
		return
	}
	v := make(Value, ddaLength)
	drive, _ := c.Eval(st.Operand(1), 0, false, false, CheckValPositive)
	v.SetField(fieldDrive, 1, false, drive)

	sector, _ := c.Eval(st.Operand(2), 0, false, false, CheckValPositive)
	if sector > maxSector {
		c.diag.Errorf("sector address greater than %d", maxSector)
		sector = maxSector
	}
	v.SetField(fieldSector, 5, true, sector)

	count, _ := c.Eval(st.Operand(3), 0, false, false, CheckValPositive)
	switch {
	case count == 0:
		c.diag.Errorf("sector count zero")
		count = 1
	case count > maxSectorCount:
		c.diag.Errorf("sector count greater than %d", maxSectorCount)
		count = maxSectorCount
	}
	v.SetField(fieldCount, 3, true, count)

	addr, _ := c.Eval(st.Operand(4), c.last, false, true, CheckAddrEven)
	v.SetField(fieldAddress, 5, true, addr)
	r.Value = v
}

func (c *Context) processDVLC(st *Statement, r *Result) {
	var lens [maxVLCPairs]int
	n := 0
	for j := range lens {
		lens[j] = c.evalLength(st.Operand(1 + 2*j))
		n += lens[j]
	}
	if n > maxConstLength {
		c.diag.Errorf("total length greater than %d", maxConstLength)
		n = maxConstLength
	}
	r.Length = n
	if addr := st.Operand(0); isBlank(addr) {
		r.Address = c.counter
		c.counter += n
		c.last = c.counter - tail(n)
		r.LabelAddress = r.Address + lens[0] - tail(lens[0])
	} else {
		r.LabelAddress = c.evalLayout(addr, CheckAddress)
		r.Address = r.LabelAddress - (lens[0] - tail(lens[0]))
	}
	c.checkBounds(r)
	c.define(st, r)

	if !c.emitting() || n == 0 {
		return
	}
	v := make(Value, n)
	pos := -1
	for j, w := range lens {
		pos += w
		val, _ := c.Eval(st.Operand(2+2*j), 0, false, false, CheckValDouble)
		v.SetField(pos, w, true, val)
	}
	r.Value = v
}

// instructionLength returns the stored length; BB2 and B7 are short forms.
func instructionLength(d *Descriptor) int {
	switch {
	case d.OpCode == 42 && d.Mnemonic == "BB2":
		return 2
	case d.OpCode == 49 && d.Mnemonic == "B7":
		return 7
	}
	return 12
}

func (c *Context) processInstruction(st *Statement, r *Result) {
	d := st.Desc
	c.alignEven()
	r.Address = c.counter
	r.LabelAddress = c.counter
	r.Length = instructionLength(d)
	c.counter += r.Length
	c.last = c.counter - 1
	c.checkBounds(r)
	c.define(st, r)

	if !c.emitting() {
		return
	}
	v := make(Value, 12)
	v.SetField(FieldOp, 2, false, int64(d.OpCode))

	p, pi := c.evalP(st, r.Address)
	v.SetField(FieldP, 5, false, p)
	v.SetIndexFlags(FieldP, pi.Register)

	q, qi := c.evalQ(st, r.Address)
	switch {
	case d.Q == QImmediate && isBlank(st.Operand(2)):
		v.SetField(FieldQ, 5, true, q)
	case d.Q == QImmIndex:
		v.SetField(FieldQ, 5, true, q)
		v.SetIndexFlags(FieldQ, qi.Register)
	default:
		v.SetField(FieldQ, 5, false, q)
		v.SetIndexFlags(FieldQ, qi.Register)
	}

	if err := v.SetFlags(flagsOperand(st)); err != nil {
		c.diag.Errorf("%s", err)
	}
	r.Value = v[:r.Length]
}

func flagsOperand(st *Statement) string {
	if st.Desc.Q == QRefBit {
		return st.Operand(3)
	}
	return st.Operand(2)
}

func (c *Context) evalP(st *Statement, addr int) (int64, Index) {
	op := st.Operand(0)
	switch st.Desc.P {
	case PNone:
		if !isBlank(op) {
			c.diag.Warnf("P operand is ignored (%s)", op)
		}
	case PReference:
		return c.Eval(op, addr, c.indexOK(), false, CheckReference)
	case PRefEven, PRefOdd:
		check := CheckRefEven
		if st.Desc.P == PRefOdd {
			check = CheckRefOdd
		}
		if strings.Contains(flagsOperand(st), "6") {
			check = CheckReference
		}
		return c.Eval(op, addr, c.indexOK(), false, check)
	case PValue:
		return c.Eval(op, addr, c.indexOK(), false, CheckValue)
	}
	return 0, Index{}
}

func (c *Context) evalQ(st *Statement, addr int) (int64, Index) {
	op := st.Operand(1)
	switch st.Desc.Q {
	case QNone:
		if !isBlank(op) {
			c.diag.Warnf("Q operand is ignored (%s)", op)
		}

	case QReference:
		return c.Eval(op, addr, c.indexOK(), false, CheckReference)

	case QRefBit:
		q, _ := c.Eval(op, addr, false, false, CheckNone)
		d, _ := c.Eval(st.Operand(2), 0, false, false, CheckValPositive)
		d %= 10
		if abs64(q) >= 10000 {
			c.diag.Errorf("address greater than 9999 (%d)", q)
			return 0, Index{}
		}
		if q < 0 {
			return -(10000*d - q), Index{}
		}
		return 10000*d + q, Index{}

	case QImmediate:
		return c.Eval(op, addr, false, false, CheckValue)

	case QImmIndex, QValue:
		return c.Eval(op, addr, c.indexOK(), false, CheckValue)

	case QSkip:
		return c.tableQ(op, addr, skipCodes[:], "skip not in range 1 - %d (%d)")
	case QSkap:
		return c.tableQ(op, addr, skapCodes[:], "skip not in range 1 - %d (%d)")
	case QSpim:
		return c.tableQ(op, addr, spimCodes[:], "space not in range 1 - %d (%d)")
	case QSpap:
		return c.tableQ(op, addr, spapCodes[:], "space not in range 1 - %d (%d)")

	case QLiteral:
		if !isBlank(op) {
			c.diag.Warnf("Q operand overrides default (%s)", op)
			return c.Eval(op, addr, false, false, CheckNone)
		}
		return int64(st.Desc.QDefault), Index{}
	}
	return 0, Index{}
}

// tableQ maps a 1 based selector onto a Q field code.
func (c *Context) tableQ(op string, addr int, codes []int, msg string) (int64, Index) {
	q, _ := c.Eval(op, addr, false, false, CheckNone)
	if q < 1 || q > int64(len(codes)) {
		c.diag.Errorf(msg, len(codes), q)
		return 0, Index{}
	}
	return int64(codes[q-1]), Index{}
}
