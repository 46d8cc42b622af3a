// expr.go

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
	"strconv"
)

// Check is the normalisation applied to an evaluated operand.
type Check int

const (
	CheckNone Check = iota
	CheckAddress
	CheckAddrEven
	CheckAddrOdd
	CheckReference
	CheckRefEven
	CheckRefOdd
	CheckValue
	CheckValPositive
	CheckValDouble
)

const (
	maxValue       = 99999
	maxDoubleValue = 9999999999
)

var indexPattern = regexp.MustCompile(`^\([AB]?[0-7]\)$`)

// Index is a trailing index notation such as "(3)" or "(B5)".
type Index struct {
	Register int
	Bank     byte // 'A', 'B' or 0 when not given
}

// exprStack holds alternating terms and operators.
type exprStack struct {
	terms []int64
	ops   []byte
}

func (s *exprStack) pushTerm(v int64) { s.terms = append(s.terms, v) }
func (s *exprStack) pushOp(op byte)   { s.ops = append(s.ops, op) }

// dangling reports an operator without a right hand term.
func (s *exprStack) dangling() bool { return len(s.ops) >= len(s.terms) }

func (s *exprStack) collapse(i int, v int64) {
	s.terms[i] = v
	s.terms = append(s.terms[:i+1], s.terms[i+2:]...)
	s.ops = append(s.ops[:i], s.ops[i+1:]...)
}

// fold applies '*' and '/' left to right, then '+' and '-'.
func (s *exprStack) fold() (int64, bool) {
	for i := 0; i < len(s.ops); {
		switch s.ops[i] {
		case '*':
			s.collapse(i, s.terms[i]*s.terms[i+1])
		case '/':
			if s.terms[i+1] == 0 {
				return 0, false
			}
			s.collapse(i, s.terms[i]/s.terms[i+1])
		default:
			i++
		}
	}
	acc := s.terms[0]
	for i, op := range s.ops {
		switch op {
		case '+':
			acc += s.terms[i+1]
		case '-':
			acc -= s.terms[i+1]
		}
	}
	return acc, true
}

// Eval evaluates operand. star is the value of '*', indexOK admits a
// trailing index and enforceOrder rejects symbols defined after the
// current line. Errors are reported and evaluate to a safe default.
func (c *Context) Eval(operand string, star int, indexOK, enforceOrder bool, check Check) (int64, Index) {
	var idx Index
	if isBlank(operand) {
		return 0, idx
	}

	var stack exprStack
	pos, size := 0, len(operand)
	if operand[0] == '-' {
		stack.pushTerm(0)
		stack.pushOp('-')
		pos++
		if pos == size {
			return 0, idx
		}
	}

	indexed := false
	for {
		start := pos
		pos++
		var op byte
		for pos < size {
			op = operand[pos]
			if op == '+' || op == '-' || op == '*' || (op == '/' && !c.opts.SymbolDivide) {
				break
			}
			if op == '(' {
				indexed = true
				break
			}
			pos++
		}
		v, ok := c.term(operand[start:pos], star, enforceOrder)
		if !ok {
			c.diag.Errorf("invalid operand (%s)", operand)
			return 0, idx
		}
		stack.pushTerm(v)
		if pos == size || indexed {
			break
		}
		stack.pushOp(op)
		pos++
		if pos == size {
			break
		}
	}

	if indexed && !indexOK {
		c.diag.Errorf("indexing not supported %s", operand[pos:])
	}
	if stack.dangling() {
		c.diag.Errorf("invalid operand (%s)", operand)
		return 0, idx
	}

	v, ok := stack.fold()
	if !ok {
		c.diag.Errorf("divide by zero")
		return 0, idx
	}
	v = c.check(v, check)

	if indexed && indexOK {
		rest := operand[pos:]
		if indexPattern.MatchString(rest) {
			idx.Register = int(operand[size-2] - '0')
			if len(rest) == 4 {
				idx.Bank = rest[1]
			}
		} else {
			c.diag.Errorf("invalid index %s", rest)
		}
	}
	return v, idx
}

func (c *Context) term(t string, star int, enforceOrder bool) (int64, bool) {
	switch {
	case t == "*":
		return int64(star), true
	case numberPattern.MatchString(t):
		v, err := strconv.ParseInt(t, 10, 64)
		return v, err == nil
	case c.symbols.ValidSymbol(t):
		return int64(c.symbols.Lookup(t, c.line, enforceOrder, c.head)), true
	}
	return 0, false
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// check normalises v. Address checks correct the value and report errors;
// reference checks only warn since such operands may be patched at load.
func (c *Context) check(v int64, check Check) int64 {
	size := int64(c.opts.MemorySize)
	switch check {
	case CheckAddress:
		if v < 0 {
			c.diag.Errorf("address must be positive (%d)", v)
			v = -v
		}
		if v >= size {
			c.diag.Errorf("address too large (%d)", v)
			v = 0
		}

	case CheckAddrEven:
		if v < 0 {
			c.diag.Errorf("address must be positive (%d)", v)
			v = -v
		}
		if v&1 != 0 {
			c.diag.Errorf("address must be even (%d)", v)
			v++
		}
		if v >= size {
			c.diag.Errorf("address too large (%d)", v)
			v = 0
		}

	case CheckAddrOdd:
		if v < 0 {
			c.diag.Errorf("address must be positive (%d)", v)
			v = -v
		}
		if v&1 != 1 {
			c.diag.Errorf("address must be odd (%d)", v)
			v++
		}
		if v >= size {
			c.diag.Errorf("address too large (%d)", v)
			v = 1
		}

	case CheckReference:
		if abs64(v) >= size {
			c.diag.Warnf("address too large (%d)", v)
		}

	case CheckRefEven:
		if v >= 0 && v&1 != 0 {
			c.diag.Warnf("address must be even (%d)", v)
		}
		if abs64(v) >= size {
			c.diag.Warnf("address too large (%d)", v)
		}

	case CheckRefOdd:
		if v >= 0 && v&1 != 1 {
			c.diag.Warnf("address must be odd (%d)", v)
		}
		if abs64(v) >= size {
			c.diag.Warnf("address too large (%d)", v)
		}

	case CheckValue:
		if abs64(v) > maxValue {
			c.diag.Errorf("value too large (%d)", v)
			v = 0
		}

	case CheckValPositive:
		if v < 0 {
			c.diag.Errorf("value must be positive (%d)", v)
			v = -v
		}
		if v > maxValue {
			c.diag.Errorf("value too large (%d)", v)
			v = 0
		}

	case CheckValDouble:
		if abs64(v) > maxDoubleValue {
			c.diag.Errorf("value too large (%d)", v)
			v = 0
		}
	}
	return v
}
