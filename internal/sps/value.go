// value.go

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

	"github.com/pkg/errors"
)

// Field positions, each the offset of the low order digit.
const (
	FieldOp = 1
	FieldP  = 6
	FieldQ  = 11

	fieldDrive   = 0
	fieldSector  = 5
	fieldCount   = 8
	fieldAddress = 13
)

var (
	numberPattern    = regexp.MustCompile(`^[0-9]+$`)
	numberXPattern   = regexp.MustCompile(`^[0-9I-R\]]+$`) // ] is a flagged zero
	alphaPattern     = regexp.MustCompile(`^[A-Z0-9 .)+$*\-/,(=@]*$`)
	flagsPattern     = regexp.MustCompile(`^0?1?2?3?4?5?6?7?8?9?(10)?(11)?$`)
	errValueTooLarge = errors.New("value too large")
)

// alphaCodes maps a source character to its two digit code.
var alphaCodes = [128]uint16{
	' ': 0x0000, '.': 0x0003, ')': 0x0004,
	'+': 0x0100, '$': 0x0103, '*': 0x0104,
	'-': 0x0200, '/': 0x0201, ',': 0x0203, '(': 0x0204,
	'=': 0x0303, '@': 0x0304,
	'A': 0x0401, 'B': 0x0402, 'C': 0x0403, 'D': 0x0404, 'E': 0x0405, 'F': 0x0406, 'G': 0x0407, 'H': 0x0408, 'I': 0x0409,
	'J': 0x0501, 'K': 0x0502, 'L': 0x0503, 'M': 0x0504, 'N': 0x0505, 'O': 0x0506, 'P': 0x0507, 'Q': 0x0508, 'R': 0x0509,
	'S': 0x0602, 'T': 0x0603, 'U': 0x0604, 'V': 0x0605, 'W': 0x0606, 'X': 0x0607, 'Y': 0x0608, 'Z': 0x0609,
	'0': 0x0700, '1': 0x0701, '2': 0x0702, '3': 0x0703, '4': 0x0704, '5': 0x0705, '6': 0x0706, '7': 0x0707, '8': 0x0708, '9': 0x0709,
}

// Value is the cell buffer a statement stores into memory.
type Value []byte

func (v Value) Clone() Value {
	out := make(Value, len(v))
	copy(out, v)
	return out
}

func (v Value) flag(i int) {
	if i >= 0 && i < len(v) {
		v[i] |= FlagBit
	}
}

// SetField packs n into width digits ending at offset. A negative n flags
// the low order digit; flagFirst flags the high order digit.
func (v Value) SetField(offset, width int, flagFirst bool, n int64) {
	if width == 0 {
		return
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	for i, off := 0, offset; i < width; i, off = i+1, off-1 {
		if off >= 0 && off < len(v) {
			v[off] = byte(abs % 10)
		}
		abs /= 10
	}
	if n < 0 {
		v.flag(offset)
	}
	if flagFirst {
		v.flag(offset - width + 1)
	}
}

// Field decodes width digits ending at offset, taking the sign from the
// flag on the low order digit.
func (v Value) Field(offset, width int) int64 {
	var n int64
	for off := offset - width + 1; off <= offset; off++ {
		n = n*10 + int64(v[off]&DigitMask)
	}
	if v[offset]&FlagBit != 0 {
		n = -n
	}
	return n
}

// SetFlags flags the digit positions listed in digits, e.g. "1310" flags
// 1, 3 and 10.
func (v Value) SetFlags(digits string) error {
	if isBlank(digits) {
		return nil
	}
	if !flagsPattern.MatchString(digits) {
		return errors.Errorf("invalid flags (%s)", digits)
	}
	for i := 0; i < len(digits); i++ {
		pos := int(digits[i] - '0')
		if pos == 1 && i < len(digits)-1 {
			switch digits[i+1] {
			case '0':
				pos = 10
				i++
			case '1':
				pos = 11
				i++
			}
		}
		v.flag(pos)
	}
	return nil
}

// SetIndexFlags spreads an index register number over the three digits
// preceding offset.
func (v Value) SetIndexFlags(offset int, reg int) {
	if reg&4 != 0 {
		v.flag(offset - 3)
	}
	if reg&2 != 0 {
		v.flag(offset - 2)
	}
	if reg&1 != 0 {
		v.flag(offset - 1)
	}
}

// NumValue encodes a numeric constant right justified in length digits.
// A leading '-' flags the low order digit and a trailing '@' ends the
// field with a record mark. extended admits ']' and I-R for flagged digits.
// The returned value is always length cells long, even with an error.
func NumValue(length int, extended bool, text string) (Value, error) {
	v := make(Value, length)
	neg := len(text) > 0 && text[0] == '-'
	rm := len(text) > 0 && text[len(text)-1] == '@'
	first := 0
	if neg {
		first = 1
	}
	pos := length - 1
	pos2 := len(text) - 1

	if rm && pos >= 0 {
		v[pos] = RecordMark
		pos--
		pos2--
	}

	if first <= pos2 {
		digits := text[first : pos2+1]
		valid := numberPattern.MatchString(digits)
		if extended {
			valid = numberXPattern.MatchString(digits)
		}
		if !valid {
			return v, errors.Errorf("invalid value (%s)", digits)
		}
	}

	for ; pos >= 0 && pos2 >= first; pos, pos2 = pos-1, pos2-1 {
		c := text[pos2]
		switch {
		case c >= '0' && c <= '9':
			v[pos] = c - '0'
		case c == ']':
			v[pos] = FlagBit
		default:
			v[pos] = (c - 'I') | FlagBit
		}
	}

	var err error
	for ; pos2 >= first; pos2-- {
		if text[pos2] != '0' {
			err = errValueTooLarge
			break
		}
	}

	if neg {
		if !rm && length > 0 {
			v[length-1] |= FlagBit
		}
		if rm && length > 1 {
			v[length-2] |= FlagBit
		}
	}
	return v, err
}

// AlphaValue encodes text as length characters of two digits each, blank
// padded. A trailing '@' ends the field with a record mark.
func AlphaValue(length int, text string) (Value, error) {
	v := make(Value, 2*length)
	rm := len(text) > 0 && text[len(text)-1] == '@'
	tail := 1
	if rm {
		tail = 2
	}
	last := 2 * (length - tail)
	last2 := len(text) - tail

	if last2 >= 0 && !alphaPattern.MatchString(text[:last2+1]) {
		return v, errors.Errorf("invalid value (%s)", text)
	}

	pos, pos2 := 0, 0
	for ; pos <= last && pos2 <= last2; pos, pos2 = pos+2, pos2+1 {
		code := alphaCodes[text[pos2]&0x7F]
		v[pos] = byte(code >> 8)
		v[pos+1] = byte(code)
	}
	for ; pos <= last; pos += 2 {
		v[pos] = 0
		v[pos+1] = 0
	}
	if rm && length > 0 {
		v[pos] = 0
		v[pos+1] = RecordMark
	}
	return v, nil
}
