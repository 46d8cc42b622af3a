// catalog.go

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

// Class is the broad family a statement belongs to.
type Class int

const (
	ClassUnknown Class = iota
	ClassComment
	ClassDeclarative
	ClassImperative
	ClassControl
)

// Type selects the processing rule for a statement.
type Type int

const (
	TypeUnknown Type = iota
	TypeComment

	TypeDEND
	TypeDORG
	TypeHEAD
	TypeSEND
	TypeTCD
	TypeTRA

	TypeDAC
	TypeDAS
	TypeDC
	TypeDDA
	TypeDGM
	TypeDNB
	TypeDOT
	TypeDS
	TypeDSA
	TypeDSAC
	TypeDSB
	TypeDSC
	TypeDSS
	TypeDVLC

	TypeInstruction
)

var typeNames = [...]string{
	TypeUnknown: "????", TypeComment: "*",
	TypeDEND: "DEND", TypeDORG: "DORG", TypeHEAD: "HEAD", TypeSEND: "SEND", TypeTCD: "TCD", TypeTRA: "TRA",
	TypeDAC: "DAC", TypeDAS: "DAS", TypeDC: "DC", TypeDDA: "DDA", TypeDGM: "DGM", TypeDNB: "DNB", TypeDOT: "DOT",
	TypeDS: "DS", TypeDSA: "DSA", TypeDSAC: "DSAC", TypeDSB: "DSB", TypeDSC: "DSC", TypeDSS: "DSS", TypeDVLC: "DVLC",
	TypeInstruction: "<inst>",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Model is the machine model a statement is available on.
type Model int

const (
	ModelAny Model = iota
	Model1
	Model2
)

func (m Model) String() string {
	switch m {
	case Model1:
		return "model 1"
	case Model2:
		return "model 2"
	default:
		return "any"
	}
}

// PRule is how an instruction's P operand is interpreted.
type PRule int

const (
	PNone PRule = iota
	PReference
	PRefEven
	PRefOdd
	PValue
)

// QRule is how an instruction's Q operand is interpreted. QLiteral uses the
// descriptor's QDefault unless the source overrides it.
type QRule int

const (
	QNone QRule = iota
	QReference
	QRefBit
	QImmediate
	QImmIndex
	QValue
	QSkip
	QSkap
	QSpim
	QSpap
	QLiteral
)

// Shape selects how a statement is rendered in the listing.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeComment
	ShapeControl
	ShapeAddress
	ShapeInstruction
	ShapeInstr2
	ShapeInstr7
	ShapeData
	ShapeReserve1
	ShapeReserve2
)

// Descriptor describes one mnemonic.
type Descriptor struct {
	Mnemonic string
	Class    Class
	Type     Type
	Model    Model
	OpCode   int
	Operands int
	P        PRule
	Q        QRule
	QDefault int
	Shape    Shape
}

func control(t Type, operands int, shape Shape) Descriptor {
	return Descriptor{Class: ClassControl, Type: t, Operands: operands, Shape: shape}
}

func declare(t Type, operands int, shape Shape) Descriptor {
	return Descriptor{Class: ClassDeclarative, Type: t, Operands: operands, Shape: shape}
}

func instr(code int, p PRule, q QRule) Descriptor {
	return Descriptor{Class: ClassImperative, Type: TypeInstruction, OpCode: code, Operands: 3, P: p, Q: q, Shape: ShapeInstruction}
}

func instrQ(code int, p PRule, q int) Descriptor {
	d := instr(code, p, QLiteral)
	d.QDefault = q
	return d
}

func (d Descriptor) withOperands(n int) Descriptor {
	d.Operands = n
	return d
}

func (d Descriptor) withShape(s Shape) Descriptor {
	d.Shape = s
	return d
}

func (d Descriptor) model2() Descriptor {
	d.Model = Model2
	return d
}

var (
	// Unknown stands in for lines that cannot be processed.
	Unknown = &Descriptor{Mnemonic: "????", Class: ClassUnknown, Type: TypeUnknown, Shape: ShapeUnknown}
	// Comment is the descriptor of comment and blank lines.
	Comment = &Descriptor{Mnemonic: "*", Class: ClassComment, Type: TypeComment, Shape: ShapeComment}
)

// Lookup returns the descriptor for a mnemonic.
func Lookup(mnemonic string) (*Descriptor, bool) {
	d, ok := catalog[mnemonic]
	if !ok {
		return nil, false
	}
	d.Mnemonic = mnemonic
	return &d, true
}

// Mnemonics returns the number of catalog entries.
func Mnemonics() int { return len(catalog) }

var catalog = map[string]Descriptor{
	// control
	"DEND": control(TypeDEND, 1, ShapeAddress),
	"DORG": control(TypeDORG, 1, ShapeAddress),
	"HEAD": control(TypeHEAD, 1, ShapeControl),
	"SEND": control(TypeSEND, 0, ShapeControl),
	"TCD":  control(TypeTCD, 1, ShapeAddress),
	"TRA":  control(TypeTRA, 0, ShapeControl),

	// declaratives
	"DAC":  declare(TypeDAC, 3, ShapeData),
	"DAS":  declare(TypeDAS, 2, ShapeReserve1),
	"DC":   declare(TypeDC, 3, ShapeData),
	"DDA":  declare(TypeDDA, 5, ShapeData),
	"DGM":  declare(TypeDGM, 1, ShapeData),
	"DNB":  declare(TypeDNB, 2, ShapeData),
	"DOT":  declare(TypeDOT, 2, ShapeData).model2(),
	"DS":   declare(TypeDS, 2, ShapeReserve1),
	"DSA":  declare(TypeDSA, 10, ShapeData),
	"DSAC": declare(TypeDSAC, 3, ShapeData),
	"DSB":  declare(TypeDSB, 3, ShapeReserve2),
	"DSC":  declare(TypeDSC, 3, ShapeData),
	"DSS":  declare(TypeDSS, 2, ShapeReserve1),
	"DVLC": declare(TypeDVLC, 41, ShapeData),

	// instructions
	"A":    instr(21, PReference, QReference),
	"AM":   instr(11, PReference, QImmediate),
	"ANDF": instr(93, PReference, QReference).model2(),
	"B":    instr(49, PRefEven, QValue),
	"B7":   instr(49, PRefEven, QNone).withShape(ShapeInstr7),
	"BA":   instrQ(46, PRefEven, 1900),
	"BANS": instrQ(47, PRefEven, 3100).model2(),
	"BB":   instr(42, PValue, QValue),
	"BB2":  instr(42, PNone, QNone).withShape(ShapeInstr2),
	"BBAS": instrQ(46, PRefEven, 3100).model2(),
	"BBBS": instrQ(46, PRefEven, 3200).model2(),
	"BBNS": instrQ(47, PRefEven, 3200).model2(),
	"BBT":  instr(90, PRefEven, QRefBit).withOperands(4).model2(),
	"BC1":  instrQ(46, PRefEven, 100),
	"BC2":  instrQ(46, PRefEven, 200),
	"BC3":  instrQ(46, PRefEven, 300),
	"BC4":  instrQ(46, PRefEven, 400),
	"BCH9": instrQ(46, PRefEven, 3300),
	"BCOV": instrQ(46, PRefEven, 3400),
	"BCX":  instr(63, PRefEven, QReference).model2(),
	"BCXM": instr(64, PRefEven, QImmIndex).model2(),
	"BD":   instr(43, PRefEven, QReference),
	"BE":   instrQ(46, PRefEven, 1200),
	"BEBS": instrQ(47, PRefEven, 3000).model2(),
	"BH":   instrQ(46, PRefEven, 1100),
	"BI":   instr(46, PRefEven, QValue),
	"BKTY": instrQ(34, PValue, 103).model2(),
	"BL":   instrQ(47, PRefEven, 1300),
	"BLC":  instrQ(46, PRefEven, 900),
	"BLX":  instr(65, PRefEven, QReference).model2(),
	"BLXM": instr(66, PRefEven, QImmIndex).model2(),
	"BMK":  instr(91, PRefEven, QRefBit).withOperands(4).model2(),
	"BN":   instrQ(47, PRefEven, 1300),
	"BNA":  instrQ(47, PRefEven, 1900),
	"BNBS": instrQ(46, PRefEven, 3000).model2(),
	"BNC1": instrQ(47, PRefEven, 100),
	"BNC2": instrQ(47, PRefEven, 200),
	"BNC3": instrQ(47, PRefEven, 300),
	"BNC4": instrQ(47, PRefEven, 400),
	"BNE":  instrQ(47, PRefEven, 1200),
	"BNF":  instr(44, PRefEven, QReference),
	"BNG":  instr(55, PRefEven, QReference),
	"BNH":  instrQ(47, PRefEven, 1100),
	"BNI":  instr(47, PRefEven, QValue),
	"BNL":  instrQ(46, PRefEven, 1300),
	"BNLC": instrQ(47, PRefEven, 900),
	"BNN":  instrQ(46, PRefEven, 1300),
	"BNP":  instrQ(47, PRefEven, 1100),
	"BNR":  instr(45, PRefEven, QReference),
	"BNV":  instrQ(47, PRefEven, 1400),
	"BNXV": instrQ(47, PRefEven, 1500),
	"BNZ":  instrQ(47, PRefEven, 1200),
	"BP":   instrQ(46, PRefEven, 1100),
	"BS":   instr(60, PReference, QValue).model2(),
	"BSBA": instrQ(60, PReference, 1).model2(),
	"BSBB": instrQ(60, PReference, 2).model2(),
	"BSIA": instrQ(60, PReference, 9).model2(),
	"BSNI": instrQ(60, PReference, 8).model2(),
	"BSNX": instr(60, PReference, QValue).model2(),
	"BSX":  instr(67, PRefEven, QReference).model2(),
	"BT":   instr(27, PRefEven, QReference),
	"BTA":  instr(20, PRefEven, QReference).model2(),
	"BTAM": instr(10, PRefEven, QImmediate).model2(),
	"BTFL": instr(7, PRefEven, QReference),
	"BTM":  instr(17, PRefEven, QImmediate),
	"BV":   instrQ(46, PRefEven, 1400),
	"BX":   instr(61, PRefEven, QReference).model2(),
	"BXM":  instr(62, PRefEven, QImmIndex).model2(),
	"BXV":  instrQ(46, PRefEven, 1500),
	"BZ":   instrQ(46, PRefEven, 1200),
	"C":    instr(24, PReference, QReference),
	"CDGN": instrQ(36, PRefEven, 701),
	"CDN":  instrQ(36, PRefEven, 703),
	"CF":   instr(33, PReference, QValue),
	"CM":   instr(14, PReference, QImmediate),
	"CPLF": instr(94, PReference, QReference).model2(),
	"CTGN": instrQ(36, PRefEven, 705),
	"CTN":  instrQ(36, PRefEven, 707),
	"D":    instr(29, PReference, QReference),
	"DM":   instr(19, PReference, QImmediate),
	"DN":   instr(35, PReference, QValue),
	"DNCD": instrQ(35, PReference, 400),
	"DNPT": instrQ(35, PReference, 200),
	"DNTY": instrQ(35, PReference, 100),
	"DTO":  instr(97, PReference, QReference).model2(),
	"EORF": instr(95, PReference, QReference).model2(),
	"FADD": instr(1, PReference, QReference),
	"FDIV": instr(9, PReference, QReference),
	"FMUL": instr(3, PReference, QReference),
	"FSL":  instr(5, PReference, QReference),
	"FSR":  instr(8, PReference, QReference),
	"FSUB": instr(2, PReference, QReference),
	"H":    instr(48, PValue, QValue),
	"IXTY": instrQ(34, PValue, 104).model2(),
	"K":    instr(34, PValue, QValue),
	"LD":   instr(28, PReference, QReference),
	"LDM":  instr(18, PReference, QImmediate),
	"M":    instr(23, PReference, QReference),
	"MA":   instr(70, PReference, QReference).model2(),
	"MF":   instr(71, PReference, QReference),
	"MM":   instr(13, PReference, QImmediate),
	"NOP":  instr(41, PValue, QValue),
	"ORF":  instr(92, PReference, QReference).model2(),
	"OTD":  instr(96, PReference, QReference).model2(),
	"PRA":  instrQ(39, PRefOdd, 900),
	"PRAS": instrQ(39, PRefOdd, 901),
	"PRD":  instrQ(35, PReference, 900),
	"PRDS": instrQ(35, PReference, 901),
	"PRN":  instrQ(38, PReference, 900),
	"PRNS": instrQ(38, PReference, 901),
	"RA":   instr(37, PRefOdd, QValue),
	"RACD": instrQ(37, PRefOdd, 500),
	"RAPT": instrQ(37, PRefOdd, 300),
	"RATY": instrQ(37, PRefOdd, 100),
	"RBPT": instrQ(37, PRefOdd, 3300).model2(),
	"RCTY": instrQ(34, PValue, 102),
	"RDGN": instrQ(36, PRefEven, 700),
	"RDN":  instrQ(36, PRefEven, 702),
	"RN":   instr(36, PReference, QValue),
	"RNCD": instrQ(36, PReference, 500),
	"RNPT": instrQ(36, PReference, 300),
	"RNTY": instrQ(36, PReference, 100),
	"RTGN": instrQ(36, PRefEven, 704),
	"RTN":  instrQ(36, PRefEven, 706),
	"S":    instr(22, PReference, QReference),
	"SF":   instr(32, PReference, QReference),
	"SK":   instrQ(34, PValue, 701),
	"SKIP": instr(34, PValue, QSkip),
	"SKAP": instr(34, PValue, QSkap),
	"SM":   instr(12, PReference, QImmediate),
	"SPAP": instr(34, PValue, QSpap),
	"SPIM": instr(34, PValue, QSpim),
	"SPTY": instrQ(34, PValue, 101),
	"TBTY": instrQ(34, PValue, 108),
	"TD":   instr(25, PReference, QReference),
	"TDM":  instr(15, PReference, QValue),
	"TF":   instr(26, PReference, QReference),
	"TFL":  instr(6, PReference, QReference),
	"TFM":  instr(16, PReference, QImmediate),
	"TNF":  instr(73, PRefOdd, QReference),
	"TNS":  instr(72, PRefOdd, QReference),
	"TR":   instr(31, PReference, QReference),
	"TRNM": instr(30, PReference, QReference).model2(),
	"WA":   instr(39, PRefOdd, QValue),
	"WACD": instrQ(39, PRefOdd, 400),
	"WAPT": instrQ(39, PRefOdd, 200),
	"WATY": instrQ(39, PRefOdd, 100),
	"WBPT": instrQ(39, PRefOdd, 3200).model2(),
	"WDGN": instrQ(38, PRefEven, 700),
	"WDN":  instrQ(38, PRefEven, 702),
	"WN":   instr(38, PReference, QValue),
	"WNCD": instrQ(38, PReference, 400),
	"WNPT": instrQ(38, PReference, 200),
	"WNTY": instrQ(38, PReference, 100),
	"WTGN": instrQ(38, PRefEven, 704),
	"WTN":  instrQ(38, PRefEven, 706),

	// numeric operation codes
	"01":   instr(1, PReference, QReference),
	"02":   instr(2, PReference, QReference),
	"03":   instr(3, PReference, QReference),
	"05":   instr(5, PReference, QReference),
	"06":   instr(6, PReference, QReference),
	"07":   instr(7, PRefEven, QReference),
	"08":   instr(8, PReference, QReference),
	"09":   instr(9, PReference, QReference),
	"10":   instr(10, PRefEven, QImmediate),
	"11":   instr(11, PReference, QImmediate),
	"12":   instr(12, PReference, QImmediate),
	"13":   instr(13, PReference, QImmediate),
	"14":   instr(14, PReference, QImmediate),
	"15":   instr(15, PReference, QValue),
	"16":   instr(16, PReference, QImmediate),
	"17":   instr(17, PRefEven, QImmediate),
	"18":   instr(18, PReference, QImmediate),
	"19":   instr(19, PReference, QImmediate),
	"20":   instr(20, PRefEven, QReference),
	"21":   instr(21, PReference, QReference),
	"22":   instr(22, PReference, QReference),
	"23":   instr(23, PReference, QReference),
	"24":   instr(24, PReference, QReference),
	"25":   instr(25, PReference, QReference),
	"26":   instr(26, PReference, QReference),
	"27":   instr(27, PRefEven, QReference),
	"28":   instr(28, PReference, QReference),
	"29":   instr(29, PReference, QReference),
	"30":   instr(30, PReference, QReference).model2(),
	"31":   instr(31, PReference, QReference),
	"32":   instr(32, PReference, QReference),
	"33":   instr(33, PReference, QValue),
	"34":   instr(34, PValue, QValue),
	"35":   instr(35, PReference, QValue),
	"36":   instr(36, PReference, QValue),
	"37":   instr(37, PRefOdd, QValue),
	"38":   instr(38, PReference, QValue),
	"39":   instr(39, PRefOdd, QValue),
	"41":   instr(41, PValue, QValue),
	"42":   instr(42, PValue, QValue),
	"43":   instr(43, PRefEven, QReference),
	"44":   instr(44, PRefEven, QReference),
	"45":   instr(45, PRefEven, QReference),
	"46":   instr(46, PRefEven, QValue),
	"47":   instr(47, PRefEven, QValue),
	"48":   instr(48, PValue, QValue),
	"49":   instr(49, PRefEven, QValue),
	"55":   instr(55, PRefEven, QReference),
	"60":   instr(60, PReference, QValue).model2(),
	"61":   instr(61, PRefEven, QReference).model2(),
	"62":   instr(62, PRefEven, QImmIndex).model2(),
	"63":   instr(63, PRefEven, QReference).model2(),
	"64":   instr(64, PRefEven, QImmIndex).model2(),
	"65":   instr(65, PRefEven, QReference).model2(),
	"66":   instr(66, PRefEven, QImmIndex).model2(),
	"67":   instr(67, PRefEven, QReference).model2(),
	"70":   instr(70, PReference, QReference).model2(),
	"71":   instr(71, PReference, QReference),
	"72":   instr(72, PRefOdd, QReference),
	"73":   instr(73, PRefOdd, QReference),
	"90":   instr(90, PRefEven, QRefBit).withOperands(4).model2(),
	"91":   instr(91, PRefEven, QRefBit).withOperands(4).model2(),
	"92":   instr(92, PReference, QReference).model2(),
	"93":   instr(93, PReference, QReference).model2(),
	"94":   instr(94, PReference, QReference).model2(),
	"95":   instr(95, PReference, QReference).model2(),
	"96":   instr(96, PReference, QReference).model2(),
	"97":   instrQ(97, PReference, 100).model2(),
}
