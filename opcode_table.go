// opcode_table.go - Per-variant opcode dispatch tables

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
https://github.com/IntuitionAmiga/six5go
Buy me a coffee: https://ko-fi.com/intuition/tip

License: GPLv3 or later
*/

/*
opcode_table.go - Per-variant opcode dispatch tables

Each variant owns one immutable 256-entry table, built once at package
initialisation:

    6502   the documented NMOS instruction set; undocumented opcodes are
           left unimplemented and fault through the illegal handler
    65C02  a copy of the 6502 table with the WDC overrides applied once
    65816  a table of its own, every opcode defined

An entry carries the base cycle count. The extra flag marks reads whose
indexed address may cross a page and cost one more cycle.
*/

package six5go

const illegalMnemonic = "???"

// Instruction is one opcode table entry.
type Instruction struct {
	Mnemonic string
	Mode     AddrMode
	Cycles   byte
	Extra    bool

	exec func(*CPU, AddrMode)
}

// Implemented reports whether the entry is a real instruction for its variant.
func (in *Instruction) Implemented() bool {
	return in.Mnemonic != illegalMnemonic
}

// Length returns the encoded length in bytes, sizing immediate operands by
// the register width that governs the mnemonic.
func (in *Instruction) Length(m16, x16 bool) int {
	wide := m16
	switch in.Mnemonic {
	case "LDX", "LDY", "CPX", "CPY":
		wide = x16
	}
	return 1 + in.Mode.OperandBytes(wide)
}

type OpcodeTable [256]Instruction

type opDef struct {
	code   byte
	name   string
	mode   AddrMode
	cycles byte
	extra  bool
	exec   func(*CPU, AddrMode)
}

func (t *OpcodeTable) apply(defs []opDef) {
	for _, d := range defs {
		t[d.code] = Instruction{
			Mnemonic: d.name,
			Mode:     d.mode,
			Cycles:   d.cycles,
			Extra:    d.extra,
			exec:     d.exec,
		}
	}
}

func (t *OpcodeTable) fillIllegal() {
	for i := range t {
		if t[i].exec == nil {
			t[i] = Instruction{Mnemonic: illegalMnemonic, Mode: ModeImplied, Cycles: 2, exec: (*CPU).illegal}
		}
	}
}

var (
	table6502  OpcodeTable
	table65C02 OpcodeTable
	table65816 OpcodeTable
)

func init() {
	table6502.apply(opcodes6502())
	table65C02 = table6502
	table65C02.apply(overrides65C02())
	table65816.apply(opcodes65816())

	table6502.fillIllegal()
	table65C02.fillIllegal()
	table65816.fillIllegal()
}

func tableFor(v Variant) *OpcodeTable {
	switch v {
	case Variant65C02:
		return &table65C02
	case Variant65816:
		return &table65816
	}
	return &table6502
}

// TableFor returns the dispatch table of a variant. Callers must not modify
// it.
func TableFor(v Variant) *OpcodeTable {
	return tableFor(v)
}
