// cpu_addressing.go - Effective address resolution

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
cpu_addressing.go - Effective address resolution for all three variants

Every mode returns a flat effective address; instructions dereference it
with the width-aware readers in cpu.go. Modes that read operand bytes
advance PC past them.

Wrapping Rules:
- Zero page / direct page with DPR low byte $00 in emulation mode stays in
  the page: indexing and indirect vector fetches wrap at $xxFF. This covers
  every 6502 and 65C02 access, where DPR is always $0000
- Otherwise direct page addresses wrap at the bank 0 boundary ($FFFF->$0000)
- Long vectors ([dp], [abs]) never wrap at a page boundary
- (abs,X) reads its vector from the programme bank
- Absolute and long indexing carries into the next bank

The wrap field set here tells the word readers where the second byte of a
16-bit operand lives: inside bank 0 for direct page and stack modes, at the
next flat address for everything else.
*/

package six5go

// AddrMode tags an opcode table entry with the way it locates its operand.
type AddrMode byte

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeImmediate8 // always one operand byte (REP, SEP, COP, BRK signature)
	ModeRelative
	ModeRelativeLong
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeDirectIndirect
	ModeDirectIndirectX
	ModeDirectIndirectY
	ModeDirectIndirectLong
	ModeDirectIndirectLongY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteLong
	ModeAbsoluteLongX
	ModeIndirect
	ModeIndirectX
	ModeIndirectLong
	ModeStackRelative
	ModeStackRelativeIndirectY
	ModeBlockMove
	ModeDirectRelative
	ModeStack
)

var addrModeNames = [...]string{
	ModeImplied:                "imp",
	ModeAccumulator:            "acc",
	ModeImmediate:              "#",
	ModeImmediate8:             "#8",
	ModeRelative:               "rel",
	ModeRelativeLong:           "rel16",
	ModeDirect:                 "dp",
	ModeDirectX:                "dp,X",
	ModeDirectY:                "dp,Y",
	ModeDirectIndirect:         "(dp)",
	ModeDirectIndirectX:        "(dp,X)",
	ModeDirectIndirectY:        "(dp),Y",
	ModeDirectIndirectLong:     "[dp]",
	ModeDirectIndirectLongY:    "[dp],Y",
	ModeAbsolute:               "abs",
	ModeAbsoluteX:              "abs,X",
	ModeAbsoluteY:              "abs,Y",
	ModeAbsoluteLong:           "long",
	ModeAbsoluteLongX:          "long,X",
	ModeIndirect:               "(abs)",
	ModeIndirectX:              "(abs,X)",
	ModeIndirectLong:           "[abs]",
	ModeStackRelative:          "sr,S",
	ModeStackRelativeIndirectY: "(sr,S),Y",
	ModeBlockMove:              "src,dst",
	ModeDirectRelative:         "dp,rel",
	ModeStack:                  "s",
}

func (m AddrMode) String() string {
	if int(m) < len(addrModeNames) {
		return addrModeNames[m]
	}
	return "?"
}

// OperandBytes returns the operand length for the mode. m16/x16 size the
// immediate forms; callers pick the flag that governs the instruction.
func (m AddrMode) OperandBytes(wideImmediate bool) int {
	switch m {
	case ModeImplied, ModeAccumulator, ModeStack:
		return 0
	case ModeImmediate:
		if wideImmediate {
			return 2
		}
		return 1
	case ModeImmediate8, ModeRelative, ModeDirect, ModeDirectX, ModeDirectY,
		ModeDirectIndirect, ModeDirectIndirectX, ModeDirectIndirectY,
		ModeDirectIndirectLong, ModeDirectIndirectLongY,
		ModeStackRelative, ModeStackRelativeIndirectY:
		return 1
	case ModeRelativeLong, ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY,
		ModeIndirect, ModeIndirectX, ModeIndirectLong, ModeBlockMove, ModeDirectRelative:
		return 2
	case ModeAbsoluteLong, ModeAbsoluteLongX:
		return 3
	}
	return 0
}

// address resolves mode to an effective address. wide sizes the immediate
// operand.
func (cpu *CPU) address(mode AddrMode, wide bool) uint32 {
	switch mode {
	case ModeImmediate:
		return cpu.getImmediate(wide)
	case ModeImmediate8:
		return cpu.getImmediate(false)
	case ModeRelative:
		return cpu.getRelative()
	case ModeRelativeLong:
		return cpu.getRelativeLong()
	case ModeDirect:
		return cpu.getDirect()
	case ModeDirectX:
		return cpu.getDirectIndexed(cpu.X)
	case ModeDirectY:
		return cpu.getDirectIndexed(cpu.Y)
	case ModeDirectIndirect:
		return cpu.getDirectIndirect()
	case ModeDirectIndirectX:
		return cpu.getDirectIndirectX()
	case ModeDirectIndirectY:
		return cpu.getDirectIndirectY()
	case ModeDirectIndirectLong:
		return cpu.getDirectIndirectLong()
	case ModeDirectIndirectLongY:
		return cpu.getDirectIndirectLongY()
	case ModeAbsolute:
		return cpu.getAbsolute()
	case ModeAbsoluteX:
		return cpu.getAbsoluteIndexed(cpu.X)
	case ModeAbsoluteY:
		return cpu.getAbsoluteIndexed(cpu.Y)
	case ModeAbsoluteLong:
		return cpu.getAbsoluteLong()
	case ModeAbsoluteLongX:
		return cpu.getAbsoluteLongX()
	case ModeIndirect:
		return cpu.getIndirect()
	case ModeIndirectX:
		return cpu.getIndirectX()
	case ModeIndirectLong:
		return cpu.getIndirectLong()
	case ModeStackRelative:
		return cpu.getStackRelative()
	case ModeStackRelativeIndirectY:
		return cpu.getStackRelativeIndirectY()
	case ModeDirectRelative:
		return cpu.getDirect()
	}
	// Accumulator, implied, stack and block move have no memory operand.
	return 0
}

// pageCrossPenalty adds the indexing cycle when the entry allows it. The
// 65816 also pays it whenever the index registers are 16-bit.
func (cpu *CPU) pageCrossPenalty(base, addr uint32) {
	if !cpu.addcycles {
		return
	}
	if base&^BYTE_MASK != addr&^BYTE_MASK || cpu.x16() {
		cpu.excycles++
	}
}

// directPenalty charges the 65816 cycle for a direct page register that is
// not page aligned.
func (cpu *CPU) directPenalty() {
	if cpu.DPR&BYTE_MASK != 0 {
		cpu.excycles++
	}
}

// pageWrapsDirect reports whether direct page accesses stay inside one page.
func (cpu *CPU) pageWrapsDirect() bool {
	return cpu.Mode == MODE_EMULATION && cpu.DPR&BYTE_MASK == 0
}

func (cpu *CPU) getImmediate(wide bool) uint32 {
	addr := cpu.ProgramCounter()
	cpu.wrap = WORD_MASK
	cpu.PC++
	if wide {
		cpu.PC++
	}
	return addr
}

func (cpu *CPU) getRelative() uint32 {
	offset := int8(cpu.fetch())
	target := uint16(int32(cpu.PC) + int32(offset))
	return uint32(cpu.PBR)<<16 | uint32(target)
}

func (cpu *CPU) getRelativeLong() uint32 {
	offset := int16(cpu.fetchWord())
	target := uint16(int32(cpu.PC) + int32(offset))
	return uint32(cpu.PBR)<<16 | uint32(target)
}

func (cpu *CPU) getDirect() uint32 {
	/*
	   getDirect resolves zero page / direct page addressing.

	   Operation:
	   1. Reads the offset byte at PC
	   2. Adds DPR (always 0 on the 8-bit variants)
	   3. Result lives in bank 0
	*/

	offset := uint16(cpu.fetch())
	cpu.directPenalty()
	cpu.wrap = WORD_MASK
	return uint32(cpu.DPR + offset)
}

func (cpu *CPU) getDirectIndexed(index uint16) uint32 {
	/*
	   getDirectIndexed resolves dp,X and dp,Y.

	   Wrapping:
	   - Emulation mode with DPR low byte 0: wraps inside the page
	   - Otherwise: wraps at the end of bank 0
	*/

	offset := uint16(cpu.fetch())
	cpu.directPenalty()
	cpu.wrap = WORD_MASK
	if cpu.pageWrapsDirect() {
		return uint32(cpu.DPR | (offset+index)&BYTE_MASK)
	}
	return uint32(cpu.DPR + offset + index)
}

// readDirectPointer fetches a 16-bit vector from the direct page. The high
// byte wraps inside the page when direct page accesses do.
func (cpu *CPU) readDirectPointer(ptr uint16) uint16 {
	lo := uint16(cpu.readByte(uint32(ptr)))
	var hiAddr uint16
	if cpu.pageWrapsDirect() {
		hiAddr = ptr&PAGE_MASK | (ptr+1)&BYTE_MASK
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(cpu.readByte(uint32(hiAddr)))
	return hi<<8 | lo
}

func (cpu *CPU) dataBank() uint32 {
	return uint32(cpu.DBR) << 16
}

func (cpu *CPU) getDirectIndirect() uint32 {
	ptr := uint16(cpu.getDirect())
	cpu.wrap = LONG_MASK
	return cpu.dataBank() | uint32(cpu.readDirectPointer(ptr))
}

func (cpu *CPU) getDirectIndirectX() uint32 {
	ptr := uint16(cpu.getDirectIndexed(cpu.X))
	cpu.wrap = LONG_MASK
	return cpu.dataBank() | uint32(cpu.readDirectPointer(ptr))
}

func (cpu *CPU) getDirectIndirectY() uint32 {
	ptr := uint16(cpu.getDirect())
	cpu.wrap = LONG_MASK
	base := cpu.dataBank() | uint32(cpu.readDirectPointer(ptr))
	addr := (base + uint32(cpu.Y)) & LONG_MASK
	cpu.pageCrossPenalty(base, addr)
	return addr
}

func (cpu *CPU) getDirectIndirectLong() uint32 {
	ptr := uint16(cpu.getDirect())
	cpu.wrap = LONG_MASK
	return cpu.readBank0Long(ptr)
}

func (cpu *CPU) getDirectIndirectLongY() uint32 {
	ptr := uint16(cpu.getDirect())
	cpu.wrap = LONG_MASK
	return (cpu.readBank0Long(ptr) + uint32(cpu.Y)) & LONG_MASK
}

func (cpu *CPU) getAbsolute() uint32 {
	return cpu.dataBank() | uint32(cpu.fetchWord())
}

func (cpu *CPU) getAbsoluteIndexed(index uint16) uint32 {
	/*
	   getAbsoluteIndexed resolves abs,X and abs,Y.

	   Operation:
	   1. Reads the 16-bit base and places it in the data bank
	   2. Adds the index, carrying into the next bank
	   3. Charges the page crossing cycle when the entry allows it
	*/

	base := cpu.dataBank() | uint32(cpu.fetchWord())
	addr := (base + uint32(index)) & LONG_MASK
	cpu.pageCrossPenalty(base, addr)
	return addr
}

func (cpu *CPU) getAbsoluteLong() uint32 {
	return cpu.fetchLong()
}

func (cpu *CPU) getAbsoluteLongX() uint32 {
	return (cpu.fetchLong() + uint32(cpu.X)) & LONG_MASK
}

func (cpu *CPU) getIndirect() uint32 {
	/*
	   getIndirect resolves JMP (abs). The vector lives in bank 0.

	   NMOS 6502: the high byte is fetched without carrying into the next
	   page, so JMP ($10FF) reads $10FF and $1000.
	*/

	ptr := cpu.fetchWord()
	if cpu.variant == Variant6502 {
		lo := uint16(cpu.readByte(uint32(ptr)))
		hi := uint16(cpu.readByte(uint32(ptr&PAGE_MASK | (ptr+1)&BYTE_MASK)))
		return uint32(cpu.PBR)<<16 | uint32(hi<<8|lo)
	}
	return uint32(cpu.PBR)<<16 | uint32(cpu.readBank0Word(ptr))
}

func (cpu *CPU) getIndirectX() uint32 {
	// The vector is read from the programme bank and wraps inside it.
	bank := uint32(cpu.PBR) << 16
	ptr := cpu.fetchWord() + cpu.X
	lo := uint16(cpu.readByte(bank | uint32(ptr)))
	hi := uint16(cpu.readByte(bank | uint32(ptr+1)))
	return bank | uint32(hi<<8|lo)
}

func (cpu *CPU) getIndirectLong() uint32 {
	return cpu.readBank0Long(cpu.fetchWord())
}

func (cpu *CPU) getStackRelative() uint32 {
	offset := uint16(cpu.fetch())
	cpu.wrap = WORD_MASK
	return uint32(cpu.SP + offset)
}

func (cpu *CPU) getStackRelativeIndirectY() uint32 {
	ptr := uint16(cpu.getStackRelative())
	cpu.wrap = LONG_MASK
	base := cpu.dataBank() | uint32(cpu.readBank0Word(ptr))
	return (base + uint32(cpu.Y)) & LONG_MASK
}
