// opcodes_65816.go - WDC 65816 opcode table

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

package six5go

// opcodes65816 lists the full W65C816 instruction set. Base cycles are the
// emulation-mode 8-bit figures; width, direct page and indexing extras are
// added while the instruction executes.
func opcodes65816() []opDef {
	return []opDef{
		{0x00, "BRK", ModeImmediate8, 7, false, (*CPU).brk},
		{0x01, "ORA", ModeDirectIndirectX, 6, false, (*CPU).ora},
		{0x02, "COP", ModeImmediate8, 7, false, (*CPU).cop},
		{0x03, "ORA", ModeStackRelative, 4, false, (*CPU).ora},
		{0x04, "TSB", ModeDirect, 5, false, (*CPU).tsb},
		{0x05, "ORA", ModeDirect, 3, false, (*CPU).ora},
		{0x06, "ASL", ModeDirect, 5, false, (*CPU).asl},
		{0x07, "ORA", ModeDirectIndirectLong, 6, false, (*CPU).ora},
		{0x08, "PHP", ModeStack, 3, false, (*CPU).php},
		{0x09, "ORA", ModeImmediate, 2, false, (*CPU).ora},
		{0x0A, "ASL", ModeAccumulator, 2, false, (*CPU).asl},
		{0x0B, "PHD", ModeStack, 4, false, (*CPU).phd},
		{0x0C, "TSB", ModeAbsolute, 6, false, (*CPU).tsb},
		{0x0D, "ORA", ModeAbsolute, 4, false, (*CPU).ora},
		{0x0E, "ASL", ModeAbsolute, 6, false, (*CPU).asl},
		{0x0F, "ORA", ModeAbsoluteLong, 5, false, (*CPU).ora},

		{0x10, "BPL", ModeRelative, 2, false, (*CPU).bpl},
		{0x11, "ORA", ModeDirectIndirectY, 5, true, (*CPU).ora},
		{0x12, "ORA", ModeDirectIndirect, 5, false, (*CPU).ora},
		{0x13, "ORA", ModeStackRelativeIndirectY, 7, false, (*CPU).ora},
		{0x14, "TRB", ModeDirect, 5, false, (*CPU).trb},
		{0x15, "ORA", ModeDirectX, 4, false, (*CPU).ora},
		{0x16, "ASL", ModeDirectX, 6, false, (*CPU).asl},
		{0x17, "ORA", ModeDirectIndirectLongY, 6, false, (*CPU).ora},
		{0x18, "CLC", ModeImplied, 2, false, (*CPU).clc},
		{0x19, "ORA", ModeAbsoluteY, 4, true, (*CPU).ora},
		{0x1A, "INC", ModeAccumulator, 2, false, (*CPU).inc},
		{0x1B, "TCS", ModeImplied, 2, false, (*CPU).tcs},
		{0x1C, "TRB", ModeAbsolute, 6, false, (*CPU).trb},
		{0x1D, "ORA", ModeAbsoluteX, 4, true, (*CPU).ora},
		{0x1E, "ASL", ModeAbsoluteX, 7, false, (*CPU).asl},
		{0x1F, "ORA", ModeAbsoluteLongX, 5, false, (*CPU).ora},

		{0x20, "JSR", ModeAbsolute, 6, false, (*CPU).jsr},
		{0x21, "AND", ModeDirectIndirectX, 6, false, (*CPU).and},
		{0x22, "JSL", ModeAbsoluteLong, 8, false, (*CPU).jsl},
		{0x23, "AND", ModeStackRelative, 4, false, (*CPU).and},
		{0x24, "BIT", ModeDirect, 3, false, (*CPU).bit},
		{0x25, "AND", ModeDirect, 3, false, (*CPU).and},
		{0x26, "ROL", ModeDirect, 5, false, (*CPU).rol},
		{0x27, "AND", ModeDirectIndirectLong, 6, false, (*CPU).and},
		{0x28, "PLP", ModeStack, 4, false, (*CPU).plp},
		{0x29, "AND", ModeImmediate, 2, false, (*CPU).and},
		{0x2A, "ROL", ModeAccumulator, 2, false, (*CPU).rol},
		{0x2B, "PLD", ModeStack, 5, false, (*CPU).pld},
		{0x2C, "BIT", ModeAbsolute, 4, false, (*CPU).bit},
		{0x2D, "AND", ModeAbsolute, 4, false, (*CPU).and},
		{0x2E, "ROL", ModeAbsolute, 6, false, (*CPU).rol},
		{0x2F, "AND", ModeAbsoluteLong, 5, false, (*CPU).and},

		{0x30, "BMI", ModeRelative, 2, false, (*CPU).bmi},
		{0x31, "AND", ModeDirectIndirectY, 5, true, (*CPU).and},
		{0x32, "AND", ModeDirectIndirect, 5, false, (*CPU).and},
		{0x33, "AND", ModeStackRelativeIndirectY, 7, false, (*CPU).and},
		{0x34, "BIT", ModeDirectX, 4, false, (*CPU).bit},
		{0x35, "AND", ModeDirectX, 4, false, (*CPU).and},
		{0x36, "ROL", ModeDirectX, 6, false, (*CPU).rol},
		{0x37, "AND", ModeDirectIndirectLongY, 6, false, (*CPU).and},
		{0x38, "SEC", ModeImplied, 2, false, (*CPU).sec},
		{0x39, "AND", ModeAbsoluteY, 4, true, (*CPU).and},
		{0x3A, "DEC", ModeAccumulator, 2, false, (*CPU).dec},
		{0x3B, "TSC", ModeImplied, 2, false, (*CPU).tsc},
		{0x3C, "BIT", ModeAbsoluteX, 4, true, (*CPU).bit},
		{0x3D, "AND", ModeAbsoluteX, 4, true, (*CPU).and},
		{0x3E, "ROL", ModeAbsoluteX, 7, false, (*CPU).rol},
		{0x3F, "AND", ModeAbsoluteLongX, 5, false, (*CPU).and},

		{0x40, "RTI", ModeStack, 6, false, (*CPU).rti},
		{0x41, "EOR", ModeDirectIndirectX, 6, false, (*CPU).eor},
		{0x42, "WDM", ModeImmediate8, 2, false, (*CPU).nop},
		{0x43, "EOR", ModeStackRelative, 4, false, (*CPU).eor},
		{0x44, "MVP", ModeBlockMove, 7, false, (*CPU).mvp},
		{0x45, "EOR", ModeDirect, 3, false, (*CPU).eor},
		{0x46, "LSR", ModeDirect, 5, false, (*CPU).lsr},
		{0x47, "EOR", ModeDirectIndirectLong, 6, false, (*CPU).eor},
		{0x48, "PHA", ModeStack, 3, false, (*CPU).pha},
		{0x49, "EOR", ModeImmediate, 2, false, (*CPU).eor},
		{0x4A, "LSR", ModeAccumulator, 2, false, (*CPU).lsr},
		{0x4B, "PHK", ModeStack, 3, false, (*CPU).phk},
		{0x4C, "JMP", ModeAbsolute, 3, false, (*CPU).jmp},
		{0x4D, "EOR", ModeAbsolute, 4, false, (*CPU).eor},
		{0x4E, "LSR", ModeAbsolute, 6, false, (*CPU).lsr},
		{0x4F, "EOR", ModeAbsoluteLong, 5, false, (*CPU).eor},

		{0x50, "BVC", ModeRelative, 2, false, (*CPU).bvc},
		{0x51, "EOR", ModeDirectIndirectY, 5, true, (*CPU).eor},
		{0x52, "EOR", ModeDirectIndirect, 5, false, (*CPU).eor},
		{0x53, "EOR", ModeStackRelativeIndirectY, 7, false, (*CPU).eor},
		{0x54, "MVN", ModeBlockMove, 7, false, (*CPU).mvn},
		{0x55, "EOR", ModeDirectX, 4, false, (*CPU).eor},
		{0x56, "LSR", ModeDirectX, 6, false, (*CPU).lsr},
		{0x57, "EOR", ModeDirectIndirectLongY, 6, false, (*CPU).eor},
		{0x58, "CLI", ModeImplied, 2, false, (*CPU).cli},
		{0x59, "EOR", ModeAbsoluteY, 4, true, (*CPU).eor},
		{0x5A, "PHY", ModeStack, 3, false, (*CPU).phy},
		{0x5B, "TCD", ModeImplied, 2, false, (*CPU).tcd},
		{0x5C, "JML", ModeAbsoluteLong, 4, false, (*CPU).jmp},
		{0x5D, "EOR", ModeAbsoluteX, 4, true, (*CPU).eor},
		{0x5E, "LSR", ModeAbsoluteX, 7, false, (*CPU).lsr},
		{0x5F, "EOR", ModeAbsoluteLongX, 5, false, (*CPU).eor},

		{0x60, "RTS", ModeStack, 6, false, (*CPU).rts},
		{0x61, "ADC", ModeDirectIndirectX, 6, false, (*CPU).adc},
		{0x62, "PER", ModeRelativeLong, 6, false, (*CPU).per},
		{0x63, "ADC", ModeStackRelative, 4, false, (*CPU).adc},
		{0x64, "STZ", ModeDirect, 3, false, (*CPU).stz},
		{0x65, "ADC", ModeDirect, 3, false, (*CPU).adc},
		{0x66, "ROR", ModeDirect, 5, false, (*CPU).ror},
		{0x67, "ADC", ModeDirectIndirectLong, 6, false, (*CPU).adc},
		{0x68, "PLA", ModeStack, 4, false, (*CPU).pla},
		{0x69, "ADC", ModeImmediate, 2, false, (*CPU).adc},
		{0x6A, "ROR", ModeAccumulator, 2, false, (*CPU).ror},
		{0x6B, "RTL", ModeStack, 6, false, (*CPU).rtl},
		{0x6C, "JMP", ModeIndirect, 5, false, (*CPU).jmp},
		{0x6D, "ADC", ModeAbsolute, 4, false, (*CPU).adc},
		{0x6E, "ROR", ModeAbsolute, 6, false, (*CPU).ror},
		{0x6F, "ADC", ModeAbsoluteLong, 5, false, (*CPU).adc},

		{0x70, "BVS", ModeRelative, 2, false, (*CPU).bvs},
		{0x71, "ADC", ModeDirectIndirectY, 5, true, (*CPU).adc},
		{0x72, "ADC", ModeDirectIndirect, 5, false, (*CPU).adc},
		{0x73, "ADC", ModeStackRelativeIndirectY, 7, false, (*CPU).adc},
		{0x74, "STZ", ModeDirectX, 4, false, (*CPU).stz},
		{0x75, "ADC", ModeDirectX, 4, false, (*CPU).adc},
		{0x76, "ROR", ModeDirectX, 6, false, (*CPU).ror},
		{0x77, "ADC", ModeDirectIndirectLongY, 6, false, (*CPU).adc},
		{0x78, "SEI", ModeImplied, 2, false, (*CPU).sei},
		{0x79, "ADC", ModeAbsoluteY, 4, true, (*CPU).adc},
		{0x7A, "PLY", ModeStack, 4, false, (*CPU).ply},
		{0x7B, "TDC", ModeImplied, 2, false, (*CPU).tdc},
		{0x7C, "JMP", ModeIndirectX, 6, false, (*CPU).jmp},
		{0x7D, "ADC", ModeAbsoluteX, 4, true, (*CPU).adc},
		{0x7E, "ROR", ModeAbsoluteX, 7, false, (*CPU).ror},
		{0x7F, "ADC", ModeAbsoluteLongX, 5, false, (*CPU).adc},

		{0x80, "BRA", ModeRelative, 2, false, (*CPU).bra},
		{0x81, "STA", ModeDirectIndirectX, 6, false, (*CPU).sta},
		{0x82, "BRL", ModeRelativeLong, 4, false, (*CPU).brl},
		{0x83, "STA", ModeStackRelative, 4, false, (*CPU).sta},
		{0x84, "STY", ModeDirect, 3, false, (*CPU).sty},
		{0x85, "STA", ModeDirect, 3, false, (*CPU).sta},
		{0x86, "STX", ModeDirect, 3, false, (*CPU).stx},
		{0x87, "STA", ModeDirectIndirectLong, 6, false, (*CPU).sta},
		{0x88, "DEY", ModeImplied, 2, false, (*CPU).dey},
		{0x89, "BIT", ModeImmediate, 2, false, (*CPU).bit},
		{0x8A, "TXA", ModeImplied, 2, false, (*CPU).txa},
		{0x8B, "PHB", ModeStack, 3, false, (*CPU).phb},
		{0x8C, "STY", ModeAbsolute, 4, false, (*CPU).sty},
		{0x8D, "STA", ModeAbsolute, 4, false, (*CPU).sta},
		{0x8E, "STX", ModeAbsolute, 4, false, (*CPU).stx},
		{0x8F, "STA", ModeAbsoluteLong, 5, false, (*CPU).sta},

		{0x90, "BCC", ModeRelative, 2, false, (*CPU).bcc},
		{0x91, "STA", ModeDirectIndirectY, 6, false, (*CPU).sta},
		{0x92, "STA", ModeDirectIndirect, 5, false, (*CPU).sta},
		{0x93, "STA", ModeStackRelativeIndirectY, 7, false, (*CPU).sta},
		{0x94, "STY", ModeDirectX, 4, false, (*CPU).sty},
		{0x95, "STA", ModeDirectX, 4, false, (*CPU).sta},
		{0x96, "STX", ModeDirectY, 4, false, (*CPU).stx},
		{0x97, "STA", ModeDirectIndirectLongY, 6, false, (*CPU).sta},
		{0x98, "TYA", ModeImplied, 2, false, (*CPU).tya},
		{0x99, "STA", ModeAbsoluteY, 5, false, (*CPU).sta},
		{0x9A, "TXS", ModeImplied, 2, false, (*CPU).txs},
		{0x9B, "TXY", ModeImplied, 2, false, (*CPU).txy},
		{0x9C, "STZ", ModeAbsolute, 4, false, (*CPU).stz},
		{0x9D, "STA", ModeAbsoluteX, 5, false, (*CPU).sta},
		{0x9E, "STZ", ModeAbsoluteX, 5, false, (*CPU).stz},
		{0x9F, "STA", ModeAbsoluteLongX, 5, false, (*CPU).sta},

		{0xA0, "LDY", ModeImmediate, 2, false, (*CPU).ldy},
		{0xA1, "LDA", ModeDirectIndirectX, 6, false, (*CPU).lda},
		{0xA2, "LDX", ModeImmediate, 2, false, (*CPU).ldx},
		{0xA3, "LDA", ModeStackRelative, 4, false, (*CPU).lda},
		{0xA4, "LDY", ModeDirect, 3, false, (*CPU).ldy},
		{0xA5, "LDA", ModeDirect, 3, false, (*CPU).lda},
		{0xA6, "LDX", ModeDirect, 3, false, (*CPU).ldx},
		{0xA7, "LDA", ModeDirectIndirectLong, 6, false, (*CPU).lda},
		{0xA8, "TAY", ModeImplied, 2, false, (*CPU).tay},
		{0xA9, "LDA", ModeImmediate, 2, false, (*CPU).lda},
		{0xAA, "TAX", ModeImplied, 2, false, (*CPU).tax},
		{0xAB, "PLB", ModeStack, 4, false, (*CPU).plb},
		{0xAC, "LDY", ModeAbsolute, 4, false, (*CPU).ldy},
		{0xAD, "LDA", ModeAbsolute, 4, false, (*CPU).lda},
		{0xAE, "LDX", ModeAbsolute, 4, false, (*CPU).ldx},
		{0xAF, "LDA", ModeAbsoluteLong, 5, false, (*CPU).lda},

		{0xB0, "BCS", ModeRelative, 2, false, (*CPU).bcs},
		{0xB1, "LDA", ModeDirectIndirectY, 5, true, (*CPU).lda},
		{0xB2, "LDA", ModeDirectIndirect, 5, false, (*CPU).lda},
		{0xB3, "LDA", ModeStackRelativeIndirectY, 7, false, (*CPU).lda},
		{0xB4, "LDY", ModeDirectX, 4, false, (*CPU).ldy},
		{0xB5, "LDA", ModeDirectX, 4, false, (*CPU).lda},
		{0xB6, "LDX", ModeDirectY, 4, false, (*CPU).ldx},
		{0xB7, "LDA", ModeDirectIndirectLongY, 6, false, (*CPU).lda},
		{0xB8, "CLV", ModeImplied, 2, false, (*CPU).clv},
		{0xB9, "LDA", ModeAbsoluteY, 4, true, (*CPU).lda},
		{0xBA, "TSX", ModeImplied, 2, false, (*CPU).tsx},
		{0xBB, "TYX", ModeImplied, 2, false, (*CPU).tyx},
		{0xBC, "LDY", ModeAbsoluteX, 4, true, (*CPU).ldy},
		{0xBD, "LDA", ModeAbsoluteX, 4, true, (*CPU).lda},
		{0xBE, "LDX", ModeAbsoluteY, 4, true, (*CPU).ldx},
		{0xBF, "LDA", ModeAbsoluteLongX, 5, false, (*CPU).lda},

		{0xC0, "CPY", ModeImmediate, 2, false, (*CPU).cpy},
		{0xC1, "CMP", ModeDirectIndirectX, 6, false, (*CPU).cmp},
		{0xC2, "REP", ModeImmediate8, 3, false, (*CPU).rep},
		{0xC3, "CMP", ModeStackRelative, 4, false, (*CPU).cmp},
		{0xC4, "CPY", ModeDirect, 3, false, (*CPU).cpy},
		{0xC5, "CMP", ModeDirect, 3, false, (*CPU).cmp},
		{0xC6, "DEC", ModeDirect, 5, false, (*CPU).dec},
		{0xC7, "CMP", ModeDirectIndirectLong, 6, false, (*CPU).cmp},
		{0xC8, "INY", ModeImplied, 2, false, (*CPU).iny},
		{0xC9, "CMP", ModeImmediate, 2, false, (*CPU).cmp},
		{0xCA, "DEX", ModeImplied, 2, false, (*CPU).dex},
		{0xCB, "WAI", ModeImplied, 3, false, (*CPU).wai},
		{0xCC, "CPY", ModeAbsolute, 4, false, (*CPU).cpy},
		{0xCD, "CMP", ModeAbsolute, 4, false, (*CPU).cmp},
		{0xCE, "DEC", ModeAbsolute, 6, false, (*CPU).dec},
		{0xCF, "CMP", ModeAbsoluteLong, 5, false, (*CPU).cmp},

		{0xD0, "BNE", ModeRelative, 2, false, (*CPU).bne},
		{0xD1, "CMP", ModeDirectIndirectY, 5, true, (*CPU).cmp},
		{0xD2, "CMP", ModeDirectIndirect, 5, false, (*CPU).cmp},
		{0xD3, "CMP", ModeStackRelativeIndirectY, 7, false, (*CPU).cmp},
		{0xD4, "PEI", ModeDirect, 6, false, (*CPU).pei},
		{0xD5, "CMP", ModeDirectX, 4, false, (*CPU).cmp},
		{0xD6, "DEC", ModeDirectX, 6, false, (*CPU).dec},
		{0xD7, "CMP", ModeDirectIndirectLongY, 6, false, (*CPU).cmp},
		{0xD8, "CLD", ModeImplied, 2, false, (*CPU).cld},
		{0xD9, "CMP", ModeAbsoluteY, 4, true, (*CPU).cmp},
		{0xDA, "PHX", ModeStack, 3, false, (*CPU).phx},
		{0xDB, "STP", ModeImplied, 3, false, (*CPU).stp},
		{0xDC, "JML", ModeIndirectLong, 6, false, (*CPU).jmp},
		{0xDD, "CMP", ModeAbsoluteX, 4, true, (*CPU).cmp},
		{0xDE, "DEC", ModeAbsoluteX, 7, false, (*CPU).dec},
		{0xDF, "CMP", ModeAbsoluteLongX, 5, false, (*CPU).cmp},

		{0xE0, "CPX", ModeImmediate, 2, false, (*CPU).cpx},
		{0xE1, "SBC", ModeDirectIndirectX, 6, false, (*CPU).sbc},
		{0xE2, "SEP", ModeImmediate8, 3, false, (*CPU).sep},
		{0xE3, "SBC", ModeStackRelative, 4, false, (*CPU).sbc},
		{0xE4, "CPX", ModeDirect, 3, false, (*CPU).cpx},
		{0xE5, "SBC", ModeDirect, 3, false, (*CPU).sbc},
		{0xE6, "INC", ModeDirect, 5, false, (*CPU).inc},
		{0xE7, "SBC", ModeDirectIndirectLong, 6, false, (*CPU).sbc},
		{0xE8, "INX", ModeImplied, 2, false, (*CPU).inx},
		{0xE9, "SBC", ModeImmediate, 2, false, (*CPU).sbc},
		{0xEA, "NOP", ModeImplied, 2, false, (*CPU).nop},
		{0xEB, "XBA", ModeImplied, 3, false, (*CPU).xba},
		{0xEC, "CPX", ModeAbsolute, 4, false, (*CPU).cpx},
		{0xED, "SBC", ModeAbsolute, 4, false, (*CPU).sbc},
		{0xEE, "INC", ModeAbsolute, 6, false, (*CPU).inc},
		{0xEF, "SBC", ModeAbsoluteLong, 5, false, (*CPU).sbc},

		{0xF0, "BEQ", ModeRelative, 2, false, (*CPU).beq},
		{0xF1, "SBC", ModeDirectIndirectY, 5, true, (*CPU).sbc},
		{0xF2, "SBC", ModeDirectIndirect, 5, false, (*CPU).sbc},
		{0xF3, "SBC", ModeStackRelativeIndirectY, 7, false, (*CPU).sbc},
		{0xF4, "PEA", ModeAbsolute, 5, false, (*CPU).pea},
		{0xF5, "SBC", ModeDirectX, 4, false, (*CPU).sbc},
		{0xF6, "INC", ModeDirectX, 6, false, (*CPU).inc},
		{0xF7, "SBC", ModeDirectIndirectLongY, 6, false, (*CPU).sbc},
		{0xF8, "SED", ModeImplied, 2, false, (*CPU).sed},
		{0xF9, "SBC", ModeAbsoluteY, 4, true, (*CPU).sbc},
		{0xFA, "PLX", ModeStack, 4, false, (*CPU).plx},
		{0xFB, "XCE", ModeImplied, 2, false, (*CPU).xce},
		{0xFC, "JSR", ModeIndirectX, 8, false, (*CPU).jsr},
		{0xFD, "SBC", ModeAbsoluteX, 4, true, (*CPU).sbc},
		{0xFE, "INC", ModeAbsoluteX, 7, false, (*CPU).inc},
		{0xFF, "SBC", ModeAbsoluteLongX, 5, false, (*CPU).sbc},
	}
}
