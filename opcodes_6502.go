// opcodes_6502.go - NMOS 6502 opcode table

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

// opcodes6502 lists the documented NMOS 6502 instruction set.
func opcodes6502() []opDef {
	return []opDef{
		{0x00, "BRK", ModeImmediate8, 7, false, (*CPU).brk},
		{0x01, "ORA", ModeDirectIndirectX, 6, false, (*CPU).ora},
		{0x05, "ORA", ModeDirect, 3, false, (*CPU).ora},
		{0x06, "ASL", ModeDirect, 5, false, (*CPU).asl},
		{0x08, "PHP", ModeStack, 3, false, (*CPU).php},
		{0x09, "ORA", ModeImmediate, 2, false, (*CPU).ora},
		{0x0A, "ASL", ModeAccumulator, 2, false, (*CPU).asl},
		{0x0D, "ORA", ModeAbsolute, 4, false, (*CPU).ora},
		{0x0E, "ASL", ModeAbsolute, 6, false, (*CPU).asl},

		{0x10, "BPL", ModeRelative, 2, false, (*CPU).bpl},
		{0x11, "ORA", ModeDirectIndirectY, 5, true, (*CPU).ora},
		{0x15, "ORA", ModeDirectX, 4, false, (*CPU).ora},
		{0x16, "ASL", ModeDirectX, 6, false, (*CPU).asl},
		{0x18, "CLC", ModeImplied, 2, false, (*CPU).clc},
		{0x19, "ORA", ModeAbsoluteY, 4, true, (*CPU).ora},
		{0x1D, "ORA", ModeAbsoluteX, 4, true, (*CPU).ora},
		{0x1E, "ASL", ModeAbsoluteX, 7, false, (*CPU).asl},

		{0x20, "JSR", ModeAbsolute, 6, false, (*CPU).jsr},
		{0x21, "AND", ModeDirectIndirectX, 6, false, (*CPU).and},
		{0x24, "BIT", ModeDirect, 3, false, (*CPU).bit},
		{0x25, "AND", ModeDirect, 3, false, (*CPU).and},
		{0x26, "ROL", ModeDirect, 5, false, (*CPU).rol},
		{0x28, "PLP", ModeStack, 4, false, (*CPU).plp},
		{0x29, "AND", ModeImmediate, 2, false, (*CPU).and},
		{0x2A, "ROL", ModeAccumulator, 2, false, (*CPU).rol},
		{0x2C, "BIT", ModeAbsolute, 4, false, (*CPU).bit},
		{0x2D, "AND", ModeAbsolute, 4, false, (*CPU).and},
		{0x2E, "ROL", ModeAbsolute, 6, false, (*CPU).rol},

		{0x30, "BMI", ModeRelative, 2, false, (*CPU).bmi},
		{0x31, "AND", ModeDirectIndirectY, 5, true, (*CPU).and},
		{0x35, "AND", ModeDirectX, 4, false, (*CPU).and},
		{0x36, "ROL", ModeDirectX, 6, false, (*CPU).rol},
		{0x38, "SEC", ModeImplied, 2, false, (*CPU).sec},
		{0x39, "AND", ModeAbsoluteY, 4, true, (*CPU).and},
		{0x3D, "AND", ModeAbsoluteX, 4, true, (*CPU).and},
		{0x3E, "ROL", ModeAbsoluteX, 7, false, (*CPU).rol},

		{0x40, "RTI", ModeStack, 6, false, (*CPU).rti},
		{0x41, "EOR", ModeDirectIndirectX, 6, false, (*CPU).eor},
		{0x45, "EOR", ModeDirect, 3, false, (*CPU).eor},
		{0x46, "LSR", ModeDirect, 5, false, (*CPU).lsr},
		{0x48, "PHA", ModeStack, 3, false, (*CPU).pha},
		{0x49, "EOR", ModeImmediate, 2, false, (*CPU).eor},
		{0x4A, "LSR", ModeAccumulator, 2, false, (*CPU).lsr},
		{0x4C, "JMP", ModeAbsolute, 3, false, (*CPU).jmp},
		{0x4D, "EOR", ModeAbsolute, 4, false, (*CPU).eor},
		{0x4E, "LSR", ModeAbsolute, 6, false, (*CPU).lsr},

		{0x50, "BVC", ModeRelative, 2, false, (*CPU).bvc},
		{0x51, "EOR", ModeDirectIndirectY, 5, true, (*CPU).eor},
		{0x55, "EOR", ModeDirectX, 4, false, (*CPU).eor},
		{0x56, "LSR", ModeDirectX, 6, false, (*CPU).lsr},
		{0x58, "CLI", ModeImplied, 2, false, (*CPU).cli},
		{0x59, "EOR", ModeAbsoluteY, 4, true, (*CPU).eor},
		{0x5D, "EOR", ModeAbsoluteX, 4, true, (*CPU).eor},
		{0x5E, "LSR", ModeAbsoluteX, 7, false, (*CPU).lsr},

		{0x60, "RTS", ModeStack, 6, false, (*CPU).rts},
		{0x61, "ADC", ModeDirectIndirectX, 6, false, (*CPU).adc},
		{0x65, "ADC", ModeDirect, 3, false, (*CPU).adc},
		{0x66, "ROR", ModeDirect, 5, false, (*CPU).ror},
		{0x68, "PLA", ModeStack, 4, false, (*CPU).pla},
		{0x69, "ADC", ModeImmediate, 2, false, (*CPU).adc},
		{0x6A, "ROR", ModeAccumulator, 2, false, (*CPU).ror},
		{0x6C, "JMP", ModeIndirect, 5, false, (*CPU).jmp},
		{0x6D, "ADC", ModeAbsolute, 4, false, (*CPU).adc},
		{0x6E, "ROR", ModeAbsolute, 6, false, (*CPU).ror},

		{0x70, "BVS", ModeRelative, 2, false, (*CPU).bvs},
		{0x71, "ADC", ModeDirectIndirectY, 5, true, (*CPU).adc},
		{0x75, "ADC", ModeDirectX, 4, false, (*CPU).adc},
		{0x76, "ROR", ModeDirectX, 6, false, (*CPU).ror},
		{0x78, "SEI", ModeImplied, 2, false, (*CPU).sei},
		{0x79, "ADC", ModeAbsoluteY, 4, true, (*CPU).adc},
		{0x7D, "ADC", ModeAbsoluteX, 4, true, (*CPU).adc},
		{0x7E, "ROR", ModeAbsoluteX, 7, false, (*CPU).ror},

		{0x81, "STA", ModeDirectIndirectX, 6, false, (*CPU).sta},
		{0x84, "STY", ModeDirect, 3, false, (*CPU).sty},
		{0x85, "STA", ModeDirect, 3, false, (*CPU).sta},
		{0x86, "STX", ModeDirect, 3, false, (*CPU).stx},
		{0x88, "DEY", ModeImplied, 2, false, (*CPU).dey},
		{0x8A, "TXA", ModeImplied, 2, false, (*CPU).txa},
		{0x8C, "STY", ModeAbsolute, 4, false, (*CPU).sty},
		{0x8D, "STA", ModeAbsolute, 4, false, (*CPU).sta},
		{0x8E, "STX", ModeAbsolute, 4, false, (*CPU).stx},

		{0x90, "BCC", ModeRelative, 2, false, (*CPU).bcc},
		{0x91, "STA", ModeDirectIndirectY, 6, false, (*CPU).sta},
		{0x94, "STY", ModeDirectX, 4, false, (*CPU).sty},
		{0x95, "STA", ModeDirectX, 4, false, (*CPU).sta},
		{0x96, "STX", ModeDirectY, 4, false, (*CPU).stx},
		{0x98, "TYA", ModeImplied, 2, false, (*CPU).tya},
		{0x99, "STA", ModeAbsoluteY, 5, false, (*CPU).sta},
		{0x9A, "TXS", ModeImplied, 2, false, (*CPU).txs},
		{0x9D, "STA", ModeAbsoluteX, 5, false, (*CPU).sta},

		{0xA0, "LDY", ModeImmediate, 2, false, (*CPU).ldy},
		{0xA1, "LDA", ModeDirectIndirectX, 6, false, (*CPU).lda},
		{0xA2, "LDX", ModeImmediate, 2, false, (*CPU).ldx},
		{0xA4, "LDY", ModeDirect, 3, false, (*CPU).ldy},
		{0xA5, "LDA", ModeDirect, 3, false, (*CPU).lda},
		{0xA6, "LDX", ModeDirect, 3, false, (*CPU).ldx},
		{0xA8, "TAY", ModeImplied, 2, false, (*CPU).tay},
		{0xA9, "LDA", ModeImmediate, 2, false, (*CPU).lda},
		{0xAA, "TAX", ModeImplied, 2, false, (*CPU).tax},
		{0xAC, "LDY", ModeAbsolute, 4, false, (*CPU).ldy},
		{0xAD, "LDA", ModeAbsolute, 4, false, (*CPU).lda},
		{0xAE, "LDX", ModeAbsolute, 4, false, (*CPU).ldx},

		{0xB0, "BCS", ModeRelative, 2, false, (*CPU).bcs},
		{0xB1, "LDA", ModeDirectIndirectY, 5, true, (*CPU).lda},
		{0xB4, "LDY", ModeDirectX, 4, false, (*CPU).ldy},
		{0xB5, "LDA", ModeDirectX, 4, false, (*CPU).lda},
		{0xB6, "LDX", ModeDirectY, 4, false, (*CPU).ldx},
		{0xB8, "CLV", ModeImplied, 2, false, (*CPU).clv},
		{0xB9, "LDA", ModeAbsoluteY, 4, true, (*CPU).lda},
		{0xBA, "TSX", ModeImplied, 2, false, (*CPU).tsx},
		{0xBC, "LDY", ModeAbsoluteX, 4, true, (*CPU).ldy},
		{0xBD, "LDA", ModeAbsoluteX, 4, true, (*CPU).lda},
		{0xBE, "LDX", ModeAbsoluteY, 4, true, (*CPU).ldx},

		{0xC0, "CPY", ModeImmediate, 2, false, (*CPU).cpy},
		{0xC1, "CMP", ModeDirectIndirectX, 6, false, (*CPU).cmp},
		{0xC4, "CPY", ModeDirect, 3, false, (*CPU).cpy},
		{0xC5, "CMP", ModeDirect, 3, false, (*CPU).cmp},
		{0xC6, "DEC", ModeDirect, 5, false, (*CPU).dec},
		{0xC8, "INY", ModeImplied, 2, false, (*CPU).iny},
		{0xC9, "CMP", ModeImmediate, 2, false, (*CPU).cmp},
		{0xCA, "DEX", ModeImplied, 2, false, (*CPU).dex},
		{0xCC, "CPY", ModeAbsolute, 4, false, (*CPU).cpy},
		{0xCD, "CMP", ModeAbsolute, 4, false, (*CPU).cmp},
		{0xCE, "DEC", ModeAbsolute, 6, false, (*CPU).dec},

		{0xD0, "BNE", ModeRelative, 2, false, (*CPU).bne},
		{0xD1, "CMP", ModeDirectIndirectY, 5, true, (*CPU).cmp},
		{0xD5, "CMP", ModeDirectX, 4, false, (*CPU).cmp},
		{0xD6, "DEC", ModeDirectX, 6, false, (*CPU).dec},
		{0xD8, "CLD", ModeImplied, 2, false, (*CPU).cld},
		{0xD9, "CMP", ModeAbsoluteY, 4, true, (*CPU).cmp},
		{0xDD, "CMP", ModeAbsoluteX, 4, true, (*CPU).cmp},
		{0xDE, "DEC", ModeAbsoluteX, 7, false, (*CPU).dec},

		{0xE0, "CPX", ModeImmediate, 2, false, (*CPU).cpx},
		{0xE1, "SBC", ModeDirectIndirectX, 6, false, (*CPU).sbc},
		{0xE4, "CPX", ModeDirect, 3, false, (*CPU).cpx},
		{0xE5, "SBC", ModeDirect, 3, false, (*CPU).sbc},
		{0xE6, "INC", ModeDirect, 5, false, (*CPU).inc},
		{0xE8, "INX", ModeImplied, 2, false, (*CPU).inx},
		{0xE9, "SBC", ModeImmediate, 2, false, (*CPU).sbc},
		{0xEA, "NOP", ModeImplied, 2, false, (*CPU).nop},
		{0xEC, "CPX", ModeAbsolute, 4, false, (*CPU).cpx},
		{0xED, "SBC", ModeAbsolute, 4, false, (*CPU).sbc},
		{0xEE, "INC", ModeAbsolute, 6, false, (*CPU).inc},

		{0xF0, "BEQ", ModeRelative, 2, false, (*CPU).beq},
		{0xF1, "SBC", ModeDirectIndirectY, 5, true, (*CPU).sbc},
		{0xF5, "SBC", ModeDirectX, 4, false, (*CPU).sbc},
		{0xF6, "INC", ModeDirectX, 6, false, (*CPU).inc},
		{0xF8, "SED", ModeImplied, 2, false, (*CPU).sed},
		{0xF9, "SBC", ModeAbsoluteY, 4, true, (*CPU).sbc},
		{0xFD, "SBC", ModeAbsoluteX, 4, true, (*CPU).sbc},
		{0xFE, "INC", ModeAbsoluteX, 7, false, (*CPU).inc},
	}
}
