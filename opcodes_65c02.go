// opcodes_65c02.go - WDC 65C02 opcode overrides

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

import "fmt"

// overrides65C02 lists the WDC 65C02 changes applied over the 6502 table.
func overrides65C02() []opDef {
	defs := []opDef{
		{0x04, "TSB", ModeDirect, 5, false, (*CPU).tsb},
		{0x0C, "TSB", ModeAbsolute, 6, false, (*CPU).tsb},
		{0x14, "TRB", ModeDirect, 5, false, (*CPU).trb},
		{0x1C, "TRB", ModeAbsolute, 6, false, (*CPU).trb},

		{0x12, "ORA", ModeDirectIndirect, 5, false, (*CPU).ora},
		{0x32, "AND", ModeDirectIndirect, 5, false, (*CPU).and},
		{0x52, "EOR", ModeDirectIndirect, 5, false, (*CPU).eor},
		{0x72, "ADC", ModeDirectIndirect, 5, false, (*CPU).adc},
		{0x92, "STA", ModeDirectIndirect, 5, false, (*CPU).sta},
		{0xB2, "LDA", ModeDirectIndirect, 5, false, (*CPU).lda},
		{0xD2, "CMP", ModeDirectIndirect, 5, false, (*CPU).cmp},
		{0xF2, "SBC", ModeDirectIndirect, 5, false, (*CPU).sbc},

		{0x1A, "INC", ModeAccumulator, 2, false, (*CPU).inc},
		{0x3A, "DEC", ModeAccumulator, 2, false, (*CPU).dec},
		{0x34, "BIT", ModeDirectX, 4, false, (*CPU).bit},
		{0x3C, "BIT", ModeAbsoluteX, 4, true, (*CPU).bit},
		{0x89, "BIT", ModeImmediate, 2, false, (*CPU).bit},

		{0x5A, "PHY", ModeStack, 3, false, (*CPU).phy},
		{0x7A, "PLY", ModeStack, 4, false, (*CPU).ply},
		{0xDA, "PHX", ModeStack, 3, false, (*CPU).phx},
		{0xFA, "PLX", ModeStack, 4, false, (*CPU).plx},

		{0x64, "STZ", ModeDirect, 3, false, (*CPU).stz},
		{0x74, "STZ", ModeDirectX, 4, false, (*CPU).stz},
		{0x9C, "STZ", ModeAbsolute, 4, false, (*CPU).stz},
		{0x9E, "STZ", ModeAbsoluteX, 5, false, (*CPU).stz},

		{0x6C, "JMP", ModeIndirect, 6, false, (*CPU).jmp},
		{0x7C, "JMP", ModeIndirectX, 6, false, (*CPU).jmp},
		{0x80, "BRA", ModeRelative, 2, false, (*CPU).bra},

		{0xCB, "WAI", ModeImplied, 3, false, (*CPU).wai},
		{0xDB, "STP", ModeImplied, 3, false, (*CPU).stp},

		// Shifts on abs,X only pay for a page crossing.
		{0x1E, "ASL", ModeAbsoluteX, 6, true, (*CPU).asl},
		{0x3E, "ROL", ModeAbsoluteX, 6, true, (*CPU).rol},
		{0x5E, "LSR", ModeAbsoluteX, 6, true, (*CPU).lsr},
		{0x7E, "ROR", ModeAbsoluteX, 6, true, (*CPU).ror},

		// Reserved opcodes are NOPs of fixed length.
		{0x44, "NOP", ModeDirect, 3, false, (*CPU).nop},
		{0x54, "NOP", ModeDirectX, 4, false, (*CPU).nop},
		{0xD4, "NOP", ModeDirectX, 4, false, (*CPU).nop},
		{0xF4, "NOP", ModeDirectX, 4, false, (*CPU).nop},
		{0x5C, "NOP", ModeAbsolute, 8, false, (*CPU).nop},
		{0xDC, "NOP", ModeAbsolute, 4, false, (*CPU).nop},
		{0xFC, "NOP", ModeAbsolute, 4, false, (*CPU).nop},
	}

	for _, code := range []byte{0x02, 0x22, 0x42, 0x62, 0x82, 0xC2, 0xE2} {
		defs = append(defs, opDef{code, "NOP", ModeImmediate8, 2, false, (*CPU).nop})
	}

	for row := 0; row < 16; row++ {
		hi := byte(row << 4)
		defs = append(defs, opDef{hi | 0x03, "NOP", ModeImplied, 1, false, (*CPU).nop})
		if hi != 0xC0 && hi != 0xD0 {
			defs = append(defs, opDef{hi | 0x0B, "NOP", ModeImplied, 1, false, (*CPU).nop})
		}
	}

	for bit := 0; bit < 8; bit++ {
		lo := byte(bit << 4)
		hi := byte((bit + 8) << 4)
		defs = append(defs,
			opDef{lo | 0x07, fmt.Sprintf("RMB%d", bit), ModeDirect, 5, false, rmb(bit)},
			opDef{hi | 0x07, fmt.Sprintf("SMB%d", bit), ModeDirect, 5, false, smb(bit)},
			opDef{lo | 0x0F, fmt.Sprintf("BBR%d", bit), ModeDirectRelative, 5, false, bbr(bit)},
			opDef{hi | 0x0F, fmt.Sprintf("BBS%d", bit), ModeDirectRelative, 5, false, bbs(bit)},
		)
	}

	return defs
}
