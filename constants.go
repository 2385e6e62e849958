// constants.go - Processor constants for the 6502, 65C02 and 65816

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

const (
	// Status Register Flags

	CARRY_FLAG     = 0x01 // Carry flag
	ZERO_FLAG      = 0x02 // Zero flag
	INTERRUPT_FLAG = 0x04 // Interrupt disable
	DECIMAL_FLAG   = 0x08 // Decimal mode
	BREAK_FLAG     = 0x10 // Break command (emulation mode)
	UNUSED_FLAG    = 0x20 // Unused, always 1 (emulation mode)
	OVERFLOW_FLAG  = 0x40 // Overflow flag
	NEGATIVE_FLAG  = 0x80 // Negative flag

	// Native-mode meanings of bits 4 and 5. Set means 8-bit.
	INDEX_WIDTH_FLAG = 0x10 // X/Y 8-bit (IRS)
	ACCUM_WIDTH_FLAG = 0x20 // A/memory 8-bit (MS)
)

const (
	// Processor operating modes, stored in CPU.Mode

	MODE_NATIVE    = 0
	MODE_EMULATION = 1
)

const (
	STACK_BASE = 0x0100 // Page 1 stack location

	BYTE_MASK = 0xFF
	WORD_MASK = 0xFFFF
	LONG_MASK = 0xFFFFFF
	PAGE_MASK = 0xFF00
	BANK_MASK = 0xFF0000

	MEMORY_SIZE_6502  = 1 << 16
	MEMORY_SIZE_65816 = 1 << 18
)

const (
	// Emulation-mode vectors (shared with the 6502 and 65C02)

	COP_VECTOR   = 0xFFF4
	NMI_VECTOR   = 0xFFFA
	RESET_VECTOR = 0xFFFC
	IRQ_VECTOR   = 0xFFFE // IRQ and BRK

	// Native-mode vectors

	NATIVE_COP_VECTOR   = 0xFFE4
	NATIVE_BRK_VECTOR   = 0xFFE6
	NATIVE_ABORT_VECTOR = 0xFFE8
	NATIVE_NMI_VECTOR   = 0xFFEA
	NATIVE_IRQ_VECTOR   = 0xFFEE
)

// Vector tables indexed by CPU.Mode.
var (
	irqVectors = [2]uint16{MODE_NATIVE: NATIVE_IRQ_VECTOR, MODE_EMULATION: IRQ_VECTOR}
	nmiVectors = [2]uint16{MODE_NATIVE: NATIVE_NMI_VECTOR, MODE_EMULATION: NMI_VECTOR}
	brkVectors = [2]uint16{MODE_NATIVE: NATIVE_BRK_VECTOR, MODE_EMULATION: IRQ_VECTOR}
	copVectors = [2]uint16{MODE_NATIVE: NATIVE_COP_VECTOR, MODE_EMULATION: COP_VECTOR}
)

var nzTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		if i == 0 {
			nzTable[i] |= ZERO_FLAG
		}
		if i&0x80 != 0 {
			nzTable[i] |= NEGATIVE_FLAG
		}
	}
}

func btou8(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func btou16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
