// debug_registers.go - Register access by name for monitors and breakpoint conditions

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

import (
	"strings"
)

// RegisterInfo describes a single register for display.
type RegisterInfo struct {
	Name     string // "A", "X", "DBR"
	BitWidth int    // 8, 16 or 24
	Value    uint64
	Group    string // "general", "index", "bank", "status"
}

// Registers lists the registers of the processor at their current widths.
func (cpu *CPU) Registers() []RegisterInfo {
	accWidth, idxWidth := 8, 8
	if cpu.m16() {
		accWidth = 16
	}
	if cpu.x16() {
		idxWidth = 16
	}

	regs := []RegisterInfo{
		{Name: "A", BitWidth: accWidth, Value: uint64(cpu.A), Group: "general"},
		{Name: "X", BitWidth: idxWidth, Value: uint64(cpu.X), Group: "index"},
		{Name: "Y", BitWidth: idxWidth, Value: uint64(cpu.Y), Group: "index"},
		{Name: "SP", BitWidth: 16, Value: uint64(cpu.SP), Group: "general"},
		{Name: "PC", BitWidth: 16, Value: uint64(cpu.PC), Group: "general"},
		{Name: "P", BitWidth: 8, Value: uint64(cpu.P), Group: "status"},
	}
	if cpu.variant != Variant65816 {
		return regs
	}
	return append(regs,
		RegisterInfo{Name: "B", BitWidth: 8, Value: uint64(cpu.B), Group: "general"},
		RegisterInfo{Name: "DBR", BitWidth: 8, Value: uint64(cpu.DBR), Group: "bank"},
		RegisterInfo{Name: "PBR", BitWidth: 8, Value: uint64(cpu.PBR), Group: "bank"},
		RegisterInfo{Name: "DPR", BitWidth: 16, Value: uint64(cpu.DPR), Group: "bank"},
		RegisterInfo{Name: "E", BitWidth: 1, Value: uint64(cpu.Mode), Group: "status"},
	)
}

// GetRegister reads a register by name. C is the full 16-bit accumulator and
// PC24 the flat programme counter.
func (cpu *CPU) GetRegister(name string) (uint64, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return uint64(cpu.A), true
	case "B":
		return uint64(cpu.B), true
	case "C":
		return uint64(cpu.C()), true
	case "X":
		return uint64(cpu.X), true
	case "Y":
		return uint64(cpu.Y), true
	case "SP", "S":
		return uint64(cpu.SP), true
	case "PC":
		return uint64(cpu.PC), true
	case "PC24":
		return uint64(cpu.ProgramCounter()), true
	case "P", "SR":
		return uint64(cpu.P), true
	case "DBR", "DB":
		return uint64(cpu.DBR), true
	case "PBR", "PB", "K":
		return uint64(cpu.PBR), true
	case "DPR", "D", "DP":
		return uint64(cpu.DPR), true
	case "E", "MODE":
		return uint64(cpu.Mode), true
	case "CYCLES":
		return cpu.Cycles, true
	}
	return 0, false
}

// SetRegister writes a register by name, applying the same width rules the
// instructions do.
func (cpu *CPU) SetRegister(name string, value uint64) bool {
	/*
	   SetRegister keeps the register file consistent:

	   - A, X, Y are truncated to the current register width
	   - P goes through SetP so width changes move or truncate bytes
	   - E switches mode like XCE; only the 65816 has a native mode
	   - SP is forced into page 1 in emulation mode
	   - B, C and the bank registers only exist on the 65816; the 8-bit
	     variants accept a zero write and leave them alone
	*/

	name = strings.ToUpper(name)
	if cpu.variant != Variant65816 {
		switch name {
		case "B", "C", "DBR", "DB", "PBR", "PB", "K", "DPR", "D", "DP":
			return value == 0
		}
	}

	switch name {
	case "A":
		cpu.A = uint16(value) & widthMask(cpu.m16())
	case "B":
		cpu.B = byte(value)
	case "C":
		cpu.setC(uint16(value))
	case "X":
		cpu.X = uint16(value) & widthMask(cpu.x16())
	case "Y":
		cpu.Y = uint16(value) & widthMask(cpu.x16())
	case "SP", "S":
		cpu.SP = uint16(value)
		if cpu.Mode == MODE_EMULATION {
			cpu.SP = STACK_BASE | cpu.SP&BYTE_MASK
		}
	case "PC":
		cpu.PC = uint16(value)
	case "PC24":
		cpu.SetProgramCounter(uint32(value))
	case "P", "SR":
		cpu.SetP(byte(value))
	case "DBR", "DB":
		cpu.DBR = byte(value)
	case "PBR", "PB", "K":
		cpu.PBR = byte(value)
	case "DPR", "D", "DP":
		cpu.DPR = uint16(value)
	case "E", "MODE":
		if cpu.variant != Variant65816 {
			return value != 0
		}
		if value != 0 {
			cpu.setMode(MODE_EMULATION)
		} else {
			cpu.setMode(MODE_NATIVE)
		}
	default:
		return false
	}
	return true
}
