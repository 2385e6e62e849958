// cpu_ops_65816.go - Instructions that only exist on the 65816

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
cpu_ops_65816.go - Instructions that only exist on the 65816

Mode and width control (XCE, REP, SEP), long control flow (JSL, RTL, JML,
BRL), the bank and direct page registers, pushes of effective addresses,
the accumulator transfers that ignore M, COP, XBA and the block moves.

In emulation mode the new stack instructions keep SP inside page 1, the
same as the 6502 heritage instructions.
*/

package six5go

func (cpu *CPU) xce(AddrMode) {
	/*
	   xce exchanges the carry and emulation bits.

	   Entering emulation forces 8-bit widths (B keeps the high accumulator
	   byte, X/Y are truncated) and moves SP into page 1. Entering native
	   mode leaves M and X set. Nothing changes when both bits agree.
	*/

	toEmulation := cpu.P&CARRY_FLAG != 0
	cpu.setFlag(CARRY_FLAG, cpu.Mode == MODE_EMULATION)
	if toEmulation {
		cpu.setMode(MODE_EMULATION)
	} else {
		cpu.setMode(MODE_NATIVE)
	}
}

func (cpu *CPU) rep(AddrMode) {
	mask := cpu.fetch()
	cpu.SetP(cpu.P &^ mask)
}

func (cpu *CPU) sep(AddrMode) {
	mask := cpu.fetch()
	cpu.SetP(cpu.P | mask)
}

func (cpu *CPU) jsl(AddrMode) {
	target := cpu.fetchLong()
	cpu.push(cpu.PBR)
	cpu.push16(cpu.PC - 1)
	cpu.PBR = byte(target >> 16)
	cpu.PC = uint16(target)
}

func (cpu *CPU) rtl(AddrMode) {
	cpu.PC = cpu.pop16() + 1
	cpu.PBR = cpu.pop()
}

func (cpu *CPU) brl(AddrMode) {
	cpu.PC = uint16(cpu.getRelativeLong())
}

func (cpu *CPU) cop(AddrMode) {
	cpu.PC++ // signature byte
	cpu.interrupt(&copVectors, false)
	if cpu.Mode == MODE_NATIVE {
		cpu.excycles++
	}
}

// ------------------------------------------------------------------------------
// Bank and direct page registers
// ------------------------------------------------------------------------------

func (cpu *CPU) phb(AddrMode) { cpu.push(cpu.DBR) }
func (cpu *CPU) phk(AddrMode) { cpu.push(cpu.PBR) }
func (cpu *CPU) phd(AddrMode) { cpu.push16(cpu.DPR) }

func (cpu *CPU) plb(AddrMode) {
	cpu.DBR = cpu.pop()
	cpu.updateNZ(cpu.DBR)
}

func (cpu *CPU) pld(AddrMode) {
	cpu.DPR = cpu.pop16()
	cpu.updateNZWord(cpu.DPR)
}

func (cpu *CPU) pea(AddrMode) {
	cpu.push16(cpu.fetchWord())
}

func (cpu *CPU) pei(AddrMode) {
	ptr := uint16(cpu.getDirect())
	cpu.push16(cpu.readBank0Word(ptr))
}

func (cpu *CPU) per(AddrMode) {
	offset := cpu.fetchWord()
	cpu.push16(cpu.PC + offset)
}

// ------------------------------------------------------------------------------
// Transfers
// ------------------------------------------------------------------------------

func (cpu *CPU) txy(AddrMode) {
	wide := cpu.x16()
	cpu.Y = cpu.X & widthMask(wide)
	cpu.updateNZWidth(cpu.Y, wide)
}

func (cpu *CPU) tyx(AddrMode) {
	wide := cpu.x16()
	cpu.X = cpu.Y & widthMask(wide)
	cpu.updateNZWidth(cpu.X, wide)
}

// tcd, tdc, tcs and tsc always move 16 bits.
func (cpu *CPU) tcd(AddrMode) {
	cpu.DPR = cpu.C()
	cpu.updateNZWord(cpu.DPR)
}

func (cpu *CPU) tdc(AddrMode) {
	cpu.setC(cpu.DPR)
	cpu.updateNZWord(cpu.DPR)
}

func (cpu *CPU) tcs(AddrMode) {
	if cpu.Mode == MODE_EMULATION {
		cpu.SP = STACK_BASE | cpu.C()&BYTE_MASK
		return
	}
	cpu.SP = cpu.C()
}

func (cpu *CPU) tsc(AddrMode) {
	cpu.setC(cpu.SP)
	cpu.updateNZWord(cpu.SP)
}

// xba swaps the two accumulator bytes. NZ follow the new low byte.
func (cpu *CPU) xba(AddrMode) {
	c := cpu.C()
	c = c<<8 | c>>8
	cpu.setC(c)
	cpu.updateNZ(byte(c))
}

// ------------------------------------------------------------------------------
// Block moves
// ------------------------------------------------------------------------------

func (cpu *CPU) mvn(AddrMode) { cpu.blockMove(1) }
func (cpu *CPU) mvp(AddrMode) { cpu.blockMove(0xFFFF) }

func (cpu *CPU) blockMove(delta uint16) {
	/*
	   blockMove copies one byte per execution.

	   Operation:
	   1. Operands are destination bank then source bank; DBR takes the
	      destination bank
	   2. Copies src:X to dst:Y, both pointers wrapping inside their bank
	   3. Steps X and Y by delta at the current index width
	   4. Decrements the 16-bit accumulator C
	   5. Rewinds PC to the opcode until C reaches $FFFF, so an interrupt can
	      be serviced between bytes and the move resumes afterwards
	*/

	dst := cpu.fetch()
	src := cpu.fetch()
	cpu.DBR = dst

	value := cpu.readByte(uint32(src)<<16 | uint32(cpu.X))
	cpu.writeByte(uint32(dst)<<16|uint32(cpu.Y), value)

	mask := widthMask(cpu.x16())
	cpu.X = (cpu.X + delta) & mask
	cpu.Y = (cpu.Y + delta) & mask

	count := cpu.C() - 1
	cpu.setC(count)
	if count != 0xFFFF {
		cpu.PC -= 3
	}
}
