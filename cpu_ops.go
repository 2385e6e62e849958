// cpu_ops.go - Instruction semantics shared by all three variants

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
cpu_ops.go - Instruction semantics shared by all three variants

Every routine takes the addressing mode from its table entry, resolves the
operand through cpu_addressing.go and works at the width the governing flag
selects: M for the accumulator and memory, X for the index registers. On the
6502 and 65C02 both widths are always 8 bits.

Width Extras:
- 16-bit memory operand: +1 cycle
- 16-bit read-modify-write: +2 cycles
- 16-bit push/pull: +1 cycle (see pushWidth/popWidth)
*/

package six5go

func widthMask(wide bool) uint16 {
	if wide {
		return WORD_MASK
	}
	return BYTE_MASK
}

func signBit(wide bool) uint16 {
	if wide {
		return 0x8000
	}
	return 0x80
}

func (cpu *CPU) wideCycle(wide bool) {
	if wide {
		cpu.excycles++
	}
}

// operand resolves mode and reads the value at the given width.
func (cpu *CPU) operand(mode AddrMode, wide bool) uint16 {
	addr := cpu.address(mode, wide)
	value := cpu.readData(addr, wide)
	cpu.wideCycle(wide)
	return value
}

func (cpu *CPU) store(mode AddrMode, value uint16, wide bool) {
	addr := cpu.address(mode, wide)
	cpu.writeData(addr, value, wide)
	cpu.wideCycle(wide)
}

// modify runs a read-modify-write on the accumulator or on memory.
func (cpu *CPU) modify(mode AddrMode, fn func(value uint16, wide bool) uint16) {
	wide := cpu.m16()
	if mode == ModeAccumulator {
		cpu.A = fn(cpu.A&widthMask(wide), wide)
		return
	}
	addr := cpu.address(mode, wide)
	value := cpu.readData(addr, wide)
	cpu.writeData(addr, fn(value, wide), wide)
	if wide {
		cpu.excycles += 2
	}
}

// ------------------------------------------------------------------------------
// Loads and stores
// ------------------------------------------------------------------------------

func (cpu *CPU) load(mode AddrMode, wide bool) uint16 {
	value := cpu.operand(mode, wide)
	cpu.updateNZWidth(value, wide)
	return value
}

func (cpu *CPU) lda(mode AddrMode) { cpu.A = cpu.load(mode, cpu.m16()) }
func (cpu *CPU) ldx(mode AddrMode) { cpu.X = cpu.load(mode, cpu.x16()) }
func (cpu *CPU) ldy(mode AddrMode) { cpu.Y = cpu.load(mode, cpu.x16()) }

func (cpu *CPU) sta(mode AddrMode) { cpu.store(mode, cpu.A, cpu.m16()) }
func (cpu *CPU) stx(mode AddrMode) { cpu.store(mode, cpu.X, cpu.x16()) }
func (cpu *CPU) sty(mode AddrMode) { cpu.store(mode, cpu.Y, cpu.x16()) }
func (cpu *CPU) stz(mode AddrMode) { cpu.store(mode, 0, cpu.m16()) }

// ------------------------------------------------------------------------------
// Logic
// ------------------------------------------------------------------------------

func (cpu *CPU) ora(mode AddrMode) {
	wide := cpu.m16()
	cpu.A |= cpu.operand(mode, wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) and(mode AddrMode) {
	wide := cpu.m16()
	cpu.A &= cpu.operand(mode, wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) eor(mode AddrMode) {
	wide := cpu.m16()
	cpu.A ^= cpu.operand(mode, wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) bit(mode AddrMode) {
	/*
	   bit tests A against memory.

	   Z reflects A AND operand. N and V copy the top two operand bits,
	   except in immediate mode which only touches Z.
	*/

	wide := cpu.m16()
	value := cpu.operand(mode, wide)
	cpu.setFlag(ZERO_FLAG, cpu.A&widthMask(wide)&value == 0)
	if mode != ModeImmediate {
		sign := signBit(wide)
		cpu.setFlag(NEGATIVE_FLAG, value&sign != 0)
		cpu.setFlag(OVERFLOW_FLAG, value&(sign>>1) != 0)
	}
}

func (cpu *CPU) tsb(mode AddrMode) {
	wide := cpu.m16()
	addr := cpu.address(mode, wide)
	value := cpu.readData(addr, wide)
	cpu.setFlag(ZERO_FLAG, value&cpu.A == 0)
	cpu.writeData(addr, value|cpu.A, wide)
	if wide {
		cpu.excycles += 2
	}
}

func (cpu *CPU) trb(mode AddrMode) {
	wide := cpu.m16()
	addr := cpu.address(mode, wide)
	value := cpu.readData(addr, wide)
	cpu.setFlag(ZERO_FLAG, value&cpu.A == 0)
	cpu.writeData(addr, value&^cpu.A, wide)
	if wide {
		cpu.excycles += 2
	}
}

// ------------------------------------------------------------------------------
// Arithmetic
// ------------------------------------------------------------------------------

func (cpu *CPU) adc(mode AddrMode) {
	wide := cpu.m16()
	value := cpu.operand(mode, wide)
	if cpu.P&DECIMAL_FLAG != 0 {
		cpu.addDecimal(value, wide)
		if cpu.variant == Variant65C02 {
			cpu.excycles++
		}
		return
	}
	cpu.addBinary(value, wide)
}

func (cpu *CPU) sbc(mode AddrMode) {
	wide := cpu.m16()
	value := cpu.operand(mode, wide)
	if cpu.P&DECIMAL_FLAG != 0 {
		cpu.subDecimal(value, wide)
		if cpu.variant == Variant65C02 {
			cpu.excycles++
		}
		return
	}
	cpu.addBinary(^value&widthMask(wide), wide)
}

func (cpu *CPU) addBinary(value uint16, wide bool) {
	mask := uint32(widthMask(wide))
	sign := uint32(signBit(wide))
	a := uint32(cpu.A) & mask
	v := uint32(value) & mask
	sum := a + v + uint32(cpu.P&CARRY_FLAG)

	cpu.setFlag(CARRY_FLAG, sum > mask)
	cpu.setFlag(OVERFLOW_FLAG, ^(a^v)&(a^sum)&sign != 0)
	cpu.A = uint16(sum & mask)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) addDecimal(value uint16, wide bool) {
	/*
	   addDecimal adds packed BCD one nibble at a time.

	   Each digit sum above 9 is corrected by 6 and carries into the next
	   digit; the final digit carry becomes C. A 16-bit add is the low byte
	   followed by the high byte with the carry chained between them.

	   Z, N and V are taken from the corrected result.
	*/

	digits := 2
	if wide {
		digits = 4
	}
	mask := uint32(widthMask(wide))
	a := uint32(cpu.A) & mask
	v := uint32(value) & mask
	carry := uint32(cpu.P & CARRY_FLAG)

	var result uint32
	for i := 0; i < digits; i++ {
		shift := uint(i * 4)
		d := (a>>shift)&0xF + (v>>shift)&0xF + carry
		carry = 0
		if d > 9 {
			d = (d + 6) & 0xF
			carry = 1
		}
		result |= d << shift
	}

	sign := uint32(signBit(wide))
	cpu.setFlag(OVERFLOW_FLAG, ^(a^v)&(a^result)&sign != 0)
	cpu.setFlag(CARRY_FLAG, carry != 0)
	cpu.A = uint16(result)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) subDecimal(value uint16, wide bool) {
	/*
	   subDecimal subtracts packed BCD one nibble at a time.

	   A digit that borrows is corrected by adding 10 (subtracting 6 from
	   the raw nibble) and borrows from the next digit. C is the inverse of
	   the final borrow.
	*/

	digits := 2
	if wide {
		digits = 4
	}
	mask := uint32(widthMask(wide))
	a := uint32(cpu.A) & mask
	v := uint32(value) & mask
	borrow := int32(1 - cpu.P&CARRY_FLAG)

	var result uint32
	for i := 0; i < digits; i++ {
		shift := uint(i * 4)
		d := int32((a>>shift)&0xF) - int32((v>>shift)&0xF) - borrow
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		result |= uint32(d&0xF) << shift
	}

	sign := uint32(signBit(wide))
	cpu.setFlag(OVERFLOW_FLAG, (a^v)&(a^result)&sign != 0)
	cpu.setFlag(CARRY_FLAG, borrow == 0)
	cpu.A = uint16(result)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) compare(mode AddrMode, reg uint16, wide bool) {
	value := cpu.operand(mode, wide)
	mask := widthMask(wide)
	r := reg & mask
	cpu.setFlag(CARRY_FLAG, r >= value)
	cpu.updateNZWidth((r-value)&mask, wide)
}

func (cpu *CPU) cmp(mode AddrMode) { cpu.compare(mode, cpu.A, cpu.m16()) }
func (cpu *CPU) cpx(mode AddrMode) { cpu.compare(mode, cpu.X, cpu.x16()) }
func (cpu *CPU) cpy(mode AddrMode) { cpu.compare(mode, cpu.Y, cpu.x16()) }

// ------------------------------------------------------------------------------
// Shifts, rotates, increments
// ------------------------------------------------------------------------------

func (cpu *CPU) asl(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		cpu.setFlag(CARRY_FLAG, value&signBit(wide) != 0)
		result := (value << 1) & widthMask(wide)
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) lsr(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		cpu.setFlag(CARRY_FLAG, value&1 != 0)
		result := value >> 1
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) rol(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		carry := uint16(cpu.P & CARRY_FLAG)
		cpu.setFlag(CARRY_FLAG, value&signBit(wide) != 0)
		result := (value<<1 | carry) & widthMask(wide)
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) ror(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		var carry uint16
		if cpu.P&CARRY_FLAG != 0 {
			carry = signBit(wide)
		}
		cpu.setFlag(CARRY_FLAG, value&1 != 0)
		result := value>>1 | carry
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) inc(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		result := (value + 1) & widthMask(wide)
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) dec(mode AddrMode) {
	cpu.modify(mode, func(value uint16, wide bool) uint16 {
		result := (value - 1) & widthMask(wide)
		cpu.updateNZWidth(result, wide)
		return result
	})
}

func (cpu *CPU) stepIndex(reg *uint16, delta uint16) {
	wide := cpu.x16()
	*reg = (*reg + delta) & widthMask(wide)
	cpu.updateNZWidth(*reg, wide)
}

func (cpu *CPU) inx(AddrMode) { cpu.stepIndex(&cpu.X, 1) }
func (cpu *CPU) iny(AddrMode) { cpu.stepIndex(&cpu.Y, 1) }
func (cpu *CPU) dex(AddrMode) { cpu.stepIndex(&cpu.X, 0xFFFF) }
func (cpu *CPU) dey(AddrMode) { cpu.stepIndex(&cpu.Y, 0xFFFF) }

// ------------------------------------------------------------------------------
// Branches and jumps
// ------------------------------------------------------------------------------

// branchTo moves PC to target when taken. A taken branch costs one cycle and,
// in emulation mode, one more when it lands in another page.
func (cpu *CPU) branchTo(target uint32, taken bool) {
	if !taken {
		return
	}
	cpu.excycles++
	if cpu.Mode == MODE_EMULATION && uint16(target)&PAGE_MASK != cpu.PC&PAGE_MASK {
		cpu.excycles++
	}
	cpu.PC = uint16(target)
}

func (cpu *CPU) branchIf(taken bool) {
	cpu.branchTo(cpu.getRelative(), taken)
}

func (cpu *CPU) bpl(AddrMode) { cpu.branchIf(cpu.P&NEGATIVE_FLAG == 0) }
func (cpu *CPU) bmi(AddrMode) { cpu.branchIf(cpu.P&NEGATIVE_FLAG != 0) }
func (cpu *CPU) bvc(AddrMode) { cpu.branchIf(cpu.P&OVERFLOW_FLAG == 0) }
func (cpu *CPU) bvs(AddrMode) { cpu.branchIf(cpu.P&OVERFLOW_FLAG != 0) }
func (cpu *CPU) bcc(AddrMode) { cpu.branchIf(cpu.P&CARRY_FLAG == 0) }
func (cpu *CPU) bcs(AddrMode) { cpu.branchIf(cpu.P&CARRY_FLAG != 0) }
func (cpu *CPU) bne(AddrMode) { cpu.branchIf(cpu.P&ZERO_FLAG == 0) }
func (cpu *CPU) beq(AddrMode) { cpu.branchIf(cpu.P&ZERO_FLAG != 0) }
func (cpu *CPU) bra(AddrMode) { cpu.branchIf(true) }

func (cpu *CPU) jmp(mode AddrMode) {
	switch mode {
	case ModeAbsolute:
		cpu.PC = cpu.fetchWord()
	case ModeAbsoluteLong, ModeIndirectLong:
		target := cpu.address(mode, false)
		cpu.PBR = byte(target >> 16)
		cpu.PC = uint16(target)
	default:
		cpu.PC = uint16(cpu.address(mode, false))
	}
}

func (cpu *CPU) jsr(mode AddrMode) {
	var target uint16
	if mode == ModeIndirectX {
		target = uint16(cpu.getIndirectX())
	} else {
		target = cpu.fetchWord()
	}
	cpu.push16(cpu.PC - 1)
	cpu.PC = target
}

func (cpu *CPU) rts(AddrMode) {
	cpu.PC = cpu.pop16() + 1
}

func (cpu *CPU) rti(AddrMode) {
	cpu.SetP(cpu.pop())
	cpu.PC = cpu.pop16()
	if cpu.Mode == MODE_NATIVE {
		cpu.PBR = cpu.pop()
		cpu.excycles++
	}
}

// ------------------------------------------------------------------------------
// Stack
// ------------------------------------------------------------------------------

func (cpu *CPU) pha(AddrMode) { cpu.pushWidth(cpu.A, cpu.m16()) }
func (cpu *CPU) phx(AddrMode) { cpu.pushWidth(cpu.X, cpu.x16()) }
func (cpu *CPU) phy(AddrMode) { cpu.pushWidth(cpu.Y, cpu.x16()) }
func (cpu *CPU) php(AddrMode) { cpu.push(cpu.P) }

func (cpu *CPU) pla(AddrMode) {
	wide := cpu.m16()
	cpu.A = cpu.popWidth(wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) plx(AddrMode) {
	wide := cpu.x16()
	cpu.X = cpu.popWidth(wide)
	cpu.updateNZWidth(cpu.X, wide)
}

func (cpu *CPU) ply(AddrMode) {
	wide := cpu.x16()
	cpu.Y = cpu.popWidth(wide)
	cpu.updateNZWidth(cpu.Y, wide)
}

func (cpu *CPU) plp(AddrMode) { cpu.SetP(cpu.pop()) }

// ------------------------------------------------------------------------------
// Flags
// ------------------------------------------------------------------------------

func (cpu *CPU) clc(AddrMode) { cpu.P &^= CARRY_FLAG }
func (cpu *CPU) sec(AddrMode) { cpu.P |= CARRY_FLAG }
func (cpu *CPU) cli(AddrMode) { cpu.P &^= INTERRUPT_FLAG }
func (cpu *CPU) sei(AddrMode) { cpu.P |= INTERRUPT_FLAG }
func (cpu *CPU) cld(AddrMode) { cpu.P &^= DECIMAL_FLAG }
func (cpu *CPU) sed(AddrMode) { cpu.P |= DECIMAL_FLAG }
func (cpu *CPU) clv(AddrMode) { cpu.P &^= OVERFLOW_FLAG }

// ------------------------------------------------------------------------------
// Transfers
// ------------------------------------------------------------------------------

func (cpu *CPU) tax(AddrMode) {
	wide := cpu.x16()
	cpu.X = cpu.C() & widthMask(wide)
	cpu.updateNZWidth(cpu.X, wide)
}

func (cpu *CPU) tay(AddrMode) {
	wide := cpu.x16()
	cpu.Y = cpu.C() & widthMask(wide)
	cpu.updateNZWidth(cpu.Y, wide)
}

func (cpu *CPU) txa(AddrMode) {
	wide := cpu.m16()
	cpu.A = cpu.X & widthMask(wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) tya(AddrMode) {
	wide := cpu.m16()
	cpu.A = cpu.Y & widthMask(wide)
	cpu.updateNZWidth(cpu.A, wide)
}

func (cpu *CPU) tsx(AddrMode) {
	wide := cpu.x16()
	cpu.X = cpu.SP & widthMask(wide)
	cpu.updateNZWidth(cpu.X, wide)
}

func (cpu *CPU) txs(AddrMode) {
	if cpu.Mode == MODE_EMULATION {
		cpu.SP = STACK_BASE | cpu.X&BYTE_MASK
		return
	}
	cpu.SP = cpu.X
}

// ------------------------------------------------------------------------------
// Interrupts and control
// ------------------------------------------------------------------------------

func (cpu *CPU) brk(AddrMode) {
	cpu.PC++ // signature byte
	cpu.interrupt(&brkVectors, true)
	if cpu.Mode == MODE_NATIVE {
		cpu.excycles++
	}
}

func (cpu *CPU) nop(mode AddrMode) {
	// Multi-byte NOPs still walk their operand bytes.
	cpu.address(mode, false)
}

func (cpu *CPU) wai(AddrMode) {
	cpu.Waiting = true
}

func (cpu *CPU) stp(AddrMode) {
	cpu.Waiting = true
	cpu.Stopped = true
}

// ------------------------------------------------------------------------------
// 65C02 bit operations
// ------------------------------------------------------------------------------

func rmb(bit int) func(*CPU, AddrMode) {
	mask := byte(1) << bit
	return func(cpu *CPU, mode AddrMode) {
		addr := cpu.address(mode, false)
		cpu.writeByte(addr, cpu.readByte(addr)&^mask)
	}
}

func smb(bit int) func(*CPU, AddrMode) {
	mask := byte(1) << bit
	return func(cpu *CPU, mode AddrMode) {
		addr := cpu.address(mode, false)
		cpu.writeByte(addr, cpu.readByte(addr)|mask)
	}
}

func bbr(bit int) func(*CPU, AddrMode) {
	mask := byte(1) << bit
	return func(cpu *CPU, mode AddrMode) {
		value := cpu.readByte(cpu.getDirect())
		cpu.branchTo(cpu.getRelative(), value&mask == 0)
	}
}

func bbs(bit int) func(*CPU, AddrMode) {
	mask := byte(1) << bit
	return func(cpu *CPU, mode AddrMode) {
		value := cpu.readByte(cpu.getDirect())
		cpu.branchTo(cpu.getRelative(), value&mask != 0)
	}
}
