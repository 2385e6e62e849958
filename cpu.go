// cpu.go - Shared processor core for the 6502, 65C02 and 65816

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
cpu.go - Shared processor core for the 6502, 65C02 and 65816

One register file serves all three variants. The variant selector decides
which opcode table the core dispatches through and which width and wrapping
rules apply; the 6502 and 65C02 simply never leave emulation mode, so every
width test collapses to 8-bit for them.

Register Model:
- PC      : 16-bit programme counter, combined with PBR to fetch
- A       : accumulator. While the accumulator is 8-bit only the low byte is
            live and the high byte is held in the hidden B register
- X, Y    : index registers, truncated to 8 bits whenever the index width is 8
- SP      : stack pointer. Page 1 ($01xx) in emulation mode, any bank-0
            address in native mode
- P       : status register. Bits 4/5 are BREAK/UNUSED in emulation mode and
            index/accumulator width in native mode
- DBR, PBR: data and programme bank registers (65816)
- DPR     : direct page register (65816, always 0 on the 8-bit variants)
- Mode    : MODE_EMULATION or MODE_NATIVE

Cycle Accounting:
- Each opcode table entry carries a base cycle count
- excycles collects the per-step extras (page crossing, 16-bit operands,
  direct page misalignment, taken branches)
- Cycles is the cumulative processor cycle counter

Threading:
The core is single-threaded. Only the engine goroutine may call Step or
touch registers while a run is in progress.
*/

package six5go

// IllegalHandler is told about opcodes the variant does not implement.
type IllegalHandler func(err *IllegalOpcodeError)

type CPU struct {
	// Hot registers
	PC   uint16
	A    uint16
	X    uint16
	Y    uint16
	SP   uint16
	P    byte
	B    byte
	DBR  byte
	PBR  byte
	DPR  uint16
	Mode byte

	// Cycle accounting
	Cycles           uint64
	InstructionCount uint64
	Interrupts       uint64 // hardware interrupts serviced
	excycles         int
	addcycles        bool

	// Wait / interrupt state
	Waiting    bool
	Stopped    bool
	irqLines   IRQSource
	nmiPending bool

	variant Variant
	table   *OpcodeTable
	mem     *Memory
	wrap    uint32 // mask for the second byte of a 16-bit data access

	lastOpcode byte
	lastPC     uint32 // PBR:PC of the last instruction fetched
	onIllegal  IllegalHandler
}

// NewCPU creates a processor bound to mem and resets it, loading PC from the
// reset vector.
func NewCPU(variant Variant, mem *Memory) *CPU {
	cpu := &CPU{
		variant: variant,
		table:   tableFor(variant),
		mem:     mem,
		wrap:    LONG_MASK,
	}
	cpu.Reset()
	return cpu
}

// CreateProcessor creates a processor and starts it at startPC instead of the
// reset vector.
func CreateProcessor(variant Variant, mem *Memory, startPC uint16) *CPU {
	cpu := NewCPU(variant, mem)
	cpu.PC = startPC
	return cpu
}

func (cpu *CPU) Variant() Variant    { return cpu.variant }
func (cpu *CPU) Memory() *Memory     { return cpu.mem }
func (cpu *CPU) Table() *OpcodeTable { return cpu.table }
func (cpu *CPU) LastOpcode() byte    { return cpu.lastOpcode }
func (cpu *CPU) LastPC() uint32      { return cpu.lastPC }

// SetIllegalHandler installs the hook called when an unimplemented opcode
// executes.
func (cpu *CPU) SetIllegalHandler(fn IllegalHandler) { cpu.onIllegal = fn }

// ProgramCounter returns PBR:PC as a flat address.
func (cpu *CPU) ProgramCounter() uint32 {
	return uint32(cpu.PBR)<<16 | uint32(cpu.PC)
}

// SetProgramCounter splits a flat address into PBR and PC. The bank is
// ignored on the 8-bit variants.
func (cpu *CPU) SetProgramCounter(addr uint32) {
	cpu.PC = uint16(addr)
	if cpu.variant == Variant65816 {
		cpu.PBR = byte(addr >> 16)
	}
}

func (cpu *CPU) Reset() {
	/*
	   Reset initialises the CPU to power-up state.

	   Reset Process:
	   1. Clears A, B, X, Y and the bank/direct page registers
	   2. Forces emulation mode and the page 1 stack at $01FF
	   3. Sets interrupt disable; BREAK and UNUSED read as 1
	   4. NMOS 6502: decimal flag forced on. 65C02/65816 clear it
	   5. Clears wait, stop and interrupt state and the cycle counter
	   6. Loads PC from the reset vector
	*/

	cpu.A = 0
	cpu.B = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.DBR = 0
	cpu.PBR = 0
	cpu.DPR = 0
	cpu.Mode = MODE_EMULATION
	cpu.SP = STACK_BASE | 0xFF
	cpu.P = UNUSED_FLAG | BREAK_FLAG | INTERRUPT_FLAG
	if cpu.variant == Variant6502 {
		cpu.P |= DECIMAL_FLAG
	}
	cpu.Cycles = 0
	cpu.InstructionCount = 0
	cpu.Interrupts = 0
	cpu.excycles = 0
	cpu.Waiting = false
	cpu.Stopped = false
	cpu.irqLines = 0
	cpu.nmiPending = false
	cpu.wrap = LONG_MASK
	cpu.PC = cpu.readVector(RESET_VECTOR)
}

// IRQSource identifies one device on the shared IRQ line. The line is
// asserted while any source asserts it.
type IRQSource uint32

const (
	IRQSourceHost IRQSource = 1 << iota
	IRQSourceACIA
)

// SetIRQ drives the host's own input on the level-triggered IRQ line.
func (cpu *CPU) SetIRQ(asserted bool) { cpu.SetIRQSource(IRQSourceHost, asserted) }

// SetIRQSource asserts or releases src on the IRQ line.
func (cpu *CPU) SetIRQSource(src IRQSource, asserted bool) {
	if asserted {
		cpu.irqLines |= src
	} else {
		cpu.irqLines &^= src
	}
}

// IRQ reports the IRQ line state.
func (cpu *CPU) IRQ() bool { return cpu.irqLines != 0 }

// TriggerNMI latches a non-maskable interrupt for the next step.
func (cpu *CPU) TriggerNMI() { cpu.nmiPending = true }

// ------------------------------------------------------------------------------
// Register width
// ------------------------------------------------------------------------------

// m16 reports a 16-bit accumulator/memory width. Only possible in native mode.
func (cpu *CPU) m16() bool {
	return cpu.Mode == MODE_NATIVE && cpu.P&ACCUM_WIDTH_FLAG == 0
}

// x16 reports 16-bit index registers. Only possible in native mode.
func (cpu *CPU) x16() bool {
	return cpu.Mode == MODE_NATIVE && cpu.P&INDEX_WIDTH_FLAG == 0
}

// Accumulator16 and Index16 expose the current register widths.
func (cpu *CPU) Accumulator16() bool { return cpu.m16() }
func (cpu *CPU) Index16() bool       { return cpu.x16() }

// C returns the full 16-bit accumulator, B:A in 8-bit mode.
func (cpu *CPU) C() uint16 {
	if cpu.m16() {
		return cpu.A
	}
	return uint16(cpu.B)<<8 | cpu.A&BYTE_MASK
}

func (cpu *CPU) setC(value uint16) {
	if cpu.m16() {
		cpu.A = value
		return
	}
	cpu.A = value & BYTE_MASK
	cpu.B = byte(value >> 8)
}

// SetP writes the status register while keeping the register file consistent
// with the widths the new value selects.
func (cpu *CPU) SetP(value byte) {
	/*
	   SetP is the single entry point for whole-register status writes
	   (PLP, RTI, REP, SEP, debugger writes).

	   Emulation Mode:
	   - BREAK and UNUSED always read back as 1

	   Native Mode:
	   - Accumulator 16->8: high byte moves into B, A keeps the low byte
	   - Accumulator 8->16: B moves back into the high byte of A
	   - Index 8-bit: X and Y are truncated. Widening does not restore
	     the lost high bytes
	*/

	if cpu.Mode == MODE_EMULATION {
		cpu.P = value | BREAK_FLAG | UNUSED_FLAG
		return
	}

	old := cpu.P
	cpu.P = value

	switch {
	case old&ACCUM_WIDTH_FLAG == 0 && value&ACCUM_WIDTH_FLAG != 0:
		cpu.B = byte(cpu.A >> 8)
		cpu.A &= BYTE_MASK
	case old&ACCUM_WIDTH_FLAG != 0 && value&ACCUM_WIDTH_FLAG == 0:
		cpu.A = uint16(cpu.B)<<8 | cpu.A&BYTE_MASK
	}

	if value&INDEX_WIDTH_FLAG != 0 {
		cpu.X &= BYTE_MASK
		cpu.Y &= BYTE_MASK
	}
}

// setMode switches between emulation and native mode. Switching to the mode
// already in effect does nothing.
func (cpu *CPU) setMode(mode byte) {
	if mode == cpu.Mode {
		return
	}
	if mode == MODE_EMULATION {
		// Narrow through SetP first so B picks up the high accumulator byte.
		cpu.SetP(cpu.P | ACCUM_WIDTH_FLAG | INDEX_WIDTH_FLAG)
		cpu.Mode = MODE_EMULATION
		cpu.P |= BREAK_FLAG | UNUSED_FLAG
		cpu.SP = STACK_BASE | cpu.SP&BYTE_MASK
		return
	}
	cpu.Mode = MODE_NATIVE
	cpu.P |= ACCUM_WIDTH_FLAG | INDEX_WIDTH_FLAG
	cpu.SP = STACK_BASE | cpu.SP&BYTE_MASK
}

// ------------------------------------------------------------------------------
// Flags
// ------------------------------------------------------------------------------

func (cpu *CPU) setFlag(flag byte, value bool) {
	if value {
		cpu.P |= flag
	} else {
		cpu.P &^= flag
	}
}

func (cpu *CPU) getFlag(flag byte) bool {
	return cpu.P&flag != 0
}

// Flag reports whether every bit of flag is set in P.
func (cpu *CPU) Flag(flag byte) bool {
	return cpu.P&flag == flag
}

func (cpu *CPU) updateNZ(value byte) {
	cpu.P = (cpu.P &^ (ZERO_FLAG | NEGATIVE_FLAG)) | nzTable[value]
}

func (cpu *CPU) updateNZWord(value uint16) {
	cpu.P &^= ZERO_FLAG | NEGATIVE_FLAG
	if value == 0 {
		cpu.P |= ZERO_FLAG
	}
	if value&0x8000 != 0 {
		cpu.P |= NEGATIVE_FLAG
	}
}

func (cpu *CPU) updateNZWidth(value uint16, wide bool) {
	if wide {
		cpu.updateNZWord(value)
		return
	}
	cpu.updateNZ(byte(value))
}

// ------------------------------------------------------------------------------
// Memory access
// ------------------------------------------------------------------------------

func (cpu *CPU) readByte(addr uint32) byte {
	return cpu.mem.Read(addr)
}

func (cpu *CPU) writeByte(addr uint32, value byte) {
	cpu.mem.Write(addr, value)
}

// nextAddr returns the address of the byte after addr under the wrap mask
// set by the last addressing mode.
func (cpu *CPU) nextAddr(addr uint32) uint32 {
	return (addr &^ cpu.wrap) | ((addr + 1) & cpu.wrap)
}

func (cpu *CPU) readWord(addr uint32) uint16 {
	lo := uint16(cpu.readByte(addr))
	hi := uint16(cpu.readByte(cpu.nextAddr(addr)))
	return hi<<8 | lo
}

func (cpu *CPU) writeWord(addr uint32, value uint16) {
	cpu.writeByte(addr, byte(value))
	cpu.writeByte(cpu.nextAddr(addr), byte(value>>8))
}

// readData reads one or two bytes depending on width.
func (cpu *CPU) readData(addr uint32, wide bool) uint16 {
	if wide {
		return cpu.readWord(addr)
	}
	return uint16(cpu.readByte(addr))
}

func (cpu *CPU) writeData(addr uint32, value uint16, wide bool) {
	if wide {
		cpu.writeWord(addr, value)
		return
	}
	cpu.writeByte(addr, byte(value))
}

// readBank0Word reads a word from bank 0, wrapping at $FFFF.
func (cpu *CPU) readBank0Word(addr uint16) uint16 {
	lo := uint16(cpu.readByte(uint32(addr)))
	hi := uint16(cpu.readByte(uint32(addr + 1)))
	return hi<<8 | lo
}

// readBank0Long reads a 24-bit pointer from bank 0, wrapping at $FFFF.
func (cpu *CPU) readBank0Long(addr uint16) uint32 {
	lo := uint32(cpu.readByte(uint32(addr)))
	mid := uint32(cpu.readByte(uint32(addr + 1)))
	hi := uint32(cpu.readByte(uint32(addr + 2)))
	return hi<<16 | mid<<8 | lo
}

func (cpu *CPU) readVector(vector uint16) uint16 {
	return cpu.readBank0Word(vector)
}

// fetch reads the next programme byte. PC wraps inside the programme bank.
func (cpu *CPU) fetch() byte {
	value := cpu.readByte(cpu.ProgramCounter())
	cpu.PC++
	return value
}

func (cpu *CPU) fetchWord() uint16 {
	lo := uint16(cpu.fetch())
	hi := uint16(cpu.fetch())
	return hi<<8 | lo
}

func (cpu *CPU) fetchLong() uint32 {
	lo := uint32(cpu.fetch())
	mid := uint32(cpu.fetch())
	hi := uint32(cpu.fetch())
	return hi<<16 | mid<<8 | lo
}

// ------------------------------------------------------------------------------
// Stack
// ------------------------------------------------------------------------------

func (cpu *CPU) push(value byte) {
	/*
	   push adds a byte to the stack.

	   Emulation mode keeps SP inside page 1. Native mode uses the whole
	   16-bit pointer in bank 0.
	*/

	cpu.writeByte(uint32(cpu.SP), value)
	if cpu.Mode == MODE_EMULATION {
		cpu.SP = STACK_BASE | (cpu.SP-1)&BYTE_MASK
	} else {
		cpu.SP--
	}
}

func (cpu *CPU) pop() byte {
	if cpu.Mode == MODE_EMULATION {
		cpu.SP = STACK_BASE | (cpu.SP+1)&BYTE_MASK
	} else {
		cpu.SP++
	}
	return cpu.readByte(uint32(cpu.SP))
}

func (cpu *CPU) push16(value uint16) {
	cpu.push(byte(value >> 8))
	cpu.push(byte(value))
}

func (cpu *CPU) pop16() uint16 {
	lo := uint16(cpu.pop())
	hi := uint16(cpu.pop())
	return hi<<8 | lo
}

func (cpu *CPU) pushWidth(value uint16, wide bool) {
	if wide {
		cpu.push16(value)
		cpu.excycles++
		return
	}
	cpu.push(byte(value))
}

func (cpu *CPU) popWidth(wide bool) uint16 {
	if wide {
		cpu.excycles++
		return cpu.pop16()
	}
	return uint16(cpu.pop())
}

// ------------------------------------------------------------------------------
// Execution
// ------------------------------------------------------------------------------

func (cpu *CPU) Step() int {
	/*
	   Step executes one instruction and returns the cycles it consumed.

	   Execution Flow:
	   1. Waiting (WAI/STP): count one cycle; an asserted IRQ or pending
	      NMI releases WAI. STP stays halted until Reset
	   2. Service a pending NMI, or an IRQ when interrupts are enabled.
	      Interrupt entry is a step of its own, so the handler's first
	      instruction is fetched by the next Step
	   3. Fetch the opcode at PBR:PC and advance PC
	   4. Reset per-step extra-cycle accounting from the table entry
	   5. Dispatch through the opcode table
	   6. Add base and extra cycles to the running total

	   PC is a uint16 so it is always masked to 16 bits.
	*/

	start := cpu.Cycles

	if cpu.Waiting {
		cpu.Cycles++
		if !cpu.Stopped && (cpu.irqLines != 0 || cpu.nmiPending) {
			cpu.Waiting = false
		}
		return int(cpu.Cycles - start)
	}

	if cpu.nmiPending {
		cpu.nmiPending = false
		cpu.hardwareInterrupt(&nmiVectors)
		return int(cpu.Cycles - start)
	}
	if cpu.irqLines != 0 && cpu.P&INTERRUPT_FLAG == 0 {
		cpu.hardwareInterrupt(&irqVectors)
		return int(cpu.Cycles - start)
	}

	cpu.lastPC = cpu.ProgramCounter()
	opcode := cpu.fetch()
	cpu.lastOpcode = opcode
	cpu.excycles = 0
	inst := &cpu.table[opcode]
	cpu.addcycles = inst.Extra
	cpu.wrap = LONG_MASK

	inst.exec(cpu, inst.Mode)

	cpu.Cycles += uint64(int(inst.Cycles) + cpu.excycles)
	cpu.InstructionCount++
	return int(cpu.Cycles - start)
}

// interrupt pushes the return state and vectors. brk selects the BREAK bit in
// the emulation-mode stack image.
func (cpu *CPU) interrupt(vectors *[2]uint16, brk bool) {
	if cpu.Mode == MODE_NATIVE {
		cpu.push(cpu.PBR)
		cpu.push16(cpu.PC)
		cpu.push(cpu.P)
	} else {
		cpu.push16(cpu.PC)
		status := cpu.P | UNUSED_FLAG
		if !brk {
			status &^= BREAK_FLAG
		}
		cpu.push(status)
	}

	cpu.P |= INTERRUPT_FLAG
	if cpu.variant != Variant6502 {
		cpu.P &^= DECIMAL_FLAG
	}
	cpu.PBR = 0
	cpu.PC = cpu.readVector(vectors[cpu.Mode])
}

func (cpu *CPU) hardwareInterrupt(vectors *[2]uint16) {
	cycles := uint64(7)
	if cpu.Mode == MODE_NATIVE {
		cycles++
	}
	cpu.interrupt(vectors, false)
	cpu.Cycles += cycles
	cpu.Interrupts++
}

// illegal is the fallback for opcodes the variant does not implement. PC is
// rewound to the opcode so the instruction can be retried, and the step
// costs no cycles.
func (cpu *CPU) illegal(AddrMode) {
	cpu.PC--
	cpu.InstructionCount--
	cpu.excycles = -int(cpu.table[cpu.lastOpcode].Cycles)
	if cpu.onIllegal != nil {
		cpu.onIllegal(&IllegalOpcodeError{
			Variant: cpu.variant,
			Opcode:  cpu.lastOpcode,
			Bank:    cpu.PBR,
			PC:      cpu.PC,
		})
	}
}
