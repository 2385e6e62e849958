// cpu_65c02_test.go - Tests for the 65C02 additions and cycle differences

package six5go

import "testing"

func Test65C02StoreZeroAndBranchAlways(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0x64, 0x10, // STZ $10
		0x9C, 0x00, 0x30, // STZ $3000
		0x80, 0x02, // BRA +2
		0xEA, 0xEA,
		0xEA, // NOP
	})
	rig.mem.Poke(0x0010, 0xAA)
	rig.mem.Poke(0x3000, 0xBB)

	rig.steps(2)
	if rig.mem.Peek(0x0010) != 0 || rig.mem.Peek(0x3000) != 0 {
		t.Fatalf("STZ left data behind")
	}

	if cycles := rig.cpu.Step(); cycles != 3 {
		t.Fatalf("BRA cycles=%d, want 3", cycles)
	}
	rig.requirePC(t, 0x0209)
}

func Test65C02TestAndSetResetBits(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0x04, 0x10, // TSB $10
		0x14, 0x10, // TRB $10
	})
	rig.cpu.A = 0x0F
	rig.mem.Poke(0x0010, 0xF0)

	rig.cpu.Step()
	rig.requireFlag(t, ZERO_FLAG, true, "Z")
	if got := rig.mem.Peek(0x0010); got != 0xFF {
		t.Fatalf("TSB result=0x%02X, want 0xFF", got)
	}

	rig.cpu.Step()
	rig.requireFlag(t, ZERO_FLAG, false, "Z")
	if got := rig.mem.Peek(0x0010); got != 0xF0 {
		t.Fatalf("TRB result=0x%02X, want 0xF0", got)
	}
	rig.requireA(t, 0x0F)
}

func Test65C02AccumulatorIncDecAndIndexStack(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0x1A, // INC A
		0x3A, // DEC A
		0x3A, // DEC A
		0xDA, // PHX
		0x5A, // PHY
		0xFA, // PLX
		0x7A, // PLY
	})
	rig.cpu.A = 0x00
	rig.cpu.X = 0x11
	rig.cpu.Y = 0x22

	rig.steps(3)
	rig.requireA(t, 0xFF)
	rig.requireFlag(t, NEGATIVE_FLAG, true, "N")

	rig.steps(4)
	if rig.cpu.X != 0x22 || rig.cpu.Y != 0x11 {
		t.Fatalf("X=0x%02X Y=0x%02X, want swapped 0x22/0x11", rig.cpu.X, rig.cpu.Y)
	}
	if rig.cpu.SP != 0x01FF {
		t.Fatalf("SP=0x%04X, want 0x01FF", rig.cpu.SP)
	}
}

func Test65C02ZeroPageIndirect(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0xB2, 0x20, // LDA ($20)
		0x92, 0x22, // STA ($22)
	})
	rig.mem.PokeWord(0x0020, 0x4000)
	rig.mem.PokeWord(0x0022, 0x5000)
	rig.mem.Poke(0x4000, 0x66)

	if cycles := rig.cpu.Step(); cycles != 5 {
		t.Fatalf("LDA (zp) cycles=%d, want 5", cycles)
	}
	rig.requireA(t, 0x66)
	rig.cpu.Step()
	if got := rig.mem.Peek(0x5000); got != 0x66 {
		t.Fatalf("STA (zp) stored 0x%02X, want 0x66", got)
	}
}

func Test65C02BitImmediateOnlyTouchesZero(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0x89, 0xC0, // BIT #$C0
		0x24, 0x10, // BIT $10
	})
	rig.cpu.A = 0x01
	rig.mem.Poke(0x0010, 0xC1)

	rig.cpu.Step()
	rig.requireFlag(t, ZERO_FLAG, true, "Z")
	rig.requireFlag(t, NEGATIVE_FLAG, false, "N")
	rig.requireFlag(t, OVERFLOW_FLAG, false, "V")

	rig.cpu.Step()
	rig.requireFlag(t, ZERO_FLAG, false, "Z")
	rig.requireFlag(t, NEGATIVE_FLAG, true, "N")
	rig.requireFlag(t, OVERFLOW_FLAG, true, "V")
}

func Test65C02BitManipulation(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0x87, 0x10, // SMB0 $10
		0x77, 0x10, // RMB7 $10
		0x0F, 0x10, 0x02, // BBR0 $10,+2 (not taken, bit 0 set)
		0x8F, 0x10, 0x02, // BBS0 $10,+2 (taken)
		0xEA, 0xEA,
		0xEA, // NOP at $020C
	})
	rig.mem.Poke(0x0010, 0x80)

	rig.steps(2)
	if got := rig.mem.Peek(0x0010); got != 0x01 {
		t.Fatalf("after SMB0/RMB7 mem=0x%02X, want 0x01", got)
	}

	if cycles := rig.cpu.Step(); cycles != 5 {
		t.Fatalf("untaken BBR cycles=%d, want 5", cycles)
	}
	rig.requirePC(t, 0x0207)

	if cycles := rig.cpu.Step(); cycles != 6 {
		t.Fatalf("taken BBS cycles=%d, want 6", cycles)
	}
	rig.requirePC(t, 0x020C)
}

func Test65C02ReservedNOPLengths(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		length  uint16
		cycles  int
	}{
		{"x3 single byte", []byte{0x03}, 1, 1},
		{"xB single byte", []byte{0xFB}, 1, 1},
		{"x2 immediate", []byte{0x02, 0xFF}, 2, 2},
		{"44 zero page", []byte{0x44, 0x10}, 2, 3},
		{"54 zero page X", []byte{0x54, 0x10}, 2, 4},
		{"5C absolute", []byte{0x5C, 0x00, 0x30}, 3, 8},
		{"DC absolute", []byte{0xDC, 0x00, 0x30}, 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newCPUTestRig(Variant65C02)
			rig.resetAndLoad(0x0200, tc.program)
			before := rig.cpu.P

			if cycles := rig.cpu.Step(); cycles != tc.cycles {
				t.Fatalf("cycles=%d, want %d", cycles, tc.cycles)
			}
			rig.requirePC(t, 0x0200+tc.length)
			if rig.cpu.P != before {
				t.Fatalf("NOP changed P from 0x%02X to 0x%02X", before, rig.cpu.P)
			}
		})
	}
}

func Test65C02WaitWakesOnMaskedIRQ(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0xCB, // WAI
		0xEA, // NOP
	})
	rig.mem.PokeWord(IRQ_VECTOR, 0x0400)

	rig.cpu.Step()
	if !rig.cpu.Waiting {
		t.Fatalf("WAI did not wait")
	}
	if cycles := rig.cpu.Step(); cycles != 1 {
		t.Fatalf("idle cycles=%d, want 1", cycles)
	}
	rig.requirePC(t, 0x0201)

	// I is set, so the line wakes the processor without vectoring.
	rig.cpu.SetIRQ(true)
	rig.cpu.Step()
	if rig.cpu.Waiting {
		t.Fatalf("IRQ did not release WAI")
	}
	rig.cpu.Step()
	rig.requirePC(t, 0x0202)
	if rig.cpu.Interrupts != 0 {
		t.Fatalf("masked IRQ was serviced")
	}
}

func Test65C02StopHaltsUntilReset(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{0xDB, 0xEA}) // STP; NOP
	rig.mem.PokeWord(RESET_VECTOR, 0x0200)

	rig.cpu.Step()
	rig.cpu.SetIRQ(true)
	rig.cpu.TriggerNMI()
	rig.steps(5)
	if !rig.cpu.Stopped || !rig.cpu.Waiting {
		t.Fatalf("STP released by an interrupt")
	}
	rig.requirePC(t, 0x0201)

	rig.cpu.Reset()
	if rig.cpu.Stopped || rig.cpu.Waiting {
		t.Fatalf("Reset did not clear STP")
	}
	rig.requirePC(t, 0x0200)
}

func Test65C02BreakClearsDecimal(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{
		0xF8,       // SED
		0x00, 0x00, // BRK
	})
	rig.mem.PokeWord(IRQ_VECTOR, 0x0400)

	rig.steps(2)
	rig.requirePC(t, 0x0400)
	rig.requireFlag(t, DECIMAL_FLAG, false, "D")
	if got := rig.mem.Peek(0x01FD); got&DECIMAL_FLAG == 0 {
		t.Fatalf("pushed P=0x%02X lost the decimal flag", got)
	}

	nmos := newCPUTestRig(Variant6502)
	nmos.resetAndLoad(0x0200, []byte{0xF8, 0x00, 0x00})
	nmos.mem.PokeWord(IRQ_VECTOR, 0x0400)
	nmos.steps(2)
	nmos.requireFlag(t, DECIMAL_FLAG, true, "D")
}

func Test65C02DecimalExtraCycle(t *testing.T) {
	program := []byte{
		0xF8,       // SED
		0x69, 0x01, // ADC #$01
	}

	cmos := newCPUTestRig(Variant65C02)
	cmos.resetAndLoad(0x0200, program)
	cmos.cpu.Step()
	if cycles := cmos.cpu.Step(); cycles != 3 {
		t.Fatalf("65C02 decimal ADC cycles=%d, want 3", cycles)
	}

	nmos := newCPUTestRig(Variant6502)
	nmos.resetAndLoad(0x0200, program)
	nmos.cpu.Step()
	if cycles := nmos.cpu.Step(); cycles != 2 {
		t.Fatalf("6502 decimal ADC cycles=%d, want 2", cycles)
	}
}

func Test65C02ShiftAbsoluteXPenalty(t *testing.T) {
	program := []byte{
		0x1E, 0x00, 0x30, // ASL $3000,X  (same page)
		0x1E, 0xF0, 0x30, // ASL $30F0,X  (crosses)
	}

	cmos := newCPUTestRig(Variant65C02)
	cmos.resetAndLoad(0x0200, program)
	cmos.cpu.X = 0x20
	if cycles := cmos.cpu.Step(); cycles != 6 {
		t.Fatalf("65C02 ASL abs,X cycles=%d, want 6", cycles)
	}
	if cycles := cmos.cpu.Step(); cycles != 7 {
		t.Fatalf("65C02 ASL abs,X crossing cycles=%d, want 7", cycles)
	}

	nmos := newCPUTestRig(Variant6502)
	nmos.resetAndLoad(0x0200, program)
	nmos.cpu.X = 0x20
	if cycles := nmos.cpu.Step(); cycles != 7 {
		t.Fatalf("6502 ASL abs,X cycles=%d, want 7", cycles)
	}
}

func Test65C02IndexedIndirectJump(t *testing.T) {
	rig := newCPUTestRig(Variant65C02)
	rig.resetAndLoad(0x0200, []byte{0x7C, 0x00, 0x30}) // JMP ($3000,X)
	rig.cpu.X = 0x04
	rig.mem.PokeWord(0x3004, 0x1234)

	if cycles := rig.cpu.Step(); cycles != 6 {
		t.Fatalf("JMP (abs,X) cycles=%d, want 6", cycles)
	}
	rig.requirePC(t, 0x1234)
}
