// bcd_test.go - Decimal mode arithmetic across all variants

package six5go

import "testing"

type bcdCase struct {
	name      string
	a, value  uint16
	carryIn   bool
	want      uint16
	wantCarry bool
}

// runDecimal executes SED followed by ADC/SBC immediate and returns the rig.
func runDecimal(t *testing.T, variant Variant, opcode byte, tc bcdCase, wide bool) *cpuTestRig {
	t.Helper()
	program := []byte{0xF8, opcode, byte(tc.value)}
	if wide {
		program = append(program, byte(tc.value>>8))
	}

	rig := newCPUTestRig(variant)
	rig.resetAndLoad(0x0200, program)
	if wide {
		rig.native()
		rig.cpu.SetP(rig.cpu.P &^ ACCUM_WIDTH_FLAG)
	}
	rig.cpu.A = tc.a
	rig.cpu.setFlag(CARRY_FLAG, tc.carryIn)

	rig.steps(2)
	rig.requireA(t, tc.want)
	rig.requireFlag(t, CARRY_FLAG, tc.wantCarry, "C")
	rig.requireFlag(t, ZERO_FLAG, tc.want == 0, "Z")
	return rig
}

func TestDecimalAdd8(t *testing.T) {
	tests := []bcdCase{
		{"simple", 0x15, 0x27, false, 0x42, false},
		{"digit carry", 0x09, 0x01, false, 0x10, false},
		{"wrap to zero", 0x99, 0x01, false, 0x00, true},
		{"wrap with carry in", 0x99, 0x01, true, 0x01, true},
		{"carry out", 0x58, 0x46, true, 0x05, true},
	}

	for _, variant := range []Variant{Variant6502, Variant65C02, Variant65816} {
		for _, tc := range tests {
			t.Run(variant.String()+"/"+tc.name, func(t *testing.T) {
				runDecimal(t, variant, 0x69, tc, false)
			})
		}
	}
}

func TestDecimalSubtract8(t *testing.T) {
	tests := []bcdCase{
		{"simple", 0x46, 0x12, true, 0x34, true},
		{"digit borrow", 0x40, 0x13, true, 0x27, true},
		{"borrow in", 0x32, 0x02, false, 0x29, true},
		{"wrap below zero", 0x00, 0x01, true, 0x99, false},
		{"equal", 0x50, 0x50, true, 0x00, true},
	}

	for _, variant := range []Variant{Variant6502, Variant65C02, Variant65816} {
		for _, tc := range tests {
			t.Run(variant.String()+"/"+tc.name, func(t *testing.T) {
				runDecimal(t, variant, 0xE9, tc, false)
			})
		}
	}
}

func TestDecimalAdd16(t *testing.T) {
	tests := []bcdCase{
		{"carry across bytes", 0x1999, 0x0001, false, 0x2000, false},
		{"wrap to zero", 0x9999, 0x0001, false, 0x0000, true},
		{"simple", 0x1234, 0x4321, true, 0x5556, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runDecimal(t, Variant65816, 0x69, tc, true)
		})
	}
}

func TestDecimalSubtract16(t *testing.T) {
	tests := []bcdCase{
		{"wrap below zero", 0x0000, 0x0001, true, 0x9999, false},
		{"borrow across bytes", 0x1000, 0x0001, true, 0x0999, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runDecimal(t, Variant65816, 0xE9, tc, true)
		})
	}
}

func TestDecimalOverflowFollowsResult(t *testing.T) {
	rig := runDecimal(t, Variant65C02, 0x69, bcdCase{"", 0x79, 0x00, true, 0x80, false}, false)
	rig.requireFlag(t, OVERFLOW_FLAG, true, "V")
	rig.requireFlag(t, NEGATIVE_FLAG, true, "N")
}

func TestDecimalIgnoredWhenClear(t *testing.T) {
	rig := newCPUTestRig(Variant6502)
	rig.resetAndLoad(0x0200, []byte{
		0xD8,       // CLD
		0x69, 0x01, // ADC #$01
	})
	rig.cpu.A = 0x09

	rig.steps(2)
	rig.requireA(t, 0x0A)
}
