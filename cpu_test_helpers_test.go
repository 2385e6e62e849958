package six5go

import "testing"

type cpuTestRig struct {
	mem *Memory
	cpu *CPU
}

func newCPUTestRig(variant Variant) *cpuTestRig {
	mem := NewMemoryForVariant(variant)
	return &cpuTestRig{
		mem: mem,
		cpu: NewCPU(variant, mem),
	}
}

func (r *cpuTestRig) resetAndLoad(start uint16, program []byte) {
	r.mem.Reset()
	r.mem.Load(uint32(start), program)
	r.cpu.Reset()
	r.cpu.PC = start
}

func (r *cpuTestRig) setVectors(entry uint16) {
	r.mem.PokeWord(RESET_VECTOR, entry)
	r.mem.PokeWord(NMI_VECTOR, entry)
	r.mem.PokeWord(IRQ_VECTOR, entry)
}

// native switches a 65816 rig to native mode with 8-bit registers, the state
// CLC; XCE leaves behind.
func (r *cpuTestRig) native() {
	r.cpu.setMode(MODE_NATIVE)
}

// steps runs n instructions and returns the cycles they took.
func (r *cpuTestRig) steps(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.cpu.Step()
	}
	return total
}

func (r *cpuTestRig) requireFlag(t *testing.T, flag byte, want bool, name string) {
	t.Helper()
	if got := r.cpu.P&flag != 0; got != want {
		t.Fatalf("%s flag=%v, want %v (P=0x%02X)", name, got, want, r.cpu.P)
	}
}

func (r *cpuTestRig) requireA(t *testing.T, want uint16) {
	t.Helper()
	if r.cpu.A != want {
		t.Fatalf("A=0x%04X, want 0x%04X", r.cpu.A, want)
	}
}

func (r *cpuTestRig) requirePC(t *testing.T, want uint16) {
	t.Helper()
	if r.cpu.PC != want {
		t.Fatalf("PC=0x%04X, want 0x%04X", r.cpu.PC, want)
	}
}
