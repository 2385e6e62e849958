// acia_test.go - Tests for the serial console

package six5go

import (
	"testing"
)

func newACIAEngine(t *testing.T, program []byte) (*Engine, *ACIA) {
	t.Helper()
	e := newTestEngine(t, Variant6502, program)
	acia := NewACIA(DefaultACIABase)
	acia.Attach(e)
	return e, acia
}

func TestACIATransmit(t *testing.T) {
	e, acia := newACIAEngine(t, []byte{
		0xA9, 'H', // LDA #'H'
		0x8D, 0x00, 0x88, // STA $8800
		0xA9, 'i', // LDA #'i'
		0x8D, 0x00, 0x88, // STA $8800
	})

	for i := 0; i < 4; i++ {
		e.Step()
	}
	if got := string(acia.DrainOutput()); got != "Hi" {
		t.Fatalf("output=%q, want \"Hi\"", got)
	}
	if len(acia.DrainOutput()) != 0 {
		t.Fatalf("DrainOutput did not clear the buffer")
	}
	if e.Memory().Peek(DefaultACIABase) != 0 {
		t.Fatalf("transmitted byte reached memory")
	}
}

func TestACIAOutputCallback(t *testing.T) {
	e, acia := newACIAEngine(t, []byte{0xA9, '!', 0x8D, 0x00, 0x88})
	var got []byte
	acia.SetOutput(func(b byte) { got = append(got, b) })

	e.Step()
	e.Step()
	if string(got) != "!" {
		t.Fatalf("callback saw %q", got)
	}
	if len(acia.DrainOutput()) != 0 {
		t.Fatalf("callback output was also buffered")
	}
}

func TestACIAReceive(t *testing.T) {
	e, acia := newACIAEngine(t, []byte{
		0xAD, 0x01, 0x88, // LDA $8801
		0xAD, 0x00, 0x88, // LDA $8800
		0xAD, 0x00, 0x88, // LDA $8800
		0xAD, 0x01, 0x88, // LDA $8801
	})
	acia.EnqueueString("ok")

	e.Step()
	if got := e.CPU().A; got != ACIA_STATUS_TDRE|ACIA_STATUS_RDRF {
		t.Fatalf("status=0x%02X, want TDRE|RDRF", got)
	}
	e.Step()
	if e.CPU().A != 'o' || acia.Pending() != 1 {
		t.Fatalf("A=%q pending=%d", rune(e.CPU().A), acia.Pending())
	}
	e.Step()
	if e.CPU().A != 'k' {
		t.Fatalf("A=%q, want 'k'", rune(e.CPU().A))
	}
	e.Step()
	if got := e.CPU().A; got != ACIA_STATUS_TDRE {
		t.Fatalf("empty status=0x%02X, want TDRE", got)
	}
}

func TestACIAReceiveInterrupt(t *testing.T) {
	e, acia := newACIAEngine(t, []byte{
		0xA9, ACIA_CMD_DTR, // LDA #DTR
		0x8D, 0x02, 0x88, // STA $8802
		0x58, // CLI
		0xEA, // NOP
	})
	e.Memory().Load(0x0400, []byte{
		0xAD, 0x01, 0x88, // LDA $8801
		0xAD, 0x00, 0x88, // LDA $8800
		0x40, // RTI
	})
	e.Memory().PokeWord(IRQ_VECTOR, 0x0400)

	for i := 0; i < 3; i++ {
		e.Step()
	}
	if e.CPU().IRQ() {
		t.Fatalf("IRQ asserted with an empty receiver")
	}

	acia.Enqueue('x')
	acia.Poll()
	if !e.CPU().IRQ() {
		t.Fatalf("received byte did not assert IRQ")
	}

	e.Step() // interrupt entry
	if e.CPU().Interrupts != 1 {
		t.Fatalf("Interrupts=%d, want 1", e.CPU().Interrupts)
	}
	e.Step() // LDA $8801
	want := uint16(ACIA_STATUS_IRQ | ACIA_STATUS_TDRE | ACIA_STATUS_RDRF)
	if e.CPU().A != want {
		t.Fatalf("status=0x%02X, want 0x%02X", e.CPU().A, want)
	}
	if e.CPU().IRQ() {
		t.Fatalf("reading STATUS did not release IRQ")
	}

	e.Step()
	if e.CPU().A != 'x' {
		t.Fatalf("A=%q, want 'x'", rune(e.CPU().A))
	}
	e.Step()
	if e.CPU().PC != 0x0206 {
		t.Fatalf("RTI returned to $%04X, want $0206", e.CPU().PC)
	}
}

func TestACIAOverrunAndProgrammedReset(t *testing.T) {
	e, acia := newACIAEngine(t, nil)
	mem := e.Memory()
	base := uint32(DefaultACIABase)

	for i := 0; i < 257; i++ {
		acia.Enqueue(byte(i))
	}
	if acia.Pending() != 256 {
		t.Fatalf("Pending=%d, want 256", acia.Pending())
	}
	if mem.Read(base+ACIA_STATUS)&ACIA_STATUS_OVRN == 0 {
		t.Fatalf("overrun not reported")
	}
	if mem.Read(base+ACIA_DATA) != 0 {
		t.Fatalf("first byte lost")
	}
	if mem.Read(base+ACIA_STATUS)&ACIA_STATUS_OVRN != 0 {
		t.Fatalf("reading DATA did not clear overrun")
	}

	mem.Write(base+ACIA_COMMAND, 0xE1)
	mem.Write(base+ACIA_CONTROL, 0x1F)
	if mem.Read(base+ACIA_COMMAND) != 0xE1 || mem.Read(base+ACIA_CONTROL) != 0x1F {
		t.Fatalf("COMMAND/CONTROL not stored")
	}

	mem.Write(base+ACIA_STATUS, 0)
	if got := mem.Read(base + ACIA_COMMAND); got != 0xE0|ACIA_CMD_IRD {
		t.Fatalf("after programmed reset COMMAND=0x%02X, want 0x%02X", got, 0xE0|ACIA_CMD_IRD)
	}
}

func TestACIASharesIRQLine(t *testing.T) {
	e, acia := newACIAEngine(t, []byte{0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA})
	mem := e.Memory()
	base := uint32(DefaultACIABase)

	// The ACIA has nothing pending, so the host's assertion must survive
	// the poll after each step.
	e.CPU().SetIRQ(true)
	e.Step()
	if !e.CPU().IRQ() {
		t.Fatalf("host IRQ was released by the ACIA poll")
	}
	e.CPU().SetIRQ(false)
	e.Step()
	if e.CPU().IRQ() {
		t.Fatalf("IRQ still asserted after the host released it")
	}

	mem.Write(base+ACIA_COMMAND, ACIA_CMD_DTR)
	acia.Enqueue('x')
	e.Step()
	if !e.CPU().IRQ() {
		t.Fatalf("received byte did not assert IRQ")
	}

	// The host releasing its own input leaves the ACIA's in place.
	e.CPU().SetIRQ(false)
	if !e.CPU().IRQ() {
		t.Fatalf("host release cleared the ACIA's IRQ")
	}

	mem.Read(base + ACIA_STATUS)
	e.Step()
	if e.CPU().IRQ() {
		t.Fatalf("reading STATUS did not release the ACIA's IRQ")
	}
}
