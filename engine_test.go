// engine_test.go - Tests for engine stepping, runs and stop reasons

package six5go

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// countLoop increments X forever: INX at $0200, JMP $0200 at $0201.
var countLoop = []byte{0xE8, 0x4C, 0x00, 0x02}

func newTestEngine(t *testing.T, variant Variant, program []byte, opts ...Option) *Engine {
	t.Helper()
	e := NewEngine(variant, opts...)
	if err := e.LoadImage(program, LoadConfig{Addr: 0x0200}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	return e
}

type recordingHook struct {
	errs []error
}

func (h *recordingHook) StopOnException(err error) { h.errs = append(h.errs, err) }

type countingPoller struct {
	calls int
}

func (p *countingPoller) Poll() { p.calls++ }

func TestEngineStepTo(t *testing.T) {
	e := newTestEngine(t, Variant6502, []byte{
		0xA2, 0x03, // LDX #$03
		0xCA,       // DEX
		0xD0, 0xFD, // BNE $0202
		0xEA, // NOP
	})

	if pc := e.StepTo(0x0205); pc != 0x0205 {
		t.Fatalf("StepTo stopped at $%04X, want $0205", pc)
	}
	if e.CPU().X != 0 {
		t.Fatalf("X=%d, want 0", e.CPU().X)
	}
}

func TestEngineStepToStopsAtBreakpoint(t *testing.T) {
	e := newTestEngine(t, Variant6502, []byte{0xA2, 0x03, 0xCA, 0xD0, 0xFD, 0xEA})
	bps := NewBreakpointSet(e.CPU())
	bps.Add(0x0203)
	e.SetBreakpoints(bps)

	if pc := e.StepTo(0x0205); pc != 0x0203 {
		t.Fatalf("StepTo stopped at $%04X, want the breakpoint at $0203", pc)
	}
	if e.CPU().X != 2 {
		t.Fatalf("X=%d, want 2", e.CPU().X)
	}
}

func TestEngineStepToStopsOnFault(t *testing.T) {
	e := newTestEngine(t, Variant6502, []byte{0x02})

	if pc := e.StepTo(0x9999); pc != 0x0200 {
		t.Fatalf("StepTo stopped at $%04X, want $0200", pc)
	}
	var illegal *IllegalOpcodeError
	if !errors.As(e.Fault(), &illegal) {
		t.Fatalf("Fault=%v, want an IllegalOpcodeError", e.Fault())
	}
	if illegal.Address() != 0x0200 || illegal.Opcode != 0x02 {
		t.Fatalf("fault at $%06X opcode $%02X", illegal.Address(), illegal.Opcode)
	}
}

func TestEngineContinueHaltsAtBreakpointAndResumes(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)
	bps := NewBreakpointSet(e.CPU())
	bp := bps.Add(0x0201)
	e.SetBreakpoints(bps)

	e.Continue()
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.StopReason() != StopBreakpoint || e.State() != StateBreaking {
		t.Fatalf("reason=%v state=%v", e.StopReason(), e.State())
	}
	if e.CPU().PC != 0x0201 || e.CPU().X != 1 {
		t.Fatalf("PC=$%04X X=%d, want $0201 and 1", e.CPU().PC, e.CPU().X)
	}

	// Tick without Continue does nothing.
	if status := e.Tick(); status != StatusHalted || e.CPU().X != 1 {
		t.Fatalf("halted engine kept running")
	}

	e.Continue()
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.CPU().X != 2 {
		t.Fatalf("resume did not step past the breakpoint: X=%d", e.CPU().X)
	}
	if bp.HitCount != 2 {
		t.Fatalf("HitCount=%d, want 2", bp.HitCount)
	}
}

func TestEngineContinueUntilPredicate(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)

	e.ContinueUntil(func(cpu *CPU) bool { return cpu.X == 5 })
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.StopReason() != StopPredicate {
		t.Fatalf("reason=%v, want predicate", e.StopReason())
	}
	if e.CPU().X != 5 {
		t.Fatalf("X=%d, want 5", e.CPU().X)
	}
}

func TestEngineBatchBudget(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop, WithBatchSize(10))

	e.Continue()
	if status := e.Tick(); status != StatusRunning {
		t.Fatalf("Tick=%v, want running", status)
	}
	if got := e.CPU().InstructionCount; got != 10 {
		t.Fatalf("InstructionCount=%d, want 10", got)
	}
}

func TestEnginePauseBeforeBatch(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)

	e.Continue()
	e.Pause()
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.StopReason() != StopPaused {
		t.Fatalf("reason=%v, want paused", e.StopReason())
	}
	if e.CPU().InstructionCount != 0 {
		t.Fatalf("paused run executed %d instructions", e.CPU().InstructionCount)
	}
}

func TestEngineIllegalOpcodeHaltsRun(t *testing.T) {
	hook := &recordingHook{}
	e := newTestEngine(t, Variant6502, []byte{0xEA, 0xFF}, WithExceptionHook(hook))

	e.Continue()
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.StopReason() != StopException {
		t.Fatalf("reason=%v, want exception", e.StopReason())
	}
	if len(hook.errs) != 1 {
		t.Fatalf("hook saw %d errors, want 1", len(hook.errs))
	}
	if e.CPU().PC != 0x0201 {
		t.Fatalf("PC=$%04X, want the faulting opcode at $0201", e.CPU().PC)
	}
	if e.CPU().InstructionCount != 1 {
		t.Fatalf("InstructionCount=%d, want 1", e.CPU().InstructionCount)
	}

	e.Reset()
	if e.Fault() != nil {
		t.Fatalf("Reset kept the fault")
	}
}

func TestEngineTerminate(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)

	e.Continue()
	e.Terminate()
	if status := e.Tick(); status != StatusTerminated {
		t.Fatalf("Tick=%v, want terminated", status)
	}
	if e.StopReason() != StopTerminated || e.State() != StateIdle {
		t.Fatalf("reason=%v state=%v", e.StopReason(), e.State())
	}

	e.Continue()
	if e.State() != StateIdle {
		t.Fatalf("terminated engine accepted Continue")
	}
}

func TestEngineWaitingStatus(t *testing.T) {
	e := newTestEngine(t, Variant65C02, []byte{
		0x58, // CLI
		0xCB, // WAI
	})
	e.Memory().Load(0x0300, []byte{0x4C, 0x00, 0x03}) // JMP $0300
	e.Memory().PokeWord(IRQ_VECTOR, 0x0300)

	e.Continue()
	if status := e.Tick(); status != StatusWaiting {
		t.Fatalf("Tick=%v, want waiting", status)
	}
	if e.State() != StateWaiting {
		t.Fatalf("state=%v, want waiting", e.State())
	}
	if status := e.Tick(); status != StatusWaiting {
		t.Fatalf("idle Tick=%v, want waiting", status)
	}

	e.CPU().SetIRQ(true)
	if status := e.Tick(); status != StatusRunning {
		t.Fatalf("Tick=%v, want running", status)
	}
	if e.CPU().Interrupts != 1 {
		t.Fatalf("Interrupts=%d, want 1", e.CPU().Interrupts)
	}
}

func TestEngineRunReturnsOnTerminate(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)
	e.Continue()
	e.Terminate()

	if err := e.Run(context.Background(), time.Millisecond); !errors.Is(err, ErrTerminated) {
		t.Fatalf("Run=%v, want ErrTerminated", err)
	}
}

func TestEngineRunStopsOnCancel(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx, time.Millisecond) }()
	e.Continue()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run=%v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestEnginePollsAfterEveryStep(t *testing.T) {
	e := newTestEngine(t, Variant6502, countLoop)
	p := &countingPoller{}
	e.AddPoller(p)

	for i := 0; i < 3; i++ {
		e.Step()
	}
	if p.calls != 3 {
		t.Fatalf("Poll calls=%d, want 3", p.calls)
	}
}

func TestEngineStartPCAndMemoryOptions(t *testing.T) {
	mem := NewMemory(MEMORY_SIZE_6502)
	mem.Load(0x1234, []byte{0xA9, 0x42})
	e := NewEngine(Variant6502, WithMemory(mem), WithStartPC(0x1234))

	if e.Memory() != mem {
		t.Fatalf("engine did not adopt the supplied memory")
	}
	e.Step()
	if e.CPU().A != 0x42 {
		t.Fatalf("A=0x%02X, want 0x42", e.CPU().A)
	}

	small := NewEngine(Variant65816, WithMemorySize(0x10000))
	if small.Memory().Size() != 0x10000 {
		t.Fatalf("Size=%d, want 0x10000", small.Memory().Size())
	}
}

func TestEngineBreakpointAtInterruptHandler(t *testing.T) {
	e := newTestEngine(t, Variant6502, []byte{
		0x58,             // CLI
		0x4C, 0x01, 0x02, // JMP $0201
	})
	e.Memory().Load(0x0700, []byte{0xEA, 0x40}) // NOP; RTI
	e.Memory().PokeWord(IRQ_VECTOR, 0x0700)
	bps := NewBreakpointSet(e.CPU())
	bp := bps.Add(0x0700)
	e.SetBreakpoints(bps)
	e.CPU().SetIRQ(true)

	e.Continue()
	if status := e.Tick(); status != StatusHalted {
		t.Fatalf("Tick=%v, want halted", status)
	}
	if e.StopReason() != StopBreakpoint {
		t.Fatalf("reason=%v, want breakpoint", e.StopReason())
	}
	if e.CPU().PC != 0x0700 || bp.HitCount != 1 {
		t.Fatalf("PC=$%04X hits=%d, want $0700 and 1", e.CPU().PC, bp.HitCount)
	}
	if e.CPU().Interrupts != 1 {
		t.Fatalf("Interrupts=%d, want 1", e.CPU().Interrupts)
	}
}

func TestEngineStepToInterruptHandler(t *testing.T) {
	e := newTestEngine(t, Variant65C02, []byte{
		0x58,             // CLI
		0x4C, 0x01, 0x02, // JMP $0201
	})
	e.Memory().Load(0x0700, []byte{0xEA, 0x40}) // NOP; RTI
	e.Memory().PokeWord(IRQ_VECTOR, 0x0700)
	e.CPU().SetIRQ(true)

	if pc := e.StepTo(0x0700); pc != 0x0700 {
		t.Fatalf("StepTo stopped at $%04X, want $0700", pc)
	}
	if e.CPU().InstructionCount != 1 {
		t.Fatalf("handler ran before StepTo returned: %d instructions", e.CPU().InstructionCount)
	}
}

func TestEngineBlockMoveBreakpointStopsOnce(t *testing.T) {
	e := newTestEngine(t, Variant65816, []byte{
		0xEA,             // NOP
		0x54, 0x00, 0x00, // MVN $00,$00
		0xEA, // NOP
	})
	cpu := cpu65816Native(e)
	cpu.setC(0x0003)
	cpu.X = 0x1000
	cpu.Y = 0x3000
	e.Memory().Load(0x1000, []byte{0x01, 0x02, 0x03, 0x04})

	bps := NewBreakpointSet(cpu)
	move := bps.Add(0x0201)
	bps.Add(0x0204)
	e.SetBreakpoints(bps)

	e.Continue()
	if status := e.Tick(); status != StatusHalted || cpu.PC != 0x0201 {
		t.Fatalf("Tick=%v PC=$%04X, want halted at $0201", status, cpu.PC)
	}
	if e.Memory().Peek(0x3000) != 0 {
		t.Fatalf("block move ran before the breakpoint")
	}

	e.Continue()
	if status := e.Tick(); status != StatusHalted || cpu.PC != 0x0204 {
		t.Fatalf("Tick=%v PC=$%04X, want halted at $0204", status, cpu.PC)
	}
	if move.HitCount != 1 {
		t.Fatalf("block move breakpoint hit %d times, want 1", move.HitCount)
	}
	for i, want := range []byte{0x01, 0x02, 0x03, 0x04} {
		if got := e.Memory().Peek(0x3000 + uint32(i)); got != want {
			t.Fatalf("dst[%d]=0x%02X, want 0x%02X", i, got, want)
		}
	}

	// StepTo over the same move also stops only once it completes.
	cpu.PC = 0x0201
	cpu.setC(0x0003)
	cpu.X = 0x1000
	cpu.Y = 0x3000
	if pc := e.StepTo(0x0204); pc != 0x0204 {
		t.Fatalf("StepTo stopped at $%04X, want $0204", pc)
	}
	if cpu.C() != 0xFFFF {
		t.Fatalf("C=$%04X, want $FFFF after the move", cpu.C())
	}
}

// cpu65816Native switches the engine's processor to native mode with 16-bit
// registers.
func cpu65816Native(e *Engine) *CPU {
	cpu := e.CPU()
	cpu.setMode(MODE_NATIVE)
	cpu.SetP(cpu.P &^ (ACCUM_WIDTH_FLAG | INDEX_WIDTH_FLAG))
	return cpu
}
