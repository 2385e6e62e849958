// engine.go - Controlled execution of one processor for a debugger host

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
engine.go - Controlled execution of one processor for a debugger host

The engine owns a processor and its memory and runs it under external
control. The host drives it in one of two ways:

    Step / StepTo           synchronous, for single-stepping and stepping to
                            a statically known address
    Continue + Tick / Run   cooperative: every Tick runs a bounded batch of
                            instructions and reports whether the run is still
                            going, waiting on an interrupt or halted

State Machine:

    Idle --Continue--> Running <--> Waiting
                          |            |
                          +--> Breaking <+   (breakpoint, predicate, pause,
                                              illegal opcode)
    any --Terminate--> Idle (terminal)

Stop checks happen at the top of each batch and after every instruction:
the pause flag, the breakpoint oracle and the optional predicate. The
breakpoint at the address a run resumes from is skipped once, so Continue
after a breakpoint hit makes progress.

Threading:
Step, StepTo and Tick run on the engine's thread of control. Continue,
ContinueUntil and the inspection helpers take the run lock and may be
called from other goroutines. Pause and Terminate never block.
*/

package six5go

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// BreakpointOracle decides whether execution must halt before the
// instruction at addr.
type BreakpointOracle interface {
	CheckBP(addr uint32) bool
}

// CallStackTracker is notified around every step: exit with the address of
// the instruction about to run, entry with the address execution reached.
type CallStackTracker interface {
	ManageCallStackEntry(addr uint32)
	ManageCallStackExit(addr uint32)
}

// ExceptionHook is told about faults that halt the run.
type ExceptionHook interface {
	StopOnException(err error)
}

// Poller is a peripheral serviced after every step.
type Poller interface {
	Poll()
}

// Predicate is an extra stop condition evaluated after every step of a run.
type Predicate func(cpu *CPU) bool

type EngineState int32

const (
	StateIdle EngineState = iota
	StateRunning
	StateBreaking
	StateWaiting
)

func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateBreaking:
		return "breaking"
	case StateWaiting:
		return "waiting"
	}
	return "unknown"
}

// RunStatus is what Tick reports to the host scheduler.
type RunStatus int

const (
	StatusHalted RunStatus = iota
	StatusRunning
	StatusWaiting
	StatusTerminated
)

// StopReason records why the last run halted.
type StopReason int

const (
	StopNone StopReason = iota
	StopPaused
	StopBreakpoint
	StopPredicate
	StopException
	StopTerminated
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopPaused:
		return "paused"
	case StopBreakpoint:
		return "breakpoint"
	case StopPredicate:
		return "predicate"
	case StopException:
		return "exception"
	case StopTerminated:
		return "terminated"
	}
	return "unknown"
}

const (
	DefaultBatchSize     = 100_000
	DefaultIdleBatchSize = 100
	DefaultTickInterval  = 10 * time.Millisecond
)

type Engine struct {
	cpu *CPU
	mem *Memory

	breakpoints BreakpointOracle
	callStack   CallStackTracker
	exceptions  ExceptionHook
	pollers     []Poller

	batch     int
	idleBatch int
	logger    *slog.Logger

	mu        sync.Mutex
	state     atomic.Int32
	pause     atomic.Bool
	done      atomic.Bool
	resume    bool
	predicate Predicate
	reason    StopReason
	fault     error

	// Performance monitoring
	perfEnabled    bool
	perfStartTime  time.Time
	perfStartCount uint64
	lastPerfReport time.Time
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	memorySize  int
	memory      *Memory
	startPC     *uint16
	breakpoints BreakpointOracle
	callStack   CallStackTracker
	exceptions  ExceptionHook
	batch       int
	idleBatch   int
	logger      *slog.Logger
	perf        bool
}

// WithMemorySize overrides the variant's default memory size.
func WithMemorySize(size int) Option {
	return func(c *engineConfig) { c.memorySize = size }
}

// WithMemory runs the processor against an existing memory.
func WithMemory(mem *Memory) Option {
	return func(c *engineConfig) { c.memory = mem }
}

// WithStartPC starts at pc instead of the reset vector.
func WithStartPC(pc uint16) Option {
	return func(c *engineConfig) { c.startPC = &pc }
}

func WithBreakpoints(oracle BreakpointOracle) Option {
	return func(c *engineConfig) { c.breakpoints = oracle }
}

func WithCallStack(tracker CallStackTracker) Option {
	return func(c *engineConfig) { c.callStack = tracker }
}

func WithExceptionHook(hook ExceptionHook) Option {
	return func(c *engineConfig) { c.exceptions = hook }
}

// WithBatchSize sets the number of instructions one Tick runs.
func WithBatchSize(n int) Option {
	return func(c *engineConfig) { c.batch = n }
}

// WithIdleBatchSize sets the batch used while the processor waits for an
// interrupt.
func WithIdleBatchSize(n int) Option {
	return func(c *engineConfig) { c.idleBatch = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithPerfReport logs the instruction rate once a second while running.
func WithPerfReport(enabled bool) Option {
	return func(c *engineConfig) { c.perf = enabled }
}

// NewEngine creates an engine around a fresh processor of the given variant.
func NewEngine(variant Variant, opts ...Option) *Engine {
	cfg := engineConfig{
		batch:     DefaultBatchSize,
		idleBatch: DefaultIdleBatchSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mem := cfg.memory
	if mem == nil {
		if cfg.memorySize > 0 {
			mem = NewMemory(cfg.memorySize)
		} else {
			mem = NewMemoryForVariant(variant)
		}
	}
	if cfg.batch < 1 {
		cfg.batch = 1
	}
	if cfg.idleBatch < 1 {
		cfg.idleBatch = 1
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		mem:         mem,
		breakpoints: cfg.breakpoints,
		callStack:   cfg.callStack,
		exceptions:  cfg.exceptions,
		batch:       cfg.batch,
		idleBatch:   cfg.idleBatch,
		logger:      logger,
		perfEnabled: cfg.perf,
	}
	if cfg.startPC != nil {
		e.cpu = CreateProcessor(variant, mem, *cfg.startPC)
	} else {
		e.cpu = NewCPU(variant, mem)
	}
	e.cpu.SetIllegalHandler(e.onIllegal)
	return e
}

func (e *Engine) CPU() *CPU          { return e.cpu }
func (e *Engine) Memory() *Memory    { return e.mem }
func (e *Engine) State() EngineState { return EngineState(e.state.Load()) }

// AddPoller registers a peripheral serviced after every step.
func (e *Engine) AddPoller(p Poller) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pollers = append(e.pollers, p)
}

// SetBreakpoints replaces the breakpoint oracle.
func (e *Engine) SetBreakpoints(oracle BreakpointOracle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.breakpoints = oracle
}

// SetCallStack replaces the call-stack tracker.
func (e *Engine) SetCallStack(tracker CallStackTracker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.callStack = tracker
}

// StopReason reports why the last run halted.
func (e *Engine) StopReason() StopReason {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reason
}

// Fault returns the error that halted the last run, if any.
func (e *Engine) Fault() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fault
}

func (e *Engine) setState(s EngineState) {
	old := EngineState(e.state.Swap(int32(s)))
	if old != s {
		e.logger.Debug("engine state", "from", old, "to", s, "pc", e.cpu.ProgramCounter())
	}
}

func (e *Engine) onIllegal(err *IllegalOpcodeError) {
	e.fault = err
	e.logger.Warn("illegal opcode",
		"variant", err.Variant,
		"opcode", err.Opcode,
		"bank", err.Bank,
		"pc", err.PC)
	if e.exceptions != nil {
		e.exceptions.StopOnException(err)
	}
}

// Reset resets the processor and clears any fault and tracked call frames.
// Breakpoints and observers stay in place.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cpu.Reset()
	if r, ok := e.callStack.(interface{ Reset() }); ok {
		r.Reset()
	}
	e.fault = nil
	e.reason = StopNone
	if !e.done.Load() {
		e.setState(StateIdle)
	}
}

// ------------------------------------------------------------------------------
// Synchronous control
// ------------------------------------------------------------------------------

// Step executes one instruction and returns the cycles it took. Fault
// reports an illegal opcode hit by this step only.
func (e *Engine) Step() int {
	e.fault = nil
	pc := e.cpu.ProgramCounter()
	if e.callStack != nil {
		e.callStack.ManageCallStackExit(pc)
	}
	cycles := e.cpu.Step()
	if e.callStack != nil {
		e.callStack.ManageCallStackEntry(e.cpu.ProgramCounter())
	}
	for _, p := range e.pollers {
		p.Poll()
	}
	return cycles
}

// StepTo steps until PC reaches addr or a breakpoint is hit, and returns the
// address execution stopped at. It also returns early on a fault, a pause,
// a terminate or a stopped processor, so a target that is never reached
// cannot hang the caller in those cases.
func (e *Engine) StepTo(addr uint32) uint32 {
	e.fault = nil
	for {
		e.Step()
		pc := e.cpu.ProgramCounter()
		switch {
		case pc == addr:
			return pc
		case e.breakpoints != nil && !e.repeatingBlockMove(pc) && e.breakpoints.CheckBP(pc):
			return pc
		case e.fault != nil, e.cpu.Stopped, e.done.Load():
			return pc
		case e.pause.Swap(false):
			return pc
		}
	}
}

// repeatingBlockMove reports whether pc is an MVN/MVP that just copied a byte
// and rewound to itself. A breakpoint on a block move stops once per move,
// not once per byte.
func (e *Engine) repeatingBlockMove(pc uint32) bool {
	if e.cpu.LastPC() != pc {
		return false
	}
	switch e.cpu.Table()[e.cpu.LastOpcode()].Mnemonic {
	case "MVN", "MVP":
		return true
	}
	return false
}

// ------------------------------------------------------------------------------
// Cooperative run
// ------------------------------------------------------------------------------

// Continue starts or resumes a run. The next Tick executes instructions.
func (e *Engine) Continue() {
	e.ContinueUntil(nil)
}

// ContinueUntil is Continue with an extra stop condition checked after every
// step.
func (e *Engine) ContinueUntil(pred Predicate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done.Load() {
		return
	}
	e.predicate = pred
	e.resume = true
	e.reason = StopNone
	e.fault = nil
	e.pause.Store(false)
	if e.perfEnabled {
		e.perfStartTime = time.Now()
		e.perfStartCount = e.cpu.InstructionCount
		e.lastPerfReport = e.perfStartTime
	}
	e.setState(StateRunning)
}

// Pause asks the run to halt at the next safe point.
func (e *Engine) Pause() {
	e.pause.Store(true)
}

// Terminate ends the engine. Later runs are refused.
func (e *Engine) Terminate() {
	e.done.Store(true)
	e.pause.Store(true)
}

// Terminated reports whether Terminate was called.
func (e *Engine) Terminated() bool {
	return e.done.Load()
}

func (e *Engine) halt(reason StopReason) {
	e.reason = reason
	e.predicate = nil
	e.setState(StateBreaking)
	e.logger.Info("halted", "reason", reason, "pc", e.cpu.ProgramCounter(), "cycles", e.cpu.Cycles)
}

// Tick runs one bounded batch and reports the run status.
func (e *Engine) Tick() RunStatus {
	/*
	   Tick is the scheduler entry point.

	   Batch Flow:
	   1. Terminated or not running: report and return
	   2. Pause requested: halt before executing anything
	   3. Pick the batch size: small while the processor waits
	   4. Per instruction: breakpoint check (skipped once on resume), step,
	      then fault, predicate and pause checks
	   5. Report waiting if the processor went to sleep during the batch
	*/

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done.Load() {
		if e.State() != StateIdle {
			e.reason = StopTerminated
			e.setState(StateIdle)
		}
		return StatusTerminated
	}

	state := e.State()
	if state != StateRunning && state != StateWaiting {
		return StatusHalted
	}
	if e.pause.Swap(false) {
		e.halt(StopPaused)
		return StatusHalted
	}

	budget := e.batch
	if e.cpu.Waiting {
		budget = e.idleBatch
	}

	for i := 0; i < budget; i++ {
		pc := e.cpu.ProgramCounter()
		if !e.resume && !e.cpu.Waiting && e.breakpoints != nil && !e.repeatingBlockMove(pc) && e.breakpoints.CheckBP(pc) {
			e.halt(StopBreakpoint)
			return StatusHalted
		}
		e.resume = false

		e.Step()

		if e.fault != nil {
			e.halt(StopException)
			return StatusHalted
		}
		if e.predicate != nil && e.predicate(e.cpu) {
			e.halt(StopPredicate)
			return StatusHalted
		}
		if e.pause.Swap(false) {
			e.halt(StopPaused)
			return StatusHalted
		}
		if e.cpu.Waiting && budget == e.batch {
			break
		}
	}

	e.reportPerf()

	if e.cpu.Waiting {
		e.setState(StateWaiting)
		return StatusWaiting
	}
	e.setState(StateRunning)
	return StatusRunning
}

// Run calls Tick every interval until ctx is cancelled or the engine is
// terminated.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.Pause()
			return ctx.Err()
		case <-ticker.C:
			if e.Tick() == StatusTerminated {
				return ErrTerminated
			}
		}
	}
}

func (e *Engine) reportPerf() {
	if !e.perfEnabled {
		return
	}
	now := time.Now()
	if now.Sub(e.lastPerfReport) < time.Second {
		return
	}
	e.lastPerfReport = now
	elapsed := now.Sub(e.perfStartTime).Seconds()
	if elapsed <= 0 {
		return
	}
	executed := e.cpu.InstructionCount - e.perfStartCount
	mips := float64(executed) / elapsed / 1_000_000
	e.logger.Info("performance",
		"variant", e.cpu.Variant(),
		"mips", mips,
		"instructions", executed,
		"elapsed", time.Duration(elapsed*float64(time.Second)).Round(100*time.Millisecond))
}
