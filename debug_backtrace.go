// debug_backtrace.go - Call-stack tracking and stack backtraces

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
	"fmt"
	"sync"
)

type FrameKind int

const (
	FrameCall FrameKind = iota
	FrameLongCall
	FrameBreak
	FrameCoprocessor
	FrameInterrupt
)

func (k FrameKind) String() string {
	switch k {
	case FrameCall:
		return "jsr"
	case FrameLongCall:
		return "jsl"
	case FrameBreak:
		return "brk"
	case FrameCoprocessor:
		return "cop"
	case FrameInterrupt:
		return "irq"
	}
	return "?"
}

// Frame is one active call. Caller is the address of the calling
// instruction (or the interrupted instruction), Target where it went.
type Frame struct {
	Kind   FrameKind
	Caller uint32
	Target uint32
	SP     uint16 // stack pointer after the return address was pushed
}

func (f Frame) String() string {
	return fmt.Sprintf("%s $%06X -> $%06X (SP=$%04X)", f.Kind, f.Caller, f.Target, f.SP)
}

// DefaultCallStackDepth bounds the tracked frames. The oldest frame is
// dropped when the limit is reached.
const DefaultCallStackDepth = 1024

// CallStack is the default CallStackTracker. It watches which instruction
// each step executed and keeps a frame per call, BRK, COP and hardware
// interrupt until the matching return.
type CallStack struct {
	cpu      *CPU
	maxDepth int

	mu     sync.Mutex
	frames []Frame

	count      uint64
	interrupts uint64
	lastPC     uint32
}

func NewCallStack(cpu *CPU) *CallStack {
	return &CallStack{cpu: cpu, maxDepth: DefaultCallStackDepth}
}

// ManageCallStackExit records the state before a step.
func (cs *CallStack) ManageCallStackExit(addr uint32) {
	cs.lastPC = addr
	cs.count = cs.cpu.InstructionCount
	cs.interrupts = cs.cpu.Interrupts
}

// ManageCallStackEntry classifies the step that just ran.
func (cs *CallStack) ManageCallStackEntry(addr uint32) {
	cpu := cs.cpu

	if cpu.Interrupts != cs.interrupts {
		cs.push(Frame{Kind: FrameInterrupt, Caller: cs.lastPC, Target: addr, SP: cpu.SP})
	}
	if cpu.InstructionCount == cs.count {
		return
	}

	switch cpu.table[cpu.LastOpcode()].Mnemonic {
	case "JSR":
		cs.push(Frame{Kind: FrameCall, Caller: cpu.LastPC(), Target: addr, SP: cpu.SP})
	case "JSL":
		cs.push(Frame{Kind: FrameLongCall, Caller: cpu.LastPC(), Target: addr, SP: cpu.SP})
	case "BRK":
		cs.push(Frame{Kind: FrameBreak, Caller: cpu.LastPC(), Target: addr, SP: cpu.SP})
	case "COP":
		cs.push(Frame{Kind: FrameCoprocessor, Caller: cpu.LastPC(), Target: addr, SP: cpu.SP})
	case "RTS", "RTL", "RTI":
		cs.pop()
	}
}

func (cs *CallStack) push(f Frame) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.frames) >= cs.maxDepth {
		copy(cs.frames, cs.frames[1:])
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
	cs.frames = append(cs.frames, f)
}

func (cs *CallStack) pop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if n := len(cs.frames); n > 0 {
		cs.frames = cs.frames[:n-1]
	}
}

// Depth returns the number of active frames.
func (cs *CallStack) Depth() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.frames)
}

// Backtrace returns the active frames, innermost first.
func (cs *CallStack) Backtrace() []Frame {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]Frame, len(cs.frames))
	for i, f := range cs.frames {
		out[len(cs.frames)-1-i] = f
	}
	return out
}

// Reset forgets every frame, for use after a processor reset.
func (cs *CallStack) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.frames = cs.frames[:0]
}

// StackBacktrace guesses return addresses by walking 2-byte slots up from
// SP, adding 1 because JSR pushes return-1. It needs no tracker, so it also
// works for code that was running before one was attached. Emulation mode
// stops at the top of page 1.
func StackBacktrace(cpu *CPU, depth int) []uint32 {
	sp := uint32(cpu.SP) + 1
	limit := uint32(WORD_MASK)
	if cpu.Mode == MODE_EMULATION {
		sp = STACK_BASE | sp&BYTE_MASK
		limit = STACK_BASE | BYTE_MASK
	}

	var result []uint32
	for i := 0; i < depth; i++ {
		if sp+1 > limit {
			break
		}
		ret := uint32(cpu.mem.PeekWord(sp)) + 1
		result = append(result, uint32(cpu.PBR)<<16|ret&WORD_MASK)
		sp += 2
	}
	return result
}
