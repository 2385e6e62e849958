// monitor_test.go - Tests for the monitor command set

package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/intuitionamiga/six5go"
)

func newTestMonitor(t *testing.T, variant six5go.Variant, program []byte) (*monitor, *bytes.Buffer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := newMachine(options{variant: variant, batch: 1000}, logger)
	if err != nil {
		t.Fatalf("newMachine: %v", err)
	}
	if err := m.engine.LoadImage(program, six5go.LoadConfig{Addr: 0x0200}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	out := &bytes.Buffer{}
	return newMonitor(m, strings.NewReader(""), out, 0), out
}

func TestMonitorLookup(t *testing.T) {
	mon, _ := newTestMonitor(t, six5go.Variant65C02, nil)

	tests := []struct {
		in   string
		want string
	}{
		{"s", "step"},
		{"c", "continue"},
		{"r", "regs"},
		{"cont", "continue"},
		{"STEPTO", "stepto"},
		{"q", "quit"},
	}
	for _, tc := range tests {
		cmd, err := mon.lookup(tc.in)
		if err != nil {
			t.Fatalf("lookup(%q): %v", tc.in, err)
		}
		if cmd.name != tc.want {
			t.Fatalf("lookup(%q)=%s, want %s", tc.in, cmd.name, tc.want)
		}
	}

	if err := mon.exec("b 200"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("exec(b)=%v, want ambiguous", err)
	}
	if err := mon.exec("frobnicate"); err == nil || !strings.Contains(err.Error(), "unknown") {
		t.Fatalf("exec(frobnicate)=%v, want unknown", err)
	}
	if err := mon.exec("   "); err != nil {
		t.Fatalf("blank line: %v", err)
	}
}

func TestMonitorStepAndRegs(t *testing.T) {
	mon, out := newTestMonitor(t, six5go.Variant65C02, []byte{
		0xA9, 0x42, // LDA #$42
		0xA2, 0x01, // LDX #$01
	})

	if err := mon.exec("step 2"); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !strings.Contains(out.String(), "A=42 X=01") {
		t.Fatalf("step output %q", out.String())
	}

	out.Reset()
	if err := mon.exec("regs y=7 pc=0200"); err != nil {
		t.Fatalf("regs: %v", err)
	}
	if mon.m.engine.CPU().Y != 7 || mon.m.engine.CPU().PC != 0x0200 {
		t.Fatalf("regs did not set Y/PC")
	}
	if !strings.Contains(out.String(), "000200  A9  LDA #") {
		t.Fatalf("regs output %q", out.String())
	}

	if err := mon.exec("regs q=1"); err == nil {
		t.Fatalf("unknown register accepted")
	}
	if err := mon.exec("step zero"); err == nil {
		t.Fatalf("invalid count accepted")
	}
}

func TestMonitorBreakAndContinue(t *testing.T) {
	mon, out := newTestMonitor(t, six5go.Variant6502, []byte{0xE8, 0x4C, 0x00, 0x02})

	if err := mon.exec("break 0201"); err != nil {
		t.Fatalf("break: %v", err)
	}
	if err := mon.exec("continue"); err != nil {
		t.Fatalf("continue: %v", err)
	}
	if !strings.Contains(out.String(), "stopped: breakpoint") {
		t.Fatalf("continue output %q", out.String())
	}
	if mon.m.engine.CPU().PC != 0x0201 {
		t.Fatalf("PC=$%04X, want $0201", mon.m.engine.CPU().PC)
	}

	out.Reset()
	mon.exec("break")
	if !strings.Contains(out.String(), "$000201") {
		t.Fatalf("break list %q", out.String())
	}

	if err := mon.exec("clear 0201"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := mon.exec("clear 0201"); err == nil {
		t.Fatalf("second clear succeeded")
	}

	out.Reset()
	if err := mon.exec("until X == 5"); err != nil {
		t.Fatalf("until: %v", err)
	}
	if !strings.Contains(out.String(), "stopped: predicate") {
		t.Fatalf("until output %q", out.String())
	}
	if mon.m.engine.CPU().X != 5 {
		t.Fatalf("X=%d, want 5", mon.m.engine.CPU().X)
	}
}

func TestMonitorMemoryCommands(t *testing.T) {
	mon, out := newTestMonitor(t, six5go.Variant6502, []byte{0xE8, 0x4C, 0x00, 0x02})

	if err := mon.exec("mem 0200 4"); err != nil {
		t.Fatalf("mem: %v", err)
	}
	if !strings.Contains(out.String(), "000200  E8 4C 00 02") || !strings.Contains(out.String(), ".L..") {
		t.Fatalf("mem output %q", out.String())
	}

	out.Reset()
	if err := mon.exec("mem 0 FFFFFFFF"); err != nil {
		t.Fatalf("mem: %v", err)
	}
	if rows := strings.Count(out.String(), "\n"); rows != 0x10000/16 {
		t.Fatalf("mem dumped %d rows, want the whole 64K and no more", rows)
	}

	if err := mon.exec("poke 10 01 #2"); err != nil {
		t.Fatalf("poke: %v", err)
	}
	mem := mon.m.engine.Memory()
	if mem.Peek(0x10) != 1 || mem.Peek(0x11) != 2 {
		t.Fatalf("poke wrote %02X %02X", mem.Peek(0x10), mem.Peek(0x11))
	}
	if err := mon.exec("poke 10 100"); err == nil {
		t.Fatalf("poke accepted a value above $FF")
	}
}

func TestMonitorFaultReport(t *testing.T) {
	mon, out := newTestMonitor(t, six5go.Variant6502, []byte{0x02})

	if err := mon.exec("step"); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !strings.Contains(out.String(), "fault: 6502: illegal opcode $02") {
		t.Fatalf("step output %q", out.String())
	}
}

func TestMonitorRunLoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := newMachine(options{variant: six5go.Variant65C02, batch: 1000}, logger)
	if err != nil {
		t.Fatalf("newMachine: %v", err)
	}
	m.engine.LoadImage([]byte{0xEA}, six5go.LoadConfig{Addr: 0x0200})

	out := &bytes.Buffer{}
	mon := newMonitor(m, strings.NewReader("nope\nquit\nregs\n"), out, 0)
	if err := mon.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "000200> ") {
		t.Fatalf("prompt missing from %q", out.String())
	}
	if !strings.Contains(out.String(), "error: unknown command") {
		t.Fatalf("error report missing from %q", out.String())
	}
	if strings.Contains(out.String(), "NV-BDIZC") || strings.Contains(out.String(), "A=") {
		t.Fatalf("commands after quit were executed")
	}
}

func TestFlagString(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := newMachine(options{variant: six5go.Variant6502}, logger)
	if err != nil {
		t.Fatalf("newMachine: %v", err)
	}
	if got := flagString(m.engine.CPU()); got != "..-BDI.." {
		t.Fatalf("flagString=%q, want \"..-BDI..\"", got)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-variant", "65816", "-addr", "$1000", "prog.bin"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.variant != six5go.Variant65816 || opts.addr != 0x1000 || opts.program != "prog.bin" {
		t.Fatalf("opts=%+v", opts)
	}
	if !opts.acia || opts.aciaBase != six5go.DefaultACIABase {
		t.Fatalf("ACIA not enabled at the default base")
	}

	opts, err = parseFlags([]string{"-acia", "off", "-monitor", "-entry", "4096"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.acia || !opts.monitor || opts.entry != 4096 {
		t.Fatalf("opts=%+v", opts)
	}

	for _, args := range [][]string{
		{},
		{"-addr", "zz", "prog.bin"},
		{"-variant", "z80", "prog.bin"},
		{"-entry", "0x1000000", "prog.bin"},
	} {
		if _, err := parseFlags(args, io.Discard); err == nil {
			t.Fatalf("parseFlags(%v) accepted", args)
		}
	}
}
