// monitor.go - Interactive debugger monitor

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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/prefixtree"
	"github.com/intuitionamiga/six5go"
	"github.com/pkg/errors"
)

var errQuit = errors.New("quit")

type command struct {
	name        string
	usage       string
	description string
	handler     func(mon *monitor, args []string) error
}

func commandList() []command {
	return []command{
		{name: "step", usage: "step [count]", description: "Execute instructions", handler: (*monitor).cmdStep},
		{name: "stepto", usage: "stepto addr", description: "Step until PC reaches addr or a breakpoint", handler: (*monitor).cmdStepTo},
		{name: "continue", usage: "continue", description: "Run until a breakpoint, fault or Ctrl-C", handler: (*monitor).cmdContinue},
		{name: "until", usage: "until lua-expr", description: "Run until the Lua expression is true", handler: (*monitor).cmdUntil},
		{name: "break", usage: "break [addr [condition]]", description: "Set or list breakpoints", handler: (*monitor).cmdBreak},
		{name: "clear", usage: "clear [addr]", description: "Remove one or all breakpoints", handler: (*monitor).cmdClear},
		{name: "regs", usage: "regs [name=value ...]", description: "Show or set registers", handler: (*monitor).cmdRegs},
		{name: "mem", usage: "mem addr [len]", description: "Dump memory", handler: (*monitor).cmdMem},
		{name: "poke", usage: "poke addr byte ...", description: "Write memory", handler: (*monitor).cmdPoke},
		{name: "input", usage: "input text", description: "Queue text on the ACIA receiver", handler: (*monitor).cmdInput},
		{name: "irq", usage: "irq on|off", description: "Drive the IRQ line", handler: (*monitor).cmdIRQ},
		{name: "nmi", usage: "nmi", description: "Trigger an NMI", handler: (*monitor).cmdNMI},
		{name: "bt", usage: "bt", description: "Show the call stack", handler: (*monitor).cmdBacktrace},
		{name: "reset", usage: "reset", description: "Reset the processor", handler: (*monitor).cmdReset},
		{name: "help", usage: "help", description: "List commands", handler: (*monitor).cmdHelp},
		{name: "quit", usage: "quit", description: "Leave the monitor", handler: (*monitor).cmdQuit},
	}
}

type monitor struct {
	m        *machine
	commands []command
	in       io.Reader
	out      io.Writer
	tick     time.Duration
	tree     *prefixtree.Tree
	exact    map[string]*command
}

func newMonitor(m *machine, in io.Reader, out io.Writer, tick time.Duration) *monitor {
	if tick <= 0 {
		tick = six5go.DefaultTickInterval
	}
	mon := &monitor{
		m:        m,
		commands: commandList(),
		in:       in,
		out:      out,
		tick:     tick,
		tree:     prefixtree.New(),
		exact:    make(map[string]*command),
	}
	aliases := map[string]string{"step": "s", "continue": "c", "regs": "r"}
	for i := range mon.commands {
		cmd := &mon.commands[i]
		mon.tree.Add(cmd.name, cmd)
		mon.exact[cmd.name] = cmd
		// Single-letter shortcuts that would otherwise be ambiguous.
		if alias, ok := aliases[cmd.name]; ok {
			mon.exact[alias] = cmd
		}
	}
	if m.acia != nil {
		m.acia.SetOutput(func(b byte) { fmt.Fprintf(out, "%c", b) })
	}
	return mon
}

// lookup resolves a command by full name, alias or unique prefix. Full names
// win over longer commands they prefix ("step" vs "stepto").
func (mon *monitor) lookup(name string) (*command, error) {
	name = strings.ToLower(name)
	if cmd, ok := mon.exact[name]; ok {
		return cmd, nil
	}
	v, err := mon.tree.Find(name)
	if err != nil {
		return nil, err
	}
	return v.(*command), nil
}

// Run reads commands until quit or end of input.
func (mon *monitor) Run() error {
	scanner := bufio.NewScanner(mon.in)
	for {
		fmt.Fprintf(mon.out, "%06X> ", mon.m.engine.CPU().ProgramCounter())
		if !scanner.Scan() {
			fmt.Fprintln(mon.out)
			return scanner.Err()
		}
		if err := mon.exec(scanner.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(mon.out, "error: %v\n", err)
		}
	}
}

func (mon *monitor) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, err := mon.lookup(fields[0])
	switch {
	case err == prefixtree.ErrPrefixNotFound:
		return errors.Errorf("unknown command %q", fields[0])
	case err == prefixtree.ErrPrefixAmbiguous:
		return errors.Errorf("ambiguous command %q", fields[0])
	case err != nil:
		return err
	}
	return cmd.handler(mon, fields[1:])
}

func parseAddress(s string) (uint32, error) {
	v, ok := six5go.ParseNumber(s)
	if !ok || v > six5go.LONG_MASK {
		return 0, errors.Errorf("invalid address %q", s)
	}
	return uint32(v), nil
}

// ------------------------------------------------------------------------------
// Execution
// ------------------------------------------------------------------------------

func (mon *monitor) cmdStep(args []string) error {
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errors.Errorf("invalid count %q", args[0])
		}
		count = n
	}
	e := mon.m.engine
	for i := 0; i < count; i++ {
		e.Step()
		if e.Fault() != nil {
			break
		}
	}
	mon.reportFault()
	mon.printRegs()
	return nil
}

func (mon *monitor) cmdStepTo(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: stepto addr")
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	stop := mon.interruptible()
	defer stop()
	mon.m.engine.StepTo(addr)
	mon.reportFault()
	mon.printRegs()
	return nil
}

func (mon *monitor) cmdContinue(args []string) error {
	mon.m.engine.Continue()
	mon.drive()
	return nil
}

func (mon *monitor) cmdUntil(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: until lua-expr")
	}
	pred, err := six5go.NewLuaPredicate(strings.Join(args, " "))
	if err != nil {
		return err
	}
	defer pred.Close()

	mon.m.engine.ContinueUntil(pred.Predicate())
	mon.drive()
	if err := pred.Err(); err != nil {
		fmt.Fprintf(mon.out, "predicate error: %v\n", err)
	}
	return nil
}

// interruptible makes Ctrl-C pause the engine until the returned function
// is called.
func (mon *monitor) interruptible() func() {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt)
	go func() {
		select {
		case <-sig:
			mon.m.engine.Pause()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sig)
		close(done)
	}
}

// drive ticks the engine until the run halts.
func (mon *monitor) drive() {
	stop := mon.interruptible()
	defer stop()

	e := mon.m.engine
	for {
		switch e.Tick() {
		case six5go.StatusHalted, six5go.StatusTerminated:
			fmt.Fprintf(mon.out, "stopped: %s\n", e.StopReason())
			mon.reportFault()
			mon.printRegs()
			return
		case six5go.StatusWaiting:
			time.Sleep(mon.tick)
		}
	}
}

func (mon *monitor) reportFault() {
	if err := mon.m.engine.Fault(); err != nil {
		fmt.Fprintf(mon.out, "fault: %v\n", err)
	}
}

// ------------------------------------------------------------------------------
// Breakpoints
// ------------------------------------------------------------------------------

func (mon *monitor) cmdBreak(args []string) error {
	bps := mon.m.breakpoints
	if len(args) == 0 {
		list := bps.List()
		if len(list) == 0 {
			fmt.Fprintln(mon.out, "no breakpoints")
		}
		for _, bp := range list {
			fmt.Fprintln(mon.out, bp)
		}
		return nil
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		fmt.Fprintf(mon.out, "breakpoint %s\n", bps.Add(addr))
		return nil
	}
	bp, err := bps.AddConditional(addr, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(mon.out, "breakpoint %s\n", bp)
	return nil
}

func (mon *monitor) cmdClear(args []string) error {
	if len(args) == 0 {
		mon.m.breakpoints.Clear()
		return nil
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	if !mon.m.breakpoints.Remove(addr) {
		return errors.Errorf("no breakpoint at $%06X", addr)
	}
	return nil
}

// ------------------------------------------------------------------------------
// Inspection
// ------------------------------------------------------------------------------

func (mon *monitor) cmdRegs(args []string) error {
	cpu := mon.m.engine.CPU()
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Errorf("expected name=value, got %q", arg)
		}
		v, ok := six5go.ParseNumber(value)
		if !ok {
			return errors.Errorf("invalid value %q", value)
		}
		if !cpu.SetRegister(name, v) {
			return errors.Errorf("unknown register %q", name)
		}
	}
	mon.printRegs()
	return nil
}

func (mon *monitor) printRegs() {
	cpu := mon.m.engine.CPU()
	var b strings.Builder
	for i, reg := range cpu.Registers() {
		if i > 0 {
			b.WriteByte(' ')
		}
		digits := (reg.BitWidth + 3) / 4
		fmt.Fprintf(&b, "%s=%0*X", reg.Name, digits, reg.Value)
	}
	fmt.Fprintf(mon.out, "%s  %s\n", b.String(), flagString(cpu))

	pc := cpu.ProgramCounter()
	op := cpu.Memory().Peek(pc)
	inst := cpu.Table()[op]
	fmt.Fprintf(mon.out, "%06X  %02X  %s %s\n", pc, op, inst.Mnemonic, inst.Mode)
}

func flagString(cpu *six5go.CPU) string {
	names := "NVMXDIZC"
	if cpu.Variant() != six5go.Variant65816 || cpu.Mode == six5go.MODE_EMULATION {
		names = "NV-BDIZC"
	}
	out := []byte(names)
	for i := range out {
		if cpu.P&(0x80>>i) == 0 {
			out[i] = '.'
		}
	}
	return string(out)
}

func (mon *monitor) cmdMem(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: mem addr [len]")
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	length := uint64(64)
	if len(args) > 1 {
		n, ok := six5go.ParseNumber(args[1])
		if !ok || n == 0 {
			return errors.Errorf("invalid length %q", args[1])
		}
		length = n
	}

	mem := mon.m.engine.Memory()
	length = min(length, uint64(mem.Size()))
	for row := uint64(0); row < length; row += 16 {
		fmt.Fprintf(mon.out, "%06X ", uint64(addr)+row)
		var ascii [16]byte
		n := min(16, length-row)
		for i := uint64(0); i < n; i++ {
			v := mem.Peek(addr + uint32(row+i))
			fmt.Fprintf(mon.out, " %02X", v)
			if v >= 0x20 && v < 0x7F {
				ascii[i] = v
			} else {
				ascii[i] = '.'
			}
		}
		fmt.Fprintf(mon.out, "%*s  %s\n", int(16-n)*3, "", ascii[:n])
	}
	return nil
}

func (mon *monitor) cmdPoke(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: poke addr byte ...")
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	mem := mon.m.engine.Memory()
	for i, arg := range args[1:] {
		v, ok := six5go.ParseNumber(arg)
		if !ok || v > 0xFF {
			return errors.Errorf("invalid byte %q", arg)
		}
		mem.Poke(addr+uint32(i), byte(v))
	}
	return nil
}

func (mon *monitor) cmdBacktrace(args []string) error {
	frames := mon.m.callStack.Backtrace()
	if len(frames) > 0 {
		for i, f := range frames {
			fmt.Fprintf(mon.out, "#%d %s\n", i, f)
		}
		return nil
	}
	for i, ret := range six5go.StackBacktrace(mon.m.engine.CPU(), 8) {
		fmt.Fprintf(mon.out, "?%d $%06X\n", i, ret)
	}
	return nil
}

// ------------------------------------------------------------------------------
// Devices and control
// ------------------------------------------------------------------------------

func (mon *monitor) cmdInput(args []string) error {
	if mon.m.acia == nil {
		return errors.New("no ACIA attached")
	}
	mon.m.acia.EnqueueString(strings.Join(args, " ") + "\r")
	return nil
}

func (mon *monitor) cmdIRQ(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.New("usage: irq on|off")
	}
	mon.m.engine.CPU().SetIRQ(args[0] == "on")
	return nil
}

func (mon *monitor) cmdNMI(args []string) error {
	mon.m.engine.CPU().TriggerNMI()
	return nil
}

func (mon *monitor) cmdReset(args []string) error {
	mon.m.engine.Reset()
	mon.printRegs()
	return nil
}

func (mon *monitor) cmdHelp(args []string) error {
	for _, c := range mon.commands {
		fmt.Fprintf(mon.out, "  %-26s %s\n", c.usage, c.description)
	}
	return nil
}

func (mon *monitor) cmdQuit(args []string) error {
	return errQuit
}
