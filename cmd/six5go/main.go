// main.go - six5go command line front end

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
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/intuitionamiga/six5go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func boilerPlate() {
	fmt.Println("six5go - 6502 / 65C02 / 65816 emulator")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/six5go")
	fmt.Println("License: GPLv3 or later")
}

type options struct {
	variant  six5go.Variant
	program  string
	addr     uint32
	entry    uint32
	aciaBase uint32
	acia     bool
	monitor  bool
	tick     time.Duration
	batch    int
	verbose  bool
}

// machine is the engine with the debugging aids and the console attached.
type machine struct {
	engine      *six5go.Engine
	breakpoints *six5go.BreakpointSet
	callStack   *six5go.CallStack
	acia        *six5go.ACIA
	logger      *slog.Logger
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stdout)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	m, err := newMachine(opts, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if opts.monitor {
		boilerPlate()
		mon := newMonitor(m, os.Stdin, os.Stdout, opts.tick)
		if err := mon.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runConsole(context.Background(), m, opts.tick); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, usageOut io.Writer) (options, error) {
	var (
		opts        options
		variantName string
		loadAddr    string
		entryAddr   string
		aciaAddr    string
	)

	flagSet := flag.NewFlagSet("six5go", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&variantName, "variant", "65c02", "processor: 6502, 65c02 or 65816")
	flagSet.StringVar(&opts.program, "load", "", "raw binary to load")
	flagSet.StringVar(&loadAddr, "addr", "0x0600", "load address (hex or decimal)")
	flagSet.StringVar(&entryAddr, "entry", "", "entry address, defaults to the load address")
	flagSet.StringVar(&aciaAddr, "acia", "0x8800", "ACIA base address, \"off\" to disable")
	flagSet.BoolVar(&opts.monitor, "monitor", false, "start the interactive monitor")
	flagSet.DurationVar(&opts.tick, "tick", six5go.DefaultTickInterval, "scheduler tick interval")
	flagSet.IntVar(&opts.batch, "batch", six5go.DefaultBatchSize, "instructions per tick")
	flagSet.BoolVar(&opts.verbose, "v", false, "debug logging")

	flagSet.Usage = func() {
		flagSet.SetOutput(usageOut)
		fmt.Fprintln(usageOut, "Usage: six5go [-variant 65c02] [-addr 0x0600] [-entry addr] [-acia 0x8800|off] [-monitor] [-load] file")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
		}
		return opts, err
	}
	if opts.program == "" {
		opts.program = flagSet.Arg(0)
	}

	var err error
	if opts.variant, err = six5go.ParseVariant(variantName); err != nil {
		return opts, err
	}
	if opts.addr, err = parseAddressFlag("addr", loadAddr); err != nil {
		return opts, err
	}
	if entryAddr != "" {
		if opts.entry, err = parseAddressFlag("entry", entryAddr); err != nil {
			return opts, err
		}
	}
	if !strings.EqualFold(aciaAddr, "off") {
		opts.acia = true
		if opts.aciaBase, err = parseAddressFlag("acia", aciaAddr); err != nil {
			return opts, err
		}
	}
	if opts.program == "" && !opts.monitor {
		return opts, errors.New("run mode requires a program, use -load or -monitor")
	}
	return opts, nil
}

func parseAddressFlag(name, value string) (uint32, error) {
	parsed, err := strconv.ParseUint(strings.Replace(value, "$", "0x", 1), 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "-%s", name)
	}
	if parsed > six5go.LONG_MASK {
		return 0, errors.Errorf("-%s: address out of range: 0x%X", name, parsed)
	}
	return uint32(parsed), nil
}

func newMachine(opts options, logger *slog.Logger) (*machine, error) {
	m := &machine{logger: logger}
	m.engine = six5go.NewEngine(opts.variant,
		six5go.WithBatchSize(opts.batch),
		six5go.WithLogger(logger),
		six5go.WithPerfReport(opts.verbose),
	)
	cpu := m.engine.CPU()
	m.breakpoints = six5go.NewBreakpointSet(cpu)
	m.callStack = six5go.NewCallStack(cpu)
	m.engine.SetBreakpoints(m.breakpoints)
	m.engine.SetCallStack(m.callStack)

	if opts.acia {
		if int(opts.aciaBase)+4 > m.engine.Memory().Size() {
			return nil, errors.Errorf("ACIA at $%X is outside memory", opts.aciaBase)
		}
		m.acia = six5go.NewACIA(opts.aciaBase)
		m.acia.Attach(m.engine)
	}

	if opts.program != "" {
		cfg := six5go.LoadConfig{Addr: opts.addr, Entry: opts.entry}
		if err := m.engine.LoadFile(opts.program, cfg); err != nil {
			return nil, err
		}
		logger.Info("loaded", "file", opts.program, "variant", opts.variant, "addr", fmt.Sprintf("$%04X", opts.addr))
	}
	return m, nil
}

// runConsole runs the program with the terminal attached to the ACIA until
// it halts or Ctrl-] is pressed.
func runConsole(ctx context.Context, m *machine, tick time.Duration) error {
	if tick <= 0 {
		tick = six5go.DefaultTickInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if m.acia != nil {
		host := NewTerminalHost(m.acia, os.Stdin, os.Stdout)
		if err := host.Start(); err != nil {
			return err
		}
		defer host.Stop()
		m.acia.SetOutput(host.Emit)

		g.Go(func() error {
			select {
			case <-host.Quit():
				cancel()
			case <-ctx.Done():
			}
			return nil
		})
	}

	m.engine.Continue()

	g.Go(func() error {
		err := m.engine.Run(ctx, tick)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	// The run loop keeps ticking a halted engine, so watch for the halt here.
	g.Go(func() error {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if m.engine.State() != six5go.StateBreaking {
					continue
				}
				cancel()
				if err := m.engine.Fault(); err != nil {
					return err
				}
				m.logger.Info("stopped", "reason", m.engine.StopReason())
				return nil
			}
		}
	})

	return g.Wait()
}
