// terminal_host.go - Raw terminal adapter for the ACIA console

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

//go:build !windows

package main

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/intuitionamiga/six5go"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// QUIT_KEY (Ctrl-]) ends a console session instead of reaching the ACIA.
const QUIT_KEY = 0x1D

// TerminalHost reads raw stdin into the ACIA and writes its output to the
// console.
type TerminalHost struct {
	acia   *six5go.ACIA
	in     *os.File
	out    io.Writer
	stopCh chan struct{}
	done   chan struct{}
	quit   chan struct{}

	stopped  sync.Once
	quitOnce sync.Once
	outMu    sync.Mutex

	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

func NewTerminalHost(acia *six5go.ACIA, in *os.File, out io.Writer) *TerminalHost {
	return &TerminalHost{
		acia:   acia,
		in:     in,
		out:    out,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
}

// Start puts the terminal in raw mode, makes stdin non-blocking and begins
// reading in a goroutine. Input that is not a terminal is read as is.
func (h *TerminalHost) Start() error {
	h.fd = int(h.in.Fd())

	if term.IsTerminal(h.fd) {
		oldState, err := term.MakeRaw(h.fd)
		if err != nil {
			return errors.Wrap(err, "terminal: raw mode")
		}
		h.oldTermState = oldState
	}

	if err := unix.SetNonblock(h.fd, true); err != nil {
		h.restore()
		return errors.Wrap(err, "terminal: nonblocking stdin")
	}
	h.nonblockSet = true

	go h.readLoop()
	return nil
}

func (h *TerminalHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 64)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := unix.Read(h.fd, buf)
		for i := 0; i < n; i++ {
			b := buf[i]
			if b == QUIT_KEY {
				h.quitOnce.Do(func() { close(h.quit) })
				continue
			}
			// Backspace arrives as DEL from most terminals.
			if b == 0x7F {
				b = 0x08
			}
			h.acia.Enqueue(b)
		}
		switch {
		case err == unix.EAGAIN || err == unix.EWOULDBLOCK:
			time.Sleep(5 * time.Millisecond)
		case err != nil:
			return
		case n == 0:
			if h.oldTermState == nil {
				// End of piped input.
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Quit is closed when the quit key is pressed.
func (h *TerminalHost) Quit() <-chan struct{} { return h.quit }

// Emit prints one transmitted byte. Raw mode needs CR before LF.
func (h *TerminalHost) Emit(b byte) {
	h.outMu.Lock()
	defer h.outMu.Unlock()
	if b == '\n' && h.oldTermState != nil {
		_, _ = h.out.Write([]byte{'\r', '\n'})
		return
	}
	_, _ = h.out.Write([]byte{b})
}

// Stop ends the reader and restores stdin.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	h.restore()
}

func (h *TerminalHost) restore() {
	if h.nonblockSet {
		_ = unix.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
