// terminal_host_windows.go - Terminal adapter for the ACIA console on Windows

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

//go:build windows

package main

import (
	"io"
	"os"
	"sync"

	"github.com/intuitionamiga/six5go"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const QUIT_KEY = 0x1D

// TerminalHost on Windows uses a blocking reader. Stop restores the console
// but cannot interrupt a pending read.
type TerminalHost struct {
	acia *six5go.ACIA
	in   *os.File
	out  io.Writer
	quit chan struct{}

	quitOnce sync.Once
	outMu    sync.Mutex

	fd           int
	oldTermState *term.State
}

func NewTerminalHost(acia *six5go.ACIA, in *os.File, out io.Writer) *TerminalHost {
	return &TerminalHost{acia: acia, in: in, out: out, quit: make(chan struct{})}
}

func (h *TerminalHost) Start() error {
	h.fd = int(h.in.Fd())
	if term.IsTerminal(h.fd) {
		oldState, err := term.MakeRaw(h.fd)
		if err != nil {
			return errors.Wrap(err, "terminal: raw mode")
		}
		h.oldTermState = oldState
	}

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := h.in.Read(buf)
			for i := 0; i < n; i++ {
				if buf[i] == QUIT_KEY {
					h.quitOnce.Do(func() { close(h.quit) })
					continue
				}
				h.acia.Enqueue(buf[i])
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

func (h *TerminalHost) Quit() <-chan struct{} { return h.quit }

func (h *TerminalHost) Emit(b byte) {
	h.outMu.Lock()
	defer h.outMu.Unlock()
	if b == '\n' && h.oldTermState != nil {
		_, _ = h.out.Write([]byte{'\r', '\n'})
		return
	}
	_, _ = h.out.Write([]byte{b})
}

func (h *TerminalHost) Stop() {
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
