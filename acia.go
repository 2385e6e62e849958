// acia.go - 6551-style serial console

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
acia.go - 6551-style serial console attached through memory observers

The ACIA occupies four consecutive addresses from its base:

    +0  DATA     read: next received byte   write: transmit byte
    +1  STATUS   read: status bits          write: programmed reset
    +2  COMMAND  read/write
    +3  CONTROL  read/write (baud/format, stored only)

Status Register:

    bit 7  IRQ    receiver interrupt pending (cleared by reading STATUS)
    bit 4  TDRE   transmit register empty (always 1)
    bit 3  RDRF   receive register full
    bit 2  OVRN   a byte was dropped because the receive buffer was full

Command Register:

    bit 0  DTR    1 = receiver enabled
    bit 1  IRD    1 = receiver interrupt disabled

Received bytes arrive from the host (another goroutine) through Enqueue and
are buffered in a ring guarded by a mutex. Register access happens on the
engine's thread through the memory observers; the engine polls the device
after every step so the IRQ line follows the receive state.
*/

package six5go

import (
	"sync"
)

const (
	ACIA_DATA    = 0
	ACIA_STATUS  = 1
	ACIA_COMMAND = 2
	ACIA_CONTROL = 3

	ACIA_STATUS_IRQ  = 0x80
	ACIA_STATUS_TDRE = 0x10
	ACIA_STATUS_RDRF = 0x08
	ACIA_STATUS_OVRN = 0x04

	ACIA_CMD_DTR = 0x01
	ACIA_CMD_IRD = 0x02

	DefaultACIABase = 0x8800
)

type ACIA struct {
	base uint32
	cpu  *CPU
	mem  *Memory

	mu       sync.Mutex
	rxBuf    [256]byte
	rxHead   int
	rxLen    int
	overrun  bool
	irqLatch bool
	command  byte
	control  byte
	outBuf   []byte
	onOutput func(byte)
}

// NewACIA creates a device at base. It does nothing until attached.
func NewACIA(base uint32) *ACIA {
	return &ACIA{
		base:    base,
		command: ACIA_CMD_IRD,
		outBuf:  make([]byte, 0, 256),
	}
}

func (a *ACIA) Base() uint32 { return a.base }

// Attach maps the registers into the engine's memory and registers the
// device as a poller.
func (a *ACIA) Attach(e *Engine) {
	a.cpu = e.CPU()
	a.mem = e.Memory()
	for reg := uint32(0); reg < 4; reg++ {
		addr := a.base + reg
		a.mem.SubscribeToRead(addr, a.handleRead)
		a.mem.SubscribeToWrite(addr, a.handleWrite)
	}
	e.AddPoller(a)
}

// SetOutput delivers transmitted bytes to fn instead of the output buffer.
// fn runs on the engine's thread.
func (a *ACIA) SetOutput(fn func(byte)) {
	a.mu.Lock()
	a.onOutput = fn
	a.mu.Unlock()
}

// DrainOutput returns and clears the buffered transmitted bytes.
func (a *ACIA) DrainOutput() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := append([]byte(nil), a.outBuf...)
	a.outBuf = a.outBuf[:0]
	return out
}

// Enqueue adds a received byte. A full buffer drops the byte and sets the
// overrun bit.
func (a *ACIA) Enqueue(b byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.rxLen == len(a.rxBuf) {
		a.overrun = true
		return
	}
	a.rxBuf[(a.rxHead+a.rxLen)%len(a.rxBuf)] = b
	a.rxLen++
	a.irqLatch = true
}

func (a *ACIA) EnqueueString(s string) {
	for i := 0; i < len(s); i++ {
		a.Enqueue(s[i])
	}
}

// Pending reports the number of received bytes not yet read.
func (a *ACIA) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rxLen
}

// Poll drives the ACIA's input on the processor's IRQ line from the receiver
// state. Other sources on the line are left alone.
func (a *ACIA) Poll() {
	if a.cpu == nil {
		return
	}
	a.mu.Lock()
	irq := a.irqLatch && a.rxLen > 0 && a.receiverIRQEnabledLocked()
	a.mu.Unlock()
	a.cpu.SetIRQSource(IRQSourceACIA, irq)
}

func (a *ACIA) receiverIRQEnabledLocked() bool {
	return a.command&ACIA_CMD_DTR != 0 && a.command&ACIA_CMD_IRD == 0
}

func (a *ACIA) statusLocked() byte {
	status := byte(ACIA_STATUS_TDRE)
	if a.rxLen > 0 {
		status |= ACIA_STATUS_RDRF
	}
	if a.overrun {
		status |= ACIA_STATUS_OVRN
	}
	if a.irqLatch && a.rxLen > 0 && a.receiverIRQEnabledLocked() {
		status |= ACIA_STATUS_IRQ
	}
	return status
}

// handleRead refreshes the backing byte before the processor sees it.
func (a *ACIA) handleRead(addr uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var value byte
	switch (addr - a.base) & 3 {
	case ACIA_DATA:
		if a.rxLen > 0 {
			value = a.rxBuf[a.rxHead]
			a.rxHead = (a.rxHead + 1) % len(a.rxBuf)
			a.rxLen--
		}
		a.overrun = false
	case ACIA_STATUS:
		value = a.statusLocked()
		a.irqLatch = false
	case ACIA_COMMAND:
		value = a.command
	case ACIA_CONTROL:
		value = a.control
	}
	a.mem.Poke(addr, value)
}

func (a *ACIA) handleWrite(addr uint32, value byte) {
	var out func(byte)

	a.mu.Lock()
	switch (addr - a.base) & 3 {
	case ACIA_DATA:
		if a.onOutput != nil {
			out = a.onOutput
		} else {
			a.outBuf = append(a.outBuf, value)
		}
	case ACIA_STATUS:
		// Programmed reset: clear overrun, disable the receiver IRQ, keep
		// the parity bits of the command register.
		a.overrun = false
		a.command = a.command&0xE0 | ACIA_CMD_IRD
	case ACIA_COMMAND:
		a.command = value
	case ACIA_CONTROL:
		a.control = value
	}
	a.mu.Unlock()

	if out != nil {
		out(value)
	}
}
