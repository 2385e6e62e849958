// loader.go - Raw binary program loader

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
	"os"

	"github.com/pkg/errors"
)

const DefaultLoadAddr = 0x0600

// LoadConfig places a raw program image in memory.
type LoadConfig struct {
	Addr  uint32 // load address, DefaultLoadAddr when zero
	Entry uint32 // start address, Addr when zero

	// KeepVectors leaves the reset vector alone, for images that carry
	// their own vector table.
	KeepVectors bool
}

// LoadFile reads a raw binary and loads it with LoadImage.
func (e *Engine) LoadFile(path string, cfg LoadConfig) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "load program")
	}
	return errors.Wrap(e.LoadImage(program, cfg), path)
}

// LoadImage copies program into memory, points the reset vector at the
// entry address and resets the engine. The image must fit below the top of
// memory; it is written without triggering observers.
func (e *Engine) LoadImage(program []byte, cfg LoadConfig) error {
	addr := cfg.Addr
	if addr == 0 {
		addr = DefaultLoadAddr
	}
	entry := cfg.Entry
	if entry == 0 {
		entry = addr
	}

	end := uint64(addr) + uint64(len(program))
	if end > uint64(e.mem.Size()) {
		return errors.Wrapf(ErrProgramTooLarge, "end=$%X, limit=$%X", end, e.mem.Size())
	}

	if !cfg.KeepVectors && entry > WORD_MASK {
		return errors.Errorf("entry $%X is outside bank 0, the reset vector cannot reach it", entry)
	}

	e.mem.Load(addr, program)
	if !cfg.KeepVectors {
		e.mem.PokeWord(RESET_VECTOR, uint16(entry))
	}

	e.Reset()
	return nil
}
