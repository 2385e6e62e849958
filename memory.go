// memory.go - Flat byte-addressed memory with read and write observers

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
memory.go - Addressable Memory for the six5go processors

Memory is a single contiguous byte array sized to the processor variant's
address space, plus a sparse table of per-address observers used to model
memory-mapped peripherals.

Core Features:

    64KB for the 6502 family, 2^18 bytes by default for the 65816.
    Read observers run before the default read so a device can refresh the
    backing byte (for example a receive register) before the CPU sees it.
    Write observers replace the default write; a device that wants the byte
    stored calls Poke itself.
    Every address is masked to the array size before indexing.

Concurrency:

    Memory carries no lock. The processor and every observer run on the
    engine's thread of control; devices that receive data from other
    goroutines guard their own state.
*/

package six5go

// ReadObserver is called before the byte at addr is read.
type ReadObserver func(addr uint32)

// WriteObserver is called in place of storing value at addr.
type WriteObserver func(addr uint32, value byte)

type Memory struct {
	data    []byte
	mask    uint32
	onRead  map[uint32]ReadObserver
	onWrite map[uint32]WriteObserver
}

// NewMemory allocates size bytes. size is rounded up to a power of two so
// address masking stays a single AND.
func NewMemory(size int) *Memory {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Memory{
		data:    make([]byte, n),
		mask:    uint32(n - 1),
		onRead:  make(map[uint32]ReadObserver),
		onWrite: make(map[uint32]WriteObserver),
	}
}

// NewMemoryForVariant allocates the default address space for v.
func NewMemoryForVariant(v Variant) *Memory {
	if v == Variant65816 {
		return NewMemory(MEMORY_SIZE_65816)
	}
	return NewMemory(MEMORY_SIZE_6502)
}

func (mem *Memory) Size() int { return len(mem.data) }

func (mem *Memory) Mask() uint32 { return mem.mask }

// SubscribeToRead registers fn for reads of addr. A later subscription for
// the same address replaces the earlier one; a nil fn removes it.
func (mem *Memory) SubscribeToRead(addr uint32, fn ReadObserver) {
	addr &= mem.mask
	if fn == nil {
		delete(mem.onRead, addr)
		return
	}
	mem.onRead[addr] = fn
}

// SubscribeToWrite registers fn for writes to addr. A nil fn removes it.
func (mem *Memory) SubscribeToWrite(addr uint32, fn WriteObserver) {
	addr &= mem.mask
	if fn == nil {
		delete(mem.onWrite, addr)
		return
	}
	mem.onWrite[addr] = fn
}

// Read returns the byte at addr, letting any read observer run first.
func (mem *Memory) Read(addr uint32) byte {
	addr &= mem.mask
	if len(mem.onRead) != 0 {
		if fn, ok := mem.onRead[addr]; ok {
			fn(addr)
		}
	}
	return mem.data[addr]
}

// Write stores value at addr unless a write observer claims the address.
func (mem *Memory) Write(addr uint32, value byte) {
	addr &= mem.mask
	if len(mem.onWrite) != 0 {
		if fn, ok := mem.onWrite[addr]; ok {
			fn(addr, value)
			return
		}
	}
	mem.data[addr] = value
}

// Peek reads without triggering observers.
func (mem *Memory) Peek(addr uint32) byte {
	return mem.data[addr&mem.mask]
}

// Poke writes without triggering observers.
func (mem *Memory) Poke(addr uint32, value byte) {
	mem.data[addr&mem.mask] = value
}

// Load copies data starting at addr, wrapping at the end of the array.
func (mem *Memory) Load(addr uint32, data []byte) {
	for i, b := range data {
		mem.data[(addr+uint32(i))&mem.mask] = b
	}
}

// PeekWord reads a little-endian word without triggering observers.
func (mem *Memory) PeekWord(addr uint32) uint16 {
	return uint16(mem.Peek(addr)) | uint16(mem.Peek(addr+1))<<8
}

// PokeWord writes a little-endian word without triggering observers.
func (mem *Memory) PokeWord(addr uint32, value uint16) {
	mem.Poke(addr, byte(value))
	mem.Poke(addr+1, byte(value>>8))
}

// Reset clears memory. Observers stay registered.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}
