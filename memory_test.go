package six5go

import "testing"

func TestMemorySizeRoundsToPowerOfTwo(t *testing.T) {
	mem := NewMemory(3000)
	if mem.Size() != 4096 {
		t.Fatalf("Size=%d, want 4096", mem.Size())
	}
	if mem.Mask() != 0x0FFF {
		t.Fatalf("Mask=0x%X, want 0x0FFF", mem.Mask())
	}
}

func TestMemoryVariantSizes(t *testing.T) {
	if got := NewMemoryForVariant(Variant6502).Size(); got != MEMORY_SIZE_6502 {
		t.Fatalf("6502 size=%d", got)
	}
	if got := NewMemoryForVariant(Variant65C02).Size(); got != MEMORY_SIZE_6502 {
		t.Fatalf("65C02 size=%d", got)
	}
	if got := NewMemoryForVariant(Variant65816).Size(); got != MEMORY_SIZE_65816 {
		t.Fatalf("65816 size=%d", got)
	}
}

func TestMemoryAddressesAreMasked(t *testing.T) {
	mem := NewMemory(MEMORY_SIZE_6502)
	mem.Write(0x1_2345, 0xAB)
	if got := mem.Read(0x2345); got != 0xAB {
		t.Fatalf("Read(0x2345)=0x%02X, want 0xAB", got)
	}
}

func TestMemoryReadObserverRunsFirst(t *testing.T) {
	mem := NewMemory(MEMORY_SIZE_6502)
	calls := 0
	mem.SubscribeToRead(0x8000, func(addr uint32) {
		calls++
		mem.Poke(addr, 0x5A)
	})

	if got := mem.Read(0x8000); got != 0x5A {
		t.Fatalf("Read=0x%02X, want the observer's 0x5A", got)
	}
	if calls != 1 {
		t.Fatalf("observer calls=%d, want 1", calls)
	}

	mem.Peek(0x8000)
	if calls != 1 {
		t.Fatalf("Peek triggered the observer")
	}

	mem.SubscribeToRead(0x8000, nil)
	mem.Read(0x8000)
	if calls != 1 {
		t.Fatalf("removed observer still called")
	}
}

func TestMemoryWriteObserverReplacesStore(t *testing.T) {
	mem := NewMemory(MEMORY_SIZE_6502)
	var seen []byte
	mem.SubscribeToWrite(0x9000, func(addr uint32, value byte) {
		seen = append(seen, value)
	})

	mem.Write(0x9000, 0x11)
	mem.Write(0x9001, 0x22)

	if mem.Peek(0x9000) != 0 {
		t.Fatalf("observed write reached memory")
	}
	if mem.Peek(0x9001) != 0x22 {
		t.Fatalf("unobserved write lost")
	}
	if len(seen) != 1 || seen[0] != 0x11 {
		t.Fatalf("observer saw %v, want [0x11]", seen)
	}

	mem.Poke(0x9000, 0x33)
	if len(seen) != 1 || mem.Peek(0x9000) != 0x33 {
		t.Fatalf("Poke must bypass the observer")
	}
}

func TestMemoryLoadWrapsAndWords(t *testing.T) {
	mem := NewMemory(MEMORY_SIZE_6502)
	mem.Load(0xFFFF, []byte{0x34, 0x12})
	if mem.Peek(0xFFFF) != 0x34 || mem.Peek(0x0000) != 0x12 {
		t.Fatalf("Load did not wrap at the top of memory")
	}

	mem.PokeWord(0x0200, 0xBEEF)
	if got := mem.PeekWord(0x0200); got != 0xBEEF {
		t.Fatalf("PeekWord=0x%04X, want 0xBEEF", got)
	}
	if mem.Peek(0x0200) != 0xEF {
		t.Fatalf("words are not little-endian")
	}

	mem.Reset()
	if mem.PeekWord(0x0200) != 0 {
		t.Fatalf("Reset left data behind")
	}
}
