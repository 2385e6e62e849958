package six5go

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadImageDefaults(t *testing.T) {
	e := NewEngine(Variant6502)
	if err := e.LoadImage([]byte{0xA9, 0x01}, LoadConfig{}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if got := e.Memory().PeekWord(RESET_VECTOR); got != DefaultLoadAddr {
		t.Fatalf("reset vector=$%04X, want $%04X", got, DefaultLoadAddr)
	}
	if e.CPU().PC != DefaultLoadAddr {
		t.Fatalf("PC=$%04X, want $%04X", e.CPU().PC, DefaultLoadAddr)
	}
	if e.Memory().Peek(DefaultLoadAddr) != 0xA9 {
		t.Fatalf("image not copied")
	}
}

func TestLoadImageEntry(t *testing.T) {
	e := NewEngine(Variant65C02)
	if err := e.LoadImage(make([]byte, 0x20), LoadConfig{Addr: 0x1000, Entry: 0x1010}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if e.CPU().PC != 0x1010 {
		t.Fatalf("PC=$%04X, want $1010", e.CPU().PC)
	}
}

func TestLoadImageKeepVectors(t *testing.T) {
	e := NewEngine(Variant6502)
	e.Memory().PokeWord(RESET_VECTOR, 0x4000)

	if err := e.LoadImage([]byte{0xEA}, LoadConfig{Addr: 0x0200, KeepVectors: true}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if e.CPU().PC != 0x4000 {
		t.Fatalf("PC=$%04X, want the image's own vector $4000", e.CPU().PC)
	}
}

func TestLoadImageCarriesVectorTable(t *testing.T) {
	e := NewEngine(Variant6502)
	image := make([]byte, 0x100)
	image[0xFC] = 0x34 // reset vector at $FFFC
	image[0xFD] = 0x12

	if err := e.LoadImage(image, LoadConfig{Addr: 0xFF00, KeepVectors: true}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if e.CPU().PC != 0x1234 {
		t.Fatalf("PC=$%04X, want $1234", e.CPU().PC)
	}
}

func TestLoadImageTooLarge(t *testing.T) {
	e := NewEngine(Variant6502)
	err := e.LoadImage(make([]byte, 0x200), LoadConfig{Addr: 0xFF00})
	if !errors.Is(err, ErrProgramTooLarge) {
		t.Fatalf("err=%v, want ErrProgramTooLarge", err)
	}
}

func TestLoadImageEntryOutsideBank0(t *testing.T) {
	e := NewEngine(Variant65816)
	if err := e.LoadImage([]byte{0xEA}, LoadConfig{Addr: 0x010000}); err == nil {
		t.Fatalf("accepted an entry the reset vector cannot reach")
	}
	if e.Memory().Peek(0x010000) != 0 {
		t.Fatalf("rejected image was still written to memory")
	}
	if err := e.LoadImage([]byte{0xEA}, LoadConfig{Addr: 0x010000, KeepVectors: true}); err != nil {
		t.Fatalf("LoadImage with KeepVectors: %v", err)
	}
	if e.Memory().Peek(0x010000) != 0xEA {
		t.Fatalf("image not copied to bank 1")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.bin")
	if err := os.WriteFile(path, []byte{0xA2, 0x07}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := NewEngine(Variant6502)
	if err := e.LoadFile(path, LoadConfig{Addr: 0x0300}); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	e.Step()
	if e.CPU().X != 0x07 {
		t.Fatalf("X=%d, want 7", e.CPU().X)
	}

	if err := e.LoadFile(filepath.Join(t.TempDir(), "missing.bin"), LoadConfig{}); err == nil {
		t.Fatalf("LoadFile accepted a missing file")
	}
}
