// debug_lua.go - Lua stop predicates and breakpoint conditions

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
	"strings"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// LuaPredicate evaluates a Lua expression against the processor state.
//
// The expression sees the registers as globals (A, B, C, X, Y, SP, PC, PC24,
// P, DBR, PBR, DPR, E, CYCLES) and two helpers:
//
//	peek(addr)   byte at addr, read without triggering observers
//	flag(name)   true when the named status flag is set (N V M X D I Z C B)
//
// Only false and nil count as false, so 0 is a true result.
// A LuaPredicate is not safe for concurrent use.
type LuaPredicate struct {
	source string
	state  *lua.LState
	fn     *lua.LFunction
	cpu    *CPU
	err    error
}

var luaFlags = map[string]byte{
	"C": CARRY_FLAG,
	"Z": ZERO_FLAG,
	"I": INTERRUPT_FLAG,
	"D": DECIMAL_FLAG,
	"B": BREAK_FLAG,
	"X": INDEX_WIDTH_FLAG,
	"M": ACCUM_WIDTH_FLAG,
	"V": OVERFLOW_FLAG,
	"N": NEGATIVE_FLAG,
}

var luaRegisters = []string{"A", "B", "C", "X", "Y", "SP", "PC", "PC24", "P", "DBR", "PBR", "DPR", "E", "CYCLES"}

// NewLuaPredicate compiles expr. The expression is wrapped in a return
// statement, so "A == 0x10 and peek(0x2000) ~= 0" is a valid source.
func NewLuaPredicate(expr string) (*LuaPredicate, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty lua expression")
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
		{lua.StringLibName, lua.OpenString},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	fn, err := L.LoadString("return " + expr)
	if err != nil {
		L.Close()
		return nil, errors.Wrapf(err, "compile %q", expr)
	}

	p := &LuaPredicate{source: expr, state: L, fn: fn}
	L.SetGlobal("peek", L.NewFunction(p.luaPeek))
	L.SetGlobal("flag", L.NewFunction(p.luaFlag))
	return p, nil
}

func (p *LuaPredicate) luaPeek(L *lua.LState) int {
	addr := L.CheckInt64(1)
	L.Push(lua.LNumber(p.cpu.mem.Peek(uint32(addr))))
	return 1
}

func (p *LuaPredicate) luaFlag(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	mask, ok := luaFlags[name]
	if !ok {
		L.ArgError(1, "unknown flag "+name)
		return 0
	}
	L.Push(lua.LBool(p.cpu.P&mask != 0))
	return 1
}

// Source returns the expression as written.
func (p *LuaPredicate) Source() string { return p.source }

// Err returns the last evaluation error.
func (p *LuaPredicate) Err() error { return p.err }

// Eval runs the expression against cpu.
func (p *LuaPredicate) Eval(cpu *CPU) (bool, error) {
	p.cpu = cpu
	L := p.state
	for _, name := range luaRegisters {
		value, _ := cpu.GetRegister(name)
		L.SetGlobal(name, lua.LNumber(value))
	}

	L.Push(p.fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return false, errors.Wrapf(err, "evaluate %q", p.source)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Predicate adapts the expression for ContinueUntil. An evaluation error
// stops the run and is kept for Err.
func (p *LuaPredicate) Predicate() Predicate {
	return func(cpu *CPU) bool {
		ok, err := p.Eval(cpu)
		if err != nil {
			p.err = err
			return true
		}
		return ok
	}
}

// Close releases the Lua state.
func (p *LuaPredicate) Close() {
	p.state.Close()
}
