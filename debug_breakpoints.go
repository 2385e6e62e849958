// debug_breakpoints.go - Address breakpoints with conditions and hit counts

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
	"fmt"
	"sort"
	"strings"
	"sync"
)

const luaConditionPrefix = "lua:"

// Breakpoint halts execution at Address when its condition holds. HitCount
// counts every arrival at the address, whether or not the condition held.
type Breakpoint struct {
	Address   uint32
	Enabled   bool
	HitCount  uint64
	Condition *Condition
	Lua       *LuaPredicate
}

func (bp *Breakpoint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "$%06X", bp.Address)
	switch {
	case bp.Condition != nil:
		fmt.Fprintf(&b, " if %s", bp.Condition)
	case bp.Lua != nil:
		fmt.Fprintf(&b, " if lua:%s", bp.Lua.Source())
	}
	if !bp.Enabled {
		b.WriteString(" (disabled)")
	}
	fmt.Fprintf(&b, " hits=%d", bp.HitCount)
	return b.String()
}

// BreakpointSet is the default breakpoint oracle.
type BreakpointSet struct {
	cpu *CPU

	mu     sync.RWMutex
	points map[uint32]*Breakpoint
}

func NewBreakpointSet(cpu *CPU) *BreakpointSet {
	return &BreakpointSet{
		cpu:    cpu,
		points: make(map[uint32]*Breakpoint),
	}
}

// Add sets an unconditional breakpoint, replacing any at the same address.
func (s *BreakpointSet) Add(addr uint32) *Breakpoint {
	bp := &Breakpoint{Address: addr, Enabled: true}
	s.put(bp)
	return bp
}

// AddConditional sets a breakpoint guarded by cond. A "lua:" prefix selects
// a Lua expression, anything else is parsed by ParseCondition.
func (s *BreakpointSet) AddConditional(addr uint32, cond string) (*Breakpoint, error) {
	bp := &Breakpoint{Address: addr, Enabled: true}
	cond = strings.TrimSpace(cond)
	if rest, ok := strings.CutPrefix(cond, luaConditionPrefix); ok {
		pred, err := NewLuaPredicate(rest)
		if err != nil {
			return nil, err
		}
		bp.Lua = pred
	} else {
		c, err := ParseCondition(cond)
		if err != nil {
			return nil, err
		}
		bp.Condition = c
	}
	s.put(bp)
	return bp, nil
}

func (s *BreakpointSet) put(bp *Breakpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.points[bp.Address]; ok && old.Lua != nil {
		old.Lua.Close()
	}
	s.points[bp.Address] = bp
}

// Remove deletes the breakpoint at addr.
func (s *BreakpointSet) Remove(addr uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	bp, ok := s.points[addr]
	if !ok {
		return false
	}
	if bp.Lua != nil {
		bp.Lua.Close()
	}
	delete(s.points, addr)
	return true
}

// Enable turns the breakpoint at addr on or off.
func (s *BreakpointSet) Enable(addr uint32, on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	bp, ok := s.points[addr]
	if ok {
		bp.Enabled = on
	}
	return ok
}

func (s *BreakpointSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bp := range s.points {
		if bp.Lua != nil {
			bp.Lua.Close()
		}
	}
	s.points = make(map[uint32]*Breakpoint)
}

func (s *BreakpointSet) Has(addr uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.points[addr]
	return ok
}

func (s *BreakpointSet) Get(addr uint32) (*Breakpoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bp, ok := s.points[addr]
	return bp, ok
}

// List returns the breakpoints ordered by address.
func (s *BreakpointSet) List() []*Breakpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*Breakpoint, 0, len(s.points))
	for _, bp := range s.points {
		list = append(list, bp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Address < list[j].Address })
	return list
}

// CheckBP implements BreakpointOracle.
func (s *BreakpointSet) CheckBP(addr uint32) bool {
	s.mu.RLock()
	bp, ok := s.points[addr]
	s.mu.RUnlock()
	if !ok || !bp.Enabled {
		return false
	}

	bp.HitCount++
	if bp.Lua != nil {
		hit, err := bp.Lua.Eval(s.cpu)
		// An expression error counts as a hit.
		return hit || err != nil
	}
	return bp.Condition.Evaluate(s.cpu, bp.HitCount)
}
