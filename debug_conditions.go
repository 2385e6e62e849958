// debug_conditions.go - Breakpoint condition parser and evaluator

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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type ConditionOp int

const (
	CondOpEqual ConditionOp = iota
	CondOpNotEqual
	CondOpLess
	CondOpGreater
	CondOpLessEqual
	CondOpGreaterEqual
)

type ConditionSource int

const (
	CondSourceRegister ConditionSource = iota
	CondSourceMemory
	CondSourceHitCount
)

// Condition is a simple comparison guarding a breakpoint.
type Condition struct {
	Source  ConditionSource
	RegName string
	MemAddr uint32
	Op      ConditionOp
	Value   uint64
}

var conditionOps = []struct {
	text string
	op   ConditionOp
}{
	{"==", CondOpEqual},
	{"!=", CondOpNotEqual},
	{"<=", CondOpLessEqual},
	{">=", CondOpGreaterEqual},
	{"<", CondOpLess},
	{">", CondOpGreater},
}

// ParseNumber accepts $hex, 0xhex, #decimal and bare hex.
func ParseNumber(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	base := 16
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 10
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 64)
	return v, err == nil
}

// ParseCondition parses a condition string.
// Formats:
//
//	A==$10         - register A, op ==, value 0x10
//	[$2000]!=0     - memory at 0x2000, op !=, value 0
//	hitcount>=#3   - hit count, op >=, value 3
func ParseCondition(text string) (*Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("empty condition")
	}

	opIdx := -1
	var found ConditionOp
	var opLen int
	for _, candidate := range conditionOps {
		if idx := strings.Index(text, candidate.text); idx >= 0 {
			opIdx, found, opLen = idx, candidate.op, len(candidate.text)
			break
		}
	}
	if opIdx < 0 {
		return nil, errors.Errorf("no operator in %q (use ==, !=, <, >, <=, >=)", text)
	}

	lhs := strings.TrimSpace(text[:opIdx])
	rhs := strings.TrimSpace(text[opIdx+opLen:])

	value, ok := ParseNumber(rhs)
	if !ok {
		return nil, errors.Errorf("invalid value: %s", rhs)
	}

	// Memory dereference: [$1000]
	if strings.HasPrefix(lhs, "[") && strings.HasSuffix(lhs, "]") {
		addrStr := lhs[1 : len(lhs)-1]
		addr, ok := ParseNumber(addrStr)
		if !ok {
			return nil, errors.Errorf("invalid memory address: %s", addrStr)
		}
		return &Condition{Source: CondSourceMemory, MemAddr: uint32(addr), Op: found, Value: value}, nil
	}

	if strings.EqualFold(lhs, "hitcount") {
		return &Condition{Source: CondSourceHitCount, Op: found, Value: value}, nil
	}

	if _, ok := (&CPU{}).GetRegister(lhs); !ok {
		return nil, errors.Errorf("unknown register: %s", lhs)
	}
	return &Condition{Source: CondSourceRegister, RegName: strings.ToUpper(lhs), Op: found, Value: value}, nil
}

// Evaluate reports whether the condition holds. A nil condition always
// holds. Memory is read without triggering observers.
func (cond *Condition) Evaluate(cpu *CPU, hitCount uint64) bool {
	if cond == nil {
		return true
	}

	var actual uint64
	switch cond.Source {
	case CondSourceRegister:
		val, ok := cpu.GetRegister(cond.RegName)
		if !ok {
			return false
		}
		actual = val
	case CondSourceMemory:
		actual = uint64(cpu.mem.Peek(cond.MemAddr))
	case CondSourceHitCount:
		actual = hitCount
	}

	return compareValues(actual, cond.Op, cond.Value)
}

func compareValues(actual uint64, op ConditionOp, expected uint64) bool {
	switch op {
	case CondOpEqual:
		return actual == expected
	case CondOpNotEqual:
		return actual != expected
	case CondOpLess:
		return actual < expected
	case CondOpGreater:
		return actual > expected
	case CondOpLessEqual:
		return actual <= expected
	case CondOpGreaterEqual:
		return actual >= expected
	}
	return false
}

func (op ConditionOp) String() string {
	for _, candidate := range conditionOps {
		if candidate.op == op {
			return candidate.text
		}
	}
	return "?"
}

func (cond *Condition) String() string {
	if cond == nil {
		return ""
	}

	var lhs string
	switch cond.Source {
	case CondSourceRegister:
		lhs = cond.RegName
	case CondSourceMemory:
		lhs = fmt.Sprintf("[$%X]", cond.MemAddr)
	case CondSourceHitCount:
		lhs = "hitcount"
	}
	return fmt.Sprintf("%s%s$%X", lhs, cond.Op, cond.Value)
}
