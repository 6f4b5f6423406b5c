// Package operand classifies a normalized operand token into one of the
// forms the addressing and instruction encoders understand: a 32- or
// 8-bit register, an immediate, or one of the three memory addressing
// shapes.
package operand

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/relocbyte/ia32asm/reg"
	"github.com/relocbyte/ia32asm/symtab"
)

// Kind tags the shape of a classified operand.
type Kind int

const (
	Reg32 Kind = iota
	Reg8
	Immediate
	MemLabel      // [label]
	MemBaseDisp   // [reg±disp]
	MemSIB        // [label+ESI*4(±disp)]
)

// Operand is the tagged result of classification. Only the fields that
// apply to Kind are meaningful.
type Operand struct {
	Kind    Kind
	Reg     reg.ID
	Imm     uint32
	Label   string // MemLabel, MemSIB
	BaseReg reg.ID // MemBaseDisp
	Disp    int32  // MemBaseDisp, MemSIB
}

var (
	identifierRe = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
	baseDispRe   = regexp.MustCompile(`^(EAX|ECX|EDX|EBX|ESP|EBP|ESI|EDI)([+-][0-9]+)?$`)
)

// Classify parses tok — already trimmed and uppercased by the caller — into
// an Operand. aliases may be nil; when given, a bare identifier that is
// not a register is checked against it before being rejected, per the
// EQU-as-alias expansion (see SPEC_FULL.md §1).
func Classify(tok string, aliases *symtab.AliasTable) (Operand, error) {
	if tok == "" {
		return Operand{}, fmt.Errorf("empty operand")
	}

	if strings.HasPrefix(tok, "[") {
		return classifyMemory(tok)
	}

	if id, ok := reg.Lookup32(tok); ok {
		return Operand{Kind: Reg32, Reg: id}, nil
	}
	if id, ok := reg.Lookup8(tok); ok {
		return Operand{Kind: Reg8, Reg: id}, nil
	}
	if imm, ok := parseImmediate(tok); ok {
		return Operand{Kind: Immediate, Imm: imm}, nil
	}
	if aliases != nil {
		if v, ok := aliases.Lookup(tok); ok {
			return Operand{Kind: Immediate, Imm: v}, nil
		}
	}

	return Operand{}, fmt.Errorf("unrecognized operand %q", tok)
}

func classifyMemory(tok string) (Operand, error) {
	if !strings.HasSuffix(tok, "]") || len(tok) < 2 {
		return Operand{}, fmt.Errorf("malformed memory operand %q", tok)
	}
	inner := strings.TrimSpace(tok[1 : len(tok)-1])
	if inner == "" {
		return Operand{}, fmt.Errorf("empty memory operand")
	}

	if idx := strings.Index(inner, "ESI*4"); idx >= 0 {
		label := strings.TrimRight(inner[:idx], "+- \t")
		label = strings.TrimSpace(label)
		if label == "" || !identifierRe.MatchString(label) {
			return Operand{}, fmt.Errorf("SIB addressing requires a base label: %q", tok)
		}

		tail := strings.TrimSpace(inner[idx+len("ESI*4"):])
		var disp int32
		if tail != "" {
			v, ok := parseSignedInt(tail)
			if !ok {
				return Operand{}, fmt.Errorf("invalid SIB displacement %q", tail)
			}
			disp = v
		}
		return Operand{Kind: MemSIB, Label: label, Disp: disp}, nil
	}

	if m := baseDispRe.FindStringSubmatch(inner); m != nil {
		base, _ := reg.Lookup32(m[1])
		var disp int32
		if m[2] != "" {
			v, ok := parseSignedInt(m[2])
			if !ok {
				return Operand{}, fmt.Errorf("invalid displacement %q", m[2])
			}
			disp = v
		}
		return Operand{Kind: MemBaseDisp, BaseReg: base, Disp: disp}, nil
	}

	if identifierRe.MatchString(inner) {
		return Operand{Kind: MemLabel, Label: inner}, nil
	}

	return Operand{}, fmt.Errorf("unrecognized memory operand %q", tok)
}

func parseSignedInt(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// parseImmediate accepts decimal, NASM-style H-suffixed hex, 0X-prefixed
// hex, and a single-quoted character literal. Parsing must consume the
// whole token; trailing garbage is a failure.
func parseImmediate(tok string) (uint32, bool) {
	if len(tok) == 3 && tok[0] == '\'' && tok[2] == '\'' {
		return uint32(tok[1]), true
	}

	s := tok
	base := 10
	switch {
	case strings.HasSuffix(s, "H") && len(s) > 1:
		s = s[:len(s)-1]
		base = 16
	case strings.HasPrefix(s, "0X") && len(s) > 2:
		s = s[2:]
		base = 16
	}
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
