package asm

import (
	"strings"
)

type OperandKind int

// Operand kinds of the instruction set
const (
	REG OperandKind = iota // register address in [RegisterBase, RegisterBase+RegisterCount)
	VAL                    // literal or register value, no range check
	TAG                    // label address
)

// String returns a string representation of the OperandKind
func (k OperandKind) String() string {
	switch k {
	case REG:
		return "register"
	case VAL:
		return "value"
	case TAG:
		return "tag"
	default:
		return "UNKNOWN"
	}
}

// Signature describes one instruction: its numeric opcode word and the
// ordered operand kinds it takes.
type Signature struct {
	Code     uint16
	Operands []OperandKind
}

// Opcodes is the instruction set of the target machine. One word is emitted
// for the opcode and one per operand.
var Opcodes = map[string]Signature{
	"HALT": {0x00, nil},
	"SET":  {0x01, []OperandKind{REG, VAL}},
	"PUSH": {0x02, []OperandKind{VAL}},
	"POP":  {0x03, []OperandKind{REG}},
	"EQ":   {0x04, []OperandKind{REG, VAL, VAL}},
	"GT":   {0x05, []OperandKind{REG, VAL, VAL}},
	"JMP":  {0x06, []OperandKind{TAG}},
	"JT":   {0x07, []OperandKind{VAL, TAG}},
	"JF":   {0x08, []OperandKind{VAL, TAG}},
	"ADD":  {0x09, []OperandKind{REG, VAL, VAL}},
	"MULT": {0x0A, []OperandKind{REG, VAL, VAL}},
	"MOD":  {0x0B, []OperandKind{REG, VAL, VAL}},
	"AND":  {0x0C, []OperandKind{REG, VAL, VAL}},
	"OR":   {0x0D, []OperandKind{REG, VAL, VAL}},
	"NOT":  {0x0E, []OperandKind{REG, VAL}},
	"RMEM": {0x0F, []OperandKind{REG, VAL}},
	"WMEM": {0x10, []OperandKind{VAL, REG}},
	"CALL": {0x11, []OperandKind{TAG}},
	"RET":  {0x12, nil},
	"OUT":  {0x13, []OperandKind{VAL}},
	"IN":   {0x14, []OperandKind{REG}},
	"NOOP": {0x15, nil},
}

// LookupOpcode resolves a mnemonic to its signature, case-insensitively
func LookupOpcode(mnemonic string) (Signature, bool) {
	sig, ok := Opcodes[strings.ToUpper(mnemonic)]
	return sig, ok
}
