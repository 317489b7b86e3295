// Package asm turns a lexed token stream into the binary instruction words
// of a 16-bit virtual machine with 8 registers and a 0-32767 value space.
//
// The pipeline is a fixed sequence of total passes, each consuming the
// previous pass's complete output: section splitting, data compilation,
// symbol validation, code normalization, address calculation and encoding.
// Every pass is a pure function over in-memory slices; the first violated
// contract aborts the run with an *Error carrying its kind and source line.
package asm

import (
	"encoding/binary"

	"svasm/pkg/lexer"
)

const (
	// ValueSpace bounds literal values; literals are reduced modulo this
	ValueSpace = 32768

	// Registers are addressed immediately above the value space
	RegisterBase  = 32768
	RegisterCount = 8
)

// EntryPoint is the label every program must declare
const EntryPoint = "main"

// Constant is a named immutable value declared in the data section.
type Constant struct {
	Name  string
	Value int
}

// Program is the fully resolved result of an assembly run.
type Program struct {
	Constants []Constant
	Labels    map[string]int // label name to word offset
	Words     []uint16       // opcode and operand words, terminator included
}

// Assemble runs the whole pipeline over a token stream. On success the
// returned words end with the fixed two-word zero terminator; on failure no
// partial result is returned.
func Assemble(tokens []lexer.Token) (*Program, error) {
	sections, err := SplitSections(tokens)
	if err != nil {
		return nil, err
	}

	// Constants must be known before code normalization can resolve names
	constants, err := CompileData(sections[DataSection])
	if err != nil {
		return nil, err
	}

	code := sections[CodeSection]
	labels, err := ValidateSymbols(code, constants)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeCode(code, constants, labels)
	if err != nil {
		return nil, err
	}

	addresses := ComputeAddresses(normalized)

	words, err := Encode(normalized, addresses)
	if err != nil {
		return nil, err
	}

	words = append(words, 0, 0)

	return &Program{
		Constants: constants,
		Labels:    addresses,
		Words:     words,
	}, nil
}

// EncodeBinary serializes words as consecutive little-endian 16-bit values
// with no header, length prefix or padding.
func EncodeBinary(words []uint16) []byte {
	buf := make([]byte, 0, len(words)*2)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint16(buf, w)
	}

	return buf
}
