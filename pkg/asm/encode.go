package asm

import (
	"svasm/pkg/lexer"
)

// ComputeAddresses folds over the normalized code tokens and binds each
// label to its word offset. A label marks the current offset without
// advancing it, commas and newlines have no width, and every other token
// occupies exactly one word.
func ComputeAddresses(tokens []lexer.Token) map[string]int {
	addresses := make(map[string]int)

	offset := 0
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.LABEL:
			addresses[tok.Literal] = offset
		case lexer.COMMA, lexer.NEWLINE:
			// pure syntax, no emitted width
		default:
			offset++
		}
	}

	return addresses
}

// Encode re-scans the normalized code tokens and emits one word per opcode
// and one per operand, resolving symbolic label references through the
// address map. It runs a small state machine per instruction: opcode, then
// operands separated by commas, then a newline.
func Encode(tokens []lexer.Token, addresses map[string]int) ([]uint16, error) {
	var words []uint16

	var remaining []OperandKind // operand slots left for the current instruction
	inInstruction := false
	needSeparator := false

	for _, tok := range tokens {
		if !inInstruction {
			switch tok.Type {
			case lexer.LABEL, lexer.NEWLINE:
				// labels carry no width, blank lines are no-ops
			case lexer.OPCODE:
				sig, ok := LookupOpcode(tok.Literal)
				if !ok {
					return nil, newError(UnknownOpcode, tok.Pos.Line,
						"unknown mnemonic %q", tok.Literal)
				}
				words = append(words, sig.Code)
				remaining = sig.Operands
				inInstruction = true
				needSeparator = false
			default:
				return nil, newError(InvalidToken, tok.Pos.Line,
					"want mnemonic, got %s", tok.Type)
			}
			continue
		}

		if needSeparator {
			switch tok.Type {
			case lexer.COMMA:
				if len(remaining) == 0 {
					return nil, newError(InvalidToken, tok.Pos.Line,
						"comma after last operand")
				}
				needSeparator = false
			case lexer.NEWLINE:
				if len(remaining) > 0 {
					return nil, newError(TooFewArguments, tok.Pos.Line,
						"%d operand(s) missing", len(remaining))
				}
				inInstruction = false
			default:
				return nil, newError(InvalidToken, tok.Pos.Line,
					"want ',' or newline, got %s", tok.Type)
			}
			continue
		}

		// Expecting an operand; zero-operand instructions only take their
		// terminating newline.
		if len(remaining) == 0 {
			if tok.Type != lexer.NEWLINE {
				return nil, newError(InvalidToken, tok.Pos.Line,
					"instruction takes no operands, got %s", tok.Type)
			}
			inInstruction = false
			continue
		}

		if tok.Type == lexer.NEWLINE {
			return nil, newError(TooFewArguments, tok.Pos.Line,
				"%d operand(s) missing", len(remaining))
		}

		value, err := resolveOperand(tok, addresses)
		if err != nil {
			return nil, err
		}

		if remaining[0] == REG && !isRegister(value) {
			return nil, newError(NotARegister, tok.Pos.Line,
				"value %d is not a register address", value)
		}

		words = append(words, uint16(value))
		remaining = remaining[1:]
		needSeparator = true
	}

	if inInstruction && len(remaining) > 0 {
		line := NoLine
		if n := len(tokens); n > 0 {
			line = tokens[n-1].Pos.Line
		}
		return nil, newError(TooFewArguments, line, "input ends mid-instruction")
	}

	return words, nil
}

// resolveOperand turns an operand token into its integer value: either a
// normalized literal, or a label reference looked up in the address map.
func resolveOperand(tok lexer.Token, addresses map[string]int) (int, error) {
	switch tok.Type {
	case lexer.NUM:
		return tok.Value, nil
	case lexer.ID:
		address, ok := addresses[tok.Literal]
		if !ok {
			return 0, newError(UndeclaredSymbol, tok.Pos.Line,
				"unresolved reference %q", tok.Literal)
		}
		return address, nil
	default:
		return 0, newError(InvalidToken, tok.Pos.Line,
			"want operand, got %s", tok.Type)
	}
}

// isRegister reports whether a resolved value is a valid register address
func isRegister(value int) bool {
	return value >= RegisterBase && value < RegisterBase+RegisterCount
}
