package asm_test

import (
	"reflect"
	"testing"

	"svasm/pkg/asm"
	"svasm/pkg/lexer"
)

// Token builders for hand-assembled normalized streams. The encoder only
// sees post-normalization tokens, so NUM values here may legitimately sit
// in the register range.
func tkOpcode(mnemonic string, line int) lexer.Token {
	return lexer.Token{Type: lexer.OPCODE, Lexeme: mnemonic, Literal: mnemonic, Pos: lexer.Position{Line: line}}
}

func tkNum(value, line int) lexer.Token {
	return lexer.Token{Type: lexer.NUM, Value: value, Pos: lexer.Position{Line: line}}
}

func tkRef(name string, line int) lexer.Token {
	return lexer.Token{Type: lexer.ID, Lexeme: name, Literal: name, Pos: lexer.Position{Line: line}}
}

func tkLabel(name string, line int) lexer.Token {
	return lexer.Token{Type: lexer.LABEL, Lexeme: name + ":", Literal: name, Pos: lexer.Position{Line: line}}
}

func tkComma(line int) lexer.Token {
	return lexer.Token{Type: lexer.COMMA, Lexeme: ",", Pos: lexer.Position{Line: line}}
}

func tkNewline(line int) lexer.Token {
	return lexer.Token{Type: lexer.NEWLINE, Lexeme: "\n", Pos: lexer.Position{Line: line}}
}

func TestComputeAddresses(t *testing.T) {
	tokens := []lexer.Token{
		tkLabel("main", 1), tkNewline(1),
		tkOpcode("SET", 2), tkNum(32768, 2), tkComma(2), tkNum(5, 2), tkNewline(2),
		tkLabel("mid", 3), tkLabel("alias", 3), tkNewline(3),
		tkOpcode("HALT", 4), tkNewline(4),
	}

	addresses := asm.ComputeAddresses(tokens)

	want := map[string]int{"main": 0, "mid": 3, "alias": 3}
	if !reflect.DeepEqual(addresses, want) {
		t.Fatalf("Address mismatch\nwant:%v\nhave:%v", want, addresses)
	}
}

func TestEncodeRegisterBounds(t *testing.T) {
	encodeSet := func(value int) error {
		_, err := asm.Encode([]lexer.Token{
			tkOpcode("SET", 1), tkNum(value, 1), tkComma(1), tkNum(0, 1), tkNewline(1),
		}, nil)
		return err
	}

	for value := asm.RegisterBase; value < asm.RegisterBase+asm.RegisterCount; value++ {
		if err := encodeSet(value); err != nil {
			t.Errorf("Register address %d rejected: %v", value, err)
		}
	}

	for _, value := range []int{0, 32767, 32776} {
		err := encodeSet(value)
		expectKind(t, err, asm.NotARegister)
	}
}

func TestEncodeValueAcceptsRegister(t *testing.T) {
	// VAL operands take literals and register addresses alike
	words, err := asm.Encode([]lexer.Token{
		tkOpcode("PUSH", 1), tkNum(32770, 1), tkNewline(1),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{0x02, 32770}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Word mismatch\nwant:%v\nhave:%v", want, words)
	}
}

func TestEncodeTagAcceptsLiteral(t *testing.T) {
	// TAG operands are not checked beyond resolution
	words, err := asm.Encode([]lexer.Token{
		tkOpcode("JMP", 1), tkNum(5, 1), tkNewline(1),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{0x06, 5}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Word mismatch\nwant:%v\nhave:%v", want, words)
	}
}

func TestEncodeResolvesReferences(t *testing.T) {
	addresses := map[string]int{"loop": 7}

	words, err := asm.Encode([]lexer.Token{
		tkOpcode("CALL", 1), tkRef("loop", 1), tkNewline(1),
	}, addresses)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{0x11, 7}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Word mismatch\nwant:%v\nhave:%v", want, words)
	}
}

func TestEncodeFailures(t *testing.T) {
	tests := []struct {
		Name   string
		Tokens []lexer.Token
		Kind   asm.ErrorKind
		Line   int
	}{
		{
			"unknown mnemonic",
			[]lexer.Token{tkOpcode("FROB", 3), tkNewline(3)},
			asm.UnknownOpcode, 3,
		},
		{
			"premature newline",
			[]lexer.Token{tkOpcode("SET", 2), tkNum(32768, 2), tkNewline(3)},
			asm.TooFewArguments, 3,
		},
		{
			"newline before first operand",
			[]lexer.Token{tkOpcode("OUT", 2), tkNewline(2)},
			asm.TooFewArguments, 2,
		},
		{
			"comma after last operand",
			[]lexer.Token{tkOpcode("OUT", 2), tkNum(1, 2), tkComma(2), tkNum(2, 2), tkNewline(2)},
			asm.InvalidToken, 2,
		},
		{
			"label as operand",
			[]lexer.Token{tkOpcode("OUT", 2), tkLabel("x", 2), tkNewline(2)},
			asm.InvalidToken, 2,
		},
		{
			"missing separator",
			[]lexer.Token{tkOpcode("SET", 2), tkNum(32768, 2), tkNum(1, 2), tkNewline(2)},
			asm.InvalidToken, 2,
		},
		{
			"input ends mid-instruction",
			[]lexer.Token{tkOpcode("SET", 2), tkNum(32768, 2)},
			asm.TooFewArguments, 2,
		},
		{
			"operand without opcode",
			[]lexer.Token{tkNum(5, 2), tkNewline(2)},
			asm.InvalidToken, 2,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := asm.Encode(test.Tokens, nil)
			aerr := expectKind(t, err, test.Kind)
			if aerr.Line != test.Line {
				t.Errorf("Wrong line\nwant:%d\nhave:%d", test.Line, aerr.Line)
			}
		})
	}
}
