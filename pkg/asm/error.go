package asm

import (
	"fmt"
)

type ErrorKind int

// Every way an assembly run can fail. The first violated contract aborts
// the whole pipeline; no stage accumulates diagnostics past its first error.
const (
	MissingSection ErrorKind = iota
	UnsupportedSectionCount
	MalformedConstantDeclaration
	DuplicateConstant
	DuplicateLabel
	AmbiguousSymbol
	MissingEntryPoint
	UndeclaredSymbol
	UnknownOpcode
	NotARegister
	TooFewArguments
	InvalidToken
)

// NoLine marks errors that concern the whole program rather than one line.
const NoLine = 0

// String returns a human readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case MissingSection:
		return "missing section"
	case UnsupportedSectionCount:
		return "unsupported section count"
	case MalformedConstantDeclaration:
		return "malformed constant declaration"
	case DuplicateConstant:
		return "duplicate constant"
	case DuplicateLabel:
		return "duplicate label"
	case AmbiguousSymbol:
		return "ambiguous symbol"
	case MissingEntryPoint:
		return "missing entry point"
	case UndeclaredSymbol:
		return "undeclared symbol"
	case UnknownOpcode:
		return "unknown opcode"
	case NotARegister:
		return "not a register"
	case TooFewArguments:
		return "too few arguments"
	case InvalidToken:
		return "invalid token"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// Error is the failure value returned by every stage of the pipeline. It is
// a plain value rather than a process abort so that callers can inspect the
// kind without terminating the host.
type Error struct {
	Kind   ErrorKind
	Line   int    // 1-based source line, NoLine for whole-program errors
	Detail string
}

func (e *Error) Error() string {
	if e.Line == NoLine {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}

	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Detail)
}

func newError(kind ErrorKind, line int, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Line:   line,
		Detail: fmt.Sprintf(format, args...),
	}
}
