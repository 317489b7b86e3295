package assembler

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"svasm/pkg/asm"
	"svasm/pkg/color"
	"svasm/pkg/lexer"

	"github.com/charmbracelet/log"
)

type Assembler struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	SourceFile string // Path to the source file
	OutputFile string // Path to the output binary
}

// Assemble reads the source file, runs the assembly pipeline and writes the
// resolved words as a little-endian binary. Nothing is written when any
// stage fails.
func (opts *Assembler) Assemble() error {
	log.Info("Assembling file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("Failed to read file", "file", opts.SourceFile, "error", err)
	}

	tokens, err := lexer.NewLexer(string(input)).Tokenize()
	if err != nil {
		fmt.Println(color.BrightRedText("=== Lex Errors ==="))
		fmt.Println(err)
		return fmt.Errorf("lexing failed: %w", err)
	}
	log.Debug("Lexed source", "tokens", len(tokens))

	program, err := asm.Assemble(tokens)
	if err != nil {
		fmt.Println(color.BrightRedText("=== Assembly Errors ==="))
		fmt.Println(renderError(err))
		return fmt.Errorf("assembly failed: %w", err)
	}

	if opts.Verbose {
		opts.dump(program)
	}

	if err := os.WriteFile(opts.OutputFile, asm.EncodeBinary(program.Words), 0o644); err != nil {
		return fmt.Errorf("writing binary failed: %w", err)
	}

	log.Info("Wrote binary", "file", opts.OutputFile, "words", len(program.Words))
	return nil
}

// renderError colors a pipeline error for terminal output
func renderError(err error) string {
	var aerr *asm.Error
	if !errors.As(err, &aerr) {
		return err.Error()
	}

	msg := color.RedText(aerr.Kind.String())
	if aerr.Line != asm.NoLine {
		msg += " at " + color.YellowText(fmt.Sprintf("Line: %d", aerr.Line))
	}

	return msg + ": " + aerr.Detail
}

// dump prints the constant table, label addresses and emitted words.
// Observability only; the pipeline result is authoritative.
func (opts *Assembler) dump(program *asm.Program) {
	fmt.Println(color.GreenText("\n=== Constants ==="))
	if len(program.Constants) == 0 {
		fmt.Println(color.GrayText("No constants declared."))
	} else {
		for _, c := range program.Constants {
			fmt.Printf("%s = %s\n",
				color.CyanText(c.Name),
				color.YellowText(fmt.Sprintf("%d", c.Value)))
		}
	}

	fmt.Println(color.GreenText("\n=== Labels ==="))
	names := make([]string, 0, len(program.Labels))
	for name := range program.Labels {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return program.Labels[names[i]] < program.Labels[names[j]]
	})
	for _, name := range names {
		fmt.Printf("%s -> %s\n",
			color.CyanText(name),
			color.YellowText(fmt.Sprintf("%d", program.Labels[name])))
	}

	fmt.Println(color.GreenText("\n=== Words ==="))
	for i, w := range program.Words {
		fmt.Printf("%s: %s\n",
			color.CyanText(fmt.Sprintf("%04d", i)),
			color.BlueText(fmt.Sprintf("0x%04x", w)))
	}
}
