package assembler

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAssembleWritesBinary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.asm")
	out := filepath.Join(dir, "prog.bin")

	source := "section data\n" +
		"section code\n" +
		"main:\n" +
		"OUT 42\n" +
		"HALT\n"
	if err := os.WriteFile(src, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &Assembler{SourceFile: src, OutputFile: out}
	if err := opts.Assemble(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x13, 0x00, 42, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !reflect.DeepEqual(data, want) {
		t.Fatalf("Binary mismatch\nwant:%v\nhave:%v", want, data)
	}
}

func TestAssembleNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.asm")
	out := filepath.Join(dir, "bad.bin")

	source := "section data\n" +
		"section code\n" +
		"main:\n" +
		"OUT ghost\n" +
		"HALT\n"
	if err := os.WriteFile(src, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &Assembler{SourceFile: src, OutputFile: out}
	if err := opts.Assemble(); err == nil {
		t.Fatal("Expected assembly error, got nil")
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("Output file written despite failure: %v", err)
	}
}
