package main

import (
	"flag"
	"fmt"
	"os"

	"svasm/internal/assembler"
	"svasm/internal/logger"
	"svasm/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the svasm assembler.
func main() {
	options := assembler.Assembler{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.OutputFile, "o", "a.bin", "Output binary name")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	err := options.Assemble()
	if err != nil {
		log.Fatal("Assembly failed", "error", err)
	}
}
