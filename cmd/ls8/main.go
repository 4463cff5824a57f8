// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// Exit codes
const (
	EXIT_OK      = 0
	EXIT_OPCODE  = 1 // Unknown instruction.
	EXIT_FAULT   = 2 // Memory, stack, or register fault.
	EXIT_LOADING = 3 // Program could not be loaded.
)

func main() {
	var compile string
	var save bool
	var output string
	var verbose bool
	var disassemble bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.BoolVar(&save, "s", false, "Save the program image, do not execute")
	flag.StringVar(&output, "o", "-", "Image output for -s")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&disassemble, "d", false, "List the program image, do not execute")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	if len(compile) != 0 && flag.NArg() == 1 {
		log.Fatalf("%v: -c %v conflicts with image %v", os.Args[0], compile, flag.Arg(0))
	}

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}
	defer logger.Sync()

	emu := emulator.NewEmulator(emulator.WithLogger(logger))
	emu.Verbose = verbose
	emu.Tape.Output = os.Stdout

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a program image.
	if flag.NArg() == 1 {
		path := flag.Arg(0)
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()

		err = emu.Rom.Load(inf)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	if disassemble {
		err := listing(os.Stdout, emu.Image())
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		return
	}

	if save {
		ouf := os.Stdout
		if output != "-" {
			var err error
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}

		var err error
		if len(emu.Program.Lines) != 0 {
			err = emu.Program.WriteImage(ouf)
		} else {
			emu.Rom.Data = emu.Image()
			err = emu.Rom.Save(ouf)
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	code := EXIT_LOADING
	err := emu.Reset()
	if err != nil {
		log.Printf("%v", err)
	} else {
		code = run(emu)
	}

	logger.Sync()
	os.Exit(code)
}

// listing writes the disassembly of image, one instruction per line.
func listing(w io.Writer, image []uint8) (err error) {
	for _, inst := range cpu.Disassemble(image) {
		_, err = fmt.Fprintf(w, "%02X: %v\n", inst.Address, inst)
		if err != nil {
			return
		}
	}
	return
}

// run executes the program and maps its outcome to an exit code.
func run(emu *emulator.Emulator) int {
	err := emu.Run()
	switch {
	case err == nil:
		return EXIT_OK
	case errors.Is(err, cpu.ErrOpcodeUnknown{}):
		log.Printf("%v", err)
		return EXIT_OPCODE
	case errors.Is(err, cpu.ErrDivideByZero):
		// Fatal to the program, not to the process.
		log.Printf("%v", err)
		return EXIT_OK
	default:
		log.Printf("%v", err)
		if emu.Verbose {
			log.Printf("\n%v", emu.Cpu.String())
		}
		return EXIT_FAULT
	}
}
