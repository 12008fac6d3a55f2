// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/dojo/emulator"
)

// parseRange parses a 'start:end' cell range.
func parseRange(text string) (start, end int64, err error) {
	lo, hi, ok := strings.Cut(text, ":")
	if !ok {
		err = fmt.Errorf("range '%v' is not start:end", text)
		return
	}

	start, err = strconv.ParseInt(lo, 0, 64)
	if err != nil {
		return
	}

	end, err = strconv.ParseInt(hi, 0, 64)
	return
}

func main() {
	var compile string
	var size uint
	var limit int
	var lenient bool
	var dump string
	var text bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "program file to run ('-' for stdin)")
	flag.UintVar(&size, "m", emulator.MEMORY_SIZE, "Memory size, in cells")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.BoolVar(&lenient, "l", false, "Lenient mode: skip unknown opcodes")
	flag.StringVar(&dump, "dump", "", "Memory range to dump after running, as start:end")
	flag.BoolVar(&text, "text", false, "Dump memory as text")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c is required", os.Args[0])
	}

	emu, err := emulator.NewEmulator(size)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	emu.Verbose = verbose
	emu.Cpu.Lenient = lenient
	emu.Cpu.Limit = limit

	inf := os.Stdin
	if compile != "-" {
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
	}

	err = emu.Compile(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.Run()
	if err != nil {
		fmt.Fprint(os.Stderr, emu.Cpu.String())
		log.Fatalf("%v: %v", compile, err)
	}

	fmt.Print(emu.Cpu.String())

	if len(dump) != 0 {
		start, end, err := parseRange(dump)
		if err != nil {
			log.Fatalf("-dump: %v", err)
		}
		if text {
			str, err := emu.Text(start, end)
			if err != nil {
				log.Fatalf("-dump: %v", err)
			}
			fmt.Println(str)
		} else {
			cells, err := emu.Cpu.Memory.Slice(start, end)
			if err != nil {
				log.Fatalf("-dump: %v", err)
			}
			for n, cell := range cells {
				fmt.Printf("%04d: %d\n", start+int64(n), cell)
			}
		}
	}
}
