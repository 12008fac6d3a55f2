// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program parses dojo program text into memory cells.
//
// Each line of text holds zero or more comma separated cells. Every cell is
// a Starlark expression, evaluated with the opcode mnemonics and any other
// predefined symbols in scope:
//
//	LDA, 0x64     # A = 100
//	STA, 15
//	LDA, ord('w')
//	BRK
//
// HERE evaluates to the address of the first cell on the line, and LINENO to
// the line number.
package program

import (
	"bufio"
	"io"
	"iter"
	"log"
	"maps"
	"math"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dojo/internal"
)

// Line is a line of program text and the cells it generated.
type Line struct {
	LineNo int     // Line number, starting at 1.
	Pc     int     // Address of the first cell.
	Text   string  // Source text.
	Cells  []int32 // Generated cells.
}

// Program is a parsed program listing.
type Program struct {
	Lines []Line
}

// Debug locates the line and cell index for an address.
type Debug struct {
	*Line
	Index int
}

// Debug returns the line that generated the cell at pc.
// The Line is nil if no line covers pc.
func (prog *Program) Debug(pc uint32) (dbg Debug) {
	for n, line := range prog.Lines {
		if int64(pc) >= int64(line.Pc) && int64(pc) < int64(line.Pc+len(line.Cells)) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(pc) - line.Pc,
			}
			break
		}
	}

	return
}

// Cells returns the program as memory cells, ready to load.
func (prog *Program) Cells() (cells []int32) {
	for _, line := range prog.Lines {
		cells = append(cells, line.Cells...)
	}

	return
}

// Parser converts program text into a Program.
type Parser struct {
	Verbose bool // If set, verbosely logs each parsed line.

	predefine map[string]int64
}

// Predefine defines a new symbol or redefines an existing symbol.
func (p *Parser) Predefine(name string, value int64) {
	if p.predefine == nil {
		p.predefine = map[string]int64{name: value}
	} else {
		p.predefine[name] = value
	}
}

// Parse reads program text. Symbols from defines are visible to every
// expression; symbols set with Predefine take precedence over them.
func (p *Parser) Parse(r io.Reader, defines ...iter.Seq2[string, int64]) (prog *Program, err error) {
	pred := starlark.StringDict{}
	seqs := slices.Concat(defines, []iter.Seq2[string, int64]{maps.All(p.predefine)})
	for name, value := range internal.IterSeq2Concat(seqs...) {
		pred[name] = starlark.MakeInt64(value)
	}

	prog = &Program{}

	pc := 0
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		text := scanner.Text()

		var cells []int32
		cells, err = p.parseLine(text, lineno, pc, pred)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
			prog = nil
			return
		}
		if len(cells) == 0 {
			continue
		}

		if p.Verbose {
			log.Printf("program: %03d: %v", pc, cells)
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo: lineno,
			Pc:     pc,
			Text:   text,
			Cells:  cells,
		})
		pc += len(cells)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// parseLine evaluates a single line as a list of cells.
func (p *Parser) parseLine(text string, lineno int, pc int, pred starlark.StringDict) (cells []int32, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	pred["HERE"] = starlark.MakeInt(pc)
	pred["LINENO"] = starlark.MakeInt(lineno)

	thread := starlark.Thread{Name: "program"}
	opts := syntax.FileOptions{}
	src := "rc=[" + text + "\n]\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "program", src, pred)
	if err != nil {
		return
	}

	list, ok := dict["rc"].(*starlark.List)
	if !ok {
		err = ErrExpression
		return
	}

	for n := range list.Len() {
		value := list.Index(n)
		st_int, ok := value.(starlark.Int)
		if !ok {
			err = ErrParseValue(value.String())
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
			err = ErrParseValue(value.String())
			return
		}
		cells = append(cells, int32(st_int64))
	}

	return
}
