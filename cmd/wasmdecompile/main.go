// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wasmdecompile lowers a WebAssembly module, binary or text,
// into pseudo-source text or (with -f and -g) a GraphViz DOT graph of
// one function's control flow.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/wasmdecompile/wasmdecompile/decompile"
	"github.com/wasmdecompile/wasmdecompile/dot"
	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/printer"
	"github.com/wasmdecompile/wasmdecompile/wat"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: wasmdecompile [options] <input> [output]

input is a .wasm or .wat file; output defaults to stdout.

ex:
 $> wasmdecompile ./module.wasm
 $> wasmdecompile -f 2 -g ./module.wasm ./func2.dot

options:
`,
		)
		flag.PrintDefaults()
	}
}

var (
	flagFunc = flag.Int("f", -1, "emit only function N (0-based, imports counted)")
	flagDot  = flag.Bool("g", false, "emit a GraphViz DOT graph (requires -f)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagDot && *flagFunc < 0 {
		fmt.Fprintln(os.Stderr, "wasmdecompile: -g requires -f")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "wasmdecompile: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	r, err := openInput(inPath)
	if err != nil {
		return err
	}

	out, err := render(r)
	if err != nil {
		return err
	}

	return writeOutput(outPath, out)
}

// openInput reads inPath and, if it looks like text rather than a
// binary module's "\0asm" magic, transcodes it through package wat
// first; either way the caller gets a binary module reader.
func openInput(path string) (io.Reader, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".wat") || !bytes.HasPrefix(raw, []byte("\x00asm")) {
		bin, err := wat.Encode(string(raw))
		if err != nil {
			return nil, fmt.Errorf("transcoding %s: %w", path, err)
		}
		return bytes.NewReader(bin), nil
	}
	return bytes.NewReader(raw), nil
}

func render(r io.Reader) (string, error) {
	if *flagFunc < 0 {
		mod, err := decompile.Module(r)
		if err != nil {
			return "", err
		}
		return printModule(mod), nil
	}

	fn, err := decompile.Func(r, uint32(*flagFunc))
	if err != nil {
		return "", err
	}
	if *flagDot {
		var buf bytes.Buffer
		if err := dot.Write(&buf, fn); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return printer.Func(fn), nil
}

func printModule(mod *ir.Module) string {
	var b strings.Builder
	for i, fn := range mod.Funcs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(printer.Func(fn))
	}
	return b.String()
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return ioutil.WriteFile(path, []byte(text), 0644)
}
