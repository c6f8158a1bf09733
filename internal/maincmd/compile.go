package maincmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/bada/lang/compiler"
	"github.com/mna/bada/lang/parser"
	"github.com/mna/bada/lang/scanner"
)

// Compile is the "compile" sub-command: it parses and compiles the named
// source file and writes the resulting module next to it, with its
// extension replaced by ".beam".
func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CompileFile(ctx, stdio, args[0])
}

// CompileFile drives the whole pipeline for a single source file: parse,
// compile, write. It prints exactly one INFO line on success, or on
// failure one ERROR line per reported error (a parse may report several),
// in the style the original bada driver used, and never writes a partial
// output file.
func CompileFile(ctx context.Context, stdio mainer.Stdio, path string) error {
	fs, mod, err := parser.ParseFileFS(path)
	if err != nil {
		if el, ok := err.(scanner.ErrorList); ok {
			for _, e := range el {
				fmt.Fprintf(stdio.Stderr, "ERROR: %s\n", e)
			}
		} else {
			fmt.Fprintf(stdio.Stderr, "ERROR: %s\n", err)
		}
		return err
	}

	out, err := compiler.Compile(mod, fs)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR: %s\n", err)
		return err
	}

	outPath := withExt(path, ".beam")
	if err := writeFile(ctx, outPath, out); err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR: could not write file %s: %s\n", outPath, err)
		return err
	}

	fmt.Fprintf(stdio.Stdout, "INFO: Generated %s\n", outPath)
	return nil
}

// withExt returns path with its extension, if any, replaced by ext.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func writeFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
