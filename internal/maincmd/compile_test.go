package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/bada/internal/maincmd"
)

func TestCompileFileWritesBeamModule(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.bada")
	require.NoError(t, os.WriteFile(src, []byte("main() = 1 + 2;"), 0o644))

	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{Stdout: &stdout, Stderr: &stderr}

	err := maincmd.CompileFile(context.Background(), stdio, src)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "INFO: Generated")
	require.Empty(t, stderr.String())

	outPath := filepath.Join(dir, "main.beam")
	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "FOR1", string(out[:4]))
}

func TestCompileFileReportsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.bada")
	require.NoError(t, os.WriteFile(src, []byte("main() = ;"), 0o644))

	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{Stdout: &stdout, Stderr: &stderr}

	err := maincmd.CompileFile(context.Background(), stdio, src)
	require.Error(t, err)
	require.NotEmpty(t, stderr.String())

	_, statErr := os.Stat(filepath.Join(dir, "main.beam"))
	require.True(t, os.IsNotExist(statErr), "no output file must be written on error")
}

func TestCompileFileReportsUnknownVariable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.bada")
	require.NoError(t, os.WriteFile(src, []byte("main(a int) = b;"), 0o644))

	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{Stdout: &stdout, Stderr: &stderr}

	err := maincmd.CompileFile(context.Background(), stdio, src)
	require.Error(t, err)
	require.Contains(t, stderr.String(), "unknown variable")

	_, statErr := os.Stat(filepath.Join(dir, "main.beam"))
	require.True(t, os.IsNotExist(statErr))
}
