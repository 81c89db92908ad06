// Package testutil holds helpers shared by package tests
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// GoldenTest produces the output of an operation and the name of the golden
// file it is compared against. A nil output asserts that no golden file
// exists.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output in testdata/<name>.golden.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, goldenFileName := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", goldenFileName+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	if runtime.GOOS == osutil.Windows {
		output = bytes.ReplaceAll(output, []byte("\r\n"), []byte("\n"))
	}

	g.Assert(t, goldenFileName, output)
}

// CopyFile copies a fixture into place, usually a temporary directory.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
