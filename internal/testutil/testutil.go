// Package testutil holds helpers shared by package tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/intervals/internal/osutil"
)

const fixtureDir = "testdata"

// CompareGoldenFile verifies that got matches testdata/<name>.golden. Run the
// tests with -update to rewrite the golden file.
func CompareGoldenFile(t *testing.T, name string, got []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(fixtureDir),
	)

	g.Assert(t, name, got)
}

// WriteFile creates a file with the given content in a fresh temporary
// directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, []byte(content), osutil.FilePermission); err != nil {
		t.Fatal(err)
	}

	return path
}
