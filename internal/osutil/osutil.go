// Package osutil holds platform constants and helpers for the user's
// environment
package osutil

import (
	"io/fs"
	"os"
	"runtime"
)

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// FilePermission is the mode of every file intervals creates.
const FilePermission fs.FileMode = 0o600

const (
	defaultEditor        = "nano"
	defaultWindowsEditor = "C:\\Windows\\system32\\notepad.exe"
)

// Exit terminates the program with the given code.
func Exit(code exitCode) {
	os.Exit(int(code))
}

// Editor returns the command used to edit text files: $VISUAL, then $EDITOR,
// then a platform default.
func Editor() string {
	return editor(os.Getenv, runtime.GOOS)
}

func editor(getenv func(string) string, goos string) string {
	fallback := defaultEditor
	if goos == Windows {
		fallback = defaultWindowsEditor
	}

	for _, e := range []string{getenv("VISUAL"), getenv("EDITOR")} {
		if e != "" {
			return e
		}
	}

	return fallback
}
