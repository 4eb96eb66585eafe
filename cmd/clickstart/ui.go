package main

import (
	"os"

	"github.com/fatih/color"
)

// Colored output respects NO_COLOR and TTY detection via the color package.

func successf(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(os.Stderr, format, args...)
}

func infof(format string, args ...any) {
	color.New(color.FgCyan).Fprintf(os.Stderr, format, args...)
}

func errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format, args...)
}
