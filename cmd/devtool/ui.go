package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// Status lines go to stdout, failures to stderr so `devtool token` output stays pipeable.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func printLine(w io.Writer, color, marker, format string, a ...interface{}) {
	fmt.Fprintf(w, color+marker+" "+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	printLine(stderr, colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printLine(stdout, colorGreen, "✓", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printLine(stderr, colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	fmt.Fprintf(stdout, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}
