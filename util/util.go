// Package util provides small, domain-agnostic helpers.
package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// TerminalWidth returns the column count of the terminal attached to stdout.
func TerminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fallbackWidth
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// Quantify returns a pluralized count.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", count, plural)
}
