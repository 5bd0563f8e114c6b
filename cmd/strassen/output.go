// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/katalvlaran/strassen/matrix"
)

var (
	passed = color.New(color.FgGreen)
	failed = color.New(color.FgRed, color.Bold)
	best   = color.New(color.FgCyan, color.Bold)
)

// terminalWidth returns the column count of w if w is a terminal, 0 otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return cols
}

// printMatrix writes m under a title. If width > 0 and the widest row does not
// fit, only the shape is printed.
func printMatrix(w io.Writer, title string, m *matrix.Dense, width int) {
	s := m.String()
	if width > 0 && widestLine(s) > width {
		fmt.Fprintf(w, "%s: %d×%d (wider than %d columns, not shown)\n", title, m.Rows(), m.Cols(), width)
		return
	}
	fmt.Fprintf(w, "%s:\n%s", title, s)
}

func widestLine(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, len(line))
	}

	return n
}
