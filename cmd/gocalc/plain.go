package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/history"
)

// runPlain is the read-eval loop used for piped input or when the TUI
// is disabled. Semantics match the TUI: same control words, evaluation
// errors are printed and the loop continues.
func runPlain(calc *gocalc.Calculator, store history.Store, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			// EOF or read failure ends the session.
			fmt.Fprintln(out, "\nExiting gocalc.")
			return scanner.Err()
		}

		output, quit := execLine(calc, store, scanner.Text())
		if output != "" {
			fmt.Fprintln(out, output)
		}
		if quit {
			return nil
		}
	}
}
