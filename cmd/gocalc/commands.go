package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/history"
)

const banner = `gocalc - simple command-line calculator
Type expressions to evaluate them.
Type 'history' to show past results, 'clear' to erase history, 'quit' to exit.`

// execLine handles a single REPL input line: control words first, then
// expression evaluation. It returns the text to display and whether the
// loop should terminate. Evaluation errors are reported as output, not
// returned: the read loop must keep running.
func execLine(calc *gocalc.Calculator, store history.Store, line string) (output string, quit bool) {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return "", false
	}

	switch strings.ToLower(stripped) {
	case "quit", "exit":
		return "Goodbye.", true

	case "history":
		records, err := store.List()
		if err != nil {
			return "Error: " + err.Error(), false
		}
		if len(records) == 0 {
			return "(no history)", false
		}
		var b strings.Builder
		for i, r := range records {
			fmt.Fprintf(&b, "%d: %s = %s", i+1, r.Expression, formatResult(r.Result))
			if i < len(records)-1 {
				b.WriteByte('\n')
			}
		}
		return b.String(), false

	case "clear":
		if err := store.Clear(); err != nil {
			return "Error: " + err.Error(), false
		}
		return "History cleared.", false
	}

	result, err := calc.Eval(stripped)
	if err != nil {
		return "Error: " + err.Error(), false
	}
	return formatResult(result), false
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
