// Command gocalc is an interactive command-line calculator.
//
// Usage:
//
//	gocalc                  interactive REPL (TUI on a terminal,
//	                        plain read-eval loop on piped input)
//	gocalc -e "1 + 2 * 3"   evaluate a single expression and exit
//	gocalc -db calc.db      persist history to a SQLite database
//
// Inside the REPL, expressions are evaluated as typed; the control
// words "history", "clear" and "quit"/"exit" are recognized before
// anything reaches the evaluator.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/ext"
	"github.com/sandrolain/gocalc/pkg/history"
)

func main() {
	var (
		expression = flag.String("e", "", "evaluate a single expression and exit")
		dbPath     = flag.String("db", "", "persist history to a SQLite database at this path")
		plain      = flag.Bool("plain", false, "force the plain read-eval loop instead of the TUI")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*debug)
	slog.SetDefault(logger)

	store, closeStore, err := openStore(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeStore()

	calc := gocalc.New(
		gocalc.WithHistory(store),
		gocalc.WithCaching(true),
		gocalc.WithLogger(logger),
		gocalc.WithDebug(*debug),
	)
	if err := calc.RegisterAll(ext.All()...); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// One-shot mode
	if *expression != "" {
		result, err := calc.Eval(*expression)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(formatResult(result))
		return
	}

	if *plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runPlain(calc, store, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(calc, store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// openStore returns the history store: SQLite-backed when a path is
// given, in-memory otherwise.
func openStore(dbPath string) (history.Store, func(), error) {
	if dbPath == "" {
		return history.NewLog(), func() {}, nil
	}
	store, err := history.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
