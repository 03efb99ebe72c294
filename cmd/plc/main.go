// Command plc runs PLC source files, or starts an interactive REPL.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/colinhart/plc/internal/analyzer"
	"github.com/colinhart/plc/internal/interpreter"
	"github.com/colinhart/plc/internal/lexer"
	"github.com/colinhart/plc/internal/parser"
	"github.com/colinhart/plc/internal/pipeline"
	"github.com/colinhart/plc/internal/repl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleRepl() {
		return
	}
	handleRun()
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	switch os.Args[1] {
	case "-help", "--help", "help":
	default:
		return false
	}
	fmt.Println("usage:")
	fmt.Println("  plc <file>         run a PLC source file")
	fmt.Println("  plc                run a PLC program piped via stdin")
	fmt.Println("  plc repl           start an interactive session")
	return true
}

func handleRepl() bool {
	if len(os.Args) < 2 || os.Args[1] != "repl" {
		return false
	}

	historyPath := filepath.Join(homeDir(), ".plc_history.db")
	session, err := repl.New(os.Stdin, os.Stdout, historyPath, os.Stdout.Fd())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error starting repl: %s\n", err)
		os.Exit(1)
	}
	defer session.Close()
	session.Run()
	return true
}

func handleRun() {
	source, err := readSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	if source == "" {
		return
	}

	pipe := pipeline.New(lexer.Stage{}, parser.Stage{}, analyzer.Stage{}, interpreter.Stage{})
	ctx := pipe.Run(pipeline.NewContext(source))

	if len(ctx.Stdout) > 0 {
		os.Stdout.Write(ctx.Stdout)
	}
	if ctx.Failed() {
		for _, e := range ctx.Errors {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	exitCode := 0
	if ctx.Result != nil {
		exitCode = int(ctx.Result.AsInt().Int64())
	}
	os.Exit(exitCode)
}

func readSource() (string, error) {
	if len(os.Args) >= 2 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", os.Args[1], err)
		}
		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("usage: %s <file>, or pipe a program via stdin", os.Args[0])
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, os.Stdin); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return buf.String(), nil
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
