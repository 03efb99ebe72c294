// Package repl implements an interactive front end over the pipeline
// package: each submission is a complete PLC program, run end to end, with
// its outcome persisted to a local SQLite history and its session tagged
// by a UUID. This is ambient CLI tooling, not part of the language core
// (spec §1 Out of scope: "CLI argument handling" is glue).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/colinhart/plc/internal/analyzer"
	"github.com/colinhart/plc/internal/interpreter"
	"github.com/colinhart/plc/internal/lexer"
	"github.com/colinhart/plc/internal/parser"
	"github.com/colinhart/plc/internal/pipeline"
)

const prompt = "plc> "
const contPrompt = " ... "

// REPL reads multi-line PLC programs (terminated by a blank line),
// evaluates them through the standard pipeline, and prints the outcome.
type REPL struct {
	sessionID string
	history   *History
	in        *bufio.Scanner
	out       io.Writer
	colorize  bool
	showTime  bool // toggled by :time; reports each submission's wall-clock cost
	pipe      *pipeline.Pipeline
}

// New builds a REPL reading from in and writing to out, persisting history
// to historyPath. colorTarget is the file descriptor output is actually
// connected to (used only to decide whether ANSI coloring is safe).
func New(in io.Reader, out io.Writer, historyPath string, colorTarget uintptr) (*REPL, error) {
	h, err := OpenHistory(historyPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	return &REPL{
		sessionID: uuid.New().String(),
		history:   h,
		in:        bufio.NewScanner(in),
		out:       out,
		colorize:  isatty.IsTerminal(colorTarget),
		pipe:      pipeline.New(lexer.Stage{}, parser.Stage{}, analyzer.Stage{}, interpreter.Stage{}),
	}, nil
}

// Close releases the history database handle.
func (r *REPL) Close() error {
	return r.history.Close()
}

// Run drives the read-eval-print loop until EOF or a `:quit`.
func (r *REPL) Run() {
	fmt.Fprintf(r.out, "plc repl — session %s\n", r.sessionID)
	fmt.Fprintln(r.out, "enter a complete program, then a blank line to run it. :help for commands.")

	for {
		fmt.Fprint(r.out, prompt)
		source, ok := r.readSubmission()
		if !ok {
			return
		}
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if r.handleMeta(trimmed) {
				return
			}
			continue
		}
		r.evaluate(source)
	}
}

// readSubmission reads lines until a blank line or EOF, returning the
// joined source and whether anything was read at all.
func (r *REPL) readSubmission() (string, bool) {
	var lines []string
	for r.in.Scan() {
		line := r.in.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		if len(lines) > 0 {
			fmt.Fprint(r.out, contPrompt)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func (r *REPL) handleMeta(cmd string) (quit bool) {
	switch {
	case cmd == ":quit" || cmd == ":q":
		return true
	case cmd == ":help":
		fmt.Fprintln(r.out, "commands: :history [n], :time, :help, :quit")
	case cmd == ":history" || strings.HasPrefix(cmd, ":history "):
		r.printHistory(cmd)
	case cmd == ":time":
		r.showTime = !r.showTime
		fmt.Fprintf(r.out, "timing %s\n", onOff(r.showTime))
	default:
		fmt.Fprintf(r.out, "unrecognized command: %s\n", cmd)
	}
	return false
}

func (r *REPL) printHistory(cmd string) {
	n := 10
	if parts := strings.Fields(cmd); len(parts) == 2 {
		fmt.Sscanf(parts[1], "%d", &n)
	}
	entries, err := r.history.Recent(n)
	if err != nil {
		fmt.Fprintf(r.out, "error reading history: %s\n", err)
		return
	}
	for _, e := range entries {
		age := humanize.Time(e.RanAt)
		fmt.Fprintf(r.out, "[%d] %s (%s, took %s)\n", e.ID, oneLine(e.Input), age, e.Duration)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 60 {
		return s[:60] + "…"
	}
	return s
}

// evaluate runs source through the full pipeline, prints the outcome, and
// records it to history.
func (r *REPL) evaluate(source string) {
	start := time.Now()
	ctx := pipeline.NewContext(source)
	ctx = r.pipe.Run(ctx)
	elapsed := time.Since(start)

	var output string
	if ctx.Failed() {
		for _, e := range ctx.Errors {
			r.printError(e.Error())
		}
		output = ctx.Errors[len(ctx.Errors)-1].Error()
	} else {
		if len(ctx.Stdout) > 0 {
			r.out.Write(ctx.Stdout)
		}
		result := "nil"
		if ctx.Result != nil {
			result = ctx.Result.String()
		}
		r.printResult(result)
		output = result
	}

	if r.showTime {
		fmt.Fprintf(r.out, "(took %s)\n", humanizeDuration(elapsed))
	}

	if err := r.history.Record(r.sessionID, source, output, start, elapsed); err != nil {
		fmt.Fprintf(r.out, "warning: failed to record history: %s\n", err)
	}
}

// humanizeDuration renders elapsed in the coarse, rounded vocabulary
// humanize.RelTime uses for ages ("3 seconds", "2 minutes"), rather than a
// raw time.Duration string. Sub-second runs are the common case for this
// interpreter, so those are rendered precisely instead of collapsing to
// RelTime's "now".
func humanizeDuration(elapsed time.Duration) string {
	if elapsed < time.Second {
		return elapsed.Round(time.Microsecond).String()
	}
	now := time.Now()
	return strings.TrimSpace(humanize.RelTime(now.Add(-elapsed), now, "", ""))
}

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

func (r *REPL) printError(msg string) {
	if r.colorize {
		fmt.Fprintf(r.out, "%s%s%s\n", ansiRed, msg, ansiReset)
		return
	}
	fmt.Fprintln(r.out, msg)
}

func (r *REPL) printResult(msg string) {
	if r.colorize {
		fmt.Fprintf(r.out, "%s=> %s%s\n", ansiGreen, msg, ansiReset)
		return
	}
	fmt.Fprintf(r.out, "=> %s\n", msg)
}
