// Command bprog is the bprog driver: it loads a source file and runs
// it to completion, or drops into a colored, history-backed REPL.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/bprog-lang/bprog/pkg/eval"
	"github.com/bprog-lang/bprog/pkg/parser"
)

var (
	flagReplMode = flag.Bool("repl-mode", false, "force an interactive REPL even when --src is given")
	flagSrc      = flag.String("src", "", "path to a bprog source file to run")
	flagDebug    = flag.Bool("debug", false, "print the stack after every REPL line")
)

var (
	bannerColor = color.New(color.FgGreen)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
	infoColor   = color.New(color.FgCyan)
)

func main() {
	flag.Parse()

	if *flagSrc != "" && !*flagReplMode {
		if err := runFile(*flagSrc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runREPL()
}

// runFile loads and runs one source file to completion in fatal mode
// (spec §6): any top-of-stack error terminates the program, and the
// driver requires the stack hold exactly one residual value once the
// program is done.
func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	parsed, err := parser.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", path, err)
	}

	ev := eval.New(os.Stdout, os.Stdin, true)
	if _, err := eval.Run(ev, parsed); err != nil {
		return fmt.Errorf("runtime error in %s: %w", path, err)
	}

	if ev.Stack.Size() != 1 {
		return fmt.Errorf("%s: expected exactly one residual stack value, got %d", path, ev.Stack.Size())
	}
	return nil
}

// runREPL starts the interactive loop. Unlike runFile, the evaluator
// runs in non-fatal mode (spec §7): a top-of-stack error is displayed
// and the stack is cleared, but the session continues.
func runREPL() {
	printBanner(os.Stdout)

	rl, err := readline.New("bprog> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New(os.Stdout, os.Stdin, false)
	ev.Debug = *flagDebug

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(os.Stdout, "bye")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if handled := handleMeta(ev, line, os.Stdout); handled {
			continue
		}

		rl.SaveHistory(line)
		evalLine(ev, line, os.Stdout)
	}
}

// handleMeta dispatches the REPL's meta-commands (spec §6: `:dbg :i :h
// :c :q`), never forwarding them to the evaluator.
func handleMeta(ev *eval.Evaluator, line string, out io.Writer) bool {
	switch strings.TrimSpace(line) {
	case ":dbg":
		ev.Debug = !ev.Debug
		infoColor.Fprintf(out, "debug mode: %v\n", ev.Debug)
		return true
	case ":i":
		printStack(ev, out)
		return true
	case ":h":
		printHelp(out)
		return true
	case ":c":
		ev.Stack.Clear()
		infoColor.Fprintln(out, "stack cleared")
		return true
	case ":q":
		fmt.Fprintln(out, "bye")
		os.Exit(0)
	}
	return false
}

func evalLine(ev *eval.Evaluator, line string, out io.Writer) {
	parsed, err := parser.ParseString(line)
	if err != nil {
		errorColor.Fprintf(out, "parse error: %v\n", err)
		return
	}

	// eval.Run already prints the diagnostic once a top-of-stack error
	// surfaces (spec §7); the driver's only job here is to clear the
	// stack so the REPL session can keep going.
	if halted, _ := eval.Run(ev, parsed); halted {
		ev.Stack.Clear()
		return
	}

	if ev.Debug {
		printStack(ev, out)
		return
	}

	if top, ok := ev.Stack.Top(); ok {
		resultColor.Fprintf(out, "=> %s\n", top.String())
	}
}

func printStack(ev *eval.Evaluator, out io.Writer) {
	items := ev.Stack.Items()
	strs := make([]string, len(items))
	for i, p := range items {
		strs[i] = p.String()
	}
	infoColor.Fprintf(out, "stack: [ %s ]\n", strings.Join(strs, " "))
}

func printBanner(out io.Writer) {
	bannerColor.Fprintln(out, "bprog - a concatenative, stack-oriented language")
	infoColor.Fprintln(out, "type :h for help, :q to quit")
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `
:dbg   toggle printing the full stack after every line
:i     show the current stack
:h     show this help
:c     clear the stack
:q     quit
`)
}
