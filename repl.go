package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/interp"
	"lox/parser"
)

const (
	promptMain = "> "
	promptCont = ". "
)

func historyPath() string {
	if p := os.Getenv("LOX_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lox_history")
}

func cmdRepl(trace bool) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	// One scope stack for the whole session so declarations persist.
	ev := interp.New(interp.NewScopeStack(), os.Stdout)
	for {
		src, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := runSource(ev, src, os.Stdout, trace); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// readStatement reads lines until they parse or fail for a reason other
// than running out of input. ok is false at end of input.
func readStatement(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			return "", true
		}
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := parser.ParseProgram(src); parser.IsIncomplete(err) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}
