package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	promptMain  = "hclcad> "
	promptCont  = "   ...> "
	historyFile = ".hclcad_history"
)

// RunInteractive starts a prompt on the terminal. The root file, if
// configured, is evaluated first.
func (a *App) RunInteractive(ctx context.Context) error {
	session, err := a.NewSession(ctx)
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(a.outW, "Type :help for commands, :quit to exit.")
	for {
		code, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(a.outW)
			return nil
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := a.command(session, trimmed); quit {
				return nil
			}
			continue
		}

		v, err := session.Eval(code)
		if err == nil && !v.IsInvalid() {
			fmt.Fprintln(a.outW, v)
		}
	}
}

// command runs a prompt command and reports whether the session ends.
func (a *App) command(s *Session, cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":symbols":
		if err := s.Result().Table.Root().Print(a.outW); err != nil {
			a.logger.Error("Failed to print symbols.", "error", err)
		}
	case ":models":
		ec := s.Result().Eval
		for _, h := range ec.Roots() {
			if err := ec.Models().Print(a.outW, h); err != nil {
				a.logger.Error("Failed to print models.", "error", err)
			}
		}
	case ":help":
		fmt.Fprintln(a.outW, ":symbols  print the symbol tree")
		fmt.Fprintln(a.outW, ":models   print the models built so far")
		fmt.Fprintln(a.outW, ":quit     leave")
	default:
		fmt.Fprintf(a.outW, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return false
}

// readInput reads lines until all brackets are closed. It returns false at
// the end of input.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if complete(b.String()) {
			return b.String(), true
		}
	}
}
