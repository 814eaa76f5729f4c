package main

import (
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"mint-lang/internal/runtime"
)

// chooseInput picks the source for the read primitive: an interactive
// prompt when stdin is a terminal (or the config forces it), plain line
// reads otherwise.
func chooseInput(cfg Config) runtime.InputSource {
	interactive := isTerminal(os.Stdin)
	if cfg.Interactive != nil {
		interactive = *cfg.Interactive
	}
	if interactive {
		if src, err := newReadlineSource(); err == nil {
			return src
		}
	}
	return runtime.NewLineSource(os.Stdin)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// readlineSource serves the read primitive from an interactive terminal
// prompt with history (~/.mint_history).
type readlineSource struct {
	rl *readline.Instance
}

func newReadlineSource() (*readlineSource, error) {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".mint_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "read> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, err
	}
	return &readlineSource{rl: rl}, nil
}

func (s *readlineSource) ReadLine() (string, error) {
	return s.rl.Readline()
}

func (s *readlineSource) Close() error {
	return s.rl.Close()
}
