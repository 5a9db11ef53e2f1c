package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inamate/sketchpad/internal/config"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/tui"
)

const logFile = "sketchpad-tui.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchpad-tui: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file when debugging
	// and nowhere otherwise.
	var out io.Writer = io.Discard
	level, _ := cfg.SlogLevel()
	if level <= slog.LevelDebug {
		f, err := tea.LogToFile(logFile, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "sketchpad-tui: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	geom.SetLogger(logger)

	eng := engine.NewEngine()
	if err := eng.LoadProgram(cfg.Demo); err != nil {
		fmt.Fprintf(os.Stderr, "sketchpad-tui: %v\n", err)
		os.Exit(1)
	}
	eng.SetRotation(cfg.RotationStep, cfg.TickInterval)

	m := tui.NewModel(eng, cfg.TickInterval)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sketchpad-tui: %v\n", err)
		os.Exit(1)
	}
}
