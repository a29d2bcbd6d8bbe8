package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/wemarz/cinelux/internal/catalog"
	"github.com/wemarz/cinelux/internal/chat"
	"github.com/wemarz/cinelux/internal/config"
	"github.com/wemarz/cinelux/internal/library"
	"github.com/wemarz/cinelux/internal/ui"
)

var version = "dev"

func main() {
	cfg := config.Load()

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v":
			fmt.Printf("cinelux %s\n", version)
			os.Exit(0)
		case "--low-fx":
			if !cfg.LowFX {
				cfg.LowFX = true
				config.Save(cfg)
			}
		case "--full-fx":
			if cfg.LowFX {
				cfg.LowFX = false
				config.Save(cfg)
			}
		case "--model":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--model requires a model name argument")
				os.Exit(1)
			}
			i++
			cfg.ChatModel = args[i]
			config.Save(cfg)
		}
	}

	// Key for the AI assistant comes from the environment; a local .env
	// is a convenience for development setups.
	_ = godotenv.Load()
	chatClient := chat.NewClient(os.Getenv("GEMINI_API_KEY"), cfg.ChatModel)

	lib := library.Open(library.DefaultPath())

	// Ensure the terminal is large enough for the scene layout
	const minCols, minRows = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < minCols || h < minRows {
			cols, rows := w, h
			if cols < minCols {
				cols = minCols
			}
			if rows < minRows {
				rows = minRows
			}
			fmt.Fprintf(os.Stdout, "\x1b[8;%d;%dt", rows, cols)
		}
	}

	p := tea.NewProgram(
		ui.NewModel(catalog.New(), lib, cfg, chatClient),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
