package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filebrowse/internal/config"
	"filebrowse/internal/infra/logx"
	"filebrowse/internal/store"
	"filebrowse/internal/ui"
)

func main() {
	var startPath string
	flag.StringVar(&startPath, "path", "", "directory to browse")
	flag.Parse()
	if startPath == "" && flag.NArg() > 0 {
		startPath = flag.Arg(0)
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("config:", err)
		os.Exit(1)
	}
	if startPath != "" {
		cfg.StartPath = startPath
	}

	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	onCancel := func() { logx.Infof("browse cancelled by user") }

	if _, err := tea.NewProgram(
		ui.InitialModel(cfg, store.Scanner{}, onCancel),
		tea.WithAltScreen(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
