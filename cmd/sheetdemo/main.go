package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheetkit/internal/config"
	"github.com/jask/sheetkit/internal/eventbus"
	"github.com/jask/sheetkit/internal/journal"
	"github.com/jask/sheetkit/internal/logging"
	"github.com/jask/sheetkit/internal/sheet"
	"github.com/jask/sheetkit/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	logFile, err := logging.OpenFile(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, level)
	slog.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	bus := eventbus.NewLocal()
	registry := sheet.NewRegistry[sheet.Component](bus)
	manager := sheet.NewManager(bus, registry.AllIDs, logger)

	opts := []sheet.Option{sheet.WithLogger(logger)}
	var jr *journal.Journal
	if cfg.Journal.Enabled {
		jr, err = journal.Open(cfg.Journal.Path, logger)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		defer jr.Close()
		opts = append(opts, sheet.WithObserver(jr))
	}

	registerSheets(registry, cfg.UI.Scope)

	home := newHome(ctx, manager, jr)
	host := tui.NewHost(home, tui.Deps{
		Registry: registry,
		Bus:      bus,
		Manager:  manager,
		Scope:    cfg.UI.Scope,
		Options:  opts,
	})
	defer host.Close()

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(host, progOpts...)
	host.Attach(p)
	logger.Info("sheetdemo starting", "scope", cfg.UI.Scope, "journal", cfg.Journal.Enabled)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
