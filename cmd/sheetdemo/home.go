package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/sheetkit/internal/journal"
	"github.com/jask/sheetkit/internal/logging"
	"github.com/jask/sheetkit/internal/sheet"
)

const (
	sheetConfirm = "confirm-dialog"
	sheetHelp    = "help"
	sheetJournal = "journal"
)

func registerSheets(reg *sheet.Registry[sheet.Component], scope string) {
	reg.RegisterSheet(sheetConfirm, sheet.ComponentFunc(renderConfirm), scope)
	reg.RegisterSheet(sheetHelp, sheet.ComponentFunc(renderHelp), scope)
	reg.RegisterSheet(sheetJournal, sheet.ComponentFunc(renderJournal), scope)
}

func renderConfirm(p sheet.Props) string {
	title := "Are you sure?"
	if m, ok := p.Payload.(map[string]string); ok && m["title"] != "" {
		title = m["title"]
	}
	return title + "\n\nThis cannot be undone."
}

func renderHelp(sheet.Props) string {
	return strings.Join([]string{
		"c  open confirm dialog",
		"l  show recent sheet events",
		"?  this help",
		"q  quit",
	}, "\n")
}

func renderJournal(p sheet.Props) string {
	entries, _ := p.Payload.([]journal.Entry)
	if len(entries) == 0 {
		return "No events recorded."
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %-5s %s/%s", e.CreatedAt.Local().Format(time.TimeOnly), e.Kind, e.Scope, e.SheetID)
	}
	return b.String()
}

// home is the base screen the sheets are drawn over.
type home struct {
	ctx     context.Context
	manager *sheet.Manager
	journal *journal.Journal
}

func newHome(ctx context.Context, m *sheet.Manager, j *journal.Journal) *home {
	return &home{ctx: ctx, manager: m, journal: j}
}

func (h *home) Init() tea.Cmd { return nil }

func (h *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch km.String() {
	case "q":
		return h, tea.Quit
	case "c":
		h.manager.Show(sheetConfirm, map[string]string{"title": "Delete?"})
	case "?":
		h.manager.Show(sheetHelp, nil)
	case "l":
		h.manager.Show(sheetJournal, h.recent())
	}
	return h, nil
}

func (h *home) recent() []journal.Entry {
	if h.journal == nil {
		return nil
	}
	entries, err := h.journal.Recent(h.ctx, 10)
	if err != nil {
		logging.FromContext(h.ctx).Warn("load journal", "err", err)
		return nil
	}
	return entries
}

func (h *home) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("sheetkit demo")
	return title + "\n\nPress ? for help."
}
