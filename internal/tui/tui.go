// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/staranto/vlctlgo/internal/config"
	"github.com/staranto/vlctlgo/internal/vlist"
)

// chromeHeight is the rows reserved for status bar and help line.
const chromeHeight = 2

// wheelScrollLines is how many lines a mouse wheel tick moves.
const wheelScrollLines = 3

// Model is the bubbletea model for the view command.
type Model struct {
	list  *vlist.List
	keys  KeyMap
	help  help.Model
	title string
	size  int64

	width  int
	height int
	ready  bool
}

// NewModel wraps a populated list. title is the source spec, size its raw
// byte size (-1 if unknown).
func NewModel(list *vlist.List, title string, size int64) Model {
	return Model{
		list:  list,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		title: title,
		size:  size,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One column is the scrollbar.
		m.list.SetSize(msg.Width-1, msg.Height-chromeHeight)
		m.help.Width = msg.Width
		m.ready = true

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.ScrollBy(-wheelScrollLines)
		case tea.MouseButtonWheelDown:
			m.list.ScrollBy(wheelScrollLines)
		}

	case tea.KeyMsg:
		_, viewport := m.list.Size()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.ScrollBy(-1)
		case key.Matches(msg, m.keys.Down):
			m.list.ScrollBy(1)
		case key.Matches(msg, m.keys.PageUp):
			m.list.ScrollBy(-viewport)
		case key.Matches(msg, m.keys.PageDown):
			m.list.ScrollBy(viewport)
		case key.Matches(msg, m.keys.Top):
			m.list.GoToTop()
		case key.Matches(msg, m.keys.Bottom):
			m.list.GoToBottom()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	// One measure pass per frame; View composes from its geometry.
	start, end := m.list.Layout()
	content := m.list.View()

	_, viewport := m.list.Size()
	bar := RenderScrollbar(ScrollbarParams{
		TotalLines:   m.list.Cache().TotalHeight(),
		Offset:       m.list.Offset(),
		VisibleLines: viewport,
		TrackHeight:  viewport,
	})

	body := lipgloss.JoinHorizontal(lipgloss.Top, content, bar)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.statusView(start, end),
		m.help.View(m.keys),
	)
}

func (m Model) statusView(start, end int) string {
	var size string
	if m.size >= 0 {
		size = humanize.Bytes(uint64(m.size))
	} else {
		size = "?"
	}

	status := fmt.Sprintf(" %s  rows %d-%d of %d  %3.0f%%  %s",
		m.title, start+1, end+1, m.list.Len(), m.list.ScrollPercent()*100, size)

	fg, _ := config.GetString("view.colors.status", "236")
	bg, _ := config.GetString("view.colors.statusbg", "252")

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Width(m.width).
		Render(status)
}

// Run starts the program in the alt screen with mouse support.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
