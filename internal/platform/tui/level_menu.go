package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dev0926/candy-tiles/internal/core"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/storage"
)

// LevelSelectModel lets users pick a campaign level. Locked levels are shown but
// cannot be selected.
type LevelSelectModel struct {
	levels    []levels.Level
	progress  map[int]storage.LevelProgress
	allOpen   bool // no storage to read progress from
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // level ID, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level picker. The cursor starts on the furthest
// unlocked level.
func NewLevelSelectModel(list []levels.Level, store *storage.Store, width, height int) LevelSelectModel {
	progress := map[int]storage.LevelProgress{}
	if store != nil {
		if p, err := store.CompletedLevels(); err == nil {
			progress = p
		}
	}

	m := LevelSelectModel{
		levels:    list,
		progress:  progress,
		width:     width,
		height:    height,
		allOpen:   store == nil,
		keyMapper: NewKeyMapper(),
	}
	if m.allOpen {
		return m
	}
	for i, lvl := range list {
		if m.unlocked(lvl.ID) {
			m.cursor = i
		}
	}
	return m
}

// unlocked applies the unlock rule. Without storage every level is open.
func (m LevelSelectModel) unlocked(id int) bool {
	if m.allOpen || (len(m.levels) > 0 && id == m.levels[0].ID) {
		return true
	}
	return storage.Unlocked(m.progress, id)
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		if lvl := m.levels[m.cursor]; m.unlocked(lvl.ID) {
			m.selected = lvl.ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		status := "locked"
		if p, ok := m.progress[lvl.ID]; ok {
			status = strings.Repeat("★", p.Stars) + strings.Repeat("☆", 3-p.Stars)
		} else if m.unlocked(lvl.ID) {
			status = "new"
		}

		line := fmt.Sprintf("%s%2d. %-16s %2d moves  %s", cursor, lvl.ID, lvl.Name, lvl.Moves, status)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level ID, 0 while still choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker and returns the chosen level ID, or 0 when
// the user backed out or quit.
func RunLevelSelector(list []levels.Level, store *storage.Store, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(list, store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return 0, nil
	}

	return m.Selected(), nil
}
