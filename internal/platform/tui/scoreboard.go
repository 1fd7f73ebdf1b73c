package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dev0926/candy-tiles/internal/core"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/registry"
	"github.com/dev0926/candy-tiles/internal/storage"
)

const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scorePage is one tab of the scoreboard: the high scores of a game mode, or the
// campaign progress when gameID is empty.
type scorePage struct {
	title  string
	gameID string
}

func (p scorePage) isProgress() bool { return p.gameID == "" }

// ScoreboardModel shows high scores per game mode and the campaign progress.
type ScoreboardModel struct {
	pages     []scorePage
	page      int
	store     *storage.Store
	campaign  []levels.Level
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	rows      []table.Row
	summary   string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. campaign names the rows of the
// progress page and may be nil.
func NewScoreboardModel(store *storage.Store, campaign []levels.Level, width, height int) ScoreboardModel {
	var pages []scorePage
	for _, g := range registry.List() {
		pages = append(pages, scorePage{title: g.Title, gameID: g.ID})
	}
	pages = append(pages, scorePage{title: "Levels"})

	m := ScoreboardModel{
		pages:    pages,
		store:    store,
		campaign: campaign,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) current() scorePage {
	return m.pages[m.page]
}

// load reads the current page from the store and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.summary = ""
	if m.current().isProgress() {
		m.loadProgress()
	} else {
		m.loadScores(m.current().gameID)
	}
	m.table = m.createTable()
}

func (m *ScoreboardModel) loadScores(gameID string) {
	if m.store == nil {
		return
	}
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}

	if stats, err := m.store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.summary = fmt.Sprintf("%d games  |  avg %.0f  |  last played %s",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("Jan 02 15:04"))
	}
}

// loadProgress lists completed campaign levels with their best result.
func (m *ScoreboardModel) loadProgress() {
	if m.store == nil {
		return
	}
	progress, err := m.store.CompletedLevels()
	if err != nil || len(progress) == 0 {
		return
	}

	names := make(map[int]string, len(m.campaign))
	for _, lvl := range m.campaign {
		names[lvl.ID] = lvl.Name
	}

	total := 0
	for _, id := range slices.Sorted(maps.Keys(progress)) {
		p := progress[id]
		name := names[id]
		if name == "" {
			name = fmt.Sprintf("Level %d", id)
		}
		stars := core.Clamp(p.Stars, 0, 3)
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("%d. %s", id, name),
			strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars),
			fmt.Sprintf("%d", p.BestScore),
		})
		total += stars
	}

	if len(m.campaign) > 0 {
		m.summary = fmt.Sprintf("%d of %d levels  |  %d of %d stars",
			len(progress), len(m.campaign), total, 3*len(m.campaign))
	}
}

// createTable builds the table for the current page sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.current().isProgress() {
		columns = []table.Column{
			{Title: "Level", Width: 22},
			{Title: "Stars", Width: 6},
			{Title: "Best", Width: 8},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // title, tabs, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.page = (m.page + 1) % len(m.pages)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws the page titles with the current one highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.page {
			tabs[i] = activeTabStyle.Render(p.title)
		} else {
			tabs[i] = tabStyle.Render(p.title)
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.current().title)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		msg := "No scores recorded yet.\nPlay a game to set a high score!"
		if m.current().isProgress() {
			msg = "No levels completed yet."
		}
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(msg)
	}

	view := m.table.View()
	if m.summary != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.summary)
	}
	return view
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, campaign []levels.Level, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, campaign, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
