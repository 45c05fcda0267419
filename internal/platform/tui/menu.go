package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(36)
	menuActiveCardStyle = menuCardStyle.BorderForeground(lipgloss.Color("212"))
	menuModeStyle       = lipgloss.NewStyle().Bold(true)
	menuDimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBestStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// MenuItem is one playable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Stored high score, 0 when none
}

// MenuModel lets the player pick a mode or open the scoreboard.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   MenuKeyMap
	help   help.Model

	selected   *MenuItem
	showScores bool
	quitting   bool
}

// NewMenuModel lists the registered modes with their best stored scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, info := range modes {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title, Description: info.Description}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(info.ID); err == nil {
			items[i].Best = best
		}
	}

	m := MenuModel{
		items:  items,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch m.keys.Action(msg) {
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = min(len(m.items)-1, m.cursor+1)
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		case MenuActionScoreboard:
			m.showScores = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the mode cards.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	cards := make([]string, len(m.items))
	for i, item := range m.items {
		cards[i] = m.renderCard(item, i == m.cursor)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		menuTitleStyle.Render("M A T C H - 3"),
		menuDimStyle.Render("swap neighbours, line up three or more"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, body)
}

func (m MenuModel) renderCard(item MenuItem, active bool) string {
	var b strings.Builder
	b.WriteString(menuModeStyle.Render(item.Title))
	if item.Best > 0 {
		b.WriteString("  ")
		b.WriteString(menuBestStyle.Render(fmt.Sprintf("best %d", item.Best)))
	}
	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(menuDimStyle.Render(item.Description))
	}

	if active {
		return menuActiveCardStyle.Render(b.String())
	}
	return menuCardStyle.Render(b.String())
}

// Selected returns the picked mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.showScores
}

// Config returns the runtime config with the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu in the local terminal.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	switch {
	case res.WantsScoreboard:
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
