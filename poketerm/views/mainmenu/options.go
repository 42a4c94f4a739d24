package mainmenu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
	"github.com/nathanieltooley/pallet/poketerm/rendering/components"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// swapped out in tests so the real config file is left alone
var saveConfig = global.SaveConfig

var difficulties = []golurk.Difficulty{golurk.AI_EASY, golurk.AI_NORMAL, golurk.AI_HARD}

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.Focus
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

func persistOptions(m optionsMenuModel) (optionsMenuModel, tea.Cmd) {
	if err := saveConfig(global.Opt); err != nil {
		return m, m.showError(err)
	}

	return m, nil
}

type saveLocationInput struct {
	inner textinput.Model
}

func (s *saveLocationInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := make([]tea.Cmd, 0)

	s.inner.Focus()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) && s.inner.Value() != "" {
			// only the directory is taken from the input, the file name is always ours
			saveDir := filepath.Clean(filepath.Dir(s.inner.Value()))
			if !filepath.IsAbs(saveDir) {
				saveDir = filepath.Join(global.DefaultConfigDir(), saveDir)
			}

			if err := os.MkdirAll(saveDir, 0750); err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				global.Opt.SaveLocation = filepath.Join(saveDir, "save.json")

				var cmd tea.Cmd
				opM, cmd = persistOptions(opM)
				cmds = append(cmds, cmd)
			}

			s.inner.SetValue(global.Opt.SaveLocation)
		}
	}

	var uCmd tea.Cmd
	s.inner, uCmd = s.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (s *saveLocationInput) Blur() {
	s.inner.Blur()
}

func (s *saveLocationInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Save Location", s.inner.View())
}

func (s *saveLocationInput) FocusedView() string {
	return s.View()
}

type playerNameInput struct {
	inner textinput.Model
}

func (p *playerNameInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	fCmd := p.inner.Focus()
	var sCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			playerName := strings.ToUpper(strings.TrimSpace(p.inner.Value()))
			if playerName == "" {
				playerName = "RED"
			}

			global.Opt.PlayerName = playerName
			p.inner.SetValue(playerName)
			opM, sCmd = persistOptions(opM)
		}
	}

	var uCmd tea.Cmd
	p.inner, uCmd = p.inner.Update(msg)

	return opM, tea.Batch(fCmd, sCmd, uCmd)
}

func (p *playerNameInput) Blur() {
	p.inner.Blur()
}

func (p *playerNameInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Player Name", p.inner.View())
}
func (p *playerNameInput) FocusedView() string { return p.View() }

// difficultySelect cycles through the AI difficulties with left and right
type difficultySelect struct {
	index   int
	focused bool
}

func newDifficultySelect() *difficultySelect {
	current := golurk.ParseDifficulty(global.Opt.Difficulty)
	for i, d := range difficulties {
		if d == current {
			return &difficultySelect{index: i}
		}
	}

	return &difficultySelect{index: 1}
}

func (d *difficultySelect) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	d.focused = true

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return opM, nil
	}

	switch {
	case key.Matches(keyMsg, global.MoveLeftKey):
		d.index = (d.index + len(difficulties) - 1) % len(difficulties)
	case key.Matches(keyMsg, global.MoveRightKey):
		d.index = (d.index + 1) % len(difficulties)
	default:
		return opM, nil
	}

	global.Opt.Difficulty = difficulties[d.index].String()
	return persistOptions(opM)
}

func (d *difficultySelect) Blur() {
	d.focused = false
}

func (d *difficultySelect) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Difficulty", rendering.ButtonStyle.Render(difficulties[d.index].String()))
}

func (d *difficultySelect) FocusedView() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Difficulty", rendering.HighlightedButtonStyle.Render(fmt.Sprintf("< %s >", difficulties[d.index])))
}

type debugToggle struct{}

func (t *debugToggle) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, global.SelectKey) {
		global.Opt.Debug = !global.Opt.Debug

		level := zerolog.InfoLevel
		if global.Opt.Debug {
			level = zerolog.DebugLevel
		}
		global.UpdateLogLevel(level)

		return persistOptions(opM)
	}

	return opM, nil
}

func (t *debugToggle) Blur() {}

func (t *debugToggle) label() string {
	if global.Opt.Debug {
		return "Debug Logging: On"
	}

	return "Debug Logging: Off"
}

func (t *debugToggle) View() string {
	return rendering.ButtonStyle.Render(t.label())
}

func (t *debugToggle) FocusedView() string {
	return rendering.HighlightedButtonStyle.Render(t.label())
}

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	prompt := textinput.New()
	prompt.Focus()
	prompt.SetValue(global.Opt.SaveLocation)

	namePrompt := textinput.New()
	namePrompt.CharLimit = 10
	namePrompt.SetValue(global.Opt.PlayerName)

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocus(&saveLocationInput{prompt}, &playerNameInput{namePrompt}, newDifficultySelect(), &debugToggle{}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ErrorStyle.Render(m.err.Error())))
	}

	views := append(m.focus.Views(), "", "tab / shift+tab to move, esc to go back")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, views...))
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

		if key.Matches(msg, global.DownTabKey) {
			m.focus.Next()
		}

		if key.Matches(msg, global.UpTabKey) {
			m.focus.Prev()
		}

		// esc only, backspace belongs to the text inputs here
		if msg.Type == tea.KeyEsc {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	newModel, focusCmd := m.focus.UpdateFocused(m, msg)
	m = newModel.(optionsMenuModel)
	cmds = append(cmds, focusCmd)

	return m, tea.Batch(cmds...)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
