package tui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/pdxmph/clientbook/internal/model"
)

// Store is the persistence the TUI needs
type Store interface {
	ListContacts() ([]model.Contact, error)
	SetPaymentStatus(contactID int, paid bool) error
}

// Options configures the application model
type Options struct {
	Visuals bool
	Actions []TemplateAction
	Copier  Copier
	Avatars *AvatarLoader
	Logger  *zap.Logger
}

// Model represents the main application state
type Model struct {
	store      Store
	contacts   []model.Contact
	selected   int
	width      int
	height     int
	filterMode bool
	filter     textinput.Model
	predicate  model.KeywordPredicate
	visuals    bool
	detail     DetailPanel
	hasDetail  bool
	opts       Options
	keys       keyMap
	err        error
}

// New creates a new application model
func New(store Store, opts Options) (*Model, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Avatars == nil {
		opts.Avatars = NewAvatarLoader(nil, opts.Logger)
	}

	contacts, err := store.ListContacts()
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Find by keywords..."
	ti.Width = 30
	ti.CharLimit = 100
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	m := Model{
		store:    store,
		contacts: contacts,
		filter:   ti,
		visuals:  opts.Visuals,
		opts:     opts,
		keys:     defaultKeyMap(),
	}
	m = m.syncDetail()

	return &m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.filter.Width = m.width/3 - 6
		}
		return m, nil

	case notificationExpiredMsg:
		if m.hasDetail {
			m.detail, cmd = m.detail.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.filterMode {
			m, cmd = m.updateFilter(msg)
		} else {
			m, cmd = m.updateNormal(msg)
		}
		return m.syncDetail(), cmd
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filter.Reset()
		m.filter.Blur()
		m.predicate = model.NewKeywordPredicate(nil)
		m.selected = m.ensureValidSelection()
		return m, nil
	case "enter":
		m.filterMode = false
		m.filter.Blur()
		m.selected = m.ensureValidSelection()
		return m, nil
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.filteredContacts())-1 {
			m.selected++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.predicate = model.ParseKeywords(m.filter.Value())
	m.selected = m.ensureValidSelection()
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.filteredContacts())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true
		m.filter.Reset()
		m.filter.Focus()
		m.predicate = model.NewKeywordPredicate(nil)
		m.selected = m.ensureValidSelection()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Clear):
		if m.filter.Value() != "" || !m.predicate.IsEmpty() {
			m.filter.Reset()
			m.predicate = model.NewKeywordPredicate(nil)
			m.selected = m.ensureValidSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Visuals):
		m.visuals = !m.visuals
		m.opts.Logger.Debug("toggled visuals", zap.Bool("visuals", m.visuals))
		return m, nil

	case key.Matches(msg, m.keys.TogglePaid):
		c, ok := m.selectedContact()
		if !ok {
			return m, nil
		}
		if err := m.store.SetPaymentStatus(c.ID, !c.HasPaid); err != nil {
			m.err = err
			return m, nil
		}
		m.reload()
		return m, nil
	}

	if !m.hasDetail {
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// reload refreshes contacts from the store, keeping the selection in bounds
func (m *Model) reload() {
	contacts, err := m.store.ListContacts()
	if err != nil {
		m.err = err
		return
	}
	m.contacts = contacts
	m.selected = m.ensureValidSelection()
}

// syncDetail rebuilds the detail panel when the selected contact or the
// visuals setting has changed.
func (m Model) syncDetail() Model {
	c, ok := m.selectedContact()
	if !ok {
		m.hasDetail = false
		return m
	}
	if m.hasDetail && m.detail.Visuals() == m.visuals && reflect.DeepEqual(m.detail.Contact(), c) {
		return m
	}

	m.detail = NewDetailPanel(c, m.visuals, DetailOptions{
		Actions: m.opts.Actions,
		Copier:  m.opts.Copier,
		Avatars: m.opts.Avatars,
	})
	m.hasDetail = true
	return m
}

// filteredContacts returns contacts matching the current keywords
func (m Model) filteredContacts() []model.Contact {
	if m.predicate.IsEmpty() {
		return m.contacts
	}
	return m.predicate.Filter(m.contacts)
}

func (m Model) selectedContact() (model.Contact, bool) {
	contacts := m.filteredContacts()
	if len(contacts) == 0 || m.selected >= len(contacts) {
		return model.Contact{}, false
	}
	return contacts[m.selected], true
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	contacts := m.filteredContacts()
	if len(contacts) == 0 {
		return 0
	}
	if m.selected >= len(contacts) {
		return len(contacts) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	listWidth := m.width / 3
	detailWidth := m.width - listWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(m.height-3).Render(m.renderList(listWidth, m.height-3)),
		borderStyle.Width(detailWidth).Height(m.height-3).Render(m.renderDetail(detailWidth)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderHelp())
}

// renderList renders the contact list
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.filterMode || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
		lines = append(lines, "")
		height -= 2
	}

	contacts := m.filteredContacts()

	visibleHeight := height - 2
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	header := fmt.Sprintf("Contacts (%d)", len(contacts))
	if !m.predicate.IsEmpty() {
		header += " [" + strings.Join(m.predicate.Keywords(), " ") + "]"
	}
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", max(width-2, 0)))

	for i := startIdx; i < len(contacts) && i < startIdx+visibleHeight; i++ {
		c := contacts[i]

		marker := "  "
		if !c.HasPaid {
			marker = "$ "
		}
		line := runewidth.Truncate(marker+c.Name, max(width-4, 1), "…")

		if i == m.selected {
			line = selectedStyle.Render(line)
		} else if !c.HasPaid && strings.HasPrefix(line, "$") {
			line = unpaidStyle.Render("$") + line[1:]
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the selected contact
func (m Model) renderDetail(width int) string {
	if !m.hasDetail {
		return "No contact selected"
	}
	return m.detail.View(width)
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.filterMode {
		return " Type keywords • ↑/↓: navigate • Enter: confirm • Esc: cancel"
	}

	help := " j/k: navigate • /: find • p: toggle paid • v: visuals"

	if m.hasDetail {
		for _, a := range m.detail.Actions() {
			help += fmt.Sprintf(" • %s: copy %s", a.Key, a.Label)
		}
	}

	if m.filter.Value() != "" {
		help += " • Esc: clear find"
	}

	help += " • q: quit"

	return help
}
