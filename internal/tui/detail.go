package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/clientbook/internal/model"
)

// NotificationDuration is how long the copy confirmation stays visible
const NotificationDuration = time.Second

const (
	copiedText  = "Copied to clipboard!"
	avatarWidth = 16
)

// Copier places text on the clipboard
type Copier interface {
	Copy(text string) error
}

// notificationExpiredMsg hides the notification it was scheduled for
type notificationExpiredMsg struct {
	seq uint64
}

// noticeSeq numbers notifications across panels so a hide scheduled by a
// panel that has since been replaced never hides a newer notification.
var noticeSeq atomic.Uint64

// RenderedTag is a tag label with its style class ("" for none)
type RenderedTag struct {
	Label string
	Class string
}

// DetailOptions configures a DetailPanel
type DetailOptions struct {
	Actions []TemplateAction
	Copier  Copier
	Avatars *AvatarLoader
	Now     func() time.Time
}

// DetailPanel shows one contact's details, profile picture and template
// message actions.
type DetailPanel struct {
	contact model.Contact
	visuals bool
	actions []TemplateAction
	copier  Copier
	avatar  Avatar
	tags    []RenderedTag
	now     time.Time

	notice      string
	noticeError bool
	noticeShown bool
	noticeID    uint64
}

// NewDetailPanel builds the panel for c
func NewDetailPanel(c model.Contact, visuals bool, opts DetailOptions) DetailPanel {
	if opts.Avatars == nil {
		opts.Avatars = NewAvatarLoader(nil, nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sorted := c.SortedTags()
	tags := make([]RenderedTag, 0, len(sorted))
	for _, t := range sorted {
		tags = append(tags, RenderedTag{Label: t.String(), Class: TagClass(t.String(), visuals)})
	}

	return DetailPanel{
		contact: c,
		visuals: visuals,
		actions: forContact(opts.Actions, c),
		copier:  opts.Copier,
		avatar:  opts.Avatars.Load(c.ProfilePic),
		tags:    tags,
		now:     opts.Now(),
	}
}

// TagClass returns the style class for a tag label. Net worth tags are only
// highlighted when visuals are enabled.
func TagClass(label string, visuals bool) string {
	if !visuals {
		return ""
	}
	switch strings.ToLower(label) {
	case "highnetworth":
		return tagClassHigh
	case "midnetworth":
		return tagClassMid
	case "lownetworth":
		return tagClassLow
	}
	return ""
}

// Contact returns the contact shown
func (p DetailPanel) Contact() model.Contact { return p.contact }

// Visuals reports whether tag styling is enabled
func (p DetailPanel) Visuals() bool { return p.visuals }

// Tags returns the tags in display order
func (p DetailPanel) Tags() []RenderedTag { return p.tags }

// Avatar returns the loaded profile picture
func (p DetailPanel) Avatar() Avatar { return p.avatar }

// Actions returns the personalised template actions
func (p DetailPanel) Actions() []TemplateAction { return p.actions }

// NotificationVisible reports whether the copy notification is showing
func (p DetailPanel) NotificationVisible() bool { return p.noticeShown }

// Notification returns the notification text
func (p DetailPanel) Notification() string { return p.notice }

// Activate copies the message of the action at index to the clipboard and
// shows a notification that hides itself after NotificationDuration.
func (p DetailPanel) Activate(index int) (DetailPanel, tea.Cmd) {
	if index < 0 || index >= len(p.actions) {
		return p, nil
	}

	p.notice = copiedText
	p.noticeError = false
	if p.copier == nil {
		p.notice = "Clipboard unavailable"
		p.noticeError = true
	} else if err := p.copier.Copy(p.actions[index].Message); err != nil {
		p.notice = fmt.Sprintf("Copy failed: %v", err)
		p.noticeError = true
	}

	p.noticeShown = true
	p.noticeID = noticeSeq.Add(1)
	id := p.noticeID

	return p, tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{seq: id}
	})
}

// Update handles template keys and notification expiry
func (p DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for i, a := range p.actions {
			if msg.String() == a.Key {
				return p.Activate(i)
			}
		}
	case notificationExpiredMsg:
		if msg.seq == p.noticeID {
			p.noticeShown = false
		}
	}
	return p, nil
}

// Field values as displayed

func (p DetailPanel) birthdayText() string {
	if p.contact.Birthday.IsZero() {
		return "-"
	}
	return p.contact.Birthday.Format("2 Jan 2006")
}

func (p DetailPanel) ageText() string {
	age, ok := p.contact.Age(p.now)
	if !ok {
		return "-"
	}
	return strconv.Itoa(age)
}

func (p DetailPanel) paidText() string {
	if p.contact.HasPaid {
		return "Paid"
	}
	return "Not paid"
}

func (p DetailPanel) frequencyText() string {
	f := string(p.contact.Frequency)
	if f == "" || p.contact.Frequency == model.FrequencyNone {
		return "None"
	}
	return strings.ToUpper(f[:1]) + f[1:]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// View renders the panel
func (p DetailPanel) View(width int) string {
	if width < 20 {
		width = 20
	}

	fields := []struct{ label, value string }{
		{"Phone", orDash(p.contact.Phone)},
		{"Email", orDash(p.contact.Email)},
		{"Address", orDash(p.contact.Address)},
		{"Birthday", p.birthdayText()},
		{"Age", p.ageText()},
		{"Payment", p.paidText()},
		{"Frequency", p.frequencyText()},
	}

	var info []string
	info = append(info, headerStyle.Render(p.contact.Name))
	info = append(info, "")
	for _, f := range fields {
		value := f.value
		if f.label == "Payment" && !p.contact.HasPaid {
			value = unpaidStyle.Render(value)
		}
		info = append(info, labelStyle.Render(fmt.Sprintf("%-10s", f.label))+" "+value)
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		p.avatar.Render(avatarWidth),
		"  ",
		lipgloss.NewStyle().Width(width-avatarWidth-2).Render(strings.Join(info, "\n")),
	)

	lines := []string{top, strings.Repeat("─", width-2)}

	if len(p.tags) > 0 {
		rendered := make([]string, 0, len(p.tags))
		for _, t := range p.tags {
			style, ok := tagClassStyles[t.Class]
			if !ok {
				style = tagStyle
			}
			rendered = append(rendered, style.Render(t.Label))
		}
		lines = append(lines, lipgloss.NewStyle().Width(width-2).Render(strings.Join(rendered, " ")))
	} else {
		lines = append(lines, labelStyle.Render("No tags"))
	}
	lines = append(lines, "")

	if len(p.actions) > 0 {
		lines = append(lines, "Message templates:")
		buttons := make([]string, 0, len(p.actions))
		for _, a := range p.actions {
			buttons = append(buttons, buttonStyle.Render(fmt.Sprintf("%s %s", a.Key, a.Label)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	if p.noticeShown {
		style := notificationStyle
		if p.noticeError {
			style = notificationErrorStyle
		}
		lines = append(lines, "", style.Render(p.notice))
	}

	return strings.Join(lines, "\n")
}
