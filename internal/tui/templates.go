package tui

import (
	"strings"

	"github.com/pdxmph/clientbook/internal/config"
	"github.com/pdxmph/clientbook/internal/model"
)

// TemplateAction binds a key to a message copied to the clipboard
type TemplateAction struct {
	Key     string
	Label   string
	Message string // "{name}" is replaced with the contact's name
}

const (
	youngAdultMessage = "Hi {name}, starting out in your career is the best time to build " +
		"good money habits. I'd love to walk you through a simple savings and protection " +
		"plan that fits your first few pay cheques. Are you free for a quick coffee chat this week?"

	midCareerMessage = "Hi {name}, with your career well under way, now is a good moment to " +
		"review your investments, insurance coverage and your family's long-term goals. " +
		"Shall we set up a short review session in the coming weeks?"

	preRetireeMessage = "Hi {name}, retirement is getting closer, and a few adjustments now can " +
		"make a big difference later. Let's look at your retirement income plan together and " +
		"make sure everything is on track. When would suit you?"
)

// DefaultTemplateActions returns the three career-stage templates, with any
// message overrides from cfg applied.
func DefaultTemplateActions(cfg config.TemplatesConfig) []TemplateAction {
	return []TemplateAction{
		{Key: "1", Label: "Young Adult", Message: orDefault(cfg.YoungAdult, youngAdultMessage)},
		{Key: "2", Label: "Mid-Career", Message: orDefault(cfg.MidCareer, midCareerMessage)},
		{Key: "3", Label: "Pre-Retiree", Message: orDefault(cfg.PreRetiree, preRetireeMessage)},
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// forContact returns a copy of actions with messages personalised for c
func forContact(actions []TemplateAction, c model.Contact) []TemplateAction {
	out := make([]TemplateAction, len(actions))
	for i, a := range actions {
		a.Message = strings.ReplaceAll(a.Message, "{name}", c.Name)
		out[i] = a
	}
	return out
}
