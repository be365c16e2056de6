package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avinsharma/intervu/internal/ui/theme"
)

// ConfidenceSelector picks a 1-10 self-assessment with the arrow keys.
type ConfidenceSelector struct {
	Value int
	Min   int
	Max   int
}

// NewConfidenceSelector starts at the neutral midpoint.
func NewConfidenceSelector() ConfidenceSelector {
	return ConfidenceSelector{Value: 5, Min: 1, Max: 10}
}

// Update handles left/right adjustment.
func (c ConfidenceSelector) Update(msg tea.Msg) (ConfidenceSelector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Value > c.Min {
			c.Value--
		}
	case "right", "l":
		if c.Value < c.Max {
			c.Value++
		}
	}
	return c, nil
}

// View renders the selector as a row of notches.
func (c ConfidenceSelector) View() string {
	var b strings.Builder
	for v := c.Min; v <= c.Max; v++ {
		label := fmt.Sprintf(" %d ", v)
		if v == c.Value {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("[%d]", v)))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return b.String()
}
