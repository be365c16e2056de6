package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerBox is a multiline input for interview answers, wrapping
// bubbles/textarea.
type AnswerBox struct {
	Model textarea.Model
}

// NewAnswerBox creates a focused answer box sized for a few paragraphs.
func NewAnswerBox(width, height int) AnswerBox {
	ta := textarea.New()
	ta.Placeholder = "Type your answer here..."
	ta.CharLimit = 4000
	ta.SetWidth(width)
	ta.SetHeight(height)
	return AnswerBox{Model: ta}
}

// Init returns the initial command.
func (a AnswerBox) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerBox) Update(msg tea.Msg) (AnswerBox, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer box.
func (a AnswerBox) View() string {
	return a.Model.View()
}

// Value returns the current answer text.
func (a AnswerBox) Value() string {
	return a.Model.Value()
}

// Reset clears the answer text for the next question.
func (a *AnswerBox) Reset() {
	a.Model.Reset()
}

// SetSize resizes the box on window changes.
func (a *AnswerBox) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}

// Focus gives the box keyboard focus.
func (a *AnswerBox) Focus() tea.Cmd {
	return a.Model.Focus()
}

// Blur removes keyboard focus.
func (a *AnswerBox) Blur() {
	a.Model.Blur()
}
