package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/avinsharma/intervu/internal/config"
	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/question"
	"github.com/avinsharma/intervu/internal/router"
	"github.com/avinsharma/intervu/internal/screen"
	"github.com/avinsharma/intervu/internal/screens/leaderboard"
	"github.com/avinsharma/intervu/internal/screens/setup"
	"github.com/avinsharma/intervu/internal/store"
	"github.com/avinsharma/intervu/internal/ui/components"
	"github.com/avinsharma/intervu/internal/ui/theme"
)

const banner = `
 ___       _
|_ _|_ __ | |_ ___ _ ____   ___   _
 | || '_ \| __/ _ \ '__\ \ / / | | |
 | || | | | ||  __/ |   \ V /| |_| |
|___|_| |_|\__\___|_|    \_/  \__,_|
`

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(generator question.Generator, evaluator *evaluate.Evaluator, provider llm.Provider, st *store.Store, cfg config.Config, logger *zap.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START INTERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(generator, evaluator, provider, st, cfg, logger),
				}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: leaderboard.New(st.InterviewRepo(), cfg.DefaultRole, ""),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render(strings.TrimPrefix(banner, "\n"))
	subtitle := theme.Subtitle.Render("Adaptive mock interviews in your terminal")
	menu := h.menu.View()

	content := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", menu)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
