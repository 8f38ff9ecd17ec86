// ABOUTME: Login form screen as a huh form embedded in the TUI
// ABOUTME: Surfaces server rejection messages inline above the fields

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/manish201258/Hichhki-admin/internal/tui/styles"
)

type loginModel struct {
	form      *huh.Form
	email     string
	password  string
	errText   string
	cancelled bool
}

func newLoginModel() *loginModel {
	return newLoginModelWithError("")
}

func newLoginModelWithError(errText string) *loginModel {
	m := &loginModel{errText: errText}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@hichhki.com").
				Value(&m.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		),
	).WithTheme(huh.ThemeBase())
	return m
}

func (m *loginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *loginModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.cancelled = true
		return nil
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	return cmd
}

// Credentials returns the submitted values once the form completes.
func (m *loginModel) Credentials() (email, password string, done bool) {
	if m.form.State != huh.StateCompleted {
		return "", "", false
	}
	return m.email, m.password, true
}

func (m *loginModel) Cancelled() bool {
	return m.cancelled
}

func (m *loginModel) View() string {
	out := styles.Title.Render("Hichhki Admin Login")
	if m.errText != "" {
		out += "\n" + styles.StatusCritical.Render(m.errText)
	}
	return out + "\n" + m.form.View()
}
