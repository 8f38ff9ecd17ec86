// ABOUTME: Root bubbletea model for the admin TUI
// ABOUTME: Gates every screen behind the session boot and admin check

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/session"
	"github.com/manish201258/Hichhki-admin/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenBooting Screen = iota
	ScreenLogin
	ScreenMenu
	ScreenDashboard
	ScreenProducts
)

// bootDoneMsg is sent when the session restore-verify chain settles
type bootDoneMsg struct{}

// loginResultMsg is sent when a login attempt returns
type loginResultMsg struct {
	err error
}

// statsLoadedMsg is sent when dashboard stats arrive
type statsLoadedMsg struct {
	stats *client.DashboardStats
	err   error
}

// productsLoadedMsg is sent when the product list arrives
type productsLoadedMsg struct {
	list *client.ProductList
	err  error
}

var menuItems = []string{"Dashboard", "Products", "Logout", "Quit"}

// App is the root model for the TUI
type App struct {
	api  *client.Client
	sess *session.Manager

	screen  Screen
	width   int
	height  int
	spin    spinner.Model
	loading bool
	err     error

	login     *loginModel
	menuIndex int
	dashboard *dashboardModel
	products  *productsModel
}

// New creates the TUI application. The session is booted on Init; no
// protected screen renders before that settles.
func New(api *client.Client, sess *session.Manager) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Accent)
	return &App{
		api:    api,
		sess:   sess,
		screen: ScreenBooting,
		spin:   sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.bootCmd())
}

func (a *App) bootCmd() tea.Cmd {
	return func() tea.Msg {
		a.sess.Boot(context.Background())
		return bootDoneMsg{}
	}
}

func (a *App) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := a.api.GetDashboardStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (a *App) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := a.api.ListProducts(context.Background(), nil)
		return productsLoadedMsg{list: list, err: err}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.products != nil {
			a.products.SetSize(msg.Width, msg.Height)
		}
		if a.screen == ScreenLogin && a.login != nil {
			return a, a.login.Update(msg)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case bootDoneMsg:
		if a.sess.IsAdmin() {
			a.screen = ScreenMenu
			return a, nil
		}
		// Either nobody is logged in or the account lacks admin rights;
		// both land on the login form.
		a.login = newLoginModel()
		a.screen = ScreenLogin
		return a, a.login.Init()

	case loginResultMsg:
		a.loading = false
		if msg.err != nil {
			a.login = newLoginModelWithError(msg.err.Error())
			return a, a.login.Init()
		}
		if !a.sess.IsAdmin() {
			a.sess.Logout(context.Background())
			a.login = newLoginModelWithError("This account has no admin privileges.")
			return a, a.login.Init()
		}
		a.screen = ScreenMenu
		return a, nil

	case statsLoadedMsg:
		a.loading = false
		a.err = msg.err
		if msg.err == nil {
			a.dashboard = newDashboardModel(msg.stats)
		}
		return a, nil

	case productsLoadedMsg:
		a.loading = false
		a.err = msg.err
		if msg.err == nil {
			a.products = newProductsModel(msg.list, a.width, a.height)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.screen == ScreenLogin && a.login != nil {
		return a, a.login.Update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.screen {
	case ScreenLogin:
		cmd := a.login.Update(msg)
		if a.login.Cancelled() {
			return a, tea.Quit
		}
		if email, password, done := a.login.Credentials(); done {
			a.loading = true
			return a, tea.Batch(a.spin.Tick, func() tea.Msg {
				return loginResultMsg{err: a.sess.Login(context.Background(), email, password)}
			})
		}
		return a, cmd

	case ScreenMenu:
		switch msg.String() {
		case "up", "k":
			if a.menuIndex > 0 {
				a.menuIndex--
			}
		case "down", "j":
			if a.menuIndex < len(menuItems)-1 {
				a.menuIndex++
			}
		case "enter":
			return a.selectMenuItem()
		case "q":
			return a, tea.Quit
		}
		return a, nil

	case ScreenDashboard:
		switch msg.String() {
		case "esc":
			a.screen = ScreenMenu
		case "r":
			a.loading = true
			return a, tea.Batch(a.spin.Tick, a.loadStatsCmd())
		case "q":
			return a, tea.Quit
		}
		return a, nil

	case ScreenProducts:
		switch msg.String() {
		case "esc":
			a.screen = ScreenMenu
			return a, nil
		case "r":
			a.loading = true
			return a, tea.Batch(a.spin.Tick, a.loadProductsCmd())
		case "q":
			return a, tea.Quit
		}
		if a.products != nil {
			return a, a.products.Update(msg)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) selectMenuItem() (tea.Model, tea.Cmd) {
	switch menuItems[a.menuIndex] {
	case "Dashboard":
		a.screen = ScreenDashboard
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadStatsCmd())
	case "Products":
		a.screen = ScreenProducts
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadProductsCmd())
	case "Logout":
		a.sess.Logout(context.Background())
		a.login = newLoginModel()
		a.screen = ScreenLogin
		return a, a.login.Init()
	case "Quit":
		return a, tea.Quit
	}
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenBooting:
		body = a.spin.View() + " Restoring session..."
	case ScreenLogin:
		body = a.login.View()
		if a.loading {
			body += "\n" + a.spin.View() + " Signing in..."
		}
	case ScreenMenu:
		body = a.viewMenu()
	case ScreenDashboard:
		body = a.viewDashboard()
	case ScreenProducts:
		body = a.viewProducts()
	}
	return body + "\n"
}

func (a *App) viewMenu() string {
	out := styles.Title.Render("Hichhki Admin")
	if user, ok := a.sess.CurrentUser(); ok {
		out += "\n" + styles.Subtitle.Render("Signed in as "+session.DisplayName(user))
	}
	out += "\n"
	for i, item := range menuItems {
		cursor := "  "
		line := item
		if i == a.menuIndex {
			cursor = styles.KeyStyle.Render("> ")
			line = styles.ValueStyle.Render(item)
		}
		out += "\n" + cursor + line
	}
	out += "\n" + styles.Help.Render("up/down: move | enter: select | q: quit")
	return out
}

func (a *App) viewDashboard() string {
	if a.loading {
		return a.spin.View() + " Loading stats..."
	}
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) +
			"\n" + styles.Help.Render("r: retry | esc: back")
	}
	if a.dashboard == nil {
		return ""
	}
	return a.dashboard.View() + "\n" + styles.Help.Render("r: reload | esc: back | q: quit")
}

func (a *App) viewProducts() string {
	if a.loading {
		return a.spin.View() + " Loading products..."
	}
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) +
			"\n" + styles.Help.Render("r: retry | esc: back")
	}
	if a.products == nil {
		return ""
	}
	return a.products.View() + "\n" + styles.Help.Render("up/down: move | r: reload | esc: back | q: quit")
}
