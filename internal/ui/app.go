package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/weatherframe/internal/locale"
	"github.com/five82/weatherframe/internal/prefs"
	"github.com/five82/weatherframe/internal/state"
	"github.com/five82/weatherframe/internal/taskqueue"
	"github.com/five82/weatherframe/internal/weather"
)

const (
	clockInterval = time.Second
	drainInterval = 100 * time.Millisecond

	defaultWidth  = 64
	defaultHeight = 20
)

// Refresher is the part of the refresh scheduler the dashboard drives. All
// methods are called on the Bubble Tea loop.
type Refresher interface {
	Start()
	ConsiderRefresh() bool
	Shutdown()
	State() state.RefreshState
	NextAttemptIn() time.Duration
}

// Options configures the UI.
type Options struct {
	Queue     *taskqueue.Queue
	Locale    locale.Locale
	City      string
	LogPath   string
	PrefsPath string
	ThemeName string
	Now       func() time.Time
}

// Model is the dashboard. It is the interactive loop: every task pushed onto
// the queue runs inside Update, and it implements refresh.Presenter.
type Model struct {
	queue     *taskqueue.Queue
	refresher Refresher
	locale    locale.Locale
	city      string
	logPath   string
	prefsPath string
	now       func() time.Time

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	theme   Theme
	width   int
	height  int

	clock       time.Time
	current     weather.Current
	hasCurrent  bool
	forecast    []weather.ForecastDay
	lastUpdated time.Time

	showHelp    bool
	showLogs    bool
	logViewport viewport.Model

	quitting bool
}

// New creates the dashboard model. Attach must be called before the program
// starts.
func New(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	queue := opts.Queue
	if queue == nil {
		queue = taskqueue.New()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		queue:     queue,
		locale:    opts.Locale,
		city:      opts.City,
		logPath:   opts.LogPath,
		prefsPath: opts.PrefsPath,
		now:       now,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		theme:     GetTheme(themeName),
		width:     defaultWidth,
		height:    defaultHeight,
		clock:     now(),
	}
	m.logViewport = viewport.New(m.width-4, m.height-6)
	return m
}

// Attach connects the refresh scheduler.
func (m *Model) Attach(r Refresher) {
	m.refresher = r
}

// RenderCurrent shows the current conditions from a successful refresh.
func (m *Model) RenderCurrent(current weather.Current) {
	m.current = current
	m.hasCurrent = true
	m.lastUpdated = m.now()
}

// RenderForecast shows the aggregated daily forecast.
func (m *Model) RenderForecast(days []weather.ForecastDay) {
	m.forecast = append(m.forecast[:0], days...)
}

// RenderClock updates the date and time line.
func (m *Model) RenderClock(now time.Time) {
	m.clock = now
}

type clockTickMsg time.Time

type drainTickMsg struct{}

func clockTickCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func drainTickCmd() tea.Cmd {
	return tea.Tick(drainInterval, func(time.Time) tea.Msg {
		return drainTickMsg{}
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.refresher != nil {
		m.refresher.Start()
	}
	return tea.Batch(
		tea.EnterAltScreen,
		clockTickCmd(),
		drainTickCmd(),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logViewport.Width = max(msg.Width-4, 10)
		m.logViewport.Height = max(msg.Height-6, 3)
		return m, nil

	case drainTickMsg:
		m.queue.DrainAll()
		return m, drainTickCmd()

	case clockTickMsg:
		m.RenderClock(time.Time(msg))
		if m.showLogs {
			m.loadLogs()
		}
		return m, clockTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		switch {
		case msg.String() == "esc", key.Matches(msg, m.keys.Logs):
			m.showLogs = false
			return m, nil
		case msg.String() == "ctrl+c":
			return m.quit()
		}
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Refresh):
		if m.refresher != nil && !m.refresher.ConsiderRefresh() {
			slog.Debug("manual refresh not started")
		}
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.loadLogs()
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				slog.Warn("save prefs", "err", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	return m, nil
}

// quit stops the scheduler before the program exits so no late outcome is
// applied to a model that is going away.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.refresher != nil {
		m.refresher.Shutdown()
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderDashboard()
}

func (m *Model) refreshState() state.RefreshState {
	if m.refresher == nil {
		return state.RefreshState{}
	}
	return m.refresher.State()
}

func (m *Model) nextAttemptIn() time.Duration {
	if m.refresher == nil {
		return 0
	}
	return m.refresher.NextAttemptIn()
}
