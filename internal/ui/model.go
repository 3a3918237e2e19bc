package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"pageview/internal/config"
	"pageview/internal/domain"
	"pageview/internal/eventbus"
	"pageview/internal/pager"
	"pageview/internal/ui/views"
)

// flashDuration is how long a feedback flash stays on the status line
var flashDuration = 800 * time.Millisecond

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	mode   domain.Mode
	log    logrus.FieldLogger

	keys   KeyMap
	help   help.Model
	styles *views.Styles
	pane   pane

	width  int
	height int

	// Paging feedback, written by the page view callbacks during Update
	prospective string
	dragging    bool
	flash       string
	flashSeq    int
	pending     []tea.Cmd

	inPagerMode bool
	helpOps     *HelpOps
	bell        io.Writer
	now         func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// Option customises a Model
type Option func(*Model)

// WithClock sets the clock date pages are anchored to
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithBell redirects the feedback bell
func WithBell(w io.Writer) Option {
	return func(m *Model) { m.bell = w }
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, log logrus.FieldLogger, opts ...Option) (*Model, error) {
	mode, err := cfg.ModeValue()
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:     bus,
		config:  cfg,
		mode:    mode,
		log:     log,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  views.NewStyles(),
		helpOps: NewHelpOps(nil),
		bell:    os.Stderr,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.pane, err = newPane(mode, cfg, views.NewPageRenderer(m.styles, m.now), m.now, paneHooks{
		changed:  m.onPageChanged,
		crossed:  m.onThresholdCrossed,
		dragging: m.onDragging,
		feedback: m.onFeedback,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selected returns the label of the selected page
func (m *Model) Selected() string {
	return m.pane.Selected()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pageview · " + string(m.mode))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pane.SetOrigin(0, lipgloss.Height(m.titleView()))
		cmd = m.pane.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cmd = m.pane.Next()
		case key.Matches(msg, m.keys.Prev):
			cmd = m.pane.Previous()
		case key.Matches(msg, m.keys.Home):
			cmd = m.pane.Home()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.FullHelp):
			cmd = m.fetchHelpPager(NewHelpRenderer(m.keys).RenderHelpContent(m.mode))
		}

	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Mouse events and the page view's own frame and resize ticks
		cmd = m.pane.Update(msg)
	}

	return m, m.withPending(cmd)
}

// withPending batches cmd with the commands queued by callbacks
func (m *Model) withPending(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return helpPagerMsg{err: fmt.Errorf("program not set")} }
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) onPageChanged(from, to string) {
	m.bus.Publish(eventbus.PageChangedEvent{Mode: m.mode, From: from, To: to})
}

func (m *Model) onThresholdCrossed(target string, ok bool) {
	m.prospective = target
	m.bus.Publish(eventbus.ThresholdCrossedEvent{Mode: m.mode, Target: target, Active: ok})
}

func (m *Model) onDragging(active bool, at string) {
	m.dragging = active
	if active {
		m.bus.Publish(eventbus.DragStartedEvent{Mode: m.mode, From: at})
	} else {
		m.bus.Publish(eventbus.DragEndedEvent{Mode: m.mode, Selected: at})
	}
}

func (m *Model) onFeedback(i pager.Impact) {
	m.flash = i.String()
	m.flashSeq++
	seq := m.flashSeq
	m.pending = append(m.pending, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	}))
	if m.config.UI.Bell && i == pager.ImpactEnd {
		fmt.Fprint(m.bell, "\a")
	}
	m.bus.Publish(eventbus.FeedbackEvent{Impact: i.String()})
}

func (m *Model) titleView() string {
	return m.styles.Title.Render("pageview · " + string(m.mode))
}

func (m *Model) statusView() string {
	parts := []string{m.styles.Status.Render(m.pane.Selected())}
	if m.dragging {
		parts = append(parts, m.styles.Dragging.Render("dragging"))
	}
	if m.prospective != "" {
		parts = append(parts, m.styles.Prospective.Render("→ "+m.prospective))
	}
	if m.flash != "" {
		parts = append(parts, m.styles.Flash.Render("• "+m.flash))
	}
	return strings.Join(parts, m.styles.Dim.Render("  ·  "))
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.titleView(),
		m.pane.View(),
		"",
		m.statusView(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}
