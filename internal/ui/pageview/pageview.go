// Package pageview is a Bubble Tea component that pages horizontally
// through identifiers with mouse swipes. It hosts a pager.Engine:
// pointer events become drag updates, tea.Tick drives the settle and
// resize animations, and lipgloss measures each page.
package pageview

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pageview/internal/iterator"
	"pageview/internal/pager"
)

// Terminal cells are much coarser than points, so the defaults are
// scaled down from the engine's.
const (
	defaultThresholdCap      = 40
	defaultVerticalTolerance = 1
)

var (
	lastID int64

	// tick schedules delayed messages; swapped out in tests
	tick = tea.Tick
)

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ContentFunc renders the page for an identifier
type ContentFunc[T comparable] func(id T) string

// frameMsg advances the animations of one page view
type frameMsg struct {
	id int
}

// resizeMsg delivers a debounced height change
type resizeMsg struct {
	id  int
	req pager.ResizeRequest
}

// Model is a swipeable page view. Configure it with the option methods,
// which return modified copies, before handing it to the program.
type Model[T comparable] struct {
	id       int
	selected pager.Binding[T]
	it       iterator.ElementIterator[T]
	content  ContentFunc[T]
	cfg      pager.Config[T]
	engine   *pager.Engine[T]

	background lipgloss.TerminalColor

	width   int
	originX int
	originY int

	pressed        bool
	startX, startY int
	lastDX, lastDY int

	frameScheduled bool
}

// New creates a page view over it, rendering pages with content
func New[T comparable](selected pager.Binding[T], it iterator.ElementIterator[T], content ContentFunc[T]) Model[T] {
	cfg := pager.DefaultConfig[T]()
	cfg.ThresholdCap = defaultThresholdCap
	cfg.VerticalTolerance = defaultVerticalTolerance

	m := Model[T]{
		id:       nextID(),
		selected: selected,
		it:       it,
		content:  content,
		cfg:      cfg,
	}
	return m.rebuild()
}

func (m Model[T]) rebuild() Model[T] {
	m.engine = pager.New(m.selected, m.it, m.cfg)
	m.engine.SetWidth(float64(m.width))
	return m
}

// PageBackground fills every page with color
func (m Model[T]) PageBackground(color lipgloss.TerminalColor) Model[T] {
	m.background = color
	return m
}

// AdjustOnSwipe measures neighbour pages too, so the container height
// follows the prospective page once the threshold is crossed
func (m Model[T]) AdjustOnSwipe(v bool) Model[T] {
	m.cfg.AdjustOnSwipe = v
	return m.rebuild()
}

// Impacts selects the milestones that call the feedback function
func (m Model[T]) Impacts(s pager.ImpactSet) Model[T] {
	m.cfg.Impacts = s
	return m.rebuild()
}

// Feedback sets the side effect run at each enabled milestone
func (m Model[T]) Feedback(fn func(pager.Impact)) Model[T] {
	m.cfg.Feedback = fn
	return m.rebuild()
}

// Threshold sets the commit distance as a fraction of the page width.
// Values outside [0.05, 0.75] are clamped.
func (m Model[T]) Threshold(f float64) Model[T] {
	m.cfg.Threshold = f
	return m.rebuild()
}

// OnThresholdCrossed registers the crossing callback
func (m Model[T]) OnThresholdCrossed(fn func(id T, ok bool)) Model[T] {
	m.cfg.OnThresholdCrossed = fn
	return m.rebuild()
}

// IsDragging mirrors the drag flag into b
func (m Model[T]) IsDragging(b pager.Binding[bool]) Model[T] {
	m.cfg.IsDragging = b
	return m.rebuild()
}

// Configure edits the remaining engine settings
func (m Model[T]) Configure(fn func(*pager.Config[T])) Model[T] {
	fn(&m.cfg)
	return m.rebuild()
}

// Engine exposes the underlying state machine
func (m Model[T]) Engine() *pager.Engine[T] {
	return m.engine
}

// ID returns the instance id used to route this view's messages
func (m Model[T]) ID() int {
	return m.id
}

// Width returns the page width in cells
func (m Model[T]) Width() int {
	return m.width
}

// Height returns the current container height in cells
func (m Model[T]) Height() int {
	return int(math.Round(m.engine.Height()))
}

// SetWidth sets the page width and re-measures
func (m Model[T]) SetWidth(w int) (Model[T], tea.Cmd) {
	m.width = max(w, 0)
	m.engine.SetWidth(float64(m.width))
	return m.sync()
}

// SetOrigin records where the view is drawn, so presses outside it
// are ignored
func (m Model[T]) SetOrigin(x, y int) Model[T] {
	m.originX, m.originY = x, y
	return m
}

// Next pages forward as if swiped
func (m Model[T]) Next() (Model[T], tea.Cmd) {
	m.engine.Advance(pager.Forward)
	return m.sync()
}

// Previous pages backward as if swiped
func (m Model[T]) Previous() (Model[T], tea.Cmd) {
	m.engine.Advance(pager.Backward)
	return m.sync()
}

// Init implements the Bubble Tea component contract
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles mouse gestures and the view's own animation messages
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.frameScheduled = false
		m.engine.Step()
		if s, ok := m.engine.Pending(); ok && m.engine.AtTarget() {
			m.engine.Complete(s)
		}

	case resizeMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.engine.ApplyResize(msg.req)
	}

	return m.sync()
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.contains(msg.X, msg.Y) {
			return
		}
		m.pressed = true
		m.startX, m.startY = msg.X, msg.Y
		m.lastDX, m.lastDY = 0, 0

	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		m.lastDX, m.lastDY = msg.X-m.startX, msg.Y-m.startY
		m.engine.DragChanged(float64(m.lastDX), float64(m.lastDY))

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		// Some terminals report release at 0,0; keep the last motion then.
		dx, dy := m.lastDX, m.lastDY
		if msg.X != 0 || msg.Y != 0 {
			dx, dy = msg.X-m.startX, msg.Y-m.startY
		}
		m.engine.DragEnded(float64(dx), float64(dy))
	}
}

func (m Model[T]) contains(x, y int) bool {
	h := max(m.Height(), 1)
	return x >= m.originX && x < m.originX+m.width && y >= m.originY && y < m.originY+h
}

// sync re-measures the rendered pages and schedules whatever the
// engine now waits on: a debounced resize and/or the next frame.
func (m Model[T]) sync() (Model[T], tea.Cmd) {
	var cmds []tea.Cmd

	if req, ok := m.engine.ReportSizes(m.measure()); ok {
		id := m.id
		cmds = append(cmds, tick(req.Delay, func(time.Time) tea.Msg {
			return resizeMsg{id: id, req: req}
		}))
	}

	if m.engine.Animating() && !m.frameScheduled {
		m.frameScheduled = true
		id := m.id
		cmds = append(cmds, tick(time.Second/pager.FPS, func(time.Time) tea.Msg {
			return frameMsg{id: id}
		}))
	}

	return m, tea.Batch(cmds...)
}

func (m Model[T]) measure() []pager.Measurement {
	if m.width == 0 {
		return nil
	}
	pages := m.engine.Pages()
	out := make([]pager.Measurement, 0, len(pages))
	for _, p := range pages {
		if p.Role != pager.RoleCurrent && !m.cfg.AdjustOnSwipe {
			continue
		}
		rendered := m.renderPage(p.ID)
		out = append(out, pager.Measurement{
			Role: p.Role,
			Size: pager.Size{
				Width:  float64(lipgloss.Width(rendered)),
				Height: float64(lipgloss.Height(rendered)),
			},
		})
	}
	return out
}

func (m Model[T]) pageStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Width(m.width)
	if m.background != nil {
		style = style.Background(m.background)
	}
	return style
}

func (m Model[T]) renderPage(id T) string {
	return m.pageStyle().Render(m.content(id))
}

// View composes the visible strip: each page shifted by its offset,
// cut to the container width and height.
func (m Model[T]) View() string {
	w, h := m.width, m.Height()
	if w == 0 || h == 0 {
		return ""
	}

	type placed struct {
		x     int
		lines []string
	}
	pages := m.engine.Pages()
	strip := make([]placed, 0, len(pages))
	for _, p := range pages {
		strip = append(strip, placed{
			x:     int(math.Round(p.X)),
			lines: strings.Split(m.renderPage(p.ID), "\n"),
		})
	}

	blank := m.pageStyle().Render("")
	rows := make([]string, h)
	for row := range rows {
		var b strings.Builder
		cursor := 0
		for _, p := range strip {
			left, right := max(p.x, 0), min(p.x+w, w)
			if right <= left {
				continue
			}
			line := blank
			if row < len(p.lines) {
				line = p.lines[row]
			}
			if left > cursor {
				b.WriteString(strings.Repeat(" ", left-cursor))
			}
			b.WriteString(ansi.Cut(line, left-p.x, right-p.x))
			cursor = right
		}
		if cursor < w {
			b.WriteString(strings.Repeat(" ", w-cursor))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}
