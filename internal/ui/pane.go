package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pageview/internal/config"
	"pageview/internal/domain"
	"pageview/internal/iterator"
	"pageview/internal/pager"
	"pageview/internal/ui/pageview"
	"pageview/internal/ui/views"
)

// pane hides the identifier type of the hosted page view so the model
// can switch modes without being generic itself
type pane interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetWidth(w int) tea.Cmd
	SetOrigin(x, y int)
	Next() tea.Cmd
	Previous() tea.Cmd
	Home() tea.Cmd
	Selected() string
	Height() int
}

// paneHooks receive everything the page view reports, already labelled
type paneHooks struct {
	changed  func(from, to string)
	crossed  func(target string, ok bool)
	dragging func(active bool, at string)
	feedback func(pager.Impact)
}

type typedPane[T comparable] struct {
	mode    domain.Mode
	view    pageview.Model[T]
	value   *T
	home    T
	changed func(from, to string)
}

func (p *typedPane[T]) label(id T) string {
	return views.Label(p.mode, id)
}

func (p *typedPane[T]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return cmd
}

func (p *typedPane[T]) View() string { return p.view.View() }

func (p *typedPane[T]) SetWidth(w int) tea.Cmd {
	var cmd tea.Cmd
	p.view, cmd = p.view.SetWidth(w)
	return cmd
}

func (p *typedPane[T]) SetOrigin(x, y int) {
	p.view = p.view.SetOrigin(x, y)
}

func (p *typedPane[T]) Next() tea.Cmd {
	var cmd tea.Cmd
	p.view, cmd = p.view.Next()
	return cmd
}

func (p *typedPane[T]) Previous() tea.Cmd {
	var cmd tea.Cmd
	p.view, cmd = p.view.Previous()
	return cmd
}

// Home jumps back to the starting page without animating
func (p *typedPane[T]) Home() tea.Cmd {
	if p.view.Engine().Phase() != pager.PhaseResting {
		return nil
	}
	if *p.value == p.home {
		return nil
	}
	p.binding().Set(p.home)
	return p.SetWidth(p.view.Width())
}

func (p *typedPane[T]) Selected() string { return p.label(*p.value) }

func (p *typedPane[T]) Height() int { return p.view.Height() }

func (p *typedPane[T]) binding() pager.Binding[T] {
	return pager.FuncBinding[T]{
		GetFunc: func() T { return *p.value },
		SetFunc: func(v T) {
			from := *p.value
			*p.value = v
			if from != v {
				p.changed(p.label(from), p.label(v))
			}
		},
	}
}

func newTypedPane[T comparable](mode domain.Mode, start T, cfg *config.Config, hooks paneHooks,
	build func(sel pager.Binding[T]) pageview.Model[T]) *typedPane[T] {
	value := start
	p := &typedPane[T]{mode: mode, value: &value, home: start, changed: hooks.changed}

	dragging := false
	view := build(p.binding()).
		Configure(func(c *pager.Config[T]) { config.Apply(cfg.Paging, c) }).
		OnThresholdCrossed(func(id T, ok bool) {
			if ok {
				hooks.crossed(p.label(id), true)
			} else {
				hooks.crossed("", false)
			}
		}).
		IsDragging(pager.FuncBinding[bool]{
			GetFunc: func() bool { return dragging },
			SetFunc: func(v bool) {
				dragging = v
				hooks.dragging(v, p.label(*p.value))
			},
		}).
		Feedback(hooks.feedback)
	if bg := cfg.UI.PageBackground; bg != "" {
		view = view.PageBackground(lipgloss.Color(bg))
	}
	p.view = view
	return p
}

// newPane builds the page view for mode. Date pages start at local
// noon so fixed-length steps never change the date across DST.
func newPane(mode domain.Mode, cfg *config.Config, pages *views.PageRenderer, now func() time.Time, hooks paneHooks) (pane, error) {
	y, m, d := now().Date()
	today := time.Date(y, m, d, 12, 0, 0, 0, now().Location())

	switch mode {
	case domain.ModeInt:
		start := max(cfg.Start, 0)
		if cfg.Count > 0 {
			start = min(start, cfg.Count-1)
		}
		return newTypedPane(mode, start, cfg, hooks, func(sel pager.Binding[int]) pageview.Model[int] {
			if cfg.Count > 0 {
				return pageview.NewBoundedInt(sel, cfg.Count, pages.Int)
			}
			return pageview.NewInt(sel, pages.Int)
		}), nil

	case domain.ModeDay, domain.ModeHistoric:
		typ, start := iterator.DateDefault, today
		if mode == domain.ModeHistoric {
			typ, start = iterator.DateHistoric, now()
		}
		return newTypedPane(mode, start, cfg, hooks, func(sel pager.Binding[time.Time]) pageview.Model[time.Time] {
			return pageview.NewDate(sel, typ, now, pages.Day)
		}), nil

	case domain.ModeWeek:
		monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return newTypedPane(mode, monday, cfg, hooks, func(sel pager.Binding[time.Time]) pageview.Model[time.Time] {
			return pageview.NewWeek(sel, iterator.Bounds{}, pages.Week)
		}), nil

	case domain.ModeMonth:
		first := today.AddDate(0, 0, 1-today.Day())
		return newTypedPane(mode, first, cfg, hooks, func(sel pager.Binding[time.Time]) pageview.Model[time.Time] {
			return pageview.NewMonth(sel, iterator.Bounds{}, pages.Month)
		}), nil

	default:
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}
}
