package pageview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageview/internal/iterator"
	"pageview/internal/pager"
)

func TestMain(m *testing.M) {
	// Deliver ticks immediately so tests can drain command chains.
	tick = func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		return func() tea.Msg { return fn(time.Now()) }
	}
	m.Run()
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// drain runs cmd and every command it leads to, feeding messages back
// into the model
func drain[T comparable](t *testing.T, m Model[T], cmd tea.Cmd) Model[T] {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 10000, "command chain did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		var c tea.Cmd
		m, c = m.Update(msg)
		queue = append(queue, c)
	}
	return m
}

func send[T comparable](t *testing.T, m Model[T], msgs ...tea.Msg) Model[T] {
	t.Helper()
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = drain(t, m, cmd)
	}
	return m
}

func plainPage(id int) string {
	return fmt.Sprintf("page %d", id)
}

func newTestView(t *testing.T, selected *int, width int) Model[int] {
	t.Helper()
	m, cmd := NewInt(pager.Bind(selected), plainPage).SetWidth(width)
	return drain(t, m, cmd)
}

func TestSwipeCommitsSelection(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30)
	assert.Equal(t, 1, m.Height())

	m = send(t, m, press(20, 0), motion(15, 0), motion(10, 0), release(10, 0))
	assert.Equal(t, 6, selected)
	assert.False(t, m.Engine().IsDragging())
	assert.Equal(t, 0.0, m.Engine().Offset())
	assert.Equal(t, "page 6"+strings.Repeat(" ", 24), m.View())
}

func TestShortSwipeCancels(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30)

	m = send(t, m, press(20, 0), motion(17, 0), release(17, 0))
	assert.Equal(t, 5, selected)
	assert.Equal(t, pager.PhaseResting, m.Engine().Phase())
}

func TestViewShowsNeighbourWhileDragging(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30)

	m, _ = m.Update(press(25, 0))
	m, _ = m.Update(motion(15, 0))

	assert.Equal(t, strings.Repeat(" ", 20)+"page 6    ", m.View())

	// The previous page's visible slice is its blank right-hand side.
	m, _ = m.Update(motion(35, 0))
	assert.Equal(t, pager.Backward, m.Engine().Direction())
	assert.Equal(t, strings.Repeat(" ", 10)+"page 5"+strings.Repeat(" ", 14), m.View())
}

func TestViewPadsPastTheEdge(t *testing.T) {
	selected := 0
	m := newTestView(t, &selected, 30)

	m, _ = m.Update(press(5, 0))
	m, _ = m.Update(motion(15, 0))
	assert.Equal(t, strings.Repeat(" ", 10)+"page 0"+strings.Repeat(" ", 14), m.View())
}

func TestPressOutsideIsIgnored(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30).SetOrigin(0, 5)

	m = send(t, m, press(20, 0), motion(0, 0), release(0, 0))
	assert.Equal(t, 5, selected)

	m = send(t, m, press(20, 5), motion(5, 5), release(5, 5))
	assert.Equal(t, 6, selected)
}

func TestVerticalGestureIsIgnored(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30)

	m = send(t, m, press(20, 0), motion(20, 2), motion(0, 2), release(0, 2))
	assert.Equal(t, 5, selected)
	assert.False(t, m.Engine().IsDragging())
}

func TestKeyboardPaging(t *testing.T) {
	selected := 1
	m := newTestView(t, &selected, 30)

	var cmd tea.Cmd
	m, cmd = m.Next()
	m = drain(t, m, cmd)
	assert.Equal(t, 2, selected)

	m, cmd = m.Previous()
	m = drain(t, m, cmd)
	m, cmd = m.Previous()
	m = drain(t, m, cmd)
	m, cmd = m.Previous()
	m = drain(t, m, cmd)
	assert.Equal(t, 0, selected, "stops at the lower edge")
}

func TestHeightFollowsPage(t *testing.T) {
	selected := 0
	content := func(id int) string {
		return strings.Repeat("row\n", id%3) + plainPage(id)
	}
	m, cmd := NewInt(pager.Bind(&selected), content).
		Configure(func(c *pager.Config[int]) { c.ResizeDebounce = 0 }).
		SetWidth(20)
	m = drain(t, m, cmd)
	assert.Equal(t, 1, m.Height())

	m, cmd = m.Next()
	m = drain(t, m, cmd)
	assert.Equal(t, 1, selected)
	assert.Equal(t, 2, m.Height())
	assert.Len(t, strings.Split(m.View(), "\n"), 2)
}

func TestAdjustOnSwipeGrowsBeforeRelease(t *testing.T) {
	selected := 0
	content := func(id int) string {
		return strings.Repeat("row\n", id*2) + plainPage(id)
	}
	m, cmd := NewInt(pager.Bind(&selected), content).AdjustOnSwipe(true).SetWidth(30)
	m = drain(t, m, cmd)
	require.Equal(t, 1, m.Height())

	m = send(t, m, press(20, 0), motion(18, 0), motion(5, 0))
	assert.True(t, m.Engine().ThresholdCrossed())
	assert.Equal(t, 3, m.Height())

	m = send(t, m, motion(18, 0))
	assert.Equal(t, 1, m.Height())
}

func TestCallbacksAndBindings(t *testing.T) {
	selected := 5
	dragging := false
	var crossings []string
	var impacts []pager.Impact

	m, cmd := NewInt(pager.Bind(&selected), plainPage).
		OnThresholdCrossed(func(id int, ok bool) {
			crossings = append(crossings, fmt.Sprintf("%d:%v", id, ok))
		}).
		IsDragging(pager.Bind(&dragging)).
		Impacts(pager.AllImpacts).
		Feedback(func(i pager.Impact) { impacts = append(impacts, i) }).
		SetWidth(30)
	m = drain(t, m, cmd)

	m, _ = m.Update(press(20, 0))
	m, _ = m.Update(motion(10, 0))
	assert.True(t, dragging)

	m = send(t, m, release(10, 0))
	assert.False(t, dragging)
	assert.Equal(t, 6, selected)
	assert.Equal(t, []string{"6:true", "0:false"}, crossings)
	assert.Equal(t, []pager.Impact{pager.ImpactStart, pager.ImpactThreshold, pager.ImpactEnd}, impacts)
}

func TestOptionCopiesAreIndependent(t *testing.T) {
	selected := 0
	base := NewInt(pager.Bind(&selected), plainPage)
	wide := base.Threshold(0.5)
	narrow := base.Threshold(0.1)

	assert.NotSame(t, wide.Engine(), narrow.Engine())
	assert.Equal(t, 0.5, wide.Engine().Config().Threshold)
	assert.Equal(t, 0.1, narrow.Engine().Config().Threshold)
	assert.Equal(t, pager.DefaultThreshold, base.Engine().Config().Threshold)
	assert.Equal(t, pager.MaxThreshold, base.Threshold(3).Engine().Config().Threshold)
}

func TestMessagesForOtherViewsAreIgnored(t *testing.T) {
	selected := 5
	m := newTestView(t, &selected, 30)
	other := newTestView(t, &selected, 30)

	m, _ = m.Update(press(20, 0))
	m, _ = m.Update(motion(5, 0))
	m, _ = m.Update(release(5, 0))
	require.Equal(t, pager.PhaseSettling, m.Engine().Phase())

	m, _ = m.Update(frameMsg{id: other.ID()})
	assert.Equal(t, pager.PhaseSettling, m.Engine().Phase())
	assert.Equal(t, 5, selected)
}

func TestDateAdapters(t *testing.T) {
	today := time.Date(2024, 11, 20, 9, 30, 0, 0, time.UTC)
	selected := today
	clock := func() time.Time { return today }
	m, cmd := NewDate(pager.Bind(&selected), iterator.DateHistoric, clock, func(d time.Time) string {
		return d.Format("2006-01-02")
	}).SetWidth(30)
	m = drain(t, m, cmd)

	m, cmd = m.Next()
	m = drain(t, m, cmd)
	assert.True(t, selected.Equal(today), "historic view cannot move past now")

	m, cmd = m.Previous()
	drain(t, m, cmd)
	assert.True(t, selected.Equal(today.Add(-iterator.Day)))

	week := time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC)
	w, cmd := NewWeek(pager.Bind(&week), iterator.Bounds{}, func(d time.Time) string { return d.String() }).SetWidth(30)
	w = drain(t, w, cmd)
	w, cmd = w.Next()
	drain(t, w, cmd)
	assert.Equal(t, time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC), week)
}
