package views

import (
	"fmt"
	"strings"
	"time"

	"pageview/internal/domain"
)

const dateLayout = "2006-01-02"

// PageRenderer draws the content of a single page for each paging mode.
// Pages deliberately differ in height so the container has to follow.
type PageRenderer struct {
	styles *Styles
	now    func() time.Time
}

// NewPageRenderer creates a renderer; now marks today on date pages
func NewPageRenderer(styles *Styles, now func() time.Time) *PageRenderer {
	if now == nil {
		now = time.Now
	}
	return &PageRenderer{styles: styles, now: now}
}

// Int renders an integer page with id%4 extra rows
func (r *PageRenderer) Int(id int) string {
	lines := []string{r.styles.PageTitle.Render(fmt.Sprintf("Page %d", id))}
	for i := 0; i < id%4; i++ {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("• row %d of %d", i+1, id%4)))
	}
	return r.styles.PageBody.Render(strings.Join(lines, "\n"))
}

// Day renders a single day
func (r *PageRenderer) Day(d time.Time) string {
	title := d.Format("Monday")
	if sameDay(d, r.now()) {
		title += " " + r.styles.Highlight.Render("(today)")
	}
	lines := []string{
		r.styles.PageTitle.Render(title),
		d.Format(dateLayout),
		r.styles.Dim.Render(fmt.Sprintf("day %d of %d", d.YearDay(), daysIn(d.Year()))),
	}
	if d.Day() == 1 {
		lines = append(lines, r.styles.Dim.Render("first of "+d.Format("January")))
	}
	return r.styles.PageBody.Render(strings.Join(lines, "\n"))
}

// Week renders the seven days starting at d
func (r *PageRenderer) Week(d time.Time) string {
	_, week := d.ISOWeek()
	lines := []string{r.styles.PageTitle.Render(fmt.Sprintf("Week %d", week))}
	for i := 0; i < 7; i++ {
		day := d.AddDate(0, 0, i)
		line := day.Format("Mon 02 Jan")
		switch {
		case sameDay(day, r.now()):
			line = r.styles.Highlight.Render(line)
		case isWeekend(day):
			line = r.styles.Weekend.Render(line)
		}
		lines = append(lines, line)
	}
	return r.styles.PageBody.Render(strings.Join(lines, "\n"))
}

// Month renders a Monday-first calendar grid. Months span four to six
// week rows.
func (r *PageRenderer) Month(d time.Time) string {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	days := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7

	lines := []string{
		r.styles.PageTitle.Render(first.Format("January 2006")),
		r.styles.Dim.Render("Mo Tu We Th Fr Sa Su"),
	}
	cells := make([]string, 0, 7)
	flush := func() {
		lines = append(lines, strings.Join(cells, " "))
		cells = cells[:0]
	}
	for i := 0; i < lead; i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%2d", day)
		switch {
		case sameDay(date, r.now()):
			cell = r.styles.Highlight.Render(cell)
		case isWeekend(date):
			cell = r.styles.Weekend.Render(cell)
		}
		cells = append(cells, cell)
		if len(cells) == 7 {
			flush()
		}
	}
	if len(cells) > 0 {
		flush()
	}
	return r.styles.PageBody.Render(strings.Join(lines, "\n"))
}

// Label formats an identifier for the status line
func Label(mode domain.Mode, id any) string {
	switch v := id.(type) {
	case time.Time:
		switch mode {
		case domain.ModeMonth:
			return v.Format("January 2006")
		case domain.ModeWeek:
			_, w := v.ISOWeek()
			return fmt.Sprintf("week %d (%s)", w, v.Format(dateLayout))
		default:
			return v.Format(dateLayout)
		}
	default:
		return fmt.Sprint(v)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

func daysIn(year int) int {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
