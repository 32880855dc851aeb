package engine

import (
	"time"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// DayCell is one slot of a rendered month grid.
// Leading placeholders before the 1st of the month have IsEmpty set and
// carry no date. Full completion (5/5) is derived by the view from
// CompletedCount; there is no separate flag for it.
type DayCell struct {
	DayNumber      int
	DateKey        string
	CompletedCount int
	IsToday        bool
	IsEmpty        bool
}

// Percent returns the completion percentage the view uses for its progress
// indicator. Empty placeholders report 0.
func (c DayCell) Percent() int {
	return c.CompletedCount * 100 / config.PrayerCount
}

// MonthGrid is the projection of one calendar month over the prayer log.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []DayCell
}

// CompleteDays counts the fully-logged days of the month.
func (g MonthGrid) CompleteDays() int {
	count := 0
	for _, cell := range g.Cells {
		if !cell.IsEmpty && cell.CompletedCount == config.PrayerCount {
			count++
		}
	}
	return count
}

// ProjectMonth builds the cell sequence for one month: leading empty cells
// equal to the weekday index of the 1st (week starts Sunday, index 0),
// followed by one real cell per day. Trailing padding to full rows is left
// to the view.
//
// Projection is read-only: browsing a calendar never materializes days in
// the store. IsToday is exact date-key equality against today at call time,
// so a grid reused across a local midnight must be re-projected.
func ProjectMonth(data map[string]DailyLog, year int, month time.Month, today time.Time) MonthGrid {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := KeyFor(today)

	leading := int(first.Weekday())
	cells := make([]DayCell, 0, leading+daysInMonth)

	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{IsEmpty: true})
	}

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		key := KeyFor(time.Date(year, month, dayNum, 0, 0, 0, 0, loc))

		completed := 0
		if day, ok := data[key]; ok {
			completed = day.CompletedCount()
		}

		cells = append(cells, DayCell{
			DayNumber:      dayNum,
			DateKey:        key,
			CompletedCount: completed,
			IsToday:        key == todayKey,
		})
	}

	return MonthGrid{Year: year, Month: month, Cells: cells}
}

// ProjectYear builds the twelve month grids of a year, January first.
func ProjectYear(data map[string]DailyLog, year int, today time.Time) []MonthGrid {
	grids := make([]MonthGrid, 0, config.MonthsPerYear)
	for m := time.January; m <= time.December; m++ {
		grids = append(grids, ProjectMonth(data, year, m, today))
	}
	return grids
}
