package ui

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// monthSummary is one row of the year overview table.
type monthSummary struct {
	Month    time.Month
	FullDays int
	Percent  int
}

// ShowYearWindow displays the twelve-month overview for the displayed year.
// It implements a singleton pattern: if the window is already open, it
// requests focus. Selecting a row navigates the main window to that month.
func (app *NamaazApp) ShowYearWindow() {
	if app.yearWindow != nil {
		app.yearWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenYear,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyValue, app.viewYear,
	)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinYear))
	w.Resize(fyne.NewSize(config.YearWinWidth, config.YearWinHeight))
	app.yearWindow = w

	year := app.viewYear
	rows := make([]monthSummary, 0, config.MonthsPerYear)

	// Internal sorting state
	currentSortCol := config.ColIDMonth
	sortAsc := true

	yearLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// project rebuilds the rows from the store for the selected year.
	project := func() {
		today := app.Clock.Now()
		grids := app.Store.ProjectYear(year, today)

		rows = rows[:0]
		for _, grid := range grids {
			full := grid.CompleteDays()
			days := 0
			for _, cell := range grid.Cells {
				if !cell.IsEmpty {
					days++
				}
			}
			percent := 0
			if days > 0 {
				percent = full * 100 / days
			}
			rows = append(rows, monthSummary{Month: grid.Month, FullDays: full, Percent: percent})
		}
		yearLabel.SetText(strconv.Itoa(year))
	}

	performSort := func() {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			var less bool
			switch currentSortCol {
			case config.ColIDFullDays:
				less = a.FullDays < b.FullDays
			case config.ColIDPercent:
				less = a.Percent < b.Percent
			default: // config.ColIDMonth
				less = a.Month < b.Month
			}
			if !sortAsc {
				return !less
			}
			return less
		})

		slog.Debug(config.LogMsgSorted,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc,
		)
	}

	project()
	performSort()

	var refreshTable func()

	table := widget.NewTable(
		func() (int, int) {
			return len(rows), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(rows) {
				return
			}
			row := rows[id.Row]

			switch id.Col {
			case config.ColIDMonth:
				label.SetText(row.Month.String())
			case config.ColIDFullDays:
				label.SetText(app.yearFullDaysText(row.FullDays))
			case config.ColIDPercent:
				label.SetText(fmt.Sprintf(config.FormatPercent, row.Percent))
			}
		},
	)

	table.ShowHeaderRow = true

	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("Header", func() {})
	}

	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDMonth:
			titleKey = config.TKeyColMonth
		case config.ColIDFullDays:
			titleKey = config.TKeyColFullDays
		case config.ColIDPercent:
			titleKey = config.TKeyColPercent
		}

		text := app.GetMsg(titleKey)
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.SetColumnWidth(config.ColIDMonth, config.ColWidthMonth)
	table.SetColumnWidth(config.ColIDFullDays, config.ColWidthFullDays)
	table.SetColumnWidth(config.ColIDPercent, config.ColWidthPercent)

	table.OnSelected = func(id widget.TableCellID) {
		table.UnselectAll()
		if id.Row < 0 || id.Row >= len(rows) {
			return
		}
		app.ShowMonth(year, rows[id.Row].Month)
	}

	refreshTable = func() {
		performSort()
		table.Refresh()
	}

	// Year navigation constructs a new value; no shared date is stepped.
	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		year--
		project()
		refreshTable()
	})
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		year++
		project()
		refreshTable()
	})

	header := container.NewBorder(nil, nil, prevBtn, nextBtn, yearLabel)
	w.SetContent(container.NewBorder(header, nil, nil, nil, table))

	w.SetOnClosed(func() {
		app.yearWindow = nil
	})

	w.Show()
}

// yearFullDaysText renders the "N full days" column value.
func (app *NamaazApp) yearFullDaysText(count int) string {
	if app.Localizer != nil {
		if msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyYearFullDays,
			TemplateData: map[string]interface{}{"Count": count},
			PluralCount:  count,
		}); err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FormatYearFullDays, count)
}
