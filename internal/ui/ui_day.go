package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
)

// ShowDayDialog opens the single-day detail view for dateKey.
//
// Opening the detail view is the one place an untouched day gains a store
// entry (all five prayers unlogged); browsing calendars never does. Each
// status selection writes through immediately, so closing the dialog needs
// no explicit save.
func (app *NamaazApp) ShowDayDialog(dateKey string) {
	slog.Info(config.MsgOpenDay,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDate, dateKey,
	)

	day, err := app.Store.GetOrInitDay(dateKey)
	if err != nil {
		// The day exists in memory; only its persistence failed.
		app.notifySaveError(err)
	}

	loc := app.Clock.Now().Location()
	date, err := engine.ParseKey(dateKey, loc)
	if err != nil {
		// Grid cells only carry keys the projector generated, so this is
		// unreachable in practice; bail out rather than render garbage.
		slog.Error(config.ErrDateParse,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDate, dateKey,
		)
		return
	}

	pointsLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	updatePoints := func(d engine.DailyLog) {
		total := 0
		for _, name := range config.PrayerNames {
			total += d[name].Points
		}
		pointsLabel.SetText(app.dayPointsText(total))
	}
	updatePoints(day)

	options := app.statusOptions()
	items := make([]*widget.FormItem, 0, config.PrayerCount)

	for _, name := range config.PrayerNames {
		name := name

		sel := widget.NewSelect(options, nil)
		sel.SetSelected(app.statusLabel(day[name].Status))
		sel.OnChanged = func(chosen string) {
			status := app.statusFromLabel(chosen)
			if err := app.Store.SetPrayerStatus(dateKey, name, status); err != nil {
				app.notifySaveError(err)
			}
			if current, ok := app.Store.Day(dateKey); ok {
				updatePoints(current)
			}
			app.afterMutation()
		}

		items = append(items, widget.NewFormItem(app.prayerLabel(name), sel))
	}

	form := widget.NewForm(items...)
	content := container.NewVBox(form, pointsLabel)

	if date.Weekday() == time.Friday {
		hint := widget.NewLabelWithStyle(app.GetMsg(config.TKeyJumaHint), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		content.Add(hint)
	}

	title := date.Format(config.DayTitleFormat)
	dialog.ShowCustom(title, app.GetMsg(config.TKeyBtnClose), content, app.Window)
}

// dayPointsText renders the running point total of the open day.
func (app *NamaazApp) dayPointsText(points int) string {
	if app.Localizer != nil {
		if msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyDayPoints,
			TemplateData: map[string]interface{}{"Points": points},
		}); err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FormatDayPoints, points)
}

// prayerLabel translates a canonical prayer name for display.
func (app *NamaazApp) prayerLabel(name string) string {
	switch name {
	case config.PrayerFajr:
		return app.GetMsg(config.TKeyPrayerFajr)
	case config.PrayerDhuhr:
		return app.GetMsg(config.TKeyPrayerDhuhr)
	case config.PrayerAsr:
		return app.GetMsg(config.TKeyPrayerAsr)
	case config.PrayerMaghrib:
		return app.GetMsg(config.TKeyPrayerMaghrib)
	case config.PrayerIsha:
		return app.GetMsg(config.TKeyPrayerIsha)
	default:
		return name
	}
}

// statusLabel translates a status for display.
func (app *NamaazApp) statusLabel(s engine.Status) string {
	switch s {
	case engine.StatusQaza:
		return app.GetMsg(config.TKeyStatusQaza)
	case engine.StatusIndividual:
		return app.GetMsg(config.TKeyStatusIndividual)
	case engine.StatusJamaat:
		return app.GetMsg(config.TKeyStatusJamaat)
	default:
		return app.GetMsg(config.TKeyStatusNone)
	}
}

// statusOptions returns the localized status choices in ascending point order.
func (app *NamaazApp) statusOptions() []string {
	opts := make([]string, 0, len(engine.AllStatuses))
	for _, s := range engine.AllStatuses {
		opts = append(opts, app.statusLabel(s))
	}
	return opts
}

// statusFromLabel maps a localized selection back onto its Status. An
// unmatched label (impossible via the Select widget) degrades to none.
func (app *NamaazApp) statusFromLabel(label string) engine.Status {
	for _, s := range engine.AllStatuses {
		if app.statusLabel(s) == label {
			return s
		}
	}
	return engine.StatusNone
}
