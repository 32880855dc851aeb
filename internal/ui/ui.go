package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/export"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/server"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/store"
)

//go:embed Icon.png
var appIconData []byte

// NamaazApp encapsulates the UI state and wires the engine, store, and feed
// together. It owns all navigation state (which month/year is displayed);
// none of that belongs to the core packages.
type NamaazApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store    *store.Store
	Server   *server.FeedServer
	Exporter *export.Exporter
	Clock    engine.Clock // Injected clock for testability

	SupportedLanguages []string

	// Displayed month. Navigation constructs fresh date values and assigns
	// these fields; no shared date object is ever stepped in place.
	viewYear  int
	viewMonth time.Month

	titleLabel *widget.Label
	statsLabel *widget.Label
	grid       *fyne.Container

	settingsWindow fyne.Window
	yearWindow     fyne.Window

	// renderedDayKey is the date key the visible grid was projected for.
	// The day-change worker compares against it across the local midnight.
	renderedMu     sync.Mutex
	renderedDayKey string
}

// NewNamaazApp constructs the application controller and wires dependencies.
func NewNamaazApp(a fyne.App, ctx context.Context, st *store.Store, srv *server.FeedServer, exp *export.Exporter) *NamaazApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	clock := engine.RealClock{}
	now := clock.Now()

	return &NamaazApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              st,
		Server:             srv,
		Exporter:           exp,
		Clock:              clock,
		SupportedLanguages: config.SupportedLanguages,
		viewYear:           now.Year(),
		viewMonth:          now.Month(),
	}
}

// Run launches the feed services and the main UI loop. Blocks until the main
// window closes.
func (app *NamaazApp) Run() {
	app.SetupI18n()
	app.Exporter.FormatSummary = app.buildFeedSummaryFormatter()

	app.buildMainWindow()
	app.RefreshAll()

	if app.feedEnabled() {
		go func() {
			if err := app.Server.Start(app.Ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err,
				)
				app.App.SendNotification(fyne.NewNotification(
					config.TitleStartupError,
					fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
			}
		}()
		app.rebuildFeed()
	}

	go app.dayChangeWorker()

	app.Window.ShowAndRun()
}

// buildMainWindow assembles the master window once; content is replaced on
// language change via rebuildMainContent.
func (app *NamaazApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))
	w.SetMaster()
	app.Window = w

	app.rebuildMainContent()
}

// rebuildMainContent (re)creates every widget of the main window, picking up
// the current locale.
func (app *NamaazApp) rebuildMainContent() {
	app.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	app.statsLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	app.grid = container.NewGridWithColumns(config.DaysPerWeek)

	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), app.prevMonth)
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), app.nextMonth)
	todayBtn := widget.NewButton(app.GetMsg(config.TKeyBtnToday), app.goToday)
	yearBtn := widget.NewButton(app.GetMsg(config.TKeyBtnYearView), app.ShowYearWindow)
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)

	nav := container.NewBorder(nil, nil,
		prevBtn,
		container.NewHBox(nextBtn, todayBtn, yearBtn, settingsBtn),
		app.titleLabel,
	)

	weekdays := app.weekdayLabels()
	header := container.NewGridWithColumns(config.DaysPerWeek)
	for _, day := range weekdays {
		header.Add(widget.NewLabelWithStyle(day, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}

	top := container.NewVBox(nav, app.statsLabel, header)
	app.Window.SetContent(container.NewBorder(top, nil, nil, nil, app.grid))
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
}

// RefreshAll re-renders the month grid and the stats header against the
// current clock. Called after every mutation and across day boundaries,
// because IsToday and the streak are only meaningful at render time.
func (app *NamaazApp) RefreshAll() {
	app.renderMonth()
	app.refreshStats()
}

// renderMonth projects the displayed month and rebuilds the grid.
func (app *NamaazApp) renderMonth() {
	today := app.Clock.Now()
	grid := app.Store.ProjectMonth(app.viewYear, app.viewMonth, today)

	first := time.Date(app.viewYear, app.viewMonth, 1, 0, 0, 0, 0, today.Location())
	app.titleLabel.SetText(first.Format(config.MonthTitleFormat))

	objects := make([]fyne.CanvasObject, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		if cell.IsEmpty {
			objects = append(objects, widget.NewLabel(""))
			continue
		}

		cell := cell
		text := fmt.Sprintf(config.FormatDayOnly, cell.DayNumber)
		if cell.CompletedCount > 0 {
			text = fmt.Sprintf(config.FormatDayCell, cell.DayNumber, cell.CompletedCount, config.PrayerCount)
		}

		btn := widget.NewButton(text, func() {
			app.ShowDayDialog(cell.DateKey)
		})
		switch {
		case cell.IsToday:
			btn.Importance = widget.HighImportance
		case cell.CompletedCount == config.PrayerCount:
			// Full completion is a derived, terminal visual state.
			btn.Importance = widget.SuccessImportance
		case cell.CompletedCount > 0:
			btn.Importance = widget.MediumImportance
		default:
			btn.Importance = widget.LowImportance
		}
		objects = append(objects, btn)
	}

	app.grid.Objects = objects
	app.grid.Refresh()

	app.renderedMu.Lock()
	app.renderedDayKey = engine.KeyFor(today)
	app.renderedMu.Unlock()
}

// refreshStats recomputes the derived aggregates and updates the header.
func (app *NamaazApp) refreshStats() {
	snap := app.Store.Stats(app.Clock.Now())

	points := fmt.Sprintf(config.FallbackStatsPoints, snap.TotalPoints)
	if app.Localizer != nil {
		if msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyStatsPoints,
			TemplateData: map[string]interface{}{"Points": snap.TotalPoints},
		}); err == nil && msg != "" {
			points = msg
		}
	}

	streak := config.FallbackStatsStreakZero
	if snap.CurrentStreak > 0 {
		streak = fmt.Sprintf(config.FallbackStatsStreak, snap.CurrentStreak)
		if app.Localizer != nil {
			if msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyStatsStreak,
				TemplateData: map[string]interface{}{"Count": snap.CurrentStreak},
				PluralCount:  snap.CurrentStreak,
			}); err == nil && msg != "" {
				streak = msg
			}
		}
	} else if msg := app.GetMsg(config.TKeyStatsStreak0); msg != config.TKeyStatsStreak0 {
		streak = msg
	}

	app.statsLabel.SetText(points + config.StatsSpacer + streak)
}

// -----------------------------------------------------------------------------
// Navigation
// -----------------------------------------------------------------------------

func (app *NamaazApp) prevMonth() { app.shiftMonth(-1) }
func (app *NamaazApp) nextMonth() { app.shiftMonth(1) }

// shiftMonth moves the displayed month by delta. A fresh date value is
// constructed for the arithmetic; nothing is mutated in place.
func (app *NamaazApp) shiftMonth(delta int) {
	cur := time.Date(app.viewYear, app.viewMonth, 1, 0, 0, 0, 0, app.Clock.Now().Location())
	next := cur.AddDate(0, delta, 0)
	app.viewYear, app.viewMonth = next.Year(), next.Month()
	app.renderMonth()
}

// goToday returns the view to the current month.
func (app *NamaazApp) goToday() {
	now := app.Clock.Now()
	app.viewYear, app.viewMonth = now.Year(), now.Month()
	app.renderMonth()
}

// ShowMonth navigates the main window to an arbitrary month (year overview
// drill-down).
func (app *NamaazApp) ShowMonth(year int, month time.Month) {
	app.viewYear, app.viewMonth = year, month
	app.renderMonth()
	app.Window.RequestFocus()
}

// -----------------------------------------------------------------------------
// Mutation pipeline
// -----------------------------------------------------------------------------

// afterMutation completes the strictly sequential user-turn chain: the store
// has already mutated and persisted; now recompute stats, re-render, and
// refresh the feed.
func (app *NamaazApp) afterMutation() {
	app.refreshStats()
	app.renderMonth()
	app.rebuildFeed()
}

// notifySaveError surfaces a persistence failure instead of swallowing it.
// The in-memory log is still correct for this session.
func (app *NamaazApp) notifySaveError(err error) {
	slog.Error(config.ErrStoreSave,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err,
	)
	app.App.SendNotification(fyne.NewNotification(
		config.TitleSaveError,
		app.GetMsg(config.TKeyNotifSaveError)))
}

// -----------------------------------------------------------------------------
// Feed
// -----------------------------------------------------------------------------

func (app *NamaazApp) feedEnabled() bool {
	return app.Preferences.BoolWithFallback(config.PrefFeedEnabled, false)
}

// rebuildFeed re-exports the log and swaps it into the feed server.
func (app *NamaazApp) rebuildFeed() {
	if !app.feedEnabled() {
		slog.Debug(config.MsgFeedDisabled, config.LogKeyComponent, config.CompUI)
		return
	}

	ics, err := app.Exporter.Build(app.Store.Snapshot())
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		return
	}

	app.Server.Update(ics)
	slog.Debug(config.MsgFeedRebuilt,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySizeBytes, len(ics),
	)
}

// buildFeedSummaryFormatter returns a closure that localizes feed summaries.
func (app *NamaazApp) buildFeedSummaryFormatter() func(points int) string {
	return func(points int) string {
		if app.Localizer == nil {
			return ""
		}
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyFeedSummary,
			TemplateData: map[string]interface{}{"Points": points},
		})
		if err != nil {
			return ""
		}
		return msg
	}
}

// -----------------------------------------------------------------------------
// Day-change worker
// -----------------------------------------------------------------------------

// dayChangeWorker re-renders across the local midnight so IsToday and the
// streak stay truthful while the app sits open overnight.
func (app *NamaazApp) dayChangeWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.DayChangeCheckInterval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyValue, config.DayChangeCheckInterval.String())

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			nowKey := engine.KeyFor(app.Clock.Now())

			app.renderedMu.Lock()
			rendered := app.renderedDayKey
			app.renderedMu.Unlock()

			if nowKey == rendered || rendered == "" {
				continue
			}

			log.Info(config.MsgDayRollover, config.LogKeyDate, nowKey)
			fyne.Do(app.RefreshAll)
		}
	}
}

// weekdayLabels returns the localized week header, Sunday first to match the
// projector's week-start convention.
func (app *NamaazApp) weekdayLabels() []string {
	keys := []string{
		config.TKeyWeekdaySun,
		config.TKeyWeekdayMon,
		config.TKeyWeekdayTue,
		config.TKeyWeekdayWed,
		config.TKeyWeekdayThu,
		config.TKeyWeekdayFri,
		config.TKeyWeekdaySat,
	}
	labels := make([]string, 0, config.DaysPerWeek)
	for _, k := range keys {
		labels = append(labels, app.GetMsg(k))
	}
	return labels
}
