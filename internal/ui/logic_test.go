package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
)

// newTestApp builds a minimal controller with real embedded locales loaded.
// By being in package 'ui', we can exercise the private helpers directly.
func newTestApp(t *testing.T) *NamaazApp {
	t.Helper()
	a := test.NewApp()
	app := &NamaazApp{
		App:         a,
		Preferences: a.Preferences(),
	}
	app.SetupI18n()
	require.NotNil(t, app.Localizer, "embedded locales must load")
	return app
}

func TestApp_SetupI18n_DetectsEnglish(t *testing.T) {
	app := newTestApp(t)
	assert.Contains(t, app.SupportedLanguages, config.DefaultLanguage)
}

func TestApp_StatusLabelRoundTrip(t *testing.T) {
	// Scenario: every status maps to a distinct localized label and back.
	// The Select widget depends on this being lossless.
	app := newTestApp(t)

	seen := make(map[string]bool)
	for _, status := range engine.AllStatuses {
		label := app.statusLabel(status)
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], "label %q must be unique", label)
		seen[label] = true

		assert.Equal(t, status, app.statusFromLabel(label))
	}

	// An impossible label degrades to none rather than crashing.
	assert.Equal(t, engine.StatusNone, app.statusFromLabel("does-not-exist"))
}

func TestApp_StatusOptions_Order(t *testing.T) {
	// Scenario: selection widgets list statuses in ascending point order.
	app := newTestApp(t)

	opts := app.statusOptions()
	require.Len(t, opts, len(engine.AllStatuses))
	assert.Equal(t, app.statusLabel(engine.StatusNone), opts[0])
	assert.Equal(t, app.statusLabel(engine.StatusJamaat), opts[len(opts)-1])
}

func TestApp_PrayerLabels(t *testing.T) {
	app := newTestApp(t)

	for _, name := range config.PrayerNames {
		label := app.prayerLabel(name)
		assert.NotEmpty(t, label)
		assert.NotContains(t, label, "prayer_", "label must be a translation, not a raw key")
	}

	// Unknown names pass through untouched.
	assert.Equal(t, "Tahajjud", app.prayerLabel("Tahajjud"))
}

func TestApp_WeekdayLabels_SundayFirst(t *testing.T) {
	// Scenario: the header row matches the projector's Sunday-first weeks.
	app := newTestApp(t)

	labels := app.weekdayLabels()
	require.Len(t, labels, config.DaysPerWeek)
	assert.Equal(t, app.GetMsg(config.TKeyWeekdaySun), labels[0])
	assert.Equal(t, app.GetMsg(config.TKeyWeekdaySat), labels[config.DaysPerWeek-1])
}

func TestApp_DayPointsText(t *testing.T) {
	app := newTestApp(t)
	assert.Contains(t, app.dayPointsText(30), "30")
}

func TestApp_YearFullDaysText_Plural(t *testing.T) {
	app := newTestApp(t)
	assert.Contains(t, app.yearFullDaysText(1), "1")
	assert.Contains(t, app.yearFullDaysText(12), "12")
}

func TestApp_FeedDisabledByDefault(t *testing.T) {
	// Scenario: serving a localhost feed is opt-in.
	app := newTestApp(t)
	assert.False(t, app.feedEnabled())

	app.Preferences.SetBool(config.PrefFeedEnabled, true)
	assert.True(t, app.feedEnabled())
}

func TestApp_FeedSummaryFormatter(t *testing.T) {
	app := newTestApp(t)

	format := app.buildFeedSummaryFormatter()
	summary := format(55)
	assert.Contains(t, summary, "55")
}

func TestApp_GetMsg_MissingKeyFallsBack(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, "no_such_key", app.GetMsg("no_such_key"))
}
