package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/export"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func fullDay(status engine.Status) engine.DailyLog {
	d := engine.NewDailyLog()
	for _, name := range config.PrayerNames {
		d[name] = engine.PrayerRecord{Status: status}
	}
	return d
}

func testExporter() *export.Exporter {
	return &export.Exporter{
		Clock: MockClock{CurrentTime: time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)},
	}
}

func TestBuild_EmptyLogYieldsStub(t *testing.T) {
	// Scenario: no data at all. Clients reject empty feeds, so a minimal
	// valid VCALENDAR is served instead.
	data, err := testExporter().Build(nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestBuild_IncompleteDaysYieldStub(t *testing.T) {
	// Scenario: days exist but none is fully completed -> still the stub.
	partial := engine.NewDailyLog()
	partial[config.PrayerFajr] = engine.PrayerRecord{Status: engine.StatusJamaat}

	data, err := testExporter().Build(map[string]engine.DailyLog{"2026-01-05": partial})
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestBuild_CompleteDayBecomesEvent(t *testing.T) {
	// Scenario: one complete Thursday at jamaat -> one all-day event with
	// the fallback summary (no localizer injected) carrying 25 points.
	log := map[string]engine.DailyLog{
		"2026-01-01": fullDay(engine.StatusJamaat),
	}

	data, err := testExporter().Build(log)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "BEGIN:VEVENT")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260101")
	assert.Contains(t, ics, "All prayers completed (25 pts)")
	assert.Contains(t, ics, config.ICalProdid)
}

func TestBuild_FridayBonusInSummary(t *testing.T) {
	// Scenario: 2026-01-02 is a Friday; the event total reflects the flat
	// Dhuhr bonus (4*5 + 10 = 30).
	log := map[string]engine.DailyLog{
		"2026-01-02": fullDay(engine.StatusJamaat),
	}

	data, err := testExporter().Build(log)
	require.NoError(t, err)
	assert.Contains(t, string(data), "All prayers completed (30 pts)")
}

func TestBuild_UIDStableAcrossRebuilds(t *testing.T) {
	// Scenario: subscribing clients track events by UID; the same date key
	// must hash to the same UID on every rebuild.
	log := map[string]engine.DailyLog{
		"2026-01-01": fullDay(engine.StatusIndividual),
	}

	exp := testExporter()
	first, err := exp.Build(log)
	require.NoError(t, err)
	second, err := exp.Build(log)
	require.NoError(t, err)

	uid := extractLine(t, string(first), "UID:")
	assert.NotEmpty(t, uid)
	assert.Equal(t, uid, extractLine(t, string(second), "UID:"))
	assert.Contains(t, uid, "@"+config.ICalDomain)
}

func TestBuild_InjectedSummaryFormatter(t *testing.T) {
	// Scenario: the UI injects a localized formatter; it wins over the
	// fallback when it returns a non-empty string.
	exp := testExporter()
	exp.FormatSummary = func(points int) string {
		return "Done!"
	}

	data, err := exp.Build(map[string]engine.DailyLog{
		"2026-01-01": fullDay(engine.StatusJamaat),
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:Done!")
}

func TestBuild_SkipsMalformedKeys(t *testing.T) {
	// Scenario: a garbage key in a hand-edited blob is skipped; the valid
	// day still exports.
	data, err := testExporter().Build(map[string]engine.DailyLog{
		"not-a-date": fullDay(engine.StatusJamaat),
		"2026-01-01": fullDay(engine.StatusJamaat),
	})
	require.NoError(t, err)

	ics := string(data)
	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT"))
}

// extractLine returns the value of the first content line starting with prefix.
func extractLine(t *testing.T, ics, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return ""
}
