package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
)

func TestParseStatus_Defensive(t *testing.T) {
	// Scenario: the blob is user-editable; unrecognized values degrade to
	// none rather than erroring.
	tests := []struct {
		input string
		want  engine.Status
	}{
		{"jamaat", engine.StatusJamaat},
		{"individual", engine.StatusIndividual},
		{"qaza", engine.StatusQaza},
		{"none", engine.StatusNone},
		{"", engine.StatusNone},
		{"JAMAAT", engine.StatusNone},
		{"garbage", engine.StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ParseStatus(tt.input))
		})
	}
}

func TestStatus_Logged(t *testing.T) {
	assert.False(t, engine.StatusNone.Logged())
	assert.True(t, engine.StatusQaza.Logged(), "qaza counts toward completion despite low points")
	assert.True(t, engine.StatusIndividual.Logged())
	assert.True(t, engine.StatusJamaat.Logged())
}

func TestNewDailyLog_AllPrayersUnlogged(t *testing.T) {
	d := engine.NewDailyLog()

	require.Len(t, d, config.PrayerCount)
	for _, name := range config.PrayerNames {
		rec, ok := d[name]
		require.True(t, ok, "materialized day must carry %s", name)
		assert.Equal(t, engine.StatusNone, rec.Status)
		assert.Zero(t, rec.Points)
	}

	assert.Equal(t, 0, d.CompletedCount())
	assert.False(t, d.Complete())
}

func TestDailyLog_Completion(t *testing.T) {
	d := engine.NewDailyLog()
	d[config.PrayerFajr] = engine.PrayerRecord{Status: engine.StatusJamaat}
	assert.Equal(t, 1, d.CompletedCount())
	assert.False(t, d.Complete())

	for _, name := range config.PrayerNames {
		d[name] = engine.PrayerRecord{Status: engine.StatusQaza}
	}
	assert.True(t, d.Complete())
}

func TestDailyLog_Clone(t *testing.T) {
	// Scenario: clones are independent; mutating the copy never leaks back.
	d := day(engine.StatusJamaat)
	cp := d.Clone()
	cp[config.PrayerFajr] = engine.PrayerRecord{Status: engine.StatusNone}

	assert.Equal(t, engine.StatusJamaat, d[config.PrayerFajr].Status)
	assert.Equal(t, engine.StatusNone, cp[config.PrayerFajr].Status)
}

func TestKeyFor_RoundTrip(t *testing.T) {
	loc := time.UTC
	original := date(2026, time.April, 5)

	key := engine.KeyFor(original)
	assert.Equal(t, "2026-04-05", key)

	parsed, err := engine.ParseKey(key, loc)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestParseKey_Invalid(t *testing.T) {
	_, err := engine.ParseKey("05/04/2026", time.UTC)
	assert.Error(t, err)

	_, err = engine.ParseKey("", time.UTC)
	assert.Error(t, err)
}

func TestValidPrayer(t *testing.T) {
	for _, name := range config.PrayerNames {
		assert.True(t, engine.ValidPrayer(name))
	}
	assert.False(t, engine.ValidPrayer("Tahajjud"))
	assert.False(t, engine.ValidPrayer("fajr"), "prayer names are case-sensitive canonical keys")
	assert.False(t, engine.ValidPrayer(""))
}
