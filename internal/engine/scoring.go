package engine

import (
	"log/slog"
	"time"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// PointsFor returns the points awarded for performing prayer with the given
// status on date. It is pure and total: every input yields a value.
//
// The Juma override is keyed on the weekday of the logged date, not on
// "today" — editing a past Friday applies the same rule. The bonus is a flat
// value for any logged status; see DESIGN.md for why it does not scale.
func PointsFor(date time.Time, prayer string, status Status) int {
	if prayer == config.PrayerDhuhr && date.Weekday() == time.Friday {
		if !status.Logged() {
			return config.PointsNone
		}
		return config.PointsJumaBonus
	}

	switch status {
	case StatusQaza:
		return config.PointsQaza
	case StatusIndividual:
		return config.PointsIndividual
	case StatusJamaat:
		return config.PointsJamaat
	default:
		return config.PointsNone
	}
}

// TotalPoints sums the scoring rule over every logged prayer in data.
// Points are re-derived from (date, prayer, status) rather than read from
// the cached field, so a blob whose caches drifted still totals correctly.
//
// Addition commutes, so map iteration order is irrelevant. Entries whose
// date key does not parse are skipped with a warning rather than failing;
// the store never writes such keys, but the blob is user-editable.
func TotalPoints(data map[string]DailyLog, loc *time.Location) int {
	total := 0
	for key, day := range data {
		date, err := ParseKey(key, loc)
		if err != nil {
			slog.Warn(config.MsgSkippedDay,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyDate, key,
			)
			continue
		}
		for _, name := range config.PrayerNames {
			if rec, ok := day[name]; ok && rec.Status.Logged() {
				total += PointsFor(date, name, rec.Status)
			}
		}
	}
	return total
}
