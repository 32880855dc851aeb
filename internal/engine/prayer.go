package engine

import (
	"fmt"
	"time"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// Status describes the manner in which a single prayer was performed.
// The zero-equivalent StatusNone means "not logged".
type Status string

const (
	StatusNone       Status = config.StatusNone
	StatusIndividual Status = config.StatusIndividual
	StatusJamaat     Status = config.StatusJamaat
	StatusQaza       Status = config.StatusQaza
)

// AllStatuses lists every valid status in ascending point order.
// The UI renders selection widgets in this order.
var AllStatuses = []Status{StatusNone, StatusQaza, StatusIndividual, StatusJamaat}

// ParseStatus maps a stored string onto a Status. The blob is user-owned
// local data with no other writer, so an unrecognized value is not an error;
// it degrades to StatusNone (0 points) and the caller may log it.
func ParseStatus(value string) Status {
	switch Status(value) {
	case StatusIndividual, StatusJamaat, StatusQaza:
		return Status(value)
	default:
		return StatusNone
	}
}

// Logged reports whether the status counts toward completion and streaks.
func (s Status) Logged() bool {
	return s != StatusNone
}

// PrayerRecord is the per-prayer entry of a day.
// Points is a derived cache: it always equals the value dictated by the
// scoring rule for (status, date, prayer) and is never an independent input.
type PrayerRecord struct {
	Status Status `json:"status"`
	Points int    `json:"points"`
}

// DailyLog maps a canonical prayer name to its record for one date.
// A materialized day always carries all five keys.
type DailyLog map[string]PrayerRecord

// NewDailyLog returns a fresh day with every prayer unlogged.
func NewDailyLog() DailyLog {
	day := make(DailyLog, config.PrayerCount)
	for _, name := range config.PrayerNames {
		day[name] = PrayerRecord{Status: StatusNone, Points: config.PointsNone}
	}
	return day
}

// CompletedCount returns how many of the five canonical prayers are logged.
// Keys outside the canonical set are ignored.
func (d DailyLog) CompletedCount() int {
	count := 0
	for _, name := range config.PrayerNames {
		if d[name].Status.Logged() {
			count++
		}
	}
	return count
}

// Complete reports whether all five prayers are logged for the day.
func (d DailyLog) Complete() bool {
	return d.CompletedCount() == config.PrayerCount
}

// Clone returns an independent copy of the day.
func (d DailyLog) Clone() DailyLog {
	cp := make(DailyLog, len(d))
	for name, rec := range d {
		cp[name] = rec
	}
	return cp
}

// StatsSnapshot is the derived aggregate the view renders after every
// mutation. It is recomputed on demand and never persisted, so there is a
// single source of truth: the log itself.
type StatsSnapshot struct {
	TotalPoints   int
	CurrentStreak int
}

// KeyFor renders a time value as its canonical YYYY-MM-DD store key.
// The key is taken from the value's own calendar date with no timezone
// adjustment; callers near midnight in non-UTC zones must supply a time in
// the zone they mean.
func KeyFor(t time.Time) string {
	return t.Format(config.DateKeyFormat)
}

// ParseKey converts a store key back into a date at midnight in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(config.DateKeyFormat, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return t, nil
}

// ValidPrayer reports whether name is one of the five canonical prayers.
func ValidPrayer(name string) bool {
	for _, p := range config.PrayerNames {
		if p == name {
			return true
		}
	}
	return false
}
