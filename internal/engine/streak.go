package engine

import "time"

// CurrentStreak counts the consecutive days ending at today (inclusive) for
// which all five prayers carry a logged status.
//
// The walk starts at today's calendar date (time of day is irrelevant) and
// moves strictly backward one day at a time, stopping at the first day that
// is absent or has fewer than five logged prayers — including today itself,
// which yields 0. A single unlogged day breaks the streak; it never pauses
// and resumes. Cost is O(streak length), not O(len(data)).
func CurrentStreak(data map[string]DailyLog, today time.Time) int {
	streak := 0
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	for {
		log, ok := data[KeyFor(day)]
		if !ok || !log.Complete() {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// Stats bundles the two derived aggregates the view renders together.
func Stats(data map[string]DailyLog, today time.Time) StatsSnapshot {
	return StatsSnapshot{
		TotalPoints:   TotalPoints(data, today.Location()),
		CurrentStreak: CurrentStreak(data, today),
	}
}
