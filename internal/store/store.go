package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
)

// Persister abstracts the durable blob the prayer log serializes into.
// This interface allows for mocking in tests and decoupling from the filesystem.
type Persister interface {
	// Load returns the stored blob, or (nil, nil) when none exists yet.
	Load() ([]byte, error)
	// Save atomically replaces the stored blob.
	Save(data []byte) error
}

// Store owns the in-memory prayer log and mirrors every mutation to the
// Persister. There is exactly one logical user; the RWMutex only guards the
// feed goroutine reading while the UI event loop writes. A concurrent second
// process would silently race to last-writer-wins — a documented limitation,
// not a supported mode.
type Store struct {
	mu        sync.RWMutex
	data      map[string]engine.DailyLog
	persister Persister
	loc       *time.Location
}

// New creates an empty store. Dates are interpreted in loc, which must match
// the location the view derives "today" from.
func New(p Persister, loc *time.Location) *Store {
	return &Store{
		data:      make(map[string]engine.DailyLog),
		persister: p,
		loc:       loc,
	}
}

// Load hydrates the store from the persister, once at startup.
//
// Failure policy is log-and-continue: a missing blob, an unreadable blob, or
// a corrupt payload all yield an empty store rather than an error — losing a
// session's history beats refusing to start over user-owned local data.
// Unrecognized statuses degrade to none and cached points are re-derived
// from the scoring rule, so the invariant "points are never independent
// input" holds even for hand-edited blobs.
func (s *Store) Load() {
	log := slog.With(config.LogKeyComponent, config.CompStore)

	blob, err := s.persister.Load()
	if err != nil {
		log.Warn(config.MsgStoreCorrupt, config.LogKeyError, err)
		return
	}
	if len(blob) == 0 {
		log.Info(config.MsgStoreMissing)
		return
	}

	var raw map[string]map[string]engine.PrayerRecord
	if err := json.Unmarshal(blob, &raw); err != nil {
		log.Warn(config.MsgStoreCorrupt, config.LogKeyError, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, prayers := range raw {
		date, err := engine.ParseKey(key, s.loc)
		if err != nil {
			log.Warn(config.MsgSkippedDay, config.LogKeyDate, key)
			continue
		}

		day := engine.NewDailyLog()
		for name, rec := range prayers {
			if !engine.ValidPrayer(name) {
				continue
			}
			status := engine.ParseStatus(string(rec.Status))
			if status != rec.Status {
				log.Debug(config.MsgStoreNormalized,
					config.LogKeyDate, key,
					config.LogKeyPrayer, name,
					config.LogKeyValue, string(rec.Status),
				)
			}
			day[name] = engine.PrayerRecord{
				Status: status,
				Points: engine.PointsFor(date, name, status),
			}
		}
		s.data[key] = day
	}

	log.Info(config.MsgStoreLoaded, config.LogKeyDays, len(s.data))
}

// GetOrInitDay returns the log for dateKey, materializing it with all five
// prayers unlogged if absent. This is the only path by which untouched dates
// gain entries; it backs the single-day detail view, never calendar
// browsing. The returned map is a copy — mutations go through
// SetPrayerStatus.
//
// The returned error is the persistence signal for a freshly materialized
// day; the in-memory day exists regardless.
func (s *Store) GetOrInitDay(dateKey string) (engine.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day, ok := s.data[dateKey]; ok {
		return day.Clone(), nil
	}

	day := engine.NewDailyLog()
	s.data[dateKey] = day

	slog.Debug(config.MsgDayMaterialized,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyDate, dateKey,
	)

	return day.Clone(), s.persistLocked()
}

// SetPrayerStatus records status for one prayer of one day. The day is
// materialized if needed; status and the derived points change together, so
// a reader never observes one without the other.
//
// The in-memory mutation always succeeds. A non-nil return means the blob
// could not be persisted and the in-memory store is the only copy of truth
// for this session; the caller decides how to surface that.
func (s *Store) SetPrayerStatus(dateKey, prayer string, status engine.Status) error {
	if !engine.ValidPrayer(prayer) {
		return fmt.Errorf("%s: %q", config.ErrUnknownPrayer, prayer)
	}

	date, err := engine.ParseKey(dateKey, s.loc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.data[dateKey]
	if !ok {
		day = engine.NewDailyLog()
		s.data[dateKey] = day
	}

	points := engine.PointsFor(date, prayer, status)
	day[prayer] = engine.PrayerRecord{Status: status, Points: points}

	slog.Info(config.MsgStatusSet,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyDate, dateKey,
		config.LogKeyPrayer, prayer,
		config.LogKeyStatus, string(status),
		config.LogKeyPoints, points,
	)

	return s.persistLocked()
}

// Day returns a copy of the log for dateKey, without materializing it.
func (s *Store) Day(dateKey string) (engine.DailyLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.data[dateKey]
	if !ok {
		return nil, false
	}
	return day.Clone(), true
}

// Len returns the number of materialized days.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Snapshot returns a deep copy of the whole log, for consumers that hold the
// data across lock boundaries (the feed exporter).
func (s *Store) Snapshot() map[string]engine.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make(map[string]engine.DailyLog, len(s.data))
	for key, day := range s.data {
		cp[key] = day.Clone()
	}
	return cp
}

// Stats recomputes the derived aggregates from the current log.
func (s *Store) Stats(today time.Time) engine.StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.Stats(s.data, today)
}

// ProjectMonth projects one month of the log into renderable cells.
func (s *Store) ProjectMonth(year int, month time.Month, today time.Time) engine.MonthGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.ProjectMonth(s.data, year, month, today)
}

// ProjectYear projects all twelve months of a year.
func (s *Store) ProjectYear(year int, today time.Time) []engine.MonthGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.ProjectYear(s.data, year, today)
}

// persistLocked serializes the log and hands it to the persister.
// Callers must hold the write lock.
func (s *Store) persistLocked() error {
	blob, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreEncode, err)
	}

	if err := s.persister.Save(blob); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}

	slog.Debug(config.MsgStoreSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeySizeBytes, len(blob),
		config.LogKeyDays, len(s.data),
	)
	return nil
}
