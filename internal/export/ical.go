package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/emersion/go-ical"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
	"github.com/ZubairHyd/Namaaz-Tracker/internal/engine"
)

// Exporter renders the prayer log as an iCalendar feed: one all-day event
// per fully-completed day, so progress shows up in any calendar client
// subscribed to the local feed.
type Exporter struct {
	Clock engine.Clock

	// FormatSummary allows the UI to inject the localized event summary.
	// It receives the day's total points.
	FormatSummary func(points int) string
}

// Build converts the log into an encoded VCALENDAR. Days are processed in
// sorted key order for deterministic output. An empty log (or one with no
// fully-completed day) yields a minimal valid stub calendar.
func (e *Exporter) Build(data map[string]engine.DailyLog) ([]byte, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompExport)

	now := e.Clock.Now()
	loc := now.Location()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval to subscribing clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Events carry local calendar dates; only the DTSTAMP is UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	events := 0
	for _, key := range keys {
		day := data[key]
		if !day.Complete() {
			continue
		}

		date, err := engine.ParseKey(key, loc)
		if err != nil {
			log.Warn(config.MsgSkippedDay, config.LogKeyDate, key)
			continue
		}

		points := 0
		for _, name := range config.PrayerNames {
			points += engine.PointsFor(date, name, day[name].Status)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, e.eventUID(key))
		event.Props.SetText(config.PropSummary, e.summary(points))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
		events++
	}

	if events == 0 {
		log.Info(config.MsgFeedSuccess,
			config.LogKeyDays, len(data),
			config.LogKeyEvents, 0,
		)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	log.Info(config.MsgFeedSuccess,
		config.LogKeyDays, len(data),
		config.LogKeyEvents, events,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// eventUID derives a stable identifier from the date key, so subscribing
// clients recognize the event across feed refreshes.
func (e *Exporter) eventUID(dateKey string) string {
	input := fmt.Sprintf(config.FormatHashInput, config.UIDSalt, dateKey)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}

// summary renders the event title, preferring the injected localizer.
func (e *Exporter) summary(points int) string {
	if e.FormatSummary != nil {
		if s := e.FormatSummary(points); s != "" {
			return s
		}
	}
	return fmt.Sprintf(config.FallbackFeedSummary, points)
}
