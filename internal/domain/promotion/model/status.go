package model

import (
	"strings"
	"time"
)

// TemporalStatus is the presentation-only label derived from the time
// window. It is never written back to the status column.
type TemporalStatus string

const (
	TemporalScheduled TemporalStatus = "Scheduled"
	TemporalActive    TemporalStatus = "Active"
	TemporalExpired   TemporalStatus = "Expired"
)

// DeriveStatus maps now against [start, end]. Both boundaries are
// inclusive: now == start and now == end are Active.
func DeriveStatus(now, start, end time.Time) TemporalStatus {
	if now.Before(start) {
		return TemporalScheduled
	}
	if now.After(end) {
		return TemporalExpired
	}
	return TemporalActive
}

// TemporalStatusAt derives the promotion's time-window status.
func (p *Promotion) TemporalStatusAt(now time.Time) TemporalStatus {
	return DeriveStatus(now, p.StartDate, p.EndDate)
}

// EffectiveLabel combines the persisted Paused override with the
// time-derived status: a paused promotion reads "paused" regardless of
// its window, everything else is the lower-cased derived status.
func (p *Promotion) EffectiveLabel(now time.Time) string {
	if p.Status == StatusPaused {
		return "paused"
	}
	return strings.ToLower(string(p.TemporalStatusAt(now)))
}

// BoostedAt reports whether the promotion is inside a live boost window.
func (p *Promotion) BoostedAt(now time.Time) bool {
	return p.Boost.ActiveAt(now)
}
