package service

import (
	"strings"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/model"
)

// Tab names the dashboard views over the promotion list.
type Tab string

const (
	TabAll       Tab = "all"
	TabActive    Tab = "active"
	TabScheduled Tab = "scheduled"
	TabBoosted   Tab = "boosted"
	TabExpired   Tab = "expired"
)

// ParseTab normalizes a tab query parameter; anything unknown falls
// back to the All view.
func ParseTab(value string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabActive:
		return TabActive
	case TabScheduled:
		return TabScheduled
	case TabBoosted:
		return TabBoosted
	case TabExpired:
		return TabExpired
	default:
		return TabAll
	}
}

// Project derives the visible subset of promotions for a tab and
// free-text search term. Pure: input order (newest-first from the
// repository) is preserved, nothing is mutated, now is explicit.
func Project(promotions []model.Promotion, tab Tab, searchTerm string, now time.Time) []model.Promotion {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]model.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.PromoCode), term) {
			continue
		}

		switch tab {
		case TabActive:
			if p.TemporalStatusAt(now) != model.TemporalActive || p.Status == model.StatusPaused {
				continue
			}
		case TabScheduled:
			if p.TemporalStatusAt(now) != model.TemporalScheduled {
				continue
			}
		case TabExpired:
			if p.TemporalStatusAt(now) != model.TemporalExpired {
				continue
			}
		case TabBoosted:
			if !p.BoostedAt(now) {
				continue
			}
		}

		out = append(out, p)
	}
	return out
}
