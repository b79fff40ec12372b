package service

import (
	"testing"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/model"

	"github.com/stretchr/testify/assert"
)

func fixturePromotions(now time.Time) []model.Promotion {
	boostStart := now.Add(-24 * time.Hour)

	mk := func(id, title, code, status string, start, end time.Time) model.Promotion {
		p := model.Promotion{
			Title:     title,
			PromoCode: code,
			Status:    status,
			StartDate: start,
			EndDate:   end,
		}
		p.ID = id
		return p
	}

	running := mk("p1", "Twilight Nine Special", "TWILIGHT9", model.StatusActive, now.Add(-48*time.Hour), now.Add(48*time.Hour))
	paused := mk("p2", "Early Bird Range Pass", "EARLYBIRD", model.StatusPaused, now.Add(-48*time.Hour), now.Add(48*time.Hour))
	upcoming := mk("p3", "Member Guest Week", "", model.StatusActive, now.Add(24*time.Hour), now.Add(96*time.Hour))
	finished := mk("p4", "Spring Opener BOGO", "SPRINGBOGO", model.StatusActive, now.Add(-96*time.Hour), now.Add(-24*time.Hour))

	boosted := mk("p5", "Pro Shop Clearance", "CLEAR15", model.StatusActive, now.Add(-48*time.Hour), now.Add(48*time.Hour))
	boosted.Boost = model.Boost{Active: true, Tier: "standard", RadiusMiles: 15, DurationDays: 3, StartedAt: &boostStart}

	return []model.Promotion{running, paused, upcoming, finished, boosted}
}

func ids(promotions []model.Promotion) []string {
	out := make([]string, 0, len(promotions))
	for _, p := range promotions {
		out = append(out, p.ID)
	}
	return out
}

func TestProject(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	list := fixturePromotions(now)

	t.Run("All tab keeps everything in order", func(t *testing.T) {
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(Project(list, TabAll, "", now)))
	})

	t.Run("Active tab is exactly the effectively-active subset", func(t *testing.T) {
		got := Project(list, TabActive, "", now)
		assert.Equal(t, []string{"p1", "p5"}, ids(got))
		for _, p := range got {
			assert.Equal(t, "active", p.EffectiveLabel(now))
		}
	})

	t.Run("Scheduled tab", func(t *testing.T) {
		assert.Equal(t, []string{"p3"}, ids(Project(list, TabScheduled, "", now)))
	})

	t.Run("Expired tab", func(t *testing.T) {
		assert.Equal(t, []string{"p4"}, ids(Project(list, TabExpired, "", now)))
	})

	t.Run("Boosted tab only keeps live boost windows", func(t *testing.T) {
		assert.Equal(t, []string{"p5"}, ids(Project(list, TabBoosted, "", now)))

		// Same list a week later: the 3-day boost has lapsed.
		later := now.Add(7 * 24 * time.Hour)
		assert.Empty(t, Project(list, TabBoosted, "", later))
	})

	t.Run("Search matches title case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"p1"}, ids(Project(list, TabAll, "twilight", now)))
	})

	t.Run("Search matches promo code", func(t *testing.T) {
		assert.Equal(t, []string{"p4"}, ids(Project(list, TabAll, "springbogo", now)))
	})

	t.Run("Search composes with the tab filter", func(t *testing.T) {
		assert.Empty(t, Project(list, TabActive, "springbogo", now))
		assert.Equal(t, []string{"p1"}, ids(Project(list, TabActive, "TWILIGHT", now)))
	})

	t.Run("Empty term matches all", func(t *testing.T) {
		assert.Len(t, Project(list, TabAll, "   ", now), len(list))
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		before := ids(list)
		Project(list, TabExpired, "bogo", now)
		assert.Equal(t, before, ids(list))
	})

	t.Run("Unknown tab parses to All", func(t *testing.T) {
		assert.Equal(t, TabAll, ParseTab("everything"))
		assert.Equal(t, TabBoosted, ParseTab(" Boosted "))
	})
}
