package domain

import (
	"sort"
	"time"

	"grindlock/internal/platform/clock"
)

// Submission is one accepted submission reported by the provider.
type Submission struct {
	TitleSlug  string
	AcceptedAt time.Time
}

// Snapshot is a point-in-time read of progress against the reference list.
// It is rebuilt from the provider on every evaluation and never cached:
// completion state can change between polls.
type Snapshot struct {
	TakenAt        time.Time
	Today          int // distinct catalog problems accepted since today's midnight
	Yesterday      int // distinct catalog problems accepted during yesterday's day
	TotalCompleted int // distinct catalog problems accepted, all time seen
	CompletedSlugs []string
	SolvedToday    []string
}

// Build buckets accepted submissions into today/yesterday windows against
// the catalog. Day boundaries are local midnights relative to now.
func Build(now time.Time, catalogSlugs []string, submissions []Submission) Snapshot {
	inCatalog := make(map[string]bool, len(catalogSlugs))
	for _, slug := range catalogSlugs {
		inCatalog[slug] = true
	}

	dayStart := clock.DayStart(now)
	yesterdayStart := dayStart.AddDate(0, 0, -1)

	all := map[string]bool{}
	today := map[string]bool{}
	yesterday := map[string]bool{}
	for _, sub := range submissions {
		if !inCatalog[sub.TitleSlug] {
			continue
		}
		all[sub.TitleSlug] = true
		switch {
		case !sub.AcceptedAt.Before(dayStart):
			today[sub.TitleSlug] = true
		case !sub.AcceptedAt.Before(yesterdayStart):
			yesterday[sub.TitleSlug] = true
		}
	}

	return Snapshot{
		TakenAt:        now,
		Today:          len(today),
		Yesterday:      len(yesterday),
		TotalCompleted: len(all),
		CompletedSlugs: sortedKeys(all),
		SolvedToday:    sortedKeys(today),
	}
}

// CompletedSet returns the completed slugs as a lookup set.
func (s Snapshot) CompletedSet() map[string]bool {
	out := make(map[string]bool, len(s.CompletedSlugs))
	for _, slug := range s.CompletedSlugs {
		out[slug] = true
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for slug := range set {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
