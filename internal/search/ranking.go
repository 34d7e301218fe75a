package search

import (
	"sort"
	"time"
)

const (
	// FeaturedPayFloor marks a job featured on pay alone.
	FeaturedPayFloor = 150000

	// NewWindow is how long a job counts as new after posting.
	NewWindow = 7 * 24 * time.Hour
)

// RankingFlags are derived per job at read time and never persisted.
type RankingFlags struct {
	IsNew      bool
	IsFeatured bool
}

// ComputeFlags derives the ranking flags for a job at the given instant.
// Pure: fixed inputs and a frozen clock always yield the same result.
func ComputeFlags(r JobRecord, now time.Time) RankingFlags {
	posted := r.EffectivePostedAt()
	isNew := !posted.IsZero() && !posted.Before(now.Add(-NewWindow))

	isFeatured := (r.PayMax != nil && *r.PayMax >= FeaturedPayFloor) ||
		(isNew && r.JobType == "full_time")

	return RankingFlags{IsNew: isNew, IsFeatured: isFeatured}
}

// SortPage orders records by is_featured descending, then effective posted
// date per the sort mode, then internal id ascending. The trailing id key
// keeps pagination deterministic when many jobs share a timestamp; the job
// repository emits the same ordering in SQL so page boundaries agree with it.
func SortPage(records []JobRecord, mode SortMode, now time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		fi := ComputeFlags(records[i], now).IsFeatured
		fj := ComputeFlags(records[j], now).IsFeatured
		if fi != fj {
			return fi
		}

		pi, pj := records[i].EffectivePostedAt(), records[j].EffectivePostedAt()
		if !pi.Equal(pj) {
			if mode == SortOldest {
				return pi.Before(pj)
			}
			return pi.After(pj)
		}

		return records[i].ID < records[j].ID
	})
}
