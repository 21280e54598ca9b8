package platforms

import (
	"sort"
	"time"

	"contesthub/internal/models"
)

// limitPast keeps every contest that has not ended plus the limit most
// recent finished ones. A non-positive limit keeps everything.
func limitPast(contests []models.Contest, now time.Time, limit int) []models.Contest {
	if limit <= 0 {
		return contests
	}

	active := make([]models.Contest, 0, len(contests))
	var past []models.Contest
	for _, c := range contests {
		if c.StatusAt(now) == models.StatusPast {
			past = append(past, c)
			continue
		}
		active = append(active, c)
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartTime.After(past[j].StartTime)
	})
	if len(past) > limit {
		past = past[:limit]
	}
	return append(active, past...)
}
