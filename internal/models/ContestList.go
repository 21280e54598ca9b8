package models

import "time"

type PlatformFailure struct {
	Platform Platform `json:"platform"`
	Message  string   `json:"message"`
}

type ContestList struct {
	Contests    []Contest         `json:"contests"`
	Failed      []PlatformFailure `json:"failed,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type ContestFilter struct {
	Platform Platform
	Status   Status
}

// Filter keeps the relative order of the contests it retains.
func (f ContestFilter) Filter(contests []Contest) []Contest {
	if f.Platform == "" && f.Status == "" {
		return contests
	}
	out := make([]Contest, 0, len(contests))
	for _, c := range contests {
		if f.Platform != "" && c.Platform != f.Platform {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}
