package models

import "time"

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
)

var statusRank = map[Status]int{
	StatusOngoing:  0,
	StatusUpcoming: 1,
	StatusPast:     2,
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	_, ok := statusRank[st]
	return st, ok
}

// Rank orders statuses for display: ongoing, then upcoming, then past.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}

// ClassifyStatus derives the lifecycle state of a contest at instant now.
func ClassifyStatus(start, end, now time.Time) Status {
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.Before(end):
		return StatusOngoing
	default:
		return StatusPast
	}
}

type Contest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Platform     Platform  `json:"platform"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       Status    `json:"status"`
	URL          string    `json:"url"`
	SolutionLink string    `json:"solution_link,omitempty"`
}

func (c *Contest) StatusAt(now time.Time) Status {
	return ClassifyStatus(c.StartTime, c.EndTime, now)
}

func (c *Contest) HasSolution() bool {
	return c.SolutionLink != ""
}
