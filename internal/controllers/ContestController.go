package controllers

import (
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/services"
)

type ContestController struct {
	logger     providers.Logger
	aggregator services.AggregatorServiceInterface
}

func NewContestController(logger providers.Logger, aggregator services.AggregatorServiceInterface) *ContestController {
	return &ContestController{logger: logger, aggregator: aggregator}
}

// GetContests serves the aggregated list, optionally narrowed by platform and status.
func (cc *ContestController) GetContests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	platform, err := parsePlatform(q.Get("platform"))
	if err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	status, err := parseStatus(q.Get("status"))
	if err != nil {
		writeError(w, r, cc.logger, err)
		return
	}

	list, err := cc.aggregator.FetchAllContests(r.Context())
	if err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	list.Contests = models.ContestFilter{Platform: platform, Status: status}.Filter(list.Contests)
	writeJSON(w, http.StatusOK, list)
}
