package controllers

import (
	"fmt"
	"net/http"
	"time"

	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/structures"
)

type HealthController struct {
	platforms []string
	store     string
	policy    string
	startTime time.Time
}

type healthResponse struct {
	Status        string   `json:"status"`
	Uptime        string   `json:"uptime"`
	UptimeSeconds float64  `json:"uptime_seconds"`
	Platforms     []string `json:"platforms"`
	Store         string   `json:"store"`
	Policy        string   `json:"policy"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Platforms:     hc.platforms,
		Store:         hc.store,
		Policy:        hc.policy,
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(conf *structures.Config, adapters []interfaces.AdapterInterface) *HealthController {
	platforms := make([]string, 0, len(adapters))
	for _, a := range adapters {
		platforms = append(platforms, string(a.Platform()))
	}
	return &HealthController{
		platforms: platforms,
		store:     conf.Store.Driver,
		policy:    conf.Aggregation.Policy,
		startTime: time.Now(),
	}
}
