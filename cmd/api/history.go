package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"linkvetter/internal/brand"
	"linkvetter/internal/store"
)

func historyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	scans, err := store.RecentScans(r.Context(), limit)
	if err != nil {
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scans)
}

// StatsResponse aggregates scan activity with the registry footprint so a
// dashboard can render both from one call.
type StatsResponse struct {
	DangerousLast24h  int                 `json:"dangerous_last_24h"`
	TopFlaggedDomains []store.DomainCount `json:"top_flagged_domains"`
	Registry          brand.Stats         `json:"registry"`
}

func statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	dangerous, err := store.DangerousCountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	top, err := store.TopFlaggedDomains(ctx, 10)
	if err != nil {
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	resp := StatsResponse{
		DangerousLast24h:  dangerous,
		TopFlaggedDomains: top,
		Registry:          engine.Index().Statistics(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
