package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"linkvetter/internal/cache"
	"linkvetter/internal/models"
	"linkvetter/internal/store"
)

// ScanRequest is the POST body for a full-context scan. The redirect chain
// and AI verdict are optional precomputed inputs from external
// collaborators; the engine never fetches either itself.
type ScanRequest struct {
	URL           string               `json:"url"`
	RedirectChain []models.RedirectHop `json:"redirect_chain,omitempty"`
	AIVerdict     *models.AIVerdict    `json:"ai_verdict,omitempty"`
}

func scanHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		scanSimple(w, r)
	case http.MethodPost:
		scanWithContext(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// scanSimple scores a bare URL. Context-free results are cacheable: the
// engine is deterministic, so the same URL yields the same verdict until
// the TTL expires.
func scanSimple(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		http.Error(w, "Missing 'url' parameter", http.StatusBadRequest)
		return
	}

	cacheKey := "scan:" + rawURL
	if cached, ok := cache.Assessments.Get(cacheKey); ok {
		writeAssessment(w, cached.(models.RiskAssessment))
		return
	}

	start := time.Now()
	assessment := engine.Assess(rawURL, nil, nil)
	assessment.Duration = time.Since(start).String()

	cache.Assessments.Set(cacheKey, assessment, 15*time.Minute)
	persistScan(r, assessment)
	writeAssessment(w, assessment)
}

// scanWithContext scores a URL together with a redirect chain and/or AI
// verdict. Results depend on the supplied context, so they bypass the cache.
func scanWithContext(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "Missing 'url' field", http.StatusBadRequest)
		return
	}

	start := time.Now()
	assessment := engine.Assess(req.URL, req.RedirectChain, req.AIVerdict)
	assessment.Duration = time.Since(start).String()

	persistScan(r, assessment)
	writeAssessment(w, assessment)
}

// persistScan records the assessment for /history and /stats. Persistence
// failures are logged, never surfaced: history is a convenience, the
// verdict itself is what the caller is waiting on. Cache hits skip this
// path, so the scans table counts distinct scoring events, not requests.
func persistScan(r *http.Request, assessment models.RiskAssessment) {
	if err := store.SaveScan(r.Context(), "", assessment); err != nil {
		log.Printf("[ERROR] Failed to persist scan of %s: %v", assessment.URL, err)
	}
}

func writeAssessment(w http.ResponseWriter, assessment models.RiskAssessment) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(assessment); err != nil {
		log.Printf("❌ Error encoding /scan response for %s: %v", assessment.URL, err)
	}
}
