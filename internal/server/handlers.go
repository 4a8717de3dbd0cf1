package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vishalmourya/car-saarthi/apimodels"
)

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req apimodels.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Empty input never reaches the router.
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "Please enter some text", http.StatusBadRequest)
		return
	}

	slog.Debug("received recommend request", "query", req.Query)

	result, err := s.advisor.Recommend(r.Context(), req)
	if err != nil {
		slog.Error("recommend request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
