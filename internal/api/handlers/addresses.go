package handlers

import (
	"log"
	"net/http"
	"strings"

	"trip-cost-service/internal/api/dto"
	"trip-cost-service/internal/ports"
)

// AddressHandler exposes read-only address suggestion lookups.
type AddressHandler struct {
	Suggester ports.Suggester
}

// Suggest returns up to five candidate display strings for a query.
// Upstream failures are logged and absorbed into an empty list; a flaky
// suggestion source should degrade the autocomplete, not the request.
func (h *AddressHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	suggestions := []string{}
	if query != "" {
		s, err := h.Suggester.Suggest(r.Context(), query)
		if err != nil {
			log.Printf("suggest failed: q=%q err=%v", query, err)
		} else {
			suggestions = s
		}
	}

	writeJSON(w, r, http.StatusOK, dto.SuggestResponse{Suggestions: suggestions})
}
