package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trip-cost-service/internal/api/dto"
	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/ports"
)

// VehicleHandler exposes combined MPG lookups from the vehicle catalog.
type VehicleHandler struct {
	Ratings ports.EfficiencySource
}

func (h *VehicleHandler) MPG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	vehicleMake := strings.TrimSpace(q.Get("make"))
	model := strings.TrimSpace(q.Get("model"))

	if err != nil || year <= 0 || vehicleMake == "" || model == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "year, make and model are required")
		return
	}

	mpg, err := h.Ratings.CombinedMPG(r.Context(), year, vehicleMake, model)
	if err != nil {
		var effErr *domain.EfficiencyError
		if errors.As(err, &effErr) {
			writeError(w, r, http.StatusUnprocessableEntity, "efficiency_unavailable", "no combined MPG found; supply a manual value")
			return
		}

		log.Printf("mpg lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MPGResponse{
		Year:  year,
		Make:  vehicleMake,
		Model: model,
		MPG:   mpg,
	})
}
