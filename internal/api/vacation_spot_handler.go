package api

import (
	"net/http"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/store"
)

// VacationSpotHandler handles vacation spot API requests. Reads are public;
// writes require an admin identity.
type VacationSpotHandler struct {
	spotStore store.VacationSpotStore
}

// NewVacationSpotHandler creates a new VacationSpotHandler.
func NewVacationSpotHandler(spotStore store.VacationSpotStore) *VacationSpotHandler {
	return &VacationSpotHandler{spotStore: spotStore}
}

// List handles GET /vacation-spots.
func (h *VacationSpotHandler) List(w http.ResponseWriter, r *http.Request) {
	spots, err := h.spotStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Database error, please try again")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, spots)
}

// Show handles GET /vacation-spots/{id}.
func (h *VacationSpotHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	spot, err := h.spotStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, spot)
}

// Create handles POST /vacation-spots (admin only).
func (h *VacationSpotHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	if err := authz.CanManageSpots(identity); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateVacationSpotRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}

	spot, err := domain.NewVacationSpot(req.Name, *req.Latitude, *req.Longitude)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.spotStore.Create(r.Context(), spot); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, spot)
}

// Update handles PUT /vacation-spots/{id} (admin only). Omitted fields keep
// their current value.
func (h *VacationSpotHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	if err := authz.CanManageSpots(identity); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateVacationSpotRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}

	spot, err := h.spotStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		spot.Name = *req.Name
	}
	if req.Latitude != nil {
		spot.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		spot.Longitude = *req.Longitude
	}

	if err := spot.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.spotStore.Update(r.Context(), spot); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, spot)
}

// Delete handles DELETE /vacation-spots/{id} (admin only).
func (h *VacationSpotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	if err := authz.CanManageSpots(identity); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.spotStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Vacation Spot has been deleted successfully",
	})
}
