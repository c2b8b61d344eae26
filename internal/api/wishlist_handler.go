package api

import (
	"net/http"

	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/service/wishlist"
	"github.com/spotwish/spotwish-api/internal/store"
)

// WishlistHandler handles wishlist API requests. Every route requires an
// authenticated caller.
type WishlistHandler struct {
	wishlistService *wishlist.Service
	wishlistStore   store.WishlistStore
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *wishlist.Service, wishlistStore store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		wishlistStore:   wishlistStore,
	}
}

// List handles GET /wishlists. Admins see every entry, other callers only
// their own.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		HandleAPIError(w, r, authz.ErrUnauthenticated, "")
		return
	}

	entries, err := h.wishlistService.List(r.Context(), *identity)
	if err != nil {
		HandleAPIError(w, r, err, "Database error, please try again")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, entries)
}

// Create handles POST /wishlists. The entry is always created for the
// caller; the uniqueness and capacity rules apply to non-admins only.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		HandleAPIError(w, r, authz.ErrUnauthenticated, "")
		return
	}

	var req CreateWishlistRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}

	entry, err := h.wishlistService.Create(r.Context(), *identity, req.VacationSpotID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, entry)
}

// Show handles GET /wishlists/{id}, allowed for the entry's owner or an
// admin.
func (h *WishlistHandler) Show(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.wishlistStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := authz.CanActOnOwned(identity, entry.UserID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, entry)
}

// Delete handles DELETE /wishlists/{id}, allowed for the entry's owner or
// an admin.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.wishlistStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := authz.CanActOnOwned(identity, entry.UserID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.wishlistStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Vacation Spot has been deleted from your wishlists successfully",
	})
}
