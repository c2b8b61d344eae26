package api

import (
	"net/http"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/service/roles"
	"github.com/spotwish/spotwish-api/internal/store"
)

// UserHandler handles user resource API requests.
type UserHandler struct {
	userStore    store.UserStore
	roleResolver *roles.Resolver
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, roleResolver *roles.Resolver) *UserHandler {
	return &UserHandler{
		userStore:    userStore,
		roleResolver: roleResolver,
	}
}

// List handles GET /users. The listing is public; admin rows are hidden
// from everyone but an authenticated admin.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	adminRoleID, err := h.roleResolver.ResolveID(r.Context(), domain.RoleAdmin)
	if err != nil {
		HandleAPIError(w, r, err, "Database error, please try again")
		return
	}

	users, err := h.userStore.List(r.Context(), authz.UserListExcludedRole(identity, adminRoleID))
	if err != nil {
		HandleAPIError(w, r, err, "Database error, please try again")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, users)
}

// Show handles GET /users/{id}. Users carrying the admin role are never
// shown, no matter who asks.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	adminRoleID, err := h.roleResolver.ResolveID(r.Context(), domain.RoleAdmin)
	if err != nil {
		HandleAPIError(w, r, err, "Database error, please try again")
		return
	}

	if err := authz.CanViewUser(user, adminRoleID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// Update handles PUT /users/{id}, allowed for the owner or an admin.
// Omitted fields keep their current value; a new password must be confirmed.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := authz.CanActOnOwned(identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}
	if req.Password != nil &&
		(req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password) {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid password: confirmation does not match")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Login != nil {
		user.Login = *req.Login
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}, allowed for the owner or an admin.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := authz.CanActOnOwned(identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "User has been deleted successfully",
	})
}
