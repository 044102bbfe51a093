package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// ProfileSuccessResponse is the success response envelope for profile endpoints (200).
type ProfileSuccessResponse struct {
	Data  *domain.Profile   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the caller's profile, creating it on first access from the identity's nickname and email.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	profile, err := c.Service.GetOrCreate(r.Context(), identity)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateProfileRequest is the request body for PATCH /profile. All fields
// optional; omitted fields are unchanged.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"display_name"`
	TeeShirtSize *string `json:"tee_shirt_size"`
}

// Validate implements Validator.
func (u UpdateProfileRequest) Validate() []string {
	var errs []string
	if u.TeeShirtSize != nil && !domain.IsValidTeeShirtSize(*u.TeeShirtSize) {
		errs = append(errs, "tee_shirt_size is not a known size")
	}
	return errs
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Updates display name and tee shirt size. Omitted fields are unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the updated profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [patch]
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	profile, err := c.Service.Update(r.Context(), identity, &domain.ProfileUpdate{
		DisplayName:  req.DisplayName,
		TeeShirtSize: req.TeeShirtSize,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// WishlistSessionSuccessResponse is the success response envelope for wishlist add/remove (200).
type WishlistSessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AddToWishlist godoc
// @Summary Add a session to the wishlist
// @Description Adds the session to the caller's wishlist. Fails when the session is already wishlisted.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.WishlistSessionSuccessResponse "data contains the wishlisted session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (already wishlisted)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile/wishlist/{sessionID} [post]
func (c *ProfileController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sess, err := c.Service.AddToWishlist(r.Context(), identity, sessionID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// RemoveFromWishlist godoc
// @Summary Remove a session from the wishlist
// @Description Removes the session from the caller's wishlist. Fails when the session is not wishlisted. Stale entries whose session no longer exists are removed with a null body.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.WishlistSessionSuccessResponse "data contains the removed session, or null for a stale entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not wishlisted)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile/wishlist/{sessionID} [delete]
func (c *ProfileController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sess, err := c.Service.RemoveFromWishlist(r.Context(), identity, sessionID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// ListWishlist godoc
// @Summary List the caller's wishlist
// @Description Returns the sessions on the caller's wishlist. Stale entries are dropped.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the wishlisted sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile/wishlist [get]
func (c *ProfileController) ListWishlist(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListWishlist(r.Context(), identity)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}
