package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

type ConferenceController struct {
	Logger        *slog.Logger
	Conferences   domain.ConferenceService
	Registrations domain.ProfileService
}

func NewConferenceController(logger *slog.Logger, conferences domain.ConferenceService, registrations domain.ProfileService) *ConferenceController {
	return &ConferenceController{
		Logger:        logger,
		Conferences:   conferences,
		Registrations: registrations,
	}
}

// CreateConferenceRequest is the request body for POST /conferences.
// Dates are YYYY-MM-DD strings; missing city and topics get defaults.
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must not be negative")
	}
	return errs
}

// CreateConferenceSuccessResponse is the success response envelope for POST /conferences (201).
type CreateConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateConference godoc
// @Summary Create a conference
// @Description Creates a conference owned by the caller's profile. Missing city and topics are filled with defaults; month and seats are derived. A confirmation email is sent in the background.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateConferenceRequest true "Conference data"
// @Success 201 {object} controllers.CreateConferenceSuccessResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conf, err := c.Conferences.Create(r.Context(), identity, &domain.ConferenceInput{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}

// UpdateConferenceRequest is the request body for PATCH /conferences/{conferenceID}.
// All fields optional; omitted fields are unchanged.
type UpdateConferenceRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// Validate implements Validator.
func (u UpdateConferenceRequest) Validate() []string {
	var errs []string
	if u.Name != nil && *u.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.MaxAttendees != nil && *u.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must not be negative")
	}
	return errs
}

// UpdateConferenceSuccessResponse is the success response envelope for PATCH /conferences/{conferenceID} (200).
type UpdateConferenceSuccessResponse struct {
	Data  *domain.ConferenceWithOrganizer `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Updates conference fields. Only the organizer can update. Omitted fields are unchanged; month follows the start date.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body UpdateConferenceRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateConferenceSuccessResponse "data contains the updated conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [patch]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req UpdateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conf, err := c.Conferences.Update(r.Context(), identity, conferenceID, &domain.ConferenceUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// GetConferenceSuccessResponse is the success response envelope for GET /conferences/{conferenceID} (200).
type GetConferenceSuccessResponse struct {
	Data  *domain.ConferenceWithOrganizer `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// GetConference godoc
// @Summary Get a conference
// @Description Returns the conference with its organizer's display name.
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.GetConferenceSuccessResponse "data contains the conference"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	conf, err := c.Conferences.Get(r.Context(), conferenceID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// ListConferencesSuccessResponse is the success response envelope for conference list endpoints (200).
type ListConferencesSuccessResponse struct {
	Data  []*domain.ConferenceWithOrganizer `json:"data"`
	Error *helpers.APIError                 `json:"error"`
}

// ListCreated godoc
// @Summary List conferences created by the caller
// @Description Returns the conferences organized by the caller's profile.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data contains the conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/created [get]
func (c *ConferenceController) ListCreated(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferences, err := c.Conferences.ListCreatedBy(r.Context(), identity)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// QueryConferencesRequest is the request body for POST /conferences/query.
// Each filter names a whitelisted field (CITY, TOPIC, MONTH, MAX_ATTENDEES) and
// operator (EQ, GT, GTEQ, LT, LTEQ, NE).
type QueryConferencesRequest struct {
	Filters []domain.QueryFilter `json:"filters"`
}

// QueryConferences godoc
// @Summary Query conferences
// @Description Runs a filtered conference query. At most one field may carry inequality operators; results are ordered by that field, then name.
// @Tags conferences
// @Accept json
// @Produce json
// @Param body body QueryConferencesRequest true "Filters"
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data contains the matching conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/query [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conferences, err := c.Conferences.Query(r.Context(), req.Filters)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// ListAttending godoc
// @Summary List conferences the caller attends
// @Description Returns the conferences the caller has registered for.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data contains the conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *ConferenceController) ListAttending(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferences, err := c.Registrations.ListAttending(r.Context(), identity)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// RegistrationResponse reports the outcome of a register/unregister call.
type RegistrationResponse struct {
	Registered bool `json:"registered"`
}

// RegistrationSuccessResponse is the success response envelope for registration endpoints (200).
type RegistrationSuccessResponse struct {
	Data  RegistrationResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Register godoc
// @Summary Register for a conference
// @Description Registers the caller for the conference, taking one seat. Conflicts when already registered or sold out.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.registered is true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or no seats)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [post]
func (c *ConferenceController) Register(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	registered, err := c.Registrations.Register(r.Context(), identity, conferenceID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Registered: registered})
}

// Unregister godoc
// @Summary Unregister from a conference
// @Description Removes the caller's registration and returns the seat. Returns registered=false when the caller was not registered.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.registered reports whether a registration was removed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [delete]
func (c *ConferenceController) Unregister(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	removed, err := c.Registrations.Unregister(r.Context(), identity, conferenceID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Registered: removed})
}
