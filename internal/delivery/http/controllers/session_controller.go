package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// defaultEarlyHour is the latest start hour for the early non-workshop listing.
const defaultEarlyHour = 19

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
// Date is a YYYY-MM-DD string, start_time an HH:MM string. A non-empty speaker
// must already be registered in the speaker directory.
type CreateSessionRequest struct {
	Name          string   `json:"name"`
	Highlights    []string `json:"highlights"`
	Speaker       string   `json:"speaker"`
	Duration      int      `json:"duration"`
	TypeOfSession string   `json:"type_of_session"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
}

// Validate implements Validator.
func (s CreateSessionRequest) Validate() []string {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.Duration < 0 {
		errs = append(errs, "duration must not be negative")
	}
	return errs
}

// CreateSessionSuccessResponse is the success response envelope for POST /conferences/{conferenceID}/sessions (201).
type CreateSessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateSession godoc
// @Summary Create a session
// @Description Creates a session in the conference. Only the conference organizer can add sessions. The speaker, when set, must exist; reaching two sessions by the same speaker triggers the featured speaker recompute in the background.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.CreateSessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (conference or speaker)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sess, err := c.Service.Create(r.Context(), identity, conferenceID, &domain.SessionInput{
		Name:          req.Name,
		Highlights:    req.Highlights,
		Speaker:       req.Speaker,
		Duration:      req.Duration,
		TypeOfSession: req.TypeOfSession,
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// ListSessionsSuccessResponse is the success response envelope for session list endpoints (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListByConference godoc
// @Summary List sessions in a conference
// @Description Returns all sessions of the conference. An optional type query parameter filters by session type.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param type query string false "Session type filter (e.g. workshop, lecture)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListByConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}

	var sessions []*domain.Session
	var err error
	if typeOfSession := r.URL.Query().Get("type"); typeOfSession != "" {
		sessions, err = c.Service.ListByConferenceAndType(r.Context(), conferenceID, typeOfSession)
	} else {
		sessions, err = c.Service.ListByConference(r.Context(), conferenceID)
	}
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListBySpeaker godoc
// @Summary List sessions by speaker
// @Description Returns all sessions given by the speaker across conferences.
// @Tags sessions
// @Produce json
// @Param speaker path string true "Speaker display name"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/speaker/{speaker} [get]
func (c *SessionController) ListBySpeaker(w http.ResponseWriter, r *http.Request) {
	speaker := r.PathValue("speaker")
	if speaker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speaker")
		return
	}
	sessions, err := c.Service.ListBySpeaker(r.Context(), speaker)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListPast godoc
// @Summary List past sessions
// @Description Returns sessions dated before the current calendar day.
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/past [get]
func (c *SessionController) ListPast(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListPast(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListToday godoc
// @Summary List today's sessions
// @Description Returns sessions dated exactly today.
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/today [get]
func (c *SessionController) ListToday(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListToday(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListEarlyNonWorkshop godoc
// @Summary List early non-workshop sessions
// @Description Returns sessions starting at or before the given hour (default 19), excluding workshops.
// @Tags sessions
// @Produce json
// @Param hour query int false "Latest start hour, 0-23 (default 19)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/early [get]
func (c *SessionController) ListEarlyNonWorkshop(w http.ResponseWriter, r *http.Request) {
	hour := defaultEarlyHour
	if raw := r.URL.Query().Get("hour"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "hour must be an integer")
			return
		}
		hour = parsed
	}
	sessions, err := c.Service.ListNonWorkshopBefore(r.Context(), hour)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}
