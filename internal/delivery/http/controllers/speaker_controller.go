package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

// SpeakerController serves the public speaker directory. No authentication.
type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterSpeakerRequest is the request body for POST /speakers.
type RegisterSpeakerRequest struct {
	DisplayName string `json:"display_name"`
	MainEmail   string `json:"main_email"`
	Bio         string `json:"bio"`
}

// Validate implements Validator.
func (s RegisterSpeakerRequest) Validate() []string {
	var errs []string
	if s.DisplayName == "" {
		errs = append(errs, "display_name is required")
	}
	return errs
}

// RegisterSpeakerSuccessResponse is the success response envelope for POST /speakers (200).
type RegisterSpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RegisterSpeaker godoc
// @Summary Register or update a speaker
// @Description Creates a speaker keyed by display name, or refreshes the email and bio of an existing one.
// @Tags speakers
// @Accept json
// @Produce json
// @Param body body RegisterSpeakerRequest true "Speaker data"
// @Success 200 {object} controllers.RegisterSpeakerSuccessResponse "data contains the speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) RegisterSpeaker(w http.ResponseWriter, r *http.Request) {
	var req RegisterSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker, err := c.Service.GetOrCreate(r.Context(), &domain.SpeakerInput{
		DisplayName: req.DisplayName,
		MainEmail:   req.MainEmail,
		Bio:         req.Bio,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// ListSpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type ListSpeakersSuccessResponse struct {
	Data  []*domain.SpeakerSummary `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Returns all speakers ordered by display name, projected to name and email.
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data contains the speakers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListAll(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}
