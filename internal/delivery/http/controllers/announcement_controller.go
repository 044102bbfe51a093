package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

type AnnouncementController struct {
	Logger  *slog.Logger
	Service domain.AnnouncementService
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		Logger:  logger,
		Service: svc,
	}
}

// MessageResponse carries a cached message. Empty when nothing is cached.
type MessageResponse struct {
	Message string `json:"message"`
}

// MessageSuccessResponse is the success response envelope for cached message endpoints (200).
type MessageSuccessResponse struct {
	Data  MessageResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetAnnouncement godoc
// @Summary Get the current announcement
// @Description Returns the cached nearly-sold-out announcement, or an empty message when none is set.
// @Tags announcements
// @Produce json
// @Success 200 {object} controllers.MessageSuccessResponse "data.message contains the announcement"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcement [get]
func (c *AnnouncementController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.Announcement(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: message})
}

// GetFeaturedSpeaker godoc
// @Summary Get the featured speaker
// @Description Returns the cached featured speaker message, or an empty message when none is set.
// @Tags announcements
// @Produce json
// @Success 200 {object} controllers.MessageSuccessResponse "data.message contains the featured speaker"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/featured [get]
func (c *AnnouncementController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.FeaturedSpeaker(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: message})
}

// SetAnnouncement godoc
// @Summary Recompute the announcement
// @Description Recomputes the nearly-sold-out announcement from current seat counts. Intended for the external scheduler.
// @Tags crons
// @Produce json
// @Success 200 {object} controllers.MessageSuccessResponse "data.message contains the stored announcement, empty when cleared"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /crons/set_announcement [post]
func (c *AnnouncementController) SetAnnouncement(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.RecomputeAnnouncement(r.Context())
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: message})
}
