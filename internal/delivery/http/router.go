package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
	speakerController *controllers.SpeakerController,
	profileController *controllers.ProfileController,
	announcementController *controllers.AnnouncementController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Conferences
	mux.HandleFunc("POST /conferences", auth(conferenceController.CreateConference))
	mux.HandleFunc("POST /conferences/query", conferenceController.QueryConferences)
	mux.HandleFunc("GET /conferences/created", auth(conferenceController.ListCreated))
	mux.HandleFunc("GET /conferences/attending", auth(conferenceController.ListAttending))
	mux.HandleFunc("GET /conferences/{conferenceID}", conferenceController.GetConference)
	mux.HandleFunc("PATCH /conferences/{conferenceID}", auth(conferenceController.UpdateConference))
	mux.HandleFunc("POST /conferences/{conferenceID}/registration", auth(conferenceController.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registration", auth(conferenceController.Unregister))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(sessionController.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", sessionController.ListByConference)
	mux.HandleFunc("GET /sessions/speaker/{speaker}", sessionController.ListBySpeaker)
	mux.HandleFunc("GET /sessions/past", sessionController.ListPast)
	mux.HandleFunc("GET /sessions/today", sessionController.ListToday)
	mux.HandleFunc("GET /sessions/early", sessionController.ListEarlyNonWorkshop)

	// Speakers (public directory)
	mux.HandleFunc("POST /speakers", speakerController.RegisterSpeaker)
	mux.HandleFunc("GET /speakers", speakerController.ListSpeakers)
	mux.HandleFunc("GET /speakers/featured", announcementController.GetFeaturedSpeaker)

	// Profile and wishlist
	mux.HandleFunc("GET /profile", auth(profileController.GetProfile))
	mux.HandleFunc("PATCH /profile", auth(profileController.UpdateProfile))
	mux.HandleFunc("GET /profile/wishlist", auth(profileController.ListWishlist))
	mux.HandleFunc("POST /profile/wishlist/{sessionID}", auth(profileController.AddToWishlist))
	mux.HandleFunc("DELETE /profile/wishlist/{sessionID}", auth(profileController.RemoveFromWishlist))

	// Announcements
	mux.HandleFunc("GET /announcement", announcementController.GetAnnouncement)

	// Cron (external scheduler)
	mux.HandleFunc("POST /crons/set_announcement", announcementController.SetAnnouncement)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
