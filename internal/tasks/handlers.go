package tasks

import (
	"context"
	"fmt"

	"conferencecentral/internal/domain"
)

// RegisterHandlers wires the domain task handlers onto the dispatcher.
func RegisterHandlers(d *Dispatcher, emails domain.EmailService, announcements domain.AnnouncementService) {
	d.Register(domain.TaskSendConfirmationEmail, sendConfirmationEmail(emails))
	d.Register(domain.TaskSetFeaturedSpeaker, setFeaturedSpeaker(announcements))
}

func sendConfirmationEmail(emails domain.EmailService) Handler {
	return func(ctx context.Context, task domain.Task) error {
		email := task.Params["email"]
		if email == "" {
			return fmt.Errorf("missing email param")
		}
		return emails.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email:          email,
			ConferenceName: task.Params["conference_name"],
			ConferenceInfo: task.Params["conference_info"],
		})
	}
}

func setFeaturedSpeaker(announcements domain.AnnouncementService) Handler {
	return func(ctx context.Context, task domain.Task) error {
		speaker := task.Params["speaker"]
		conferenceID := task.Params["conference_id"]
		if speaker == "" || conferenceID == "" {
			return fmt.Errorf("missing speaker or conference_id param")
		}
		_, err := announcements.RecomputeFeaturedSpeaker(ctx, speaker, conferenceID)
		return err
	}
}
