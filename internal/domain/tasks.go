package domain

import "context"

// Task names accepted by the dispatcher.
const (
	TaskSendConfirmationEmail = "send_confirmation_email"
	TaskSetFeaturedSpeaker    = "set_featured_speaker"
)

// Task is a named unit of background work with an opaque parameter map.
type Task struct {
	ID     string
	Name   string
	Params map[string]string
}

// TaskQueue enqueues background tasks for asynchronous, at-least-once delivery.
// Enqueue returns once the task is accepted; no result is reported back.
type TaskQueue interface {
	Enqueue(ctx context.Context, name string, params map[string]string) error
}
