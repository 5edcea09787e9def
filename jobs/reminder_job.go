package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/notifications"
	"github.com/mentorat/mentoring_backend/repository"
	"github.com/mentorat/mentoring_backend/services"
)

// ReminderJob emails every participant of a confirmed session starting in
// roughly one hour. It runs every five minutes, so the lookup window is five
// minutes wide to keep each session matched by exactly one run.
type ReminderJob struct {
	sessions  repository.SessionRepository
	assembler *services.SessionAssembler
	email     *notifications.EmailService
	logger    *zap.Logger
}

func NewReminderJob(sessions repository.SessionRepository, assembler *services.SessionAssembler, email *notifications.EmailService, logger *zap.Logger) *ReminderJob {
	return &ReminderJob{sessions: sessions, assembler: assembler, email: email, logger: logger}
}

func (j *ReminderJob) Run() {
	if j.email == nil {
		return
	}
	j.run(time.Now().UTC())
}

func (j *ReminderJob) run(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessions, err := j.sessions.ListConfirmedBetween(ctx, now.Add(60*time.Minute), now.Add(65*time.Minute))
	if err != nil {
		j.logger.Error("reminder lookup failed", zap.Error(err))
		return
	}

	for i := range sessions {
		view := j.assembler.Assemble(ctx, &sessions[i])
		for _, entry := range view.Mentees {
			if entry.User == nil || entry.User.Email == "" || entry.User.Email == services.PlaceholderEmail {
				continue
			}
			j.email.Send(entry.User.FullName, entry.User.Email,
				"Your mentoring session starts in 1 hour",
				reminderBody(&sessions[i], entry.User.FullName))
		}
		j.logger.Info("session reminder dispatched",
			zap.String("session_id", sessions[i].ID.String()),
			zap.Int("recipients", len(view.Mentees)))
	}
}

func reminderBody(session *models.MentoringSession, name string) string {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your mentoring session starts at <b>%s</b>.</p>",
		name, session.Date.Format("15:04 MST"),
	)
	if url := session.MeetingURL; url != nil && *url != "" {
		body += fmt.Sprintf(`<p>Join here: <a href="%s">%s</a></p>`, *url, *url)
	}
	return body
}
