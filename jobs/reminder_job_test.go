package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/notifications"
	"github.com/mentorat/mentoring_backend/services"
)

// stubSessionRepo serves a fixed session list with the half-open
// from <= date < to window contract of the store.
type stubSessionRepo struct {
	sessions []models.MentoringSession
}

func (s *stubSessionRepo) Create(_ context.Context, _ *models.MentoringSession) error {
	return nil
}

func (s *stubSessionRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.MentoringSession, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSessionRepo) List(_ context.Context) ([]models.MentoringSession, error) {
	return nil, nil
}

func (s *stubSessionRepo) ListByMenteeRef(_ context.Context, _ string) ([]models.MentoringSession, error) {
	return nil, nil
}

func (s *stubSessionRepo) ListConfirmedBetween(_ context.Context, from, to time.Time) ([]models.MentoringSession, error) {
	var out []models.MentoringSession
	for _, session := range s.sessions {
		if session.Status != models.SessionStatusConfirmed {
			continue
		}
		if session.Date.Before(from) || !session.Date.Before(to) {
			continue
		}
		out = append(out, session)
	}
	return out, nil
}

func (s *stubSessionRepo) Updates(_ context.Context, _ uuid.UUID, _ map[string]any) (int64, error) {
	return 0, nil
}

func (s *stubSessionRepo) UpdateWhereStatus(_ context.Context, _ uuid.UUID, _ []string, _ map[string]any) (int64, error) {
	return 0, nil
}

func (s *stubSessionRepo) Delete(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type emptyMenteeRepo struct{}

func (emptyMenteeRepo) Create(_ context.Context, _ *models.Mentee) error { return nil }
func (emptyMenteeRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Mentee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (emptyMenteeRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.Mentee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (emptyMenteeRepo) List(_ context.Context) ([]models.Mentee, error) { return nil, nil }
func (emptyMenteeRepo) Updates(_ context.Context, _ uuid.UUID, _ map[string]any) (int64, error) {
	return 0, nil
}

type emptyUserRepo struct{}

func (emptyUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (emptyUserRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (emptyUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (emptyUserRepo) CountByEmail(_ context.Context, _ string) (int64, error) { return 0, nil }

func TestReminderBodyIncludesMeetingLink(t *testing.T) {
	url := "https://meet.example.com/room_abc123"
	session := &models.MentoringSession{
		Date:       time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		MeetingURL: &url,
	}

	body := reminderBody(session, "Ada")
	if !strings.Contains(body, url) {
		t.Errorf("body should contain the meeting url: %q", body)
	}
	if !strings.Contains(body, "Ada") {
		t.Errorf("body should greet the recipient: %q", body)
	}

	session.MeetingURL = nil
	if strings.Contains(reminderBody(session, "Ada"), "Join here") {
		t.Errorf("body without a meeting url should omit the join link")
	}

	empty := ""
	session.MeetingURL = &empty
	if strings.Contains(reminderBody(session, "Ada"), "Join here") {
		t.Errorf("body with a blank meeting url should omit the join link")
	}
}

// A session dated exactly on the edge shared by two consecutive runs must be
// reminded once, not twice.
func TestReminderWindowBoundary(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	repo := &stubSessionRepo{sessions: []models.MentoringSession{
		{
			ID:     uuid.New(),
			Status: models.SessionStatusConfirmed,
			Date:   now.Add(60 * time.Minute),
		},
		{
			ID:     uuid.New(),
			Status: models.SessionStatusConfirmed,
			Date:   now.Add(65 * time.Minute),
		},
	}}

	core, logs := observer.New(zap.InfoLevel)
	assembler := services.NewSessionAssembler(emptyMenteeRepo{}, emptyUserRepo{}, zap.NewNop())
	job := NewReminderJob(repo, assembler, &notifications.EmailService{}, zap.New(core))

	job.run(now)
	firstRun := logs.FilterMessage("session reminder dispatched").Len()
	if firstRun != 1 {
		t.Fatalf("first run dispatched %d reminders, want only the in-window session", firstRun)
	}

	job.run(now.Add(5 * time.Minute))
	total := logs.FilterMessage("session reminder dispatched").Len()
	if total != 2 {
		t.Fatalf("dispatched %d reminders across both runs, want each session reminded exactly once", total)
	}
}
