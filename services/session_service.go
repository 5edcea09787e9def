package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/notifications"
	"github.com/mentorat/mentoring_backend/repository"
)

// sessionTransitions lists the legal edges of the session lifecycle.
// completed and cancelled are terminal.
var sessionTransitions = map[string][]string{
	models.SessionStatusPending:   {models.SessionStatusConfirmed, models.SessionStatusCancelled},
	models.SessionStatusConfirmed: {models.SessionStatusCompleted, models.SessionStatusCancelled},
}

// transitionSources returns the states from which target is reachable.
func transitionSources(target string) []string {
	var sources []string
	for from, tos := range sessionTransitions {
		for _, to := range tos {
			if to == target {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

type SessionService struct {
	sessions  repository.SessionRepository
	mentees   repository.MenteeRepository
	pricing   repository.PricingRepository
	assembler *SessionAssembler
	email     *notifications.EmailService
	logger    *zap.Logger
}

func NewSessionService(
	sessions repository.SessionRepository,
	mentees repository.MenteeRepository,
	pricing repository.PricingRepository,
	assembler *SessionAssembler,
	email *notifications.EmailService,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		mentees:   mentees,
		pricing:   pricing,
		assembler: assembler,
		email:     email,
		logger:    logger,
	}
}

type CreateSessionInput struct {
	MenteeIDs []string
	MenteeID  *string
	Date      time.Time
	Duration  int
	Notes     *string
	PricingID string
}

// Create records a new session in pending state. An admin may create for any
// mentee; a non-admin caller must themself be one of the referenced mentees.
// The pricing reference must resolve; the session price is taken from it.
func (s *SessionService) Create(ctx context.Context, actor Identity, input CreateSessionInput) (*models.MentoringSession, error) {
	refs := input.MenteeIDs
	if len(refs) == 0 && input.MenteeID != nil && *input.MenteeID != "" {
		refs = []string{*input.MenteeID}
	}
	if len(refs) == 0 {
		return nil, ErrInvalidReference
	}

	if !actor.IsAdmin {
		if err := s.requireOwnership(ctx, actor, refs); err != nil {
			return nil, err
		}
	}

	pricingID, err := uuid.Parse(input.PricingID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	pricing, err := s.pricing.GetByID(ctx, pricingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPricingNotFound
		}
		return nil, err
	}

	session := &models.MentoringSession{
		MenteeIDs: refs,
		MenteeID:  input.MenteeID,
		Date:      input.Date,
		Duration:  input.Duration,
		Status:    models.SessionStatusPending,
		Notes:     input.Notes,
		Price:     pricing.Price,
		PricingID: pricing.ID.String(),
		Version:   1,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("mentoring session created",
		zap.String("session_id", session.ID.String()),
		zap.Strings("mentee_refs", refs))
	return session, nil
}

// Confirm moves a pending session to confirmed and records the meeting URL.
// Admin only.
func (s *SessionService) Confirm(ctx context.Context, actor Identity, id uuid.UUID, meetingURL string) (*models.MentoringSession, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	session, err := s.transition(ctx, id, models.SessionStatusConfirmed, map[string]any{
		"meeting_url": meetingURL,
	})
	if err != nil {
		return nil, err
	}

	s.notifyMentees(session, "Your mentoring session is confirmed",
		fmt.Sprintf("<h1>Session confirmed</h1><p>Your mentoring session on %s has been confirmed.</p><p><b>Meeting link:</b> <a href='%s'>join here</a></p>",
			session.Date.Format("2006-01-02 15:04"), meetingURL))
	return session, nil
}

// Cancel moves a pending or confirmed session to cancelled. Allowed for an
// admin or for the referenced mentee.
func (s *SessionService) Cancel(ctx context.Context, actor Identity, id uuid.UUID, reason string) (*models.MentoringSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin {
		if err := s.requireOwnership(ctx, actor, rawRefs(session)); err != nil {
			return nil, err
		}
	}

	session, err = s.transition(ctx, id, models.SessionStatusCancelled, map[string]any{
		"cancellation_reason": reason,
	})
	if err != nil {
		return nil, err
	}

	s.notifyMentees(session, "Your mentoring session was cancelled",
		fmt.Sprintf("<h1>Session cancelled</h1><p>Your mentoring session on %s has been cancelled.</p><p>Reason: %s</p>",
			session.Date.Format("2006-01-02 15:04"), reason))
	return session, nil
}

// Complete moves a confirmed session to completed and stores the notes.
// Admin only.
func (s *SessionService) Complete(ctx context.Context, actor Identity, id uuid.UUID, notes string) (*models.MentoringSession, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	return s.transition(ctx, id, models.SessionStatusCompleted, map[string]any{
		"notes": notes,
	})
}

type UpdateSessionInput struct {
	Status             *string
	Notes              *string
	MeetingURL         *string
	CancellationReason *string
	Date               *time.Time
	Duration           *int
}

// Update merges the provided fields into the session. Admin only. Unlike the
// transition operations it does not condition on the prior status.
func (s *SessionService) Update(ctx context.Context, actor Identity, id uuid.UUID, input UpdateSessionInput) (*models.MentoringSession, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if input.Status != nil {
		if !validSessionStatus(*input.Status) {
			return nil, ErrInvalidReference
		}
		fields["status"] = *input.Status
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.MeetingURL != nil {
		fields["meeting_url"] = *input.MeetingURL
	}
	if input.CancellationReason != nil {
		fields["cancellation_reason"] = *input.CancellationReason
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Duration != nil {
		fields["duration"] = *input.Duration
	}

	rows, err := s.sessions.Updates(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrSessionNotFound
	}
	return s.sessions.GetByID(ctx, id)
}

// Delete removes a session unconditionally, from any state. Admin only.
func (s *SessionService) Delete(ctx context.Context, actor Identity, id uuid.UUID) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	rows, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	s.logger.Info("mentoring session deleted", zap.String("session_id", id.String()))
	return nil
}

// Get returns the assembled view of one session. When no mentee reference
// resolves the bare record is still returned. Allowed for an admin or for
// the referenced mentee.
func (s *SessionService) Get(ctx context.Context, actor Identity, id uuid.UUID) (*models.SessionWithMentees, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin {
		if err := s.requireOwnership(ctx, actor, rawRefs(session)); err != nil {
			return nil, err
		}
	}
	view := s.assembler.Assemble(ctx, session)
	return &view, nil
}

// List returns the assembled view of all sessions, omitting those with no
// resolvable mentee. Admin only.
func (s *SessionService) List(ctx context.Context, actor Identity) ([]models.SessionWithMentees, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.AssembleList(ctx, sessions), nil
}

// ListByMentee returns the bare sessions referencing a mentee. Allowed for
// an admin or for the mentee themself.
func (s *SessionService) ListByMentee(ctx context.Context, actor Identity, menteeID string) ([]models.MentoringSession, error) {
	if !actor.IsAdmin {
		if err := s.requireOwnership(ctx, actor, []string{menteeID}); err != nil {
			return nil, err
		}
	}
	return s.sessions.ListByMenteeRef(ctx, menteeID)
}

// transition performs one state-machine edge as a single conditional update.
// Zero affected rows means either the session is gone or its stored status
// does not allow the edge; the two are told apart with a follow-up read.
func (s *SessionService) transition(ctx context.Context, id uuid.UUID, target string, fields map[string]any) (*models.MentoringSession, error) {
	fields["status"] = target
	rows, err := s.sessions.UpdateWhereStatus(ctx, id, transitionSources(target), fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if _, err := s.sessions.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("session transitioned",
		zap.String("session_id", id.String()),
		zap.String("status", target))
	return session, nil
}

// requireOwnership checks that the actor's mentee profile is one of refs.
func (s *SessionService) requireOwnership(ctx context.Context, actor Identity, refs []string) error {
	mentee, err := s.mentees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	menteeID := mentee.ID.String()
	for _, ref := range refs {
		if ref == menteeID {
			return nil
		}
	}
	return ErrForbidden
}

// notifyMentees emails every resolvable mentee of the session. Placeholder
// entries carry the sentinel address and are skipped.
func (s *SessionService) notifyMentees(session *models.MentoringSession, subject, body string) {
	if s.email == nil {
		return
	}
	view := s.assembler.Assemble(context.Background(), session)
	for _, entry := range view.Mentees {
		if entry.User == nil || entry.User.Email == "" || entry.User.Email == PlaceholderEmail {
			continue
		}
		go s.email.Send(entry.User.FullName, entry.User.Email, subject, body)
	}
}

func rawRefs(session *models.MentoringSession) []string {
	if len(session.MenteeIDs) > 0 {
		return session.MenteeIDs
	}
	if session.MenteeID != nil && *session.MenteeID != "" {
		return []string{*session.MenteeID}
	}
	return nil
}

func validSessionStatus(status string) bool {
	switch status {
	case models.SessionStatusPending, models.SessionStatusConfirmed,
		models.SessionStatusCompleted, models.SessionStatusCancelled:
		return true
	}
	return false
}
