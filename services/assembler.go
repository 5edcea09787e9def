package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/repository"
)

// PlaceholderEmail is the sentinel address carried by entries synthesized
// for legacy free-text mentee references.
const PlaceholderEmail = "unknown@example.invalid"

type refKind int

const (
	refValidID refKind = iota
	refLegacyText
)

// menteeRef is a parsed mentee reference: either a syntactically valid id
// to look up, or legacy free text to turn into a placeholder entry.
type menteeRef struct {
	kind refKind
	id   uuid.UUID
	raw  string
}

func parseMenteeRef(raw string) menteeRef {
	if id, err := uuid.Parse(raw); err == nil {
		return menteeRef{kind: refValidID, id: id, raw: raw}
	}
	return menteeRef{kind: refLegacyText, raw: raw}
}

// sessionRefs returns the reference set of a session: mentee_ids when
// non-empty, otherwise the legacy single mentee_id.
func sessionRefs(session *models.MentoringSession) []menteeRef {
	var refs []menteeRef
	if len(session.MenteeIDs) > 0 {
		for _, raw := range session.MenteeIDs {
			refs = append(refs, parseMenteeRef(raw))
		}
		return refs
	}
	if session.MenteeID != nil && *session.MenteeID != "" {
		refs = append(refs, parseMenteeRef(*session.MenteeID))
	}
	return refs
}

// SessionAssembler produces the denormalized session+mentee+user view. It is
// stateless and re-runs on every read: mentee and user records mutate
// independently of sessions, so nothing here may be cached.
type SessionAssembler struct {
	mentees repository.MenteeRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func NewSessionAssembler(mentees repository.MenteeRepository, users repository.UserRepository, logger *zap.Logger) *SessionAssembler {
	return &SessionAssembler{mentees: mentees, users: users, logger: logger}
}

// Assemble joins a session with its mentee and user records. Resolution
// failures never abort the read: free-text references become placeholder
// entries, unresolvable ids are logged and omitted.
func (a *SessionAssembler) Assemble(ctx context.Context, session *models.MentoringSession) models.SessionWithMentees {
	view := models.SessionWithMentees{MentoringSession: *session}

	for _, ref := range sessionRefs(session) {
		switch ref.kind {
		case refLegacyText:
			view.Mentees = append(view.Mentees, a.placeholder(ref.raw))
		case refValidID:
			entry, ok := a.resolve(ctx, session.ID, ref.id)
			if ok {
				view.Mentees = append(view.Mentees, entry)
			}
		}
	}

	if len(view.Mentees) > 0 {
		view.Mentee = &view.Mentees[0]
	}
	return view
}

// AssembleList joins every session, dropping those with no surviving mentee
// entry from the result. The bare record remains fetchable by id.
func (a *SessionAssembler) AssembleList(ctx context.Context, sessions []models.MentoringSession) []models.SessionWithMentees {
	views := make([]models.SessionWithMentees, 0, len(sessions))
	for i := range sessions {
		view := a.Assemble(ctx, &sessions[i])
		if len(view.Mentees) == 0 {
			a.logger.Warn("session omitted from joined view: no resolvable mentee reference",
				zap.String("session_id", sessions[i].ID.String()))
			continue
		}
		views = append(views, view)
	}
	return views
}

func (a *SessionAssembler) resolve(ctx context.Context, sessionID, menteeID uuid.UUID) (models.MenteeWithUser, bool) {
	mentee, err := a.mentees.GetByID(ctx, menteeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.logger.Error("mentee lookup failed", zap.String("mentee_id", menteeID.String()), zap.Error(err))
		} else {
			a.logger.Warn("session references missing mentee",
				zap.String("session_id", sessionID.String()),
				zap.String("mentee_id", menteeID.String()))
		}
		return models.MenteeWithUser{}, false
	}

	if mentee.UserID == nil {
		a.logger.Warn("mentee has no linked user", zap.String("mentee_id", menteeID.String()))
		return models.MenteeWithUser{}, false
	}

	user, err := a.users.GetByID(ctx, *mentee.UserID)
	if err != nil {
		a.logger.Warn("mentee references missing user",
			zap.String("mentee_id", menteeID.String()),
			zap.String("user_id", mentee.UserID.String()))
		return models.MenteeWithUser{}, false
	}

	sanitized := *user
	sanitized.Password = ""
	return models.MenteeWithUser{Mentee: *mentee, User: &sanitized}, true
}

// placeholder synthesizes a mentee/user pair for a reference that is not a
// valid id. Historical records stored free-text names in the reference
// field; surfacing them beats failing the whole read.
func (a *SessionAssembler) placeholder(raw string) models.MenteeWithUser {
	name := raw
	email := PlaceholderEmail
	return models.MenteeWithUser{
		Mentee: models.Mentee{
			FullName: &name,
			Email:    &email,
			Status:   models.MenteeStatusPending,
		},
		User: &models.User{
			FullName: name,
			Email:    email,
		},
	}
}
