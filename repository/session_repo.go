package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.MentoringSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MentoringSession, error) {
	var session models.MentoringSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]models.MentoringSession, error) {
	var sessions []models.MentoringSession
	if err := r.db.WithContext(ctx).Order("date desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// escapeLike neutralizes LIKE wildcards in a value that is spliced into a
// pattern. A ref containing % or _ must match literally, not as a wildcard.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListByMenteeRef matches both the legacy single-reference column and
// membership of the JSON-encoded mentee_ids list.
func (r *sessionRepository) ListByMenteeRef(ctx context.Context, ref string) ([]models.MentoringSession, error) {
	var sessions []models.MentoringSession
	pattern := `%"` + escapeLike(ref) + `"%`
	err := r.db.WithContext(ctx).
		Where("mentee_id = ? OR mentee_ids LIKE ?", ref, pattern).
		Order("date desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListConfirmedBetween returns confirmed sessions with from <= date < to.
// The upper bound is exclusive so adjacent lookup windows never both match a
// session dated exactly on their shared boundary.
func (r *sessionRepository) ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]models.MentoringSession, error) {
	var sessions []models.MentoringSession
	err := r.db.WithContext(ctx).
		Where("status = ? AND date >= ? AND date < ?", models.SessionStatusConfirmed, from, to).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	fields["version"] = gorm.Expr("version + 1")
	result := r.db.WithContext(ctx).
		Model(&models.MentoringSession{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// UpdateWhereStatus applies fields only when the stored status is one of
// allowedFrom. The single conditional UPDATE is what makes a transition
// atomic: a raced or illegal transition affects zero rows.
func (r *sessionRepository) UpdateWhereStatus(ctx context.Context, id uuid.UUID, allowedFrom []string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	fields["version"] = gorm.Expr("version + 1")
	result := r.db.WithContext(ctx).
		Model(&models.MentoringSession{}).
		Where("id = ? AND status IN ?", id, allowedFrom).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.MentoringSession{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
