package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
)

// Map-backed repository doubles. They mirror the store contract the services
// rely on: gorm.ErrRecordNotFound on misses, affected-row counts on writes,
// and status-conditioned updates for session transitions.

type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, user := range m.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

type mockMenteeRepo struct {
	mentees map[uuid.UUID]*models.Mentee
}

func newMockMenteeRepo() *mockMenteeRepo {
	return &mockMenteeRepo{mentees: make(map[uuid.UUID]*models.Mentee)}
}

func (m *mockMenteeRepo) Create(_ context.Context, mentee *models.Mentee) error {
	if mentee.ID == uuid.Nil {
		mentee.ID = uuid.New()
	}
	cp := *mentee
	m.mentees[mentee.ID] = &cp
	return nil
}

func (m *mockMenteeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Mentee, error) {
	mentee, ok := m.mentees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *mentee
	return &cp, nil
}

func (m *mockMenteeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Mentee, error) {
	for _, mentee := range m.mentees {
		if mentee.UserID != nil && *mentee.UserID == userID {
			cp := *mentee
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenteeRepo) List(_ context.Context) ([]models.Mentee, error) {
	out := make([]models.Mentee, 0, len(m.mentees))
	for _, mentee := range m.mentees {
		out = append(out, *mentee)
	}
	return out, nil
}

func (m *mockMenteeRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	mentee, ok := m.mentees[id]
	if !ok {
		return 0, nil
	}
	for col, val := range fields {
		switch col {
		case "bio":
			v := val.(string)
			mentee.Bio = &v
		case "goals":
			v := val.(string)
			mentee.Goals = &v
		case "status":
			mentee.Status = val.(string)
		case "skills_to_improve":
			var skills []string
			if err := json.Unmarshal([]byte(val.(string)), &skills); err != nil {
				return 0, err
			}
			mentee.SkillsToImprove = skills
		}
	}
	return 1, nil
}

type mockSessionRepo struct {
	sessions map[uuid.UUID]*models.MentoringSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uuid.UUID]*models.MentoringSession)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *models.MentoringSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.MentoringSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *session
	return &cp, nil
}

func (m *mockSessionRepo) List(_ context.Context) ([]models.MentoringSession, error) {
	out := make([]models.MentoringSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		out = append(out, *session)
	}
	return out, nil
}

func (m *mockSessionRepo) ListByMenteeRef(_ context.Context, ref string) ([]models.MentoringSession, error) {
	var out []models.MentoringSession
	for _, session := range m.sessions {
		if session.MenteeID != nil && *session.MenteeID == ref {
			out = append(out, *session)
			continue
		}
		for _, r := range session.MenteeIDs {
			if r == ref {
				out = append(out, *session)
				break
			}
		}
	}
	return out, nil
}

func (m *mockSessionRepo) ListConfirmedBetween(_ context.Context, from, to time.Time) ([]models.MentoringSession, error) {
	var out []models.MentoringSession
	for _, session := range m.sessions {
		if session.Status != models.SessionStatusConfirmed {
			continue
		}
		if session.Date.Before(from) || !session.Date.Before(to) {
			continue
		}
		out = append(out, *session)
	}
	return out, nil
}

func (m *mockSessionRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	session, ok := m.sessions[id]
	if !ok {
		return 0, nil
	}
	applySessionFields(session, fields)
	return 1, nil
}

func (m *mockSessionRepo) UpdateWhereStatus(_ context.Context, id uuid.UUID, allowedFrom []string, fields map[string]any) (int64, error) {
	session, ok := m.sessions[id]
	if !ok {
		return 0, nil
	}
	allowed := false
	for _, status := range allowedFrom {
		if session.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, nil
	}
	applySessionFields(session, fields)
	return 1, nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.sessions[id]; !ok {
		return 0, nil
	}
	delete(m.sessions, id)
	return 1, nil
}

func applySessionFields(session *models.MentoringSession, fields map[string]any) {
	for col, val := range fields {
		switch col {
		case "status":
			session.Status = val.(string)
		case "notes":
			v := val.(string)
			session.Notes = &v
		case "meeting_url":
			v := val.(string)
			session.MeetingURL = &v
		case "cancellation_reason":
			v := val.(string)
			session.CancellationReason = &v
		case "date":
			session.Date = val.(time.Time)
		case "duration":
			session.Duration = val.(int)
		}
	}
	session.Version++
	session.UpdatedAt = time.Now()
}

type mockAvailabilityRepo struct {
	weekly   map[uuid.UUID]*models.WeeklyAvailability
	specific map[string]*models.SpecificDateAvailability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{
		weekly:   make(map[uuid.UUID]*models.WeeklyAvailability),
		specific: make(map[string]*models.SpecificDateAvailability),
	}
}

func (m *mockAvailabilityRepo) ListWeekly(_ context.Context) ([]models.WeeklyAvailability, error) {
	out := make([]models.WeeklyAvailability, 0, len(m.weekly))
	for _, rule := range m.weekly {
		out = append(out, *rule)
	}
	return out, nil
}

func (m *mockAvailabilityRepo) ListWeeklyByDay(_ context.Context, dayOfWeek int) ([]models.WeeklyAvailability, error) {
	var out []models.WeeklyAvailability
	for _, rule := range m.weekly {
		if rule.DayOfWeek == dayOfWeek {
			out = append(out, *rule)
		}
	}
	return out, nil
}

func (m *mockAvailabilityRepo) GetWeeklyByID(_ context.Context, id uuid.UUID) (*models.WeeklyAvailability, error) {
	rule, ok := m.weekly[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rule
	return &cp, nil
}

func (m *mockAvailabilityRepo) CreateWeekly(_ context.Context, rule *models.WeeklyAvailability) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	cp := *rule
	m.weekly[rule.ID] = &cp
	return nil
}

func (m *mockAvailabilityRepo) UpdateWeekly(_ context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	rule, ok := m.weekly[id]
	if !ok {
		return 0, nil
	}
	for col, val := range fields {
		switch col {
		case "start_time":
			rule.StartTime = val.(string)
		case "end_time":
			rule.EndTime = val.(string)
		case "is_available":
			rule.IsAvailable = val.(bool)
		}
	}
	return 1, nil
}

func (m *mockAvailabilityRepo) DeleteWeekly(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.weekly[id]; !ok {
		return 0, nil
	}
	delete(m.weekly, id)
	return 1, nil
}

func (m *mockAvailabilityRepo) GetSpecificByDate(_ context.Context, date string) (*models.SpecificDateAvailability, error) {
	rec, ok := m.specific[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *mockAvailabilityRepo) UpsertSpecific(_ context.Context, rec *models.SpecificDateAvailability) error {
	if existing, ok := m.specific[rec.Date]; ok {
		existing.IsAvailable = rec.IsAvailable
		existing.AvailableSlots = rec.AvailableSlots
		existing.UpdatedAt = time.Now()
		return nil
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	m.specific[rec.Date] = &cp
	return nil
}

type mockPricingRepo struct {
	pricing map[uuid.UUID]*models.MentoringPricing
}

func newMockPricingRepo() *mockPricingRepo {
	return &mockPricingRepo{pricing: make(map[uuid.UUID]*models.MentoringPricing)}
}

func (m *mockPricingRepo) Create(_ context.Context, pricing *models.MentoringPricing) error {
	if pricing.ID == uuid.Nil {
		pricing.ID = uuid.New()
	}
	cp := *pricing
	m.pricing[pricing.ID] = &cp
	return nil
}

func (m *mockPricingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.MentoringPricing, error) {
	pricing, ok := m.pricing[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *pricing
	return &cp, nil
}

func (m *mockPricingRepo) List(_ context.Context) ([]models.MentoringPricing, error) {
	out := make([]models.MentoringPricing, 0, len(m.pricing))
	for _, pricing := range m.pricing {
		out = append(out, *pricing)
	}
	return out, nil
}

func (m *mockPricingRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	pricing, ok := m.pricing[id]
	if !ok {
		return 0, nil
	}
	for col, val := range fields {
		switch col {
		case "name":
			pricing.Name = val.(string)
		case "description":
			pricing.Description = val.(string)
		case "price":
			pricing.Price = val.(float64)
		case "duration":
			pricing.Duration = val.(int)
		case "is_active":
			pricing.IsActive = val.(bool)
		}
	}
	return 1, nil
}

func (m *mockPricingRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.pricing[id]; !ok {
		return 0, nil
	}
	delete(m.pricing, id)
	return 1, nil
}
